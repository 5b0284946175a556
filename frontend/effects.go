package frontend

import (
	"github.com/Timisorean/Loki/frontend/ast"
	"github.com/Timisorean/Loki/frontend/pddlerr"
	"github.com/Timisorean/Loki/pddl"
)

// effect builds an action effect. A nil eff yields a nil Effect.
func (b *builder) effect(eff ast.Effect) (pddl.Effect, error) {
	if eff == nil {
		return nil, nil
	}
	var (
		result pddl.Effect
		err    error
	)
	switch eff := eff.(type) {
	case *ast.LiteralEffect:
		var literal *pddl.Literal
		if literal, err = b.literal(eff.Negated, &eff.Atom, eff); err == nil {
			result, _ = b.factories.GetOrCreateEffectLiteral(literal)
		}
	case *ast.AndEffect:
		effects := make([]pddl.Effect, len(eff.Effects))
		for i, e := range eff.Effects {
			if effects[i], err = b.effect(e); err != nil {
				return nil, err
			}
		}
		result, _ = b.factories.GetOrCreateEffectAnd(effects)
	case *ast.ForallEffect:
		if err = b.require(eff, "forall effect", pddl.ConditionalEffects); err != nil {
			return nil, err
		}
		result, err = withScope(b, func() (pddl.Effect, error) {
			parameters, err := b.parameters(eff.Parameters)
			if err != nil {
				return nil, err
			}
			inner, err := b.effect(eff.Effect)
			if err != nil {
				return nil, err
			}
			e, _ := b.factories.GetOrCreateEffectConditionalForall(parameters, inner)
			return e, nil
		})
	case *ast.WhenEffect:
		result, err = b.when(eff)
	case *ast.NumericEffect:
		result, err = b.numericEffect(eff)
	case *ast.ObjectAssignEffect:
		return nil, pddlerr.New(pddlerr.NewNotSupported{Positioner: eff.Range, Construct: pddl.ObjectFluents.String()})
	default:
		panic(unknownNode(eff))
	}
	if err != nil {
		return nil, err
	}
	b.positions.record(result, eff)
	return result, nil
}

func (b *builder) when(eff *ast.WhenEffect) (pddl.Effect, error) {
	if err := b.require(eff, "when", pddl.ConditionalEffects); err != nil {
		return nil, err
	}
	condition, err := b.condition(eff.Condition)
	if err != nil {
		return nil, err
	}
	inner, err := b.effect(eff.Effect)
	if err != nil {
		return nil, err
	}
	e, _ := b.factories.GetOrCreateEffectConditionalWhen(condition, inner)
	return e, nil
}

func (b *builder) numericEffect(eff *ast.NumericEffect) (pddl.Effect, error) {
	op, ok := pddl.AssignOperatorFromKeyword(eff.Operator)
	if !ok {
		return nil, pddlerr.New(pddlerr.NewNotSupported{Positioner: eff.Range, Construct: eff.Operator})
	}
	// action costs may only change total-cost
	numeric := []pddl.RequirementEnum{pddl.NumericFluents}
	if eff.Function.Name.Value == pddl.TotalCostFunctionName {
		numeric = append(numeric, pddl.ActionCosts)
	}
	if err := b.require(eff, eff.Operator, numeric...); err != nil {
		return nil, err
	}
	function, err := b.function(&eff.Function)
	if err != nil {
		return nil, err
	}
	value, err := b.functionExpression(eff.Value)
	if err != nil {
		return nil, err
	}
	e, _ := b.factories.GetOrCreateEffectNumeric(op, function, value)
	return e, nil
}

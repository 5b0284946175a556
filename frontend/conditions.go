package frontend

import (
	"github.com/Timisorean/Loki/frontend/ast"
	"github.com/Timisorean/Loki/frontend/pddlerr"
	"github.com/Timisorean/Loki/pddl"
	"github.com/pkg/errors"
)

func unknownNode(n ast.Node) error {
	return errors.Errorf("unexpected AST node %T", n)
}

// condition builds a goal descriptor bottom-up. A nil gd yields a nil Condition.
func (b *builder) condition(gd ast.GD) (pddl.Condition, error) {
	if gd == nil {
		return nil, nil
	}
	var (
		result pddl.Condition
		err    error
	)
	switch gd := gd.(type) {
	case *ast.AtomGD:
		result, err = b.conditionLiteral(false, &gd.AtomicFormula, gd)
	case *ast.AndGD:
		var conditions []pddl.Condition
		if conditions, err = b.conditions(gd.Conditions); err == nil {
			result, _ = b.factories.GetOrCreateConditionAnd(conditions)
		}
	case *ast.OrGD:
		if err = b.require(gd, "or", pddl.DisjunctivePreconditions); err != nil {
			return nil, err
		}
		var conditions []pddl.Condition
		if conditions, err = b.conditions(gd.Conditions); err == nil {
			result, _ = b.factories.GetOrCreateConditionOr(conditions)
		}
	case *ast.NotGD:
		result, err = b.negation(gd)
	case *ast.ImplyGD:
		result, err = b.implication(gd)
	case *ast.ExistsGD:
		if err = b.require(gd, "exists", pddl.ExistentialPreconditions); err != nil {
			return nil, err
		}
		result, err = b.quantified(gd.Parameters, gd.Condition, b.factories.GetOrCreateConditionExists)
	case *ast.ForallGD:
		if err = b.require(gd, "forall", pddl.UniversalPreconditions); err != nil {
			return nil, err
		}
		result, err = b.quantified(gd.Parameters, gd.Condition, b.factories.GetOrCreateConditionForall)
	case *ast.ComparisonGD:
		return nil, pddlerr.New(pddlerr.NewNotImplemented{Positioner: gd.Range, Construct: "numeric comparison " + gd.Comparator})
	default:
		panic(unknownNode(gd))
	}
	if err != nil {
		return nil, err
	}
	b.positions.record(result, gd)
	return result, nil
}

func (b *builder) conditions(gds []ast.GD) ([]pddl.Condition, error) {
	result := make([]pddl.Condition, len(gds))
	for i, gd := range gds {
		c, err := b.condition(gd)
		if err != nil {
			return nil, err
		}
		result[i] = c
	}
	return result, nil
}

func (b *builder) conditionLiteral(negated bool, formula *ast.AtomicFormula, at ast.Positioner) (pddl.Condition, error) {
	literal, err := b.literal(negated, formula, at)
	if err != nil {
		return nil, err
	}
	c, _ := b.factories.GetOrCreateConditionLiteral(literal)
	return c, nil
}

// negation of an atom is a negative literal, anything else is a disjunctive construct
func (b *builder) negation(gd *ast.NotGD) (pddl.Condition, error) {
	if atom, ok := gd.Condition.(*ast.AtomGD); ok {
		if err := b.require(gd, "negative literal", pddl.NegativePreconditions, pddl.DisjunctivePreconditions); err != nil {
			return nil, err
		}
		return b.conditionLiteral(true, &atom.AtomicFormula, gd)
	}
	if err := b.require(gd, "not", pddl.DisjunctivePreconditions); err != nil {
		return nil, err
	}
	inner, err := b.condition(gd.Condition)
	if err != nil {
		return nil, err
	}
	c, _ := b.factories.GetOrCreateConditionNot(inner)
	return c, nil
}

func (b *builder) implication(gd *ast.ImplyGD) (pddl.Condition, error) {
	if err := b.require(gd, "imply", pddl.DisjunctivePreconditions); err != nil {
		return nil, err
	}
	left, err := b.condition(gd.Left)
	if err != nil {
		return nil, err
	}
	right, err := b.condition(gd.Right)
	if err != nil {
		return nil, err
	}
	c, _ := b.factories.GetOrCreateConditionImply(left, right)
	return c, nil
}

func (b *builder) quantified(
	params []ast.TypedVariable,
	body ast.GD,
	create func([]*pddl.Parameter, pddl.Condition) (pddl.Condition, bool),
) (pddl.Condition, error) {
	return withScope(b, func() (pddl.Condition, error) {
		parameters, err := b.parameters(params)
		if err != nil {
			return nil, err
		}
		inner, err := b.condition(body)
		if err != nil {
			return nil, err
		}
		c, _ := create(parameters, inner)
		return c, nil
	})
}

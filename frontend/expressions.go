package frontend

import (
	"github.com/Timisorean/Loki/frontend/ast"
	"github.com/Timisorean/Loki/frontend/pddlerr"
	"github.com/Timisorean/Loki/pddl"
)

func (b *builder) function(ft *ast.FunctionTerm) (*pddl.Function, error) {
	found, ok := b.scopes.GetFunctionSkeleton(ft.Name.Value)
	if !ok {
		return nil, undefined(&ft.Name, pddlerr.CategoryFunction, ft.Name.Value)
	}
	skeleton := found.Value
	if err := checkArity(ft, pddlerr.CategoryFunction, ft.Name.Value, len(skeleton.Parameters()), len(ft.Terms)); err != nil {
		return nil, err
	}
	terms, err := b.terms(ft.Terms)
	if err != nil {
		return nil, err
	}
	function, _ := b.factories.GetOrCreateFunction(skeleton, terms)
	b.positions.record(function, ft)
	return function, nil
}

// functionExpression maps (op a b) to a binary operator, (+ a b c...) and (* a b c...)
// to a multi operator and (- a) to a negation. Longer chains of - and / associate to the left.
func (b *builder) functionExpression(e ast.FExp) (pddl.FunctionExpression, error) {
	var (
		result pddl.FunctionExpression
		err    error
	)
	switch e := e.(type) {
	case *ast.NumberFExp:
		result, _ = b.factories.GetOrCreateFunctionExpressionNumber(e.Value)
	case *ast.FunctionFExp:
		var function *pddl.Function
		if function, err = b.function(&e.FunctionTerm); err == nil {
			result, _ = b.factories.GetOrCreateFunctionExpressionFunction(function)
		}
	case *ast.OperatorFExp:
		result, err = b.operator(e)
	default:
		panic(unknownNode(e))
	}
	if err != nil {
		return nil, err
	}
	b.positions.record(result, e)
	return result, nil
}

func (b *builder) operator(e *ast.OperatorFExp) (pddl.FunctionExpression, error) {
	operands := make([]pddl.FunctionExpression, len(e.Operands))
	for i, operand := range e.Operands {
		var err error
		if operands[i], err = b.functionExpression(operand); err != nil {
			return nil, err
		}
	}
	if len(operands) == 1 && e.Operator == "-" {
		result, _ := b.factories.GetOrCreateFunctionExpressionMinus(operands[0])
		return result, nil
	}
	if len(operands) > 2 {
		switch e.Operator {
		case "+":
			result, _ := b.factories.GetOrCreateFunctionExpressionMultiOperator(pddl.MultiPlus, operands)
			return result, nil
		case "*":
			result, _ := b.factories.GetOrCreateFunctionExpressionMultiOperator(pddl.MultiMul, operands)
			return result, nil
		}
	}
	op, ok := pddl.BinaryOperatorFromSymbol(e.Operator)
	if !ok || len(operands) < 2 {
		return nil, pddlerr.New(pddlerr.NewNotSupported{Positioner: e.Range, Construct: e.Operator})
	}
	result := operands[0]
	for _, right := range operands[1:] {
		result, _ = b.factories.GetOrCreateFunctionExpressionBinaryOperator(op, result, right)
	}
	return result, nil
}

// mentionsFunction reports the first application of name inside e
func mentionsFunction(e ast.FExp, name string) (*ast.FunctionTerm, bool) {
	switch e := e.(type) {
	case *ast.FunctionFExp:
		if e.Name.Value == name {
			return &e.FunctionTerm, true
		}
	case *ast.OperatorFExp:
		for _, operand := range e.Operands {
			if ft, ok := mentionsFunction(operand, name); ok {
				return ft, true
			}
		}
	}
	return nil, false
}

package pddl

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWriteNodes(t *testing.T) {
	fx := newBlocksFixture()
	f := fx.f
	xTerm, _ := f.GetOrCreateTermVariable(fx.x)
	yTerm, _ := f.GetOrCreateTermVariable(fx.y)
	atom, _ := f.GetOrCreateAtom(fx.on, []Term{xTerm, yTerm})
	pos, _ := f.GetOrCreateLiteral(false, atom)
	neg, _ := f.GetOrCreateLiteral(true, atom)
	posCond, _ := f.GetOrCreateConditionLiteral(pos)
	negCond, _ := f.GetOrCreateConditionLiteral(neg)
	and, _ := f.GetOrCreateConditionAnd([]Condition{posCond, negCond})
	px, _ := f.GetOrCreateParameter(fx.x, []*Type{fx.block})
	exists, _ := f.GetOrCreateConditionExists([]*Parameter{px}, and)

	number, _ := f.GetOrCreateType(NumberTypeName, nil)
	totalCost, _ := f.GetOrCreateFunctionSkeleton(TotalCostFunctionName, nil, number)
	cost, _ := f.GetOrCreateFunction(totalCost, nil)
	one, _ := f.GetOrCreateFunctionExpressionNumber(1)
	increase, _ := f.GetOrCreateEffectNumeric(Increase, cost, one)
	effLit, _ := f.GetOrCreateEffectLiteral(pos)
	when, _ := f.GetOrCreateEffectConditionalWhen(negCond, effLit)

	costExpr, _ := f.GetOrCreateFunctionExpressionFunction(cost)
	half, _ := f.GetOrCreateFunctionExpressionNumber(0.5)
	sum, _ := f.GetOrCreateFunctionExpressionMultiOperator(MultiPlus, []FunctionExpression{costExpr, one, half})
	minus, _ := f.GetOrCreateFunctionExpressionMinus(costExpr)

	either, _ := f.GetOrCreateType("table", []*Type{fx.object})
	pEither, _ := f.GetOrCreateParameter(fx.y, []*Type{fx.block, either})
	pUntyped, _ := f.GetOrCreateParameter(fx.x, []*Type{fx.object})

	testCases := []struct {
		name     string
		node     Node
		expected string
	}{
		{"type", fx.block, "block"},
		{"typed parameter", px, "?x - block"},
		{"object parameter", pUntyped, "?x"},
		{"either parameter", pEither, "?y - (either block table)"},
		{"predicate", fx.on, "(on ?x - block ?y - block)"},
		{"atom", atom, "(on ?x ?y)"},
		{"negative literal", neg, "(not (on ?x ?y))"},
		{"and", and, "(and (on ?x ?y) (not (on ?x ?y)))"},
		{"exists", exists, "(exists (?x - block) (and (on ?x ?y) (not (on ?x ?y))))"},
		{"function skeleton", totalCost, "(total-cost) - number"},
		{"numeric effect", increase, "(increase (total-cost) 1)"},
		{"when", when, "(when (not (on ?x ?y)) (on ?x ?y))"},
		{"multi operator", sum, "(+ (total-cost) 1 0.5)"},
		{"minus", minus, "(- (total-cost))"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.node.String())
		})
	}
}

func TestWriteAction(t *testing.T) {
	fx := newBlocksFixture()
	f := fx.f
	xTerm, _ := f.GetOrCreateTermVariable(fx.x)
	yTerm, _ := f.GetOrCreateTermVariable(fx.y)
	atom, _ := f.GetOrCreateAtom(fx.on, []Term{xTerm, yTerm})
	lit, _ := f.GetOrCreateLiteral(false, atom)
	cond, _ := f.GetOrCreateConditionLiteral(lit)
	eff, _ := f.GetOrCreateEffectLiteral(lit)
	px, _ := f.GetOrCreateParameter(fx.x, []*Type{fx.object})
	py, _ := f.GetOrCreateParameter(fx.y, []*Type{fx.object})
	action, _ := f.GetOrCreateAction("move", []*Parameter{px, py}, cond, eff)

	buf := &bytes.Buffer{}
	err := Write(buf, action, FormattingOptions{Indent: 0, AddIndent: 2})
	assert.NoError(t, err)
	assert.Equal(t, "(:action move\n  :parameters (?x ?y)\n  :precondition (on ?x ?y)\n  :effect (on ?x ?y))", buf.String())

	bare, _ := f.GetOrCreateAction("noop", nil, nil, nil)
	assert.Equal(t, "(:action noop\n    :parameters ())", bare.String())
}

func TestWriteDomainGroupsTypedLists(t *testing.T) {
	fx := newBlocksFixture()
	f := fx.f
	table, _ := f.GetOrCreateType("table", []*Type{fx.object})
	t1, _ := f.GetOrCreateObject("t1", []*Type{table})
	reqs, _ := f.GetOrCreateRequirements([]RequirementEnum{Strips, Typing})
	domain := f.CreateDomain(DomainContent{
		Name:         "blocks",
		Requirements: reqs,
		Types:        []*Type{fx.block, table},
		Constants:    []*Object{fx.a, t1, fx.b},
		Predicates:   []*Predicate{fx.on},
	})

	expected := "(define (domain blocks)\n" +
		"    (:requirements :strips :typing)\n" +
		"    (:types block table)\n" +
		"    (:constants a b - block t1 - table)\n" +
		"    (:predicates (on ?x - block ?y - block))\n" +
		")"
	assert.Equal(t, expected, domain.String())
}

func TestWriteTypedListPutsUntypedLast(t *testing.T) {
	fx := newBlocksFixture()
	f := fx.f
	machine, _ := f.GetOrCreateType("machine", []*Type{fx.object})
	car, _ := f.GetOrCreateType("car", []*Type{machine})
	reqs, _ := f.GetOrCreateRequirements([]RequirementEnum{Typing})
	domain := f.CreateDomain(DomainContent{
		Name:         "cars",
		Requirements: reqs,
		Types:        []*Type{machine, car},
	})

	expected := "(define (domain cars)\n" +
		"    (:requirements :typing)\n" +
		"    (:types car - machine machine)\n" +
		")"
	assert.Equal(t, expected, domain.String())
}

type foreignNode struct{ base }

func (foreignNode) String() string { return "foreign" }

func TestWritePanicsOnUnknownNode(t *testing.T) {
	assert.Panics(t, func() {
		_ = Write(&bytes.Buffer{}, &foreignNode{}, DefaultFormattingOptions)
	})
}

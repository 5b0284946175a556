package ast

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestShow(t *testing.T) {
	x := Variable{Value: "?x"}
	block := &TypeSpec{Names: []Name{{Value: "block"}}}
	on := AtomicFormula{Predicate: Name{Value: "on"}, Terms: []Term{&x, &Name{Value: "a"}}}

	testCases := []struct {
		name     string
		node     Node
		expected string
	}{
		{"atom", &on, "(on ?x a)"},
		{"negative literal", &Literal{Negated: true, Atom: on}, "(not (on ?x a))"},
		{
			name: "exists",
			node: &ExistsGD{
				Parameters: []TypedVariable{{Variable: x, Type: block}},
				Condition:  &AndGD{Conditions: []GD{&AtomGD{on}, &NotGD{Condition: &AtomGD{on}}}},
			},
			expected: "(exists (?x - block) (and (on ?x a) (not (on ?x a))))",
		},
		{
			name: "either",
			node: &TypedName{
				Name: Name{Value: "t1"},
				Type: &TypeSpec{Names: []Name{{Value: "a"}, {Value: "b"}}, Either: true},
			},
			expected: "t1 - (either a b)",
		},
		{
			name: "numeric effect",
			node: &NumericEffect{
				Operator: "increase",
				Function: FunctionTerm{Name: Name{Value: "total-cost"}},
				Value:    &NumberFExp{Number{Value: 2.5}},
			},
			expected: "(increase (total-cost) 2.5)",
		},
		{"nil", nil, "nil"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, Show(tc.node))
		})
	}
}

func TestRangeOf(t *testing.T) {
	r := Range{PosStart: 3, PosEnd: 9}
	assert.Equal(t, r, RangeOf(&Name{Range: r, Value: "a"}))
	assert.Equal(t, r, RangeOf(r))
	assert.Equal(t, Range{}, RangeOf(nil))
	assert.Equal(t, "3-9", r.String())
}

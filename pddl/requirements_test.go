package pddl

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRequirementKeywords(t *testing.T) {
	req, ok := RequirementFromKeyword(":Conditional-Effects")
	assert.True(t, ok)
	assert.Equal(t, ConditionalEffects, req)
	assert.Equal(t, ":conditional-effects", req.String())

	_, ok = RequirementFromKeyword(":teleportation")
	assert.False(t, ok)
}

func TestExpandRequirements(t *testing.T) {
	testCases := []struct {
		name     string
		declared []RequirementEnum
		expected []RequirementEnum
	}{
		{
			name:     "plain requirements are sorted and deduplicated",
			declared: []RequirementEnum{Typing, Strips, Typing},
			expected: []RequirementEnum{Strips, Typing},
		},
		{
			name:     "quantified preconditions",
			declared: []RequirementEnum{QuantifiedPreconditions},
			expected: []RequirementEnum{ExistentialPreconditions, UniversalPreconditions, QuantifiedPreconditions},
		},
		{
			name:     "fluents",
			declared: []RequirementEnum{Fluents},
			expected: []RequirementEnum{Fluents, ObjectFluents, NumericFluents},
		},
		{
			name:     "adl",
			declared: []RequirementEnum{ADL},
			expected: []RequirementEnum{
				Strips, Typing, DisjunctivePreconditions, Equality, ExistentialPreconditions,
				UniversalPreconditions, QuantifiedPreconditions, ConditionalEffects, ADL,
			},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, ExpandRequirements(tc.declared))
		})
	}
}

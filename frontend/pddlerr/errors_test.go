package pddlerr

import (
	"go/token"
	"testing"

	"github.com/Timisorean/Loki/frontend/ast"
	"github.com/stretchr/testify/assert"
)

func TestFormatWithCode(t *testing.T) {
	err := New(NewUndefinedReference{
		Positioner: ast.Range{},
		Category:   CategoryPredicate,
		Name:       "onn",
	})
	assert.Equal(t, UndefinedReference, err.Code())
	assert.Equal(t, "(E002) undefined predicate 'onn'", FormatWithCode(err))
}

func TestErrorMessages(t *testing.T) {
	testCases := []struct {
		err      PDDLError
		code     ErrCode
		expected string
	}{
		{NewSyntax{ParserMessage: "expected ')'", Hint: "unbalanced parentheses"}, Syntax, "expected ')' (unbalanced parentheses)"},
		{NewMultiDefinition{Category: CategoryConstant, Name: "a"}, MultiDefinition, "constant 'a' is defined more than once"},
		{NewArityMismatch{Category: CategoryPredicate, Name: "on", Expected: 2, Actual: 1}, ArityMismatch, "predicate 'on' expects 2 arguments, but 1 were given"},
		{NewUndefinedRequirement{Construct: "when", Requirement: []string{":conditional-effects"}}, UndefinedRequirement, "'when' requires :conditional-effects to be declared"},
		{NewNotSupported{Construct: ":object-fluents"}, NotSupported, "':object-fluents' is not supported"},
		{NewNotImplemented{Construct: ":durative-action"}, NotImplemented, "':durative-action' is not implemented yet"},
		{NewInvalidTypeHierarchy{Cycle: []string{"a", "b", "a"}}, InvalidTypeHierarchy, "type hierarchy contains a cycle: a -> b -> a"},
		{NewMismatchedDomain{Expected: "blocks", Actual: "logistics"}, MismatchedDomain, "problem refers to domain 'logistics', but domain 'blocks' was given"},
	}
	for _, tc := range testCases {
		t.Run(tc.expected, func(t *testing.T) {
			assert.Equal(t, tc.code, tc.err.Code())
			assert.Equal(t, tc.expected, tc.err.Error())
		})
	}
}

func TestFormatWithSource(t *testing.T) {
	content := []byte("(define (domain d)\n  (:constants a a))\n")
	fset := token.NewFileSet()
	src := NewSource(fset, "d.pddl", content)

	first := ast.Range{PosStart: src.File.Pos(33), PosEnd: src.File.Pos(34)}
	second := ast.Range{PosStart: src.File.Pos(35), PosEnd: src.File.Pos(36)}
	err := New(NewMultiDefinition{Positioner: second, Category: CategoryConstant, Name: "a", Previous: first})

	expected := "d.pddl:2:17: (E003) constant 'a' is defined more than once\n" +
		"      (:constants a a))\n" +
		"                    ^\n" +
		"d.pddl:2:15: first defined here\n" +
		"      (:constants a a))\n" +
		"                  ^\n"
	assert.Equal(t, expected, FormatWithSource(err, src))
}

func TestFormatWithSourceOutsideOfFile(t *testing.T) {
	err := New(NewNotImplemented{Positioner: ast.Range{}, Construct: ":constraints"})
	assert.Equal(t, "(E007) ':constraints' is not implemented yet", FormatWithSource(err))
}

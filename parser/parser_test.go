package parser_test

import (
	"go/token"
	"testing"

	"github.com/Timisorean/Loki/frontend/ast"
	"github.com/Timisorean/Loki/frontend/pddlerr"
	"github.com/Timisorean/Loki/parser"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func source(content string) *pddlerr.Source {
	return pddlerr.NewSource(token.NewFileSet(), "test.pddl", []byte(content))
}

func testParseDomain(t *testing.T, input string) *ast.Domain {
	d, err := parser.ParseDomain(source(input))
	require.NoError(t, err)
	return d
}

const blocksDomain = `
; the classic
(define (domain BLOCKS)
  (:requirements :strips :typing)
  (:types block table)
  (:constants t1 - table)
  (:predicates (on ?x - block ?y) (clear ?x - (either block table)))
  (:action move
    :parameters (?x ?y - block)
    :precondition (and (clear ?x) (not (on ?x ?y)))
    :effect (on ?x ?y)))
`

func TestParseDomain(t *testing.T) {
	d := testParseDomain(t, blocksDomain)

	assert.Equal(t, "blocks", d.Name.Value)
	require.NotNil(t, d.Requirements)
	assert.Equal(t, []string{":strips", ":typing"}, []string{d.Requirements.Items[0].Keyword, d.Requirements.Items[1].Keyword})

	require.NotNil(t, d.Types)
	assert.Len(t, d.Types.Items, 2)
	assert.Nil(t, d.Types.Items[0].Type)

	require.NotNil(t, d.Constants)
	assert.Equal(t, "table", d.Constants.Items[0].Type.Names[0].Value)

	require.NotNil(t, d.Predicates)
	on := d.Predicates.Items[0]
	assert.Equal(t, "on", on.Name.Value)
	assert.Equal(t, "block", on.Parameters[0].Type.Names[0].Value)
	assert.Nil(t, on.Parameters[1].Type)
	clear := d.Predicates.Items[1]
	assert.True(t, clear.Parameters[0].Type.Either)
	assert.Len(t, clear.Parameters[0].Type.Names, 2)

	require.Len(t, d.Actions, 1)
	move := d.Actions[0]
	assert.Equal(t, "move", move.Name.Value)
	assert.Len(t, move.Parameters, 2)
	assert.Equal(t, "block", move.Parameters[0].Type.Names[0].Value)
	and, ok := move.Precondition.(*ast.AndGD)
	require.True(t, ok)
	assert.IsType(t, &ast.AtomGD{}, and.Conditions[0])
	assert.IsType(t, &ast.NotGD{}, and.Conditions[1])
	assert.Equal(t, "(on ?x ?y)", ast.Show(move.Effect))
}

func TestParseDomainPositions(t *testing.T) {
	src := source(blocksDomain)
	d, err := parser.ParseDomain(src)
	require.NoError(t, err)

	position := src.File.Position(d.Actions[0].Name.Pos())
	assert.Equal(t, 8, position.Line)
	assert.Equal(t, 12, position.Column)
	assert.Equal(t, "move", string(src.Content[src.File.Offset(d.Actions[0].Name.Pos()):src.File.Offset(d.Actions[0].Name.End())]))
}

func TestParseNonASCIIOffsets(t *testing.T) {
	src := source("(define (domain ünïcode) (:predicates (p)))")
	d, err := parser.ParseDomain(src)
	require.NoError(t, err)
	start := src.File.Offset(d.Predicates.Items[0].Pos())
	assert.Equal(t, byte('('), src.Content[start])
	assert.Equal(t, "(p)", string(src.Content[start:src.File.Offset(d.Predicates.Items[0].End())]))
}

func TestParseFormulas(t *testing.T) {
	d := testParseDomain(t, `
(define (domain formulas)
  (:action a
    :parameters ()
    :precondition (or (imply (p) (q)) (exists (?x) (forall (?y) (= ?x ?y))) (< (f ?x) 3))
    :effect (and (not (p)) (when (q) (p)) (forall (?z) (r ?z)) (increase (total-cost) (+ (g) 1 2)) (assign (h) obj))))
`)
	action := d.Actions[0]
	assert.Empty(t, action.Parameters)

	or := action.Precondition.(*ast.OrGD)
	assert.IsType(t, &ast.ImplyGD{}, or.Conditions[0])
	exists := or.Conditions[1].(*ast.ExistsGD)
	forall := exists.Condition.(*ast.ForallGD)
	assert.IsType(t, &ast.AtomGD{}, forall.Condition)
	assert.IsType(t, &ast.ComparisonGD{}, or.Conditions[2])

	and := action.Effect.(*ast.AndEffect)
	require.Len(t, and.Effects, 5)
	assert.True(t, and.Effects[0].(*ast.LiteralEffect).Negated)
	assert.IsType(t, &ast.WhenEffect{}, and.Effects[1])
	assert.IsType(t, &ast.ForallEffect{}, and.Effects[2])
	increase := and.Effects[3].(*ast.NumericEffect)
	assert.Equal(t, "increase", increase.Operator)
	assert.Equal(t, "(+ (g) 1 2)", ast.Show(increase.Value))
	assert.IsType(t, &ast.ObjectAssignEffect{}, and.Effects[4])
}

func TestParseProblem(t *testing.T) {
	pr, err := parser.ParseProblem(source(`
(define (problem p1)
  (:domain blocks)
  (:objects a b - block c)
  (:init (on a b) (not (clear b)) (= (total-cost) 0) (at 5 (clear c)))
  (:goal (and (on b a)))
  (:metric minimize (total-cost)))
`))
	require.NoError(t, err)
	assert.Equal(t, "p1", pr.Name.Value)
	assert.Equal(t, "blocks", pr.DomainName.Value)
	assert.Len(t, pr.Objects.Items, 3)
	assert.Nil(t, pr.Objects.Items[2].Type)

	require.Len(t, pr.Init.Items, 3)
	assert.IsType(t, &ast.Literal{}, pr.Init.Items[0])
	assert.True(t, pr.Init.Items[1].(*ast.Literal).Negated)
	fluent := pr.Init.Items[2].(*ast.NumericInit)
	assert.Equal(t, 0.0, fluent.Value.Value)
	require.Len(t, pr.Unsupported, 1)
	assert.Equal(t, ":timed-initial-literals", pr.Unsupported[0].Keyword)

	assert.IsType(t, &ast.AndGD{}, pr.Goal)
	assert.Equal(t, "minimize", pr.Metric.Optimization)
}

func TestSyntaxErrors(t *testing.T) {
	testCases := map[string]string{
		"empty file":           ``,
		"unbalanced":           `(define (domain d)`,
		"extra paren":          `(define (domain d)))`,
		"not a definition":     `(domain d)`,
		"unknown section":      `(define (domain d) (:bananas))`,
		"bad requirement":      `(define (domain d) (:requirements strips))`,
		"dangling dash":        `(define (domain d) (:types a -))`,
		"bad action keyword":   `(define (domain d) (:action a :pre (p)))`,
		"variable expected":    `(define (domain d) (:predicates (p x)))`,
		"duplicate section":    `(define (domain d) (:types a) (:types b))`,
		"term expected":        `(define (domain d) (:action a :parameters () :precondition (p (q))))`,
		"invalid number":       `(define (domain d) (:action a :parameters () :effect (increase (f) 1.2.3)))`,
		"lonely question mark": `(define (domain d) (:predicates (p ?)))`,
	}
	for name, input := range testCases {
		t.Run(name, func(t *testing.T) {
			var d *ast.Domain
			var err error
			assert.NotPanics(t, func() {
				d, err = parser.ParseDomain(source(input))
			})
			assert.Nil(t, d)
			require.Error(t, err)
			pddlErr, ok := err.(pddlerr.PDDLError)
			require.True(t, ok)
			assert.Equal(t, pddlerr.Syntax, pddlErr.Code())
		})
	}
}

func TestProblemWithoutDomain(t *testing.T) {
	_, err := parser.ParseProblem(source(`(define (problem p) (:objects a))`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing its ':domain' section")
}

func TestSyntaxErrorPosition(t *testing.T) {
	src := source("(define (domain d)\n  (:predicates (p x)))")
	_, err := parser.ParseDomain(src)
	require.Error(t, err)
	pddlErr := err.(pddlerr.PDDLError)
	position := src.File.Position(pddlErr.Pos())
	assert.Equal(t, 2, position.Line)
	assert.Equal(t, 19, position.Column)
}

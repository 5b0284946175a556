package parser

import (
	gotoken "go/token"
	"testing"

	"github.com/Timisorean/Loki/frontend/ast"
	"github.com/Timisorean/Loki/frontend/pddlerr"
	"github.com/antlr4-go/antlr/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorListenerUsesOffendingRange(t *testing.T) {
	src := pddlerr.NewSource(gotoken.NewFileSet(), "d.pddl", []byte("(define\n  (domain d)"))
	listener := newErrorListener(src.File)
	var _ antlr.ErrorListener = listener

	r := ast.Range{PosStart: src.File.Pos(10), PosEnd: src.File.Pos(11)}
	listener.SyntaxError(nil, offendingRange{Range: r, hint: "a hint"}, 1, 0, "bad domain", nil)

	require.Len(t, listener.Errors, 1)
	err := listener.Errors[0]
	assert.Equal(t, pddlerr.Syntax, err.Code())
	assert.Equal(t, r, ast.RangeOf(err))
	assert.Equal(t, "bad domain (a hint)", err.Error())
}

func TestErrorListenerFallsBackToLineAndColumn(t *testing.T) {
	src := pddlerr.NewSource(gotoken.NewFileSet(), "d.pddl", []byte("(define\n  (domain d)"))
	listener := newErrorListener(src.File)

	listener.SyntaxError(nil, nil, 2, 3, "no symbol", nil)
	listener.SyntaxError(nil, nil, 7, 0, "past the end", nil)

	require.Len(t, listener.Errors, 2)
	position := src.File.Position(listener.Errors[0].Pos())
	assert.Equal(t, 2, position.Line)
	assert.Equal(t, 4, position.Column)
	assert.Equal(t, 2, src.File.Position(listener.Errors[1].Pos()).Line)
}

func TestParserReportsThroughListener(t *testing.T) {
	src := pddlerr.NewSource(gotoken.NewFileSet(), "d.pddl", []byte("(define (domain d)\n  (:predicates (p x)))"))
	p := newParser(src)
	var err error
	func() {
		defer p.recoverSyntaxError(&err)
		p.domain(p.readDefinition())
	}()

	require.Error(t, err)
	require.Len(t, p.errors.Errors, 1)
	assert.Equal(t, p.errors.Errors[0], err)
	assert.Equal(t, 19, src.File.Position(p.errors.Errors[0].Pos()).Column)
}

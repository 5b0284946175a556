package parser

import (
	"fmt"

	"github.com/Timisorean/Loki/frontend/ast"
	"github.com/Timisorean/Loki/frontend/pddlerr"
	"github.com/antlr4-go/antlr/v4"
)

// sexpr is either a single token or a parenthesised list of sexprs
type sexpr struct {
	tok        token
	isList     bool
	items      []*sexpr
	start, end int
}

func (e *sexpr) String() string {
	if !e.isList {
		return e.tok.text
	}
	return fmt.Sprintf("(%d items)", len(e.items))
}

// headName returns the name the list e starts with, if any
func (e *sexpr) headName() (string, bool) {
	if !e.isList || len(e.items) == 0 || e.items[0].isList || e.items[0].tok.kind != tokenName {
		return "", false
	}
	return e.items[0].tok.text, true
}

// bailout is the panic value used to abort parsing at the first syntax error
type bailout struct {
	err pddlerr.PDDLError
}

type parser struct {
	src       *pddlerr.Source
	lexer     *lexer
	listeners *antlr.ProxyErrorListener
	errors    *errorListener
}

func newParser(src *pddlerr.Source) *parser {
	errors := newErrorListener(src.File)
	return &parser{
		src:       src,
		lexer:     newLexer(string(src.Content)),
		listeners: antlr.NewProxyErrorListener([]antlr.ErrorListener{errors}),
		errors:    errors,
	}
}

func (p *parser) rangeOf(start, end int) ast.Range {
	return ast.Range{PosStart: p.src.File.Pos(start), PosEnd: p.src.File.Pos(end)}
}

func (p *parser) exprRange(e *sexpr) ast.Range {
	return p.rangeOf(e.start, e.end)
}

// fail reports a syntax error to the listeners and aborts parsing
func (p *parser) fail(r ast.Range, hint string, format string, args ...any) {
	position := p.src.File.Position(r.Pos())
	p.listeners.SyntaxError(nil, offendingRange{Range: r, hint: hint}, position.Line, position.Column-1, fmt.Sprintf(format, args...), nil)
	panic(bailout{err: p.errors.Errors[len(p.errors.Errors)-1]})
}

// readForm reads one complete s-expression, or returns nil at the end of the input
func (p *parser) readForm() *sexpr {
	tok := p.lexer.next()
	switch tok.kind {
	case tokenEOF:
		return nil
	case tokenRParen:
		p.fail(p.rangeOf(tok.start, tok.end), "", "unexpected ')'")
	case tokenInvalid:
		p.fail(p.rangeOf(tok.start, tok.end), "", "invalid token '%s'", tok.text)
	case tokenLParen:
		return p.readList(tok)
	}
	return &sexpr{tok: tok, start: tok.start, end: tok.end}
}

func (p *parser) readList(open token) *sexpr {
	list := &sexpr{isList: true, start: open.start}
	for {
		tok := p.lexer.next()
		switch tok.kind {
		case tokenEOF:
			p.fail(p.rangeOf(open.start, open.end), "unbalanced parentheses", "'(' is never closed")
		case tokenRParen:
			list.end = tok.end
			return list
		case tokenInvalid:
			p.fail(p.rangeOf(tok.start, tok.end), "", "invalid token '%s'", tok.text)
		case tokenLParen:
			list.items = append(list.items, p.readList(tok))
		default:
			list.items = append(list.items, &sexpr{tok: tok, start: tok.start, end: tok.end})
		}
	}
}

// readDefinition reads the single top-level (define ...) form of a file
func (p *parser) readDefinition() *sexpr {
	form := p.readForm()
	if form == nil {
		p.fail(p.rangeOf(0, 0), "", "expected '(define ...)', found an empty file")
	}
	if head, ok := form.headName(); !ok || head != "define" {
		p.fail(p.exprRange(form), "", "expected '(define ...)'")
	}
	if extra := p.readForm(); extra != nil {
		p.fail(p.exprRange(extra), "", "unexpected content after the definition")
	}
	return form
}

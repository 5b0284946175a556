package parser

import (
	gotoken "go/token"

	"github.com/Timisorean/Loki/frontend/ast"
	"github.com/Timisorean/Loki/frontend/pddlerr"
	"github.com/antlr4-go/antlr/v4"
)

// offendingRange is the offending symbol the reader hands to an antlr.ErrorListener
type offendingRange struct {
	ast.Range
	hint string
}

// errorListener turns syntax errors reported in antlr's form into pddlerr errors.
type errorListener struct {
	*antlr.DefaultErrorListener
	file   *gotoken.File
	Errors []pddlerr.PDDLError
}

func newErrorListener(file *gotoken.File) *errorListener {
	return &errorListener{DefaultErrorListener: antlr.NewDefaultErrorListener(), file: file}
}

// SyntaxError records msg at the range of offendingSymbol. Without one, the
// one-based line and zero-based column locate the error.
func (e *errorListener) SyntaxError(_ antlr.Recognizer, offendingSymbol interface{}, line, column int, msg string, _ antlr.RecognitionException) {
	offending, ok := offendingSymbol.(offendingRange)
	if !ok || !offending.IsValid() {
		line = max(1, min(line, e.file.LineCount()))
		start := e.file.LineStart(line) + gotoken.Pos(column)
		offending.Range = ast.Range{PosStart: start, PosEnd: start}
	}
	e.Errors = append(e.Errors, pddlerr.New(pddlerr.NewSyntax{
		Positioner:    offending.Range,
		ParserMessage: msg,
		Hint:          offending.hint,
	}))
}

// recoverSyntaxError turns the bailout of the first syntax error into err.
// Any other panic is not ours and is re-raised.
func (p *parser) recoverSyntaxError(err *error) {
	r := recover()
	if r == nil {
		return
	}
	b, ok := r.(bailout)
	if !ok {
		panic(r)
	}
	logger.Debug("syntax error", "file", p.src.Name, "err", b.err.Error())
	*err = b.err
}

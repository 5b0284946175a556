package parser

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/antlr4-go/antlr/v4"
)

type tokenKind int

const (
	tokenEOF tokenKind = iota
	tokenLParen
	tokenRParen
	tokenName
	tokenVariable
	tokenNumber
	tokenInvalid
)

func (k tokenKind) String() string {
	switch k {
	case tokenEOF:
		return "end of file"
	case tokenLParen:
		return "'('"
	case tokenRParen:
		return "')'"
	case tokenName:
		return "name"
	case tokenVariable:
		return "variable"
	case tokenNumber:
		return "number"
	default:
		return "invalid character"
	}
}

// token is a lexeme with its byte offsets in the source, end exclusive.
// Names and variables are lower-cased, PDDL being case-insensitive.
type token struct {
	kind       tokenKind
	text       string
	start, end int
}

// lexer reads runes from an antlr.CharStream. The stream indexes runes,
// offset tracks the matching byte offset for go/token positions.
type lexer struct {
	input  antlr.CharStream
	offset int
}

func newLexer(data string) *lexer {
	return &lexer{input: antlr.NewInputStream(data)}
}

func (l *lexer) peek() int {
	return l.input.LA(1)
}

func (l *lexer) consume() {
	r := l.input.LA(1)
	if r == antlr.TokenEOF {
		return
	}
	l.input.Consume()
	l.offset += utf8.RuneLen(rune(r))
}

func (l *lexer) skipBlanks() {
	for {
		r := l.peek()
		switch {
		case r == ';':
			for r != '\n' && r != antlr.TokenEOF {
				l.consume()
				r = l.peek()
			}
		case r != antlr.TokenEOF && unicode.IsSpace(rune(r)):
			l.consume()
		default:
			return
		}
	}
}

func isNameRune(r int) bool {
	if r == antlr.TokenEOF || r == '(' || r == ')' || r == ';' {
		return false
	}
	return !unicode.IsSpace(rune(r))
}

func isDigit(r int) bool {
	return r >= '0' && r <= '9'
}

func (l *lexer) next() token {
	l.skipBlanks()
	start := l.offset
	startIndex := l.input.Index()
	r := l.peek()
	switch {
	case r == antlr.TokenEOF:
		return token{kind: tokenEOF, start: start, end: start}
	case r == '(':
		l.consume()
		return token{kind: tokenLParen, text: "(", start: start, end: l.offset}
	case r == ')':
		l.consume()
		return token{kind: tokenRParen, text: ")", start: start, end: l.offset}
	}

	kind := tokenName
	if r == '?' {
		kind = tokenVariable
	} else if isDigit(r) || (r == '-' || r == '.') && isDigit(l.input.LA(2)) {
		kind = tokenNumber
	}
	for isNameRune(l.peek()) {
		l.consume()
	}
	text := l.input.GetText(startIndex, l.input.Index()-1)
	if kind == tokenNumber {
		if !isNumber(text) {
			kind = tokenInvalid
		}
		return token{kind: kind, text: text, start: start, end: l.offset}
	}
	if kind == tokenVariable && len(text) == 1 {
		kind = tokenInvalid
	}
	return token{kind: kind, text: strings.ToLower(text), start: start, end: l.offset}
}

// isNumber accepts an optional minus sign, digits and at most one decimal point
func isNumber(text string) bool {
	text = strings.TrimPrefix(text, "-")
	seenDigit, seenPoint := false, false
	for _, r := range text {
		switch {
		case r >= '0' && r <= '9':
			seenDigit = true
		case r == '.' && !seenPoint:
			seenPoint = true
		default:
			return false
		}
	}
	return seenDigit
}

package ast

import (
	"fmt"
	"go/token"
)

// Positioner is anything that covers a span of a PDDL source file.
type Positioner interface {
	Pos() token.Pos // first character
	End() token.Pos // first character after the span
}

// Range is the span of a node in its source file. The zero Range has no position.
type Range struct {
	PosStart token.Pos
	PosEnd   token.Pos
}

func (r Range) Pos() token.Pos { return r.PosStart }
func (r Range) End() token.Pos { return r.PosEnd }
func (r Range) IsValid() bool  { return r.PosStart.IsValid() }

func (r Range) String() string {
	if r.PosStart == r.PosEnd {
		return fmt.Sprintf("%v", r.PosStart)
	}
	return fmt.Sprintf("%v-%v", r.PosStart, r.PosEnd)
}

// RangeOf copies the span of p. A nil p has the zero Range.
func RangeOf(p Positioner) Range {
	switch p := p.(type) {
	case nil:
		return Range{}
	case Range:
		return p
	case *Range:
		return *p
	default:
		return Range{p.Pos(), p.End()}
	}
}

package pddlerr

import (
	"bytes"
	"fmt"
	"go/token"
	"strings"

	"github.com/Timisorean/Loki/frontend/ast"
)

// Source is the text of one PDDL file, registered in a token.FileSet
// so that token.Pos values can be mapped back to lines and columns.
type Source struct {
	Name    string
	Content []byte
	File    *token.File
}

func NewSource(fset *token.FileSet, name string, content []byte) *Source {
	file := fset.AddFile(name, -1, len(content))
	file.SetLinesForContent(content)
	return &Source{Name: name, Content: content, File: file}
}

// Contains reports whether pos points into this source
func (s *Source) Contains(pos token.Pos) bool {
	return pos.IsValid() && pos >= token.Pos(s.File.Base()) && int(pos) <= s.File.Base()+s.File.Size()
}

// FormatWithSource prints e prefixed by its file position, followed by the
// offending source line with the range of e underlined.
// Positions outside of sources are printed without an excerpt.
func FormatWithSource(e PDDLError, sources ...*Source) string {
	sb := &strings.Builder{}
	src := findSource(e.Pos(), sources)
	if src == nil {
		sb.WriteString(FormatWithCode(e))
		return sb.String()
	}
	position := src.File.Position(e.Pos())
	fmt.Fprintf(sb, "%s: %s\n", position, FormatWithCode(e))
	src.excerpt(sb, ast.RangeOf(e))

	if multi, ok := e.(NewMultiDefinition); ok && multi.Previous != nil {
		if prevSrc := findSource(multi.Previous.Pos(), sources); prevSrc != nil {
			fmt.Fprintf(sb, "%s: first defined here\n", prevSrc.File.Position(multi.Previous.Pos()))
			prevSrc.excerpt(sb, ast.RangeOf(multi.Previous))
		}
	}
	return sb.String()
}

func findSource(pos token.Pos, sources []*Source) *Source {
	for _, s := range sources {
		if s != nil && s.Contains(pos) {
			return s
		}
	}
	return nil
}

func (s *Source) excerpt(sb *strings.Builder, r ast.Range) {
	start := s.File.Offset(r.Pos())
	lineStart := bytes.LastIndexByte(s.Content[:start], '\n') + 1
	lineEnd := bytes.IndexByte(s.Content[start:], '\n')
	if lineEnd < 0 {
		lineEnd = len(s.Content)
	} else {
		lineEnd += start
	}
	width := 1
	if r.End().IsValid() && s.Contains(r.End()) {
		end := min(s.File.Offset(r.End()), lineEnd)
		width = max(end-start, 1)
	}
	line := string(s.Content[lineStart:lineEnd])
	sb.WriteString("    ")
	sb.WriteString(line)
	sb.WriteString("\n    ")
	for _, r := range string(s.Content[lineStart:start]) {
		if r == '\t' {
			sb.WriteByte('\t')
		} else {
			sb.WriteByte(' ')
		}
	}
	sb.WriteString(strings.Repeat("^", width))
	sb.WriteString("\n")
}

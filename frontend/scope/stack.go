package scope

import (
	"github.com/Timisorean/Loki/frontend/ast"
	"github.com/Timisorean/Loki/frontend/pddlerr"
	"github.com/Timisorean/Loki/internal/log"
	"github.com/Timisorean/Loki/pddl"
	"github.com/Timisorean/Loki/util"
	"github.com/pkg/errors"
)

var logger = log.DefaultLogger.With("section", "scope")

// SearchResult is a resolved name together with where it was bound.
// Source is the file of the ScopeStack the binding was found in, so that
// errors about domain names can be reported while reading a problem.
type SearchResult[T any] struct {
	Binding[T]
	Source *pddlerr.Source
}

// ScopeStack is the stack of nested scopes of one file.
//
// The bottom scope is the global scope of the file and is never closed.
// If parent is set, its global scope is searched after every scope of this stack.
type ScopeStack struct {
	scopes util.Stack[*Scope]
	parent *ScopeStack
	source *pddlerr.Source
}

// NewScopeStack returns a stack holding only a fresh global scope.
// parent and source may be nil.
func NewScopeStack(parent *ScopeStack, source *pddlerr.Source) *ScopeStack {
	s := &ScopeStack{parent: parent, source: source}
	s.scopes.Push(NewScope(nil))
	return s
}

func (s *ScopeStack) OpenScope() {
	s.scopes.Push(NewScope(s.Current()))
	logger.Debug("opened scope", "depth", s.Depth())
}

// CloseScope discards the innermost scope. Closing the global scope is a programming error.
func (s *ScopeStack) CloseScope() {
	if s.scopes.Len() <= 1 {
		panic(errors.New("close of the global scope of a ScopeStack"))
	}
	s.scopes.Pop()
	logger.Debug("closed scope", "depth", s.Depth())
}

func (s *ScopeStack) Depth() int { return s.scopes.Len() }

func (s *ScopeStack) Current() *Scope {
	current, _ := s.scopes.Peek()
	return current
}

func (s *ScopeStack) Global() *Scope {
	global, _ := s.scopes.Bottom()
	return global
}

func (s *ScopeStack) Parent() *ScopeStack     { return s.parent }
func (s *ScopeStack) Source() *pddlerr.Source { return s.source }

func lookup[T any](s *ScopeStack, category func(*Scope) *bindings[T], name string) (SearchResult[T], bool) {
	if b, ok := search(s.Current(), category, name); ok {
		return SearchResult[T]{Binding: b, Source: s.source}, true
	}
	if s.parent != nil {
		if b, ok := category(s.parent.Global()).get(name); ok {
			return SearchResult[T]{Binding: b, Source: s.parent.source}, true
		}
	}
	return SearchResult[T]{}, false
}

func (s *ScopeStack) GetType(name string) (SearchResult[*pddl.Type], bool) {
	return lookup(s, typesOf, name)
}

func (s *ScopeStack) GetObject(name string) (SearchResult[*pddl.Object], bool) {
	return lookup(s, objectsOf, name)
}

func (s *ScopeStack) GetFunctionSkeleton(name string) (SearchResult[*pddl.FunctionSkeleton], bool) {
	return lookup(s, functionSkeletonsOf, name)
}

func (s *ScopeStack) GetVariable(name string) (SearchResult[*pddl.Variable], bool) {
	return lookup(s, variablesOf, name)
}

func (s *ScopeStack) GetPredicate(name string) (SearchResult[*pddl.Predicate], bool) {
	return lookup(s, predicatesOf, name)
}

func (s *ScopeStack) GetDerivedPredicate(name string) (SearchResult[*pddl.Predicate], bool) {
	return lookup(s, derivedPredicatesOf, name)
}

// The Insert methods bind name in the innermost scope only, replacing a previous binding of that scope.
// Checking whether a redefinition is legal is up to the caller.

func (s *ScopeStack) InsertType(name string, t *pddl.Type, position ast.Positioner) {
	s.Current().types.insert(name, t, position)
}

func (s *ScopeStack) InsertObject(name string, o *pddl.Object, position ast.Positioner) {
	s.Current().objects.insert(name, o, position)
}

func (s *ScopeStack) InsertFunctionSkeleton(name string, f *pddl.FunctionSkeleton, position ast.Positioner) {
	s.Current().functionSkeletons.insert(name, f, position)
}

func (s *ScopeStack) InsertVariable(name string, v *pddl.Variable, position ast.Positioner) {
	s.Current().variables.insert(name, v, position)
}

func (s *ScopeStack) InsertPredicate(name string, p *pddl.Predicate, position ast.Positioner) {
	s.Current().predicates.insert(name, p, position)
}

func (s *ScopeStack) InsertDerivedPredicate(name string, p *pddl.Predicate, position ast.Positioner) {
	s.Current().derivedPredicates.insert(name, p, position)
}

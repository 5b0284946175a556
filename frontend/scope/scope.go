package scope

import (
	"github.com/Timisorean/Loki/frontend/ast"
	"github.com/Timisorean/Loki/pddl"
	"github.com/benbjohnson/immutable"
)

// Binding is what a name resolves to. Position is nil for predefined names.
type Binding[T any] struct {
	Value    T
	Position ast.Positioner
}

type bindings[T any] struct {
	m *immutable.Map[string, Binding[T]]
}

func (b *bindings[T]) get(name string) (Binding[T], bool) {
	if b.m == nil {
		return Binding[T]{}, false
	}
	return b.m.Get(name)
}

func (b *bindings[T]) insert(name string, value T, position ast.Positioner) {
	if b.m == nil {
		b.m = immutable.NewMap[string, Binding[T]](immutable.NewHasher(""))
	}
	b.m = b.m.Set(name, Binding[T]{Value: value, Position: position})
}

func (b *bindings[T]) len() int {
	if b.m == nil {
		return 0
	}
	return b.m.Len()
}

// Scope is one level of nested bindings, separately per kind of name.
// Lookups fall through to the parent scope.
type Scope struct {
	parent *Scope

	types             bindings[*pddl.Type]
	objects           bindings[*pddl.Object]
	functionSkeletons bindings[*pddl.FunctionSkeleton]
	variables         bindings[*pddl.Variable]
	predicates        bindings[*pddl.Predicate]
	derivedPredicates bindings[*pddl.Predicate]
}

func NewScope(parent *Scope) *Scope {
	return &Scope{parent: parent}
}

func (s *Scope) Parent() *Scope { return s.parent }

// Len returns the number of names bound directly in s
func (s *Scope) Len() int {
	return s.types.len() + s.objects.len() + s.functionSkeletons.len() +
		s.variables.len() + s.predicates.len() + s.derivedPredicates.len()
}

// search walks from s up its parent chain and returns the nearest binding of name
func search[T any](s *Scope, category func(*Scope) *bindings[T], name string) (Binding[T], bool) {
	for current := s; current != nil; current = current.parent {
		if b, ok := category(current).get(name); ok {
			return b, true
		}
	}
	return Binding[T]{}, false
}

func typesOf(s *Scope) *bindings[*pddl.Type]                         { return &s.types }
func objectsOf(s *Scope) *bindings[*pddl.Object]                     { return &s.objects }
func functionSkeletonsOf(s *Scope) *bindings[*pddl.FunctionSkeleton] { return &s.functionSkeletons }
func variablesOf(s *Scope) *bindings[*pddl.Variable]                 { return &s.variables }
func predicatesOf(s *Scope) *bindings[*pddl.Predicate]               { return &s.predicates }
func derivedPredicatesOf(s *Scope) *bindings[*pddl.Predicate]        { return &s.derivedPredicates }

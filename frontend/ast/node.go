package ast

// Node is the base interface for all AST nodes.
type Node interface {
	Positioner
}

// Name is a plain identifier: a type, object, predicate, function or action name.
type Name struct {
	Range
	Value string
}

// Variable is an identifier starting with '?'. Value includes the question mark.
type Variable struct {
	Range
	Value string
}

type Number struct {
	Range
	Value float64
}

// Term is an argument of an atomic formula: a *Name or a *Variable.
type Term interface {
	Node
	termNode()
}

func (*Name) termNode()     {}
func (*Variable) termNode() {}

// TypeSpec is the type after '-' in a typed list.
// Either is set for (either t1 t2 ...), in which case Names has every alternative.
type TypeSpec struct {
	Range
	Names  []Name
	Either bool
}

// TypedName is one entry of a typed list of names. Type is nil when no type was given.
type TypedName struct {
	Name
	Type *TypeSpec
}

// TypedVariable is one entry of a typed list of variables. Type is nil when no type was given.
type TypedVariable struct {
	Variable
	Type *TypeSpec
}

type Requirement struct {
	Range
	Keyword string
}

// Section is a (:keyword item...) block of a domain or problem.
type Section[T any] struct {
	Range
	Items []T
}

// Unsupported marks a recognised construct without a semantic counterpart, e.g. :durative-action.
type Unsupported struct {
	Range
	Keyword string
}

// AtomicFormulaSkeleton declares a predicate: (name ?x - t ...).
type AtomicFormulaSkeleton struct {
	Range
	Name       Name
	Parameters []TypedVariable
}

// FunctionSkeleton declares a function: (name ?x - t ...) - number. Type is nil when omitted.
type FunctionSkeleton struct {
	Range
	Name       Name
	Parameters []TypedVariable
	Type       *TypeSpec
}

// AtomicFormula applies a predicate to terms: (name t...). Equality atoms have the name "=".
type AtomicFormula struct {
	Range
	Predicate Name
	Terms     []Term
}

// Literal is an atomic formula or its negation (not (name t...)).
type Literal struct {
	Range
	Negated bool
	Atom    AtomicFormula
}

// FunctionTerm applies a function to terms: (name t...).
type FunctionTerm struct {
	Range
	Name  Name
	Terms []Term
}

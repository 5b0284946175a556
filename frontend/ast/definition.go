package ast

type Action struct {
	Range
	Name         Name
	Parameters   []TypedVariable
	Precondition GD     // nil when absent
	Effect       Effect // nil when absent
}

// DerivedPredicate is a (:derived (head ?x - t) condition) axiom.
type DerivedPredicate struct {
	Range
	Head      AtomicFormulaSkeleton
	Condition GD
}

// Domain is a (define (domain name) ...) form. Absent sections are nil.
type Domain struct {
	Range
	Name         Name
	Requirements *Section[Requirement]
	Types        *Section[TypedName]
	Constants    *Section[TypedName]
	Predicates   *Section[AtomicFormulaSkeleton]
	Functions    *Section[FunctionSkeleton]
	Actions      []Action
	Axioms       []DerivedPredicate
	Unsupported  []Unsupported
}

// Init is an element of the :init section: *Literal or *NumericInit.
type Init interface {
	Node
	initNode()
}

// NumericInit is (= (f o...) n).
type NumericInit struct {
	Range
	Function FunctionTerm
	Value    Number
}

func (*Literal) initNode()     {}
func (*NumericInit) initNode() {}

type Metric struct {
	Range
	Optimization string
	Expression   FExp
}

// Problem is a (define (problem name) ...) form. Absent sections are nil.
type Problem struct {
	Range
	Name         Name
	DomainName   Name
	Requirements *Section[Requirement]
	Objects      *Section[TypedName]
	Init         *Section[Init]
	Goal         GD
	Metric       *Metric
	Axioms       []DerivedPredicate
	Unsupported  []Unsupported
}

package ast

// GD is a goal descriptor: the condition language of preconditions, goals and axioms.
type GD interface {
	Node
	gdNode()
}

type AtomGD struct {
	AtomicFormula
}

type AndGD struct {
	Range
	Conditions []GD
}

type OrGD struct {
	Range
	Conditions []GD
}

// NotGD negates any goal descriptor; over an *AtomGD it forms a negative literal.
type NotGD struct {
	Range
	Condition GD
}

type ImplyGD struct {
	Range
	Left, Right GD
}

type ExistsGD struct {
	Range
	Parameters []TypedVariable
	Condition  GD
}

type ForallGD struct {
	Range
	Parameters []TypedVariable
	Condition  GD
}

// ComparisonGD is a numeric comparison such as (< (fuel ?t) 5).
type ComparisonGD struct {
	Range
	Comparator  string
	Left, Right FExp
}

func (*AtomGD) gdNode()       {}
func (*AndGD) gdNode()        {}
func (*OrGD) gdNode()         {}
func (*NotGD) gdNode()        {}
func (*ImplyGD) gdNode()      {}
func (*ExistsGD) gdNode()     {}
func (*ForallGD) gdNode()     {}
func (*ComparisonGD) gdNode() {}

// Effect is an action effect.
type Effect interface {
	Node
	effectNode()
}

type LiteralEffect struct {
	Literal
}

type AndEffect struct {
	Range
	Effects []Effect
}

type ForallEffect struct {
	Range
	Parameters []TypedVariable
	Effect     Effect
}

type WhenEffect struct {
	Range
	Condition GD
	Effect    Effect
}

// NumericEffect is (op head value) for op one of assign, scale-up, scale-down, increase, decrease.
type NumericEffect struct {
	Range
	Operator string
	Function FunctionTerm
	Value    FExp
}

// ObjectAssignEffect is (assign (f t...) name): an object fluent assignment.
type ObjectAssignEffect struct {
	Range
	Function FunctionTerm
	Value    Term
}

func (*LiteralEffect) effectNode()      {}
func (*AndEffect) effectNode()          {}
func (*ForallEffect) effectNode()       {}
func (*WhenEffect) effectNode()         {}
func (*NumericEffect) effectNode()      {}
func (*ObjectAssignEffect) effectNode() {}

// FExp is a numeric expression.
type FExp interface {
	Node
	fexpNode()
}

type NumberFExp struct {
	Number
}

// OperatorFExp is (op e...) as written; a single operand under "-" is a negation.
type OperatorFExp struct {
	Range
	Operator string
	Operands []FExp
}

type FunctionFExp struct {
	FunctionTerm
}

func (*NumberFExp) fexpNode()   {}
func (*OperatorFExp) fexpNode() {}
func (*FunctionFExp) fexpNode() {}

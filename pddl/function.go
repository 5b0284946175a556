package pddl

// FunctionSkeleton declares a numeric function in the :functions section.
type FunctionSkeleton struct {
	base
	name       string
	parameters []*Parameter
	typ        *Type
}

func (f *FunctionSkeleton) Name() string             { return f.name }
func (f *FunctionSkeleton) Parameters() []*Parameter { return f.parameters }
func (f *FunctionSkeleton) Type() *Type              { return f.typ }

func (f *FunctionSkeleton) computeHash() uint64 {
	return hashFields("function-skeleton", hashString(f.name), hashOrdered(f.parameters), f.typ.Hash())
}

func (f *FunctionSkeleton) StructurallyEqual(other *FunctionSkeleton) bool {
	return f.name == other.name && f.typ == other.typ && equalOrdered(f.parameters, other.parameters)
}

func (f *FunctionSkeleton) String() string { return Format(f) }

// Function applies a function skeleton to terms.
type Function struct {
	base
	skeleton *FunctionSkeleton
	terms    []Term
}

func (f *Function) Skeleton() *FunctionSkeleton { return f.skeleton }
func (f *Function) Terms() []Term               { return f.terms }

func (f *Function) computeHash() uint64 {
	return hashFields("function", f.skeleton.Hash(), hashOrdered(f.terms))
}

func (f *Function) StructurallyEqual(other *Function) bool {
	return f.skeleton == other.skeleton && equalOrdered(f.terms, other.terms)
}

func (f *Function) String() string { return Format(f) }

// NumericFluent is an initial value (= (f o...) n) of a ground function.
type NumericFluent struct {
	base
	function *Function
	number   float64
}

func (n *NumericFluent) Function() *Function { return n.function }
func (n *NumericFluent) Number() float64     { return n.number }

func (n *NumericFluent) computeHash() uint64 {
	return hashFields("numeric-fluent", n.function.Hash(), hashFloat(n.number))
}

func (n *NumericFluent) StructurallyEqual(other *NumericFluent) bool {
	return n.function == other.function && n.number == other.number
}

func (n *NumericFluent) String() string { return Format(n) }

// TotalCostFunctionName is the only function effects may change under :action-costs alone
const TotalCostFunctionName = "total-cost"

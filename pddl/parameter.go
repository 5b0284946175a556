package pddl

// Parameter is a typed variable of a parameter list. An either-type yields several types.
type Parameter struct {
	base
	variable *Variable
	types    []*Type
}

func (p *Parameter) Variable() *Variable { return p.variable }
func (p *Parameter) Types() []*Type      { return p.types }

func (p *Parameter) computeHash() uint64 {
	return hashFields("parameter", p.variable.Hash(), hashUnordered(p.types))
}

func (p *Parameter) StructurallyEqual(other *Parameter) bool {
	return p.variable == other.variable && equalUnordered(p.types, other.types)
}

func (p *Parameter) String() string { return Format(p) }

// Predicate is the schema of an atom: a name and its typed parameters.
type Predicate struct {
	base
	name       string
	parameters []*Parameter
}

func (p *Predicate) Name() string             { return p.name }
func (p *Predicate) Parameters() []*Parameter { return p.parameters }
func (p *Predicate) Arity() int               { return len(p.parameters) }

func (p *Predicate) computeHash() uint64 {
	return hashFields("predicate", hashString(p.name), hashOrdered(p.parameters))
}

func (p *Predicate) StructurallyEqual(other *Predicate) bool {
	return p.name == other.name && equalOrdered(p.parameters, other.parameters)
}

func (p *Predicate) String() string { return Format(p) }

// EqualPredicateName is bound when the :equality requirement is declared
const EqualPredicateName = "="

package pddl

// Term is an argument of an atom or a function: either a TermObject or a TermVariable.
type Term interface {
	Node
	computeHash() uint64
	StructurallyEqual(other Term) bool
	assign(id int, hash uint64)
	isTerm()
}

type TermObject struct {
	base
	object *Object
}

func (t *TermObject) Object() *Object { return t.object }
func (*TermObject) isTerm()           {}

func (t *TermObject) computeHash() uint64 {
	return hashFields("term-object", t.object.Hash())
}

func (t *TermObject) StructurallyEqual(other Term) bool {
	o, ok := other.(*TermObject)
	return ok && t.object == o.object
}

func (t *TermObject) String() string { return t.object.name }

type TermVariable struct {
	base
	variable *Variable
}

func (t *TermVariable) Variable() *Variable { return t.variable }
func (*TermVariable) isTerm()               {}

func (t *TermVariable) computeHash() uint64 {
	return hashFields("term-variable", t.variable.Hash())
}

func (t *TermVariable) StructurallyEqual(other Term) bool {
	o, ok := other.(*TermVariable)
	return ok && t.variable == o.variable
}

func (t *TermVariable) String() string { return t.variable.name }

// IsGround reports whether no term refers to a variable.
func IsGround(terms []Term) bool {
	for _, term := range terms {
		if _, ok := term.(*TermVariable); ok {
			return false
		}
	}
	return true
}

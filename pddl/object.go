package pddl

// Object is a constant of a domain or an object of a problem.
type Object struct {
	base
	name  string
	types []*Type
}

func (o *Object) Name() string   { return o.name }
func (o *Object) Types() []*Type { return o.types }

func (o *Object) computeHash() uint64 {
	return hashFields("object", hashString(o.name), hashUnordered(o.types))
}

func (o *Object) StructurallyEqual(other *Object) bool {
	return o.name == other.name && equalUnordered(o.types, other.types)
}

func (o *Object) String() string { return o.name }

// Variable is a name starting with a question mark, bound by a parameter list.
type Variable struct {
	base
	name string
}

func (v *Variable) Name() string { return v.name }

func (v *Variable) computeHash() uint64 {
	return hashFields("variable", hashString(v.name))
}

func (v *Variable) StructurallyEqual(other *Variable) bool {
	return v.name == other.name
}

func (v *Variable) String() string { return v.name }

package pddl

// Atom applies a predicate to terms. Argument position matters.
type Atom struct {
	base
	predicate *Predicate
	terms     []Term
}

func (a *Atom) Predicate() *Predicate { return a.predicate }
func (a *Atom) Terms() []Term         { return a.terms }

func (a *Atom) computeHash() uint64 {
	return hashFields("atom", a.predicate.Hash(), hashOrdered(a.terms))
}

func (a *Atom) StructurallyEqual(other *Atom) bool {
	return a.predicate == other.predicate && equalOrdered(a.terms, other.terms)
}

func (a *Atom) String() string { return Format(a) }

type Literal struct {
	base
	negated bool
	atom    *Atom
}

func (l *Literal) IsNegated() bool { return l.negated }
func (l *Literal) Atom() *Atom     { return l.atom }

func (l *Literal) computeHash() uint64 {
	return hashFields("literal", hashBool(l.negated), l.atom.Hash())
}

func (l *Literal) StructurallyEqual(other *Literal) bool {
	return l.negated == other.negated && l.atom == other.atom
}

func (l *Literal) String() string { return Format(l) }

// GroundAtom is an atom over objects only, as found in the initial state of a problem.
type GroundAtom struct {
	base
	predicate *Predicate
	objects   []*Object
}

func (a *GroundAtom) Predicate() *Predicate { return a.predicate }
func (a *GroundAtom) Objects() []*Object    { return a.objects }

func (a *GroundAtom) computeHash() uint64 {
	return hashFields("ground-atom", a.predicate.Hash(), hashOrdered(a.objects))
}

func (a *GroundAtom) StructurallyEqual(other *GroundAtom) bool {
	return a.predicate == other.predicate && equalOrdered(a.objects, other.objects)
}

func (a *GroundAtom) String() string { return Format(a) }

type GroundLiteral struct {
	base
	negated bool
	atom    *GroundAtom
}

func (l *GroundLiteral) IsNegated() bool   { return l.negated }
func (l *GroundLiteral) Atom() *GroundAtom { return l.atom }

func (l *GroundLiteral) computeHash() uint64 {
	return hashFields("ground-literal", hashBool(l.negated), l.atom.Hash())
}

func (l *GroundLiteral) StructurallyEqual(other *GroundLiteral) bool {
	return l.negated == other.negated && l.atom == other.atom
}

func (l *GroundLiteral) String() string { return Format(l) }

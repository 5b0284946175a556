package pddl

// Domain is the aggregate built from a (define (domain ...)) form.
//
// Types holds the declared types only, the predefined object and number
// types are not part of it unless declared explicitly.
type Domain struct {
	base
	name              string
	requirements      *Requirements
	types             []*Type
	constants         []*Object
	predicates        []*Predicate
	derivedPredicates []*Predicate
	functions         []*FunctionSkeleton
	actions           []*Action
	axioms            []*Axiom
}

func (d *Domain) Name() string                    { return d.name }
func (d *Domain) Requirements() *Requirements     { return d.requirements }
func (d *Domain) Types() []*Type                  { return d.types }
func (d *Domain) Constants() []*Object            { return d.constants }
func (d *Domain) Predicates() []*Predicate        { return d.predicates }
func (d *Domain) DerivedPredicates() []*Predicate { return d.derivedPredicates }
func (d *Domain) Functions() []*FunctionSkeleton  { return d.functions }
func (d *Domain) Actions() []*Action              { return d.actions }
func (d *Domain) Axioms() []*Axiom                { return d.axioms }

func (d *Domain) computeHash() uint64 {
	return hashFields("domain",
		hashString(d.name),
		d.requirements.Hash(),
		hashUnordered(d.types),
		hashUnordered(d.constants),
		hashUnordered(d.predicates),
		hashUnordered(d.derivedPredicates),
		hashUnordered(d.functions),
		hashUnordered(d.actions),
		hashUnordered(d.axioms),
	)
}

func (d *Domain) StructurallyEqual(other *Domain) bool {
	return d.name == other.name &&
		d.requirements == other.requirements &&
		equalUnordered(d.types, other.types) &&
		equalUnordered(d.constants, other.constants) &&
		equalUnordered(d.predicates, other.predicates) &&
		equalUnordered(d.derivedPredicates, other.derivedPredicates) &&
		equalUnordered(d.functions, other.functions) &&
		equalUnordered(d.actions, other.actions) &&
		equalUnordered(d.axioms, other.axioms)
}

func (d *Domain) String() string { return Format(d) }

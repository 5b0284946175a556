package pddl

// Action is a lifted action schema. Condition and Effect may be nil.
type Action struct {
	base
	name       string
	parameters []*Parameter
	condition  Condition
	effect     Effect
}

func (a *Action) Name() string             { return a.name }
func (a *Action) Parameters() []*Parameter { return a.parameters }
func (a *Action) Condition() Condition     { return a.condition }
func (a *Action) Effect() Effect           { return a.effect }

func (a *Action) computeHash() uint64 {
	return hashFields("action", hashString(a.name), hashOrdered(a.parameters),
		hashOptional(a.condition), hashOptional(a.effect))
}

func (a *Action) StructurallyEqual(other *Action) bool {
	return a.name == other.name &&
		a.condition == other.condition &&
		a.effect == other.effect &&
		equalOrdered(a.parameters, other.parameters)
}

func (a *Action) String() string { return Format(a) }

// Axiom derives literal whenever condition holds.
type Axiom struct {
	base
	parameters []*Parameter
	literal    *Literal
	condition  Condition
}

func (a *Axiom) Parameters() []*Parameter { return a.parameters }
func (a *Axiom) Literal() *Literal        { return a.literal }
func (a *Axiom) Condition() Condition     { return a.condition }

func (a *Axiom) computeHash() uint64 {
	return hashFields("axiom", hashOrdered(a.parameters), a.literal.Hash(), a.condition.Hash())
}

func (a *Axiom) StructurallyEqual(other *Axiom) bool {
	return a.literal == other.literal &&
		a.condition == other.condition &&
		equalOrdered(a.parameters, other.parameters)
}

func (a *Axiom) String() string { return Format(a) }

// hashOptional hashes an absent condition or effect as 0
func hashOptional(n Node) uint64 {
	if n == nil {
		return 0
	}
	return n.Hash()
}

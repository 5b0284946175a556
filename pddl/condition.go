package pddl

// Condition is a goal descriptor. The variants are ConditionLiteral, ConditionAnd,
// ConditionOr, ConditionNot, ConditionImply, ConditionExists and ConditionForall.
type Condition interface {
	Node
	computeHash() uint64
	StructurallyEqual(other Condition) bool
	assign(id int, hash uint64)
	isCondition()
}

type ConditionLiteral struct {
	base
	literal *Literal
}

func (c *ConditionLiteral) Literal() *Literal { return c.literal }
func (*ConditionLiteral) isCondition()        {}

func (c *ConditionLiteral) computeHash() uint64 {
	return hashFields("condition-literal", c.literal.Hash())
}

func (c *ConditionLiteral) StructurallyEqual(other Condition) bool {
	o, ok := other.(*ConditionLiteral)
	return ok && c.literal == o.literal
}

func (c *ConditionLiteral) String() string { return Format(c.literal) }

// ConditionAnd is a conjunction, equal to any permutation of itself.
type ConditionAnd struct {
	base
	conditions []Condition
}

func (c *ConditionAnd) Conditions() []Condition { return c.conditions }
func (*ConditionAnd) isCondition()              {}

func (c *ConditionAnd) computeHash() uint64 {
	return hashFields("condition-and", hashUnordered(c.conditions))
}

func (c *ConditionAnd) StructurallyEqual(other Condition) bool {
	o, ok := other.(*ConditionAnd)
	return ok && equalUnordered(c.conditions, o.conditions)
}

func (c *ConditionAnd) String() string { return Format(c) }

// ConditionOr is a disjunction, equal to any permutation of itself.
type ConditionOr struct {
	base
	conditions []Condition
}

func (c *ConditionOr) Conditions() []Condition { return c.conditions }
func (*ConditionOr) isCondition()              {}

func (c *ConditionOr) computeHash() uint64 {
	return hashFields("condition-or", hashUnordered(c.conditions))
}

func (c *ConditionOr) StructurallyEqual(other Condition) bool {
	o, ok := other.(*ConditionOr)
	return ok && equalUnordered(c.conditions, o.conditions)
}

func (c *ConditionOr) String() string { return Format(c) }

type ConditionNot struct {
	base
	condition Condition
}

func (c *ConditionNot) Condition() Condition { return c.condition }
func (*ConditionNot) isCondition()           {}

func (c *ConditionNot) computeHash() uint64 {
	return hashFields("condition-not", c.condition.Hash())
}

func (c *ConditionNot) StructurallyEqual(other Condition) bool {
	o, ok := other.(*ConditionNot)
	return ok && c.condition == o.condition
}

func (c *ConditionNot) String() string { return Format(c) }

type ConditionImply struct {
	base
	left, right Condition
}

func (c *ConditionImply) Left() Condition  { return c.left }
func (c *ConditionImply) Right() Condition { return c.right }
func (*ConditionImply) isCondition()       {}

func (c *ConditionImply) computeHash() uint64 {
	return hashFields("condition-imply", c.left.Hash(), c.right.Hash())
}

func (c *ConditionImply) StructurallyEqual(other Condition) bool {
	o, ok := other.(*ConditionImply)
	return ok && c.left == o.left && c.right == o.right
}

func (c *ConditionImply) String() string { return Format(c) }

type ConditionExists struct {
	base
	parameters []*Parameter
	condition  Condition
}

func (c *ConditionExists) Parameters() []*Parameter { return c.parameters }
func (c *ConditionExists) Condition() Condition     { return c.condition }
func (*ConditionExists) isCondition()               {}

func (c *ConditionExists) computeHash() uint64 {
	return hashFields("condition-exists", hashOrdered(c.parameters), c.condition.Hash())
}

func (c *ConditionExists) StructurallyEqual(other Condition) bool {
	o, ok := other.(*ConditionExists)
	return ok && c.condition == o.condition && equalOrdered(c.parameters, o.parameters)
}

func (c *ConditionExists) String() string { return Format(c) }

type ConditionForall struct {
	base
	parameters []*Parameter
	condition  Condition
}

func (c *ConditionForall) Parameters() []*Parameter { return c.parameters }
func (c *ConditionForall) Condition() Condition     { return c.condition }
func (*ConditionForall) isCondition()               {}

func (c *ConditionForall) computeHash() uint64 {
	return hashFields("condition-forall", hashOrdered(c.parameters), c.condition.Hash())
}

func (c *ConditionForall) StructurallyEqual(other Condition) bool {
	o, ok := other.(*ConditionForall)
	return ok && c.condition == o.condition && equalOrdered(c.parameters, o.parameters)
}

func (c *ConditionForall) String() string { return Format(c) }

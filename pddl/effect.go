package pddl

type AssignOperatorEnum int

const (
	Assign AssignOperatorEnum = iota
	ScaleUp
	ScaleDown
	Increase
	Decrease
)

var assignOperatorKeywords = [...]string{
	Assign:    "assign",
	ScaleUp:   "scale-up",
	ScaleDown: "scale-down",
	Increase:  "increase",
	Decrease:  "decrease",
}

func (op AssignOperatorEnum) String() string { return assignOperatorKeywords[op] }

// AssignOperatorFromKeyword maps e.g. "increase" to its operator.
func AssignOperatorFromKeyword(keyword string) (AssignOperatorEnum, bool) {
	for op, s := range assignOperatorKeywords {
		if s == keyword {
			return AssignOperatorEnum(op), true
		}
	}
	return 0, false
}

// Effect is an action effect. The variants are EffectLiteral, EffectAnd,
// EffectNumeric, EffectConditionalForall and EffectConditionalWhen.
type Effect interface {
	Node
	computeHash() uint64
	StructurallyEqual(other Effect) bool
	assign(id int, hash uint64)
	isEffect()
}

type EffectLiteral struct {
	base
	literal *Literal
}

func (e *EffectLiteral) Literal() *Literal { return e.literal }
func (*EffectLiteral) isEffect()           {}

func (e *EffectLiteral) computeHash() uint64 {
	return hashFields("effect-literal", e.literal.Hash())
}

func (e *EffectLiteral) StructurallyEqual(other Effect) bool {
	o, ok := other.(*EffectLiteral)
	return ok && e.literal == o.literal
}

func (e *EffectLiteral) String() string { return Format(e.literal) }

// EffectAnd is equal to any permutation of itself.
type EffectAnd struct {
	base
	effects []Effect
}

func (e *EffectAnd) Effects() []Effect { return e.effects }
func (*EffectAnd) isEffect()           {}

func (e *EffectAnd) computeHash() uint64 {
	return hashFields("effect-and", hashUnordered(e.effects))
}

func (e *EffectAnd) StructurallyEqual(other Effect) bool {
	o, ok := other.(*EffectAnd)
	return ok && equalUnordered(e.effects, o.effects)
}

func (e *EffectAnd) String() string { return Format(e) }

// EffectNumeric updates function by expression, e.g. (increase (total-cost) 1).
type EffectNumeric struct {
	base
	op         AssignOperatorEnum
	function   *Function
	expression FunctionExpression
}

func (e *EffectNumeric) Operator() AssignOperatorEnum   { return e.op }
func (e *EffectNumeric) Function() *Function            { return e.function }
func (e *EffectNumeric) Expression() FunctionExpression { return e.expression }
func (*EffectNumeric) isEffect()                        {}

func (e *EffectNumeric) computeHash() uint64 {
	return hashFields("effect-numeric", uint64(e.op), e.function.Hash(), e.expression.Hash())
}

func (e *EffectNumeric) StructurallyEqual(other Effect) bool {
	o, ok := other.(*EffectNumeric)
	return ok && e.op == o.op && e.function == o.function && e.expression == o.expression
}

func (e *EffectNumeric) String() string { return Format(e) }

type EffectConditionalForall struct {
	base
	parameters []*Parameter
	effect     Effect
}

func (e *EffectConditionalForall) Parameters() []*Parameter { return e.parameters }
func (e *EffectConditionalForall) Effect() Effect           { return e.effect }
func (*EffectConditionalForall) isEffect()                  {}

func (e *EffectConditionalForall) computeHash() uint64 {
	return hashFields("effect-forall", hashOrdered(e.parameters), e.effect.Hash())
}

func (e *EffectConditionalForall) StructurallyEqual(other Effect) bool {
	o, ok := other.(*EffectConditionalForall)
	return ok && e.effect == o.effect && equalOrdered(e.parameters, o.parameters)
}

func (e *EffectConditionalForall) String() string { return Format(e) }

type EffectConditionalWhen struct {
	base
	condition Condition
	effect    Effect
}

func (e *EffectConditionalWhen) Condition() Condition { return e.condition }
func (e *EffectConditionalWhen) Effect() Effect       { return e.effect }
func (*EffectConditionalWhen) isEffect()              {}

func (e *EffectConditionalWhen) computeHash() uint64 {
	return hashFields("effect-when", e.condition.Hash(), e.effect.Hash())
}

func (e *EffectConditionalWhen) StructurallyEqual(other Effect) bool {
	o, ok := other.(*EffectConditionalWhen)
	return ok && e.condition == o.condition && e.effect == o.effect
}

func (e *EffectConditionalWhen) String() string { return Format(e) }

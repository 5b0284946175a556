package pddl

import (
	"math"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

type blocksFixture struct {
	f      *Factories
	object *Type
	block  *Type
	a, b   *Object
	x, y   *Variable
	on     *Predicate
}

func newBlocksFixture() blocksFixture {
	f := NewFactories()
	object, _ := f.GetOrCreateType(ObjectTypeName, nil)
	block, _ := f.GetOrCreateType("block", []*Type{object})
	a, _ := f.GetOrCreateObject("a", []*Type{block})
	b, _ := f.GetOrCreateObject("b", []*Type{block})
	x, _ := f.GetOrCreateVariable("?x")
	y, _ := f.GetOrCreateVariable("?y")
	px, _ := f.GetOrCreateParameter(x, []*Type{block})
	py, _ := f.GetOrCreateParameter(y, []*Type{block})
	on, _ := f.GetOrCreatePredicate("on", []*Parameter{px, py})
	return blocksFixture{f: f, object: object, block: block, a: a, b: b, x: x, y: y, on: on}
}

func (fx blocksFixture) literal(negated bool, objects ...*Object) *Literal {
	terms := make([]Term, len(objects))
	for i, o := range objects {
		terms[i], _ = fx.f.GetOrCreateTermObject(o)
	}
	atom, _ := fx.f.GetOrCreateAtom(fx.on, terms)
	lit, _ := fx.f.GetOrCreateLiteral(negated, atom)
	return lit
}

func TestGetOrCreateIsIdempotent(t *testing.T) {
	f := NewFactories()
	first, isNew := f.GetOrCreateVariable("?x")
	assert.True(t, isNew)
	second, isNew := f.GetOrCreateVariable("?x")
	assert.False(t, isNew)
	assert.Same(t, first, second)
	assert.Equal(t, first.Identifier(), second.Identifier())
	assert.Equal(t, first.Hash(), second.Hash())
}

func TestIdentifiersIncreasePerFamily(t *testing.T) {
	f := NewFactories()
	x, _ := f.GetOrCreateVariable("?x")
	y, _ := f.GetOrCreateVariable("?y")
	object, _ := f.GetOrCreateType(ObjectTypeName, nil)
	assert.Equal(t, 0, x.Identifier())
	assert.Equal(t, 1, y.Identifier())
	assert.Equal(t, 0, object.Identifier())

	again, ok := f.variables.get(1)
	assert.True(t, ok)
	assert.Same(t, y, again)
	_, ok = f.variables.get(2)
	assert.False(t, ok)
}

func TestConditionAndIsOrderInsensitive(t *testing.T) {
	fx := newBlocksFixture()
	ab, _ := fx.f.GetOrCreateConditionLiteral(fx.literal(false, fx.a, fx.b))
	ba, _ := fx.f.GetOrCreateConditionLiteral(fx.literal(false, fx.b, fx.a))

	first, isNew := fx.f.GetOrCreateConditionAnd([]Condition{ab, ba})
	assert.True(t, isNew)
	second, isNew := fx.f.GetOrCreateConditionAnd([]Condition{ba, ab})
	assert.False(t, isNew)
	assert.Same(t, first, second)

	or, _ := fx.f.GetOrCreateConditionOr([]Condition{ab, ba})
	assert.NotSame(t, first, or)
}

func TestAtomIsOrderSensitive(t *testing.T) {
	fx := newBlocksFixture()
	ab := fx.literal(false, fx.a, fx.b)
	ba := fx.literal(false, fx.b, fx.a)
	assert.NotSame(t, ab.Atom(), ba.Atom())
	assert.NotSame(t, ab, ba)
}

func TestCollectionsKeepMultisetSemantics(t *testing.T) {
	fx := newBlocksFixture()
	c, _ := fx.f.GetOrCreateConditionLiteral(fx.literal(false, fx.a, fx.b))
	single, _ := fx.f.GetOrCreateConditionAnd([]Condition{c})
	double, _ := fx.f.GetOrCreateConditionAnd([]Condition{c, c})
	assert.NotSame(t, single, double)
	assert.Len(t, double.(*ConditionAnd).Conditions(), 2)
}

func TestTypeBasesAreOrderInsensitive(t *testing.T) {
	f := NewFactories()
	a, _ := f.GetOrCreateType("a", nil)
	b, _ := f.GetOrCreateType("b", nil)
	first, _ := f.GetOrCreateType("c", []*Type{a, b})
	second, isNew := f.GetOrCreateType("c", []*Type{b, a})
	assert.False(t, isNew)
	assert.Same(t, first, second)
	// declaration order is what the first creation saw
	assert.Equal(t, []*Type{a, b}, second.Bases())
}

func TestVariantsOfOneFamilyDoNotCollide(t *testing.T) {
	fx := newBlocksFixture()
	lit := fx.literal(false, fx.a, fx.b)
	cond, _ := fx.f.GetOrCreateConditionLiteral(lit)
	and, _ := fx.f.GetOrCreateConditionAnd([]Condition{cond})
	or, _ := fx.f.GetOrCreateConditionOr([]Condition{cond})
	assert.NotEqual(t, and.Identifier(), or.Identifier())

	objTerm, _ := fx.f.GetOrCreateTermObject(fx.a)
	varTerm, _ := fx.f.GetOrCreateTermVariable(fx.x)
	assert.NotSame(t, objTerm, varTerm)
	assert.Equal(t, 0, objTerm.Identifier())
	assert.Equal(t, 1, varTerm.Identifier())
}

func TestRequirementsIgnoreOrderAndDuplicates(t *testing.T) {
	f := NewFactories()
	first, _ := f.GetOrCreateRequirements([]RequirementEnum{Typing, Strips})
	second, isNew := f.GetOrCreateRequirements([]RequirementEnum{Strips, Typing, Strips})
	assert.False(t, isNew)
	assert.Same(t, first, second)
	assert.Equal(t, []RequirementEnum{Strips, Typing}, second.Requirements())
	assert.True(t, second.Test(Typing))
	assert.False(t, second.Test(Equality))
}

func TestConcurrentGetOrCreate(t *testing.T) {
	f := NewFactories()
	const workers = 16
	results := make([]*Variable, workers)
	created := make([]bool, workers)
	var wg sync.WaitGroup
	for i := range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results[i], created[i] = f.GetOrCreateVariable("?shared")
		}()
	}
	wg.Wait()

	newCount := 0
	for i := range workers {
		assert.Same(t, results[0], results[i])
		if created[i] {
			newCount++
		}
	}
	assert.Equal(t, 1, newCount)
	assert.Equal(t, 1, f.variables.len())
}

func TestStatsCountsDistinctNodes(t *testing.T) {
	fx := newBlocksFixture()
	fx.literal(false, fx.a, fx.b)
	fx.literal(false, fx.a, fx.b)

	counts := map[string]int{}
	for _, stat := range fx.f.Stats() {
		counts[stat.Family] = stat.Count
	}
	assert.Equal(t, 2, counts["types"])
	assert.Equal(t, 2, counts["objects"])
	assert.Equal(t, 1, counts["atoms"])
	assert.Equal(t, 1, counts["literals"])
	assert.Equal(t, 0, counts["actions"])
}

func TestCreateDomainStoresEveryCall(t *testing.T) {
	fx := newBlocksFixture()
	reqs, _ := fx.f.GetOrCreateRequirements([]RequirementEnum{Strips, Typing})
	content := DomainContent{Name: "blocks", Requirements: reqs, Predicates: []*Predicate{fx.on}}
	first := fx.f.CreateDomain(content)
	second := fx.f.CreateDomain(content)

	assert.NotSame(t, first, second)
	assert.True(t, first.StructurallyEqual(second))
	assert.Equal(t, 0, first.Identifier())
	assert.Equal(t, 1, second.Identifier())
	assert.Equal(t, first.Hash(), second.Hash())

	problems := ProblemContent{Domain: first, Name: "p", Requirements: reqs, Objects: []*Object{fx.a}}
	p1 := fx.f.CreateProblem(problems)
	p2 := fx.f.CreateProblem(problems)
	assert.NotSame(t, p1, p2)
	assert.Equal(t, []int{0, 1}, []int{p1.Identifier(), p2.Identifier()})

	counts := map[string]int{}
	for _, stat := range fx.f.Stats() {
		counts[stat.Family] = stat.Count
	}
	assert.Equal(t, 2, counts["domains"])
	assert.Equal(t, 2, counts["problems"])
}

func TestLookupByIdentifier(t *testing.T) {
	fx := newBlocksFixture()

	for _, typ := range []*Type{fx.object, fx.block} {
		found, ok := fx.f.TypeByIdentifier(typ.Identifier())
		assert.True(t, ok)
		assert.Same(t, typ, found)
	}
	for _, object := range []*Object{fx.a, fx.b} {
		found, ok := fx.f.ObjectByIdentifier(object.Identifier())
		assert.True(t, ok)
		assert.Same(t, object, found)
	}
	found, ok := fx.f.PredicateByIdentifier(fx.on.Identifier())
	assert.True(t, ok)
	assert.Same(t, fx.on, found)

	_, ok = fx.f.TypeByIdentifier(2)
	assert.False(t, ok)
	_, ok = fx.f.ObjectByIdentifier(-1)
	assert.False(t, ok)
	_, ok = fx.f.PredicateByIdentifier(1)
	assert.False(t, ok)
}

func TestSignedZeroIsOneNumber(t *testing.T) {
	f := NewFactories()
	zero, _ := f.GetOrCreateFunctionExpressionNumber(0)
	negativeZero, isNew := f.GetOrCreateFunctionExpressionNumber(math.Copysign(0, -1))
	assert.False(t, isNew)
	assert.Same(t, zero, negativeZero)
}

func TestNumbersPrintWithoutExponent(t *testing.T) {
	f := NewFactories()
	testCases := map[float64]string{
		0.00001: "0.00001",
		1e21:    "1000000000000000000000",
		-2.5:    "-2.5",
		3:       "3",
	}
	for number, expected := range testCases {
		e, _ := f.GetOrCreateFunctionExpressionNumber(number)
		assert.Equal(t, expected, e.String())
	}
}

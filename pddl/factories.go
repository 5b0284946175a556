package pddl

import "slices"

// Factories owns one unique store per node family. Every node handed out
// stays valid, and unique for its content, as long as the Factories value lives.
//
// All methods are safe for concurrent use. Children passed to a GetOrCreate
// method must have been created by the same Factories.
type Factories struct {
	requirements        uniqueFactory[*Requirements]
	types               uniqueFactory[*Type]
	variables           uniqueFactory[*Variable]
	objects             uniqueFactory[*Object]
	terms               uniqueFactory[Term]
	parameters          uniqueFactory[*Parameter]
	predicates          uniqueFactory[*Predicate]
	atoms               uniqueFactory[*Atom]
	literals            uniqueFactory[*Literal]
	groundAtoms         uniqueFactory[*GroundAtom]
	groundLiterals      uniqueFactory[*GroundLiteral]
	conditions          uniqueFactory[Condition]
	effects             uniqueFactory[Effect]
	functionExpressions uniqueFactory[FunctionExpression]
	functionSkeletons   uniqueFactory[*FunctionSkeleton]
	functions           uniqueFactory[*Function]
	numericFluents      uniqueFactory[*NumericFluent]
	metrics             uniqueFactory[*OptimizationMetric]
	actions             uniqueFactory[*Action]
	axioms              uniqueFactory[*Axiom]
	domains             uniqueFactory[*Domain]
	problems            uniqueFactory[*Problem]
}

func NewFactories() *Factories {
	return &Factories{}
}

// GetOrCreateRequirements ignores duplicates and order in requirements.
func (f *Factories) GetOrCreateRequirements(requirements []RequirementEnum) (*Requirements, bool) {
	return f.requirements.getOrCreate(&Requirements{requirements: compactRequirements(slices.Clone(requirements))})
}

func (f *Factories) GetOrCreateType(name string, bases []*Type) (*Type, bool) {
	return f.types.getOrCreate(&Type{name: name, bases: slices.Clone(bases)})
}

func (f *Factories) GetOrCreateVariable(name string) (*Variable, bool) {
	return f.variables.getOrCreate(&Variable{name: name})
}

func (f *Factories) GetOrCreateObject(name string, types []*Type) (*Object, bool) {
	return f.objects.getOrCreate(&Object{name: name, types: slices.Clone(types)})
}

func (f *Factories) GetOrCreateTermObject(object *Object) (Term, bool) {
	return f.terms.getOrCreate(&TermObject{object: object})
}

func (f *Factories) GetOrCreateTermVariable(variable *Variable) (Term, bool) {
	return f.terms.getOrCreate(&TermVariable{variable: variable})
}

func (f *Factories) GetOrCreateParameter(variable *Variable, types []*Type) (*Parameter, bool) {
	return f.parameters.getOrCreate(&Parameter{variable: variable, types: slices.Clone(types)})
}

func (f *Factories) GetOrCreatePredicate(name string, parameters []*Parameter) (*Predicate, bool) {
	return f.predicates.getOrCreate(&Predicate{name: name, parameters: slices.Clone(parameters)})
}

func (f *Factories) GetOrCreateAtom(predicate *Predicate, terms []Term) (*Atom, bool) {
	return f.atoms.getOrCreate(&Atom{predicate: predicate, terms: slices.Clone(terms)})
}

func (f *Factories) GetOrCreateLiteral(negated bool, atom *Atom) (*Literal, bool) {
	return f.literals.getOrCreate(&Literal{negated: negated, atom: atom})
}

func (f *Factories) GetOrCreateGroundAtom(predicate *Predicate, objects []*Object) (*GroundAtom, bool) {
	return f.groundAtoms.getOrCreate(&GroundAtom{predicate: predicate, objects: slices.Clone(objects)})
}

func (f *Factories) GetOrCreateGroundLiteral(negated bool, atom *GroundAtom) (*GroundLiteral, bool) {
	return f.groundLiterals.getOrCreate(&GroundLiteral{negated: negated, atom: atom})
}

func (f *Factories) GetOrCreateConditionLiteral(literal *Literal) (Condition, bool) {
	return f.conditions.getOrCreate(&ConditionLiteral{literal: literal})
}

func (f *Factories) GetOrCreateConditionAnd(conditions []Condition) (Condition, bool) {
	return f.conditions.getOrCreate(&ConditionAnd{conditions: slices.Clone(conditions)})
}

func (f *Factories) GetOrCreateConditionOr(conditions []Condition) (Condition, bool) {
	return f.conditions.getOrCreate(&ConditionOr{conditions: slices.Clone(conditions)})
}

func (f *Factories) GetOrCreateConditionNot(condition Condition) (Condition, bool) {
	return f.conditions.getOrCreate(&ConditionNot{condition: condition})
}

func (f *Factories) GetOrCreateConditionImply(left, right Condition) (Condition, bool) {
	return f.conditions.getOrCreate(&ConditionImply{left: left, right: right})
}

func (f *Factories) GetOrCreateConditionExists(parameters []*Parameter, condition Condition) (Condition, bool) {
	return f.conditions.getOrCreate(&ConditionExists{parameters: slices.Clone(parameters), condition: condition})
}

func (f *Factories) GetOrCreateConditionForall(parameters []*Parameter, condition Condition) (Condition, bool) {
	return f.conditions.getOrCreate(&ConditionForall{parameters: slices.Clone(parameters), condition: condition})
}

func (f *Factories) GetOrCreateEffectLiteral(literal *Literal) (Effect, bool) {
	return f.effects.getOrCreate(&EffectLiteral{literal: literal})
}

func (f *Factories) GetOrCreateEffectAnd(effects []Effect) (Effect, bool) {
	return f.effects.getOrCreate(&EffectAnd{effects: slices.Clone(effects)})
}

func (f *Factories) GetOrCreateEffectNumeric(op AssignOperatorEnum, function *Function, expression FunctionExpression) (Effect, bool) {
	return f.effects.getOrCreate(&EffectNumeric{op: op, function: function, expression: expression})
}

func (f *Factories) GetOrCreateEffectConditionalForall(parameters []*Parameter, effect Effect) (Effect, bool) {
	return f.effects.getOrCreate(&EffectConditionalForall{parameters: slices.Clone(parameters), effect: effect})
}

func (f *Factories) GetOrCreateEffectConditionalWhen(condition Condition, effect Effect) (Effect, bool) {
	return f.effects.getOrCreate(&EffectConditionalWhen{condition: condition, effect: effect})
}

func (f *Factories) GetOrCreateFunctionExpressionNumber(number float64) (FunctionExpression, bool) {
	return f.functionExpressions.getOrCreate(&FunctionExpressionNumber{number: number})
}

func (f *Factories) GetOrCreateFunctionExpressionBinaryOperator(op BinaryOperatorEnum, left, right FunctionExpression) (FunctionExpression, bool) {
	return f.functionExpressions.getOrCreate(&FunctionExpressionBinaryOperator{op: op, left: left, right: right})
}

func (f *Factories) GetOrCreateFunctionExpressionMultiOperator(op MultiOperatorEnum, operands []FunctionExpression) (FunctionExpression, bool) {
	return f.functionExpressions.getOrCreate(&FunctionExpressionMultiOperator{op: op, operands: slices.Clone(operands)})
}

func (f *Factories) GetOrCreateFunctionExpressionMinus(expr FunctionExpression) (FunctionExpression, bool) {
	return f.functionExpressions.getOrCreate(&FunctionExpressionMinus{expr: expr})
}

func (f *Factories) GetOrCreateFunctionExpressionFunction(function *Function) (FunctionExpression, bool) {
	return f.functionExpressions.getOrCreate(&FunctionExpressionFunction{function: function})
}

func (f *Factories) GetOrCreateFunctionSkeleton(name string, parameters []*Parameter, typ *Type) (*FunctionSkeleton, bool) {
	return f.functionSkeletons.getOrCreate(&FunctionSkeleton{name: name, parameters: slices.Clone(parameters), typ: typ})
}

func (f *Factories) GetOrCreateFunction(skeleton *FunctionSkeleton, terms []Term) (*Function, bool) {
	return f.functions.getOrCreate(&Function{skeleton: skeleton, terms: slices.Clone(terms)})
}

func (f *Factories) GetOrCreateNumericFluent(function *Function, number float64) (*NumericFluent, bool) {
	return f.numericFluents.getOrCreate(&NumericFluent{function: function, number: number})
}

func (f *Factories) GetOrCreateOptimizationMetric(optimization OptimizationMetricEnum, expression FunctionExpression) (*OptimizationMetric, bool) {
	return f.metrics.getOrCreate(&OptimizationMetric{optimization: optimization, expression: expression})
}

// GetOrCreateAction accepts a nil condition or effect.
func (f *Factories) GetOrCreateAction(name string, parameters []*Parameter, condition Condition, effect Effect) (*Action, bool) {
	return f.actions.getOrCreate(&Action{name: name, parameters: slices.Clone(parameters), condition: condition, effect: effect})
}

func (f *Factories) GetOrCreateAxiom(parameters []*Parameter, literal *Literal, condition Condition) (*Axiom, bool) {
	return f.axioms.getOrCreate(&Axiom{parameters: slices.Clone(parameters), literal: literal, condition: condition})
}

// DomainContent lists the fields of a Domain
type DomainContent struct {
	Name              string
	Requirements      *Requirements
	Types             []*Type
	Constants         []*Object
	Predicates        []*Predicate
	DerivedPredicates []*Predicate
	Functions         []*FunctionSkeleton
	Actions           []*Action
	Axioms            []*Axiom
}

// CreateDomain stores a new Domain on every call, equal content included.
// One parse yields one Domain.
func (f *Factories) CreateDomain(c DomainContent) *Domain {
	return f.domains.create(&Domain{
		name:              c.Name,
		requirements:      c.Requirements,
		types:             slices.Clone(c.Types),
		constants:         slices.Clone(c.Constants),
		predicates:        slices.Clone(c.Predicates),
		derivedPredicates: slices.Clone(c.DerivedPredicates),
		functions:         slices.Clone(c.Functions),
		actions:           slices.Clone(c.Actions),
		axioms:            slices.Clone(c.Axioms),
	})
}

// ProblemContent lists the fields of a Problem. Goal and Metric are optional.
type ProblemContent struct {
	Domain            *Domain
	Name              string
	Requirements      *Requirements
	Objects           []*Object
	DerivedPredicates []*Predicate
	InitialLiterals   []*GroundLiteral
	NumericFluents    []*NumericFluent
	Goal              Condition
	Metric            *OptimizationMetric
	Axioms            []*Axiom
}

// CreateProblem stores a new Problem on every call, like CreateDomain
func (f *Factories) CreateProblem(c ProblemContent) *Problem {
	return f.problems.create(&Problem{
		domain:            c.Domain,
		name:              c.Name,
		requirements:      c.Requirements,
		objects:           slices.Clone(c.Objects),
		derivedPredicates: slices.Clone(c.DerivedPredicates),
		initialLiterals:   slices.Clone(c.InitialLiterals),
		numericFluents:    slices.Clone(c.NumericFluents),
		goal:              c.Goal,
		metric:            c.Metric,
		axioms:            slices.Clone(c.Axioms),
	})
}

type FamilyStat struct {
	Family string
	Count  int
}

// Stats returns the number of distinct nodes per family, in a fixed order.
func (f *Factories) Stats() []FamilyStat {
	return []FamilyStat{
		{"requirements", f.requirements.len()},
		{"types", f.types.len()},
		{"variables", f.variables.len()},
		{"objects", f.objects.len()},
		{"terms", f.terms.len()},
		{"parameters", f.parameters.len()},
		{"predicates", f.predicates.len()},
		{"atoms", f.atoms.len()},
		{"literals", f.literals.len()},
		{"ground atoms", f.groundAtoms.len()},
		{"ground literals", f.groundLiterals.len()},
		{"conditions", f.conditions.len()},
		{"effects", f.effects.len()},
		{"function expressions", f.functionExpressions.len()},
		{"function skeletons", f.functionSkeletons.len()},
		{"functions", f.functions.len()},
		{"numeric fluents", f.numericFluents.len()},
		{"metrics", f.metrics.len()},
		{"actions", f.actions.len()},
		{"axioms", f.axioms.len()},
		{"domains", f.domains.len()},
		{"problems", f.problems.len()},
	}
}

// TypeByIdentifier returns the type with the given identifier.
func (f *Factories) TypeByIdentifier(id int) (*Type, bool) {
	return f.types.get(id)
}

// PredicateByIdentifier returns the predicate with the given identifier.
func (f *Factories) PredicateByIdentifier(id int) (*Predicate, bool) {
	return f.predicates.get(id)
}

// ObjectByIdentifier returns the object with the given identifier.
func (f *Factories) ObjectByIdentifier(id int) (*Object, bool) {
	return f.objects.get(id)
}

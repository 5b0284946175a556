package pddl

// Problem is the aggregate built from a (define (problem ...)) form.
// Goal and Metric may be nil.
type Problem struct {
	base
	domain            *Domain
	name              string
	requirements      *Requirements
	objects           []*Object
	derivedPredicates []*Predicate
	initialLiterals   []*GroundLiteral
	numericFluents    []*NumericFluent
	goal              Condition
	metric            *OptimizationMetric
	axioms            []*Axiom
}

func (p *Problem) Domain() *Domain                   { return p.domain }
func (p *Problem) Name() string                      { return p.name }
func (p *Problem) Requirements() *Requirements       { return p.requirements }
func (p *Problem) Objects() []*Object                { return p.objects }
func (p *Problem) DerivedPredicates() []*Predicate   { return p.derivedPredicates }
func (p *Problem) InitialLiterals() []*GroundLiteral { return p.initialLiterals }
func (p *Problem) NumericFluents() []*NumericFluent  { return p.numericFluents }
func (p *Problem) Goal() Condition                   { return p.goal }
func (p *Problem) Metric() *OptimizationMetric       { return p.metric }
func (p *Problem) Axioms() []*Axiom                  { return p.axioms }

func (p *Problem) computeHash() uint64 {
	var metricHash uint64
	if p.metric != nil {
		metricHash = p.metric.Hash()
	}
	return hashFields("problem",
		p.domain.Hash(),
		hashString(p.name),
		p.requirements.Hash(),
		hashUnordered(p.objects),
		hashUnordered(p.derivedPredicates),
		hashUnordered(p.initialLiterals),
		hashUnordered(p.numericFluents),
		hashOptional(p.goal),
		metricHash,
		hashUnordered(p.axioms),
	)
}

func (p *Problem) StructurallyEqual(other *Problem) bool {
	return p.domain == other.domain &&
		p.name == other.name &&
		p.requirements == other.requirements &&
		p.goal == other.goal &&
		p.metric == other.metric &&
		equalUnordered(p.objects, other.objects) &&
		equalUnordered(p.derivedPredicates, other.derivedPredicates) &&
		equalUnordered(p.initialLiterals, other.initialLiterals) &&
		equalUnordered(p.numericFluents, other.numericFluents) &&
		equalUnordered(p.axioms, other.axioms)
}

func (p *Problem) String() string { return Format(p) }

package frontend

import (
	"github.com/Timisorean/Loki/frontend/ast"
	"github.com/Timisorean/Loki/frontend/pddlerr"
	"github.com/Timisorean/Loki/frontend/scope"
	"github.com/Timisorean/Loki/pddl"
	"github.com/hashicorp/go-set/v3"
	"github.com/pkg/errors"
)

// ProblemParser builds a pddl.Problem against an already parsed domain.
// Names of the domain are visible through the parent of its ScopeStack.
type ProblemParser struct {
	builder
	domain  *DomainParser
	source  *pddlerr.Source
	problem *pddl.Problem
}

// NewProblemParser shares the factories and position cache of domain, which must have been parsed.
func NewProblemParser(domain *DomainParser, source *pddlerr.Source) *ProblemParser {
	if domain.Domain() == nil {
		panic(errors.New("NewProblemParser needs a successfully parsed domain"))
	}
	return &ProblemParser{
		builder: builder{
			factories:  domain.factories,
			positions:  domain.positions,
			scopes:     scope.NewScopeStack(domain.scopes, source),
			objectType: domain.objectType,
			numberType: domain.numberType,
		},
		domain: domain,
		source: source,
	}
}

func (p *ProblemParser) Positions() *PositionCache { return p.positions }
func (p *ProblemParser) Scopes() *scope.ScopeStack { return p.scopes }
func (p *ProblemParser) Source() *pddlerr.Source   { return p.source }
func (p *ProblemParser) Problem() *pddl.Problem    { return p.problem }

// Parse builds the problem of pr. It fails with a pddlerr.PDDLError on the first
// semantic error found. A ProblemParser can only parse one problem.
func (p *ProblemParser) Parse(pr *ast.Problem) (*pddl.Problem, error) {
	if p.scopes.Global().Len() != 0 {
		panic(errors.New("ProblemParser.Parse called twice"))
	}
	problem, err := p.parse(pr)
	if err != nil {
		logger.Debug("problem construction failed", "problem", pr.Name.Value, "error", err)
		return nil, err
	}
	p.problem = problem
	logger.Debug("built problem", "problem", problem.Name(), "objects", len(problem.Objects()))
	return problem, nil
}

func (p *ProblemParser) parse(pr *ast.Problem) (*pddl.Problem, error) {
	domain := p.domain.Domain()
	if pr.DomainName.Value != domain.Name() {
		return nil, pddlerr.New(pddlerr.NewMismatchedDomain{
			Positioner: pr.DomainName.Range,
			Expected:   domain.Name(),
			Actual:     pr.DomainName.Value,
		})
	}
	if err := unsupported(pr.Unsupported); err != nil {
		return nil, err
	}
	requirements, err := p.requirementsSection(pr.Requirements, nil)
	if err != nil {
		return nil, err
	}
	p.requirements = p.mergeRequirements(domain.Requirements(), requirements)

	objects, err := p.objects(pr.Objects, pddlerr.CategoryObject)
	if err != nil {
		return nil, err
	}
	derivedPredicates, err := p.declareDerivedPredicates(pr.Axioms)
	if err != nil {
		return nil, err
	}
	literals, fluents, err := p.initial(pr.Init)
	if err != nil {
		return nil, err
	}
	goal, err := p.condition(pr.Goal)
	if err != nil {
		return nil, err
	}
	logger.Debug("built goal", "problem", pr.Name.Value, "goal", ast.Slog(pr.Goal))
	metric, err := p.metric(pr.Metric)
	if err != nil {
		return nil, err
	}
	axioms, err := p.axioms(pr.Axioms)
	if err != nil {
		return nil, err
	}

	problem := p.factories.CreateProblem(pddl.ProblemContent{
		Domain:            domain,
		Name:              pr.Name.Value,
		Requirements:      requirements,
		Objects:           objects,
		DerivedPredicates: derivedPredicates,
		InitialLiterals:   literals,
		NumericFluents:    fluents,
		Goal:              goal,
		Metric:            metric,
		Axioms:            axioms,
	})
	p.positions.record(problem, pr)
	return problem, nil
}

// mergeRequirements returns what the problem may use: the requirements of the domain and its own
func (p *ProblemParser) mergeRequirements(domain, own *pddl.Requirements) *pddl.Requirements {
	if len(own.Requirements()) == 0 {
		return domain
	}
	merged := set.From(domain.Requirements())
	merged.InsertSlice(own.Requirements())
	requirements, _ := p.factories.GetOrCreateRequirements(merged.Slice())
	return requirements
}

// initial splits :init into ground literals and numeric fluents
func (p *ProblemParser) initial(section *ast.Section[ast.Init]) ([]*pddl.GroundLiteral, []*pddl.NumericFluent, error) {
	if section == nil {
		return nil, nil, nil
	}
	var (
		literals []*pddl.GroundLiteral
		fluents  []*pddl.NumericFluent
	)
	for _, element := range section.Items {
		switch element := element.(type) {
		case *ast.Literal:
			literal, err := p.groundLiteral(element)
			if err != nil {
				return nil, nil, err
			}
			literals = append(literals, literal)
		case *ast.NumericInit:
			if err := p.require(element, "numeric fluent", pddl.NumericFluents, pddl.ActionCosts); err != nil {
				return nil, nil, err
			}
			function, err := p.function(&element.Function)
			if err != nil {
				return nil, nil, err
			}
			fluent, _ := p.factories.GetOrCreateNumericFluent(function, element.Value.Value)
			p.positions.record(fluent, element)
			fluents = append(fluents, fluent)
		default:
			panic(unknownNode(element))
		}
	}
	return literals, fluents, nil
}

func (p *ProblemParser) metric(m *ast.Metric) (*pddl.OptimizationMetric, error) {
	if m == nil {
		return nil, nil
	}
	if err := p.require(m, ":metric", pddl.NumericFluents, pddl.ActionCosts); err != nil {
		return nil, err
	}
	if ft, ok := mentionsFunction(m.Expression, "total-time"); ok {
		return nil, pddlerr.New(pddlerr.NewNotImplemented{Positioner: ft.Range, Construct: "total-time"})
	}
	expression, err := p.functionExpression(m.Expression)
	if err != nil {
		return nil, err
	}
	optimization := pddl.Minimize
	if m.Optimization == "maximize" {
		optimization = pddl.Maximize
	}
	metric, _ := p.factories.GetOrCreateOptimizationMetric(optimization, expression)
	p.positions.record(metric, m)
	return metric, nil
}

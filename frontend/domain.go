package frontend

import (
	"github.com/Timisorean/Loki/frontend/ast"
	"github.com/Timisorean/Loki/frontend/pddlerr"
	"github.com/Timisorean/Loki/frontend/scope"
	"github.com/Timisorean/Loki/pddl"
	"github.com/pkg/errors"
)

// DomainParser builds a pddl.Domain from its AST.
//
// After Parse, the global scope of the parser holds every name the domain
// declares, so that problems can be resolved against it with a ProblemParser.
type DomainParser struct {
	builder
	source *pddlerr.Source
	domain *pddl.Domain
}

// NewDomainParser returns a parser interning into factories. source may be nil,
// it is only used to attribute errors to a file.
func NewDomainParser(factories *pddl.Factories, source *pddlerr.Source) *DomainParser {
	return &DomainParser{
		builder: builder{
			factories: factories,
			positions: NewPositionCache(),
			scopes:    scope.NewScopeStack(nil, source),
		},
		source: source,
	}
}

func (p *DomainParser) Factories() *pddl.Factories { return p.factories }
func (p *DomainParser) Positions() *PositionCache  { return p.positions }
func (p *DomainParser) Scopes() *scope.ScopeStack  { return p.scopes }
func (p *DomainParser) Source() *pddlerr.Source    { return p.source }

// Domain returns the result of Parse, or nil if it did not succeed.
func (p *DomainParser) Domain() *pddl.Domain { return p.domain }

// Parse builds the domain of d. It fails with a pddlerr.PDDLError on the first
// semantic error found. A DomainParser can only parse one domain.
func (p *DomainParser) Parse(d *ast.Domain) (*pddl.Domain, error) {
	if p.scopes.Global().Len() != 0 {
		panic(errors.New("DomainParser.Parse called twice"))
	}
	domain, err := p.parse(d)
	if err != nil {
		logger.Debug("domain construction failed", "domain", d.Name.Value, "error", err)
		return nil, err
	}
	p.domain = domain
	logger.Debug("built domain", "domain", domain.Name(), "actions", len(domain.Actions()))
	return domain, nil
}

func (p *DomainParser) parse(d *ast.Domain) (*pddl.Domain, error) {
	if err := unsupported(d.Unsupported); err != nil {
		return nil, err
	}
	requirements, err := p.requirementsSection(d.Requirements, []pddl.RequirementEnum{pddl.Strips})
	if err != nil {
		return nil, err
	}
	p.requirements = requirements
	p.predefineTypes()

	types, err := p.declareTypes(d.Types)
	if err != nil {
		return nil, err
	}
	constants, err := p.objects(d.Constants, pddlerr.CategoryConstant)
	if err != nil {
		return nil, err
	}
	p.predefineEquality()
	predicates, err := p.declarePredicates(d.Predicates)
	if err != nil {
		return nil, err
	}
	functions, err := p.declareFunctions(d.Functions)
	if err != nil {
		return nil, err
	}
	derivedPredicates, err := p.declareDerivedPredicates(d.Axioms)
	if err != nil {
		return nil, err
	}
	actions, err := p.actions(d.Actions)
	if err != nil {
		return nil, err
	}
	axioms, err := p.axioms(d.Axioms)
	if err != nil {
		return nil, err
	}

	domain := p.factories.CreateDomain(pddl.DomainContent{
		Name:              d.Name.Value,
		Requirements:      requirements,
		Types:             types,
		Constants:         constants,
		Predicates:        predicates,
		DerivedPredicates: derivedPredicates,
		Functions:         functions,
		Actions:           actions,
		Axioms:            axioms,
	})
	p.positions.record(domain, d)
	return domain, nil
}

func unsupported(items []ast.Unsupported) error {
	if len(items) == 0 {
		return nil
	}
	return pddlerr.New(pddlerr.NewNotImplemented{Positioner: items[0].Range, Construct: items[0].Keyword})
}

// requirementsSection returns the expanded requirements of section, or of defaults if section is absent
func (b *builder) requirementsSection(section *ast.Section[ast.Requirement], defaults []pddl.RequirementEnum) (*pddl.Requirements, error) {
	declared := defaults
	if section != nil {
		declared = make([]pddl.RequirementEnum, 0, len(section.Items))
		for i := range section.Items {
			item := &section.Items[i]
			r, ok := pddl.RequirementFromKeyword(item.Keyword)
			if !ok {
				return nil, undefined(item, pddlerr.CategoryRequirement, item.Keyword)
			}
			declared = append(declared, r)
		}
	}
	requirements, _ := b.factories.GetOrCreateRequirements(pddl.ExpandRequirements(declared))
	if section != nil {
		b.positions.record(requirements, section)
	}
	return requirements, nil
}

// predefineEquality binds = as a binary predicate over objects when :equality is declared
func (p *DomainParser) predefineEquality() {
	if !p.requirements.Test(pddl.Equality) {
		return
	}
	parameters := make([]*pddl.Parameter, 2)
	for i, name := range []string{"?left_arg", "?right_arg"} {
		variable, _ := p.factories.GetOrCreateVariable(name)
		parameters[i], _ = p.factories.GetOrCreateParameter(variable, []*pddl.Type{p.objectType})
	}
	equal, _ := p.factories.GetOrCreatePredicate(pddl.EqualPredicateName, parameters)
	p.scopes.InsertPredicate(pddl.EqualPredicateName, equal, nil)
}

func (p *DomainParser) declarePredicates(section *ast.Section[ast.AtomicFormulaSkeleton]) ([]*pddl.Predicate, error) {
	if section == nil {
		return nil, nil
	}
	result := make([]*pddl.Predicate, 0, len(section.Items))
	for i := range section.Items {
		skeleton := &section.Items[i]
		name := skeleton.Name.Value
		if previous, ok := p.scopes.GetPredicate(name); ok {
			return nil, redefined(&skeleton.Name, pddlerr.CategoryPredicate, name, previous.Position)
		}
		parameters, err := withScope(&p.builder, func() ([]*pddl.Parameter, error) {
			return p.parameters(skeleton.Parameters)
		})
		if err != nil {
			return nil, err
		}
		predicate, _ := p.factories.GetOrCreatePredicate(name, parameters)
		p.scopes.InsertPredicate(name, predicate, &skeleton.Name)
		p.positions.record(predicate, skeleton)
		result = append(result, predicate)
	}
	return result, nil
}

// declareFunctions only accepts numeric functions, object fluents are not supported
func (p *DomainParser) declareFunctions(section *ast.Section[ast.FunctionSkeleton]) ([]*pddl.FunctionSkeleton, error) {
	if section == nil {
		return nil, nil
	}
	if err := p.require(section, ":functions", pddl.NumericFluents, pddl.ActionCosts); err != nil {
		return nil, err
	}
	result := make([]*pddl.FunctionSkeleton, 0, len(section.Items))
	for i := range section.Items {
		skeleton := &section.Items[i]
		name := skeleton.Name.Value
		if previous, ok := p.scopes.GetFunctionSkeleton(name); ok {
			return nil, redefined(&skeleton.Name, pddlerr.CategoryFunction, name, previous.Position)
		}
		if t := skeleton.Type; t != nil && (t.Either || len(t.Names) != 1 || t.Names[0].Value != pddl.NumberTypeName) {
			return nil, pddlerr.New(pddlerr.NewNotSupported{Positioner: t.Range, Construct: pddl.ObjectFluents.String()})
		}
		parameters, err := withScope(&p.builder, func() ([]*pddl.Parameter, error) {
			return p.parameters(skeleton.Parameters)
		})
		if err != nil {
			return nil, err
		}
		function, _ := p.factories.GetOrCreateFunctionSkeleton(name, parameters, p.numberType)
		p.scopes.InsertFunctionSkeleton(name, function, &skeleton.Name)
		p.positions.record(function, skeleton)
		result = append(result, function)
	}
	return result, nil
}

func (p *DomainParser) actions(actions []ast.Action) ([]*pddl.Action, error) {
	declared := make(map[string]*ast.Name, len(actions))
	result := make([]*pddl.Action, 0, len(actions))
	for i := range actions {
		a := &actions[i]
		if previous, ok := declared[a.Name.Value]; ok {
			return nil, redefined(&a.Name, pddlerr.CategoryAction, a.Name.Value, previous)
		}
		declared[a.Name.Value] = &a.Name
		action, err := withScope(&p.builder, func() (*pddl.Action, error) {
			parameters, err := p.parameters(a.Parameters)
			if err != nil {
				return nil, err
			}
			condition, err := p.condition(a.Precondition)
			if err != nil {
				return nil, err
			}
			effect, err := p.effect(a.Effect)
			if err != nil {
				return nil, err
			}
			action, _ := p.factories.GetOrCreateAction(a.Name.Value, parameters, condition, effect)
			return action, nil
		})
		if err != nil {
			return nil, err
		}
		p.positions.record(action, a)
		logger.Debug("built action", "action", ast.Slog(a))
		result = append(result, action)
	}
	return result, nil
}

package frontend

import (
	"slices"

	"github.com/Timisorean/Loki/frontend/ast"
	"github.com/Timisorean/Loki/frontend/pddlerr"
	"github.com/Timisorean/Loki/frontend/scope"
	"github.com/Timisorean/Loki/internal/log"
	"github.com/Timisorean/Loki/pddl"
	"github.com/hashicorp/go-set/v3"
)

var logger = log.DefaultLogger.With("section", "frontend")

// builder holds what domain and problem construction share: the factories
// nodes are interned in, the scopes names resolve against and the
// requirements that gate which constructs are legal.
type builder struct {
	factories    *pddl.Factories
	positions    *PositionCache
	scopes       *scope.ScopeStack
	requirements *pddl.Requirements
	objectType   *pddl.Type
	numberType   *pddl.Type
}

// require fails unless at least one of requirements was declared
func (b *builder) require(at ast.Positioner, construct string, requirements ...pddl.RequirementEnum) error {
	for _, r := range requirements {
		if b.requirements.Test(r) {
			return nil
		}
	}
	names := make([]string, len(requirements))
	for i, r := range requirements {
		names[i] = r.String()
	}
	return pddlerr.New(pddlerr.NewUndefinedRequirement{
		Positioner:  ast.RangeOf(at),
		Construct:   construct,
		Requirement: names,
	})
}

func undefined(at ast.Positioner, category pddlerr.Category, name string) error {
	return pddlerr.New(pddlerr.NewUndefinedReference{Positioner: ast.RangeOf(at), Category: category, Name: name})
}

func redefined(at ast.Positioner, category pddlerr.Category, name string, previous ast.Positioner) error {
	if previous != nil {
		previous = ast.RangeOf(previous)
	}
	return pddlerr.New(pddlerr.NewMultiDefinition{
		Positioner: ast.RangeOf(at),
		Category:   category,
		Name:       name,
		Previous:   previous,
	})
}

func checkArity(at ast.Positioner, category pddlerr.Category, name string, expected, actual int) error {
	if expected == actual {
		return nil
	}
	return pddlerr.New(pddlerr.NewArityMismatch{
		Positioner: ast.RangeOf(at),
		Category:   category,
		Name:       name,
		Expected:   expected,
		Actual:     actual,
	})
}

// types resolves the type after '-' in a typed list. Untyped entries are of type object.
func (b *builder) types(spec *ast.TypeSpec) ([]*pddl.Type, error) {
	if spec == nil {
		return []*pddl.Type{b.objectType}, nil
	}
	if err := b.require(spec, "typed list", pddl.Typing); err != nil {
		return nil, err
	}
	types := make([]*pddl.Type, 0, len(spec.Names))
	for i := range spec.Names {
		name := &spec.Names[i]
		found, ok := b.scopes.GetType(name.Value)
		if !ok {
			return nil, undefined(name, pddlerr.CategoryType, name.Value)
		}
		types = append(types, found.Value)
	}
	return types, nil
}

// parameters binds each variable in the current scope, so callers open a scope first
func (b *builder) parameters(params []ast.TypedVariable) ([]*pddl.Parameter, error) {
	seen := set.New[string](len(params))
	result := make([]*pddl.Parameter, 0, len(params))
	for i := range params {
		param := &params[i]
		if !seen.Insert(param.Value) {
			first := slices.IndexFunc(params, func(p ast.TypedVariable) bool { return p.Value == param.Value })
			return nil, redefined(&param.Variable, pddlerr.CategoryVariable, param.Value, &params[first].Variable)
		}
		types, err := b.types(param.Type)
		if err != nil {
			return nil, err
		}
		variable, _ := b.factories.GetOrCreateVariable(param.Value)
		parameter, _ := b.factories.GetOrCreateParameter(variable, types)
		b.scopes.InsertVariable(param.Value, variable, &param.Variable)
		b.positions.record(variable, &param.Variable)
		b.positions.record(parameter, param)
		result = append(result, parameter)
	}
	return result, nil
}

// objects declares constants of a domain or objects of a problem in the global scope
func (b *builder) objects(section *ast.Section[ast.TypedName], category pddlerr.Category) ([]*pddl.Object, error) {
	if section == nil {
		return nil, nil
	}
	result := make([]*pddl.Object, 0, len(section.Items))
	for i := range section.Items {
		item := &section.Items[i]
		if previous, ok := b.scopes.GetObject(item.Value); ok {
			return nil, redefined(&item.Name, category, item.Value, previous.Position)
		}
		types, err := b.types(item.Type)
		if err != nil {
			return nil, err
		}
		object, _ := b.factories.GetOrCreateObject(item.Value, types)
		b.scopes.InsertObject(item.Value, object, &item.Name)
		b.positions.record(object, item)
		result = append(result, object)
	}
	return result, nil
}

func (b *builder) term(t ast.Term) (pddl.Term, error) {
	switch t := t.(type) {
	case *ast.Name:
		found, ok := b.scopes.GetObject(t.Value)
		if !ok {
			return nil, undefined(t, pddlerr.CategoryObject, t.Value)
		}
		term, _ := b.factories.GetOrCreateTermObject(found.Value)
		b.positions.record(term, t)
		return term, nil
	case *ast.Variable:
		found, ok := b.scopes.GetVariable(t.Value)
		if !ok {
			return nil, undefined(t, pddlerr.CategoryVariable, t.Value)
		}
		term, _ := b.factories.GetOrCreateTermVariable(found.Value)
		b.positions.record(term, t)
		return term, nil
	}
	panic(unknownNode(t))
}

func (b *builder) terms(ts []ast.Term) ([]pddl.Term, error) {
	result := make([]pddl.Term, len(ts))
	for i, t := range ts {
		term, err := b.term(t)
		if err != nil {
			return nil, err
		}
		result[i] = term
	}
	return result, nil
}

// groundObjects resolves terms that must name objects, as in :init
func (b *builder) groundObjects(ts []ast.Term) ([]*pddl.Object, error) {
	result := make([]*pddl.Object, len(ts))
	for i, t := range ts {
		name, ok := t.(*ast.Name)
		if !ok {
			v := t.(*ast.Variable)
			return nil, undefined(v, pddlerr.CategoryObject, v.Value)
		}
		found, ok := b.scopes.GetObject(name.Value)
		if !ok {
			return nil, undefined(name, pddlerr.CategoryObject, name.Value)
		}
		result[i] = found.Value
	}
	return result, nil
}

// predicate resolves the name of an atom, which is either a predicate or a derived predicate
func (b *builder) predicate(name *ast.Name, arity int, at ast.Positioner) (*pddl.Predicate, error) {
	if name.Value == pddl.EqualPredicateName {
		if err := b.require(at, pddl.EqualPredicateName, pddl.Equality); err != nil {
			return nil, err
		}
	}
	var predicate *pddl.Predicate
	if found, ok := b.scopes.GetPredicate(name.Value); ok {
		predicate = found.Value
	} else if found, ok := b.scopes.GetDerivedPredicate(name.Value); ok {
		predicate = found.Value
	} else {
		return nil, undefined(name, pddlerr.CategoryPredicate, name.Value)
	}
	if err := checkArity(at, pddlerr.CategoryPredicate, name.Value, predicate.Arity(), arity); err != nil {
		return nil, err
	}
	return predicate, nil
}

func (b *builder) atom(formula *ast.AtomicFormula) (*pddl.Atom, error) {
	predicate, err := b.predicate(&formula.Predicate, len(formula.Terms), formula)
	if err != nil {
		return nil, err
	}
	terms, err := b.terms(formula.Terms)
	if err != nil {
		return nil, err
	}
	atom, _ := b.factories.GetOrCreateAtom(predicate, terms)
	b.positions.record(atom, formula)
	return atom, nil
}

func (b *builder) literal(negated bool, formula *ast.AtomicFormula, at ast.Positioner) (*pddl.Literal, error) {
	atom, err := b.atom(formula)
	if err != nil {
		return nil, err
	}
	literal, _ := b.factories.GetOrCreateLiteral(negated, atom)
	b.positions.record(literal, at)
	return literal, nil
}

func (b *builder) groundLiteral(lit *ast.Literal) (*pddl.GroundLiteral, error) {
	formula := &lit.Atom
	predicate, err := b.predicate(&formula.Predicate, len(formula.Terms), formula)
	if err != nil {
		return nil, err
	}
	objects, err := b.groundObjects(formula.Terms)
	if err != nil {
		return nil, err
	}
	atom, _ := b.factories.GetOrCreateGroundAtom(predicate, objects)
	literal, _ := b.factories.GetOrCreateGroundLiteral(lit.Negated, atom)
	b.positions.record(atom, formula)
	b.positions.record(literal, lit)
	return literal, nil
}

// withScope runs f in a fresh nested scope
func withScope[T any](b *builder, f func() (T, error)) (T, error) {
	b.scopes.OpenScope()
	defer b.scopes.CloseScope()
	return f()
}

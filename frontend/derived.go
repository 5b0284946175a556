package frontend

import (
	"github.com/Timisorean/Loki/frontend/ast"
	"github.com/Timisorean/Loki/frontend/pddlerr"
	"github.com/Timisorean/Loki/pddl"
)

// declareDerivedPredicates binds the head of every axiom before any axiom body
// is built, so that axioms may refer to each other. Several axioms may share a head.
func (b *builder) declareDerivedPredicates(axioms []ast.DerivedPredicate) ([]*pddl.Predicate, error) {
	if len(axioms) == 0 {
		return nil, nil
	}
	if err := b.require(&axioms[0], ":derived", pddl.DerivedPredicates); err != nil {
		return nil, err
	}
	var result []*pddl.Predicate
	for i := range axioms {
		head := &axioms[i].Head
		name := head.Name.Value
		if previous, ok := b.scopes.GetPredicate(name); ok {
			return nil, redefined(&head.Name, pddlerr.CategoryPredicate, name, previous.Position)
		}
		if previous, ok := b.scopes.GetDerivedPredicate(name); ok {
			if err := checkArity(head, pddlerr.CategoryDerivedPredicate, name, previous.Value.Arity(), len(head.Parameters)); err != nil {
				return nil, err
			}
			continue
		}
		parameters, err := withScope(b, func() ([]*pddl.Parameter, error) {
			return b.parameters(head.Parameters)
		})
		if err != nil {
			return nil, err
		}
		predicate, _ := b.factories.GetOrCreatePredicate(name, parameters)
		b.scopes.InsertDerivedPredicate(name, predicate, &head.Name)
		b.positions.record(predicate, head)
		result = append(result, predicate)
	}
	return result, nil
}

// axioms builds the bodies of axioms whose heads are already declared
func (b *builder) axioms(axioms []ast.DerivedPredicate) ([]*pddl.Axiom, error) {
	result := make([]*pddl.Axiom, 0, len(axioms))
	for i := range axioms {
		ax := &axioms[i]
		axiom, err := withScope(b, func() (*pddl.Axiom, error) {
			parameters, err := b.parameters(ax.Head.Parameters)
			if err != nil {
				return nil, err
			}
			found, _ := b.scopes.GetDerivedPredicate(ax.Head.Name.Value)
			terms := make([]pddl.Term, len(parameters))
			for j, parameter := range parameters {
				terms[j], _ = b.factories.GetOrCreateTermVariable(parameter.Variable())
			}
			atom, _ := b.factories.GetOrCreateAtom(found.Value, terms)
			literal, _ := b.factories.GetOrCreateLiteral(false, atom)
			b.positions.record(literal, &ax.Head)

			condition, err := b.condition(ax.Condition)
			if err != nil {
				return nil, err
			}
			axiom, _ := b.factories.GetOrCreateAxiom(parameters, literal, condition)
			return axiom, nil
		})
		if err != nil {
			return nil, err
		}
		b.positions.record(axiom, ax)
		logger.Debug("built axiom", "axiom", ast.Slog(ax))
		result = append(result, axiom)
	}
	return result, nil
}

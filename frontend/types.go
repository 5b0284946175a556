package frontend

import (
	"slices"

	"github.com/Timisorean/Loki/frontend/ast"
	"github.com/Timisorean/Loki/frontend/pddlerr"
	"github.com/Timisorean/Loki/pddl"
	"github.com/hashicorp/go-set/v3"
)

// predefineTypes binds object and number in the global scope
func (b *builder) predefineTypes() {
	b.objectType, _ = b.factories.GetOrCreateType(pddl.ObjectTypeName, nil)
	b.numberType, _ = b.factories.GetOrCreateType(pddl.NumberTypeName, nil)
	b.scopes.InsertType(pddl.ObjectTypeName, b.objectType, nil)
	b.scopes.InsertType(pddl.NumberTypeName, b.numberType, nil)
}

type typeDeclaration struct {
	name    *ast.Name
	parents []*ast.Name
}

// typeHierarchy collects the :types section before any type is created,
// since a type may be used as a parent before it is declared.
type typeHierarchy struct {
	order        []string
	declarations map[string]*typeDeclaration
}

func isPredefinedType(name string) bool {
	return name == pddl.ObjectTypeName || name == pddl.NumberTypeName
}

func (h *typeHierarchy) declare(name *ast.Name) *typeDeclaration {
	if d, ok := h.declarations[name.Value]; ok {
		return d
	}
	d := &typeDeclaration{name: name}
	h.declarations[name.Value] = d
	h.order = append(h.order, name.Value)
	return d
}

// declareTypes binds every type of section in the global scope.
// A type declared twice has the parents of both declarations.
// Parents that are never declared become direct subtypes of object.
func (b *builder) declareTypes(section *ast.Section[ast.TypedName]) ([]*pddl.Type, error) {
	if section == nil {
		return nil, nil
	}
	if err := b.require(section, ":types", pddl.Typing); err != nil {
		return nil, err
	}
	h := &typeHierarchy{declarations: make(map[string]*typeDeclaration)}
	for i := range section.Items {
		item := &section.Items[i]
		if isPredefinedType(item.Value) {
			if item.Type == nil || len(item.Type.Names) == 1 && item.Type.Names[0].Value == pddl.ObjectTypeName {
				continue
			}
			return nil, redefined(&item.Name, pddlerr.CategoryType, item.Value, nil)
		}
		d := h.declare(&item.Name)
		if item.Type == nil {
			continue
		}
		for j := range item.Type.Names {
			parent := &item.Type.Names[j]
			if !slices.ContainsFunc(d.parents, func(n *ast.Name) bool { return n.Value == parent.Value }) {
				d.parents = append(d.parents, parent)
			}
		}
	}
	// the loop visits implicit parents too, as they are appended to order
	for i := 0; i < len(h.order); i++ {
		for _, parent := range h.declarations[h.order[i]].parents {
			if !isPredefinedType(parent.Value) {
				h.declare(parent)
			}
		}
	}

	created := make(map[string]*pddl.Type, len(h.order))
	visiting := set.New[string](len(h.order))
	var path []string
	var visit func(name string) error
	visit = func(name string) error {
		if _, ok := created[name]; ok {
			return nil
		}
		d := h.declarations[name]
		if !visiting.Insert(name) {
			cycle := append(slices.Clone(path[slices.Index(path, name):]), name)
			return pddlerr.New(pddlerr.NewInvalidTypeHierarchy{Positioner: d.name.Range, Cycle: cycle})
		}
		path = append(path, name)
		defer func() { path = path[:len(path)-1] }()

		bases := make([]*pddl.Type, 0, len(d.parents))
		for _, parent := range d.parents {
			switch parent.Value {
			case pddl.ObjectTypeName:
				bases = append(bases, b.objectType)
			case pddl.NumberTypeName:
				bases = append(bases, b.numberType)
			default:
				if err := visit(parent.Value); err != nil {
					return err
				}
				bases = append(bases, created[parent.Value])
			}
		}
		if len(bases) == 0 {
			bases = append(bases, b.objectType)
		}
		t, _ := b.factories.GetOrCreateType(name, bases)
		created[name] = t
		b.scopes.InsertType(name, t, d.name)
		b.positions.record(t, d.name)
		return nil
	}

	types := make([]*pddl.Type, 0, len(h.order))
	for _, name := range h.order {
		if err := visit(name); err != nil {
			return nil, err
		}
		types = append(types, created[name])
	}
	logger.Debug("declared types", "count", len(types))
	return types, nil
}

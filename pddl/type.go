package pddl

// Type is a named type of the hierarchy together with its direct parents.
type Type struct {
	base
	name  string
	bases []*Type
}

func (t *Type) Name() string { return t.name }

// Bases returns the direct parents in declaration order.
func (t *Type) Bases() []*Type { return t.bases }

func (t *Type) computeHash() uint64 {
	return hashFields("type", hashString(t.name), hashUnordered(t.bases))
}

func (t *Type) StructurallyEqual(other *Type) bool {
	return t.name == other.name && equalUnordered(t.bases, other.bases)
}

func (t *Type) String() string { return t.name }

// IsSubtypeOf reports whether t is ancestor or one of its transitive bases.
func (t *Type) IsSubtypeOf(ancestor *Type) bool {
	if t == ancestor {
		return true
	}
	for _, b := range t.bases {
		if b.IsSubtypeOf(ancestor) {
			return true
		}
	}
	return false
}

// isDefaultTyping reports whether types is the implicit typing of an untyped name
func isDefaultTyping(types []*Type) bool {
	return len(types) == 0 || (len(types) == 1 && types[0].name == ObjectTypeName)
}

const (
	ObjectTypeName = "object"
	NumberTypeName = "number"
)

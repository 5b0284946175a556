package pddl

import (
	"slices"
	"sort"
	"strings"

	"github.com/xtgo/set"
)

type RequirementEnum int

const (
	Strips RequirementEnum = iota
	Typing
	NegativePreconditions
	DisjunctivePreconditions
	Equality
	ExistentialPreconditions
	UniversalPreconditions
	QuantifiedPreconditions
	ConditionalEffects
	Fluents
	ObjectFluents
	NumericFluents
	ADL
	DurativeActions
	DerivedPredicates
	TimedInitialLiterals
	Preferences
	Constraints
	ActionCosts
)

// requirementKeywords is indexed by RequirementEnum and never mutated
var requirementKeywords = [...]string{
	Strips:                   ":strips",
	Typing:                   ":typing",
	NegativePreconditions:    ":negative-preconditions",
	DisjunctivePreconditions: ":disjunctive-preconditions",
	Equality:                 ":equality",
	ExistentialPreconditions: ":existential-preconditions",
	UniversalPreconditions:   ":universal-preconditions",
	QuantifiedPreconditions:  ":quantified-preconditions",
	ConditionalEffects:       ":conditional-effects",
	Fluents:                  ":fluents",
	ObjectFluents:            ":object-fluents",
	NumericFluents:           ":numeric-fluents",
	ADL:                      ":adl",
	DurativeActions:          ":durative-actions",
	DerivedPredicates:        ":derived-predicates",
	TimedInitialLiterals:     ":timed-initial-literals",
	Preferences:              ":preferences",
	Constraints:              ":constraints",
	ActionCosts:              ":action-costs",
}

// requirementImplications lists what a composite requirement stands for
var requirementImplications = map[RequirementEnum][]RequirementEnum{
	QuantifiedPreconditions: {ExistentialPreconditions, UniversalPreconditions},
	Fluents:                 {NumericFluents, ObjectFluents},
	ADL: {
		Strips, Typing, DisjunctivePreconditions, Equality,
		ExistentialPreconditions, UniversalPreconditions, QuantifiedPreconditions,
		ConditionalEffects,
	},
}

func (r RequirementEnum) String() string {
	if r < 0 || int(r) >= len(requirementKeywords) {
		return ":unknown-requirement"
	}
	return requirementKeywords[r]
}

// RequirementFromKeyword maps a keyword such as ":typing" (case-insensitive) to its RequirementEnum.
func RequirementFromKeyword(keyword string) (RequirementEnum, bool) {
	idx := slices.Index(requirementKeywords[:], strings.ToLower(keyword))
	if idx < 0 {
		return 0, false
	}
	return RequirementEnum(idx), true
}

type requirementSlice []RequirementEnum

func (s requirementSlice) Len() int           { return len(s) }
func (s requirementSlice) Less(i, j int) bool { return s[i] < s[j] }
func (s requirementSlice) Swap(i, j int)      { s[i], s[j] = s[j], s[i] }

// ExpandRequirements returns the sorted, duplicate-free closure of declared
// under the implications of composite requirements like :adl.
func ExpandRequirements(declared []RequirementEnum) []RequirementEnum {
	var expanded [len(requirementKeywords)]bool
	closure := slices.Clone(declared)
	for i := 0; i < len(closure); i++ {
		req := closure[i]
		if req < 0 || int(req) >= len(expanded) || expanded[req] {
			continue
		}
		expanded[req] = true
		closure = append(closure, requirementImplications[req]...)
	}
	return compactRequirements(closure)
}

func compactRequirements(list []RequirementEnum) []RequirementEnum {
	data := requirementSlice(list)
	sort.Sort(data)
	return list[:set.Uniq(data)]
}

// Requirements is the set of requirement flags of a domain or problem.
type Requirements struct {
	base
	requirements []RequirementEnum
}

// Requirements returns the flags in ascending order.
func (r *Requirements) Requirements() []RequirementEnum { return r.requirements }

// Test reports whether requirement is part of the set.
func (r *Requirements) Test(requirement RequirementEnum) bool {
	_, found := slices.BinarySearch(r.requirements, requirement)
	return found
}

func (r *Requirements) computeHash() uint64 {
	fields := make([]uint64, len(r.requirements))
	for i, req := range r.requirements {
		fields[i] = uint64(req)
	}
	return hashFields("requirements", fields...)
}

func (r *Requirements) StructurallyEqual(other *Requirements) bool {
	return slices.Equal(r.requirements, other.requirements)
}

func (r *Requirements) String() string { return Format(r) }

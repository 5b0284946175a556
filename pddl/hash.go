package pddl

import (
	"cmp"
	"encoding/binary"
	"hash/fnv"
	"math"
	"slices"
	"sort"

	"github.com/xtgo/set"
)

// emptyCollectionHash is the hash of a collection without members,
// whether or not the collection is order-sensitive
const emptyCollectionHash uint64 = 0x9e3779b97f4a7c15

// Node is implemented by every interned PDDL entity.
//
// Identifier is unique within the node's family and strictly increasing in
// creation order, Hash is the content hash computed once on creation.
type Node interface {
	Identifier() int
	Hash() uint64
	String() string
}

// base carries the identity every interned node is assigned by its factory
type base struct {
	id   int
	hash uint64
}

func (b *base) Identifier() int { return b.id }
func (b *base) Hash() uint64    { return b.hash }

func (b *base) assign(id int, hash uint64) {
	b.id = id
	b.hash = hash
}

// Compare is the total order of nodes of the same family.
// It is only meaningful once both sides are interned.
func Compare[T Node](a, b T) int {
	return cmp.Compare(a.Identifier(), b.Identifier())
}

// SortedByIdentifier returns a copy of list in canonical order.
func SortedByIdentifier[T Node](list []T) []T {
	sorted := slices.Clone(list)
	slices.SortFunc(sorted, Compare[T])
	return sorted
}

func hashString(s string) uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(s))
	return h.Sum64()
}

func hashBool(b bool) uint64 {
	if b {
		return 1
	}
	return 0
}

// hashFloat agrees with ==, so -0 and 0 share a hash
func hashFloat(f float64) uint64 {
	if f == 0 {
		f = 0
	}
	return math.Float64bits(f)
}

// hashFields combines a variant tag with already computed field hashes, in order
func hashFields(tag string, fields ...uint64) uint64 {
	h := fnv.New64a()
	arr := []byte(tag)
	for _, field := range fields {
		arr = binary.LittleEndian.AppendUint64(arr, field)
	}
	_, _ = h.Write(arr)
	return h.Sum64()
}

// hashOrdered is sensitive to the position of each member
func hashOrdered[T Node](list []T) uint64 {
	if len(list) == 0 {
		return emptyCollectionHash
	}
	h := fnv.New64a()
	arr := make([]byte, 0, 8*len(list))
	for _, elem := range list {
		arr = binary.LittleEndian.AppendUint64(arr, elem.Hash())
	}
	_, _ = h.Write(arr)
	return h.Sum64()
}

// hashUnordered collides for every permutation of list
func hashUnordered[T Node](list []T) uint64 {
	if len(list) == 0 {
		return emptyCollectionHash
	}
	var sum uint64
	for _, elem := range list {
		sum += mix(elem.Hash())
	}
	return sum
}

// mix spreads the bits of x so that summing hashes does not cancel structure out
func mix(x uint64) uint64 {
	x ^= x >> 30
	x *= 0xbf58476d1ce4e5b9
	x ^= x >> 27
	x *= 0x94d049bb133111eb
	x ^= x >> 31
	return x
}

func equalOrdered[T Node](a, b []T) bool {
	return slices.EqualFunc(a, b, func(x, y T) bool {
		return x.Identifier() == y.Identifier()
	})
}

// equalUnordered compares a and b as multisets of interned members
func equalUnordered[T Node](a, b []T) bool {
	if len(a) != len(b) {
		return false
	}
	ids := make([]int, 0, len(a)+len(b))
	ids = appendSortedIdentifiers(ids, a)
	ids = appendSortedIdentifiers(ids, b)
	return set.IsEqual(sort.IntSlice(ids), len(a))
}

func appendSortedIdentifiers[T Node](ids []int, list []T) []int {
	start := len(ids)
	for _, elem := range list {
		ids = append(ids, elem.Identifier())
	}
	slices.Sort(ids[start:])
	return ids
}

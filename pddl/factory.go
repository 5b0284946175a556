package pddl

import (
	"sync"
)

// entity is what a uniqueFactory needs from the nodes it stores.
// T is the family type itself, so that variants of a sum type
// share one store and one identifier sequence.
type entity[T any] interface {
	Node
	computeHash() uint64
	StructurallyEqual(other T) bool
	assign(id int, hash uint64)
}

// uniqueFactory interns the nodes of one family: at most one stored
// instance exists per distinct content.
//
// The candidate passed to getOrCreate is a transient value. It only becomes
// the stored instance if no structurally equal node exists yet.
type uniqueFactory[T entity[T]] struct {
	mu       sync.Mutex
	buckets  map[uint64][]T
	elements []T
}

func (f *uniqueFactory[T]) getOrCreate(candidate T) (T, bool) {
	// hashing may read cached child hashes only, so it stays outside the lock
	hash := candidate.computeHash()

	f.mu.Lock()
	defer f.mu.Unlock()

	for _, existing := range f.buckets[hash] {
		if candidate.StructurallyEqual(existing) {
			return existing, false
		}
	}
	if f.buckets == nil {
		f.buckets = make(map[uint64][]T)
	}
	candidate.assign(len(f.elements), hash)
	f.buckets[hash] = append(f.buckets[hash], candidate)
	f.elements = append(f.elements, candidate)
	return candidate, true
}

// create stores node without looking for an equal one. It still takes the
// next identifier of the family.
func (f *uniqueFactory[T]) create(node T) T {
	hash := node.computeHash()

	f.mu.Lock()
	defer f.mu.Unlock()

	node.assign(len(f.elements), hash)
	f.elements = append(f.elements, node)
	return node
}

func (f *uniqueFactory[T]) len() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.elements)
}

// get returns the node with identifier id
func (f *uniqueFactory[T]) get(id int) (T, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if id < 0 || id >= len(f.elements) {
		var zero T
		return zero, false
	}
	return f.elements[id], true
}

package frontend

import (
	"sync"

	"github.com/Timisorean/Loki/frontend/ast"
	"github.com/Timisorean/Loki/pddl"
)

// PositionCache remembers where in the source each interned node was written.
//
// An interned node may be written several times, e.g. the same atom in two actions,
// so every range is kept in the order the driver visited them.
type PositionCache struct {
	mu        sync.Mutex
	positions map[pddl.Node][]ast.Range
}

func NewPositionCache() *PositionCache {
	return &PositionCache{positions: make(map[pddl.Node][]ast.Range)}
}

func (c *PositionCache) record(node pddl.Node, position ast.Positioner) {
	if node == nil || position == nil {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.positions[node] = append(c.positions[node], ast.RangeOf(position))
}

// Get returns every range node was written at
func (c *PositionCache) Get(node pddl.Node) []ast.Range {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]ast.Range(nil), c.positions[node]...)
}

// First returns the first range node was written at.
func (c *PositionCache) First(node pddl.Node) (ast.Range, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	ranges := c.positions[node]
	if len(ranges) == 0 {
		return ast.Range{}, false
	}
	return ranges[0], true
}

func (c *PositionCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.positions)
}

package search

import (
	"github.com/pdrpinto/search/internal"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// Node is the tree record of one discovered state.
type Node[S comparable] struct {
	State     S
	Parent    S
	HasParent bool
	// Order is the discovery index, starting at 0 for the initial state.
	Order int
	// Cost is the accumulated path cost from the initial state when the node was recorded.
	Cost float64
}

// Tree maps every discovered state to its discovering parent.
// A state is recorded at most once; later re-derivations are dropped.
type Tree[S comparable] struct {
	nodes map[S]Node[S]
	order []S
}

func newTree[S comparable]() *Tree[S] {
	return &Tree[S]{nodes: make(map[S]Node[S])}
}

// insert records state unless it is already present and reports whether it was added.
func (t *Tree[S]) insert(state, parent S, hasParent bool, cost float64) bool {
	if _, exists := t.nodes[state]; exists {
		return false
	}
	t.nodes[state] = Node[S]{
		State:     state,
		Parent:    parent,
		HasParent: hasParent,
		Order:     len(t.order),
		Cost:      cost,
	}
	t.order = append(t.order, state)
	return true
}

// Len is the number of recorded states.
func (t *Tree[S]) Len() int {
	if t == nil {
		return 0
	}
	return len(t.order)
}

// Contains reports whether state has been recorded.
func (t *Tree[S]) Contains(state S) bool {
	if t == nil {
		return false
	}
	_, ok := t.nodes[state]
	return ok
}

// Node returns the record for state.
func (t *Tree[S]) Node(state S) (Node[S], bool) {
	if t == nil {
		return Node[S]{}, false
	}
	node, ok := t.nodes[state]
	return node, ok
}

// Parent returns the discovering parent of state. The root has none.
func (t *Tree[S]) Parent(state S) (S, bool) {
	node, ok := t.Node(state)
	if !ok || !node.HasParent {
		var zero S
		return zero, false
	}
	return node.Parent, true
}

// States returns the recorded states in discovery order.
func (t *Tree[S]) States() []S {
	if t == nil {
		return nil
	}
	return slices.Clone(t.order)
}

// Parents returns a child to parent mapping. The root is absent.
func (t *Tree[S]) Parents() map[S]S {
	parents := make(map[S]S, t.Len())
	if t == nil {
		return parents
	}
	for state, node := range t.nodes {
		if node.HasParent {
			parents[state] = node.Parent
		}
	}
	return parents
}

// PathTo rebuilds the root to state path through parent links.
func (t *Tree[S]) PathTo(state S) (Path[S], bool) {
	if !t.Contains(state) {
		return nil, false
	}
	return Path[S](internal.ReconstructPath(t.Parent, state)), true
}

func (t *Tree[S]) clone() *Tree[S] {
	if t == nil {
		return newTree[S]()
	}
	return &Tree[S]{nodes: maps.Clone(t.nodes), order: slices.Clone(t.order)}
}

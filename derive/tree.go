package derive

import "fmt"

// Node is a node of a derivation tree. IDs are unique within a tree.
type Node struct {
	ID    string
	Label string // grammar symbol
}

// Edge connects a parent node to a child node, by ID.
type Edge struct {
	Parent string
	Child  string
}

// Tree is a labeled tree built from a derivation path. Nodes and edges are
// kept in order of creation; the children of a node are ordered by the
// creation of their edges.
type Tree struct {
	Nodes []Node
	Edges []Edge
}

// BuildTree constructs a tree from a derivation path.
//
// The path is processed in reverse order. For every expansion a node labeled
// with the expansion's non-terminal is created, along with one leaf per
// symbol of its right-hand side. The node for the last expansion of the path
// is the root; every further expansion's node is attached as a child of the
// node created before it. The result therefore has len(path) inner nodes and
// one leaf per right-hand side symbol over all expansions. Empty productions
// contribute no leaves.
//
// Node IDs are "node0", "node1", … in order of creation.
func BuildTree(path Path) *Tree {
	t := &Tree{}
	parent := ""
	for i := len(path) - 1; i >= 0; i-- {
		e := path[i]
		node := t.add(parent, e.LHS)
		for _, sym := range e.RHS {
			t.add(node, sym)
		}
		parent = node
	}
	tracer().Debugf("tree built with %d nodes and %d edges", len(t.Nodes), len(t.Edges))
	return t
}

// add creates a new node and, if parent is not empty, an edge from parent to
// the new node. It returns the ID of the new node.
func (t *Tree) add(parent string, label string) string {
	id := fmt.Sprintf("node%d", len(t.Nodes))
	t.Nodes = append(t.Nodes, Node{ID: id, Label: label})
	if parent != "" {
		t.link(parent, id)
	}
	return id
}

func (t *Tree) link(parent, child string) {
	t.Edges = append(t.Edges, Edge{Parent: parent, Child: child})
}

// Size returns the number of nodes of t.
func (t *Tree) Size() int {
	if t == nil {
		return 0
	}
	return len(t.Nodes)
}

// Node returns the node with the given ID.
func (t *Tree) Node(id string) (Node, bool) {
	if t == nil {
		return Node{}, false
	}
	for _, n := range t.Nodes {
		if n.ID == id {
			return n, true
		}
	}
	return Node{}, false
}

// Root returns the first node which is not the child of any other node.
// An empty tree has no root.
func (t *Tree) Root() (Node, bool) {
	if t.Size() == 0 {
		return Node{}, false
	}
	children := make(map[string]bool, len(t.Edges))
	for _, e := range t.Edges {
		children[e.Child] = true
	}
	for _, n := range t.Nodes {
		if !children[n.ID] {
			return n, true
		}
	}
	return Node{}, false
}

// Children returns the children of node id, in order.
func (t *Tree) Children(id string) []Node {
	if t == nil {
		return nil
	}
	var children []Node
	for _, e := range t.Edges {
		if e.Parent == id {
			if n, ok := t.Node(e.Child); ok {
				children = append(children, n)
			}
		}
	}
	return children
}

// Parent returns the parent of node id. The root has no parent.
func (t *Tree) Parent(id string) (Node, bool) {
	if t == nil {
		return Node{}, false
	}
	for _, e := range t.Edges {
		if e.Child == id {
			return t.Node(e.Parent)
		}
	}
	return Node{}, false
}

// Leaves returns all nodes without children, in order of creation.
func (t *Tree) Leaves() []Node {
	if t == nil {
		return nil
	}
	parents := make(map[string]bool, len(t.Edges))
	for _, e := range t.Edges {
		parents[e.Parent] = true
	}
	var leaves []Node
	for _, n := range t.Nodes {
		if !parents[n.ID] {
			leaves = append(leaves, n)
		}
	}
	return leaves
}

package derive

import (
	"fmt"

	cfgparser "github.com/Sammany1/CFG-Parser"
	"github.com/Sammany1/CFG-Parser/grammar"
)

// --- Derivation listener ---------------------------------------------------

// Listener is a type for walking a derivation path.
type Listener interface {
	Reduce(lhs string, rhs []*RuleNode, span cfgparser.Span, level int) interface{}
	Terminal(token string, span cfgparser.Span, level int) interface{}
}

// RuleNode represents a node occuring during a derivation walk.
type RuleNode struct {
	sym    string
	Extent cfgparser.Span // span of input tokens this node covers
	Value  interface{}    // user defined value
}

// Symbol returns the grammar symbol a RuleNode refers to.
// It is either a terminal or the LHS of an expansion.
func (rnode *RuleNode) Symbol() string {
	return rnode.sym
}

// --- Walker ----------------------------------------------------------------

// Walk re-plays a derivation path as a nested derivation. Starting with the
// left-hand side of the first expansion, it descends into the symbols of
// every right-hand side from left to right, consuming the expansions of the
// path in order. The listener's Terminal method is called for every terminal,
// and its Reduce method is called for every expansion, after its children
// have been walked. Values returned by the listener are stored in the
// RuleNodes handed to Reduce.
//
// Terminals consume one input position each. The spans reported are those of
// the re-played derivation, starting at 0.
//
// Grammar g is used for telling terminals from non-terminals. If the path is
// inconsistent with g, Walk returns an error wrapping ErrPathMismatch.
func Walk(g *grammar.Grammar, path Path, listener Listener) (*RuleNode, error) {
	if g == nil {
		return nil, ErrNoGrammar
	}
	if len(path) == 0 {
		return nil, fmt.Errorf("empty path: %w", ErrPathMismatch)
	}
	tracer().Debugf("=== Walk ===============================")
	w := &walker{g: g, path: path, listener: listener}
	root, err := w.walk(path[0].LHS, 0, 0)
	if err != nil {
		tracer().Errorf("walk failed: %v", err)
		return nil, err
	}
	if w.next < len(path) {
		err = fmt.Errorf("%d expansions left over after walk: %w", len(path)-w.next, ErrPathMismatch)
		tracer().Errorf("walk failed: %v", err)
		return nil, err
	}
	tracer().Debugf("========================================")
	return root, nil
}

type walker struct {
	g        *grammar.Grammar
	path     Path
	next     int // next expansion to consume
	listener Listener
}

func (w *walker) walk(sym string, pos uint64, level int) (*RuleNode, error) {
	if w.g.IsTerminal(sym) {
		span := cfgparser.Span{pos, pos + 1}
		value := w.listener.Terminal(sym, span, level)
		return &RuleNode{sym: sym, Extent: span, Value: value}, nil
	}
	if w.next >= len(w.path) {
		return nil, fmt.Errorf("path exhausted at %s: %w", sym, ErrPathMismatch)
	}
	e := w.path[w.next]
	if e.LHS != sym {
		return nil, fmt.Errorf("expected expansion of %s, have %s: %w", sym, e.LHS, ErrPathMismatch)
	}
	w.next++
	children := make([]*RuleNode, len(e.RHS))
	extent := cfgparser.Span{pos, pos} // empty expansions cover no input
	for i, child := range e.RHS {
		rnode, err := w.walk(child, extent.To(), level+1)
		if err != nil {
			return nil, err
		}
		children[i] = rnode
		extent = extent.Extend(rnode.Extent)
	}
	value := w.listener.Reduce(sym, children, extent, level)
	tracer().Debugf("Tree node    %d|-----%s-----|%d", extent.From(), sym, extent.To())
	return &RuleNode{sym: sym, Extent: extent, Value: value}, nil
}

// --- Tree building listener ------------------------------------------------

// TreeBuilder is a Listener which creates a nested syntax tree: every
// expansion becomes an inner node with its right-hand side symbols as
// children, in order. An empty expansion gets a single leaf labeled "ε".
//
// Node values are the IDs of the tree nodes created. The root node is
// created last.
type TreeBuilder struct {
	tree *Tree
}

// NewTreeBuilder creates a TreeBuilder with an empty tree.
func NewTreeBuilder() *TreeBuilder {
	return &TreeBuilder{tree: &Tree{}}
}

// Tree returns the tree built so far.
func (tb *TreeBuilder) Tree() *Tree {
	return tb.tree
}

// Reduce is a listener method, called for every expansion.
func (tb *TreeBuilder) Reduce(lhs string, rhs []*RuleNode, span cfgparser.Span, level int) interface{} {
	id := tb.tree.add("", lhs)
	if len(rhs) == 0 {
		tb.tree.add(id, grammar.Epsilon)
		return id
	}
	for _, r := range rhs {
		tb.tree.link(id, r.Value.(string))
	}
	return id
}

// Terminal is a listener method, called for every matched token.
func (tb *TreeBuilder) Terminal(token string, span cfgparser.Span, level int) interface{} {
	return tb.tree.add("", token)
}

var _ Listener = &TreeBuilder{}

// SyntaxTree builds a nested syntax tree from a derivation path, using a
// TreeBuilder. The root is labeled with the left-hand side of the first
// expansion, and the leaves read from left to right are the matched tokens
// (interspersed with "ε" for empty expansions).
func SyntaxTree(g *grammar.Grammar, path Path) (*Tree, error) {
	tb := NewTreeBuilder()
	if _, err := Walk(g, path, tb); err != nil {
		return nil, err
	}
	return tb.Tree(), nil
}

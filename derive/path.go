package derive

import (
	"fmt"
	"strings"

	cfgparser "github.com/Sammany1/CFG-Parser"
	"github.com/Sammany1/CFG-Parser/grammar"
)

// Expansion records the application of a single rule during a derivation:
// non-terminal LHS has been replaced by production RHS, and the resulting
// symbols cover the input tokens of Span.
type Expansion struct {
	LHS  string
	RHS  grammar.Production
	Span cfgparser.Span // input tokens covered by LHS
}

func (e Expansion) String() string {
	return fmt.Sprintf("%s -> %s %s", e.LHS, e.RHS, e.Span)
}

// Path is the sequence of expansions of a successful derivation, in
// pre-order: an expansion is followed by the expansions of the non-terminals
// of its right-hand side, from left to right. The first entry expands the
// start symbol.
type Path []Expansion

func (p Path) String() string {
	var b strings.Builder
	b.WriteString("[")
	for i, e := range p {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(e.LHS)
		b.WriteString(" -> ")
		b.WriteString(e.RHS.String())
	}
	b.WriteString("]")
	return b.String()
}

// Derivation is the result of a single derivation attempt.
type Derivation struct {
	Start    string   // start symbol of the grammar
	Tokens   []string // input tokens
	Accepted bool     // did the input derive from Start?
	Consumed int      // number of tokens matched by Start; 0 if no match
	Path     Path     // expansions in pre-order; nil if not accepted
}

// Steps returns the sequence of sentential forms of d, see function Steps.
// For a rejected input it returns nil.
func (d *Derivation) Steps() []string {
	if !d.Accepted {
		return nil
	}
	return Steps(d.Start, d.Path)
}

// Tree returns the tree of d, see function BuildTree.
// For a rejected input it returns nil.
func (d *Derivation) Tree() *Tree {
	if !d.Accepted {
		return nil
	}
	return BuildTree(d.Path)
}

// SyntaxTree returns a nested syntax tree for d, see function SyntaxTree.
func (d *Derivation) SyntaxTree(g *grammar.Grammar) (*Tree, error) {
	if !d.Accepted {
		return nil, fmt.Errorf("input has not been accepted: %w", ErrPathMismatch)
	}
	return SyntaxTree(g, d.Path)
}

package grammar

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/cnf/structhash"
	"github.com/emirpasic/gods/maps/linkedhashmap"
)

// Epsilon is the literal denoting an empty production in grammar text. It is
// also used to display an empty sentential form.
const Epsilon = "ε"

// --- Productions -----------------------------------------------------------

// Production is an ordered sequence of grammar symbols, i.e. the right-hand
// side of a rule. A production of length 0 is the empty production.
type Production []string

// IsEpsilon is true for the empty production.
func (p Production) IsEpsilon() bool {
	return len(p) == 0
}

// Equal compares two productions symbol by symbol.
func (p Production) Equal(other Production) bool {
	if len(p) != len(other) {
		return false
	}
	for i := range p {
		if p[i] != other[i] {
			return false
		}
	}
	return true
}

// String joins the symbols of p by a single space. The empty production is
// displayed as "ε".
func (p Production) String() string {
	if p.IsEpsilon() {
		return Epsilon
	}
	return strings.Join(p, " ")
}

// --- Grammar ---------------------------------------------------------------

// Grammar maps non-terminals to their ordered list of alternative productions.
// The order of alternatives is the order in which they have been declared,
// and it is the order in which a parser will try them.
//
// A Grammar is immutable after it has been compiled or built. It is safe to
// share it between goroutines.
type Grammar struct {
	start string
	rules *linkedhashmap.Map // non-terminal → []Production, in order of first appearance
}

func newGrammar() *Grammar {
	return &Grammar{
		rules: linkedhashmap.New(),
	}
}

// appendRule appends alternatives for lhs. The first lhs ever appended
// becomes the start symbol.
func (g *Grammar) appendRule(lhs string, alts ...Production) {
	if g.rules.Empty() {
		g.start = lhs
		tracer().Debugf("start symbol is %q", lhs)
	}
	var prods []Production
	if v, found := g.rules.Get(lhs); found {
		prods = v.([]Production)
	}
	for _, a := range alts {
		prods = append(prods, normalize(a))
	}
	g.rules.Put(lhs, prods)
}

// normalize copies a production, mapping nil to the empty production.
func normalize(p Production) Production {
	if len(p) == 0 {
		return Production{}
	}
	return append(Production(nil), p...)
}

// Start returns the start symbol, i.e. the left-hand side of the first rule.
func (g *Grammar) Start() string {
	if g == nil {
		return ""
	}
	return g.start
}

// IsNonTerminal is a predicate: does g have rules for sym?
func (g *Grammar) IsNonTerminal(sym string) bool {
	if g.empty() {
		return false
	}
	_, found := g.rules.Get(sym)
	return found
}

// IsTerminal is a predicate: is sym matched literally against input?
// Every symbol without rules is a terminal.
func (g *Grammar) IsTerminal(sym string) bool {
	return !g.IsNonTerminal(sym)
}

// Alternatives returns the alternative productions for non-terminal sym,
// in declaration order. It returns nil if sym is a terminal.
// Clients must not modify the returned productions.
func (g *Grammar) Alternatives(sym string) []Production {
	if g.empty() {
		return nil
	}
	v, found := g.rules.Get(sym)
	if !found {
		return nil
	}
	prods := v.([]Production)
	return append([]Production(nil), prods...)
}

// NonTerminals returns all non-terminals in order of their first appearance.
func (g *Grammar) NonTerminals() []string {
	if g.empty() {
		return nil
	}
	keys := g.rules.Keys()
	nts := make([]string, len(keys))
	for i, k := range keys {
		nts[i] = k.(string)
	}
	return nts
}

// Terminals returns all symbols which occur on a right-hand side but have no
// rules, in order of their first appearance.
func (g *Grammar) Terminals() []string {
	var terms []string
	seen := map[string]bool{}
	g.EachNonTerminal(func(_ string, alts []Production) interface{} {
		for _, a := range alts {
			for _, sym := range a {
				if !seen[sym] && g.IsTerminal(sym) {
					seen[sym] = true
					terms = append(terms, sym)
				}
			}
		}
		return nil
	})
	return terms
}

// EachNonTerminal iterates over all non-terminals, in order of first appearance,
// and calls a mapper function for each. The results of the mapper are collected
// and returned.
func (g *Grammar) EachNonTerminal(mapper func(name string, alts []Production) interface{}) []interface{} {
	var r []interface{}
	if g.empty() {
		return r
	}
	it := g.rules.Iterator()
	for it.Next() {
		r = append(r, mapper(it.Key().(string), it.Value().([]Production)))
	}
	return r
}

// Size returns the number of non-terminals.
func (g *Grammar) Size() int {
	if g.empty() {
		return 0
	}
	return g.rules.Size()
}

// empty is true for a nil grammar and for the zero value.
func (g *Grammar) empty() bool {
	return g == nil || g.rules == nil
}

// RuleCount returns the number of alternatives over all non-terminals.
func (g *Grammar) RuleCount() int {
	cnt := 0
	g.EachNonTerminal(func(_ string, alts []Production) interface{} {
		cnt += len(alts)
		return nil
	})
	return cnt
}

// String renders g in the textual grammar format, one line per non-terminal.
// Compiling the result yields a grammar with the same signature.
func (g *Grammar) String() string {
	var b bytes.Buffer
	g.EachNonTerminal(func(name string, alts []Production) interface{} {
		b.WriteString(name)
		b.WriteString(" -> ")
		for i, a := range alts {
			if i > 0 {
				b.WriteString(" | ")
			}
			b.WriteString(a.String())
		}
		b.WriteString("\n")
		return nil
	})
	return b.String()
}

// Dump is a debugging helper. It traces all rules at debug level.
func (g *Grammar) Dump() {
	tracer().Debugf("--- grammar, start = %s ----------", g.Start())
	n := 0
	g.EachNonTerminal(func(name string, alts []Production) interface{} {
		for _, a := range alts {
			tracer().Debugf("%3d: [%s] ::= [%s]", n, name, strings.Join(a, " "))
			n++
		}
		return nil
	})
	tracer().Debugf("-------------------------------------")
}

// --- Signatures ------------------------------------------------------------

type signature struct {
	Start string
	Rules []signatureRule
}

type signatureRule struct {
	LHS string
	RHS []string
}

// Signature returns a structural hash of g. Two grammars with the same start
// symbol and the same rules in the same order have equal signatures, no
// matter whether they were compiled from text or built with a builder.
func (g *Grammar) Signature() string {
	sig := signature{Start: g.Start()}
	g.EachNonTerminal(func(name string, alts []Production) interface{} {
		for _, a := range alts {
			sig.Rules = append(sig.Rules, signatureRule{LHS: name, RHS: []string(a)})
		}
		return nil
	})
	h, err := structhash.Hash(sig, 1)
	if err != nil {
		tracer().Errorf("cannot hash grammar: %v", err)
		return ""
	}
	return h
}

// GoString is used by fmt's %#v.
func (g *Grammar) GoString() string {
	return fmt.Sprintf("grammar(start=%s, |N|=%d, |R|=%d)", g.Start(), g.Size(), g.RuleCount())
}

package grammar

import (
	"errors"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

// A classic LL(1) expression grammar.
const exprGrammar = `E -> T E1
E1 -> + T E1 | ε
T -> F T1
T1 -> * F T1 | ε
F -> ( E ) | a`

func TestCompileExpressionGrammar(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cfg.grammar")
	defer teardown()
	//
	g, err := Compile(exprGrammar)
	if err != nil {
		t.Fatal(err)
	}
	g.Dump()
	if g.Start() != "E" {
		t.Errorf("Expected start symbol to be E, is %q", g.Start())
	}
	if g.Size() != 5 {
		t.Errorf("Expected 5 non-terminals, have %d", g.Size())
	}
	if g.RuleCount() != 8 {
		t.Errorf("Expected 8 alternatives, have %d", g.RuleCount())
	}
	nts := strings.Join(g.NonTerminals(), ",")
	if nts != "E,E1,T,T1,F" {
		t.Errorf("Expected non-terminals in order E,E1,T,T1,F, are %s", nts)
	}
	alts := g.Alternatives("E1")
	if len(alts) != 2 || !alts[0].Equal(Production{"+", "T", "E1"}) || !alts[1].IsEpsilon() {
		t.Errorf("Expected E1 -> + T E1 | ε, is %v", alts)
	}
	alts = g.Alternatives("F")
	if len(alts) != 2 || !alts[0].Equal(Production{"(", "E", ")"}) || !alts[1].Equal(Production{"a"}) {
		t.Errorf("Expected F -> ( E ) | a, is %v", alts)
	}
}

func TestSymbolClassification(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cfg.grammar")
	defer teardown()
	//
	g, err := Compile(exprGrammar)
	if err != nil {
		t.Fatal(err)
	}
	for _, nt := range []string{"E", "E1", "T", "T1", "F"} {
		if !g.IsNonTerminal(nt) {
			t.Errorf("Expected %s to be a non-terminal", nt)
		}
	}
	for _, term := range []string{"a", "+", "*", "(", ")", "e", "ε"} {
		if !g.IsTerminal(term) {
			t.Errorf("Expected %s to be a terminal", term)
		}
	}
	if g.Alternatives("a") != nil {
		t.Errorf("Expected terminal to have no alternatives")
	}
	// the same token is a non-terminal as soon as it has a rule
	g2, _ := Compile("S -> a S1\na -> x")
	if !g2.IsNonTerminal("a") || !g2.IsTerminal("S1") {
		t.Errorf("Expected 'a' to be a non-terminal and 'S1' to be a terminal in second grammar")
	}
}

func TestAlternativesAppendAcrossLines(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cfg.grammar")
	defer teardown()
	//
	g, err := Compile(`
S -> a | b

A -> x
S -> c
S -> ε`)
	if err != nil {
		t.Fatal(err)
	}
	if g.Start() != "S" {
		t.Errorf("Expected start symbol to stay S, is %q", g.Start())
	}
	alts := g.Alternatives("S")
	if len(alts) != 4 {
		t.Fatalf("Expected 4 alternatives for S, have %d", len(alts))
	}
	for i, expected := range []string{"a", "b", "c", "ε"} {
		if alts[i].String() != expected {
			t.Errorf("Expected alternative #%d to be %s, is %s", i, expected, alts[i])
		}
	}
}

func TestEpsilonProduction(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cfg.grammar")
	defer teardown()
	//
	g, err := Compile("A -> ε | ε x | ")
	if err != nil {
		t.Fatal(err)
	}
	alts := g.Alternatives("A")
	if len(alts) != 3 {
		t.Fatalf("Expected 3 alternatives, have %d", len(alts))
	}
	if len(alts[0]) != 0 {
		t.Errorf("Expected sole ε to compile to a production of length 0, is %v", alts[0])
	}
	if !alts[1].Equal(Production{"ε", "x"}) {
		t.Errorf("Expected ε within a longer alternative to stay a symbol, is %v", alts[1])
	}
	if !alts[2].IsEpsilon() {
		t.Errorf("Expected blank alternative to be empty, is %v", alts[2])
	}
}

func TestMalformedRule(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cfg.grammar")
	defer teardown()
	//
	_, err := Compile("S -> E\nE T\n")
	if err == nil {
		t.Fatal("Expected malformed line to be rejected")
	}
	var mre *MalformedRuleError
	if !errors.As(err, &mre) {
		t.Fatalf("Expected MalformedRuleError, is %T", err)
	}
	if !strings.Contains(err.Error(), "E T") {
		t.Errorf("Expected error message to contain offending line, is %q", err.Error())
	}
	if mre.Line != "E T" || mre.LineNo != 2 {
		t.Errorf("Expected offending line 2 'E T', is %d %q", mre.LineNo, mre.Line)
	}
}

func TestSplitOnFirstSeparator(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cfg.grammar")
	defer teardown()
	//
	g, err := Compile("S -> a -> b")
	if err != nil {
		t.Fatal(err)
	}
	alts := g.Alternatives("S")
	if len(alts) != 1 || !alts[0].Equal(Production{"a", "->", "b"}) {
		t.Errorf("Expected S -> [a -> b], is %v", alts)
	}
}

func TestEmptyGrammar(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cfg.grammar")
	defer teardown()
	//
	if _, err := Compile("\n   \n"); !errors.Is(err, ErrEmptyGrammar) {
		t.Errorf("Expected ErrEmptyGrammar for blank text, is %v", err)
	}
}

func TestCompileReader(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cfg.grammar")
	defer teardown()
	//
	g1, err := Compile(exprGrammar)
	if err != nil {
		t.Fatal(err)
	}
	g2, err := CompileReader(strings.NewReader(exprGrammar + "\r\n"))
	if err != nil {
		t.Fatal(err)
	}
	if g1.Signature() != g2.Signature() {
		t.Errorf("Expected equal signatures, are %s and %s", g1.Signature(), g2.Signature())
	}
}

func TestStringRoundTrip(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cfg.grammar")
	defer teardown()
	//
	g, err := Compile(exprGrammar)
	if err != nil {
		t.Fatal(err)
	}
	t.Logf("\n%s", g)
	again, err := Compile(g.String())
	if err != nil {
		t.Fatal(err)
	}
	if g.Signature() != again.Signature() {
		t.Errorf("Expected grammar to survive a String/Compile round trip")
	}
	other, _ := Compile("E -> T E1")
	if other.Signature() == g.Signature() {
		t.Errorf("Expected different grammars to have different signatures")
	}
}

func TestTerminals(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cfg.grammar")
	defer teardown()
	//
	g, err := Compile(exprGrammar)
	if err != nil {
		t.Fatal(err)
	}
	terms := strings.Join(g.Terminals(), " ")
	if terms != "+ * ( ) a" {
		t.Errorf("Expected terminals + * ( ) a, are %s", terms)
	}
}

func TestZeroGrammar(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cfg.grammar")
	defer teardown()
	//
	for _, g := range []*Grammar{{}, nil} {
		if g.Size() != 0 || g.RuleCount() != 0 {
			t.Errorf("Expected empty grammar to have no rules, has %d", g.RuleCount())
		}
		if g.Start() != "" || g.IsNonTerminal("S") || g.Alternatives("S") != nil {
			t.Errorf("Expected empty grammar to have no non-terminals")
		}
		if len(g.NonTerminals()) != 0 || len(g.Terminals()) != 0 || g.String() != "" {
			t.Errorf("Expected empty grammar to have no symbols, is %q", g.String())
		}
	}
}

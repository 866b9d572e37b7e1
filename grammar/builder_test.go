package grammar

import (
	"errors"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestBuilder(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cfg.grammar")
	defer teardown()
	//
	b := NewGrammarBuilder()
	b.LHS("E").N("T").N("E1").End()
	b.LHS("E1").T("+").N("T").N("E1").End()
	b.LHS("E1").Epsilon()
	b.LHS("T").N("F").N("T1").End()
	b.LHS("T1").T("*").N("F").N("T1").End()
	b.LHS("T1").Epsilon()
	b.LHS("F").T("(").N("E").T(")").End()
	b.LHS("F").T("a").End()
	g, err := b.Grammar()
	if err != nil {
		t.Fatal(err)
	}
	g.Dump()
	compiled, _ := Compile(exprGrammar)
	if g.Signature() != compiled.Signature() {
		t.Errorf("Expected built grammar to equal compiled grammar:\n%s\n%s", g, compiled)
	}
}

func TestBuilderErrors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cfg.grammar")
	defer teardown()
	//
	if _, err := NewGrammarBuilder().Grammar(); !errors.Is(err, ErrEmptyGrammar) {
		t.Errorf("Expected ErrEmptyGrammar for empty builder, is %v", err)
	}
	b := NewGrammarBuilder()
	b.LHS("S").T("").End()
	if _, err := b.Grammar(); err == nil {
		t.Errorf("Expected empty symbol to be an error")
	}
	b = NewGrammarBuilder()
	b.LHS("S").T("a").Epsilon()
	if _, err := b.Grammar(); err == nil {
		t.Errorf("Expected epsilon rule with symbols to be an error")
	}
}

func TestBuilderClassifiesLate(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cfg.grammar")
	defer teardown()
	//
	b := NewGrammarBuilder()
	b.LHS("S").T("A").End() // declared as terminal, but has a rule below
	b.LHS("A").T("x").End()
	g, _ := b.Grammar()
	if !g.IsNonTerminal("A") {
		t.Errorf("Expected A to be a non-terminal, as it has a rule")
	}
}

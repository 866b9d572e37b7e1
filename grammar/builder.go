package grammar

import (
	"errors"
	"fmt"
)

// GrammarBuilder is a builder type for grammars. Use it as
//
//    b := NewGrammarBuilder()
//    b.LHS("E1").T("+").N("T").N("E1").End()   // E1 -> + T E1
//    b.LHS("E1").Epsilon()                     // E1 -> ε
//    g, err := b.Grammar()
//
// The first rule's left-hand side becomes the start symbol.
type GrammarBuilder struct {
	g   *Grammar
	err error
}

// NewGrammarBuilder creates a builder for an empty grammar.
func NewGrammarBuilder() *GrammarBuilder {
	return &GrammarBuilder{g: newGrammar()}
}

// RuleBuilder collects the right-hand side of a single rule. It is created
// by GrammarBuilder.LHS and finished by End or Epsilon.
type RuleBuilder struct {
	gb  *GrammarBuilder
	lhs string
	rhs Production
}

// LHS starts a new rule for non-terminal s.
func (gb *GrammarBuilder) LHS(s string) *RuleBuilder {
	if s == "" {
		gb.fail(errors.New("left-hand side of a rule must not be empty"))
	}
	return &RuleBuilder{gb: gb, lhs: s}
}

// N appends a non-terminal to the right-hand side.
func (rb *RuleBuilder) N(s string) *RuleBuilder {
	return rb.symbol(s)
}

// T appends a terminal to the right-hand side.
//
// Classification of symbols is determined by the grammar's rules, not by
// calling N or T: a symbol appended with T still is a non-terminal if
// some rule has it as its left-hand side.
func (rb *RuleBuilder) T(s string) *RuleBuilder {
	return rb.symbol(s)
}

func (rb *RuleBuilder) symbol(s string) *RuleBuilder {
	if s == "" {
		rb.gb.fail(fmt.Errorf("empty symbol in right-hand side of %s", rb.lhs))
		return rb
	}
	rb.rhs = append(rb.rhs, s)
	return rb
}

// End finishes the rule and adds it to the grammar. It returns the right-hand
// side of the rule.
func (rb *RuleBuilder) End() Production {
	rb.gb.g.appendRule(rb.lhs, rb.rhs)
	return normalize(rb.rhs)
}

// Epsilon adds the empty production for the rule's left-hand side.
func (rb *RuleBuilder) Epsilon() Production {
	if len(rb.rhs) > 0 {
		rb.gb.fail(fmt.Errorf("epsilon rule for %s must not have symbols, has %v", rb.lhs, rb.rhs))
	}
	rb.gb.g.appendRule(rb.lhs, Production{})
	return Production{}
}

func (gb *GrammarBuilder) fail(err error) {
	tracer().Errorf("%v", err)
	if gb.err == nil {
		gb.err = err
	}
}

// Grammar returns the grammar built so far. It returns the first error
// which occurred during building, or ErrEmptyGrammar if no rule was added.
func (gb *GrammarBuilder) Grammar() (*Grammar, error) {
	if gb.err != nil {
		return nil, gb.err
	}
	if gb.g.Size() == 0 {
		return nil, ErrEmptyGrammar
	}
	return gb.g, nil
}

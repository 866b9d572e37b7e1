/*
Package grammar implements the grammar model for context-free grammars.

Compiling a Grammar

Grammars are written as text, one rule per line. A rule has a left-hand side,
the separator "->" and one or more alternatives separated by "|". Alternatives
are split into symbols at whitespace; an alternative consisting of the single
symbol "ε" denotes the empty production. Blank lines are ignored.

Example:

    g, err := grammar.Compile(`
        E  -> T E1
        E1 -> + T E1 | ε
        T  -> F T1
        T1 -> * F T1 | ε
        F  -> ( E ) | a
    `)

The left-hand side of the first rule is the start symbol. Rules for the same
left-hand side may be spread over several lines; their alternatives are
appended in order of appearance.

Symbols are not marked as terminals or non-terminals. A symbol is a
non-terminal if, and only if, the grammar has a rule for it. Symbols without
rules are terminals and will be matched literally against input tokens.

Building a Grammar

Clients may build grammars programmatically, too:

    b := grammar.NewGrammarBuilder()
    b.LHS("S").N("A").T("a").End()    // S  ->  A a
    b.LHS("A").T("b").End()           // A  ->  b
    b.LHS("A").Epsilon()              // A  ->  ε
    g, err := b.Grammar()

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

*/
package grammar

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'cfg.grammar'.
func tracer() tracing.Trace {
	return tracing.Select("cfg.grammar")
}

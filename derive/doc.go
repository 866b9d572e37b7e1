/*
Package derive implements a backtracking recognizer for context-free grammars.

A Parser tries to derive a sequence of input tokens from the start symbol of
a grammar. It works top-down and recursively: for a non-terminal, the
alternatives are tried in declaration order and the first one which matches
completely wins; terminals are compared literally against the token at the
current input position. There is no memoization and there is no lookahead,
so the worst case running time is exponential, and left-recursive grammars
will not terminate unless a guard is enabled (see options MaxDepth and
GuardLeftRecursion).

The result of a successful derivation is a Path: the expansions which were
applied, in pre-order. A Path carries all information needed for re-playing
the derivation:

    g, _ := grammar.Compile(text)
    d, err := derive.Derive(g, []string{"a", "+", "a"})
    if err == nil && d.Accepted {
        for _, form := range d.Steps() {   // leftmost sentential forms
            fmt.Println(form)
        }
        tree := d.Tree()
        ...
    }

Rejection of an input is not an error. Errors are reserved for invalid
arguments and for exceeding the configured recursion depth.

Configuration

Defaults for the options are taken from the global configuration (package
schuko/gconf), if present:

    derive.allow-prefix          : bool, accept a match of a prefix of the input
    derive.max-depth             : int, maximum recursion depth (0 = unbounded)
    derive.guard-left-recursion  : bool, cut re-entry of a non-terminal at the same position

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

*/
package derive

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'cfg.derive'.
func tracer() tracing.Trace {
	return tracing.Select("cfg.derive")
}

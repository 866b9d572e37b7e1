/*
Command cfgp derives input strings from context-free grammars.

Usage:

    cfgp derive [-g grammar.txt] [--dot tree.dot] [--syntax-tree] a + a * a
    cfgp grammar -g grammar.txt
    cfgp repl [-g grammar.txt]

Without a grammar file the expression grammar

    E  -> T E1
    E1 -> + T E1 | ε
    T  -> F T1
    T1 -> * F T1 | ε
    F  -> ( E ) | a

is used. `derive` exits with code 1 if the input is rejected, and with code 2
if the grammar cannot be compiled.

Configuration keys may be set by flags, by environment variables with prefix
CFGP_ (e.g. CFGP_DERIVE_MAX_DEPTH=100), or by a configuration file cfgp.yaml
in the current directory or in $HOME/.config/cfgp.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

*/
package main

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'cfg.cli'.
func tracer() tracing.Trace {
	return tracing.Select("cfg.cli")
}

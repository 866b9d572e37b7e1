/*
Package cfgparser is a toolbox for deriving sentences from context-free grammars.

It decides whether a sequence of tokens is derivable from a grammar and, if
so, reconstructs one leftmost derivation: the sequence of sentential forms
and a parse tree. Package structure is as follows:

■ grammar: Package grammar compiles textual production rules
(`E -> T E1 | ε`) into a grammar model.

■ derive: Package derive implements a top-down recognizer with ordered
backtracking. It records a derivation path and reconstructs derivation steps
and trees from it.

■ scanner: Package scanner splits raw input strings into tokens.

■ render: Package render turns derivation results into text, terminal trees
and Graphviz documents.

The base package contains data types which are used throughout all the other packages.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

*/
package cfgparser

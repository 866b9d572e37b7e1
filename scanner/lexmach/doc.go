/*
Package lexmach provides an adapter to use the lexmachine scanner generator for
tokenizing derivation input.

For more information on lexmachine, see e.g.
https://hackthology.com/how-to-tokenize-complex-strings-with-lexmachine.html

Two ready-made adapters cover the usual cases:

	lm, err := lexmach.NewWhitespaceAdapter()      // split at whitespace
	lm, err := lexmach.NewLiteralAdapter(g.Terminals()) // "a+a" ⇒ a, +, a

Clients who need other token patterns use NewLMAdapter with an init function:

	init := func(lexer *lexmachine.Lexer) {
		// lexmach.Skip      is a pre-defined action which ignores the scanned match
		// lexmach.MakeToken is a pre-defined action which wraps a scanned match into a
		//                   token
	}
	lm, err := lexmach.NewLMAdapter(init, literals)

A scanner is instantiated for each concrete input sequence. It implements the
scanner.Tokenizer interface; tokens are read until EOF.

	scan, err := lm.Scanner("input string to tokenize")
	if err != nil {
		// do error handling
	}
	for token := scan.NextToken(); token.TokType() != scanner.EOF; token = scan.NextToken() {
		…
	}

Method Tokens does all of this and returns the lexemes, ready for a
derivation.

________________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

*/
package lexmach

/*
Package scanner defines an interface for scanners which split raw input
strings into tokens for a derivation.

Derivations match terminals against token lexemes only. The simplest way to
produce tokens is function Split, which splits at whitespace. A DFA-based
implementation, using lexmachine, lives in sub-package `lexmach`.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

*/
package scanner

import (
	"fmt"
	"strings"

	cfgparser "github.com/Sammany1/CFG-Parser"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'cfg.scanner'.
func tracer() tracing.Trace {
	return tracing.Select("cfg.scanner")
}

// Token types produced by the scanners of this module.
const (
	EOF     cfgparser.TokType = -1 // end of input
	Word    cfgparser.TokType = 1  // run of non-whitespace characters
	Literal cfgparser.TokType = 2  // terminal symbol of a grammar
)

// Tokenizer is a scanner interface.
type Tokenizer interface {
	NextToken() cfgparser.Token
	SetErrorHandler(func(error))
}

// Split splits input at whitespace. It is the tokenization a derivation
// expects for plain input strings: every run of non-whitespace characters
// becomes a token.
func Split(input string) []string {
	tokens := strings.Fields(input)
	tracer().Debugf("split input into %d tokens", len(tokens))
	return tokens
}

// Lexemes reads tokens from t until EOF and returns their lexemes.
func Lexemes(t Tokenizer) []string {
	var lexemes []string
	token := t.NextToken()
	for token.TokType() != EOF {
		tracer().Debugf("token %4d | %10s | %s", token.TokType(), token.Lexeme(), token.Span())
		lexemes = append(lexemes, token.Lexeme())
		token = t.NextToken()
	}
	return lexemes
}

// --- Default tokens --------------------------------------------------------

// DefaultToken is a very unsophisticated token type, used as default for the
// LexMachine scanner.
type DefaultToken struct {
	kind   cfgparser.TokType
	lexeme string
	span   cfgparser.Span
}

// MakeDefaultToken creates a token from its parts.
func MakeDefaultToken(typ cfgparser.TokType, lexeme string, span cfgparser.Span) DefaultToken {
	return DefaultToken{
		kind:   typ,
		lexeme: lexeme,
		span:   span,
	}
}

func (t DefaultToken) TokType() cfgparser.TokType {
	return t.kind
}

func (t DefaultToken) Lexeme() string {
	return t.lexeme
}

func (t DefaultToken) Span() cfgparser.Span {
	return t.span
}

func (t DefaultToken) String() string {
	return fmt.Sprintf("%q%s", t.lexeme, t.span)
}

var _ cfgparser.Token = DefaultToken{}

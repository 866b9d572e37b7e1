package cfgparser

import "fmt"

// --- A general purpose interface for tokens --------------------------------

// TokType is a category type for a Token. Input tokens for a derivation are
// matched by lexeme only; the type is kept for scanners which want to
// categorize their output.
type TokType int

// Tokens represent input tokens. They are usually produced by a scanner from
// a raw input string.
//
// An example would be the token for symbol '+' in input "a + a":
//
//    TokType = 1           // identifier for this kind of tokens (scanner specific)
//    Lexeme  = "+"         // lexeme how it appeared in the input stream
//    Span    = 2…3         // occurred from byte position 2 in the input stream
//
type Token interface {
	TokType() TokType
	Lexeme() string
	Span() Span
}

// --- Spans ------------------------------------------------------------

// Span is a small type for capturing a run of input tokens (or bytes, for a
// scanner). A span denotes a start position and the position just behind the
// end. For every expansion of a derivation, the engine records which input
// positions the expanded non-terminal covers.
type Span [2]uint64 // (x…y)

// From returns the start value of a span.
func (s Span) From() uint64 {
	return s[0]
}

// To returns the end value of a span.
func (s Span) To() uint64 {
	return s[1]
}

// Len returns the length of (x…y)
func (s Span) Len() uint64 {
	return s[1] - s[0]
}

// Extend returns the smallest span covering s and other.
func (s Span) Extend(other Span) Span {
	if other[0] < s[0] {
		s[0] = other[0]
	}
	if other[1] > s[1] {
		s[1] = other[1]
	}
	return s
}

func (s Span) String() string {
	return fmt.Sprintf("(%d…%d)", s[0], s[1])
}

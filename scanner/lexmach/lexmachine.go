package lexmach

import (
	"fmt"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	cfgparser "github.com/Sammany1/CFG-Parser"
	"github.com/Sammany1/CFG-Parser/scanner"
	"github.com/npillmayer/schuko/tracing"

	"github.com/timtadh/lexmachine"
	"github.com/timtadh/lexmachine/machines"
)

// lexmachine adapter

// tracer traces with key 'cfg.scanner'.
func tracer() tracing.Trace {
	return tracing.Select("cfg.scanner")
}

// LMAdapter is a lexmachine adapter to use lexmachine as a scanner.
type LMAdapter struct {
	Lexer *lexmachine.Lexer
}

// NewLMAdapter creates a new lexmachine adapter. It receives an init function
// for adding patterns to the lexer, and a list of literals ('+', "->", …).
// Literals are added before init is called, thus they take precedence over
// patterns of the same match length.
//
// NewLMAdapter will return an error if compiling the DFA failed.
func NewLMAdapter(init func(*lexmachine.Lexer), literals []string) (*LMAdapter, error) {
	adapter := &LMAdapter{}
	adapter.Lexer = lexmachine.NewLexer()
	for _, lit := range literals {
		if lit == "" {
			continue
		}
		adapter.Lexer.Add([]byte(quote(lit)), MakeToken(lit, int(scanner.Literal)))
	}
	if init != nil {
		init(adapter.Lexer)
	}
	if err := adapter.Lexer.Compile(); err != nil {
		tracer().Errorf("Error compiling DFA: %v", err)
		return nil, err
	}
	return adapter, nil
}

// NewWhitespaceAdapter creates an adapter which splits input at whitespace:
// every run of non-whitespace characters becomes a token of type
// scanner.Word. This is the tokenization of scanner.Split, but with token
// spans. Whitespace is what unicode.IsSpace reports, see Scanner.
func NewWhitespaceAdapter() (*LMAdapter, error) {
	return NewLMAdapter(func(lexer *lexmachine.Lexer) {
		lexer.Add([]byte(`[^ \t\r\n]+`), MakeToken("WORD", int(scanner.Word)))
		lexer.Add([]byte(`[ \t\r\n]+`), Skip)
	}, nil)
}

// NewLiteralAdapter creates an adapter which recognizes the given terminal
// symbols even if they are not separated by whitespace. Longer terminals win
// over shorter ones. Any other non-whitespace character becomes a token of
// its own. Multi-byte UTF-8 characters are kept whole.
//
// Given terminals "a", "+" and "*", input "a+a * a" is split into
// a, +, a, *, a.
func NewLiteralAdapter(terminals []string) (*LMAdapter, error) {
	literals := append([]string(nil), terminals...)
	sort.SliceStable(literals, func(i, j int) bool {
		return len(literals[i]) > len(literals[j])
	})
	return NewLMAdapter(func(lexer *lexmachine.Lexer) {
		// a lead byte followed by its continuation bytes
		lexer.Add([]byte("[^ \\t\\r\\n\x80-\xbf][\x80-\xbf]*"), MakeToken("CHAR", int(scanner.Word)))
		lexer.Add([]byte("[\x80-\xbf]"), MakeToken("CHAR", int(scanner.Word))) // stray continuation byte
		lexer.Add([]byte(`[ \t\r\n]+`), Skip)
	}, literals)
}

// Scanner creates a scanner for a given input. The scanner will implement the
// Tokenizer interface. Unicode white space ('\v', '\f', NBSP, …) separates
// tokens just like blanks, tabs and newlines do.
func (lm *LMAdapter) Scanner(input string) (*LMScanner, error) {
	s, err := lm.Lexer.Scanner(normalizeSpace(input))
	if err != nil {
		return &LMScanner{}, err
	}
	return &LMScanner{s, logError}, nil
}

// Tokens scans input and returns the lexemes of all tokens found.
func (lm *LMAdapter) Tokens(input string) ([]string, error) {
	sc, err := lm.Scanner(input)
	if err != nil {
		return nil, err
	}
	var scanErr error
	sc.SetErrorHandler(func(e error) {
		logError(e)
		if scanErr == nil {
			scanErr = e
		}
	})
	lexemes := scanner.Lexemes(sc)
	if scanErr != nil {
		return lexemes, fmt.Errorf("cannot tokenize input: %w", scanErr)
	}
	return lexemes, nil
}

// Tokens splits input at whitespace, using a whitespace adapter.
func Tokens(input string) ([]string, error) {
	lm, err := NewWhitespaceAdapter()
	if err != nil {
		return nil, err
	}
	return lm.Tokens(input)
}

// LMScanner is a scanner type for lexmachine scanners, implementing the
// Tokenizer interface.
type LMScanner struct {
	scanner *lexmachine.Scanner
	Error   func(error)
}

var _ scanner.Tokenizer = (*LMScanner)(nil)

// SetErrorHandler sets an error handler for the scanner.
func (lms *LMScanner) SetErrorHandler(h func(error)) {
	if h == nil {
		lms.Error = logError
		return
	}
	lms.Error = h
}

// Default error reporting function for lexmachine-based scanners
func logError(e error) {
	tracer().Errorf("scanner error: %v", e)
}

// NextToken is part of the Tokenizer interface. Token spans are byte offsets
// into the input.
func (lms *LMScanner) NextToken() cfgparser.Token {
	if lms.scanner == nil {
		return scanner.MakeDefaultToken(scanner.EOF, "", cfgparser.Span{})
	}
	tok, err, eof := lms.scanner.Next()
	for err != nil {
		lms.Error(err)
		if ui, is := err.(*machines.UnconsumedInput); is {
			lms.scanner.TC = ui.FailTC
		}
		tok, err, eof = lms.scanner.Next()
	}
	if eof {
		return scanner.MakeDefaultToken(scanner.EOF, "", cfgparser.Span{})
	}
	token := tok.(*lexmachine.Token)
	tracer().Debugf("token %d %q at %d", token.Type, token.Lexeme, token.TC)
	return scanner.MakeDefaultToken(
		cfgparser.TokType(token.Type),
		string(token.Lexeme),
		cfgparser.Span{uint64(token.TC), uint64(token.TC + len(token.Lexeme))},
	)
}

// ---------------------------------------------------------------------------

// Skip is a pre-defined action which ignores the scanned match.
func Skip(*lexmachine.Scanner, *machines.Match) (interface{}, error) {
	return nil, nil
}

// MakeToken is a pre-defined action which wraps a scanned match into a token.
func MakeToken(name string, id int) lexmachine.Action {
	return func(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
		return s.Token(id, string(m.Bytes), m), nil
	}
}

// quote turns a literal into a lexmachine pattern matching it verbatim.
func quote(lit string) string {
	var b strings.Builder
	for _, r := range lit {
		if r < unicode.MaxASCII && !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}
	return b.String()
}

// normalizeSpace overwrites every white space character the patterns do not
// cover with blanks, one per byte, so token spans stay byte offsets into input.
func normalizeSpace(input string) []byte {
	b := []byte(input)
	for i, r := range input {
		switch r {
		case ' ', '\t', '\r', '\n':
		default:
			if unicode.IsSpace(r) {
				for j := 0; j < utf8.RuneLen(r); j++ {
					b[i+j] = ' '
				}
			}
		}
	}
	return b
}

package lexmach

import (
	"testing"
	"unicode/utf8"

	cfgparser "github.com/Sammany1/CFG-Parser"
	"github.com/Sammany1/CFG-Parser/scanner"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var inputStrings = []string{
	"a",
	"a + a * a",
	"  ( a )\t*\na  ",
	"",
	"E1 ε x->y",
}

var tokenCounts = []int{1, 5, 5, 0, 3}

func TestWhitespaceAdapter(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cfg.scanner")
	defer teardown()
	//
	lm, err := NewWhitespaceAdapter()
	require.NoError(t, err)
	for i, input := range inputStrings {
		t.Logf("------+-----------------+--------")
		sc, err := lm.Scanner(input)
		require.NoError(t, err)
		token := sc.NextToken()
		count := 0
		for token.TokType() != scanner.EOF {
			t.Logf(" %4d | %15s | @%5d", token.TokType(), token.Lexeme(), token.Span().From())
			assert.Equal(t, scanner.Word, token.TokType())
			assert.Equal(t, input[token.Span().From():token.Span().To()], token.Lexeme())
			token = sc.NextToken()
			count++
		}
		assert.Equal(t, tokenCounts[i], count, "token count for input #%d", i)
	}
	t.Logf("------+-----------------+--------")
}

func TestTokensEqualSplit(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cfg.scanner")
	defer teardown()
	//
	unicodeSpace := []string{
		"a\v+ a",
		"a\f+ a",
		"a\u00a0+ a",
		"a\u2003+ a",
		"\u0085E1 ε\u3000x",
	}
	for _, input := range append(inputStrings, unicodeSpace...) {
		tokens, err := Tokens(input)
		require.NoError(t, err)
		if len(tokens) == 0 {
			assert.Empty(t, scanner.Split(input))
			continue
		}
		assert.Equal(t, scanner.Split(input), tokens, "tokens of %q", input)
	}
}

func TestUnicodeSpaceSpans(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cfg.scanner")
	defer teardown()
	//
	lm, err := NewWhitespaceAdapter()
	require.NoError(t, err)
	input := "a\u2003+\vε"
	sc, err := lm.Scanner(input)
	require.NoError(t, err)
	var lexemes []string
	for tok := sc.NextToken(); tok.TokType() != scanner.EOF; tok = sc.NextToken() {
		assert.Equal(t, input[tok.Span().From():tok.Span().To()], tok.Lexeme())
		lexemes = append(lexemes, tok.Lexeme())
	}
	assert.Equal(t, []string{"a", "+", "ε"}, lexemes)
}

func TestLiteralAdapter(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cfg.scanner")
	defer teardown()
	//
	lm, err := NewLiteralAdapter([]string{"+", "*", "(", ")", "a", "id", "->"})
	require.NoError(t, err)
	tokens, err := lm.Tokens("(a+a)*a")
	require.NoError(t, err)
	assert.Equal(t, []string{"(", "a", "+", "a", ")", "*", "a"}, tokens)
	tokens, err = lm.Tokens("id->x  a")
	require.NoError(t, err)
	assert.Equal(t, []string{"id", "->", "x", "a"}, tokens)
}

func TestLiteralAdapterMultiByte(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cfg.scanner")
	defer teardown()
	//
	lm, err := NewLiteralAdapter([]string{"a", "+"})
	require.NoError(t, err)
	tokens, err := lm.Tokens("a+é")
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "+", "é"}, tokens)
	tokens, err = lm.Tokens("ε→a\u00a0€")
	require.NoError(t, err)
	assert.Equal(t, []string{"ε", "→", "a", "€"}, tokens)
	for _, tok := range tokens {
		assert.True(t, utf8.ValidString(tok), "lexeme %q is not valid UTF-8", tok)
	}
}

func TestLiteralTokenType(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cfg.scanner")
	defer teardown()
	//
	lm, err := NewLiteralAdapter([]string{"+"})
	require.NoError(t, err)
	sc, err := lm.Scanner("x+")
	require.NoError(t, err)
	tok := sc.NextToken()
	assert.Equal(t, scanner.Word, tok.TokType())
	assert.Equal(t, cfgparser.Span{0, 1}, tok.Span())
	tok = sc.NextToken()
	assert.Equal(t, scanner.Literal, tok.TokType())
	assert.Equal(t, "+", tok.Lexeme())
	assert.Equal(t, cfgparser.Span{1, 2}, tok.Span())
	assert.Equal(t, scanner.EOF, sc.NextToken().TokType())
}

func TestQuote(t *testing.T) {
	assert.Equal(t, `\+\+`, quote("++"))
	assert.Equal(t, `a1`, quote("a1"))
	assert.Equal(t, `\-\>`, quote("->"))
	assert.Equal(t, "ε", quote("ε"))
}

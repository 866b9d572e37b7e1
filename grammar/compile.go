package grammar

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Literal markers of the grammar text format.
const (
	Separator   = "->" // between left-hand side and alternatives
	Alternation = "|"  // between alternatives
)

// Compile parses grammar text into a Grammar.
//
// Every non-blank line must contain the separator "->". The text left of the
// first separator is the left-hand side, the remainder is split into
// alternatives at "|". A line without a separator results in a
// *MalformedRuleError carrying the offending line. Text without any rule
// results in ErrEmptyGrammar.
//
// No further validation takes place: symbols without rules simply act as
// terminals.
func Compile(text string) (*Grammar, error) {
	return compileLines(strings.Split(text, "\n"))
}

// CompileReader reads grammar text from r and compiles it, see Compile.
func CompileReader(r io.Reader) (*Grammar, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("cannot read grammar: %w", err)
	}
	return compileLines(lines)
}

func compileLines(lines []string) (*Grammar, error) {
	g := newGrammar()
	for n, raw := range lines {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}
		lhs, alts, err := parseRule(line, n+1)
		if err != nil {
			tracer().Errorf("%v", err)
			return nil, err
		}
		tracer().Debugf("rule %s -> %v", lhs, alts)
		g.appendRule(lhs, alts...)
	}
	if g.Size() == 0 {
		return nil, ErrEmptyGrammar
	}
	tracer().Infof("compiled grammar with %d non-terminals and %d rules", g.Size(), g.RuleCount())
	return g, nil
}

// parseRule splits a single (trimmed, non-blank) line into its left-hand side
// and its alternatives.
func parseRule(line string, lineno int) (string, []Production, error) {
	i := strings.Index(line, Separator)
	if i < 0 {
		return "", nil, &MalformedRuleError{Line: line, LineNo: lineno}
	}
	lhs := strings.TrimSpace(line[:i])
	rhs := line[i+len(Separator):]
	var alts []Production
	for _, alt := range strings.Split(rhs, Alternation) {
		symbols := strings.Fields(alt)
		if len(symbols) == 1 && symbols[0] == Epsilon {
			alts = append(alts, Production{})
			continue
		}
		alts = append(alts, Production(symbols))
	}
	return lhs, alts, nil
}

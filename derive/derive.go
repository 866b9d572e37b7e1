package derive

import (
	"errors"
	"fmt"

	cfgparser "github.com/Sammany1/CFG-Parser"
	"github.com/Sammany1/CFG-Parser/grammar"
	"github.com/npillmayer/schuko/gconf"
)

// Errors of the derivation engine. Rejecting an input is not an error.
var (
	ErrNoGrammar     = errors.New("no grammar to derive from")
	ErrDepthExceeded = errors.New("maximum derivation depth exceeded")
	ErrPathMismatch  = errors.New("derivation path does not match")
)

// Parser is a backtracking recognizer for a grammar. Create one with
// NewParser. A Parser keeps state only during a call to Derive and may be
// re-used for any number of inputs, one at a time.
type Parser struct {
	g           *grammar.Grammar
	allowPrefix bool
	maxDepth    int
	guard       bool
}

// NewParser creates a parser for grammar g. Options not given explicitly
// default to the values of the global configuration.
func NewParser(g *grammar.Grammar, opts ...Option) *Parser {
	p := &Parser{
		g:           g,
		allowPrefix: gconf.GetBool("derive.allow-prefix"),
		maxDepth:    gconf.GetInt("derive.max-depth"),
		guard:       gconf.GetBool("derive.guard-left-recursion"),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// --- Options ---------------------------------------------------------------

// Option configures a parser.
type Option func(p *Parser)

// AllowPrefix sets or clears option AllowPrefix. If set, an input is accepted
// as soon as the start symbol matches a prefix of it; trailing tokens are
// ignored. Default is false: the start symbol has to match all of the input.
func AllowPrefix(b bool) Option {
	return func(p *Parser) {
		p.allowPrefix = b
	}
}

// MaxDepth limits the recursion depth of a derivation. Derive will return
// ErrDepthExceeded if a derivation needs more than n nested matches.
// n ≤ 0 means no limit.
func MaxDepth(n int) Option {
	return func(p *Parser) {
		p.maxDepth = n
	}
}

// GuardLeftRecursion sets or clears option GuardLeftRecursion. If set, a
// non-terminal which is re-entered at the same input position while still
// being expanded fails instead of recursing. This makes left-recursive
// grammars terminate, although left-recursive alternatives will then never
// match.
func GuardLeftRecursion(b bool) Option {
	return func(p *Parser) {
		p.guard = b
	}
}

// --- Deriving --------------------------------------------------------------

// Derive is a shortcut for NewParser(g, opts...).Derive(tokens).
func Derive(g *grammar.Grammar, tokens []string, opts ...Option) (*Derivation, error) {
	return NewParser(g, opts...).Derive(tokens)
}

// Derive tries to derive tokens from the start symbol of the parser's
// grammar. Whether the input has been accepted is reported in the
// Derivation; an error is returned only if there is no grammar or if the
// maximum recursion depth has been exceeded.
func (p *Parser) Derive(tokens []string) (*Derivation, error) {
	if p.g == nil || p.g.Size() == 0 {
		return nil, ErrNoGrammar
	}
	r := &run{
		g:        p.g,
		tokens:   tokens,
		maxDepth: p.maxDepth,
	}
	if p.guard {
		r.active = activeSet{}
	}
	start := p.g.Start()
	tracer().Debugf("=== Derive %v from %s ===", tokens, start)
	end, path, ok := r.match(start, 0, 1)
	if r.err != nil {
		tracer().Errorf("derivation aborted: %v", r.err)
		return nil, r.err
	}
	d := &Derivation{
		Start:  start,
		Tokens: tokens,
	}
	if ok {
		d.Consumed = end
		if end == len(tokens) || p.allowPrefix {
			d.Accepted = true
			d.Path = path
		} else {
			tracer().Infof("%s matched %d of %d tokens only", start, end, len(tokens))
		}
	}
	if d.Accepted {
		tracer().Infof("input accepted with %d expansions", len(d.Path))
		dumpPath(d.Path)
	} else {
		tracer().Infof("input rejected")
	}
	return d, nil
}

// run holds the state of a single call to Derive.
type run struct {
	g        *grammar.Grammar
	tokens   []string
	maxDepth int
	active   activeSet // nil if left recursion is not guarded
	err      error
}

// match tries to match sym at input position pos. It returns the position
// after the match and the expansions applied, in pre-order.
//
// For a non-terminal the alternatives are tried in order; the first one for
// which every symbol matches in sequence wins. There is no backtracking into
// a successful alternative once it has been returned.
func (r *run) match(sym string, pos int, depth int) (int, Path, bool) {
	if r.err != nil {
		return pos, nil, false
	}
	if r.maxDepth > 0 && depth > r.maxDepth {
		r.err = fmt.Errorf("at %s, position %d: %w (%d)", sym, pos, ErrDepthExceeded, r.maxDepth)
		return pos, nil, false
	}
	alts := r.g.Alternatives(sym)
	if alts == nil { // terminal
		if pos < len(r.tokens) && r.tokens[pos] == sym {
			tracer().Debugf("%*s'%s' matches at %d", depth, "", sym, pos)
			return pos + 1, nil, true
		}
		return pos, nil, false
	}
	if r.active != nil {
		if r.active.contains(sym, pos) {
			tracer().Debugf("%*s%s re-entered at %d, cut", depth, "", sym, pos)
			return pos, nil, false
		}
		r.active.add(sym, pos)
		defer r.active.delete(sym, pos)
	}
	for _, prod := range alts {
		tracer().Debugf("%*stry %s -> %s at %d", depth, "", sym, prod, pos)
		cur, sub, ok := pos, Path(nil), true
		for _, child := range prod {
			next, childPath, matched := r.match(child, cur, depth+1)
			if !matched {
				ok = false
				break
			}
			sub = append(sub, childPath...)
			cur = next
		}
		if r.err != nil {
			return pos, nil, false
		}
		if ok {
			e := Expansion{
				LHS:  sym,
				RHS:  prod,
				Span: cfgparser.Span{uint64(pos), uint64(cur)},
			}
			return cur, append(Path{e}, sub...), true
		}
	}
	return pos, nil, false
}

package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/Sammany1/CFG-Parser/derive"
	"github.com/Sammany1/CFG-Parser/grammar"
	"github.com/Sammany1/CFG-Parser/render"
	"github.com/chzyer/readline"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Interactively edit a grammar and derive inputs",
	Long: `Repl starts an interactive session. Lines of the form 'LHS -> …' add
rules to the current grammar, commands start with a colon (try ':help'),
and any other line is an input to derive. If '->' is a terminal of the
grammar, lines containing it are inputs; use ':rule LHS -> …' for rules.`,
	Args: cobra.NoArgs,
	RunE: runREPL,
}

func init() {
	replCmd.Flags().StringP("grammar", "g", "", "Grammar file (default: expression grammar)")
	replCmd.Flags().Bool("compact", false, "Recognize the grammar's terminals without separating whitespace")

	rootCmd.AddCommand(replCmd)
}

func runREPL(cmd *cobra.Command, args []string) error {
	grammarFile, _ := cmd.Flags().GetString("grammar")
	compact, _ := cmd.Flags().GetBool("compact")
	g, err := loadGrammar(grammarFile)
	if err != nil {
		return err
	}
	repl, err := readline.New("cfgp> ")
	if err != nil {
		return err
	}
	defer repl.Close()
	intp := NewIntp(g, cmd.OutOrStdout())
	intp.compact = compact
	intp.repl = repl
	pterm.Info.WithWriter(intp.out).Println("Welcome to cfgp, quit with :quit or <ctrl>D")
	intp.REPL()
	return nil
}

// Intp is our interpreter object
type Intp struct {
	rules   []string // grammar text, one rule per entry
	g       *grammar.Grammar
	last    *derive.Derivation
	compact bool
	repl    *readline.Instance
	out     io.Writer
}

// NewIntp creates an interpreter for grammar g, writing to out.
func NewIntp(g *grammar.Grammar, out io.Writer) *Intp {
	intp := &Intp{g: g, out: out}
	if g != nil {
		intp.rules = strings.Split(strings.TrimSpace(g.String()), "\n")
	}
	return intp
}

// REPL starts interactive mode.
func (intp *Intp) REPL() {
	for {
		line, err := intp.repl.Readline()
		if err != nil { // io.EOF or interrupt
			break
		}
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		quit, err := intp.Eval(line)
		if err != nil {
			pterm.Error.WithWriter(intp.out).Println(err.Error())
			continue
		}
		if quit {
			break
		}
	}
	fmt.Fprintln(intp.out, "Good bye!")
}

var errNoDerivation = errors.New("no accepted derivation yet")

// Eval evaluates a single line: a command, a grammar rule or an input to
// derive. It returns true if the session should end.
func (intp *Intp) Eval(line string) (bool, error) {
	tracer().Debugf("eval %q", line)
	if strings.HasPrefix(line, ":") {
		return intp.execute(strings.Fields(line[1:]))
	}
	if intp.isRule(line) {
		return false, intp.addRule(line)
	}
	if intp.g == nil {
		return false, errors.New("grammar is empty, enter rules first")
	}
	intp.last = nil
	tokens, err := tokenize(intp.g, line, intp.compact)
	if err != nil {
		return false, err
	}
	d, err := derive.Derive(intp.g, tokens)
	if err != nil {
		return false, err
	}
	if !d.Accepted {
		pterm.Error.WithWriter(intp.out).Printfln("String rejected: %s", strings.Join(tokens, " "))
		return false, nil
	}
	intp.last = d
	pterm.Success.WithWriter(intp.out).Printfln("String accepted: %s", strings.Join(tokens, " "))
	return false, render.WriteSteps(intp.out, d.Steps())
}

func (intp *Intp) execute(args []string) (bool, error) {
	if len(args) == 0 {
		return false, errors.New("missing command, try :help")
	}
	switch args[0] {
	case "quit", "q":
		return true, nil
	case "help":
		fmt.Fprint(intp.out, `  LHS -> ALT | …   add a rule
  :rule LHS -> …   add a rule, even if '->' is a terminal
  <input>          derive input
  :grammar         show the grammar
  :reset           clear the grammar
  :steps           show the steps of the last derivation
  :tree            show the tree of the last derivation
  :syntax          show the syntax tree of the last derivation
  :dot FILE        write the tree of the last derivation to FILE
  :quit            end the session
`)
	case "grammar":
		if intp.g == nil {
			pterm.Info.WithWriter(intp.out).Println("grammar is empty")
			return false, nil
		}
		return false, writeGrammar(intp.out, intp.g)
	case "rule":
		if len(args) < 2 {
			return false, errors.New("usage: :rule LHS -> ALT | …")
		}
		return false, intp.addRule(strings.Join(args[1:], " "))
	case "reset":
		intp.rules, intp.g, intp.last = nil, nil, nil
		pterm.Info.WithWriter(intp.out).Println("grammar cleared")
	case "steps":
		if intp.last == nil {
			return false, errNoDerivation
		}
		return false, render.WriteSteps(intp.out, intp.last.Steps())
	case "tree":
		if intp.last == nil {
			return false, errNoDerivation
		}
		return false, render.PrintTree(intp.out, intp.last.Tree())
	case "syntax":
		if intp.last == nil {
			return false, errNoDerivation
		}
		tree, err := intp.last.SyntaxTree(intp.g)
		if err != nil {
			return false, err
		}
		return false, render.PrintTree(intp.out, tree)
	case "dot":
		if intp.last == nil {
			return false, errNoDerivation
		}
		if len(args) != 2 {
			return false, errors.New("usage: :dot FILE")
		}
		if err := render.WriteDotFile(args[1], intp.last.Tree()); err != nil {
			return false, err
		}
		pterm.Info.WithWriter(intp.out).Printfln("tree written to %s", args[1])
	default:
		return false, fmt.Errorf("unknown command :%s, try :help", args[0])
	}
	return false, nil
}

// isRule is a predicate: is line a grammar rule rather than an input?
// A rule has a single symbol left of the first separator. If the separator is
// itself a terminal of the grammar, every line is an input.
func (intp *Intp) isRule(line string) bool {
	at := strings.Index(line, grammar.Separator)
	if at < 0 || len(strings.Fields(line[:at])) > 1 {
		return false
	}
	if intp.g == nil {
		return true
	}
	for _, t := range intp.g.Terminals() {
		if t == grammar.Separator {
			return false
		}
	}
	return true
}

// addRule appends a rule to the grammar text and re-compiles it. If the
// rule does not compile, the grammar stays unchanged.
func (intp *Intp) addRule(line string) error {
	rules := append(append([]string(nil), intp.rules...), line)
	g, err := grammar.Compile(strings.Join(rules, "\n"))
	if err != nil {
		return err
	}
	intp.rules, intp.g, intp.last = rules, g, nil
	pterm.Info.WithWriter(intp.out).Printfln("%d non-terminals, %d rules", g.Size(), g.RuleCount())
	return nil
}

package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/Sammany1/CFG-Parser/derive"
	"github.com/Sammany1/CFG-Parser/grammar"
	"github.com/Sammany1/CFG-Parser/render"
	"github.com/Sammany1/CFG-Parser/scanner/lexmach"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

// The expression grammar is the default if no grammar file is given.
const exprGrammar = `E -> T E1
E1 -> + T E1 | ε
T -> F T1
T1 -> * F T1 | ε
F -> ( E ) | a`

var errRejected = errors.New("input rejected")

var deriveCmd = &cobra.Command{
	Use:   "derive [flags] <input…>",
	Short: "Derive an input string from a grammar",
	Long:  "Derive tokenizes the input, tries to derive it from the grammar's start symbol and prints the derivation steps and tree.",
	Args:  cobra.ArbitraryArgs,
	RunE:  runDerive,
}

func init() {
	deriveCmd.Flags().StringP("grammar", "g", "", "Grammar file (default: expression grammar)")
	deriveCmd.Flags().String("dot", "", "Write the tree to a Graphviz Dot file")
	deriveCmd.Flags().Bool("syntax-tree", false, "Show a nested syntax tree instead of the derivation tree")
	deriveCmd.Flags().Bool("compact", false, "Recognize the grammar's terminals without separating whitespace")

	rootCmd.AddCommand(deriveCmd)
}

// outputOptions control what is printed for a derivation.
type outputOptions struct {
	dotFile    string
	syntaxTree bool
	compact    bool
}

func runDerive(cmd *cobra.Command, args []string) error {
	grammarFile, _ := cmd.Flags().GetString("grammar")
	var opts outputOptions
	opts.dotFile, _ = cmd.Flags().GetString("dot")
	opts.syntaxTree, _ = cmd.Flags().GetBool("syntax-tree")
	opts.compact, _ = cmd.Flags().GetBool("compact")
	g, err := loadGrammar(grammarFile)
	if err != nil {
		return err
	}
	accepted, err := deriveInput(cmd.OutOrStdout(), g, strings.Join(args, " "), opts)
	if err != nil {
		return err
	}
	if !accepted {
		return &exitError{code: exitRejected, err: errRejected}
	}
	return nil
}

// loadGrammar compiles a grammar file, or the expression grammar if filename
// is empty. Errors carry their exit code: I/O failures exit with
// exitFailure, grammars which do not compile with exitGrammarError.
func loadGrammar(filename string) (*grammar.Grammar, error) {
	if filename == "" {
		return grammar.Compile(exprGrammar)
	}
	f, err := os.Open(filename)
	if err != nil {
		return nil, &exitError{code: exitFailure, err: fmt.Errorf("cannot open grammar: %w", err)}
	}
	defer f.Close()
	g, err := grammar.CompileReader(f)
	if err != nil {
		var mre *grammar.MalformedRuleError
		if errors.As(err, &mre) || errors.Is(err, grammar.ErrEmptyGrammar) {
			return nil, &exitError{code: exitGrammarError, err: fmt.Errorf("%s: %w", filename, err)}
		}
		return nil, &exitError{code: exitFailure, err: fmt.Errorf("cannot read grammar %s: %w", filename, err)}
	}
	return g, nil
}

// tokenize splits input into tokens. With compact set, the terminals of g
// are recognized even if not separated by whitespace.
func tokenize(g *grammar.Grammar, input string, compact bool) ([]string, error) {
	if !compact {
		return lexmach.Tokens(input)
	}
	lm, err := lexmach.NewLiteralAdapter(g.Terminals())
	if err != nil {
		return nil, err
	}
	return lm.Tokens(input)
}

// deriveInput derives input from g and writes the result to w. It returns
// whether the input has been accepted.
func deriveInput(w io.Writer, g *grammar.Grammar, input string, opts outputOptions) (bool, error) {
	tokens, err := tokenize(g, input, opts.compact)
	if err != nil {
		return false, err
	}
	tracer().Infof("input tokens are %v", tokens)
	d, err := derive.Derive(g, tokens)
	if err != nil {
		return false, err
	}
	if !d.Accepted {
		pterm.Error.WithWriter(w).Printfln("String rejected: %s", strings.Join(tokens, " "))
		return false, nil
	}
	pterm.Success.WithWriter(w).Printfln("String accepted: %s", strings.Join(tokens, " "))
	if err = writeDerivation(w, g, d, opts); err != nil {
		return true, err
	}
	return true, nil
}

func writeDerivation(w io.Writer, g *grammar.Grammar, d *derive.Derivation, opts outputOptions) error {
	if err := render.WriteSteps(w, d.Steps()); err != nil {
		return err
	}
	tree, err := treeFor(g, d, opts.syntaxTree)
	if err != nil {
		return err
	}
	if err = render.PrintTree(w, tree); err != nil {
		return err
	}
	if opts.dotFile != "" {
		if err = render.WriteDotFile(opts.dotFile, tree); err != nil {
			return err
		}
		pterm.Info.WithWriter(w).Printfln("tree written to %s", opts.dotFile)
	}
	return nil
}

func treeFor(g *grammar.Grammar, d *derive.Derivation, syntaxTree bool) (*derive.Tree, error) {
	if syntaxTree {
		return d.SyntaxTree(g)
	}
	return d.Tree(), nil
}

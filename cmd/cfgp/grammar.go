package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/Sammany1/CFG-Parser/grammar"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var grammarCmd = &cobra.Command{
	Use:   "grammar",
	Short: "Compile a grammar and print its rules",
	Args:  cobra.NoArgs,
	RunE:  runGrammar,
}

func init() {
	grammarCmd.Flags().StringP("grammar", "g", "", "Grammar file (default: expression grammar)")

	rootCmd.AddCommand(grammarCmd)
}

func runGrammar(cmd *cobra.Command, args []string) error {
	grammarFile, _ := cmd.Flags().GetString("grammar")
	g, err := loadGrammar(grammarFile)
	if err != nil {
		return err
	}
	return writeGrammar(cmd.OutOrStdout(), g)
}

func writeGrammar(w io.Writer, g *grammar.Grammar) error {
	pterm.Info.WithWriter(w).Printfln("start symbol %s, %d non-terminals, %d rules",
		g.Start(), g.Size(), g.RuleCount())
	if _, err := io.WriteString(w, g.String()); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "terminals: %s\nsignature: %s\n", strings.Join(g.Terminals(), " "), g.Signature())
	return err
}

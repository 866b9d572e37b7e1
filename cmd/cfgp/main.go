package main

import (
	"errors"
	"os"

	"github.com/pterm/pterm"
)

// Exit codes
const (
	exitRejected     = 1
	exitGrammarError = 2
	exitFailure      = 3
)

// exitError carries the exit code for a failed command.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string {
	return e.err.Error()
}

func (e *exitError) Unwrap() error {
	return e.err
}

func main() {
	initDisplay()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(exitCode(err))
	}
}

func exitCode(err error) int {
	var ee *exitError
	if errors.As(err, &ee) {
		if ee.code != exitRejected {
			pterm.Error.Println(ee.err.Error())
		}
		return ee.code
	}
	pterm.Error.Println(err.Error())
	return exitFailure
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.Info.Prefix = pterm.Prefix{
		Text:  "  >>",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "  Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

package render

import (
	"bufio"
	"fmt"
	"io"
)

// WriteSteps writes derivation steps to w, one line per step, numbered from 0:
//
//     Step 0: E
//     Step 1: T E1
//     …
func WriteSteps(w io.Writer, steps []string) error {
	bw := bufio.NewWriter(w)
	for i, step := range steps {
		fmt.Fprintf(bw, "Step %d: %s\n", i, step)
	}
	return bw.Flush()
}

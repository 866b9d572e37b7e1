package render

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/Sammany1/CFG-Parser/derive"
)

// WriteDot exports a tree to the Graphviz Dot format. Every node is written
// as a line
//
//     nodeN [label="…"]
//
// followed by one line per edge. Leaves are filled gray.
func WriteDot(w io.Writer, name string, t *derive.Tree) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, `digraph %s {
graph [fontname=Helvetica, fontsize=10];
node [shape=box, style="rounded,filled", fillcolor=white, fontname=Helvetica, fontsize=10];
edge [fontname=Helvetica, fontsize=10];

`, quoteID(name))
	if t != nil {
		inner := make(map[string]bool, len(t.Edges))
		for _, e := range t.Edges {
			inner[e.Parent] = true
		}
		for _, n := range t.Nodes {
			fmt.Fprintf(bw, "%s [label=\"%s\" fillcolor=%s]\n", n.ID, escape(n.Label), nodecolor(inner[n.ID]))
		}
		for _, e := range t.Edges {
			fmt.Fprintf(bw, "%s -> %s\n", e.Parent, e.Child)
		}
		tracer().Debugf("wrote %d nodes and %d edges to dot", len(t.Nodes), len(t.Edges))
	}
	bw.WriteString("}\n")
	return bw.Flush()
}

// WriteDotFile exports a tree to the Graphviz Dot format, given a filename.
func WriteDotFile(filename string, t *derive.Tree) error {
	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("cannot create dot file: %w", err)
	}
	if err = WriteDot(f, "derivation", t); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func nodecolor(inner bool) string {
	if inner {
		return "white"
	}
	return "lightgray"
}

func escape(label string) string {
	label = strings.ReplaceAll(label, `\`, `\\`)
	return strings.ReplaceAll(label, `"`, `\"`)
}

func quoteID(name string) string {
	if name == "" {
		return `"tree"`
	}
	return `"` + escape(name) + `"`
}

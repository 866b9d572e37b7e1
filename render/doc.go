/*
Package render outputs derivations: trees as Graphviz Dot or as terminal
trees (using pterm), and derivation steps as numbered lines.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

*/
package render

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'cfg.render'.
func tracer() tracing.Trace {
	return tracing.Select("cfg.render")
}

package sim

import (
	"fmt"
	"io"

	"github.com/katalvlaran/gatesim/gate"
)

// DumpDOT writes the compiled graph as a GraphViz DOT digraph to w: one
// node per gate, labeled with its kind (followed by ", output" if it is
// part of a declared output bus), and one edge per dependency.
func (g *Graph) DumpDOT(w io.Writer) error {
	isOutput := make(map[gate.Index]bool)
	for _, bits := range g.outputs {
		for _, bit := range bits {
			isOutput[bit] = true
		}
	}

	if _, err := fmt.Fprintln(w, "digraph {"); err != nil {
		return err
	}
	for i, node := range g.nodes {
		gi := gate.Index(i)
		label := node.Kind.String()
		if isOutput[gi] {
			label += ", output"
		}
		if _, err := fmt.Fprintf(w, "  %d [label=%q];\n", i, label); err != nil {
			return err
		}
	}
	for i, node := range g.nodes {
		for _, dep := range node.Deps {
			if _, err := fmt.Fprintf(w, "  %d -> %d;\n", dep, i); err != nil {
				return err
			}
		}
	}
	_, err := fmt.Fprintln(w, "}")
	return err
}

package core

import (
	"fmt"
	"io"

	"github.com/katalvlaran/gatesim/gate"
)

// DumpDOT writes the builder's current (pre-optimization) graph as a
// GraphViz DOT digraph to w, labeling each node with its kind, its debug
// name if tracked, and whether it is a declared output.
func (b *Builder) DumpDOT(w io.Writer) error {
	if _, err := fmt.Fprintln(w, "digraph {"); err != nil {
		return err
	}

	var writeErr error
	b.nodes.All(func(i int, g *Gate) bool {
		gi := idx(i)
		label := g.Kind.String()
		if g.Name != "" {
			label += ":" + g.Name
		}
		if b.isObservableOutput(gi) {
			label += ", output"
		}
		if _, err := fmt.Fprintf(w, "  %d [label=%q];\n", i, label); err != nil {
			writeErr = err
			return false
		}
		return true
	})
	if writeErr != nil {
		return writeErr
	}

	b.nodes.All(func(i int, g *Gate) bool {
		for _, dep := range g.Deps {
			if _, err := fmt.Fprintf(w, "  %d -> %d;\n", dep, i); err != nil {
				writeErr = err
				return false
			}
		}
		return true
	})
	if writeErr != nil {
		return writeErr
	}

	_, err := fmt.Fprintln(w, "}")
	return err
}

func (b *Builder) isObservableOutput(i gate.Index) bool {
	for _, bits := range b.outputs {
		for _, bit := range bits {
			if bit == i {
				return true
			}
		}
	}
	return false
}

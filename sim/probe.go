package sim

import (
	"fmt"
	"math/big"

	"github.com/katalvlaran/gatesim/gate"
)

// emitProbe writes the current value of the probe registered at i, if
// any, to the graph's probe writer. A single-bit probe prints its bit; a
// 2-to-8-bit probe prints its bus packed as a byte; a wider probe prints
// its whole bus, LSB first, as an unbounded integer.
func (g *Graph) emitProbe(i gate.Index) {
	probe, ok := g.probes[i]
	if !ok {
		return
	}
	switch n := len(probe.Bits); {
	case n == 0:
		return
	case n == 1:
		fmt.Fprintf(g.probeW, "%s:%v\n", probe.Name, g.value(probe.Bits[0]))
	case n <= 8:
		var b byte
		for j, bit := range probe.Bits {
			if g.value(bit) {
				b |= 1 << uint(j)
			}
		}
		fmt.Fprintf(g.probeW, "%s:%d\n", probe.Name, b)
	default:
		v := new(big.Int)
		for j, bit := range probe.Bits {
			if g.value(bit) {
				v.SetBit(v, j, 1)
			}
		}
		fmt.Fprintf(g.probeW, "%s:%s\n", probe.Name, v)
	}
}

package sim

import (
	"fmt"
	"math/big"

	"github.com/katalvlaran/gatesim/gate"
	"github.com/katalvlaran/gatesim/handle"
)

func (g *Graph) outputBits(h handle.OutputHandle) []gate.Index {
	id := h.ID()
	if id < 0 || id >= len(g.outputs) {
		panic(fmt.Errorf("%w: output %d", handle.ErrUnknownHandle, id))
	}
	return g.outputs[id]
}

// ReadBit returns the current value of bit n (0-indexed, LSB first) of
// the output bus h. It panics if n is out of range for the bus.
func (g *Graph) ReadBit(h handle.OutputHandle, n int) bool {
	bits := g.outputBits(h)
	if n < 0 || n >= len(bits) {
		panic(fmt.Sprintf("sim: bit %d out of range for output of width %d", n, len(bits)))
	}
	return g.value(bits[n])
}

// ReadBits64 packs up to the first 64 bits of output bus h, LSB first,
// into a uint64. Buses narrower than 64 bits leave the high bits zero;
// buses wider than 64 bits are read lossily, dropping anything past the
// 64th bit — use ReadBigBits for a wider bus.
func (g *Graph) ReadBits64(h handle.OutputHandle) uint64 {
	bits := g.outputBits(h)
	var out uint64
	n := len(bits)
	if n > 64 {
		n = 64
	}
	for i := 0; i < n; i++ {
		if g.value(bits[i]) {
			out |= 1 << uint(i)
		}
	}
	return out
}

// ReadBigBits packs every bit of output bus h, LSB first, into a big.Int,
// with no width limit. This is the only lossless read for buses wider
// than 64 bits, such as the addend/sum buses of a 128-bit adder.
func (g *Graph) ReadBigBits(h handle.OutputHandle) *big.Int {
	bits := g.outputBits(h)
	out := new(big.Int)
	for i, bit := range bits {
		if g.value(bit) {
			out.SetBit(out, i, 1)
		}
	}
	return out
}

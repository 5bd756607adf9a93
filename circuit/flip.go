//
// Copyright (c) 2025-2026 Markku Rossi
//
// All rights reserved.
//

package circuit

import (
	"github.com/bits-and-blooms/bitset"

	"github.com/markkurossi/crgc/prng"
)

// ObfuscateInput samples a fresh random encoding for the generator's
// secret input. It returns the encoded input to publish and the flip
// pattern: flipped wires are the generator-input wires whose encoded
// bit differs from the secret bit. The pattern covers all wires of the
// circuit; non-input wires start unflipped and are extended by
// ApplyFlips. Wire indexing is reversed against the bit vector, per the
// input loading convention.
func ObfuscateInput(secret []bool, details Details, src prng.Source) (
	[]bool, *bitset.BitSet, error) {

	if len(secret) != details.BitlengthInputA {
		return nil, nil, validationf("secret input is %d bits, expected %d",
			len(secret), details.BitlengthInputA)
	}

	encoded := make([]bool, len(secret))
	flipped := bitset.New(uint(details.NumWires))

	for i := range secret {
		encoded[i] = src.Bit()
		flipped.SetTo(uint(len(secret)-1-i), encoded[i] != secret[i])
	}
	return encoded, flipped, nil
}

// ApplyFlips folds the flip pattern into the gate truth tables,
// mutating the circuit in place. For every gate, in evaluation order: a
// flipped left parent swaps the table rows and a flipped right parent
// swaps the columns (the two swaps commute, so the order does not
// matter). Then, unless the gate writes a circuit-output wire, a fresh
// coin decides whether to invert the whole table and mark the output
// wire flipped; this is what makes the "true" semantics of every
// intermediate wire unknowable from its table alone. Output wires stay
// exempt so the evaluator's output contract holds at the boundary.
func ApplyFlips(c *Circuit, flipped *bitset.BitSet, src prng.Source) {
	outputStart := c.Details.OutputStart()

	for i := range c.Gates {
		g := &c.Gates[i]
		if flipped.Test(uint(g.Left)) {
			g.Table.SwapLeft()
		}
		if flipped.Test(uint(g.Right)) {
			g.Table.SwapRight()
		}
		if g.Output.ID() < outputStart && src.Bit() {
			g.Table.Invert()
			flipped.Set(uint(g.Output))
		}
	}
}

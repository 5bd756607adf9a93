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

// RegenerateGates overwrites the truth table of every gate whose output
// wire is in the obfuscated set with a fresh random function, mutating
// the circuit in place. Gates reading a raw input wire (level-1 gates)
// get a balanced table with exactly two ones — structurally
// indistinguishable from XOR, so fixed and non-fixed gates cannot be
// told apart statistically at the input boundary. Deeper gates get any
// non-constant function: the four entries are resampled until both a
// true and a false entry are present.
func RegenerateGates(c *Circuit, obfuscated *bitset.BitSet,
	src prng.Source) {

	inputs := c.Details.InputWires()

	for i := range c.Gates {
		g := &c.Gates[i]
		if !obfuscated.Test(uint(g.Output)) {
			continue
		}
		if g.Left.ID() < inputs || g.Right.ID() < inputs {
			r := src.Bit()
			g.Table = Table{{r, !r}, {!r, r}}
			continue
		}
		for {
			t := Table{
				{src.Bit(), src.Bit()},
				{src.Bit(), src.Bit()},
			}
			if !t.Constant() {
				g.Table = t
				break
			}
		}
	}
}

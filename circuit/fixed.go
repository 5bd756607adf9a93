//
// Copyright (c) 2025-2026 Markku Rossi
//
// All rights reserved.
//

package circuit

import (
	"github.com/bits-and-blooms/bitset"
)

// IdentifyFixedGates runs the forward fixed-gate pass over a flipped
// circuit. A wire is fixed when its value is derivable from the encoded
// generator input alone: generator-input wires are fixed by definition,
// a gate with two fixed parents is fixed, and a gate with one fixed
// parent is fixed when its table is independent of the other parent.
//
// The pass returns the fixed-wire set and the derived value of every
// fixed wire. Circuit-output wires are never marked fixed.
//
// When a gate with one fixed parent is not fixed, its table half
// indexed by the never-occurring parent value may have been scrambled
// by the earlier flip pass; the known row or column is copied over the
// unknown one so the gate evaluates correctly whichever concrete value
// the unobfuscated parent later takes. This mutates the circuit.
func IdentifyFixedGates(c *Circuit, encoded []bool) (
	*bitset.BitSet, []bool, error) {

	d := c.Details
	if len(encoded) != d.BitlengthInputA {
		return nil, nil, validationf("encoded input is %d bits, expected %d",
			len(encoded), d.BitlengthInputA)
	}

	obfuscated := bitset.New(uint(d.NumWires))
	known := make([]bool, d.NumWires)

	for i := 0; i < d.BitlengthInputA; i++ {
		known[i] = encoded[d.BitlengthInputA-1-i]
		obfuscated.Set(uint(i))
	}
	// Evaluator-input wires start unobfuscated.

	outputStart := d.OutputStart()

	for i := range c.Gates {
		g := &c.Gates[i]
		leftFixed := obfuscated.Test(uint(g.Left))
		rightFixed := obfuscated.Test(uint(g.Right))

		switch {
		case leftFixed && rightFixed:
			if g.Output.ID() < outputStart {
				known[g.Output] = g.Table.At(known[g.Left], known[g.Right])
				obfuscated.Set(uint(g.Output))
			}

		case leftFixed:
			l := bit(known[g.Left])
			if g.Table[l][0] == g.Table[l][1] {
				if g.Output.ID() < outputStart {
					known[g.Output] = g.Table[l][0]
					obfuscated.Set(uint(g.Output))
				}
			} else {
				// Recover the unknown row from the known one.
				g.Table[1-l][0] = g.Table[l][0]
				g.Table[1-l][1] = g.Table[l][1]
			}

		case rightFixed:
			r := bit(known[g.Right])
			if g.Table[0][r] == g.Table[1][r] {
				if g.Output.ID() < outputStart {
					known[g.Output] = g.Table[0][r]
					obfuscated.Set(uint(g.Output))
				}
			} else {
				// Recover the unknown column from the known one.
				g.Table[0][1-r] = g.Table[0][r]
				g.Table[1][1-r] = g.Table[1][r]
			}
		}
	}
	return obfuscated, known, nil
}

//
// Copyright (c) 2025-2026 Markku Rossi
//
// All rights reserved.
//

package circuit

import (
	"sort"

	"github.com/bits-and-blooms/bitset"
)

// WireParents returns the parent pair of every gate wire. Each wire is
// written by at most one gate, so the mapping is well defined; wires
// without a producing gate keep the zero pair.
func WireParents(c *Circuit) [][2]Wire {
	parents := make([][2]Wire, c.Details.NumWires)
	for _, g := range c.Gates {
		parents[g.Output] = [2]Wire{g.Left, g.Right}
	}
	return parents
}

// MarkIntermediaryGates completes the obfuscated-wire set with the
// intermediary gates: gate wires that do not lie on any transparent
// path to a circuit output. It runs a backward BFS from all output
// wires through the parent graph, advancing only through gate wires
// that are not already obfuscated — wires fixed by IdentifyFixedGates
// have determined values and block traversal. Every gate wire the BFS
// does not reach would leak through the outputs if left transparent,
// so it is forced into the obfuscated set. Must run after the
// fixed-gate pass.
func MarkIntermediaryGates(d Details, obfuscated *bitset.BitSet,
	parents [][2]Wire) {

	reachable := bitset.New(uint(d.NumWires))
	queued := bitset.New(uint(d.NumWires))
	queue := make([]Wire, 0, d.OutputBits())

	for i := 0; i < d.NumOutputs; i++ {
		for j := 0; j < d.BitlengthOutputs; j++ {
			w := Wire(d.NumWires - 1 - j - d.BitlengthOutputs*i)
			queue = append(queue, w)
			queued.Set(uint(w))
		}
	}

	inputs := d.InputWires()
	for len(queue) > 0 {
		w := queue[0]
		queue = queue[1:]
		reachable.Set(uint(w))

		for _, parent := range parents[w] {
			if parent.ID() < inputs {
				continue
			}
			if obfuscated.Test(uint(parent)) || queued.Test(uint(parent)) {
				continue
			}
			queue = append(queue, parent)
			queued.Set(uint(parent))
		}
	}

	outputStart := d.OutputStart()
	for w := inputs; w < outputStart; w++ {
		obfuscated.SetTo(uint(w), !reachable.Test(uint(w)))
	}
}

// potentiallyFixedGates marks the wires that are derivable from the
// generator's input alone, before any concrete secret is chosen. It
// mirrors IdentifyFixedGates over a generic obfuscatable predicate
// seeded with all generator-input wires, and never repairs tables: the
// circuit is read-only here.
func potentiallyFixedGates(c *Circuit, po *bitset.BitSet) {
	d := c.Details
	values := make([]bool, d.NumWires)

	for i := 0; i < d.BitlengthInputA; i++ {
		po.Set(uint(i))
	}
	outputStart := d.OutputStart()

	for _, g := range c.Gates {
		leftPo := po.Test(uint(g.Left))
		rightPo := po.Test(uint(g.Right))

		switch {
		case leftPo && rightPo:
			if g.Output.ID() < outputStart {
				po.Set(uint(g.Output))
				values[g.Output] = g.Table.At(values[g.Left], values[g.Right])
			}

		case leftPo:
			l := bit(values[g.Left])
			if g.Table[l][0] == g.Table[l][1] &&
				g.Output.ID() < outputStart {
				po.Set(uint(g.Output))
				values[g.Output] = g.Table[l][0]
			}

		case rightPo:
			r := bit(values[g.Right])
			if g.Table[0][r] == g.Table[1][r] &&
				g.Output.ID() < outputStart {
				po.Set(uint(g.Output))
				values[g.Output] = g.Table[0][r]
			}
		}
	}
}

// PredictObfuscation computes the potentially-obfuscated wire set of
// the circuit: the wires a transformation run could hide, combining the
// potential fixed-gate pass with the intermediary-gate closure. The
// circuit is not modified.
func PredictObfuscation(c *Circuit) *bitset.BitSet {
	po := bitset.New(uint(c.Details.NumWires))
	potentiallyFixedGates(c, po)
	MarkIntermediaryGates(c.Details, po, WireParents(c))
	return po
}

// PredictLeakage reports which generator-input bit indices could be
// exposed through gates no transformation run can obfuscate. An input
// bit leaks when some gate outside the potentially-obfuscated set reads
// its wire directly. The returned indices are sorted and refer to the
// MSB-first secret bit vector. Safe to run before a secret is chosen.
func PredictLeakage(c *Circuit) []int {
	po := PredictObfuscation(c)
	d := c.Details

	seen := bitset.New(uint(d.BitlengthInputA))
	var leaked []int

	for _, g := range c.Gates {
		if po.Test(uint(g.Output)) {
			continue
		}
		for _, parent := range [2]Wire{g.Left, g.Right} {
			if parent.ID() >= d.BitlengthInputA {
				continue
			}
			idx := d.BitlengthInputA - 1 - parent.ID()
			if !seen.Test(uint(idx)) {
				seen.Set(uint(idx))
				leaked = append(leaked, idx)
			}
		}
	}
	sort.Ints(leaked)
	return leaked
}

//
// Copyright (c) 2024-2026 Markku Rossi
//
// All rights reserved.
//

package circuit

import (
	"github.com/bits-and-blooms/bitset"
)

// The input loading and output extraction conventions below must stay
// bit-exact: both input vectors are MSB-first and loaded reversed into
// their wire ranges (wire 0 carries the least-significant bit of input
// A), and each output group is read back MSB-first from the tail of the
// wire array. External consumers of the RGC files depend on this
// layout.

func (c *Circuit) checkInputs(inputA, inputB []bool) error {
	d := c.Details
	if len(inputA) != d.BitlengthInputA {
		return validationf("input A is %d bits, expected %d",
			len(inputA), d.BitlengthInputA)
	}
	if len(inputB) != d.BitlengthInputB {
		return validationf("input B is %d bits, expected %d",
			len(inputB), d.BitlengthInputB)
	}
	return nil
}

func (c *Circuit) loadInputs(eval []bool, inputA, inputB []bool) {
	d := c.Details
	for i := 0; i < d.BitlengthInputA; i++ {
		eval[i] = inputA[d.BitlengthInputA-1-i]
	}
	for i := 0; i < d.BitlengthInputB; i++ {
		eval[d.BitlengthInputA+i] = inputB[d.BitlengthInputB-1-i]
	}
}

func (c *Circuit) extractOutputs(eval []bool) []bool {
	d := c.Details
	output := make([]bool, 0, d.OutputBits())
	for i := 0; i < d.NumOutputs; i++ {
		for j := 0; j < d.BitlengthOutputs; j++ {
			output = append(output, eval[d.NumWires-1-j-d.BitlengthOutputs*i])
		}
	}
	return output
}

func (c *Circuit) checkGate(idx int, g Gate) error {
	n := c.Details.NumWires
	if g.Left.ID() >= n || g.Right.ID() >= n || g.Output.ID() >= n {
		return integrityf("gate %d: wire out of range [0,%d): %v", idx, n, g)
	}
	if g.Left >= g.Output || g.Right >= g.Output {
		return integrityf("gate %d: output %v not after parents %v %v",
			idx, g.Output, g.Left, g.Right)
	}
	return nil
}

// evalWires evaluates every gate and returns the full wire array.
func (c *Circuit) evalWires(inputA, inputB []bool) ([]bool, error) {
	if err := c.checkInputs(inputA, inputB); err != nil {
		return nil, err
	}
	eval := make([]bool, c.Details.NumWires)
	c.loadInputs(eval, inputA, inputB)

	for i, g := range c.Gates {
		if err := c.checkGate(i, g); err != nil {
			return nil, err
		}
		eval[g.Output] = g.Table.At(eval[g.Left], eval[g.Right])
	}
	return eval, nil
}

// Eval computes the circuit output for the input vectors. Both inputs
// and the result are MSB-first bit vectors.
func (c *Circuit) Eval(inputA, inputB []bool) ([]bool, error) {
	eval, err := c.evalWires(inputA, inputB)
	if err != nil {
		return nil, err
	}
	return c.extractOutputs(eval), nil
}

// EvalSequential evaluates a circuit whose gate output IDs are dense
// and sequential: gate i writes wire InputWires()+i. Only specific
// pipelines (EMP-style sorted circuits) produce this layout, so the
// invariant is validated up front instead of assumed; violations are an
// IntegrityError. The evaluation itself writes wires by index for a
// tighter loop than Eval.
func (c *Circuit) EvalSequential(inputA, inputB []bool) ([]bool, error) {
	if err := c.checkInputs(inputA, inputB); err != nil {
		return nil, err
	}
	base := c.Details.InputWires()
	for i, g := range c.Gates {
		if g.Output.ID() != base+i {
			return nil, integrityf("gate %d: output %v breaks sequential "+
				"layout, expected w%d", i, g.Output, base+i)
		}
	}

	eval := make([]bool, c.Details.NumWires)
	c.loadInputs(eval, inputA, inputB)

	for i, g := range c.Gates {
		if err := c.checkGate(i, g); err != nil {
			return nil, err
		}
		eval[base+i] = g.Table.At(eval[g.Left], eval[g.Right])
	}
	return c.extractOutputs(eval), nil
}

// EvalWithFlips evaluates the circuit under an obfuscated generator
// input, applying the flip pattern on the fly instead of first baking
// it into the gate tables. The circuit is not modified, which makes
// this the path for repeated evaluations of one garbled circuit under
// varying encodings: effective parent bits are complemented per the
// pattern before the table lookup and a flipped output wire complements
// the result after it. The output matches flipping the circuit with
// ApplyFlips and running Eval.
func (c *Circuit) EvalWithFlips(obfuscatedA, inputB []bool,
	flipped *bitset.BitSet) ([]bool, error) {

	if err := c.checkInputs(obfuscatedA, inputB); err != nil {
		return nil, err
	}
	eval := make([]bool, c.Details.NumWires)
	c.loadInputs(eval, obfuscatedA, inputB)

	for i, g := range c.Gates {
		if err := c.checkGate(i, g); err != nil {
			return nil, err
		}
		left := eval[g.Left] != flipped.Test(uint(g.Left))
		right := eval[g.Right] != flipped.Test(uint(g.Right))

		out := g.Table.At(left, right)
		if flipped.Test(uint(g.Output)) {
			out = !out
		}
		eval[g.Output] = out
	}
	return c.extractOutputs(eval), nil
}

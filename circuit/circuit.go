//
// Copyright (c) 2024-2026 Markku Rossi
//
// All rights reserved.
//

// Package circuit implements completely reusable garbled circuits
// (CRGC): importing Bristol-Fashion boolean circuits, obfuscating the
// generator's input, detecting and regenerating fixed and intermediary
// gates, and evaluating and serializing the transformed circuits.
package circuit

import (
	"fmt"
)

// Wire specifies a wire ID.
type Wire uint32

// ID returns the wire ID as integer.
func (w Wire) ID() int {
	return int(w)
}

func (w Wire) String() string {
	return fmt.Sprintf("w%d", w)
}

// Details contains circuit metadata. The values are set at import time
// and stay fixed through all transformation passes.
//
// The wire ID space partitions into four contiguous regions:
// generator-input wires [0, BitlengthInputA), evaluator-input wires
// [BitlengthInputA, BitlengthInputA+BitlengthInputB), gate wires, and
// finally the NumOutputs*BitlengthOutputs circuit-output wires.
type Details struct {
	NumGates         int
	NumWires         int
	NumOutputs       int
	BitlengthInputA  int // generator's input
	BitlengthInputB  int // evaluator's input
	BitlengthOutputs int
}

func (d Details) String() string {
	return fmt.Sprintf("#gates=%d #w=%d inA=%d inB=%d out=%dx%d",
		d.NumGates, d.NumWires, d.BitlengthInputA, d.BitlengthInputB,
		d.NumOutputs, d.BitlengthOutputs)
}

// InputWires returns the number of input wires.
func (d Details) InputWires() int {
	return d.BitlengthInputA + d.BitlengthInputB
}

// OutputStart returns the first circuit-output wire ID.
func (d Details) OutputStart() int {
	return d.NumWires - d.NumOutputs*d.BitlengthOutputs
}

// OutputBits returns the total number of circuit-output bits.
func (d Details) OutputBits() int {
	return d.NumOutputs * d.BitlengthOutputs
}

// IsOutputWire tests if the wire belongs to the circuit-output region.
// Output wires are never renamed away, never flip-marked, and never
// counted as obfuscated.
func (d Details) IsOutputWire(w Wire) bool {
	return w.ID() >= d.OutputStart()
}

// Gate specifies a two-input boolean gate with an explicit truth table.
// The parent IDs and the output ID never change after import; the
// transformation passes mutate only the table.
type Gate struct {
	Left   Wire
	Right  Wire
	Output Wire
	Table  Table
}

func (g Gate) String() string {
	return fmt.Sprintf("%v %v %v %v", g.Left, g.Right, g.Output, g.Table)
}

// Circuit is an ordered gate list plus metadata. The gate order is the
// evaluation order: every gate's parents are produced strictly before
// the gate itself, and each wire is written by at most one gate. Wire
// IDs are not necessarily contiguous; NOT elimination leaves gaps.
type Circuit struct {
	Details Details
	Gates   []Gate
}

func (c *Circuit) String() string {
	return c.Details.String()
}

// Clone returns a deep copy of the circuit. The transformation passes
// mutate gate tables in place, so callers who need the original for the
// post-garbling verification must clone first.
func (c *Circuit) Clone() *Circuit {
	gates := make([]Gate, len(c.Gates))
	copy(gates, c.Gates)
	return &Circuit{
		Details: c.Details,
		Gates:   gates,
	}
}

// Ops counts the gates by their canonical operation name.
func (c *Circuit) Ops() map[string]int {
	stats := make(map[string]int)
	for _, g := range c.Gates {
		stats[g.Table.Op()]++
	}
	return stats
}

// Dump prints a debug dump of the circuit.
func (c *Circuit) Dump() {
	fmt.Printf("circuit %s\n", c)
	for id, gate := range c.Gates {
		fmt.Printf("%04d\t%s\n", id, gate)
	}
}

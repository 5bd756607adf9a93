//
// Copyright (c) 2025-2026 Markku Rossi
//
// All rights reserved.
//

package circuit

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

func tableFromBits(v uint8) Table {
	var t Table
	for i := 0; i < 4; i++ {
		t[i/2][i%2] = v&(1<<(3-i)) != 0
	}
	return t
}

var opNameTests = []struct {
	table string
	op    string
}{
	{"0001", "AND"},
	{"0111", "OR"},
	{"0110", "XOR"},
	{"1001", "XNOR"},
	{"1110", "NAND"},
	{"1000", "NOR"},
	{"0000", "FALSE"},
	{"1111", "TRUE"},
	{"0011", "A"},
	{"1100", "B"},
	{"0010", "A_AND_NOT_B"},
	{"0100", "NOT_A_AND_B"},
	{"1010", "NOT_A"},
	{"0101", "NOT_B"},
	{"1011", "INV_A"},
	{"1101", "INV_B"},
}

func TestTableOp(t *testing.T) {
	for _, test := range opNameTests {
		table, ok := ParseTable(test.table)
		if !ok {
			t.Fatalf("ParseTable(%q) failed", test.table)
		}
		if table.Op() != test.op {
			t.Errorf("Op(%s)=%s, expected %s", test.table, table.Op(),
				test.op)
		}
		if table.String() != test.table {
			t.Errorf("String(%s)=%s", test.table, table.String())
		}
	}
}

func TestParseTableErrors(t *testing.T) {
	for _, input := range []string{"", "011", "01100", "01a0"} {
		if _, ok := ParseTable(input); ok {
			t.Errorf("ParseTable(%q) succeeded", input)
		}
	}
}

func TestTableProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100

	properties := gopter.NewProperties(parameters)

	properties.Property("row and column swaps commute", prop.ForAll(
		func(v uint8) bool {
			lr := tableFromBits(v)
			lr.SwapLeft()
			lr.SwapRight()

			rl := tableFromBits(v)
			rl.SwapRight()
			rl.SwapLeft()

			return lr == rl
		},
		gen.UInt8Range(0, 15),
	))

	properties.Property("swaps and inversion are involutions", prop.ForAll(
		func(v uint8) bool {
			orig := tableFromBits(v)

			t := orig
			t.SwapLeft()
			t.SwapLeft()
			if t != orig {
				return false
			}
			t.SwapRight()
			t.SwapRight()
			if t != orig {
				return false
			}
			t.Invert()
			t.Invert()
			return t == orig
		},
		gen.UInt8Range(0, 15),
	))

	properties.Property("swap compensates a flipped parent", prop.ForAll(
		func(v uint8, left, right bool) bool {
			orig := tableFromBits(v)

			t := orig
			t.SwapLeft()
			if t.At(!left, right) != orig.At(left, right) {
				return false
			}
			t = orig
			t.SwapRight()
			return t.At(left, !right) == orig.At(left, right)
		},
		gen.UInt8Range(0, 15), gen.Bool(), gen.Bool(),
	))

	properties.Property("string codec round-trips", prop.ForAll(
		func(v uint8) bool {
			orig := tableFromBits(v)
			parsed, ok := ParseTable(orig.String())
			return ok && parsed == orig
		},
		gen.UInt8Range(0, 15),
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}

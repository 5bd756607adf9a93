//
// Copyright (c) 2024-2026 Markku Rossi
//
// All rights reserved.
//

package circuit

// Table is a 2x2 gate truth table: Table[left][right] is the gate
// output for the parent bits left and right.
type Table [2][2]bool

// TableForOp returns the canonical truth table of the named Bristol
// gate operation.
func TableForOp(op string) (Table, bool) {
	switch op {
	case "AND":
		return Table{{false, false}, {false, true}}, true
	case "OR":
		return Table{{false, true}, {true, true}}, true
	case "XOR":
		return Table{{false, true}, {true, false}}, true
	default:
		return Table{}, false
	}
}

// At returns the table entry selected by the parent bits.
func (t Table) At(left, right bool) bool {
	return t[bit(left)][bit(right)]
}

// SwapLeft exchanges the table rows. Swapping compensates a flipped
// left parent: the gate then evaluates correctly on the complemented
// value.
func (t *Table) SwapLeft() {
	t[0], t[1] = t[1], t[0]
}

// SwapRight exchanges the table columns, compensating a flipped right
// parent. SwapLeft and SwapRight commute.
func (t *Table) SwapRight() {
	t[0][0], t[0][1] = t[0][1], t[0][0]
	t[1][0], t[1][1] = t[1][1], t[1][0]
}

// Invert complements every table entry, turning the gate into its
// negation.
func (t *Table) Invert() {
	t[0][0] = !t[0][0]
	t[0][1] = !t[0][1]
	t[1][0] = !t[1][0]
	t[1][1] = !t[1][1]
}

// Constant tests if the table output is independent of both parents.
func (t Table) Constant() bool {
	return t[0][0] == t[0][1] && t[0][0] == t[1][0] && t[0][0] == t[1][1]
}

// Balanced tests if the table has exactly two true and two false
// entries.
func (t Table) Balanced() bool {
	var ones int
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			if t[i][j] {
				ones++
			}
		}
	}
	return ones == 2
}

// String returns the 4-character encoding
// t[0][0]t[0][1]t[1][0]t[1][1] with '0' and '1' digits.
func (t Table) String() string {
	var buf [4]byte
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			if t[i][j] {
				buf[i*2+j] = '1'
			} else {
				buf[i*2+j] = '0'
			}
		}
	}
	return string(buf[:])
}

// ParseTable parses the 4-character truth table encoding.
func ParseTable(s string) (Table, bool) {
	var t Table
	if len(s) != 4 {
		return t, false
	}
	for i := 0; i < 4; i++ {
		switch s[i] {
		case '1':
			t[i/2][i%2] = true
		case '0':
		default:
			return t, false
		}
	}
	return t, true
}

var opNames = map[string]string{
	"0001": "AND",
	"0111": "OR",
	"0110": "XOR",
	"1000": "NOR",
	"1001": "XNOR",
	"1110": "NAND",
	"1011": "INV_A",
	"1101": "INV_B",
	"0000": "FALSE",
	"1111": "TRUE",
	"0010": "A_AND_NOT_B",
	"0100": "NOT_A_AND_B",
	"1010": "NOT_A",
	"0101": "NOT_B",
	"0011": "A",
	"1100": "B",
}

// Op returns the canonical gate name of the table, or GATE_<TTTT> for
// tables without a standard name.
func (t Table) Op() string {
	str := t.String()
	name, ok := opNames[str]
	if !ok {
		return "GATE_" + str
	}
	return name
}

func bit(b bool) int {
	if b {
		return 1
	}
	return 0
}

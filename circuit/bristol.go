//
// Copyright (c) 2024-2026 Markku Rossi
//
// All rights reserved.
//

package circuit

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"regexp"
	"strconv"
	"strings"

	"github.com/bits-and-blooms/bitset"
)

// Format identifies the circuit file dialect.
type Format int

// Supported circuit file dialects.
const (
	// FormatBristol is the standard Bristol-Fashion header:
	// numInputs and per-input bit lengths on the second line,
	// numOutputs and bitlengthOutputs on the third.
	FormatBristol Format = iota

	// FormatEMP is the EMP-toolkit variant: the second line carries
	// the input and output bit lengths directly and numOutputs is
	// implicitly 1.
	FormatEMP
)

func (f Format) String() string {
	switch f {
	case FormatBristol:
		return "bristol"
	case FormatEMP:
		return "emp"
	default:
		return fmt.Sprintf("{Format %d}", int(f))
	}
}

// ParseFormat resolves a format name.
func ParseFormat(name string) (Format, error) {
	switch name {
	case "bristol":
		return FormatBristol, nil
	case "emp":
		return FormatEMP, nil
	default:
		return 0, fmt.Errorf("unknown circuit format %q", name)
	}
}

var reParts = regexp.MustCompilePOSIX("[[:space:]]+")

type lineReader struct {
	r    *bufio.Reader
	line int
}

// next returns the fields of the next non-blank line, or io.EOF.
func (lr *lineReader) next() ([]string, error) {
	for {
		line, err := lr.r.ReadString('\n')
		if len(line) > 0 {
			lr.line++
		}
		trimmed := strings.TrimSpace(line)
		if len(trimmed) > 0 {
			return reParts.Split(trimmed, -1), nil
		}
		if err != nil {
			return nil, err
		}
	}
}

func (lr *lineReader) errf(format string, a ...interface{}) error {
	return &ParseError{
		Line: lr.line,
		Msg:  fmt.Sprintf(format, a...),
	}
}

func (lr *lineReader) atoi(s string) (int, error) {
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, lr.errf("invalid number %q", s)
	}
	return v, nil
}

func (lr *lineReader) header(format Format) (Details, error) {
	var details Details
	var err error

	// numGates numWires
	line, err := lr.next()
	if err != nil {
		return details, lr.errf("missing circuit header")
	}
	if len(line) != 2 {
		return details, lr.errf("invalid 1st header line")
	}
	if details.NumGates, err = lr.atoi(line[0]); err != nil {
		return details, err
	}
	if details.NumWires, err = lr.atoi(line[1]); err != nil {
		return details, err
	}

	line, err = lr.next()
	if err != nil {
		return details, lr.errf("missing 2nd header line")
	}
	switch format {
	case FormatBristol:
		// numInputs bitlengthInputA bitlengthInputB
		if len(line) != 3 {
			return details, lr.errf("invalid 2nd header line")
		}
		if details.BitlengthInputA, err = lr.atoi(line[1]); err != nil {
			return details, err
		}
		if details.BitlengthInputB, err = lr.atoi(line[2]); err != nil {
			return details, err
		}
		// numOutputs bitlengthOutputs
		line, err = lr.next()
		if err != nil {
			return details, lr.errf("missing 3rd header line")
		}
		if len(line) != 2 {
			return details, lr.errf("invalid 3rd header line")
		}
		if details.NumOutputs, err = lr.atoi(line[0]); err != nil {
			return details, err
		}
		if details.BitlengthOutputs, err = lr.atoi(line[1]); err != nil {
			return details, err
		}

	case FormatEMP:
		// bitlengthInputA bitlengthInputB bitlengthOutputs
		if len(line) != 3 {
			return details, lr.errf("invalid 2nd header line")
		}
		if details.BitlengthInputA, err = lr.atoi(line[0]); err != nil {
			return details, err
		}
		if details.BitlengthInputB, err = lr.atoi(line[1]); err != nil {
			return details, err
		}
		if details.BitlengthOutputs, err = lr.atoi(line[2]); err != nil {
			return details, err
		}
		details.NumOutputs = 1

	default:
		return details, fmt.Errorf("unknown circuit format %v", format)
	}

	if details.NumWires < details.InputWires()+details.OutputBits() {
		return details, lr.errf("inconsistent header: %d wires for %d+%d bits",
			details.NumWires, details.InputWires(), details.OutputBits())
	}
	return details, nil
}

func (lr *lineReader) wire(id int, details Details) (Wire, error) {
	if id < 0 || id >= details.NumWires {
		return 0, integrityf("line %d: wire %d out of range [0,%d)",
			lr.line, id, details.NumWires)
	}
	return Wire(id), nil
}

// ParseBristol parses a Bristol-Fashion circuit and eliminates its NOT
// gates, producing a circuit of two-input gates only.
//
// A NOT gate whose output is not a circuit-output wire vanishes: the
// output wire is renamed to the parent wire and the pending complement
// is recorded, to be folded into the truth tables of the descendant
// gates by row or column swaps. A NOT on an output wire cannot be
// renamed away; it is materialized as an XOR-with-self gate whose table
// gets the pending parent swap and a final whole-table inversion. The
// resulting table shape is what the later flip machinery expects; do
// not simplify it.
//
// Wire IDs are not renumbered: eliminated NOT outputs leave gaps so
// wire IDs stay stable for tools that index the source circuit.
// Details.NumGates is recomputed to the emitted gate count.
func ParseBristol(in io.Reader, format Format) (*Circuit, error) {
	lr := &lineReader{
		r: bufio.NewReader(in),
	}
	details, err := lr.header(format)
	if err != nil {
		return nil, err
	}

	c := &Circuit{
		Details: details,
	}

	// exchange maps original wire IDs to their post-elimination
	// replacements; flipped records pending complements per original
	// wire ID.
	exchange := make([]Wire, details.NumWires)
	for i := range exchange {
		exchange[i] = Wire(i)
	}
	flipped := bitset.New(uint(details.NumWires))
	outputStart := details.OutputStart()

	for {
		line, err := lr.next()
		if err != nil {
			if err == io.EOF {
				break
			}
			return nil, err
		}
		if len(line) < 2 {
			return nil, lr.errf("invalid gate: %v", line)
		}
		numIn, err := lr.atoi(line[0])
		if err != nil {
			return nil, err
		}
		numOut, err := lr.atoi(line[1])
		if err != nil {
			return nil, err
		}

		switch {
		case numIn == 1 && numOut == 1:
			if len(line) != 4 {
				return nil, lr.errf("invalid INV gate: %v", line)
			}
			parentID, err := lr.atoi(line[2])
			if err != nil {
				return nil, err
			}
			outputID, err := lr.atoi(line[3])
			if err != nil {
				return nil, err
			}
			parent, err := lr.wire(parentID, details)
			if err != nil {
				return nil, err
			}
			output, err := lr.wire(outputID, details)
			if err != nil {
				return nil, err
			}
			if output.ID() >= outputStart {
				// NOT on an output wire: materialize as
				// XOR-with-self, fold in the pending parent flip,
				// then invert the whole table.
				g := Gate{
					Left:   exchange[parent],
					Right:  exchange[parent],
					Output: output,
				}
				g.Table, _ = TableForOp("XOR")
				if flipped.Test(uint(parent)) {
					g.Table.SwapLeft()
				}
				g.Table.Invert()
				if err := appendGate(c, lr, g); err != nil {
					return nil, err
				}
			} else {
				exchange[output] = exchange[parent]
				flipped.SetTo(uint(output), !flipped.Test(uint(parent)))
			}

		case numIn == 2 && numOut == 1:
			if len(line) != 6 {
				return nil, lr.errf("invalid gate: %v", line)
			}
			leftID, err := lr.atoi(line[2])
			if err != nil {
				return nil, err
			}
			rightID, err := lr.atoi(line[3])
			if err != nil {
				return nil, err
			}
			outputID, err := lr.atoi(line[4])
			if err != nil {
				return nil, err
			}
			left, err := lr.wire(leftID, details)
			if err != nil {
				return nil, err
			}
			right, err := lr.wire(rightID, details)
			if err != nil {
				return nil, err
			}
			output, err := lr.wire(outputID, details)
			if err != nil {
				return nil, err
			}
			table, ok := TableForOp(line[5])
			if !ok {
				return nil, lr.errf("unknown gate type %q", line[5])
			}
			g := Gate{
				Left:   exchange[left],
				Right:  exchange[right],
				Output: output,
				Table:  table,
			}
			// Pending flips are tracked under the original parent
			// IDs, before renaming.
			if flipped.Test(uint(left)) {
				g.Table.SwapLeft()
			}
			if flipped.Test(uint(right)) {
				g.Table.SwapRight()
			}
			if err := appendGate(c, lr, g); err != nil {
				return nil, err
			}

		default:
			return nil, lr.errf("unsupported gate arity %d/%d", numIn, numOut)
		}
	}

	c.Details.NumGates = len(c.Gates)
	return c, nil
}

// appendGate adds an emitted gate, enforcing the topological-order
// invariant: a gate's output wire must come strictly after its parents.
func appendGate(c *Circuit, lr *lineReader, g Gate) error {
	if g.Left >= g.Output || g.Right >= g.Output {
		return integrityf("line %d: gate output %v not after parents %v %v",
			lr.line, g.Output, g.Left, g.Right)
	}
	c.Gates = append(c.Gates, g)
	return nil
}

// ParseBristolFile parses the named Bristol-Fashion circuit file.
func ParseBristolFile(path string, format Format) (*Circuit, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	c, err := ParseBristol(f, format)
	if err != nil {
		if pe, ok := err.(*ParseError); ok {
			pe.Path = path
		}
		return nil, err
	}
	return c, nil
}

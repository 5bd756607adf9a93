//
// Copyright (c) 2020-2026 Markku Rossi
//
// All rights reserved.
//

package circuit

import (
	"fmt"
	"io"
)

// MarshalBristol marshals the circuit in the Bristol format for
// inspection and interop. Every gate is written as a two-input gate
// with its canonical operation name. Garbled circuits carry arbitrary
// truth tables, so their output is not parseable by tools that only
// know the basic gate set.
func (c *Circuit) MarshalBristol(out io.Writer) error {
	d := c.Details

	fmt.Fprintf(out, "%d %d\n", d.NumGates, d.NumWires)
	fmt.Fprintf(out, "2 %d %d\n", d.BitlengthInputA, d.BitlengthInputB)
	fmt.Fprintf(out, "%d %d\n", d.NumOutputs, d.BitlengthOutputs)
	fmt.Fprintln(out)

	for _, g := range c.Gates {
		_, err := fmt.Fprintf(out, "2 1 %d %d %d %s\n",
			g.Left, g.Right, g.Output, g.Table.Op())
		if err != nil {
			return err
		}
	}
	return nil
}

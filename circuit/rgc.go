//
// Copyright (c) 2025-2026 Markku Rossi
//
// All rights reserved.
//

package circuit

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// The RGC disk layout is three text files sharing a base name:
//
//	<base>_rgc_details.txt  circuit metadata, three lines
//	<base>_rgc.txt          one gate per line: left right output TTTT
//	<base>_rgc_inputA.txt   the encoded generator input as 0/1 digits
//
// The format is line-compatible with other CRGC tooling.

// RGCDetailsPath returns the details file name for the base path.
func RGCDetailsPath(base string) string {
	return base + "_rgc_details.txt"
}

// RGCCircuitPath returns the gate file name for the base path.
func RGCCircuitPath(base string) string {
	return base + "_rgc.txt"
}

// RGCInputPath returns the encoded-input file name for the base path.
func RGCInputPath(base string) string {
	return base + "_rgc_inputA.txt"
}

// ExportRGC writes the circuit into the RGC details and gate files.
func ExportRGC(c *Circuit, base string) error {
	d := c.Details

	f, err := os.Create(RGCDetailsPath(base))
	if err != nil {
		return err
	}
	w := bufio.NewWriter(f)
	fmt.Fprintf(w, "%d %d\n", d.NumGates, d.NumWires)
	fmt.Fprintf(w, "%d %d\n", d.BitlengthInputA, d.BitlengthInputB)
	fmt.Fprintf(w, "%d %d\n", d.NumOutputs, d.BitlengthOutputs)
	if err := w.Flush(); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}

	f, err = os.Create(RGCCircuitPath(base))
	if err != nil {
		return err
	}
	w = bufio.NewWriter(f)
	for _, g := range c.Gates {
		fmt.Fprintf(w, "%d %d %d %s\n", g.Left, g.Right, g.Output, g.Table)
	}
	if err := w.Flush(); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// ExportRGCInput writes the encoded generator input file.
func ExportRGCInput(encoded []bool, base string) error {
	f, err := os.Create(RGCInputPath(base))
	if err != nil {
		return err
	}
	if _, err := fmt.Fprintln(f, BitsString(encoded)); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func importRGCDetails(path string) (Details, error) {
	var details Details

	f, err := os.Open(path)
	if err != nil {
		return details, err
	}
	defer f.Close()

	lr := &lineReader{
		r: bufio.NewReader(f),
	}
	fail := func(err error) (Details, error) {
		if pe, ok := err.(*ParseError); ok {
			pe.Path = path
		}
		return details, err
	}

	fields := [][2]*int{
		{&details.NumGates, &details.NumWires},
		{&details.BitlengthInputA, &details.BitlengthInputB},
		{&details.NumOutputs, &details.BitlengthOutputs},
	}
	for _, field := range fields {
		line, err := lr.next()
		if err != nil {
			return fail(lr.errf("truncated details file"))
		}
		if len(line) != 2 {
			return fail(lr.errf("invalid details line: %v", line))
		}
		if *field[0], err = lr.atoi(line[0]); err != nil {
			return fail(err)
		}
		if *field[1], err = lr.atoi(line[1]); err != nil {
			return fail(err)
		}
	}
	if details.NumWires < details.InputWires()+details.OutputBits() {
		return details, validationf(
			"%s: inconsistent details: %d wires for %d input and %d output bits",
			path, details.NumWires, details.InputWires(), details.OutputBits())
	}
	return details, nil
}

// ImportRGC reads a transformed circuit back from the RGC details and
// gate files sharing the base path.
func ImportRGC(base string) (*Circuit, error) {
	details, err := importRGCDetails(RGCDetailsPath(base))
	if err != nil {
		return nil, err
	}

	path := RGCCircuitPath(base)
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	c := &Circuit{
		Details: details,
	}
	lr := &lineReader{
		r: bufio.NewReader(f),
	}
	for {
		line, err := lr.next()
		if err != nil {
			if err == io.EOF {
				break
			}
			return nil, err
		}
		if len(line) != 4 {
			return nil, &ParseError{
				Path: path,
				Line: lr.line,
				Msg:  fmt.Sprintf("invalid gate line: %v", line),
			}
		}
		var ids [3]int
		for i := 0; i < 3; i++ {
			if ids[i], err = lr.atoi(line[i]); err != nil {
				pe := err.(*ParseError)
				pe.Path = path
				return nil, pe
			}
		}
		table, ok := ParseTable(line[3])
		if !ok {
			return nil, &ParseError{
				Path: path,
				Line: lr.line,
				Msg:  fmt.Sprintf("invalid truth table %q", line[3]),
			}
		}
		g := Gate{
			Table: table,
		}
		if g.Left, err = lr.wire(ids[0], details); err != nil {
			return nil, err
		}
		if g.Right, err = lr.wire(ids[1], details); err != nil {
			return nil, err
		}
		if g.Output, err = lr.wire(ids[2], details); err != nil {
			return nil, err
		}
		if err := appendGate(c, lr, g); err != nil {
			return nil, err
		}
	}

	if len(c.Gates) != details.NumGates {
		return nil, validationf("%s: %d gates, details declare %d",
			path, len(c.Gates), details.NumGates)
	}
	return c, nil
}

// ImportRGCInput reads the encoded generator input of the RGC base
// path, validating it against the expected bit length.
func ImportRGCInput(base string, bitlength int) ([]bool, error) {
	data, err := os.ReadFile(RGCInputPath(base))
	if err != nil {
		return nil, err
	}
	bits, err := ParseBitsString(strings.TrimSpace(string(data)))
	if err != nil {
		return nil, err
	}
	if len(bits) != bitlength {
		return nil, validationf("input file has %d bits, expected %d",
			len(bits), bitlength)
	}
	return bits, nil
}

// ExportGarbled writes the complete garbling result: the RGC circuit
// files plus the encoded input file.
func ExportGarbled(g *Garbled, base string) error {
	if err := ExportRGC(g.Circuit, base); err != nil {
		return err
	}
	return ExportRGCInput(g.Encoded, base)
}

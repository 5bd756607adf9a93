//
// Copyright (c) 2025-2026 Markku Rossi
//
// All rights reserved.
//

package circuit

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func parseString(t *testing.T, src string, format Format) *Circuit {
	t.Helper()
	c, err := ParseBristol(strings.NewReader(src), format)
	require.NoError(t, err)
	return c
}

func evalBits(t *testing.T, c *Circuit, inputA, inputB []bool) []bool {
	t.Helper()
	output, err := c.Eval(inputA, inputB)
	require.NoError(t, err)
	return output
}

// NOT on an intermediate wire is eliminated by renaming: the AND
// consumes the complemented parent through a row swap.
func TestNotElimination(t *testing.T) {
	src := `2 4
2 1 1
1 1

1 1 0 2
2 1 2 1 3 AND
`
	c := parseString(t, src, FormatBristol)
	require.Len(t, c.Gates, 1)
	require.Equal(t, 1, c.Details.NumGates)

	g := c.Gates[0]
	require.Equal(t, Wire(0), g.Left)
	require.Equal(t, Wire(1), g.Right)
	require.Equal(t, Wire(3), g.Output)

	// (!a) & b
	for _, test := range []struct {
		a, b, out bool
	}{
		{false, false, false},
		{false, true, true},
		{true, false, false},
		{true, true, false},
	} {
		output := evalBits(t, c, []bool{test.a}, []bool{test.b})
		require.Equal(t, []bool{test.out}, output,
			"a=%v b=%v", test.a, test.b)
	}
}

// A NOT chain of even length cancels out completely.
func TestNotChainElimination(t *testing.T) {
	src := `3 5
2 1 1
1 1

1 1 0 2
1 1 2 3
2 1 3 1 4 AND
`
	c := parseString(t, src, FormatBristol)
	require.Len(t, c.Gates, 1)
	require.Equal(t, Wire(0), c.Gates[0].Left)

	// a & b
	for _, test := range []struct {
		a, b, out bool
	}{
		{false, true, false},
		{true, true, true},
		{true, false, false},
	} {
		output := evalBits(t, c, []bool{test.a}, []bool{test.b})
		require.Equal(t, []bool{test.out}, output)
	}
}

// A NOT writing an output wire cannot be renamed away: it becomes an
// XOR-with-self gate with an inverted table. The shape is what the
// flip machinery expects downstream.
func TestNotOnOutputWire(t *testing.T) {
	src := `2 4
2 1 1
1 1

2 1 0 1 2 AND
1 1 2 3
`
	c := parseString(t, src, FormatBristol)
	require.Len(t, c.Gates, 2)

	g := c.Gates[1]
	require.Equal(t, g.Left, g.Right)
	require.Equal(t, Wire(2), g.Left)
	require.Equal(t, Wire(3), g.Output)
	require.Equal(t, "1001", g.Table.String())
}

func TestParseEMP(t *testing.T) {
	src := `1 3
1 1 1

2 1 0 1 2 AND
`
	c := parseString(t, src, FormatEMP)
	require.Equal(t, 1, c.Details.NumOutputs)
	require.Equal(t, 1, c.Details.BitlengthInputA)
	require.Equal(t, 1, c.Details.BitlengthInputB)
	require.Equal(t, 1, c.Details.BitlengthOutputs)
	require.Len(t, c.Gates, 1)
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{
			name: "unknown gate type",
			src:  "1 3\n2 1 1\n1 1\n2 1 0 1 2 NAND\n",
		},
		{
			name: "invalid header",
			src:  "1\n2 1 1\n1 1\n",
		},
		{
			name: "invalid number",
			src:  "1 x\n2 1 1\n1 1\n",
		},
		{
			name: "truncated gate",
			src:  "1 3\n2 1 1\n1 1\n2 1 0 1\n",
		},
		{
			name: "inconsistent header",
			src:  "1 2\n2 1 1\n1 1\n",
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := ParseBristol(strings.NewReader(test.src), FormatBristol)
			var parseErr *ParseError
			require.ErrorAs(t, err, &parseErr)
			require.Greater(t, parseErr.Line, 0)
		})
	}
}

func TestParseIntegrityErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{
			name: "wire out of range",
			src:  "1 3\n2 1 1\n1 1\n2 1 0 1 7 AND\n",
		},
		{
			name: "output before parents",
			src:  "2 5\n2 1 1\n1 2\n2 1 0 1 4 AND\n2 1 0 4 3 AND\n",
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := ParseBristol(strings.NewReader(test.src), FormatBristol)
			var integrityErr *IntegrityError
			require.ErrorAs(t, err, &integrityErr)
		})
	}
}

func TestParseBristolFileMissing(t *testing.T) {
	_, err := ParseBristolFile("nonexistent.txt", FormatBristol)
	require.Error(t, err)
	var parseErr *ParseError
	require.False(t, errors.As(err, &parseErr))
}

//
// Copyright (c) 2025-2026 Markku Rossi
//
// All rights reserved.
//

package circuit

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// Circuits built from the basic gate set survive a marshal-reparse
// cycle.
func TestMarshalBristol(t *testing.T) {
	c := parseAdder(t, 8)

	var buf bytes.Buffer
	require.NoError(t, c.MarshalBristol(&buf))

	reparsed, err := ParseBristol(&buf, FormatBristol)
	require.NoError(t, err)
	require.Equal(t, c.Details, reparsed.Details)
	require.Equal(t, c.Gates, reparsed.Gates)
}

// Tables outside the basic gate set marshal with their canonical
// names but do not reparse; the marshaled form of a garbled circuit
// is for inspection only.
func TestMarshalBristolExoticTable(t *testing.T) {
	table, ok := ParseTable("1011")
	require.True(t, ok)
	c := &Circuit{
		Details: Details{
			NumGates:         1,
			NumWires:         3,
			NumOutputs:       1,
			BitlengthInputA:  1,
			BitlengthInputB:  1,
			BitlengthOutputs: 1,
		},
		Gates: []Gate{{Left: 0, Right: 1, Output: 2, Table: table}},
	}

	var buf bytes.Buffer
	require.NoError(t, c.MarshalBristol(&buf))
	require.Contains(t, buf.String(), "INV_A")

	_, err := ParseBristol(strings.NewReader(buf.String()), FormatBristol)
	var pe *ParseError
	require.ErrorAs(t, err, &pe)
}

//
// Copyright (c) 2025-2026 Markku Rossi
//
// All rights reserved.
//

package prng

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestChaChaDeterminism(t *testing.T) {
	seed := [32]byte{1, 2, 3}

	a := Bits(NewChaCha(seed), 4096)
	b := Bits(NewChaCha(seed), 4096)
	require.Equal(t, a, b)

	seed[0] = 4
	c := Bits(NewChaCha(seed), 4096)
	require.NotEqual(t, a, c)
}

func TestChaChaBalance(t *testing.T) {
	var ones int
	for _, bit := range Bits(NewChaCha([32]byte{7}), 4096) {
		if bit {
			ones++
		}
	}
	// A keystream this skewed means the buffer refill is broken.
	require.Greater(t, ones, 1500)
	require.Less(t, ones, 2600)
}

func TestBits(t *testing.T) {
	require.Len(t, Bits(NewCrypto(), 1000), 1000)
	require.Empty(t, Bits(NewCrypto(), 0))
}

func TestCrypto(t *testing.T) {
	bits := Bits(NewCrypto(), 4096)

	var ones int
	for _, bit := range bits {
		if bit {
			ones++
		}
	}
	require.Greater(t, ones, 1500)
	require.Less(t, ones, 2600)
}

//
// Copyright (c) 2025-2026 Markku Rossi
//
// All rights reserved.
//

package circuit

import (
	"math/big"
	"os"
	"path/filepath"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/require"

	"github.com/markkurossi/crgc/prng"
)

func TestBigToBits(t *testing.T) {
	bits := BigToBits(big.NewInt(5), 4)
	require.Equal(t, []bool{false, true, false, true}, bits)
	require.Equal(t, "0101", BitsString(bits))

	// Bits above the width are dropped.
	require.Equal(t, []bool{true, true}, BigToBits(big.NewInt(0xff), 2))
}

func TestBitsCodec(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200

	properties := gopter.NewProperties(parameters)

	properties.Property("big.Int round-trips", prop.ForAll(
		func(v uint32) bool {
			bits := BigToBits(new(big.Int).SetUint64(uint64(v)), 32)
			return BitsToBig(bits).Uint64() == uint64(v)
		},
		gen.UInt32(),
	))

	properties.Property("string codec round-trips", prop.ForAll(
		func(v uint32) bool {
			bits := BigToBits(new(big.Int).SetUint64(uint64(v)), 32)
			parsed, err := ParseBitsString(BitsString(bits))
			if err != nil {
				return false
			}
			return BitsToBig(parsed).Uint64() == uint64(v)
		},
		gen.UInt32(),
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}

func TestParseBitsStringErrors(t *testing.T) {
	_, err := ParseBitsString("0102")
	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
}

func TestParseInput(t *testing.T) {
	src := prng.NewChaCha([32]byte{11})

	bits, err := ParseInput("42", 8, src)
	require.NoError(t, err)
	require.Equal(t, int64(42), BitsToBig(bits).Int64())

	bits, err = ParseInput("0x2a", 8, src)
	require.NoError(t, err)
	require.Equal(t, int64(42), BitsToBig(bits).Int64())

	bits, err = ParseInput("r", 128, src)
	require.NoError(t, err)
	require.Len(t, bits, 128)
}

func TestParseInputFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "input.txt")
	require.NoError(t, os.WriteFile(path, []byte("1010\n"), 0644))

	bits, err := ParseInput(path, 4, prng.NewCrypto())
	require.NoError(t, err)
	require.Equal(t, int64(10), BitsToBig(bits).Int64())

	// Width mismatch.
	_, err = ParseInput(path, 8, prng.NewCrypto())
	var ve *ValidationError
	require.ErrorAs(t, err, &ve)

	// Missing file.
	_, err = ParseInput(filepath.Join(t.TempDir(), "nope"), 4,
		prng.NewCrypto())
	require.Error(t, err)
}

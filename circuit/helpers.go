//
// Copyright (c) 2025-2026 Markku Rossi
//
// All rights reserved.
//

package circuit

import (
	"fmt"
	"math/big"
	"os"
	"strings"

	"github.com/markkurossi/crgc/prng"
)

// BigToBits converts the value into an MSB-first bit vector of the
// given width. Bits above the width are dropped.
func BigToBits(v *big.Int, bitlength int) []bool {
	bits := make([]bool, bitlength)
	for i := 0; i < bitlength; i++ {
		bits[bitlength-1-i] = v.Bit(i) == 1
	}
	return bits
}

// BitsToBig converts an MSB-first bit vector into an integer.
func BitsToBig(bits []bool) *big.Int {
	v := new(big.Int)
	for i, bit := range bits {
		if bit {
			v.SetBit(v, len(bits)-1-i, 1)
		}
	}
	return v
}

// BitsString renders the bit vector as a string of 0/1 digits.
func BitsString(bits []bool) string {
	sb := make([]byte, len(bits))
	for i, bit := range bits {
		if bit {
			sb[i] = '1'
		} else {
			sb[i] = '0'
		}
	}
	return string(sb)
}

// ParseBitsString parses a string of 0/1 digits into a bit vector.
func ParseBitsString(s string) ([]bool, error) {
	bits := make([]bool, len(s))
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '1':
			bits[i] = true
		case '0':
		default:
			return nil, validationf("invalid input digit %q", s[i])
		}
	}
	return bits, nil
}

// ParseInput resolves an input argument into a bit vector of the
// given width: "r" samples a fresh random input, a number (0x prefix
// accepted) is converted MSB-first, and anything else is read as a
// file of 0/1 digits.
func ParseInput(arg string, bitlength int, src prng.Source) ([]bool, error) {
	if arg == "r" {
		return prng.Bits(src, bitlength), nil
	}

	v := new(big.Int)
	if _, ok := v.SetString(arg, 0); ok {
		return BigToBits(v, bitlength), nil
	}

	data, err := os.ReadFile(arg)
	if err != nil {
		return nil, fmt.Errorf("invalid input %q: %w", arg, err)
	}
	bits, err := ParseBitsString(strings.TrimSpace(string(data)))
	if err != nil {
		return nil, err
	}
	if len(bits) != bitlength {
		return nil, validationf("input file %s has %d bits, expected %d",
			arg, len(bits), bitlength)
	}
	return bits, nil
}

//
// Copyright (c) 2025-2026 Markku Rossi
//
// All rights reserved.
//

// Package prng provides the random-bit capability for circuit
// garbling. The bits decide flip patterns and regenerated truth
// tables, so production code must use the cryptographically secure
// Crypto source; the seeded ChaCha source exists for reproducing
// transformations in tests and reruns.
package prng

import (
	"crypto/rand"

	"golang.org/x/crypto/chacha20"
)

// Source produces random bits. Implementations are not safe for
// concurrent use; garbling runs are single-threaded per circuit.
type Source interface {
	// Bit returns one random bit.
	Bit() bool
}

// Bits returns n random bits from the source.
func Bits(src Source, n int) []bool {
	bits := make([]bool, n)
	for i := range bits {
		bits[i] = src.Bit()
	}
	return bits
}

// bitbuf serves single bits out of a byte buffer refilled by fill.
type bitbuf struct {
	fill func(p []byte)
	buf  [256]byte
	n    int
}

func (b *bitbuf) Bit() bool {
	if b.n == 0 {
		b.fill(b.buf[:])
		b.n = len(b.buf) * 8
	}
	b.n--
	return b.buf[b.n/8]&(1<<(b.n%8)) != 0
}

// Crypto is the production source, reading from crypto/rand. An
// entropy failure is unrecoverable and panics.
type Crypto struct {
	bitbuf
}

// NewCrypto creates a cryptographically secure bit source.
func NewCrypto() *Crypto {
	src := new(Crypto)
	src.fill = func(p []byte) {
		if _, err := rand.Read(p); err != nil {
			panic("prng: entropy source failed: " + err.Error())
		}
	}
	return src
}

// ChaCha is a deterministic source expanding a 32-byte seed with the
// ChaCha20 keystream. Two sources with the same seed produce the same
// bit sequence.
type ChaCha struct {
	bitbuf
	cipher *chacha20.Cipher
}

// NewChaCha creates a deterministic bit source from the seed.
func NewChaCha(seed [32]byte) *ChaCha {
	var nonce [chacha20.NonceSize]byte
	cipher, err := chacha20.NewUnauthenticatedCipher(seed[:], nonce[:])
	if err != nil {
		// Key and nonce sizes are fixed above.
		panic(err)
	}
	src := &ChaCha{
		cipher: cipher,
	}
	src.fill = func(p []byte) {
		for i := range p {
			p[i] = 0
		}
		src.cipher.XORKeyStream(p, p)
	}
	return src
}

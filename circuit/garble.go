//
// Copyright (c) 2025-2026 Markku Rossi
//
// All rights reserved.
//

package circuit

import (
	"github.com/bits-and-blooms/bitset"

	"github.com/markkurossi/crgc/logger"
	"github.com/markkurossi/crgc/prng"
)

// Garbled is the result of one transformation run: the reusable
// garbled circuit, the encoded generator input to publish, and the
// obfuscated-wire set of the run for diagnostics. The flip and
// obfuscation state is consumed by the run and not part of the
// exported artifact.
type Garbled struct {
	Circuit    *Circuit
	Encoded    []bool
	Obfuscated *bitset.BitSet
}

// ObfuscatedGates returns the number of obfuscated gate wires,
// excluding the generator-input wires that are obfuscated by
// definition.
func (g *Garbled) ObfuscatedGates() int {
	return int(g.Obfuscated.Count()) - g.Circuit.Details.BitlengthInputA
}

// Garble transforms the circuit into a completely reusable garbled
// circuit under the secret generator input. The passes run in order:
// input obfuscation, flip propagation, fixed-gate identification,
// intermediary-gate closure, and truth-table regeneration. The input
// circuit is left untouched; all mutation happens on a clone.
//
// inputB drives the mandatory self-check: the garbled circuit under
// the encoded input must reproduce the original circuit's output bit
// for bit. A mismatch is a defect in the transformation pipeline and
// surfaces as an IntegrityError; the garbled circuit must then not be
// exported.
//
// timing may be nil; when set, each pass records a sample.
func Garble(c *Circuit, secret, inputB []bool, src prng.Source,
	timing *Timing) (*Garbled, error) {

	log := logger.Logger()

	original, err := c.Eval(secret, inputB)
	if err != nil {
		return nil, err
	}
	sample(timing, "evaluate original")

	garbled := c.Clone()

	encoded, flipped, err := ObfuscateInput(secret, garbled.Details, src)
	if err != nil {
		return nil, err
	}
	ApplyFlips(garbled, flipped, src)
	sample(timing, "flip circuit")
	log.Debug().Int("gates", garbled.Details.NumGates).
		Msg("flip pattern applied")

	obfuscated, _, err := IdentifyFixedGates(garbled, encoded)
	if err != nil {
		return nil, err
	}
	sample(timing, "identify fixed gates")
	log.Debug().
		Int("fixed", int(obfuscated.Count())-garbled.Details.BitlengthInputA).
		Msg("fixed gates identified")

	parents := WireParents(garbled)
	MarkIntermediaryGates(garbled.Details, obfuscated, parents)
	sample(timing, "identify intermediary gates")

	RegenerateGates(garbled, obfuscated, src)
	sample(timing, "regenerate gates")

	result := &Garbled{
		Circuit:    garbled,
		Encoded:    encoded,
		Obfuscated: obfuscated,
	}
	log.Debug().Int("obfuscated", result.ObfuscatedGates()).
		Msg("gates regenerated")

	// Verify the defining law of the pipeline before anyone exports
	// the circuit.
	check, err := garbled.Eval(encoded, inputB)
	if err != nil {
		return nil, err
	}
	for i := range original {
		if check[i] != original[i] {
			return nil, integrityf(
				"garbled output bit %d is %v, original is %v",
				i, check[i], original[i])
		}
	}
	sample(timing, "verify")
	log.Info().Int("gates", garbled.Details.NumGates).
		Int("obfuscated", result.ObfuscatedGates()).
		Msg("garbling verified")

	return result, nil
}

func sample(t *Timing, label string) {
	if t != nil {
		t.Sample(label, nil)
	}
}

//
// main.go
//
// Copyright (c) 2025-2026 Markku Rossi
//
// All rights reserved.
//

// Command crgc transforms a Bristol-Fashion circuit into a completely
// reusable garbled circuit and exports it in the RGC format.
package main

import (
	"encoding/hex"
	"flag"
	"fmt"
	"os"

	"github.com/rs/zerolog"

	"github.com/markkurossi/crgc/circuit"
	"github.com/markkurossi/crgc/logger"
	"github.com/markkurossi/crgc/prng"
)

func main() {
	circuitFlag := flag.String("circuit", "", "Bristol circuit file")
	formatFlag := flag.String("format", "bristol",
		"circuit format: bristol or emp")
	inputA := flag.String("inputa", "r",
		`generator input: "r", a number, or a file of 0/1 digits`)
	inputB := flag.String("inputb", "r",
		`evaluator input for verification: "r", a number, or a file`)
	store := flag.String("store", "",
		"base path for the exported RGC files (default: no export)")
	bristolOut := flag.String("bristol", "",
		"export the garbled circuit in Bristol format to this file")
	seed := flag.String("seed", "",
		"64-digit hex seed for deterministic garbling")
	verbose := flag.Bool("v", false, "verbose output")
	flag.Parse()

	if *verbose {
		logger.Set(logger.Logger().Level(zerolog.DebugLevel))
	} else {
		logger.Set(logger.Logger().Level(zerolog.InfoLevel))
	}
	log := logger.Logger()

	if len(*circuitFlag) == 0 {
		fmt.Fprintf(os.Stderr, "Usage: crgc -circuit FILE [options]\n")
		flag.PrintDefaults()
		os.Exit(1)
	}
	format, err := circuit.ParseFormat(*formatFlag)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid format")
	}
	src, err := newSource(*seed)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid seed")
	}

	timing := circuit.NewTiming()

	c, err := circuit.ParseBristolFile(*circuitFlag, format)
	if err != nil {
		log.Fatal().Err(err).Msg("import failed")
	}
	timing.Sample("import", []string{fmt.Sprintf("%d gates", len(c.Gates))})
	log.Info().Str("circuit", c.String()).Msg("circuit imported")

	// Pre-input diagnostics: which secret bits could ever leak.
	leaked := circuit.PredictLeakage(c)
	timing.Sample("predict leakage", nil)
	if len(leaked) > 0 {
		log.Warn().Ints("bits", leaked).Msg("secret input bits can leak")
	} else {
		log.Info().Msg("no secret input bits leak")
	}

	secret, err := circuit.ParseInput(*inputA, c.Details.BitlengthInputA, src)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid input A")
	}
	inB, err := circuit.ParseInput(*inputB, c.Details.BitlengthInputB, src)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid input B")
	}

	output, err := c.Eval(secret, inB)
	if err != nil {
		log.Fatal().Err(err).Msg("evaluation failed")
	}
	fmt.Printf("inA  = %v\n", circuit.BitsToBig(secret))
	fmt.Printf("inB  = %v\n", circuit.BitsToBig(inB))
	fmt.Printf("out  = %v\n", circuit.BitsToBig(output))

	garbled, err := circuit.Garble(c, secret, inB, src, timing)
	if err != nil {
		log.Fatal().Err(err).Msg("garbling failed")
	}
	fmt.Printf("encA = %v\n", circuit.BitsToBig(garbled.Encoded))

	if len(*store) > 0 {
		if err := circuit.ExportGarbled(garbled, *store); err != nil {
			log.Fatal().Err(err).Msg("export failed")
		}
		timing.Sample("export", []string{exportSize(*store)})
		log.Info().Str("base", *store).Msg("RGC exported")
	}
	if len(*bristolOut) > 0 {
		f, err := os.Create(*bristolOut)
		if err != nil {
			log.Fatal().Err(err).Msg("export failed")
		}
		if err := garbled.Circuit.MarshalBristol(f); err != nil {
			f.Close()
			log.Fatal().Err(err).Msg("export failed")
		}
		if err := f.Close(); err != nil {
			log.Fatal().Err(err).Msg("export failed")
		}
	}

	if *verbose {
		timing.Print(os.Stdout)
	}
}

func newSource(seed string) (prng.Source, error) {
	if len(seed) == 0 {
		return prng.NewCrypto(), nil
	}
	data, err := hex.DecodeString(seed)
	if err != nil {
		return nil, err
	}
	if len(data) != 32 {
		return nil, fmt.Errorf("seed is %d bytes, expected 32", len(data))
	}
	var key [32]byte
	copy(key[:], data)
	return prng.NewChaCha(key), nil
}

func exportSize(base string) string {
	var total circuit.FileSize
	for _, path := range []string{
		circuit.RGCDetailsPath(base),
		circuit.RGCCircuitPath(base),
		circuit.RGCInputPath(base),
	} {
		info, err := os.Stat(path)
		if err != nil {
			log := logger.Logger()
			log.Warn().Err(err).Str("path", path).
				Msg("stat failed")
			continue
		}
		total += circuit.FileSize(info.Size())
	}
	return total.String()
}

//
// main.go
//
// Copyright (c) 2025-2026 Markku Rossi
//
// All rights reserved.
//

// Command crgc-eval evaluates an exported reusable garbled circuit.
// The encoded generator input is read from the RGC input file unless
// overridden on the command line.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/markkurossi/crgc/circuit"
	"github.com/markkurossi/crgc/logger"
	"github.com/markkurossi/crgc/prng"
)

func main() {
	base := flag.String("rgc", "", "base path of the RGC files")
	inputA := flag.String("inputa", "",
		"encoded generator input (default: the RGC input file)")
	inputB := flag.String("inputb", "r",
		`evaluator input: "r", a number, or a file of 0/1 digits`)
	sequential := flag.Bool("sequential", false,
		"use the sequential-indexed evaluator (EMP-style circuits)")
	flag.Parse()

	log := logger.Logger()

	if len(*base) == 0 {
		fmt.Fprintf(os.Stderr, "Usage: crgc-eval -rgc BASE [options]\n")
		flag.PrintDefaults()
		os.Exit(1)
	}

	c, err := circuit.ImportRGC(*base)
	if err != nil {
		log.Fatal().Err(err).Msg("import failed")
	}

	var encoded []bool
	if len(*inputA) > 0 {
		encoded, err = circuit.ParseInput(*inputA,
			c.Details.BitlengthInputA, prng.NewCrypto())
	} else {
		encoded, err = circuit.ImportRGCInput(*base,
			c.Details.BitlengthInputA)
	}
	if err != nil {
		log.Fatal().Err(err).Msg("invalid input A")
	}
	inB, err := circuit.ParseInput(*inputB, c.Details.BitlengthInputB,
		prng.NewCrypto())
	if err != nil {
		log.Fatal().Err(err).Msg("invalid input B")
	}

	var output []bool
	if *sequential {
		output, err = c.EvalSequential(encoded, inB)
	} else {
		output, err = c.Eval(encoded, inB)
	}
	if err != nil {
		log.Fatal().Err(err).Msg("evaluation failed")
	}

	fmt.Printf("inA  = %v\n", circuit.BitsToBig(encoded))
	fmt.Printf("inB  = %v\n", circuit.BitsToBig(inB))
	fmt.Printf("out  = %v (%s)\n", circuit.BitsToBig(output),
		circuit.BitsString(output))
}

// Command aoc24 runs the Advent of Code 2024 solutions.
//
// Inputs are read from $AOC_INPUT_DIR/dayNN.txt (default ./inputs). A .env
// file in the working directory is loaded first.
package main

import (
	"github.com/maisem/aoc24"
	"github.com/maisem/aoc24/days"
	"github.com/rs/zerolog/log"
)

func main() {
	samples, err := days.Samples()
	if err != nil {
		log.Fatal().Err(err).Msg("loading samples")
	}
	aoc.Main(days.All(), samples)
}

// Package days holds the solutions for each day of Advent of Code 2024.
package days

import (
	"embed"

	"github.com/maisem/aoc24"
)

// The solvers carry their worked examples in doc comments.
//
//go:embed day[0-9][0-9].go
var sources embed.FS

// All returns every solved day.
func All() []aoc.Puzzle {
	return []aoc.Puzzle{
		aoc.NewPuzzle[locationLists](1, "Historian Hysteria", day01{}),
		aoc.NewPuzzle[[][]int](2, "Red-Nosed Reports", day02{}),
		aoc.NewPuzzle[string](3, "Mull It Over", day03{}),
		aoc.NewPuzzle[aoc.Grid[rune]](4, "Ceres Search", day04{}),
		aoc.NewPuzzle[*printQueue](5, "Print Queue", day05{}),
		aoc.NewPuzzle[*lab](6, "Guard Gallivant", day06{}),
		aoc.NewPuzzle[[]equation](7, "Bridge Repair", day07{}),
		aoc.NewPuzzle[*antennaMap](8, "Resonant Collinearity", day08{}),
		aoc.NewPuzzle[*diskMap](9, "Disk Fragmenter", day09{}),
		aoc.NewPuzzle[aoc.Grid[int]](10, "Hoof It", day10{}),
		aoc.NewPuzzle[aoc.Stones](11, "Plutonian Pebbles", day11{}),
		aoc.NewPuzzle[[]*aoc.Region[rune]](12, "Garden Groups", day12{}),
		aoc.NewPuzzle[[]clawMachine](13, "Claw Contraption", day13{}),
		aoc.NewPuzzle[[]robot](14, "Restroom Redoubt", day14{size: aoc.Pt{X: 101, Y: 103}}),
		aoc.NewPuzzle[*warehouse](15, "Warehouse Woes", day15{}),
		aoc.NewPuzzle[*maze](16, "Reindeer Maze", day16{}),
	}
}

// Samples returns the worked examples from the puzzle texts.
func Samples() ([]aoc.Sample, error) {
	return aoc.ExtractSamplesFS(sources, "day*.go")
}

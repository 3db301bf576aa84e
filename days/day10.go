package days

import "github.com/maisem/aoc24"

type day10 struct{}

func (day10) Parse(input string) (aoc.Grid[int], error) {
	return aoc.DigitGrid(input)
}

// Part1 sums the trailhead scores: the number of 9s reachable from each 0.
/*
want=36

89010123
78121874
87430965
96549874
45678903
32019012
01329801
10456732
*/
func (day10) Part1(g aoc.Grid[int]) (any, error) {
	pairs, _ := aoc.TrailStats(g, 9, 0)
	return pairs, nil
}

// Part2 sums the trailhead ratings: the number of distinct trails.
// want=81
func (day10) Part2(g aoc.Grid[int]) (any, error) {
	_, trails := aoc.TrailStats(g, 9, 0)
	return trails, nil
}

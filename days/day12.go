package days

import "github.com/maisem/aoc24"

type day12 struct{}

func (day12) Parse(input string) ([]*aoc.Region[rune], error) {
	g, err := aoc.RuneGrid(input)
	if err != nil {
		return nil, err
	}
	return aoc.Regions(g), nil
}

/*
want=1930

RRRRIICCFF
RRRRIICCCF
VVRRRCCFFF
VVRCCCJFFF
VVVVCJJCFE
VVIVCCJJEE
VVIIICJJEE
MIIIIIJJEE
MIIISIJEEE
MMMISSJEEE
*/
func (day12) Part1(regions []*aoc.Region[rune]) (any, error) {
	return aoc.PerimeterPrice(regions), nil
}

// Part2 prices fences by number of sides instead of length.
// want=1206
func (day12) Part2(regions []*aoc.Region[rune]) (any, error) {
	return aoc.SidesPrice(regions), nil
}

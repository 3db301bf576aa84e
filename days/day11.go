package days

import "github.com/maisem/aoc24"

type day11 struct{}

func (day11) Parse(input string) (aoc.Stones, error) {
	return aoc.ParseStones(input)
}

func blinks(s aoc.Stones, n int) (any, error) {
	s, err := aoc.BlinkN(s, n)
	if err != nil {
		return nil, err
	}
	return s.Total(), nil
}

/*
want=55312

125 17
*/
func (day11) Part1(s aoc.Stones) (any, error) { return blinks(s, 25) }
// want=65601038650482
func (day11) Part2(s aoc.Stones) (any, error) { return blinks(s, 75) }

package days

import (
	"fmt"
	"slices"

	"github.com/maisem/aoc24"
)

type day02 struct{}

func (day02) Parse(input string) ([][]int, error) {
	var reports [][]int
	for i, line := range aoc.Lines(input) {
		levels, err := aoc.Fields(line, "")
		if err != nil {
			return nil, fmt.Errorf("report %d: %w", i+1, err)
		}
		reports = append(reports, levels)
	}
	return reports, nil
}

// safe reports whether levels move in a single direction by steps of 1 to 3.
func safe(levels []int) bool {
	dir := 0
	for i := 1; i < len(levels); i++ {
		d := levels[i] - levels[i-1]
		if m := aoc.AbsDiff(levels[i], levels[i-1]); m < 1 || m > 3 {
			return false
		}
		if dir == 0 {
			dir = aoc.Sign(d)
		} else if aoc.Sign(d) != dir {
			return false
		}
	}
	return true
}

/*
want=2

7 6 4 2 1
1 2 7 8 9
9 7 6 2 1
1 3 2 4 5
8 6 4 4 1
1 3 6 7 9
*/
func (day02) Part1(reports [][]int) (any, error) {
	n := 0
	for _, r := range reports {
		if safe(r) {
			n++
		}
	}
	return n, nil
}

// Part2 tolerates a single bad level.
// want=4
func (day02) Part2(reports [][]int) (any, error) {
	n := 0
	for _, r := range reports {
		if safe(r) {
			n++
			continue
		}
		for i := range r {
			if safe(slices.Delete(slices.Clone(r), i, i+1)) {
				n++
				break
			}
		}
	}
	return n, nil
}

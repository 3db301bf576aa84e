package days

import (
	"fmt"
	"slices"

	"github.com/maisem/aoc24"
)

type day01 struct{}

type locationLists struct {
	left, right []int
}

func (day01) Parse(input string) (locationLists, error) {
	var l locationLists
	for i, line := range aoc.Lines(input) {
		f, err := aoc.Fields(line, "")
		if err != nil {
			return l, fmt.Errorf("line %d: %w", i+1, err)
		}
		if len(f) != 2 {
			return l, fmt.Errorf("%w: line %d: got %d ids, want 2", aoc.ErrInvalidInput, i+1, len(f))
		}
		l.left = append(l.left, f[0])
		l.right = append(l.right, f[1])
	}
	return l, nil
}

// Part1 pairs the lists up smallest to smallest and sums the distances.
/*
want=11

3   4
4   3
2   5
1   3
3   9
3   3
*/
func (day01) Part1(l locationLists) (any, error) {
	left, right := slices.Clone(l.left), slices.Clone(l.right)
	slices.Sort(left)
	slices.Sort(right)
	total := 0
	for i := range left {
		total += aoc.AbsDiff(left[i], right[i])
	}
	return total, nil
}

// Part2 computes the similarity score.
// want=31
func (day01) Part2(l locationLists) (any, error) {
	occurrences := aoc.Memoize(map[int]int{}, aoc.Identity[int], func(id int) int {
		n := 0
		for _, v := range l.right {
			if v == id {
				n++
			}
		}
		return n
	})
	score := 0
	for _, id := range l.left {
		score += id * occurrences(id)
	}
	return score, nil
}

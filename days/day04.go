package days

import (
	"fmt"
	"strings"

	"github.com/maisem/aoc24"
)

type day04 struct{}

func (day04) Parse(input string) (aoc.Grid[rune], error) {
	return aoc.ParseGrid(input, func(r rune) (rune, error) {
		if !strings.ContainsRune("XMAS", r) {
			return 0, fmt.Errorf("%q is not a valid letter", r)
		}
		return r, nil
	})
}

// scan reads up to n letters from p stepping by d, stopping at the edge.
func scan(g aoc.Grid[rune], p, d aoc.Pt, n int) string {
	var sb strings.Builder
	for i := 0; i < n; i++ {
		r, ok := g.AtOk(p)
		if !ok {
			break
		}
		sb.WriteRune(r)
		p = p.Add(d)
	}
	return sb.String()
}

/*
want=18

MMMSXXMASM
MSAMXMSMSA
AMXSXMAAMM
MSAMASMSMX
XMASAMXAMM
XXAMMXXAMA
SMSMSASXSS
SAXAMASAAA
MAMMMXMMMM
MXMXAXMASX
*/
func (day04) Part1(g aoc.Grid[rune]) (any, error) {
	n := 0
	for _, x := range g.FindAll(func(r rune) bool { return r == 'X' }) {
		aoc.Pt{}.ForNeighbors(func(d aoc.Pt) bool {
			if scan(g, x, d, 4) == "XMAS" {
				n++
			}
			return true
		})
	}
	return n, nil
}

func isMAS(s string) bool {
	return s == "MAS" || s == "SAM"
}

// Part2 counts the A's crossed by two diagonal MAS.
// want=9
func (day04) Part2(g aoc.Grid[rune]) (any, error) {
	n := 0
	for _, a := range g.FindAll(func(r rune) bool { return r == 'A' }) {
		down := scan(g, a.Add(aoc.Pt{X: -1, Y: -1}), aoc.Pt{X: 1, Y: 1}, 3)
		up := scan(g, a.Add(aoc.Pt{X: -1, Y: 1}), aoc.Pt{X: 1, Y: -1}, 3)
		if isMAS(down) && isMAS(up) {
			n++
		}
	}
	return n, nil
}

package days

import (
	"github.com/maisem/aoc24"
)

type day08 struct{}

type antennaMap struct {
	size     aoc.Pt
	antennas map[rune][]aoc.Pt // by frequency
}

func (day08) Parse(input string) (*antennaMap, error) {
	g, err := aoc.RuneGrid(input)
	if err != nil {
		return nil, err
	}
	m := &antennaMap{size: g.Size(), antennas: make(map[rune][]aoc.Pt)}
	for _, p := range g.FindAll(func(r rune) bool { return r != '.' }) {
		f := g.At(p)
		m.antennas[f] = append(m.antennas[f], p)
	}
	return m, nil
}

func (m *antennaMap) inBounds(p aoc.Pt) bool {
	return p.X >= 0 && p.Y >= 0 && p.X < m.size.X && p.Y < m.size.Y
}

// antinodes collects, for each ordered pair of same-frequency antennas a, b,
// the points b + k*(b-a) for k in [from, to] that lie on the map. to < 0
// means until the edge.
func (m *antennaMap) antinodes(from, to int) map[aoc.Pt]bool {
	out := make(map[aoc.Pt]bool)
	for _, ants := range m.antennas {
		for _, a := range ants {
			for _, b := range ants {
				if a == b {
					continue
				}
				d := b.Sub(a)
				for k := from; to < 0 || k <= to; k++ {
					p := b.Add(d.Mul(k))
					if !m.inBounds(p) {
						break
					}
					out[p] = true
				}
			}
		}
	}
	return out
}

/*
want=14

............
........0...
.....0......
.......0....
....0.......
......A.....
............
............
........A...
.........A..
............
............
*/
func (day08) Part1(m *antennaMap) (any, error) {
	return len(m.antinodes(1, 1)), nil
}

// Part2 counts every grid point in line with a pair, antennas included.
// want=34
func (day08) Part2(m *antennaMap) (any, error) {
	return len(m.antinodes(0, -1)), nil
}

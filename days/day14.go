package days

import (
	"fmt"

	"github.com/maisem/aoc24"
)

// day14 simulates robots on a torus of the given size.
type day14 struct {
	size aoc.Pt
}

type robot struct {
	p, v aoc.Pt
}

func (d day14) Parse(input string) ([]robot, error) {
	var out []robot
	for i, line := range aoc.Lines(input) {
		var r robot
		if _, err := fmt.Sscanf(line, "p=%d,%d v=%d,%d", &r.p.X, &r.p.Y, &r.v.X, &r.v.Y); err != nil {
			return nil, fmt.Errorf("%w: line %d: %w", aoc.ErrInvalidInput, i+1, err)
		}
		out = append(out, r)
	}
	return out, nil
}

func (d day14) at(r robot, t int) aoc.Pt {
	return aoc.Wrap(r.p.Add(r.v.Mul(t)), d.size)
}

// Part1 multiplies the robot counts of the four quadrants after 100
// seconds. Robots on the middle row or column count for none.
func (d day14) Part1(robots []robot) (any, error) {
	var quads [4]int
	mx, my := d.size.X/2, d.size.Y/2
	for _, r := range robots {
		p := d.at(r, 100)
		if p.X == mx && d.size.X%2 == 1 || p.Y == my && d.size.Y%2 == 1 {
			continue
		}
		q := 0
		if p.X >= mx+d.size.X%2 {
			q++
		}
		if p.Y >= my+d.size.Y%2 {
			q += 2
		}
		quads[q]++
	}
	return quads[0] * quads[1] * quads[2] * quads[3], nil
}

// spread sums the squared distances of the robots from the centre, in
// doubled coordinates to stay integral.
func (d day14) spread(robots []robot, t int) int {
	sum := 0
	for _, r := range robots {
		p := d.at(r, t)
		dx, dy := 2*p.X-d.size.X, 2*p.Y-d.size.Y
		sum += dx*dx + dy*dy
	}
	return sum
}

// Part2 finds the first second at which the robots huddle closest to the
// centre, which is when they draw the picture. Positions repeat every
// width*height seconds.
func (d day14) Part2(robots []robot) (any, error) {
	best, bestT := -1, 0
	for t := 1; t <= d.size.X*d.size.Y; t++ {
		if s := d.spread(robots, t); best < 0 || s < best {
			best, bestT = s, t
		}
	}
	return bestT, nil
}

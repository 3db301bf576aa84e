package days

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/maisem/aoc24"
)

type day13 struct{}

type clawMachine struct {
	a, b, prize aoc.Pt
}

var clawRx = regexp.MustCompile(`X[+=](\d+), Y[+=](\d+)`)

func (day13) Parse(input string) ([]clawMachine, error) {
	var out []clawMachine
	for i, block := range strings.Split(strings.TrimSpace(strings.ReplaceAll(input, "\r\n", "\n")), "\n\n") {
		m := clawRx.FindAllStringSubmatch(block, -1)
		if len(m) != 3 {
			return nil, fmt.Errorf("%w: machine %d: want 3 vectors, got %d", aoc.ErrInvalidInput, i+1, len(m))
		}
		var pts [3]aoc.Pt
		for j, v := range m {
			xy, err := aoc.Ints(v[1], v[2])
			if err != nil {
				return nil, fmt.Errorf("machine %d: %w", i+1, err)
			}
			pts[j] = aoc.Pt{X: xy[0], Y: xy[1]}
		}
		out = append(out, clawMachine{a: pts[0], b: pts[1], prize: pts[2]})
	}
	return out, nil
}

// tokens solves a*A + b*B = prize with Cramer's rule and returns the token
// cost 3a+b, or false when there is no unique non-negative integer solution.
func (c clawMachine) tokens() (int, bool) {
	det := c.a.X*c.b.Y - c.b.X*c.a.Y
	if det == 0 {
		return 0, false
	}
	an := c.prize.X*c.b.Y - c.b.X*c.prize.Y
	bn := c.a.X*c.prize.Y - c.prize.X*c.a.Y
	if an%det != 0 || bn%det != 0 {
		return 0, false
	}
	a, b := an/det, bn/det
	if a < 0 || b < 0 {
		return 0, false
	}
	return 3*a + b, true
}

func totalTokens(ms []clawMachine, offset int) int {
	total := 0
	for _, m := range ms {
		m.prize = m.prize.Add(aoc.Pt{X: offset, Y: offset})
		if t, ok := m.tokens(); ok {
			total += t
		}
	}
	return total
}

/*
want=480

Button A: X+94, Y+34
Button B: X+22, Y+67
Prize: X=8400, Y=5400

Button A: X+26, Y+66
Button B: X+67, Y+21
Prize: X=12748, Y=12176

Button A: X+17, Y+86
Button B: X+84, Y+37
Prize: X=7870, Y=6450

Button A: X+69, Y+23
Button B: X+27, Y+71
Prize: X=18641, Y=10279
*/
func (day13) Part1(ms []clawMachine) (any, error) {
	return totalTokens(ms, 0), nil
}

// Part2 fixes the unit conversion error in the prize positions.
// want=875318608908
func (day13) Part2(ms []clawMachine) (any, error) {
	return totalTokens(ms, 10_000_000_000_000), nil
}

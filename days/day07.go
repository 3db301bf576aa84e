package days

import (
	"fmt"
	"strings"

	"github.com/maisem/aoc24"
)

type day07 struct{}

type equation struct {
	target int
	terms  []int
}

func (day07) Parse(input string) ([]equation, error) {
	var eqs []equation
	for i, line := range aoc.Lines(input) {
		lhs, rhs, ok := strings.Cut(line, ": ")
		if !ok {
			return nil, fmt.Errorf("%w: line %d: missing ': '", aoc.ErrInvalidInput, i+1)
		}
		target, err := aoc.Int(lhs)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", i+1, err)
		}
		terms, err := aoc.Fields(rhs, "")
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", i+1, err)
		}
		if len(terms) == 0 {
			return nil, fmt.Errorf("%w: line %d: no terms", aoc.ErrInvalidInput, i+1)
		}
		eqs = append(eqs, equation{target: target, terms: terms})
	}
	return eqs, nil
}

const (
	opAdd    = '+'
	opMul    = '*'
	opConcat = '|'
)

// comboKey identifies a list of operator combinations: n operators drawn
// from ops.
type comboKey struct {
	n   int
	ops string
}

// newCombos returns a generator of every operator sequence, memoized in a
// cache shared across equations.
func newCombos() func(comboKey) []string {
	var combos func(comboKey) []string
	combos = aoc.Memoize(map[comboKey][]string{}, aoc.Identity[comboKey], func(k comboKey) []string {
		if k.n <= 0 {
			return []string{""}
		}
		shorter := combos(comboKey{k.n - 1, k.ops})
		out := make([]string, 0, len(shorter)*len(k.ops))
		for _, c := range shorter {
			for _, op := range k.ops {
				out = append(out, string(op)+c)
			}
		}
		return out
	})
	return combos
}

func concat(a, b int) int {
	return a*int(aoc.Pow10(aoc.NumDigits(uint64(b)))) + b
}

// eval applies ops left to right. Terms are positive so totals never
// shrink, and eval gives up once the total passes target.
func (e equation) eval(ops string, positive bool) (int, bool) {
	total := e.terms[0]
	for i, op := range ops {
		t := e.terms[i+1]
		switch op {
		case opAdd:
			total += t
		case opMul:
			total *= t
		case opConcat:
			total = concat(total, t)
		default:
			panic(fmt.Sprintf("unknown operator %q", op))
		}
		if positive && total > e.target {
			return total, false
		}
	}
	return total, true
}

func (e equation) positive() bool {
	for _, t := range e.terms {
		if t <= 0 {
			return false
		}
	}
	return true
}

func calibrate(eqs []equation, ops string) int {
	combos := newCombos()
	total := 0
	for _, e := range eqs {
		pos := e.positive()
		for _, c := range combos(comboKey{len(e.terms) - 1, ops}) {
			if got, ok := e.eval(c, pos); ok && got == e.target {
				total += e.target
				break
			}
		}
	}
	return total
}

/*
want=3749

190: 10 19
3267: 81 40 27
83: 17 5
156: 15 6
7290: 6 8 6 15
161011: 16 10 13
192: 17 8 14
21037: 9 7 18 13
292: 11 6 16 20
*/
func (day07) Part1(eqs []equation) (any, error) {
	return calibrate(eqs, string([]rune{opAdd, opMul})), nil
}

// want=11387
func (day07) Part2(eqs []equation) (any, error) {
	return calibrate(eqs, string([]rune{opAdd, opMul, opConcat})), nil
}

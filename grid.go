package aoc

import (
	"fmt"
	"reflect"
	"strings"

	"golang.org/x/exp/constraints"
	"tailscale.com/util/deephash"
)

// Grid is a rectangular matrix of cells indexed as g[y][x].
type Grid[T any] [][]T

// ParseGrid builds a grid from newline separated rows, converting each rune
// with cell. Rows of unequal length and runes rejected by cell fail with
// ErrInvalidInput.
func ParseGrid[T any](text string, cell func(r rune) (T, error)) (Grid[T], error) {
	lines := Lines(text)
	if len(lines) == 0 {
		return nil, fmt.Errorf("%w: empty grid", ErrInvalidInput)
	}
	width := len([]rune(lines[0]))
	g := make(Grid[T], 0, len(lines))
	for y, line := range lines {
		rs := []rune(line)
		if len(rs) != width {
			return nil, fmt.Errorf("%w: row %d has length %d, want %d", ErrInvalidInput, y, len(rs), width)
		}
		row := make([]T, width)
		for x, r := range rs {
			v, err := cell(r)
			if err != nil {
				return nil, fmt.Errorf("%w: cell (%d,%d): %w", ErrInvalidInput, x, y, err)
			}
			row[x] = v
		}
		g = append(g, row)
	}
	return g, nil
}

// RuneGrid parses text into a grid of its runes.
func RuneGrid(text string) (Grid[rune], error) {
	return ParseGrid(text, func(r rune) (rune, error) { return r, nil })
}

// DigitGrid parses text into a grid of single digits.
func DigitGrid(text string) (Grid[int], error) {
	return ParseGrid(text, func(r rune) (int, error) {
		if r < '0' || r > '9' {
			return 0, fmt.Errorf("not a digit: %q", r)
		}
		return int(r - '0'), nil
	})
}

// Lines splits text into lines, dropping surrounding blank space and
// carriage returns.
func Lines(text string) []string {
	text = strings.TrimSpace(strings.ReplaceAll(text, "\r\n", "\n"))
	if text == "" {
		return nil
	}
	return strings.Split(text, "\n")
}

func (g Grid[T]) At(p Pt) T {
	return g[p.Y][p.X]
}

func (g Grid[T]) Set(p Pt, v T) {
	g[p.Y][p.X] = v
}

func (g Grid[T]) AtOk(p Pt) (T, bool) {
	if !g.InBounds(p) {
		var zero T
		return zero, false
	}
	return g[p.Y][p.X], true
}

// Get is AtOk with separate coordinates.
func (g Grid[T]) Get(x, y int) (T, bool) {
	return g.AtOk(Pt{x, y})
}

func (g Grid[T]) InBounds(p Pt) bool {
	return len(g) > 0 && p.X >= 0 && p.Y >= 0 && p.X < len(g[0]) && p.Y < len(g)
}

func MakeGrid[T any](x, y int) Grid[T] {
	out := make(Grid[T], y)
	for i := range out {
		out[i] = make([]T, x)
	}
	return out
}

func (g Grid[T]) Size() Pt {
	if len(g) == 0 {
		return Pt{}
	}
	return Pt{len(g[0]), len(g)}
}

// Neighbors4 returns the in-bounds orthogonal neighbors of p in the order
// north, east, south, west.
func (g Grid[T]) Neighbors4(p Pt) []Pt {
	out := make([]Pt, 0, 4)
	for _, d := range Directions {
		if n := p.Step(d); g.InBounds(n) {
			out = append(out, n)
		}
	}
	return out
}

// Find returns the first cell in row-major order that matches pred.
func (g Grid[T]) Find(pred func(T) bool) (Pt, bool) {
	for y, row := range g {
		for x, v := range row {
			if pred(v) {
				return Pt{x, y}, true
			}
		}
	}
	return Pt{}, false
}

// FindAll returns every cell matching pred in row-major order.
func (g Grid[T]) FindAll(pred func(T) bool) []Pt {
	var out []Pt
	for y, row := range g {
		for x, v := range row {
			if pred(v) {
				out = append(out, Pt{x, y})
			}
		}
	}
	return out
}

func (g Grid[T]) Clone() Grid[T] {
	out := make(Grid[T], len(g))
	for y, row := range g {
		out[y] = append([]T(nil), row...)
	}
	return out
}

// Scoped sets the cell at p to v for the duration of fn. The previous value
// is restored when fn returns, errors or panics.
func (g Grid[T]) Scoped(p Pt, v T, fn func() error) error {
	old := g.At(p)
	g.Set(p, v)
	defer g.Set(p, old)
	return fn()
}

var hashers map[reflect.Type]any // map[reflect.Type]func(*Grid[T]) deephash.Sum

func (g Grid[T]) Hash() deephash.Sum {
	if hashers == nil {
		hashers = make(map[reflect.Type]any)
	}
	rt := reflect.TypeOf(g)
	h, ok := hashers[rt]
	if !ok {
		h = deephash.HasherForType[Grid[T]]()
		hashers[rt] = h
	}
	return h.(func(*Grid[T]) deephash.Sum)(&g)
}

// Path is a point and a direction.
type Path struct {
	Pt  Pt
	Dir Direction
}

// Move steps p one cell in its direction. It reports false if the step
// leaves the grid.
func (g Grid[T]) Move(p Path) (Path, bool) {
	p.Pt = p.Pt.Step(p.Dir)
	if !g.InBounds(p.Pt) {
		return Path{}, false
	}
	return p, true
}

type Direction int

const (
	Up Direction = iota
	Right
	Down
	Left
)

// Directions lists every heading in enumeration order.
var Directions = [4]Direction{Up, Right, Down, Left}

// ParseDirection maps ^ > v < to a Direction.
func ParseDirection(r rune) (Direction, bool) {
	switch r {
	case '^':
		return Up, true
	case '>':
		return Right, true
	case 'v':
		return Down, true
	case '<':
		return Left, true
	}
	return 0, false
}

func (d Direction) Turn(right bool) Direction {
	if right {
		return (d + 1) % 4
	}
	return (d + 3) % 4
}

func (d Direction) Reverse() Direction {
	return (d + 2) % 4
}

// Delta is the unit step for d, with y growing downwards.
func (d Direction) Delta() Pt {
	return Pt{}.Step(d)
}

func (d Direction) String() string {
	switch d {
	case Left:
		return "<"
	case Right:
		return ">"
	case Up:
		return "^"
	case Down:
		return "v"
	}
	return ""
}

type Pt = Pt2[int]

type Pt2[T constraints.Signed] struct {
	X, Y T
}

func (p Pt2[T]) Add(q Pt2[T]) Pt2[T] {
	return Pt2[T]{p.X + q.X, p.Y + q.Y}
}

func (p Pt2[T]) Sub(q Pt2[T]) Pt2[T] {
	return Pt2[T]{p.X - q.X, p.Y - q.Y}
}

func (p Pt2[T]) Mul(k T) Pt2[T] {
	return Pt2[T]{p.X * k, p.Y * k}
}

// Step returns the neighbor of p in direction d.
func (p Pt2[T]) Step(d Direction) Pt2[T] {
	switch d {
	case Up:
		p.Y--
	case Right:
		p.X++
	case Down:
		p.Y++
	case Left:
		p.X--
	default:
		panic(fmt.Sprintf("bad direction %d", int(d)))
	}
	return p
}

func (p Pt2[T]) ForImmediateNeighbors(f func(Pt2[T]) (keepGoing bool)) {
	p.ForNeighbors(func(n Pt2[T]) bool {
		if p.X == n.X || p.Y == n.Y {
			return f(n)
		}
		return true
	})
}

func (p Pt2[T]) ForNeighbors(f func(Pt2[T]) (keepGoing bool)) {
	for y := T(-1); y <= 1; y++ {
		for x := T(-1); x <= 1; x++ {
			if x == 0 && y == 0 {
				continue
			}
			if !f(Pt2[T]{p.X + x, p.Y + y}) {
				return
			}
		}
	}
}

// Wrap maps p onto a torus of the given size.
func Wrap(p, size Pt) Pt {
	p.X %= size.X
	p.Y %= size.Y
	if p.X < 0 {
		p.X += size.X
	}
	if p.Y < 0 {
		p.Y += size.Y
	}
	return p
}

// MDist returns the manhattan distance between a and b.
func (a Pt2[T]) MDist(b Pt2[T]) T {
	return AbsDiff[T](a.X, b.X) + AbsDiff[T](a.Y, b.Y)
}

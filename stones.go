package aoc

import (
	"fmt"
	"math/big"
	"math/bits"
	"strconv"
	"strings"
)

// Stones is a multiset of engraved values: value -> multiplicity.
// Multiplicities grow exponentially with each blink, so they are kept as
// big.Int.
type Stones map[uint64]*big.Int

// ParseStones parses space separated values, each adding one stone.
func ParseStones(text string) (Stones, error) {
	s := make(Stones)
	for _, f := range strings.Fields(text) {
		v, err := strconv.ParseUint(f, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: stone %q: %w", ErrInvalidInput, f, err)
		}
		s.add(v, big.NewInt(1))
	}
	return s, nil
}

func (s Stones) add(v uint64, n *big.Int) {
	if c, ok := s[v]; ok {
		c.Add(c, n)
		return
	}
	s[v] = new(big.Int).Set(n)
}

// Count returns the multiplicity of v, zero when absent.
func (s Stones) Count(v uint64) *big.Int {
	if c, ok := s[v]; ok {
		return new(big.Int).Set(c)
	}
	return new(big.Int)
}

// Total returns the number of stones.
func (s Stones) Total() *big.Int {
	t := new(big.Int)
	for _, c := range s {
		t.Add(t, c)
	}
	return t
}

// Blink applies one generation of rules to every distinct value and merges
// the results into a new multiset:
//   - 0 becomes 1;
//   - a value with an even number of digits splits into its left and right
//     halves;
//   - anything else is multiplied by 2024.
func Blink(s Stones) (Stones, error) {
	next := make(Stones, len(s))
	for v, n := range s {
		if v == 0 {
			next.add(1, n)
			continue
		}
		if d := NumDigits(v); d%2 == 0 {
			p := Pow10(d / 2)
			next.add(v/p, n)
			next.add(v%p, n)
			continue
		}
		hi, lo := bits.Mul64(v, 2024)
		if hi != 0 {
			return nil, fmt.Errorf("%w: %d * 2024", ErrOverflow, v)
		}
		next.add(lo, n)
	}
	return next, nil
}

// BlinkN blinks n times.
func BlinkN(s Stones, n int) (Stones, error) {
	var err error
	for i := 0; i < n; i++ {
		if s, err = Blink(s); err != nil {
			return nil, fmt.Errorf("blink %d: %w", i+1, err)
		}
	}
	return s, nil
}

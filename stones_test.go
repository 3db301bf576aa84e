package aoc

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func counts(s Stones) map[uint64]int64 {
	out := make(map[uint64]int64, len(s))
	for v, n := range s {
		out[v] = n.Int64()
	}
	return out
}

func TestBlink(t *testing.T) {
	tests := []struct {
		in   string
		want map[uint64]int64
	}{
		{"0", map[uint64]int64{1: 1}},
		{"1", map[uint64]int64{2024: 1}},
		{"2024", map[uint64]int64{20: 1, 24: 1}},
		{"10", map[uint64]int64{1: 1, 0: 1}},
		{"1000", map[uint64]int64{10: 1, 0: 1}},
		{"99 99", map[uint64]int64{9: 4}},
		{"0 1 10 99 999", map[uint64]int64{1: 2, 2024: 1, 0: 1, 9: 2, 2021976: 1}},
	}
	for _, tt := range tests {
		s, err := ParseStones(tt.in)
		require.NoError(t, err)
		got, err := Blink(s)
		require.NoError(t, err)
		assert.Equal(t, tt.want, counts(got), "Blink(%s)", tt.in)
	}
}

func TestBlinkDoesNotAlias(t *testing.T) {
	s, err := ParseStones("0 0")
	require.NoError(t, err)
	next, err := Blink(s)
	require.NoError(t, err)
	next[1].Add(next[1], big.NewInt(5))
	assert.Equal(t, int64(2), s.Count(0).Int64())
	assert.Equal(t, int64(7), next.Count(1).Int64())
	assert.Equal(t, int64(0), next.Count(0).Int64())
}

func TestBlinkN(t *testing.T) {
	tests := []struct {
		n    int
		want string
	}{
		{0, "2"},
		{1, "3"},
		{6, "22"},
		{25, "55312"},
		{75, "65601038650482"},
	}
	for _, tt := range tests {
		s, err := ParseStones("125 17")
		require.NoError(t, err)
		got, err := BlinkN(s, tt.n)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got.Total().String(), "BlinkN(%d)", tt.n)
	}
}

func TestBlinkGrowsPastInt64(t *testing.T) {
	s, err := ParseStones("0")
	require.NoError(t, err)
	s, err = BlinkN(s, 250)
	require.NoError(t, err)
	assert.False(t, s.Total().IsInt64())
}

func TestBlinkOverflow(t *testing.T) {
	s, err := ParseStones("1000000000000000000")
	require.NoError(t, err)
	_, err = Blink(s)
	assert.ErrorIs(t, err, ErrOverflow)
	_, err = BlinkN(s, 3)
	assert.ErrorIs(t, err, ErrOverflow)
}

func TestParseStones(t *testing.T) {
	s, err := ParseStones(" 125 17 125\n")
	require.NoError(t, err)
	assert.Equal(t, map[uint64]int64{125: 2, 17: 1}, counts(s))

	_, err = ParseStones("1 -2")
	assert.ErrorIs(t, err, ErrInvalidInput)
	empty, err := ParseStones("")
	require.NoError(t, err)
	assert.Equal(t, "0", empty.Total().String())
}

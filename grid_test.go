package aoc

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseGrid(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    Grid[int]
		wantErr bool
	}{
		{name: "square", in: "12\n34\n", want: Grid[int]{{1, 2}, {3, 4}}},
		{name: "crlf", in: "12\r\n34\r\n", want: Grid[int]{{1, 2}, {3, 4}}},
		{name: "single", in: "7", want: Grid[int]{{7}}},
		{name: "empty", in: "\n\n", wantErr: true},
		{name: "ragged", in: "123\n45\n", wantErr: true},
		{name: "not-digit", in: "12\n3x\n", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DigitGrid(tt.in)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidInput) {
					t.Fatalf("DigitGrid(%q) error = %v, want ErrInvalidInput", tt.in, err)
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("DigitGrid(%q) mismatch (-want +got):\n%s", tt.in, diff)
			}
		})
	}
}

func TestNeighbors4(t *testing.T) {
	g := MakeGrid[int](3, 3)
	tests := []struct {
		p    Pt
		want []Pt
	}{
		{Pt{1, 1}, []Pt{{1, 0}, {2, 1}, {1, 2}, {0, 1}}},
		{Pt{0, 0}, []Pt{{1, 0}, {0, 1}}},
		{Pt{2, 2}, []Pt{{2, 1}, {1, 2}}},
		{Pt{2, 0}, []Pt{{2, 1}, {1, 0}}},
	}
	for _, tt := range tests {
		if diff := cmp.Diff(tt.want, g.Neighbors4(tt.p)); diff != "" {
			t.Errorf("Neighbors4(%v) mismatch (-want +got):\n%s", tt.p, diff)
		}
	}
}

func TestInBounds(t *testing.T) {
	g := MakeGrid[rune](4, 2)
	assert.Equal(t, Pt{4, 2}, g.Size())
	assert.True(t, g.InBounds(Pt{3, 1}))
	assert.False(t, g.InBounds(Pt{4, 1}))
	assert.False(t, g.InBounds(Pt{0, -1}))
	_, ok := g.Get(0, 2)
	assert.False(t, ok)
	assert.False(t, Grid[int](nil).InBounds(Pt{}))
}

func TestFind(t *testing.T) {
	g, err := RuneGrid("..S\nS..\n")
	require.NoError(t, err)
	isS := func(r rune) bool { return r == 'S' }

	p, ok := g.Find(isS)
	require.True(t, ok)
	assert.Equal(t, Pt{2, 0}, p)
	assert.Equal(t, []Pt{{2, 0}, {0, 1}}, g.FindAll(isS))

	_, ok = g.Find(func(r rune) bool { return r == 'E' })
	assert.False(t, ok)
}

func TestScoped(t *testing.T) {
	g, err := RuneGrid("...\n...\n")
	require.NoError(t, err)
	before := g.Hash()
	p := Pt{1, 1}

	err = g.Scoped(p, '#', func() error {
		assert.Equal(t, '#', g.At(p))
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, before, g.Hash())

	boom := errors.New("boom")
	err = g.Scoped(p, '#', func() error { return boom })
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, before, g.Hash())

	assert.Panics(t, func() {
		g.Scoped(p, '#', func() error { panic("boom") })
	})
	assert.Equal(t, '.', g.At(p))
	assert.Equal(t, before, g.Hash())
}

func TestHash(t *testing.T) {
	g, err := RuneGrid("ab\ncd\n")
	require.NoError(t, err)
	c := g.Clone()
	assert.Equal(t, g.Hash(), c.Hash())
	c.Set(Pt{0, 0}, 'z')
	assert.NotEqual(t, g.Hash(), c.Hash())
	assert.Equal(t, 'a', g.At(Pt{0, 0}))
}

func TestDirection(t *testing.T) {
	for _, d := range Directions {
		if got := d.Turn(true).Turn(false); got != d {
			t.Errorf("%v right then left = %v", d, got)
		}
		if got := d.Reverse().Reverse(); got != d {
			t.Errorf("%v reversed twice = %v", d, got)
		}
		if got := d.Delta().Add(d.Reverse().Delta()); got != (Pt{}) {
			t.Errorf("%v delta plus reverse = %v", d, got)
		}
		r := []rune(d.String())[0]
		if got, ok := ParseDirection(r); !ok || got != d {
			t.Errorf("ParseDirection(%q) = %v, %v; want %v", r, got, ok, d)
		}
	}
	assert.Equal(t, Right, Up.Turn(true))
	assert.Equal(t, Left, Up.Turn(false))
	assert.Equal(t, Pt{0, -1}, Up.Delta())
	_, ok := ParseDirection('x')
	assert.False(t, ok)
}

func TestMove(t *testing.T) {
	g := MakeGrid[int](2, 2)
	p, ok := g.Move(Path{Pt{0, 0}, Right})
	require.True(t, ok)
	assert.Equal(t, Path{Pt{1, 0}, Right}, p)
	_, ok = g.Move(p)
	assert.False(t, ok)
}

func TestWrap(t *testing.T) {
	size := Pt{11, 7}
	tests := []struct {
		in, want Pt
	}{
		{Pt{0, 0}, Pt{0, 0}},
		{Pt{11, 7}, Pt{0, 0}},
		{Pt{-1, -1}, Pt{10, 6}},
		{Pt{-23, 15}, Pt{10, 1}},
	}
	for _, tt := range tests {
		if got := Wrap(tt.in, size); got != tt.want {
			t.Errorf("Wrap(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestMDist(t *testing.T) {
	assert.Equal(t, 7, Pt{1, 2}.MDist(Pt{-2, 6}))
	assert.Equal(t, int8(3), Pt2[int8]{0, 0}.MDist(Pt2[int8]{-1, 2}))
}

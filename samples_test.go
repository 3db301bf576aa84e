package aoc

import (
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSample(t *testing.T) {
	tests := []struct {
		comment   string
		want      string
		wantInput string
	}{
		{
			comment: `/*
want=1

some-input
*/`,
			want:      "1",
			wantInput: "some-input\n",
		},
		{
			comment: `/*
want=1234

multi-line-input
other-line

after-blank
*/`,
			want:      "1234",
			wantInput: "multi-line-input\nother-line\n\nafter-blank\n",
		},
		{
			comment: "// want=42",
			want:    "42",
		},
	}
	for _, tt := range tests {
		want, input, ok := parseSample(tt.comment)
		if !ok || want != tt.want || input != tt.wantInput {
			t.Errorf("parseSample(%q) = %q, %q, %v; want %q, %q", tt.comment, want, input, ok, tt.want, tt.wantInput)
		}
	}
	if _, _, ok := parseSample("// Part1 sums the thing."); ok {
		t.Error("parseSample matched a plain comment")
	}
}

const day07Src = `package days

type day07 struct{}

// Part1 adds things up.
/*
want=3749

190: 10 19
*/
func (day07) Part1(in string) (any, error) { return nil, nil }

// helper has a sample-looking comment but is not a part.
// want=0
func helper() {}

// want=11387
func (d *day07) Part2(in string) (any, error) { return nil, nil }

type other struct{}

// want=5
func (other) Part1(in string) (any, error) { return nil, nil }
`

func TestExtractSamples(t *testing.T) {
	got, err := ExtractSamples("day07.go", []byte(day07Src))
	require.NoError(t, err)
	want := []Sample{
		{Day: 7, Part: 1, Want: "3749", Input: "190: 10 19\n"},
		{Day: 7, Part: 2, Want: "11387", Input: "190: 10 19\n"},
	}
	assert.Equal(t, want, got)

	_, err = ExtractSamples("bad.go", []byte("package days\nfunc {"))
	assert.Error(t, err)

	_, err = ExtractSamples("day01.go", []byte("package days\n\n// want=1\nfunc (day01) Part1() {}\n"))
	assert.ErrorContains(t, err, "no input")
}

func TestExtractSamplesFS(t *testing.T) {
	fsys := fstest.MapFS{
		"day07.go": {Data: []byte(day07Src)},
		"day02.go": {Data: []byte("package days\n\n/*\nwant=2\n\n7 6 4\n*/\nfunc (day02) Part1() {}\n")},
		"notes.md": {Data: []byte("want=9")},
	}
	got, err := ExtractSamplesFS(fsys, "day*.go")
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, Sample{Day: 2, Part: 1, Want: "2", Input: "7 6 4\n"}, got[0])
	assert.Equal(t, 7, got[2].Day)
}

func TestLoadSamples(t *testing.T) {
	samples, err := LoadSamples([]byte(`
- day: 1
  part: 1
  want: "6"
  input: &one |
    1 2
    3
- day: 1
  part: 2
  want: "10"
  input: *one
`))
	require.NoError(t, err)
	require.Len(t, samples, 2)
	assert.Equal(t, Sample{Day: 1, Part: 1, Want: "6", Input: "1 2\n3\n"}, samples[0])
	assert.Equal(t, samples[0].Input, samples[1].Input)

	_, err = LoadSamples([]byte("- day: 1\n  part: 3\n"))
	assert.Error(t, err)
	_, err = LoadSamples([]byte("day: [1"))
	assert.Error(t, err)
}

func TestReadSampleFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "extra.yaml")
	require.NoError(t, os.WriteFile(path, []byte("- day: 3\n  part: 2\n  want: \"0\"\n  input: \"x\"\n"), 0o644))
	got, err := ReadSampleFile(path)
	require.NoError(t, err)
	assert.Equal(t, []Sample{{Day: 3, Part: 2, Want: "0", Input: "x"}}, got)

	_, err = ReadSampleFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

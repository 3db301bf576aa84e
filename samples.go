package aoc

import (
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"io/fs"
	"os"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"
)

// Sample is a small input with a known answer, checked before the real
// input is run.
type Sample struct {
	Day   int    `yaml:"day"`
	Part  int    `yaml:"part"`
	Want  string `yaml:"want"`
	Input string `yaml:"input"`
}

var (
	sampleRx = regexp.MustCompile(`(?sm)^\s*want=([^\n]*)(?:\s+(.+\n))?\s*`)
	dayRx    = regexp.MustCompile(`^day(\d+)$`)
	partRx   = regexp.MustCompile(`^Part([12])$`)
)

// parseSample reads a comment of the form
//
//	/*
//	want=<answer>
//
//	<input>
//	*/
//
// The input may be left out, as in a one line "// want=<answer>".
func parseSample(comment string) (want, input string, ok bool) {
	text := strings.TrimPrefix(comment, "//")
	if v, ok := strings.CutPrefix(text, "/*"); ok {
		text = strings.TrimSuffix(v, "*/")
	}
	m := sampleRx.FindStringSubmatch(text)
	if m == nil {
		return "", "", false
	}
	return strings.TrimSpace(m[1]), m[2], true
}

// receiverName returns the type name of fd's receiver, or "".
func receiverName(fd *ast.FuncDecl) string {
	if fd.Recv == nil || len(fd.Recv.List) != 1 {
		return ""
	}
	t := fd.Recv.List[0].Type
	if st, ok := t.(*ast.StarExpr); ok {
		t = st.X
	}
	if id, ok := t.(*ast.Ident); ok {
		return id.Name
	}
	return ""
}

// ExtractSamples collects the samples documented on the Part1 and Part2
// methods of dayNN types in a Go source file. A sample without input reuses
// the input of the previous sample in the file.
func ExtractSamples(name string, src []byte) ([]Sample, error) {
	f, err := parser.ParseFile(token.NewFileSet(), name, src, parser.ParseComments)
	if err != nil {
		return nil, fmt.Errorf("parsing %s to extract samples: %w", name, err)
	}
	var (
		out       []Sample
		lastInput string
	)
	for _, d := range f.Decls {
		fd, ok := d.(*ast.FuncDecl)
		if !ok || fd.Doc == nil {
			continue
		}
		dm := dayRx.FindStringSubmatch(receiverName(fd))
		pm := partRx.FindStringSubmatch(fd.Name.Name)
		if dm == nil || pm == nil {
			continue
		}
		for _, c := range fd.Doc.List {
			want, input, ok := parseSample(c.Text)
			if !ok {
				continue
			}
			if input == "" {
				input = lastInput
			}
			if input == "" {
				return nil, fmt.Errorf("%s: %s.%s: sample has no input", name, dm[0], pm[0])
			}
			lastInput = input
			day, err := Int(dm[1])
			if err != nil {
				return nil, err
			}
			out = append(out, Sample{Day: day, Part: int(pm[1][0] - '0'), Want: want, Input: input})
			break
		}
	}
	return out, nil
}

// ExtractSamplesFS runs ExtractSamples over every file in fsys matching
// pattern.
func ExtractSamplesFS(fsys fs.FS, pattern string) ([]Sample, error) {
	names, err := fs.Glob(fsys, pattern)
	if err != nil {
		return nil, err
	}
	var out []Sample
	for _, name := range names {
		src, err := fs.ReadFile(fsys, name)
		if err != nil {
			return nil, err
		}
		s, err := ExtractSamples(name, src)
		if err != nil {
			return nil, err
		}
		out = append(out, s...)
	}
	return out, nil
}

// LoadSamples decodes a YAML list of samples.
func LoadSamples(data []byte) ([]Sample, error) {
	var out []Sample
	if err := yaml.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("decoding samples: %w", err)
	}
	for i, s := range out {
		if s.Day == 0 || s.Part < 1 || s.Part > 2 {
			return nil, fmt.Errorf("sample %d: bad day/part %d/%d", i, s.Day, s.Part)
		}
	}
	return out, nil
}

// ReadSampleFile loads samples from a YAML file.
func ReadSampleFile(path string) ([]Sample, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	s, err := LoadSamples(b)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// Package aoc holds the grid and search helpers shared by the 2024 Advent of
// Code solutions, and the runner that times and prints their answers.
package aoc

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"text/tabwriter"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"golang.org/x/exp/maps"
)

// Solver solves one day. Parse turns the raw input into T; each part is
// handed a freshly parsed value so parts may mutate it.
type Solver[T any] interface {
	Parse(input string) (T, error)
	Part1(in T) (any, error)
	Part2(in T) (any, error)
}

// Puzzle is a registered day with its solver type erased.
type Puzzle struct {
	Day  int
	Name string

	parts [2]func(input string) (any, error)
}

// NewPuzzle registers s as the solver for day.
func NewPuzzle[T any](day int, name string, s Solver[T]) Puzzle {
	wrap := func(part func(T) (any, error)) func(string) (any, error) {
		return func(input string) (any, error) {
			in, err := s.Parse(input)
			if err != nil {
				return nil, err
			}
			return part(in)
		}
	}
	return Puzzle{
		Day:   day,
		Name:  name,
		parts: [2]func(string) (any, error){wrap(s.Part1), wrap(s.Part2)},
	}
}

// Solve parses input and runs the given part (1 or 2).
func (p Puzzle) Solve(part int, input string) (any, error) {
	if part < 1 || part > 2 {
		return nil, fmt.Errorf("day %02d: no part %d", p.Day, part)
	}
	return p.parts[part-1](input)
}

// Options selects what a Runner runs.
type Options struct {
	Day        int // -1 for every day
	Part       int // 0 for both parts
	OnlySample bool
	SkipSample bool
	Debug      bool
	InputDir   string
	SampleFile string // extra samples in YAML, optional
}

// RegisterFlags binds o to fs.
func (o *Options) RegisterFlags(fs *flag.FlagSet) {
	fs.IntVar(&o.Day, "day", -1, "day to run")
	fs.IntVar(&o.Part, "part", 0, "part to run")
	fs.BoolVar(&o.OnlySample, "sample", false, "only run sample")
	fs.BoolVar(&o.SkipSample, "skip-sample", false, "skip sample")
	fs.BoolVar(&o.Debug, "debug", false, "debug mode")
	fs.StringVar(&o.InputDir, "inputs", envOr("AOC_INPUT_DIR", "inputs"), "directory holding dayNN.txt inputs")
	fs.StringVar(&o.SampleFile, "samples", os.Getenv("AOC_SAMPLES"), "YAML file of extra samples")
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// ErrSampleMismatch reports a sample whose answer differs from its want.
var ErrSampleMismatch = errors.New("sample mismatch")

// Result is one timed part.
type Result struct {
	Day     int
	Name    string
	Part    int
	Sample  bool
	Elapsed time.Duration
	Answer  any
	Err     error
}

// Runner runs puzzles and renders their results as a table.
type Runner struct {
	Puzzles []Puzzle
	Samples []Sample
	Opts    Options
	Out     io.Writer
	Log     *zerolog.Logger

	// ReadInput returns the input for a day. If nil, the input is read from
	// Opts.InputDir/dayNN.txt.
	ReadInput func(day int) (string, error)
}

func (r *Runner) log() *zerolog.Logger {
	if r.Log == nil {
		l := zerolog.Nop()
		r.Log = &l
	}
	return r.Log
}

// InputPath is the conventional location of a day's input.
func InputPath(dir string, day int) string {
	return filepath.Join(dir, fmt.Sprintf("day%02d.txt", day))
}

func (r *Runner) readInput(day int) (string, error) {
	if r.ReadInput != nil {
		return r.ReadInput(day)
	}
	path := InputPath(r.Opts.InputDir, day)
	r.log().Debug().Str("path", path).Int("day", day).Msg("reading input")
	b, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func (r *Runner) selected() ([]Puzzle, error) {
	byDay := make(map[int]Puzzle, len(r.Puzzles))
	for _, p := range r.Puzzles {
		byDay[p.Day] = p
	}
	if r.Opts.Day > 0 {
		p, ok := byDay[r.Opts.Day]
		if !ok {
			return nil, fmt.Errorf("no day %d", r.Opts.Day)
		}
		return []Puzzle{p}, nil
	}
	days := maps.Keys(byDay)
	slices.Sort(days)
	out := make([]Puzzle, 0, len(days))
	for _, d := range days {
		out = append(out, byDay[d])
	}
	return out, nil
}

func (r *Runner) parts() []int {
	if r.Opts.Part != 0 {
		return []int{r.Opts.Part}
	}
	return []int{1, 2}
}

func (r *Runner) samplesFor(day, part int) []Sample {
	var out []Sample
	for _, s := range r.Samples {
		if s.Day == day && s.Part == part {
			out = append(out, s)
		}
	}
	return out
}

func timed(p Puzzle, part int, input string) (any, time.Duration, error) {
	t0 := time.Now()
	got, err := p.Solve(part, input)
	return got, time.Since(t0), err
}

// Run runs the selected days, writes the table to Out and returns every
// failure joined. A failing day does not stop the others.
func (r *Runner) Run() ([]Result, error) {
	puzzles, err := r.selected()
	if err != nil {
		return nil, err
	}
	var (
		results []Result
		errs    []error
	)
	fail := func(res Result) {
		results = append(results, res)
		errs = append(errs, fmt.Errorf("day %02d part %d: %w", res.Day, res.Part, res.Err))
		r.log().Error().Err(res.Err).Int("day", res.Day).Int("part", res.Part).Bool("sample", res.Sample).Msg("failed")
	}

	for _, p := range puzzles {
		r.log().Debug().Int("day", p.Day).Str("name", p.Name).Msg("running day")
		var input string
		var inputErr error
		if !r.Opts.OnlySample {
			input, inputErr = r.readInput(p.Day)
		}
	parts:
		for _, part := range r.parts() {
			if !r.Opts.SkipSample {
				for _, s := range r.samplesFor(p.Day, part) {
					got, d, err := timed(p, part, s.Input)
					res := Result{Day: p.Day, Name: p.Name, Part: part, Sample: true, Elapsed: d, Answer: got, Err: err}
					if err == nil && fmt.Sprint(got) != s.Want {
						res.Err = fmt.Errorf("%w: got %v, want %v", ErrSampleMismatch, got, s.Want)
					}
					if res.Err != nil {
						fail(res)
						continue parts
					}
					results = append(results, res)
				}
			}
			if r.Opts.OnlySample {
				continue
			}
			if inputErr != nil {
				fail(Result{Day: p.Day, Name: p.Name, Part: part, Err: inputErr})
				continue
			}
			got, d, err := timed(p, part, input)
			res := Result{Day: p.Day, Name: p.Name, Part: part, Elapsed: d, Answer: got, Err: err}
			if err != nil {
				fail(res)
				continue
			}
			results = append(results, res)
		}
	}
	if r.Out != nil {
		if err := WriteTable(r.Out, results); err != nil {
			errs = append(errs, err)
		}
	}
	return results, errors.Join(errs...)
}

// WriteTable renders results with one row per part.
func WriteTable(w io.Writer, results []Result) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "DAY\tNAME\tPART\tTIME\tRESULT")
	for _, res := range results {
		part := fmt.Sprint(res.Part)
		if res.Sample {
			part += " (sample)"
		}
		answer := fmt.Sprint(res.Answer)
		switch {
		case res.Err != nil:
			answer = "❌ " + res.Err.Error()
		case res.Sample:
			answer += " ✅"
		}
		fmt.Fprintf(tw, "%02d\t%s\t%s\t%v\t%s\n", res.Day, res.Name, part, res.Elapsed.Round(time.Microsecond), answer)
	}
	return tw.Flush()
}

// Main loads .env, parses flags and runs puzzles, exiting non-zero if any
// part fails.
func Main(puzzles []Puzzle, samples []Sample) {
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}).With().Timestamp().Logger()
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		logger.Warn().Err(err).Msg("loading .env")
	}

	var opts Options
	opts.RegisterFlags(flag.CommandLine)
	flag.Parse()

	level := zerolog.InfoLevel
	if opts.Debug {
		level = zerolog.DebugLevel
	}
	logger = logger.Level(level)

	if opts.SampleFile != "" {
		extra, err := ReadSampleFile(opts.SampleFile)
		if err != nil {
			logger.Fatal().Err(err).Msg("loading samples")
		}
		logger.Debug().Int("count", len(extra)).Str("path", opts.SampleFile).Msg("extra samples")
		samples = append(samples, extra...)
	}

	r := &Runner{
		Puzzles: puzzles,
		Samples: samples,
		Opts:    opts,
		Out:     os.Stdout,
		Log:     &logger,
	}
	if _, err := r.Run(); err != nil {
		logger.Fatal().Err(err).Msg("run failed")
	}
}

// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Command psrs benchmarks Parallel Sorting by Regular Sampling against a
// sequential quicksort baseline over a pseudorandom array of int64s.
//
// Usage:
//
//	psrs [-b] [-p] -l LENGTH -r RUNS -s SEED -t THREADS -w WINDOW
package main

import (
	"context"
	"encoding/binary"
	"fmt"
	"math"
	"os"

	"github.com/spf13/pflag"

	"github.com/ajroetker/go-psrs/psrs"
)

type cliArgs struct {
	binary   bool
	perPhase bool
	length   int
	runs     int
	seed     uint64
	threads  int
	window   int
}

func main() {
	args, err := parseArgs(os.Args[0], os.Args[1:])
	if err == errHelpRequested {
		usage(os.Args[0])
		os.Exit(1)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n\n", err)
		usage(os.Args[0])
		os.Exit(1)
	}

	result, err := psrs.RunBench(context.Background(), psrs.BenchConfig{
		Length:   args.length,
		Runs:     args.runs,
		Seed:     args.seed,
		Window:   args.window,
		Workers:  args.threads,
		PerPhase: args.perPhase,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if err := writeResult(os.Stdout, result, args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// errHelpRequested signals that -h/--help was passed; main prints usage
// without an "Error:" prefix and still exits non-zero, per spec.
var errHelpRequested = fmt.Errorf("help requested")

func parseArgs(progName string, argv []string) (cliArgs, error) {
	fs := pflag.NewFlagSet(progName, pflag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	fs.Usage = func() {}

	var args cliArgs
	help := fs.BoolP("help", "h", false, "show this help message and exit")
	fs.BoolVarP(&args.binary, "binary", "b", false, "emit raw little-endian float64 output instead of human-readable")
	fs.BoolVarP(&args.perPhase, "phase", "p", false, "emit per-phase mean timings instead of total mean + stdev")
	length := fs.IntP("length", "l", 0, "length of the array to sort (required, > 0)")
	runs := fs.IntP("run", "r", 0, "number of timed runs (required, > 0)")
	seed := fs.Uint64P("seed", "s", 0, "seed for the pseudorandom generator (required, > 0)")
	threads := fs.IntP("thread", "t", 0, "number of worker ranks to launch (required, > 0)")
	window := fs.IntP("window", "w", 0, "moving-window size, 1 <= window <= run (required)")

	if err := fs.Parse(argv); err != nil {
		return cliArgs{}, err
	}
	if *help {
		return cliArgs{}, errHelpRequested
	}

	args.length = *length
	args.runs = *runs
	args.seed = *seed
	args.threads = *threads
	args.window = *window

	if args.length <= 0 {
		return cliArgs{}, fmt.Errorf("%w: --length must be > 0", psrs.ErrConfigInvalid)
	}
	if math.MaxInt/8 < args.length {
		return cliArgs{}, fmt.Errorf("%w: --length too large, would overflow on allocation", psrs.ErrConfigInvalid)
	}
	if args.runs <= 0 {
		return cliArgs{}, fmt.Errorf("%w: --run must be > 0", psrs.ErrConfigInvalid)
	}
	if args.seed == 0 {
		return cliArgs{}, fmt.Errorf("%w: --seed must be > 0", psrs.ErrConfigInvalid)
	}
	if args.threads <= 0 {
		return cliArgs{}, fmt.Errorf("%w: --thread must be > 0", psrs.ErrConfigInvalid)
	}
	if args.window <= 0 {
		return cliArgs{}, fmt.Errorf("%w: --window must be >= 1", psrs.ErrConfigInvalid)
	}
	if args.window > args.runs {
		return cliArgs{}, fmt.Errorf("%w: --window must be <= --run", psrs.ErrConfigInvalid)
	}

	return args, nil
}

func writeResult(w *os.File, result psrs.BenchResult, args cliArgs) error {
	if args.perPhase {
		p := result.PhaseMeans
		if args.binary {
			return writeBinary(w, p[0], p[1], p[2], p[3])
		}
		fmt.Fprintln(w, "Phase 1, Phase 2, Phase 3, Phase 4")
		fmt.Fprintf(w, "%f, %f, %f, %f\n", p[0], p[1], p[2], p[3])
		return nil
	}

	if args.binary {
		return writeBinary(w, result.Mean, result.Stdev)
	}
	fmt.Fprintln(w, "Mean Sorting Time, Standard Deviation")
	fmt.Fprintf(w, "%f, %f\n", result.Mean, result.Stdev)
	return nil
}

func writeBinary(w *os.File, values ...float64) error {
	for _, v := range values {
		if err := binary.Write(w, binary.LittleEndian, v); err != nil {
			return err
		}
	}
	return nil
}

func usage(progName string) {
	fmt.Fprintf(os.Stderr, `Usage:
  %s [-h] [-b] [-p] -l LENGTH -r RUNS -s SEED -t THREADS -w WINDOW

Optional Arguments:
  -b, --binary  emit raw little-endian float64 output instead of text
  -p, --phase   emit per-phase mean timings (4 values) instead of total mean + stdev (2 values)
  -h, --help    show this help message and exit

Required Arguments:
  -l, --length  length of the array to be sorted
  -r, --run     number of runs
  -s, --seed    seed for the pseudorandom generator
  -t, --thread  number of worker ranks to launch
  -w, --window  window size of the moving average (<= --run)
`, progName)
}

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

package psrs

import (
	"context"
	"fmt"

	"github.com/ajroetker/go-psrs/psrs/internal/prng"
)

// BenchConfig parameterizes one benchmark: Runs independent invocations
// of PSRS (or, when Workers == 1, the sequential baseline) over an array
// of Length elements freshly regenerated from Seed before every run, fed
// into a moving window of size Window.
type BenchConfig struct {
	Length   int
	Runs     int
	Seed     uint64
	Window   int
	Workers  int
	PerPhase bool
}

// BenchResult holds whichever statistics BenchConfig.PerPhase selected:
// either Mean and Stdev of total run time, or PhaseMeans for each of the
// four PSRS phases (meaningless, left zero, when Workers == 1).
type BenchResult struct {
	Mean       float64
	Stdev      float64
	PhaseMeans PhaseTimes
}

// RunBench runs cfg.Runs timed invocations and reports the moving-window
// statistics over the most recent cfg.Window of them. It fails with
// ErrConfigInvalid if Runs, Window, or Length are non-positive, or if
// Window > Runs.
func RunBench(ctx context.Context, cfg BenchConfig) (BenchResult, error) {
	if cfg.Length <= 0 || cfg.Runs <= 0 || cfg.Window <= 0 || cfg.Window > cfg.Runs {
		return BenchResult{}, ErrConfigInvalid
	}

	totalWindow, err := NewMovingWindow(cfg.Window)
	if err != nil {
		return BenchResult{}, err
	}
	var phaseWindows [4]*MovingWindow
	if cfg.PerPhase {
		for i := range phaseWindows {
			phaseWindows[i], err = NewMovingWindow(cfg.Window)
			if err != nil {
				return BenchResult{}, err
			}
		}
	}

	for run := 0; run < cfg.Runs; run++ {
		input, err := prng.Generate(cfg.Seed, cfg.Length)
		if err != nil {
			return BenchResult{}, fmt.Errorf("bench: generating run %d input: %w", run, err)
		}

		if cfg.Workers == 1 {
			_, elapsed := RunSequential(input)
			totalWindow.Push(elapsed)
			continue
		}

		_, times, err := RunParallel(ctx, input, cfg.Workers)
		if err != nil {
			return BenchResult{}, fmt.Errorf("bench: run %d: %w", run, err)
		}
		if cfg.PerPhase {
			for phase := 0; phase < 4; phase++ {
				phaseWindows[phase].Push(times[phase])
			}
		} else {
			totalWindow.Push(times.Total())
		}
	}

	var result BenchResult
	if cfg.PerPhase && cfg.Workers != 1 {
		for phase := 0; phase < 4; phase++ {
			result.PhaseMeans[phase], err = phaseWindows[phase].Mean()
			if err != nil {
				return BenchResult{}, err
			}
		}
		return result, nil
	}

	result.Mean, err = totalWindow.Mean()
	if err != nil {
		return BenchResult{}, err
	}
	result.Stdev, err = totalWindow.Stdev()
	if err != nil {
		return BenchResult{}, err
	}
	return result, nil
}

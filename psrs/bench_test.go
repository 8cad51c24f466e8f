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
	"testing"
)

func TestRunBenchRejectsBadConfig(t *testing.T) {
	cases := []BenchConfig{
		{Length: 0, Runs: 1, Seed: 1, Window: 1, Workers: 1},
		{Length: 10, Runs: 0, Seed: 1, Window: 1, Workers: 1},
		{Length: 10, Runs: 1, Seed: 1, Window: 0, Workers: 1},
		{Length: 10, Runs: 2, Seed: 1, Window: 3, Workers: 1},
	}
	for i, cfg := range cases {
		if _, err := RunBench(context.Background(), cfg); err != ErrConfigInvalid {
			t.Errorf("case %d: err = %v, want ErrConfigInvalid", i, err)
		}
	}
}

func TestRunBenchSequentialSingleRun(t *testing.T) {
	// Scenario (c): N=1, P=1, R=1, W=1 — mean equals the measured
	// elapsed time, stdev is zero (a single-sample window).
	result, err := RunBench(context.Background(), BenchConfig{
		Length: 1, Runs: 1, Seed: 7, Window: 1, Workers: 1,
	})
	if err != nil {
		t.Fatalf("RunBench: %v", err)
	}
	if result.Mean < 0 {
		t.Errorf("Mean = %v, want >= 0", result.Mean)
	}
	if result.Stdev != 0 {
		t.Errorf("Stdev = %v, want 0 for a single-sample window", result.Stdev)
	}
}

func TestRunBenchParallelTotalTime(t *testing.T) {
	result, err := RunBench(context.Background(), BenchConfig{
		Length: 2000, Runs: 5, Seed: 123, Window: 3, Workers: 4,
	})
	if err != nil {
		t.Fatalf("RunBench: %v", err)
	}
	if result.Mean <= 0 {
		t.Errorf("Mean = %v, want > 0", result.Mean)
	}
	if result.Stdev < 0 {
		t.Errorf("Stdev = %v, want >= 0", result.Stdev)
	}
}

func TestRunBenchPerPhase(t *testing.T) {
	result, err := RunBench(context.Background(), BenchConfig{
		Length: 2000, Runs: 5, Seed: 123, Window: 3, Workers: 4, PerPhase: true,
	})
	if err != nil {
		t.Fatalf("RunBench: %v", err)
	}
	for i, phase := range result.PhaseMeans {
		if phase < 0 {
			t.Errorf("PhaseMeans[%d] = %v, want >= 0", i, phase)
		}
	}
}

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
	"slices"
)

// PhaseTimes holds elapsed wall-clock seconds for each of PSRS's four
// phases, measured at rank 0: local sort + sampling, pivot selection +
// partition formation, the all-to-all exchange, and the k-way merge.
type PhaseTimes [4]float64

// Total returns the sum of all four phases' elapsed time.
func (p PhaseTimes) Total() float64 {
	return p[0] + p[1] + p[2] + p[3]
}

// RunParallel executes one PSRS run over input across p ranks and returns
// the final sorted array along with the elapsed time of each phase. It
// fails with ErrConfigInvalid if p <= 0, and propagates any error a rank
// returns (allocation, protocol, or precondition failures), which aborts
// every other rank's run.
func RunParallel(ctx context.Context, input []int64, p int) ([]int64, PhaseTimes, error) {
	if p <= 0 {
		return nil, PhaseTimes{}, ErrConfigInvalid
	}

	chunks := splitChunks(input, p)
	totalN := len(input)

	var times PhaseTimes
	var sorted []int64

	err := RunWorkers(ctx, p, func(_ context.Context, rank int, group *WorkerGroup) error {
		chunk := slices.Clone(chunks[rank])

		var t0, t1, t2, t3, t4 float64

		if err := group.Barrier(); err != nil {
			return err
		}
		if rank == 0 {
			t0 = Now()
		}

		// Phase 1: sort the local chunk, then draw regular samples from it.
		slices.Sort(chunk)
		samples := regularSamples(chunk, totalN, p)

		if err := group.Barrier(); err != nil {
			return err
		}
		if rank == 0 {
			t1 = Now()
		}

		// Phase 2: gather samples at rank 0, pick pivots, broadcast them,
		// then every rank partitions its own chunk at those pivots.
		gatheredSamples, err := group.Gather(0, rank, samples)
		if err != nil {
			return err
		}
		var pivots []int64
		if rank == 0 {
			var allSamples []int64
			for _, s := range gatheredSamples {
				allSamples = append(allSamples, s...)
			}
			pivots, err = selectPivots(allSamples, p)
			if err != nil {
				return err
			}
		}
		pivots, err = group.Bcast(0, rank, pivots)
		if err != nil {
			return err
		}
		local := partitionChunk(chunk, pivots)

		if err := group.Barrier(); err != nil {
			return err
		}
		if rank == 0 {
			t2 = Now()
		}

		// Phase 3: all-to-all exchange, every rank ends up owning its
		// partition index across every other rank's chunk.
		received, err := exchangeAll(rank, local, group)
		if err != nil {
			return err
		}

		if err := group.Barrier(); err != nil {
			return err
		}
		if rank == 0 {
			t3 = Now()
		}

		// Phase 4: merge the received partitions into one sorted run,
		// then gather every rank's run back to rank 0 for concatenation.
		merged := mergePartitions(received)
		runs, err := group.Gather(0, rank, merged)
		if err != nil {
			return err
		}
		if rank == 0 {
			var out []int64
			for _, run := range runs {
				out = append(out, run...)
			}
			sorted = out
		}

		if err := group.Barrier(); err != nil {
			return err
		}
		if rank == 0 {
			t4 = Now()
			times = PhaseTimes{t1 - t0, t2 - t1, t3 - t2, t4 - t3}
		}
		return nil
	})
	if err != nil {
		return nil, PhaseTimes{}, err
	}
	return sorted, times, nil
}

// RunSequential executes one run of a library quicksort over input,
// timed as a single total-elapsed value — the P == 1 baseline the
// parallel run is compared against.
func RunSequential(input []int64) (sorted []int64, elapsed float64) {
	data := slices.Clone(input)
	t0 := Now()
	slices.Sort(data)
	t1 := Now()
	return data, t1 - t0
}

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

// Package prng is the input generator collaborator: a seeded,
// reproducible stream of non-negative int64s standing in for the
// original implementation's srandom(3)/random(3) sequence. It is treated
// as an opaque generate(seed, n) -> []int64 by the rest of this
// repository — its exact output values are not part of PSRS's contract,
// only that they are deterministic given (seed, n).
package prng

import "fmt"

// A 64-bit LCG with the constants from Knuth's MMIX generator: good
// spectral properties, single multiply-add per draw, no internal state
// beyond the last value.
const (
	multiplier uint64 = 6364136223846793005
	increment  uint64 = 1442695040888963407
)

// Generate returns n non-negative int64s derived deterministically from
// seed: calling Generate with the same (seed, n) always returns the same
// sequence. It fails with an error if n is negative.
func Generate(seed uint64, n int) ([]int64, error) {
	if n < 0 {
		return nil, fmt.Errorf("prng: negative length %d", n)
	}
	out := make([]int64, n)
	state := seed
	for i := range out {
		state = state*multiplier + increment
		// Shift right by one so the sign bit is always clear and every value
		// is non-negative, matching
		// the original generator's use of random() (which never returns
		// negative values on glibc).
		out[i] = int64(state >> 1)
	}
	return out, nil
}

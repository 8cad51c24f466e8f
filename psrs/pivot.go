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
	"fmt"
	"slices"
)

// regularSamples picks up to p regular samples from a rank's sorted chunk
// at stride w = totalN/p^2 (computed from the full array length, not the
// chunk's own length), per Phase 1.2. A short last chunk (len(sorted) <
// p) yields fewer than p samples — exactly len(sorted) of them, one per
// element, since the stride would otherwise run past the chunk.
func regularSamples(sorted []int64, totalN, p int) []int64 {
	n := len(sorted)
	if n == 0 || p <= 0 {
		return nil
	}
	if n < p {
		out := make([]int64, n)
		copy(out, sorted)
		return out
	}
	stride := totalN / (p * p)
	if stride == 0 {
		stride = 1
	}
	samples := make([]int64, 0, p)
	for i := 0; i < p; i++ {
		idx := i * stride
		if idx >= n {
			break
		}
		samples = append(samples, sorted[idx])
	}
	return samples
}

// selectPivots sorts the gathered samples and picks the p-1 pivots at
// indices k*p + rho for k = 1..p-1, rho = floor(p/2), per Phase 2.2. It
// fails with ErrProtocolViolation if fewer than p-1 pivots can be drawn
// from the sample set (a pathologically small input).
func selectPivots(samples []int64, p int) ([]int64, error) {
	if p <= 1 {
		return nil, nil
	}
	sorted := slices.Clone(samples)
	slices.Sort(sorted)

	rho := p / 2
	pivots := make([]int64, 0, p-1)
	for k := 1; k < p; k++ {
		idx := k*p + rho
		if idx >= len(sorted) {
			return nil, fmt.Errorf("%w: need %d pivots from %d samples, only have enough for %d",
				ErrProtocolViolation, p-1, len(sorted), len(pivots))
		}
		pivots = append(pivots, sorted[idx])
	}
	if len(pivots) != p-1 {
		return nil, fmt.Errorf("%w: selected %d pivots, want %d", ErrProtocolViolation, len(pivots), p-1)
	}
	return pivots, nil
}

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

import "github.com/samber/lo"

// splitChunks splits data into p contiguous chunks of ceil(len(data)/p)
// elements, with the last chunk possibly shorter. It is the scatter step
// of Phase 1, realized locally since rank 0 holds the full array before
// the run's goroutines are handed their slice.
func splitChunks(data []int64, p int) [][]int64 {
	if p <= 0 || len(data) == 0 {
		return nil
	}
	chunkSize := (len(data) + p - 1) / p
	chunks := lo.Chunk(data, chunkSize)
	// lo.Chunk stops once data is exhausted; a short final chunk can leave
	// fewer than p chunks when p does not evenly divide len(data) across
	// all but the last rank. Pad with empty chunks so callers can always
	// index [0, p).
	for len(chunks) < p {
		chunks = append(chunks, nil)
	}
	return chunks
}

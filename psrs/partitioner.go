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

import "sort"

// partitionChunk splits a rank's sorted chunk into len(pivots)+1
// partitions at the given non-decreasing pivots, per Phase 2.3. Each
// partition is a view (Owned == false) into chunk; no element is copied.
//
// For each pivot in order, an upper-bound binary search over the
// remaining suffix locates the first index whose element exceeds the
// pivot. If that index is the very first element of the suffix (every
// remaining element exceeds the pivot), the rule in spec is applied: the
// partition is forced to contain exactly that first element, so later
// pivots still have something to work with. The final partition takes
// whatever remains.
func partitionChunk(chunk []int64, pivots []int64) PartitionBlock {
	block := PartitionBlock{Partitions: make([]Partition, 0, len(pivots)+1)}
	offset := 0
	for _, pivot := range pivots {
		suffix := chunk[offset:]
		end := sort.Search(len(suffix), func(i int) bool {
			return suffix[i] > pivot
		})
		if end == 0 && len(suffix) > 0 {
			end = 1
		}
		block.Partitions = append(block.Partitions, Partition{Data: chunk[offset : offset+end]})
		offset += end
	}
	block.Partitions = append(block.Partitions, Partition{Data: chunk[offset:]})
	return block
}

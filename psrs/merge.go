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

// mergeTwo merges two sorted slices into a freshly allocated slice of
// size len(left)+len(right), using the two-way merge of CME 323 Lecture 3
// §2 Algorithm 2: advance whichever of the two heads is smaller, then
// flush whichever side still has elements left.
func mergeTwo(left, right []int64) []int64 {
	out := make([]int64, 0, len(left)+len(right))
	l, r := 0, 0
	for l < len(left) && r < len(right) {
		if left[l] < right[r] {
			out = append(out, left[l])
			l++
		} else {
			out = append(out, right[r])
			r++
		}
	}
	out = append(out, left[l:]...)
	out = append(out, right[r:]...)
	return out
}

// mergePartitions k-way merges a block's partitions into a single sorted
// run, per Phase 4, by repeated pairwise merging: the running result
// starts as the first partition's data and is folded together with each
// subsequent partition in turn.
func mergePartitions(block PartitionBlock) []int64 {
	if len(block.Partitions) == 0 {
		return nil
	}
	running := block.Partitions[0].Data
	for _, p := range block.Partitions[1:] {
		running = mergeTwo(running, p.Data)
	}
	return running
}

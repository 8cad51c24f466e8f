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

// Partition is a contiguous run of sorted int64s. Owned distinguishes a
// view into someone else's backing array (Owned == false, e.g. a slice
// carved out of a rank's chunk by the Partitioner) from an independently
// allocated copy (Owned == true, e.g. the Exchanger's received data) — the
// tagged-variant realization of the source's clean/borrowed discipline.
// Nothing in this package reads the flag; it only records which of the two
// a partition is, since Go's GC removes any need for an explicit destructor.
type Partition struct {
	Data  []int64
	Owned bool
}

// PartitionBlock is an ordered sequence of exactly P Partitions. When
// formed by the Partitioner it covers one rank's chunk contiguously, with
// no gaps or overlaps; when formed by the Exchanger it holds the i-th
// partition received from every rank.
type PartitionBlock struct {
	Partitions []Partition
}

// Size returns the total element count across all partitions in the
// block.
func (b PartitionBlock) Size() int {
	total := 0
	for _, p := range b.Partitions {
		total += len(p.Data)
	}
	return total
}

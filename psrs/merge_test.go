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
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestMergeTwo(t *testing.T) {
	left := []int64{1, 3, 5, 9}
	right := []int64{2, 4, 6, 7, 8}

	got := mergeTwo(left, right)
	want := []int64{1, 2, 3, 4, 5, 6, 7, 8, 9}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("mergeTwo mismatch (-want +got):\n%s", diff)
	}
}

func TestMergeTwoEmptySide(t *testing.T) {
	got := mergeTwo(nil, []int64{1, 2, 3})
	if diff := cmp.Diff([]int64{1, 2, 3}, got); diff != "" {
		t.Errorf("mergeTwo mismatch (-want +got):\n%s", diff)
	}
}

func TestMergePartitionsKWay(t *testing.T) {
	block := PartitionBlock{Partitions: []Partition{
		{Data: []int64{5, 10, 15}, Owned: true},
		{Data: []int64{1, 2, 3}, Owned: true},
		{Data: []int64{4, 11, 20}, Owned: true},
	}}

	got := mergePartitions(block)
	want := []int64{1, 2, 3, 4, 5, 10, 11, 15, 20}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("mergePartitions mismatch (-want +got):\n%s", diff)
	}
	if !slices.IsSorted(got) {
		t.Errorf("mergePartitions result %v not sorted", got)
	}
}

func TestMergePartitionsEmptyBlock(t *testing.T) {
	if got := mergePartitions(PartitionBlock{}); got != nil {
		t.Errorf("mergePartitions(empty) = %v, want nil", got)
	}
}

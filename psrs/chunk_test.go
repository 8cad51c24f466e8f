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
	"testing"
)

func TestSplitChunksEvenDivision(t *testing.T) {
	data := make([]int64, 16)
	chunks := splitChunks(data, 4)
	if len(chunks) != 4 {
		t.Fatalf("len(chunks) = %d, want 4", len(chunks))
	}
	for i, c := range chunks {
		if len(c) != 4 {
			t.Errorf("chunk %d has len %d, want 4", i, len(c))
		}
	}
}

func TestSplitChunksUnevenDivision(t *testing.T) {
	// Scenario (b): N=10, P=3 gives chunk sizes 4, 4, 2.
	data := make([]int64, 10)
	chunks := splitChunks(data, 3)
	if len(chunks) != 3 {
		t.Fatalf("len(chunks) = %d, want 3", len(chunks))
	}
	wantSizes := []int{4, 4, 2}
	for i, want := range wantSizes {
		if got := len(chunks[i]); got != want {
			t.Errorf("chunk %d has len %d, want %d", i, got, want)
		}
	}

	total := 0
	for _, c := range chunks {
		total += len(c)
	}
	if total != len(data) {
		t.Errorf("sum of chunk sizes = %d, want %d", total, len(data))
	}
}

func TestSplitChunksMoreRanksThanElements(t *testing.T) {
	data := make([]int64, 3)
	chunks := splitChunks(data, 5)
	if len(chunks) != 5 {
		t.Fatalf("len(chunks) = %d, want 5", len(chunks))
	}
	total := 0
	for _, c := range chunks {
		total += len(c)
	}
	if total != len(data) {
		t.Errorf("sum of chunk sizes = %d, want %d", total, len(data))
	}
}

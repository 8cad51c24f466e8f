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

	"github.com/google/go-cmp/cmp"
)

func TestNewRingRejectsZeroLength(t *testing.T) {
	if _, err := NewRing[int](0); err == nil {
		t.Fatal("NewRing(0) = nil error, want error")
	}
}

func TestRingLen(t *testing.T) {
	r, err := NewRing[int](5)
	if err != nil {
		t.Fatalf("NewRing: %v", err)
	}
	if got := r.Len(); got != 5 {
		t.Errorf("Len() = %d, want 5", got)
	}
}

func TestRingFIFOOverwrite(t *testing.T) {
	// After k >= L pushes of v_1..v_k, Values() yields
	// {v_{k-L+1}, ..., v_k} anchored at v_{k-L+1}.
	r, err := NewRing[int](3)
	if err != nil {
		t.Fatalf("NewRing: %v", err)
	}
	for _, v := range []int{1, 2, 3, 4, 5} {
		r.Add(v)
	}
	want := []int{3, 4, 5}
	if diff := cmp.Diff(want, r.Values()); diff != "" {
		t.Errorf("Values() mismatch (-want +got):\n%s", diff)
	}
}

func TestRingUnderfilled(t *testing.T) {
	r, err := NewRing[int](4)
	if err != nil {
		t.Fatalf("NewRing: %v", err)
	}
	r.Add(1)
	r.Add(2)
	// Cursor has advanced past the two written slots; Values() still
	// starts at the cursor, so the as-yet-unwritten zero slots come first.
	want := []int{0, 0, 1, 2}
	if diff := cmp.Diff(want, r.Values()); diff != "" {
		t.Errorf("Values() mismatch (-want +got):\n%s", diff)
	}
}

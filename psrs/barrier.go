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
	"sync"
)

// cyclicBarrier is a reusable collective synchronization point blocking
// every one of n callers until all have arrived, then releasing all of
// them together — the goroutine realization of a pthread_barrier_t /
// MPI_Barrier, usable across repeated phase boundaries.
type cyclicBarrier struct {
	n int

	mu      sync.Mutex
	arrived int
	release chan struct{}
}

func newCyclicBarrier(n int) *cyclicBarrier {
	return &cyclicBarrier{n: n, release: make(chan struct{})}
}

// wait blocks until all n participants have called wait, or ctx is
// cancelled (e.g. by AbortGroup), in which case it returns ctx.Err().
func (b *cyclicBarrier) wait(ctx context.Context) error {
	b.mu.Lock()
	gen := b.release
	b.arrived++
	if b.arrived == b.n {
		b.arrived = 0
		b.release = make(chan struct{})
		close(gen)
		b.mu.Unlock()
		return nil
	}
	b.mu.Unlock()

	select {
	case <-gen:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

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

	"golang.org/x/sync/errgroup"
)

// WorkerGroup is the goroutine realization of the message-passing
// substrate the PSRS driver is specified against: barrier, broadcast,
// gather, and synchronous point-to-point send/recv across a fixed number
// of ranks, plus the group-abort a fatal error triggers. Each rank is one
// goroutine; WorkerGroup never hands a rank's own chunk or sample slice to
// another rank except through these primitives, so the algorithm's
// ownership hand-offs hold even though all ranks technically share an
// address space.
type WorkerGroup struct {
	size    int
	barrier *cyclicBarrier

	mu       sync.Mutex
	bcastVal []int64
	gathered [][]int64

	sizeCh [][]chan int
	dataCh [][]chan []int64

	ctx    context.Context
	cancel context.CancelCauseFunc
}

// RunWorkers launches size rank-goroutines, each running fn with its rank
// index and a shared WorkerGroup, and waits for all of them to finish. If
// any rank's fn returns a non-nil error, every blocked collective or
// send/recv in every other rank is unblocked with a context-cancellation
// error and RunWorkers returns the first such error — the goroutine
// analogue of abort_group.
func RunWorkers(ctx context.Context, size int, fn func(ctx context.Context, rank int, group *WorkerGroup) error) error {
	if size <= 0 {
		return ErrConfigInvalid
	}

	group := newWorkerGroup(ctx, size)
	eg, egCtx := errgroup.WithContext(group.ctx)
	for rank := 0; rank < size; rank++ {
		rank := rank
		eg.Go(func() error {
			err := fn(egCtx, rank, group)
			if err != nil {
				group.AbortGroup(err)
			}
			return err
		})
	}
	return eg.Wait()
}

func newWorkerGroup(ctx context.Context, size int) *WorkerGroup {
	cancelCtx, cancel := context.WithCancelCause(ctx)
	g := &WorkerGroup{
		size:    size,
		barrier: newCyclicBarrier(size),
		ctx:     cancelCtx,
		cancel:  cancel,
	}
	g.sizeCh = make([][]chan int, size)
	g.dataCh = make([][]chan []int64, size)
	for i := range g.sizeCh {
		g.sizeCh[i] = make([]chan int, size)
		g.dataCh[i] = make([]chan []int64, size)
		for j := range g.sizeCh[i] {
			g.sizeCh[i][j] = make(chan int)
			g.dataCh[i][j] = make(chan []int64)
		}
	}
	return g
}

// Size returns the world size P.
func (g *WorkerGroup) Size() int {
	return g.size
}

// Barrier blocks the calling rank until every rank has called Barrier
// since the last time all of them did, or the group is aborted.
func (g *WorkerGroup) Barrier() error {
	return g.barrier.wait(g.ctx)
}

// Bcast is a collective: every rank must call it. The root's value is
// published to every rank once all of them have arrived; non-root callers
// pass a nil value and receive root's.
func (g *WorkerGroup) Bcast(root int, rank int, value []int64) ([]int64, error) {
	if rank == root {
		g.mu.Lock()
		g.bcastVal = value
		g.mu.Unlock()
	}
	if err := g.Barrier(); err != nil {
		return nil, err
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.bcastVal, nil
}

// Gather is a collective: every rank must call it with its own data.
// Every rank blocks until all ranks have arrived; only the root's return
// value is meaningful (the full [P] slice indexed by rank), non-root
// callers get nil.
func (g *WorkerGroup) Gather(root int, rank int, data []int64) ([][]int64, error) {
	g.mu.Lock()
	if g.gathered == nil {
		g.gathered = make([][]int64, g.size)
	}
	g.gathered[rank] = data
	g.mu.Unlock()

	if err := g.Barrier(); err != nil {
		return nil, err
	}
	if rank != root {
		return nil, nil
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	out := make([][]int64, g.size)
	copy(out, g.gathered)
	return out, nil
}

// SendSync performs a synchronous (ready-when-matched) send from rank
// `from` to rank `to`: the announced size is sent first, then the data,
// each over an unbuffered channel so the call only completes once `to`
// has called Recv to match it.
func (g *WorkerGroup) SendSync(from, to int, data []int64) error {
	select {
	case g.sizeCh[from][to] <- len(data):
	case <-g.ctx.Done():
		return context.Cause(g.ctx)
	}
	select {
	case g.dataCh[from][to] <- data:
		return nil
	case <-g.ctx.Done():
		return context.Cause(g.ctx)
	}
}

// Recv receives one message sent by SendSync(from, to, ...) and verifies
// the element count it receives matches the size announced just before
// it, failing with ErrProtocolViolation on mismatch.
func (g *WorkerGroup) Recv(from, to int) ([]int64, error) {
	var size int
	select {
	case size = <-g.sizeCh[from][to]:
	case <-g.ctx.Done():
		return nil, context.Cause(g.ctx)
	}
	var data []int64
	select {
	case data = <-g.dataCh[from][to]:
	case <-g.ctx.Done():
		return nil, context.Cause(g.ctx)
	}
	if len(data) != size {
		return nil, ErrProtocolViolation
	}
	return data, nil
}

// AbortGroup records cause as the reason the whole run failed and wakes
// up every rank currently blocked in Barrier, Bcast, Gather, SendSync, or
// Recv.
func (g *WorkerGroup) AbortGroup(cause error) {
	g.cancel(cause)
}

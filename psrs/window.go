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
	"math"

	"github.com/samber/lo"
)

// MovingWindow aggregates the most recent W pushes of a float64 series and
// reports their mean and population standard deviation. Statistics are
// undefined until at least W values have been pushed.
type MovingWindow struct {
	ring    *Ring[float64]
	written uint64
}

// NewMovingWindow constructs a MovingWindow of size w. It fails if w == 0.
func NewMovingWindow(w int) (*MovingWindow, error) {
	ring, err := NewRing[float64](w)
	if err != nil {
		return nil, err
	}
	return &MovingWindow{ring: ring}, nil
}

// Push records x as the newest sample, overwriting the oldest one once the
// window is full. The write counter saturates at its maximum value rather
// than wrapping.
func (m *MovingWindow) Push(x float64) {
	m.ring.Add(x)
	if m.written != math.MaxUint64 {
		m.written++
	}
}

// Mean returns the arithmetic mean of the window's W most recent pushes.
// It fails with ErrPreconditionViolation if fewer than W values have been
// pushed.
func (m *MovingWindow) Mean() (float64, error) {
	values, err := m.filled()
	if err != nil {
		return 0, err
	}
	return lo.Sum(values) / float64(len(values)), nil
}

// Stdev returns the population standard deviation of the window's W most
// recent pushes. It fails with ErrPreconditionViolation if fewer than W
// values have been pushed.
func (m *MovingWindow) Stdev() (float64, error) {
	values, err := m.filled()
	if err != nil {
		return 0, err
	}
	mean := lo.Sum(values) / float64(len(values))
	var sumSquares float64
	for _, v := range values {
		d := v - mean
		sumSquares += d * d
	}
	return math.Sqrt(sumSquares / float64(len(values))), nil
}

func (m *MovingWindow) filled() ([]float64, error) {
	if m.written < uint64(m.ring.Len()) {
		return nil, ErrPreconditionViolation
	}
	return m.ring.Values(), nil
}

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

import "time"

// Now returns a wall-clock reading in fractional seconds. Two readings'
// difference gives elapsed time, the same contract the original
// implementation's CLOCK_REALTIME-based timing_start/timing_stop pair
// exposes.
func Now() float64 {
	return float64(time.Now().UnixNano()) / 1e9
}

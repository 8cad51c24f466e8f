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

import "errors"

// Sentinel errors wrapped with fmt.Errorf("...: %w", ...) at call sites,
// mirroring the taxonomy a failed run reports before aborting the group.
var (
	// ErrConfigInvalid marks a malformed or inconsistent run configuration:
	// a missing flag, an out-of-range value, or W > R.
	ErrConfigInvalid = errors.New("psrs: invalid configuration")

	// ErrAllocFailure marks an allocation that cannot be made. No function
	// in this repository returns it; the CLI reports an array length whose
	// N*8 byte size would overflow int as ErrConfigInvalid.
	ErrAllocFailure = errors.New("psrs: allocation failure")

	// ErrProtocolViolation marks a mismatch in the exchange protocol: a
	// received element count disagreeing with the announced size, or a
	// pivot count other than P-1.
	ErrProtocolViolation = errors.New("psrs: protocol violation")

	// ErrPreconditionViolation marks a call made against an operation's
	// documented precondition, e.g. requesting MovingWindow statistics
	// before W values have been pushed.
	ErrPreconditionViolation = errors.New("psrs: precondition violation")
)

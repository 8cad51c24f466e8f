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

// exchangeAll performs Phase 3's all-to-all partition exchange for a
// single rank. For sender = 0..P-1 in lock step: when sender is the
// calling rank, it sends partition[j] to every other rank j (and copies
// its own partition[self] locally); otherwise it receives one partition
// from sender. A barrier after every sender's turn keeps each rank's
// receives unambiguously matched to the current sender, exactly as
// spec'd — a plain channel send/recv pair would otherwise need tags to
// tell two senders' messages apart.
//
// The returned block's partitions are all Owned (freshly received, or a
// local copy of the caller's own partition): the caller's local
// PartitionBlock (views into its chunk) is no longer needed after this
// call and may be discarded.
func exchangeAll(rank int, local PartitionBlock, group *WorkerGroup) (PartitionBlock, error) {
	p := group.Size()
	received := make([]Partition, p)

	for sender := 0; sender < p; sender++ {
		if sender == rank {
			received[rank] = Partition{Data: append([]int64(nil), local.Partitions[rank].Data...), Owned: true}
			for j := 0; j < p; j++ {
				if j == rank {
					continue
				}
				if err := group.SendSync(rank, j, local.Partitions[j].Data); err != nil {
					return PartitionBlock{}, err
				}
			}
		} else {
			data, err := group.Recv(sender, rank)
			if err != nil {
				return PartitionBlock{}, err
			}
			received[sender] = Partition{Data: append([]int64(nil), data...), Owned: true}
		}

		if err := group.Barrier(); err != nil {
			return PartitionBlock{}, err
		}
	}

	return PartitionBlock{Partitions: received}, nil
}

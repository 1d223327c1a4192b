// Copyright 2025 blipsort Authors
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

//go:build blipsort_instrumented

package blipsort

import "sync/atomic"

// Counters accumulates instrumentation that is only compiled in under
// the blipsort_instrumented build tag, so it costs nothing in normal
// builds. It exists to let tests assert on the maximum recursion depth
// reached and on whether a heap escape ever fired, without parsing log
// output.
var Counters struct {
	Partitions   atomic.Int64
	HeapEscapes  atomic.Int64
	MaxDepthSeen atomic.Int64
}

// ResetCounters zeroes every counter. Call it at the start of a test
// that inspects Counters.
func ResetCounters() {
	Counters.Partitions.Store(0)
	Counters.HeapEscapes.Store(0)
	Counters.MaxDepthSeen.Store(0)
}

func recordPartition() {
	Counters.Partitions.Add(1)
}

func recordHeapEscape() {
	Counters.HeapEscapes.Add(1)
}

func recordDepth(depth int) {
	d := int64(depth)
	for {
		cur := Counters.MaxDepthSeen.Load()
		if d <= cur || Counters.MaxDepthSeen.CompareAndSwap(cur, d) {
			return
		}
	}
}

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

package blipsort

// qsort sorts data[low:high+1] with a tail-recursive, depth-limited
// quicksort: it recurses on the smaller half of every partition and
// iterates over the larger half in place, so every stack frame at most
// halves the range and stack depth stays within the height budget
// rather than growing with the number of partitions performed.
//
// leftmost is true when low is the start of the whole buffer, so there
// is no data[low-1]; when false, data[low-1] exists and is a lower
// bound for the whole range. It is true for the call from Sort, carries
// over unchanged to the left half of every partition, and is false for
// every right half.
//
// root is true only for the single outermost call Sort makes. A root
// call always performs at least one partition before it is allowed to
// bail out to insertion sort or heapsort, because by the time Sort
// calls it the range is already known to be at least insertionThreshold
// wide; every other call (including every later iteration of the same
// root call's tail loop) checks the cutoffs up front.
//
// depth counts recursive qsort calls from the root and is only used by
// the instrumented build to confirm that recursion never outgrows the
// height budget; it does not affect control flow.
func qsort[E Signed](data []E, leftmost bool, low, high, height int, root bool, depth int) {
	x := high - low
	recordDepth(depth)

	for {
		if !root {
			if x < insertionThreshold {
				insertSort(data, leftmost, low, high, false)
				return
			}
			if height < 0 {
				recordHeapEscape()
				heapSort(data, low, high)
				return
			}
		}
		root = false

		mid, sl, sr := choosePivot(data, low, high, x)

		if !leftmost {
			h := data[low-1]
			if h == data[sl] || h == data[mid] || h == data[sr] {
				recordPartition()
				low = partitionLeft(data, low, high, h)
				if low >= high {
					return
				}
				x = high - low
				continue
			}
		}

		recordPartition()
		// partitionCenter's low sentinel is p - 1; this is safe here because
		// choosePivot draws mid from the middle of its five sorted
		// candidates, so the pivot is never the element type's minimum value
		// in practice (see partitionCenter's doc comment for the caveat).
		l, work := partitionCenter(data, low, high, mid, x)

		g := l
		if l < high {
			g++
		}
		if l > low {
			l--
		}

		ls := l - low
		gs := high - g
		eighth := x >> 3

		recurseLeft := true

		if ls >= eighth && gs >= eighth {
			if !work {
				if insertSort(data, leftmost, low, l, true) {
					recurseLeft = false
					if insertSort(data, false, g, high, true) {
						return
					}
				}
			}
		} else {
			scramble(data, low, l, ls)
			scramble(data, g, high, gs)
			height--
		}

		if recurseLeft && ls > gs {
			// Recurse on the smaller right half and keep iterating on
			// the larger left half.
			qsort(data, false, g, high, height, false, depth+1)
			high = l
			x = high - low
			continue
		}

		if recurseLeft {
			qsort(data, leftmost, low, l, height, false, depth+1)
		}

		low = g
		x = high - low
		leftmost = false
	}
}

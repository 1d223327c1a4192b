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

// heapSort sorts data[low:high+1] with a classical binary max-heap.
// It is the escape taken once the recursion-depth budget runs out: no
// optimism, no recursion, guaranteed O(n log n).
func heapSort[E Signed](data []E, low, high int) {
	n := high - low + 1
	if n <= 1 {
		return
	}

	for i := n/2 - 1; i >= 0; i-- {
		siftDown(data, low, i, n)
	}
	for i := n - 1; i > 0; i-- {
		data[low], data[low+i] = data[low+i], data[low]
		siftDown(data, low, 0, i)
	}
}

// siftDown restores the max-heap property rooted at index i within
// the window data[base : base+size], using i as an offset from base.
func siftDown[E Signed](data []E, base, i, size int) {
	for {
		largest := i
		left := 2*i + 1
		right := 2*i + 2

		if left < size && data[base+left] > data[base+largest] {
			largest = left
		}
		if right < size && data[base+right] > data[base+largest] {
			largest = right
		}
		if largest == i {
			return
		}

		data[base+i], data[base+largest] = data[base+largest], data[base+i]
		i = largest
	}
}

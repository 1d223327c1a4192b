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

// Package blipsort sorts slices of fixed-width signed integers in
// place with an unstable, comparison-based quicksort hybrid: a
// five-sample pivot, branchless Lomuto partitioning, pair insertion
// sort for small ranges, and a heapsort escape bounded by a
// logarithmic recursion-depth budget.
package blipsort

// Sort sorts data in place in ascending order. It never allocates.
func Sort[E Signed](data []E) {
	n := len(data)
	if n < 2 {
		return
	}
	if n < insertionThreshold {
		insertSort(data, true, 0, n-1, false)
		return
	}
	height := log2Floor(uint32(n))
	qsort(data, true, 0, n-1, height, true, 0)
}

// IsSorted reports whether data is already sorted in ascending order.
func IsSorted[E Signed](data []E) bool {
	for i := 1; i < len(data); i++ {
		if data[i] < data[i-1] {
			return false
		}
	}
	return true
}

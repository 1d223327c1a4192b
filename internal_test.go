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

import (
	"math"
	"math/rand"
	"slices"
	"testing"
)

// TestPartitionCenter checks that every element left of the returned
// split is strictly less than the pivot, every element at or right of
// it is greater or equal, and data[l] itself holds the pivot.
func TestPartitionCenter(t *testing.T) {
	rand.Seed(7)
	for trial := 0; trial < 200; trial++ {
		n := 20 + rand.Intn(200)
		data := make([]int32, n)
		for i := range data {
			data[i] = rand.Int31n(100)
		}
		orig := make([]int32, n)
		copy(orig, data)

		low, high := 0, n-1
		mid := low + (high-low)/2
		p := data[mid]

		l, _ := partitionCenter(data, low, high, mid, high-low)

		if data[l] != p {
			t.Fatalf("trial %d: data[l]=%v, want pivot %v", trial, data[l], p)
		}
		for i := low; i < l; i++ {
			if data[i] >= p {
				t.Fatalf("trial %d: data[%d]=%v should be < pivot %v", trial, i, data[i], p)
			}
		}
		for i := l + 1; i <= high; i++ {
			if data[i] < p {
				t.Fatalf("trial %d: data[%d]=%v should be >= pivot %v", trial, i, data[i], p)
			}
		}

		slices.Sort(orig)
		got := make([]int32, n)
		copy(got, data)
		slices.Sort(got)
		for i := range orig {
			if orig[i] != got[i] {
				t.Fatalf("trial %d: partition lost or duplicated an element", trial)
			}
		}
	}
}

// TestPartitionLeft checks that, with h == data[low-1] and every
// element in range already >= h, the returned split separates the run
// of elements equal to h from those strictly greater.
func TestPartitionLeft(t *testing.T) {
	rand.Seed(11)
	for trial := 0; trial < 200; trial++ {
		n := 20 + rand.Intn(200)
		buf := make([]int32, n+1)
		h := int32(5)
		buf[0] = h
		for i := 1; i <= n; i++ {
			buf[i] = h + rand.Int31n(10)
		}
		low, high := 1, n
		// Guarantee at least one in-range occurrence of h, matching the
		// precondition under which quicksort ever calls partitionLeft
		// (one of the pivot samples equals data[low-1]).
		buf[low+rand.Intn(n)] = h

		l := partitionLeft(buf, low, high, h)

		for i := low; i < l; i++ {
			if buf[i] != h {
				t.Fatalf("trial %d: buf[%d]=%v should equal h=%v", trial, i, buf[i], h)
			}
		}
		for i := l; i <= high; i++ {
			if buf[i] <= h {
				t.Fatalf("trial %d: buf[%d]=%v should be > h=%v", trial, i, buf[i], h)
			}
		}
	}
}

// TestInsertSortGuarded checks the leftmost insertion sort against a
// handful of small, explicit cases.
func TestInsertSortGuarded(t *testing.T) {
	cases := [][]int32{
		{},
		{1},
		{2, 1},
		{5, 4, 3, 2, 1},
		{1, 2, 3, 4, 5},
		{3, 1, 4, 1, 5, 9, 2, 6},
	}
	for _, c := range cases {
		data := make([]int32, len(c))
		copy(data, c)
		if len(data) == 0 {
			continue
		}
		insertSortGuarded(data, 0, len(data)-1, false)
		if !IsSorted(data) {
			t.Errorf("insertSortGuarded(%v) produced unsorted result: %v", c, data)
		}
	}
}

// TestInsertSortPair checks the pair insertion sort against the same
// cases, including the two-element tail that exercises the function's
// trailing single-element insertion with no preceding pair. Each case
// sits behind a dominating sentinel at data[low-1], the precondition
// under which quicksort calls the unguarded pair sort.
func TestInsertSortPair(t *testing.T) {
	cases := [][]int32{
		{1},
		{2, 1},
		{1, 2},
		{5, 4, 3, 2, 1},
		{1, 2, 3, 4, 5},
		{3, 1, 4, 1, 5, 9, 2, 6},
		{2, 2},
	}
	for _, c := range cases {
		data := make([]int32, len(c)+1)
		data[0] = math.MinInt32
		copy(data[1:], c)
		insertSortPair(data, 1, len(c), false)
		if !IsSorted(data[1:]) {
			t.Errorf("insertSortPair(%v) produced unsorted result: %v", c, data[1:])
		}
	}
}

// TestInsertSortOptimismAbort checks that the move-budget abort leaves
// the range a permutation of itself even when it bails out early.
func TestInsertSortOptimismAbort(t *testing.T) {
	rand.Seed(3)
	n := 80
	data := make([]int32, n)
	for i := range data {
		data[i] = int32(n - i) // strictly descending: maximal move count
	}
	orig := make([]int32, n)
	copy(orig, data)

	insertSortGuarded(data, 0, n-1, true)

	slices.Sort(orig)
	got := make([]int32, n)
	copy(got, data)
	slices.Sort(got)
	for i := range orig {
		if orig[i] != got[i] {
			t.Fatalf("optimism abort lost or duplicated an element at %d", i)
		}
	}
}

// TestHeapSort checks the depth-exceeded escape in isolation.
func TestHeapSort(t *testing.T) {
	rand.Seed(5)
	sizes := []int{0, 1, 2, 3, 50, 500}
	for _, n := range sizes {
		data := make([]int32, n)
		for i := range data {
			data[i] = rand.Int31n(1000)
		}
		heapSort(data, 0, n-1)
		if !IsSorted(data) {
			t.Errorf("heapSort(n=%d) produced unsorted result", n)
		}
	}
}

// TestChoosePivotDescending checks the rotation fallback: a strictly
// descending seven-sample read rotates the whole interval.
func TestChoosePivotDescending(t *testing.T) {
	n := 200
	data := make([]int32, n)
	for i := range data {
		data[i] = int32(n - i)
	}
	choosePivot(data, 0, n-1, n-1)
	if data[0] >= data[n-1] {
		t.Errorf("choosePivot rotation did not reorder the interval: first=%v last=%v", data[0], data[n-1])
	}
}

// TestChoosePivotReturnsIndicesInRange checks that mid, sl, sr always
// land inside [low, high] across a spread of widths, since quicksort
// reads data[mid], data[sl], data[sr] unconditionally afterward.
func TestChoosePivotReturnsIndicesInRange(t *testing.T) {
	rand.Seed(13)
	for _, n := range []int{16, 33, 88, 89, 500, 5000} {
		data := make([]int32, n)
		for i := range data {
			data[i] = rand.Int31n(1000)
		}
		low, high := 0, n-1
		mid, sl, sr := choosePivot(data, low, high, high-low)
		for _, idx := range []int{mid, sl, sr} {
			if idx < low || idx > high {
				t.Fatalf("n=%d: choosePivot returned out-of-range index %d", n, idx)
			}
		}
	}
}

// TestScrambleIsPermutation checks that scrambling never drops or
// duplicates an element.
func TestScrambleIsPermutation(t *testing.T) {
	n := 300
	data := make([]int32, n)
	for i := range data {
		data[i] = int32(i)
	}
	orig := make([]int32, n)
	copy(orig, data)

	scramble(data, 0, n-1, n)

	got := make([]int32, n)
	copy(got, data)
	slices.Sort(got)
	for i := range orig {
		if orig[i] != got[i] {
			t.Fatalf("scramble lost or duplicated an element at %d", i)
		}
	}
}

// TestLog2Floor checks exact powers of two and their neighbors.
func TestLog2Floor(t *testing.T) {
	cases := []struct {
		n    uint32
		want int
	}{
		{1, 0},
		{2, 1},
		{3, 1},
		{4, 2},
		{88, 6},
		{1 << 20, 20},
	}
	for _, c := range cases {
		if got := log2Floor(c.n); got != c.want {
			t.Errorf("log2Floor(%d) = %d, want %d", c.n, got, c.want)
		}
	}
}

// TestLog2FloorPanicsOnZero checks the documented precondition.
func TestLog2FloorPanicsOnZero(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("log2Floor(0) did not panic")
		}
	}()
	log2Floor(0)
}

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

// choosePivot samples seven positions across data[low:high+1] of width
// x = high-low: the endpoints, two "sixth" candidates (cl, cr) and two
// "third" candidates (sl, sr), plus the midpoint. If the seven-sample
// read (low, cl, sl, mid, sr, cr, high) is not strictly descending, it
// insertion-sorts the five inner candidates in place — widening cl to
// low and cr to high first when the endpoints beat them — and *mid
// becomes the pivot. If the read is strictly descending, it instead
// rotates the whole interval around the midpoint, on the premise that
// a non-monotonic interval whose seven samples happen to descend is
// rare enough that one linear pass is cheaper than sorting candidates
// that don't represent the data.
//
// It returns the indices of mid, sl, and sr: the caller needs sl and
// mid and sr to check whether the element just left of a non-leftmost
// range duplicates one of the three middlemost candidates, which signals
// a pivot value repeated densely enough to warrant the dedicated
// pivot-duplicate partitioner instead of the regular one.
func choosePivot[E Signed](data []E, low, high, x int) (mid, sl, sr int) {
	y := x >> 2
	third := y + (y >> 1)
	sixth := third >> 1

	mid = low + (x >> 1)
	sl = low + third
	sr = high - third
	cl := low + sixth
	cr := high - sixth

	if data[low] <= data[cl] || data[cl] <= data[sl] || data[sl] <= data[mid] ||
		data[mid] <= data[sr] || data[sr] <= data[cr] || data[cr] <= data[high] {

		if data[low] < data[cl] {
			cl = low
		}
		if data[high] > data[cr] {
			cr = high
		}

		if data[sl] < data[cl] {
			data[sl], data[cl] = data[cl], data[sl]
		}

		if data[mid] < data[sl] {
			data[mid], data[sl] = data[sl], data[mid]
			if data[sl] < data[cl] {
				data[sl], data[cl] = data[cl], data[sl]
			}
		}

		if data[sr] < data[mid] {
			data[sr], data[mid] = data[mid], data[sr]
			if data[mid] < data[sl] {
				data[mid], data[sl] = data[sl], data[mid]
				if data[sl] < data[cl] {
					data[sl], data[cl] = data[cl], data[sl]
				}
			}
		}

		if data[cr] < data[sr] {
			data[cr], data[sr] = data[sr], data[cr]
			if data[sr] < data[mid] {
				data[sr], data[mid] = data[mid], data[sr]
				if data[mid] < data[sl] {
					data[mid], data[sl] = data[sl], data[mid]
					if data[sl] < data[cl] {
						data[sl], data[cl] = data[cl], data[sl]
					}
				}
			}
		}

		return mid, sl, sr
	}

	// Strictly descending: rotate rather than sort candidates that
	// don't represent the interval. An odd-length interval leaves the
	// central element untouched; the partitioner tolerates one
	// out-of-order element.
	for u, q := low, high; u < mid; u, q = u+1, q-1 {
		data[u], data[q] = data[q], data[u]
	}

	return mid, sl, sr
}

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

// partitionCenter runs branchless Lomuto partitioning of data[low:high+1]
// around pivot p = data[mid]. On return data[l] == p, every element in
// data[low:l] is < p and every element in data[l+1:high+1] is >= p.
// The gap advance `l += (data[l] < p)` is the only data-dependent step
// in the main loop and is written as an arithmetic increment rather
// than a branch.
//
// The low sentinel planted below is p - 1, which requires a value that
// compares strictly less than p to exist. That fails if p is ever the
// element type's minimum value. choosePivot draws *mid from the middle
// of its five sorted candidates, so in practice the type minimum is
// never chosen as the pivot — but this is an empirical property of the
// sampling, not a proof that holds for every possible input; a type
// whose minimum could plausibly land there would need an explicit
// bound check instead of this sentinel.
//
// work reports whether the two boundary scans together covered less
// than half the interval, leaving most of it to the gap loop. The
// caller attempts the post-partition optimism shortcut only when work
// is false: scans that already walked across most of the interval, as
// they do on an already-sorted range, suggest the halves are sorted runs.
func partitionCenter[E Signed](data []E, low, high, mid, x int) (l int, work bool) {
	p := data[mid]

	l = low - 1
	for {
		l++
		if !(data[l] < p) {
			break
		}
	}

	// Move the stopper out of mid's slot and plant a low sentinel that
	// compares strictly less than p, so the gap loop's leftward writes
	// can never run past low without an explicit bound check.
	data[mid] = data[l]
	data[l] = p - 1

	k := high + 1
	for {
		k--
		if !(data[k] >= p) {
			break
		}
	}

	work = (l-low)+(high-k) < x>>1

	g := l
	for g < k {
		data[g] = data[l]
		g++
		data[l] = data[g]
		inc := 0
		if data[l] < p {
			inc = 1
		}
		l += inc
	}
	data[g] = data[l]
	data[l] = p

	return l, work
}

// partitionLeft runs branchless Lomuto partitioning of data[low:high+1]
// against a pivot-duplicate value h == data[low-1], under the
// precondition that every element in data[low:high+1] is already >= h.
// On return, data[low:l] is all == h and data[l:high+1] is all > h; the
// caller resumes the outer loop with low = l.
func partitionLeft[E Signed](data []E, low, high int, h E) int {
	l := low - 1
	g := high + 1

	for {
		g--
		if !(data[g] > h) {
			break
		}
	}
	e := data[g]
	data[g] = h + 1

	for {
		l++
		if data[l] != h {
			break
		}
	}
	data[g] = e

	k := l
	p := data[l]
	for k < g {
		data[k] = data[l]
		k++
		data[l] = data[k]
		inc := 0
		if data[l] == h {
			inc = 1
		}
		l += inc
	}
	data[k] = data[l]
	data[l] = p
	if p == h {
		l++
	}

	return l
}

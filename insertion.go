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

// insertSort runs either the guarded or pair insertion sort over
// data[low:high+1], picking guarded whenever there is no known lower
// bound sitting at data[low-1]. optimism enables the move-budget abort
// (returns false without finishing the range, leaving it partially
// sorted); quicksort re-sorts on false. When optimism is false the
// return value is always true.
func insertSort[E Signed](data []E, leftmost bool, low, high int, optimism bool) bool {
	if leftmost {
		return insertSortGuarded(data, low, high, optimism)
	}
	return insertSortPair(data, low, high, optimism)
}

// insertSortGuarded is the classical ascending insertion sort, used
// whenever there is no dominating sentinel at data[low-1].
func insertSortGuarded[E Signed](data []E, low, high int, optimism bool) bool {
	moves := 0
	for i := low + 1; i <= high; i++ {
		t := data[i]
		j := i - 1
		for j >= low && t < data[j] {
			data[j+1] = data[j]
			j--
		}
		data[j+1] = t

		if optimism {
			moves += (i - 1) - j
			if moves > ascendingThreshold {
				return false
			}
		}
	}
	return true
}

// insertSortPair is Bentley/McIlroy-style pair insertion sort, used
// whenever data[low-1] is known to dominate data[low:high+1].
// It inserts two elements per outer step via a right-to-left shift
// that never checks the lower bound, relying on that sentinel instead.
func insertSortPair[E Signed](data []E, low, high int, optimism bool) bool {
	moves := 0

	// Skip an already-ascending run; handles a sorted tail for free.
	l := low
	for {
		if l >= high {
			return true
		}
		l++
		if data[l] >= data[l-1] {
			continue
		}
		break
	}

	// l now marks the first descent; pair up (i, l) and walk rightward
	// two at a time, inserting the larger element first.
	i := l
	for {
		l++
		if l > high {
			break
		}

		ex, ey := data[i], data[l]
		if ey < ex {
			ex, ey = ey, ex
			moves++
		}

		for {
			i--
			if ey >= data[i] {
				break
			}
			data[i+2] = data[i]
		}
		i++
		data[i+1] = ey

		for {
			i--
			if ex >= data[i] {
				break
			}
			data[i+1] = data[i]
		}
		data[i+1] = ex

		if optimism {
			// Budget is charged once per pair, after both elements
			// have been inserted, not once per element.
			moves += (l - 2) - i
			if moves > ascendingThreshold {
				return false
			}
		}

		l++
		i = l
	}

	// Odd remainder (or a no-op re-insertion when the range was even):
	// insert data[high] with a standard downward shift.
	r := high
	ez := data[r]
	for {
		r--
		if ez >= data[r] {
			break
		}
		data[r+1] = data[r]
	}
	data[r+1] = ez

	return true
}

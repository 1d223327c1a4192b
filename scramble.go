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

// scramble perturbs data[low:high+1] (length len) with a fixed, cheap
// swap pattern to break adversarial patterns (sawtooth, organ-pipe)
// after a badly imbalanced partition. It is a no-op below
// insertionThreshold, where the range is about to be insertion-sorted
// anyway.
func scramble[E Signed](data []E, low, high, length int) {
	if length < insertionThreshold {
		return
	}

	q := length / 4
	data[low], data[low+q] = data[low+q], data[low]
	data[high], data[high-q] = data[high-q], data[high]

	if length > largeDataThreshold {
		data[low+1], data[low+q+1] = data[low+q+1], data[low+1]
		data[low+2], data[low+q+2] = data[low+q+2], data[low+2]
		data[high-2], data[high-q-2] = data[high-q-2], data[high-2]
		data[high-1], data[high-q-1] = data[high-q-1], data[high-1]
	}
}

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

// Tuning thresholds shared by the driver, quicksort loop, and scrambler.
const (
	// insertionThreshold is the sub-range width below which the
	// quicksort loop falls back to insertion sort.
	insertionThreshold = 88

	// ascendingThreshold is the optimism move budget: an insertion
	// sort pass aborts once its cumulative shift distance exceeds it.
	ascendingThreshold = 8

	// largeDataThreshold gates the scrambler's wider 6-swap pattern.
	largeDataThreshold = 128
)

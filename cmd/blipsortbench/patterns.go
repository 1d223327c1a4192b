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

package main

import (
	"fmt"
	"math/rand"
)

// patternNames lists every generator accepted by the run/verify/pattern
// subcommands, in the order they should appear in help text.
var patternNames = []string{"random", "sorted", "reverse", "organ-pipe", "sawtooth", "all-equal"}

// generatePattern returns a buffer of n int32 values shaped by name,
// seeded deterministically so repeated invocations with the same seed
// reproduce the same buffer.
func generatePattern(name string, n int, seed int64) ([]int32, error) {
	data := make([]int32, n)
	rng := rand.New(rand.NewSource(seed))

	switch name {
	case "random":
		for i := range data {
			data[i] = rng.Int31n(1 << 24)
		}
	case "sorted":
		for i := range data {
			data[i] = int32(i)
		}
	case "reverse":
		for i := range data {
			data[i] = int32(n - i)
		}
	case "organ-pipe":
		for i := 0; i < n/2; i++ {
			data[i] = int32(i)
		}
		for i := n / 2; i < n; i++ {
			data[i] = int32(n - i)
		}
	case "sawtooth":
		for i := range data {
			data[i] = int32(i % 17)
		}
	case "all-equal":
		for i := range data {
			data[i] = 42
		}
	default:
		return nil, fmt.Errorf("unknown pattern %q, want one of %v", name, patternNames)
	}
	return data, nil
}

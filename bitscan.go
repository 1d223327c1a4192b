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

import "math/bits"

// log2Floor returns floor(log2(n)) for n > 0. Passing n == 0 is a
// programmer error and panics.
func log2Floor(n uint32) int {
	if n == 0 {
		panic("blipsort: log2Floor called with n == 0")
	}
	return bits.Len32(n) - 1
}

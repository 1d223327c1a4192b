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

// Signed is the element-type constraint for Blipsort: fixed-width
// signed integers. The center partitioner's low sentinel (partition.go)
// is p-1, which needs the pivot p to be above the type's minimum value;
// partitionCenter's doc comment covers when that holds.
type Signed interface {
	~int8 | ~int16 | ~int32 | ~int64
}

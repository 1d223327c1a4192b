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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGeneratePatternLength(t *testing.T) {
	for _, name := range patternNames {
		data, err := generatePattern(name, 37, 1)
		require.NoError(t, err)
		assert.Len(t, data, 37)
	}
}

func TestGeneratePatternUnknown(t *testing.T) {
	_, err := generatePattern("nonsense", 10, 1)
	assert.Error(t, err)
}

func TestGeneratePatternDeterministic(t *testing.T) {
	a, err := generatePattern("random", 200, 42)
	require.NoError(t, err)
	b, err := generatePattern("random", 200, 42)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestGeneratePatternSortedIsSorted(t *testing.T) {
	data, err := generatePattern("sorted", 100, 1)
	require.NoError(t, err)
	for i := 1; i < len(data); i++ {
		assert.LessOrEqual(t, data[i-1], data[i])
	}
}

func TestGeneratePatternAllEqual(t *testing.T) {
	data, err := generatePattern("all-equal", 50, 1)
	require.NoError(t, err)
	for _, v := range data {
		assert.Equal(t, int32(42), v)
	}
}

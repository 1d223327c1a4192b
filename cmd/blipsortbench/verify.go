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
	"slices"
	"strconv"

	"github.com/blipsortlab/blipsort"
	"github.com/google/go-cmp/cmp"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// verify checks that Sort's output is sorted, that it is a permutation
// of the input, and that it agrees element-for-element with the
// standard library's oracle on a copy of the same data.
func verifyCmd() *cobra.Command {
	var seed int64

	cmd := &cobra.Command{
		Use:   "verify <pattern> <n>",
		Short: "Verify Sort's output against a slices.Sort oracle for a generated pattern",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("invalid size %q: %w", args[1], err)
			}

			data, err := generatePattern(args[0], n, seed)
			if err != nil {
				return err
			}
			want := make([]int32, n)
			copy(want, data)

			blipsort.Sort(data)
			slices.Sort(want)

			if !blipsort.IsSorted(data) {
				return fmt.Errorf("verify failed: pattern %q, n=%d: Sort output is not sorted", args[0], n)
			}
			if diff := cmp.Diff(want, data); diff != "" {
				return fmt.Errorf("verify failed: pattern %q, n=%d: mismatch against oracle:\n%s", args[0], n, diff)
			}

			logger.Info("verify passed", zap.String("pattern", args[0]), zap.Int("n", n))
			return nil
		},
	}

	cmd.Flags().Int64Var(&seed, "seed", 1, "random seed used by pattern generators that draw random values")
	return cmd
}

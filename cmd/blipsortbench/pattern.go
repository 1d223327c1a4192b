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
	"strconv"
	"strings"

	"github.com/spf13/cobra"
)

// pattern emits a generated buffer to stdout, one value per line, so
// it can be piped into other tools for ad hoc repro cases.
func patternCmd() *cobra.Command {
	var seed int64

	cmd := &cobra.Command{
		Use:   "pattern <name> <n>",
		Short: "Emit a generated data pattern to stdout",
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

			lines := make([]string, len(data))
			for i, v := range data {
				lines[i] = strconv.Itoa(int(v))
			}
			fmt.Println(strings.Join(lines, "\n"))
			return nil
		},
	}

	cmd.Flags().Int64Var(&seed, "seed", 1, "random seed used by pattern generators that draw random values")
	return cmd
}

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
	"time"

	"github.com/blipsortlab/blipsort"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func runCmd() *cobra.Command {
	var seed int64

	cmd := &cobra.Command{
		Use:   "run <pattern> <n>",
		Short: "Sort a generated buffer of the named pattern and report elapsed time",
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

			resetCounters()
			start := time.Now()
			blipsort.Sort(data)
			elapsed := time.Since(start)

			if !blipsort.IsSorted(data) {
				return fmt.Errorf("internal error: buffer not sorted after Sort")
			}

			logger.Info("sort complete",
				zap.String("pattern", args[0]),
				zap.Int("n", n),
				zap.Duration("elapsed", elapsed),
			)
			logCounters(logger)
			return nil
		},
	}

	cmd.Flags().Int64Var(&seed, "seed", 1, "random seed used by pattern generators that draw random values")
	return cmd
}

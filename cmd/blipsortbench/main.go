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

// Command blipsortbench drives and verifies the blipsort package
// against named data patterns.
//
// Usage:
//
//	blipsortbench run organ-pipe 1000000
//	blipsortbench verify sawtooth 50000 --seed 7
//	blipsortbench pattern all-equal 20
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var logger *zap.Logger

func rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "blipsortbench",
		Short: "Drive and verify the blipsort sorting algorithm against named data patterns",
	}
	root.AddCommand(runCmd())
	root.AddCommand(verifyCmd())
	root.AddCommand(patternCmd())
	return root
}

func main() {
	var err error
	logger, err = zap.NewProduction()
	if err != nil {
		fmt.Fprintf(os.Stderr, "blipsortbench: failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	if err := rootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

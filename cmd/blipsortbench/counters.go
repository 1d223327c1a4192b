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

//go:build blipsort_instrumented

package main

import (
	"github.com/blipsortlab/blipsort"
	"go.uber.org/zap"
)

func resetCounters() {
	blipsort.ResetCounters()
}

func logCounters(log *zap.Logger) {
	log.Info("counters",
		zap.Int64("partitions", blipsort.Counters.Partitions.Load()),
		zap.Int64("heap_escapes", blipsort.Counters.HeapEscapes.Load()),
		zap.Int64("max_depth_seen", blipsort.Counters.MaxDepthSeen.Load()),
	)
}

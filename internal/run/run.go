// Copyright 2025-2026 Oliver Eikemeier. All Rights Reserved.
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
//
// SPDX-License-Identifier: Apache-2.0

package run

import (
	"context"
	"errors"
	"fmt"
	"runtime/trace"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/passes/inspect"
	"golang.org/x/tools/go/ast/inspector"

	"fillmore-labs.com/capturecheck/internal/capture"
	"fillmore-labs.com/capturecheck/internal/config"
	"fillmore-labs.com/capturecheck/internal/report"
)

// ErrResultMissing is returned when a required analyzer result is missing.
// This typically indicates a configuration error where the analyzer's
// Requires field is not properly set.
var ErrResultMissing = errors.New("analyzer result missing")

// Run executes the capturecheck analyzer on one package.
func (r *Options) Run(p *analysis.Pass) (any, error) {
	// Retrieves the [inspector.Inspector] from the pass results.
	in, ok := p.ResultOf[inspect.Analyzer].(*inspector.Inspector)
	if !ok {
		return nil, fmt.Errorf("capturecheck: %s %w", inspect.Analyzer.Name, ErrResultMissing)
	}

	ctx := context.Background()

	ctx, task := trace.NewTask(ctx, "CaptureCheck")
	defer task.End()

	trace.Log(ctx, "package", p.Pkg.Path())

	sink := report.NewPassSink(p, r.Behavior.Enabled(config.RelatedInformation))
	defer sink.Flush()

	root := in.Root()
	analyzer := capture.NewAnalyzer(p.TypesInfo, r.Behavior.Enabled(config.ValueReceivers))

	w := capture.Walker{
		Fset:      p.Fset,
		Analyzer:  analyzer,
		Reporter:  report.NewEmitter(sink).WithFixer(report.NewFixer(p, root, analyzer)),
		Generated: r.Behavior.Enabled(config.IncludeGenerated),
	}

	w.Analyze(ctx, root)

	return nil, nil
}

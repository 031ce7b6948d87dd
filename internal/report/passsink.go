// Copyright 2026 Oliver Eikemeier. All Rights Reserved.
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

package report

import "golang.org/x/tools/go/analysis"

// PassSink is a [Sink] reporting to an [analysis.Pass].
//
// By default every diagnostic is reported on its own. With related information enabled,
// notes and remarks are attached to the preceding error instead, which is
// how editors and golangci-lint present secondary locations. Their fixes move to the error too.
type PassSink struct {
	pass    *analysis.Pass
	related bool
	pending *analysis.Diagnostic
}

// NewPassSink creates a [PassSink] for p.
func NewPassSink(p *analysis.Pass, related bool) *PassSink {
	return &PassSink{pass: p, related: related}
}

// Emit implements [Sink].
func (s *PassSink) Emit(d Diagnostic) {
	if !s.related {
		s.pass.Report(analysis.Diagnostic{
			Pos:            d.Pos,
			End:            d.End,
			Category:       d.Severity.String(),
			Message:        d.Text(),
			SuggestedFixes: d.Fixes,
		})

		return
	}

	if d.Severity == Error {
		s.Flush()

		s.pending = &analysis.Diagnostic{
			Pos:            d.Pos,
			End:            d.End,
			Category:       d.Severity.String(),
			Message:        d.Message,
			SuggestedFixes: d.Fixes,
		}

		return
	}

	if s.pending == nil {
		// orphaned note or remark, report standalone
		s.pass.Report(analysis.Diagnostic{
			Pos:            d.Pos,
			End:            d.End,
			Category:       d.Severity.String(),
			Message:        d.Text(),
			SuggestedFixes: d.Fixes,
		})

		return
	}

	s.pending.Related = append(s.pending.Related, analysis.RelatedInformation{
		Pos:     d.Pos,
		End:     d.End,
		Message: d.Text(),
	})
	s.pending.SuggestedFixes = append(s.pending.SuggestedFixes, d.Fixes...)

	if d.Severity == Remark {
		s.Flush()
	}
}

// Flush reports a pending group.
func (s *PassSink) Flush() {
	if s.pending == nil {
		return
	}

	s.pass.Report(*s.pending)
	s.pending = nil
}

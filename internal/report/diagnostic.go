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

import (
	"fmt"
	"go/token"

	"golang.org/x/tools/go/analysis"
)

// Diagnostic is a single message anchored at a source position.
type Diagnostic struct {
	Severity Severity
	Pos      token.Pos
	End      token.Pos
	Message  string

	// Fixes are optional edits resolving the diagnostic.
	Fixes []analysis.SuggestedFix
}

// Text returns the message, prefixed with the severity for notes and remarks.
func (d Diagnostic) Text() string {
	if d.Severity == Error {
		return d.Message
	}

	return d.Severity.String() + ": " + d.Message
}

// Format renders the diagnostic as "file:line:col: severity: message".
func (d Diagnostic) Format(fset *token.FileSet) string {
	return fmt.Sprintf("%s: %s: %s", fset.Position(d.Pos), d.Severity, d.Message)
}

// Sink accepts diagnostics in submission order. Emitting never fails.
type Sink interface {
	Emit(d Diagnostic)
}

// Recorder is a [Sink] that keeps all diagnostics in memory.
type Recorder struct {
	Diagnostics []Diagnostic
}

// Emit implements [Sink].
func (r *Recorder) Emit(d Diagnostic) {
	r.Diagnostics = append(r.Diagnostics, d)
}

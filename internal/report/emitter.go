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

	"fillmore-labs.com/capturecheck/internal/capture"
)

// Emitter turns each finding into an error, a note and a remark, in this order.
type Emitter struct {
	sink  Sink
	fixer *Fixer
}

// NewEmitter creates an [Emitter] writing to sink.
func NewEmitter(sink Sink) Emitter {
	return Emitter{sink: sink}
}

// WithFixer returns an [Emitter] attaching the fixes of f to the remarks.
func (e Emitter) WithFixer(f *Fixer) Emitter {
	e.fixer = f

	return e
}

// Report implements [capture.Reporter].
func (e Emitter) Report(access capture.FieldAccess, closure *capture.Closure) {
	name := access.Name()

	e.sink.Emit(Diagnostic{
		Severity: Error,
		Pos:      access.Expr.Pos(),
		End:      access.Expr.End(),
		Message: fmt.Sprintf("Closure capturing receiver '%s' accesses %s field '%s' (cc:%s)",
			closure.Receiver.Name(), access.Kind, name, access.Kind.Code()),
	})

	e.sink.Emit(Diagnostic{
		Severity: Note,
		Pos:      access.Field.Pos(),
		Message:  fmt.Sprintf("Field '%s' declared here", access.Field.Name()),
	})

	e.sink.Emit(Diagnostic{
		Severity: Remark,
		Pos:      closure.Pos(),
		End:      closure.Lit.Type.End(),
		Message:  fmt.Sprintf("Consider copying '%s' to a local variable just before creating the closure", name),
		Fixes:    e.fixer.CopyToLocal(access, closure),
	})
}

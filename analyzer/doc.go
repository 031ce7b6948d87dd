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

// Package analyzer implements the capturecheck static analysis pass.
//
// # Overview
//
// CaptureCheck detects function literals inside methods that capture the
// receiver and read a receiver field of pointer, slice or array type. The
// closure observes the field when it runs, which may be long after the method
// returned and the field was reassigned.
//
// # Example
//
// Before:
//
//	func (s *Server) Start() {
//	    go func() {
//	        s.conns[0].Close()  // reads s.conns when the goroutine runs
//	    }()
//	}
//
// After:
//
//	func (s *Server) Start() {
//	    conns := s.conns
//	    go func() {
//	        conns[0].Close()
//	    }()
//	}
//
// # Diagnostics
//
// Every finding is reported as three diagnostics: an error at the field
// access, a note at the field declaration and a remark at the closure. With
// the -related flag, note and remark are attached to the error as related information.
//
// The remark carries a suggested fix producing the "After" code above when the
// copy is equivalent: the field is read unconditionally, never written, and the
// receiver is used only to select fields.
//
// Pointer receivers are checked by default, value receivers with -value-receivers.
// Use //nolint:capturecheck on the access line, the method or the file to suppress findings.
package analyzer

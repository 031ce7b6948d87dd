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

// Package capture finds function literals that capture the receiver of their
// enclosing method and read receiver fields of pointer or array type.
//
// Such a closure observes the field at the time it runs, not at the time it was
// created. When the closure outlives the method call (goroutines, callbacks,
// deferred or stored functions) it may see a reassigned, resliced or released
// value. Copying the field to a local variable before creating the closure pins
// the value.
//
// # Stages
//
//   - [Walker] traverses all function declarations of a package and evaluates
//     every function literal inside a method independently, nested literals included.
//   - [Analyzer] determines the captures of a literal and decides whether it
//     binds the enclosing receiver.
//   - [Scanner] streams the risky field accesses of one statement, stopping at
//     nested function literals so each access is attributed to its innermost closure.
//   - [Classify] is the type predicate.
package capture

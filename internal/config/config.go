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

package config

// Behavior represents configuration options for the analyzer.
type Behavior uint8

const (
	// IncludeGenerated specifies whether to include analysis of generated files.
	IncludeGenerated Behavior = 1 << iota

	// ValueReceivers treats value receivers as the enclosing object, not only pointer receivers.
	ValueReceivers

	// RelatedInformation folds notes and remarks into the related information of the error diagnostic.
	RelatedInformation
)

// Flags is the set of enabled [Behavior] options.
type Flags = BitMask[Behavior]

// DefaultFlags returns the default behavior: pointer receivers only, separate diagnostics, no generated files.
func DefaultFlags() Flags {
	return NewBitMask[Behavior]()
}

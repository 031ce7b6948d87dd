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

package gclplugin

import capturecheck "fillmore-labs.com/capturecheck/analyzer"

// Settings represents the configuration options for an instance of the [Plugin].
type Settings struct {
	// Generated enables diagnostics in generated files.
	// The golangci-lint plugin always enables it and leaves filtering to golangci-lint.
	Generated *bool `json:"generated,omitzero"`
	// ValueReceivers also checks closures capturing value receivers.
	ValueReceivers *bool `json:"value-receivers,omitzero"`
	// Related reports notes and remarks as related information of the error.
	Related *bool `json:"related,omitzero"`
}

// Options converts [Settings] into a list of [capturecheck.Option] for the capturecheck analyzer.
// It processes settings and applies them only when explicitly set (non-nil).
func (s Settings) Options() []capturecheck.Option {
	var opts []capturecheck.Option

	opts = appendOption(opts, s.Generated, capturecheck.WithGenerated)
	opts = appendOption(opts, s.ValueReceivers, capturecheck.WithValueReceivers)
	opts = appendOption(opts, s.Related, capturecheck.WithRelated)

	return opts
}

// appendOption appends a non-nil setting to a [capturecheck.Option] list.
func appendOption[T any](opts []capturecheck.Option, value *T, constructor func(T) capturecheck.Option) []capturecheck.Option {
	if value == nil {
		return opts
	}

	return append(opts, constructor(*value))
}

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

package analyzer

import (
	"log/slog"

	"fillmore-labs.com/capturecheck/internal/config"
	"fillmore-labs.com/capturecheck/internal/run"
)

// Option configures specific behavior of a [New] capturecheck analyzer.
type Option interface {
	apply(r *run.Options)
	LogAttr() slog.Attr
}

// Options is a list of [Option] values that itself satisfies the [Option] interface.
type Options []Option

// LogValue implements [slog.LogValuer].
func (o Options) LogValue() slog.Value {
	as := make([]slog.Attr, 0, len(o))
	as = appendOptions(as, o)

	return slog.GroupValue(as...)
}

func appendOptions(as []slog.Attr, o Options) []slog.Attr {
	for _, opt := range o {
		switch opt := opt.(type) {
		case nil:
			as = append(as, slog.String("nil", "<nil>"))

		case Options:
			as = appendOptions(as, opt)

		default:
			as = append(as, opt.LogAttr())
		}
	}

	return as
}

func (o Options) apply(r *run.Options) {
	for _, opt := range o {
		if opt == nil {
			continue
		}

		opt.apply(r)
	}
}

// LogAttr is for logging with [slog.Logger.LogAttrs].
func (o Options) LogAttr() slog.Attr {
	return slog.Any("options", o)
}

// WithGenerated is an [Option] to configure diagnostics in generated files.
func WithGenerated(generated bool) Option { return generatedOption{generated: generated} }

type generatedOption struct{ generated bool }

func (o generatedOption) apply(r *run.Options) {
	r.Behavior.Set(config.IncludeGenerated, o.generated)
}

func (o generatedOption) LogAttr() slog.Attr {
	return slog.Bool("generated", o.generated)
}

// WithValueReceivers is an [Option] to also check closures capturing value receivers.
func WithValueReceivers(valueReceivers bool) Option {
	return valueReceiversOption{valueReceivers: valueReceivers}
}

type valueReceiversOption struct{ valueReceivers bool }

func (o valueReceiversOption) apply(r *run.Options) {
	r.Behavior.Set(config.ValueReceivers, o.valueReceivers)
}

func (o valueReceiversOption) LogAttr() slog.Attr {
	return slog.Bool("value-receivers", o.valueReceivers)
}

// WithRelated is an [Option] to report notes and remarks as related information of the error diagnostic.
func WithRelated(related bool) Option { return relatedOption{related: related} }

type relatedOption struct{ related bool }

func (o relatedOption) apply(r *run.Options) {
	r.Behavior.Set(config.RelatedInformation, o.related)
}

func (o relatedOption) LogAttr() slog.Attr {
	return slog.Bool("related", o.related)
}

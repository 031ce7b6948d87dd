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

package report_test

import (
	"context"
	"go/token"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/tools/go/analysis"

	"fillmore-labs.com/capturecheck/internal/capture"
	. "fillmore-labs.com/capturecheck/internal/report"
	"fillmore-labs.com/capturecheck/internal/testsource"
)

const fixDecls = `type elem struct{}

type ints []int

func (p *ints) Add(v int) { *p = append(*p, v) }

type list struct {
	head *elem
	data []int
	buf  [4]int
	vals ints
	in   inner
	n    int
}

func (l *list) Reset() { l.head = nil }

type inner struct{ p *int }

type shared struct{ ids []int }

type view struct{ *shared }

`

func TestFixer(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		src  string
		want string // empty for no fix
	}{
		{
			name: "pointer",
			src: `func (l *list) Walk(f func(*elem)) {
	go func() {
		f(l.head)
		f(l.head)
	}()
}
`,
			want: `func (l *list) Walk(f func(*elem)) {
	head := l.head
	go func() {
		f(head)
		f(head)
	}()
}
`,
		},
		{
			name: "name_taken",
			src: `func (l *list) Sum(data int) func() int {
	return func() int {
		return data + len(l.data)
	}
}
`,
			want: `func (l *list) Sum(data int) func() int {
	data_1 := l.data
	return func() int {
		return data + len(data_1)
	}
}
`,
		},
		{
			name: "case_body",
			src: `func (l *list) Switch(ok bool, f func(*elem)) {
	switch {
	case ok:
		go func() { f((*l).head) }()
	}
}
`,
			want: `func (l *list) Switch(ok bool, f func(*elem)) {
	switch {
	case ok:
		head := (*l).head
		go func() { f(head) }()
	}
}
`,
		},
		{
			name: "assigned",
			src: `func (l *list) Push(v int) func() {
	return func() {
		l.data = append(l.data, v)
	}
}
`,
		},
		{
			name: "address_taken",
			src: `func (l *list) Ref() func() *[]int {
	return func() *[]int {
		return &l.data
	}
}
`,
		},
		{
			name: "pointer_method",
			src: `func (l *list) Add() func() {
	return func() {
		l.vals.Add(1)
	}
}
`,
		},
		{
			name: "array",
			src: `func (l *list) First() func() int {
	return func() int {
		return l.buf[0]
	}
}
`,
		},
		{
			name: "loop_condition",
			src: `func (l *list) Loop() {
	for i := 0; i < len(func() []int { return l.data }()); i++ {
	}
}
`,
		},
		{
			name: "nil_guard",
			src: `func (l *list) Guarded(use func(*elem)) {
	defer func() {
		if l != nil {
			use(l.head)
		}
	}()
}
`,
		},
		{
			name: "conditional_read",
			src: `func (l *list) Maybe(ok bool, use func(*elem)) {
	go func() {
		if ok {
			use(l.head)
		}
	}()
}
`,
		},
		{
			name: "short_circuit",
			src: `func (l *list) Check(ok bool) func() bool {
	return func() bool {
		return ok && l.head != nil
	}
}
`,
		},
		{
			name: "read_in_loop",
			src: `func (l *list) Each(use func(int)) func() {
	return func() {
		for i := range 3 {
			use(len(l.data) + i)
		}
	}
}
`,
		},
		{
			name: "method_on_receiver",
			src: `func (l *list) Later(use func(*elem)) func() {
	return func() {
		l.Reset()
		use(l.head)
	}
}
`,
		},
		{
			name: "nested_literal_writes",
			src: `func (l *list) Clear(use func(*elem)) func() {
	return func() {
		func() { l.head = nil }()
		use(l.head)
	}
}
`,
		},
		{
			name: "enclosing_value_written",
			src: `func (l *list) Swap(use func(*int)) func() {
	return func() {
		l.in = inner{}
		use(l.in.p)
	}
}
`,
		},
		{
			name: "unconditional_read_with_field_condition",
			src: `func (l *list) Count(use func(*elem)) func() {
	return func() {
		use(l.head)
		if l.n > 0 {
			use(nil)
		}
	}
}
`,
			want: `func (l *list) Count(use func(*elem)) func() {
	head := l.head
	return func() {
		use(head)
		if l.n > 0 {
			use(nil)
		}
	}
}
`,
		},
		{
			name: "promoted_through_pointer",
			src: `func (v *view) IDs() func() []int {
	return func() []int {
		return v.ids
	}
}
`,
		},
		{
			name: "case_expression",
			src: `func (l *list) Case(n int) {
	switch n {
	case len(func() []int { return l.data }()):
	}
}
`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			src := fixDecls + tt.src
			fset, _, info, root := testsource.Load(t, src)

			var reported []analysis.Diagnostic

			p := &analysis.Pass{
				Fset:      fset,
				TypesInfo: info,
				Report:    func(d analysis.Diagnostic) { reported = append(reported, d) },
			}

			analyzer := capture.NewAnalyzer(info, false)

			var rec Recorder

			w := capture.Walker{
				Fset:     fset,
				Analyzer: analyzer,
				Reporter: NewEmitter(&rec).WithFixer(NewFixer(p, root, analyzer)),
			}

			w.Analyze(context.Background(), root)

			require.NotEmpty(t, rec.Diagnostics)
			assert.Empty(t, reported, "no internal errors")

			var fixes []analysis.SuggestedFix
			for _, d := range rec.Diagnostics {
				if d.Severity != Remark {
					assert.Empty(t, d.Fixes, "only remarks carry fixes")
				}

				fixes = append(fixes, d.Fixes...)
			}

			if tt.want == "" {
				assert.Empty(t, fixes)

				return
			}

			require.Len(t, fixes, 1)
			assert.Equal(t, testsource.Header+fixDecls+tt.want, apply(t, fset, testsource.Header+src, fixes[0]))
		})
	}
}

func TestFixerNil(t *testing.T) {
	t.Parallel()

	var f *Fixer

	assert.Nil(t, f.CopyToLocal(capture.FieldAccess{}, nil))
}

// apply applies the edits of fix to src.
func apply(tb testing.TB, fset *token.FileSet, src string, fix analysis.SuggestedFix) string {
	tb.Helper()

	edits := slices.Clone(fix.TextEdits)
	slices.SortFunc(edits, func(a, b analysis.TextEdit) int { return int(b.Pos - a.Pos) })

	for _, e := range edits {
		end := e.End
		if !end.IsValid() {
			end = e.Pos
		}

		start, stop := fset.Position(e.Pos).Offset, fset.Position(end).Offset
		require.LessOrEqual(tb, start, stop)

		src = src[:start] + string(e.NewText) + src[stop:]
	}

	return src
}

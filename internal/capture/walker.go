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

package capture

import (
	"context"
	"go/ast"
	"go/token"
	"go/types"
	"runtime/trace"

	"golang.org/x/tools/go/ast/edge"
	"golang.org/x/tools/go/ast/inspector"

	"fillmore-labs.com/capturecheck/internal/astutil"
)

// Reporter receives every risky field access together with the closure it is attributed to.
type Reporter interface {
	Report(access FieldAccess, closure *Closure)
}

// Walker traverses the syntax trees of one package.
type Walker struct {
	Fset     *token.FileSet
	Analyzer Analyzer
	Reporter Reporter

	// Generated enables analysis of generated files.
	Generated bool
}

// Analyze visits all files below root depth-first in source order and reports
// the findings of every function literal created inside a method.
//
// Analyze holds no state between calls, running it twice on the same tree reports the same sequence.
func (w Walker) Analyze(ctx context.Context, root inspector.Cursor) {
	defer trace.StartRegion(ctx, "Walk").End()

	for f := range root.Children() {
		file, ok := f.Node().(*ast.File)
		if !ok {
			continue
		}

		currentFile := astutil.NewCurrentFile(w.Fset, file)
		if currentFile.Skip(w.Generated) {
			continue
		}

		w.file(ctx, currentFile, f)
	}
}

func (w Walker) file(ctx context.Context, currentFile astutil.CurrentFile, f inspector.Cursor) {
	for c := range f.Preorder((*ast.FuncDecl)(nil)) {
		decl := c.Node().(*ast.FuncDecl)

		if decl.Body == nil || astutil.DocHasNoLint(decl.Doc) {
			continue
		}

		// Without a receiver there is no enclosing object to capture
		recv := ReceiverOf(w.Analyzer.scanner.info, decl)
		if recv == nil {
			continue
		}

		body := c.ChildAt(edge.FuncDecl_Body, -1)
		for l := range body.Preorder((*ast.FuncLit)(nil)) {
			w.closure(ctx, currentFile, l.Node().(*ast.FuncLit), recv)
		}
	}
}

// closure evaluates a single function literal. Nested literals are visited
// separately by the caller's traversal.
func (w Walker) closure(ctx context.Context, currentFile astutil.CurrentFile, lit *ast.FuncLit, recv *types.Var) {
	c := w.Analyzer.Closure(lit, recv)
	if !w.Analyzer.ShouldInspect(c) {
		return
	}

	defer trace.StartRegion(ctx, "Inspect").End()

	for access := range w.Analyzer.Inspect(c) {
		if currentFile.NoLintLine(access.Expr.Pos()) {
			continue
		}

		w.Reporter.Report(access, c)
	}
}

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

package report

import (
	"bytes"
	"go/ast"
	"go/printer"
	"go/token"
	"go/types"
	"strings"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/ast/edge"
	"golang.org/x/tools/go/ast/inspector"

	"fillmore-labs.com/capturecheck/internal/capture"
)

var rawcfg = &printer.Config{Mode: printer.RawFormat}

// Fixer creates suggested fixes that copy a risky field into a local variable
// declared just before the statement creating the closure.
//
// A nil *Fixer creates no fixes.
type Fixer struct {
	pass     *analysis.Pass
	root     inspector.Cursor
	analyzer capture.Analyzer
	names    Renamer

	// fixed tracks field expressions already fixed per closure.
	fixed map[fixKey]struct{}
}

type fixKey struct {
	lit  *ast.FuncLit
	expr string
}

// NewFixer creates a [Fixer] for the files of p below root.
// analyzer must be the one that produced the reported accesses.
func NewFixer(p *analysis.Pass, root inspector.Cursor, analyzer capture.Analyzer) *Fixer {
	return &Fixer{pass: p, root: root, analyzer: analyzer}
}

// CopyToLocal creates a fix replacing every read of the accessed field in the closure
// with a local copy.
//
// The method returns nil when the copy would change the meaning of the program:
//   - the field is an array (copied by value) or is promoted through an embedded pointer,
//   - a read happens only conditionally or inside a nested function literal,
//   - the field or a struct value containing it is written or has its address taken in the closure,
//   - the receiver is used other than to select fields, for example in a nil check,
//   - the closure is created in a loop condition, post statement or case expression.
//
// Each field expression is fixed at most once per closure.
func (f *Fixer) CopyToLocal(access capture.FieldAccess, closure *capture.Closure) []analysis.SuggestedFix {
	if f == nil || closure == nil || closure.Receiver == nil || access.Promoted ||
		isArray(f.pass.TypesInfo.TypeOf(access.Expr)) {
		return nil
	}

	expr := types.ExprString(access.Expr)

	key := fixKey{lit: closure.Lit, expr: expr}
	if _, ok := f.fixed[key]; ok {
		return nil
	}

	if f.fixed == nil {
		f.fixed = make(map[fixKey]struct{})
	}
	f.fixed[key] = struct{}{}

	lit, ok := f.root.FindByPos(closure.Lit.Pos(), closure.Lit.End())
	if !ok || lit.Node() != closure.Lit {
		internalError(f.pass, closure.Lit, "Can't locate closure")

		return nil
	}

	stmt, ok := insertionPoint(lit)
	if !ok {
		return nil
	}

	reads, ok := f.reads(lit, closure, access, expr)
	if !ok {
		return nil
	}

	name, ok := f.names.Name(closure.Receiver.Parent().Innermost(stmt.Pos()), access.Field.Name())
	if !ok {
		return nil
	}

	var buf bytes.Buffer

	buf.WriteString(name) // ignore error
	buf.WriteString(" := ")

	if err := rawcfg.Fprint(&buf, f.pass.Fset, access.Expr); err != nil {
		internalError(f.pass, access.Expr, "Can't render expression: %s", err)

		return nil
	}

	buf.WriteByte('\n') // ignore error
	buf.WriteString(indentation(f.pass.Fset, stmt.Pos()))

	edits := make([]analysis.TextEdit, 0, len(reads)+1)
	edits = append(edits, analysis.TextEdit{Pos: stmt.Pos(), NewText: buf.Bytes()})

	for _, sel := range reads {
		edits = append(edits, analysis.TextEdit{Pos: sel.Pos(), End: sel.End(), NewText: []byte(name)})
	}

	return []analysis.SuggestedFix{{Message: "Copy '" + expr + "' to local variable '" + name + "'", TextEdits: edits}}
}

// reads collects the accesses to the field spelled expr in the closure's own body.
// It returns false if any of them is not an unconditional plain read, or if the copy
// could observe a different value than the closure.
//
// Nested function literals are searched too, they share the closure's receiver.
func (f *Fixer) reads(lit inspector.Cursor, closure *capture.Closure, access capture.FieldAccess, expr string) ([]*ast.SelectorExpr, bool) {
	targets := make(map[ast.Node]struct{})

	for a := range f.analyzer.Inspect(closure) {
		if a.Field == access.Field && !a.Promoted && types.ExprString(a.Expr) == expr {
			targets[a.Expr] = struct{}{}
		}
	}

	chain := f.chain(access.Expr, closure)

	var reads []*ast.SelectorExpr

	for c := range lit.Preorder((*ast.Ident)(nil), (*ast.SelectorExpr)(nil)) {
		switch n := c.Node().(type) {
		case *ast.Ident:
			if f.pass.TypesInfo.Uses[n] == closure.Receiver && f.escapes(c) {
				return nil, false
			}

		case *ast.SelectorExpr:
			field, ok := f.analyzer.Field(n, closure)
			if !ok {
				continue
			}

			if _, ok := chain[field]; ok && f.modified(c) {
				return nil, false
			}

			if _, ok := targets[n]; !ok {
				continue
			}

			if conditional(c, lit) {
				return nil, false
			}

			reads = append(reads, n)
		}
	}

	return reads, len(reads) > 0
}

// chain returns the field selected by sel together with the struct values it is reached through.
func (f *Fixer) chain(sel *ast.SelectorExpr, closure *capture.Closure) map[*types.Var]struct{} {
	chain := make(map[*types.Var]struct{})

	for ok := true; ok; sel, ok = ast.Unparen(sel.X).(*ast.SelectorExpr) {
		if field, ok := f.analyzer.Field(sel, closure); ok {
			chain[field] = struct{}{}
		}
	}

	return chain
}

// escapes reports whether the receiver identifier at c is used other than to select a field.
// Method calls, comparisons and assignments through the receiver all qualify.
func (f *Fixer) escapes(c inspector.Cursor) bool {
	for {
		if kind, _ := c.ParentEdge(); kind != edge.ParenExpr_X && kind != edge.StarExpr_X {
			break
		}

		c = c.Parent()
	}

	if kind, _ := c.ParentEdge(); kind != edge.SelectorExpr_X {
		return true
	}

	selection, ok := f.pass.TypesInfo.Selections[c.Parent().Node().(*ast.SelectorExpr)]

	return !ok || selection.Kind() != types.FieldVal
}

// conditional reports whether the expression at c, inside lit, is evaluated only on some paths
// or only when a nested function literal runs.
func conditional(c, lit inspector.Cursor) bool {
	for ; c.Index() != lit.Index(); c = c.Parent() {
		if c.Parent().Index() == lit.Index() {
			return false // the literal's own body
		}

		switch kind, _ := c.ParentEdge(); kind {
		case edge.IfStmt_Body, edge.IfStmt_Else,
			edge.ForStmt_Cond, edge.ForStmt_Post, edge.ForStmt_Body, edge.RangeStmt_Body,
			edge.SwitchStmt_Body, edge.TypeSwitchStmt_Body, edge.SelectStmt_Body,
			edge.FuncLit_Body:
			return true

		case edge.BinaryExpr_Y:
			if op := c.Parent().Node().(*ast.BinaryExpr).Op; op == token.LAND || op == token.LOR {
				return true
			}
		}
	}

	return false
}

// modified reports whether the expression at c is assigned, incremented or has its address taken,
// explicitly or by calling a pointer method.
func (f *Fixer) modified(c inspector.Cursor) bool {
	for {
		if kind, _ := c.ParentEdge(); kind != edge.ParenExpr_X {
			break
		}

		c = c.Parent()
	}

	switch kind, _ := c.ParentEdge(); kind {
	case edge.AssignStmt_Lhs, edge.IncDecStmt_X, edge.RangeStmt_Key, edge.RangeStmt_Value:
		return true

	case edge.UnaryExpr_X:
		return c.Parent().Node().(*ast.UnaryExpr).Op == token.AND

	case edge.SelectorExpr_X:
		return f.addressedByMethod(c.Parent().Node().(*ast.SelectorExpr))
	}

	return false
}

// addressedByMethod reports whether sel selects a pointer method on an addressable non-pointer operand.
func (f *Fixer) addressedByMethod(sel *ast.SelectorExpr) bool {
	selection, ok := f.pass.TypesInfo.Selections[sel]
	if !ok || selection.Kind() != types.MethodVal {
		return false
	}

	sig, ok := selection.Obj().Type().(*types.Signature)
	if !ok || sig.Recv() == nil {
		return false
	}

	_, ptrRecv := sig.Recv().Type().Underlying().(*types.Pointer)
	_, ptrOperand := types.Unalias(selection.Recv()).Underlying().(*types.Pointer)

	return ptrRecv && !ptrOperand
}

// insertionPoint returns the statement of the enclosing statement list that contains the closure.
//
// Loop conditions and post statements run repeatedly and case expressions conditionally,
// hoisting a read out of them is not equivalent.
func insertionPoint(c inspector.Cursor) (ast.Stmt, bool) {
	for ; c.Node() != nil; c = c.Parent() {
		switch kind, _ := c.ParentEdge(); kind {
		case edge.BlockStmt_List, edge.CaseClause_Body, edge.CommClause_Body:
			switch stmt := c.Node().(type) {
			case *ast.CaseClause, *ast.CommClause: // case expressions are evaluated conditionally
				return nil, false

			case ast.Stmt:
				return stmt, true
			}

			return nil, false

		case edge.ForStmt_Cond, edge.ForStmt_Post:
			return nil, false
		}
	}

	return nil, false
}

// indentation returns the leading tabs of a gofmt-formatted line starting at pos.
func indentation(fset *token.FileSet, pos token.Pos) string {
	column := fset.Position(pos).Column
	if column <= 1 {
		return ""
	}

	return strings.Repeat("\t", column-1)
}

func isArray(t types.Type) bool {
	if t == nil {
		return false
	}

	_, ok := t.Underlying().(*types.Array)

	return ok
}

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
	"go/ast"
	"go/types"
	"iter"
)

// FieldAccess is a risky access to a field of the enclosing object.
type FieldAccess struct {
	Expr  *ast.SelectorExpr
	Field *types.Var
	Kind  FieldKind

	// Promoted is true when Field is an embedded pointer the selected field is promoted through,
	// not the selected field itself.
	Promoted bool
}

// Name returns the field path as written, ending at the embedded pointer for promoted accesses.
func (a FieldAccess) Name() string {
	if a.Promoted {
		return types.ExprString(a.Expr.X) + "." + a.Field.Name()
	}

	return types.ExprString(a.Expr)
}

// Scanner finds accesses to pointer-like and array-like receiver fields.
type Scanner struct {
	info *types.Info
}

// NewScanner creates a [Scanner] operating on the given type information.
func NewScanner(info *types.Info) Scanner {
	return Scanner{info: info}
}

// Scan yields the risky accesses to fields of the closure's receiver within stmt, in source order.
//
// Nested function literals are not entered, they are evaluated as closures of their own.
func (s Scanner) Scan(stmt ast.Stmt, c *Closure) iter.Seq[FieldAccess] {
	return func(yield func(FieldAccess) bool) {
		if stmt == nil || c == nil || c.Receiver == nil {
			return
		}

		stop := false

		ast.Inspect(stmt, func(n ast.Node) bool {
			if stop {
				return false
			}

			switch n := n.(type) {
			case *ast.FuncLit:
				return false

			case *ast.SelectorExpr:
				if access, ok := s.fieldAccess(n, c.Receiver); ok && !yield(access) {
					stop = true

					return false
				}
			}

			return true
		})
	}
}

// Field returns the field selected by sel when sel is rooted at recv.
// The field need not be risky.
func (s Scanner) Field(sel *ast.SelectorExpr, recv *types.Var) (*types.Var, bool) {
	field, ok := s.field(sel)
	if !ok || recv == nil || !s.rootedAt(sel.X, recv) {
		return nil, false
	}

	return field, true
}

// fieldAccess checks whether sel reads a risky field reached from recv.
//
// A field promoted through an embedded pointer lives behind that pointer, so the
// embedded field is reported instead, as if the path had been spelled out.
func (s Scanner) fieldAccess(sel *ast.SelectorExpr, recv *types.Var) (FieldAccess, bool) {
	field, ok := s.Field(sel, recv)
	if !ok {
		return FieldAccess{}, false
	}

	if embedded, ok := s.embeddedPointer(sel); ok {
		return FieldAccess{Expr: sel, Field: embedded, Kind: Classify(embedded.Type()), Promoted: true}, true
	}

	t := s.info.TypeOf(sel)
	if t == nil {
		t = field.Type()
	}

	kind := Classify(t)
	if !kind.Risky() {
		return FieldAccess{}, false
	}

	return FieldAccess{Expr: sel, Field: field, Kind: kind}, true
}

// field returns the field selected by sel, if sel is a field selection.
func (s Scanner) field(sel *ast.SelectorExpr) (*types.Var, bool) {
	selection, ok := s.info.Selections[sel]
	if !ok || selection.Kind() != types.FieldVal {
		return nil, false
	}

	field, ok := selection.Obj().(*types.Var)

	return field, ok
}

// rootedAt reports whether x denotes recv, possibly explicitly dereferenced,
// or a field reached from recv through struct values only.
//
// A pointer-like or array-like hop ends the chain: that hop is reported on its own,
// anything selected beyond it lives outside the receiver.
func (s Scanner) rootedAt(x ast.Expr, recv *types.Var) bool {
	for {
		switch e := ast.Unparen(x).(type) {
		case *ast.Ident:
			return s.info.Uses[e] == recv

		case *ast.StarExpr:
			id, ok := ast.Unparen(e.X).(*ast.Ident)

			return ok && s.info.Uses[id] == recv

		case *ast.SelectorExpr:
			if _, ok := s.field(e); !ok || Classify(s.info.TypeOf(e)).Risky() {
				return false
			}

			if _, ok := s.embeddedPointer(e); ok {
				return false
			}

			x = e.X

		default:
			return false
		}
	}
}

// embeddedPointer returns the first risky embedded field the selection of sel
// implicitly passes through.
func (s Scanner) embeddedPointer(sel *ast.SelectorExpr) (*types.Var, bool) {
	selection, ok := s.info.Selections[sel]
	if !ok {
		return nil, false
	}

	index := selection.Index()
	if len(index) < 2 {
		return nil, false
	}

	t := selection.Recv()

	for _, i := range index[:len(index)-1] {
		if p, ok := types.Unalias(t).Underlying().(*types.Pointer); ok {
			t = p.Elem()
		}

		st, ok := types.Unalias(t).Underlying().(*types.Struct)
		if !ok || i >= st.NumFields() {
			return nil, false
		}

		embedded := st.Field(i)
		if Classify(embedded.Type()).Risky() {
			return embedded, true
		}

		t = embedded.Type()
	}

	return nil, false
}

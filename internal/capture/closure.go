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
	"go/token"
	"go/types"
	"iter"
)

// Capture is a variable from an enclosing function that is referenced inside a function literal.
type Capture struct {
	Var *types.Var

	// Enclosing is true if the captured variable is the enclosing object, the receiver of the surrounding method.
	Enclosing bool
}

// Closure is a function literal inside a method together with its captures.
type Closure struct {
	Lit      *ast.FuncLit
	Receiver *types.Var
	Captures []Capture
}

// Pos returns the position of the literal's func keyword.
func (c *Closure) Pos() token.Pos { return c.Lit.Pos() }

// CapturesReceiver reports whether any capture binds the enclosing object.
func (c *Closure) CapturesReceiver() bool {
	for _, capture := range c.Captures {
		if capture.Enclosing {
			return true
		}
	}

	return false
}

// Analyzer decides which closures capture their enclosing object and scans those.
type Analyzer struct {
	scanner Scanner

	// valueReceivers treats value receivers like pointer receivers.
	valueReceivers bool
}

// NewAnalyzer creates an [Analyzer] operating on the given type information.
func NewAnalyzer(info *types.Info, valueReceivers bool) Analyzer {
	return Analyzer{scanner: NewScanner(info), valueReceivers: valueReceivers}
}

// Closure computes the captures of lit, created in a method with receiver recv.
// recv may be nil for plain functions, in which case no capture binds an enclosing object.
func (a Analyzer) Closure(lit *ast.FuncLit, recv *types.Var) *Closure {
	enclosing := recv != nil && (a.valueReceivers || isPointer(recv.Type()))

	var captures []Capture
	for v := range freeVars(a.scanner.info, lit) {
		captures = append(captures, Capture{Var: v, Enclosing: enclosing && v == recv})
	}

	return &Closure{Lit: lit, Receiver: recv, Captures: captures}
}

// ShouldInspect reports whether the closure captures the enclosing object and must be scanned.
func (a Analyzer) ShouldInspect(c *Closure) bool {
	return c != nil && c.CapturesReceiver()
}

// Inspect yields every risky receiver field access in the closure's own body.
//
// Closures that don't capture the enclosing object, or have a missing or empty body, yield nothing.
func (a Analyzer) Inspect(c *Closure) iter.Seq[FieldAccess] {
	return func(yield func(FieldAccess) bool) {
		if !a.ShouldInspect(c) || c.Lit.Body == nil || len(c.Lit.Body.List) == 0 {
			return
		}

		for _, stmt := range c.Lit.Body.List {
			for access := range a.scanner.Scan(stmt, c) {
				if !yield(access) {
					return
				}
			}
		}
	}
}

// Field returns the field selected by sel when sel is rooted at the closure's receiver,
// regardless of the field's kind.
func (a Analyzer) Field(sel *ast.SelectorExpr, c *Closure) (*types.Var, bool) {
	if c == nil {
		return nil, false
	}

	return a.scanner.Field(sel, c.Receiver)
}

// ReceiverOf returns the named receiver variable of a method declaration,
// or nil for functions, blank or unnamed receivers and missing type information.
func ReceiverOf(info *types.Info, decl *ast.FuncDecl) *types.Var {
	if decl.Recv == nil || len(decl.Recv.List) != 1 {
		return nil
	}

	names := decl.Recv.List[0].Names
	if len(names) != 1 || names[0].Name == "_" {
		return nil
	}

	v, _ := info.Defs[names[0]].(*types.Var)

	return v
}

// freeVars yields the local variables declared outside lit and referenced inside it,
// in order of first use. References in nested literals count, since the outer
// literal has to capture them too.
func freeVars(info *types.Info, lit *ast.FuncLit) iter.Seq[*types.Var] {
	return func(yield func(*types.Var) bool) {
		if lit.Body == nil {
			return
		}

		seen := make(map[*types.Var]struct{})
		stop := false

		ast.Inspect(lit.Body, func(n ast.Node) bool {
			if stop {
				return false
			}

			id, ok := n.(*ast.Ident)
			if !ok {
				return true
			}

			v, ok := info.Uses[id].(*types.Var)
			if !ok || v.IsField() || !isLocal(v) || declaredIn(v, lit) {
				return true
			}

			if _, ok := seen[v]; ok {
				return true
			}

			seen[v] = struct{}{}

			if !yield(v) {
				stop = true
			}

			return !stop
		})
	}
}

// isLocal reports whether v is declared in function scope.
func isLocal(v *types.Var) bool {
	if v.Pkg() == nil || v.Parent() == nil {
		return false
	}

	return v.Parent() != v.Pkg().Scope()
}

// declaredIn reports whether v is declared inside the literal.
func declaredIn(v *types.Var, lit *ast.FuncLit) bool {
	return lit.Pos() <= v.Pos() && v.Pos() < lit.End()
}

func isPointer(t types.Type) bool {
	_, ok := t.Underlying().(*types.Pointer)

	return ok
}

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

// Package testsource provides utilities for parsing and analyzing Go source code in tests.
//
// It is designed to simplify testing of the capturecheck analyzer by handling common
// boilerplate code for parsing and type-checking Go source fragments.
package testsource

import (
	"go/ast"
	"go/importer"
	"go/parser"
	"go/token"
	"go/types"
	"testing"

	"golang.org/x/tools/go/ast/inspector"
)

const testpkg = "test"

// Parse parses Go declarations into an AST.
// The provided source `src` is automatically prefixed with the clause `package test`,
// so tests can declare types and methods without the package scaffolding.
//
// Call [Check] on the result when type information is needed.
//
// Returns:
//   - *token.FileSet: The file set containing the single source file.
//   - *ast.File: The parsed AST of the source file.
func Parse(tb testing.TB, src string) (*token.FileSet, *ast.File) {
	tb.Helper()

	return ParseFile(tb, wrapSource(src))
}

// ParseFile parses a complete Go source file, including its package clause.
func ParseFile(tb testing.TB, src string) (*token.FileSet, *ast.File) {
	tb.Helper()

	const filename = "test.go"

	fset := token.NewFileSet()

	f, err := parser.ParseFile(fset, filename, src, parser.ParseComments|parser.SkipObjectResolution)
	if err != nil {
		tb.Fatalf("Failed to parse source %q: %v", src, err)
	}

	return fset, f
}

// Check performs type checking on the provided AST files.
// It creates and returns a fully type-checked *types.Package and *types.Info,
// including the field selections the capture analysis depends on.
func Check(tb testing.TB, fset *token.FileSet, f *ast.File) (*types.Package, *types.Info) {
	tb.Helper()

	info := &types.Info{
		Types:      make(map[ast.Expr]types.TypeAndValue),
		Defs:       make(map[*ast.Ident]types.Object),
		Uses:       make(map[*ast.Ident]types.Object),
		Selections: make(map[*ast.SelectorExpr]*types.Selection),
		Scopes:     make(map[ast.Node]*types.Scope),
	}

	conf := types.Config{Importer: importer.Default()}

	pkg, err := conf.Check(testpkg, fset, []*ast.File{f}, info)
	if err != nil {
		tb.Fatalf("failed to type Check source: %v", err)
	}

	return pkg, info
}

// Load parses and type checks declarations as [Parse] does.
// The returned [inspector.Cursor] is positioned at the root of the single file.
func Load(tb testing.TB, src string) (*token.FileSet, *ast.File, *types.Info, inspector.Cursor) {
	tb.Helper()

	return LoadFile(tb, wrapSource(src))
}

// LoadFile parses and type checks a complete Go source file.
func LoadFile(tb testing.TB, src string) (*token.FileSet, *ast.File, *types.Info, inspector.Cursor) {
	tb.Helper()

	fset, f := ParseFile(tb, src)
	_, info := Check(tb, fset, f)

	return fset, f, info, inspector.New([]*ast.File{f}).Root()
}

// Header is the package clause [Parse] and [Load] prefix to declarations.
const Header = "package " + testpkg + "\n\n"

func wrapSource(src string) string {
	return Header + src
}

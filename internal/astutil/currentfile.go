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

package astutil

import (
	"go/ast"
	"go/token"
	"regexp"
	"slices"
	"strings"
)

// linterName is the name used in nolint directives.
const linterName = "capturecheck"

// CurrentFile holds the per-file state used to filter findings.
type CurrentFile struct {
	handle    *token.File
	comments  []*ast.CommentGroup
	generated bool

	// nolint is set when the package clause carries a nolint directive.
	nolint bool
}

// NewCurrentFile creates a new [CurrentFile] from a [token.FileSet] and an *[ast.File].
func NewCurrentFile(fset *token.FileSet, file *ast.File) CurrentFile {
	if file == nil {
		return CurrentFile{}
	}

	handle := fset.File(file.FileStart)
	if handle == nil {
		return CurrentFile{}
	}

	return CurrentFile{
		handle:    handle,
		comments:  file.Comments,
		generated: ast.IsGenerated(file),
		nolint:    DocHasNoLint(file.Doc),
	}
}

// Skip reports whether no findings should be reported for the file: it has no position
// information, carries a file-level nolint directive or is generated and generated files are excluded.
func (c CurrentFile) Skip(includeGenerated bool) bool {
	return c.handle == nil || c.nolint || (c.generated && !includeGenerated)
}

// NoLintLine reports whether a comment on the line of pos, starting after pos, is a nolint directive.
func (c CurrentFile) NoLintLine(pos token.Pos) bool {
	if c.handle == nil {
		return false
	}

	line := c.handle.Line(pos)

	i, _ := slices.BinarySearchFunc(c.comments, pos,
		func(g *ast.CommentGroup, p token.Pos) int { return int(g.Pos() - p) })

	for _, g := range c.comments[i:] {
		for _, comment := range g.List {
			if c.handle.Line(comment.Pos()) != line {
				return false
			}

			if CommentHasNoLint(comment) {
				return true
			}
		}
	}

	return false
}

// DocHasNoLint checks whether the last line of a doc comment is a `//nolint:capturecheck` directive.
func DocHasNoLint(doc *ast.CommentGroup) bool {
	if doc == nil || len(doc.List) == 0 {
		return false
	}

	return CommentHasNoLint(doc.List[len(doc.List)-1])
}

var nolintDirective = regexp.MustCompile(`^//\s*nolint:([\w,-]+)`)

// CommentHasNoLint reports whether comment is a nolint directive naming capturecheck or all linters.
func CommentHasNoLint(comment *ast.Comment) bool {
	m := nolintDirective.FindStringSubmatch(comment.Text)
	if m == nil {
		return false
	}

	return slices.ContainsFunc(strings.Split(m[1], ","), func(name string) bool {
		name = strings.ToLower(strings.TrimSpace(name))

		return name == linterName || name == "all"
	})
}

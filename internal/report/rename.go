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

package report

import (
	"go/types"
	"strconv"
)

// Renamer picks names for the local copies introduced by suggested fixes.
//
// It ensures uniqueness by checking the scope hierarchy at the insertion point for naming conflicts.
// Its internal map is allocated lazily on the first suffixed name.
type Renamer struct {
	// count tracks the number of times a name has been used as a prefix for a new name.
	// This keeps suffixes (_1, _2, etc.) deterministic across multiple fixes in one package.
	count map[string]int
}

// Name returns name when it is free in scope, otherwise name with the first unused numeric suffix.
//
// It returns false for the blank identifier or when no free name was found.
func (r *Renamer) Name(scope *types.Scope, name string) (string, bool) {
	if r == nil || name == "_" || scope == nil {
		return "", false
	}

	if !conflicts(scope, name) {
		return name, true
	}

	const maxTries = 99

	c := r.count[name]

	for range maxTries {
		c++

		if fullName := name + "_" + strconv.Itoa(c); !conflicts(scope, fullName) {
			// Found a unique name: persist the counter
			if r.count == nil {
				r.count = make(map[string]int)
			}
			r.count[name] = c

			return fullName, true
		}
	}

	return "", false
}

// conflicts reports whether declaring name in scope could shadow or be shadowed by another declaration.
func conflicts(scope *types.Scope, name string) bool {
	return checkParents(scope, name) || checkChildren(scope, name)
}

// checkParents checks if the name is already defined in the scope or any of its parent scopes.
func checkParents(scope *types.Scope, name string) bool {
	for parent := scope; parent != nil; parent = parent.Parent() {
		if parent.Lookup(name) != nil {
			return true
		}
	}

	return false
}

// checkChildren recursively checks if the name is defined in any of the child scopes.
//
// Function literals are child scopes too, so a closure referring to an outer
// declaration of the same name is detected here.
func checkChildren(scope *types.Scope, name string) bool {
	for child := range scope.Children() {
		if child.Lookup(name) != nil {
			return true
		}

		if checkChildren(child, name) {
			return true
		}
	}

	return false
}

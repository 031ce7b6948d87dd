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

import "go/types"

// FieldKind classifies the type of an accessed field.
type FieldKind uint8

//go:generate go tool stringer -type FieldKind -linecomment
const (
	// Inert fields carry no reference hazard.
	Inert FieldKind = iota // inert

	// PointerLike fields hold a pointer or [unsafe.Pointer].
	PointerLike // pointer-like

	// ArrayLike fields hold an array or a slice.
	ArrayLike // array-like
)

// Risky reports whether accesses to fields of this kind are reported.
func (k FieldKind) Risky() bool { return k != Inert }

// Code is the short diagnostic code for this kind.
func (k FieldKind) Code() string {
	switch k {
	case PointerLike:
		return "ptr"
	case ArrayLike:
		return "arr"
	default:
		return "-"
	}
}

// Classify returns the [FieldKind] of a resolved static type.
//
// Type parameters are opaque and classify as [Inert], as do types without
// type information.
func Classify(t types.Type) FieldKind {
	if t == nil {
		return Inert
	}

	if _, ok := types.Unalias(t).(*types.TypeParam); ok {
		return Inert
	}

	switch u := t.Underlying().(type) {
	case *types.Pointer:
		return PointerLike

	case *types.Basic:
		if u.Kind() == types.UnsafePointer {
			return PointerLike
		}

	case *types.Array, *types.Slice:
		return ArrayLike
	}

	return Inert
}

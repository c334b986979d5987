/*
   Copyright 2025 The DIRPX Authors.

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package apis

// Namer is implemented by values that choose their own class name.
//
//	func (User) EntityName() string { return "domain.user" }
//
// EntityName must be cheap, deterministic and safe for concurrent use.
type Namer interface {
	EntityName() string
}

// Identifier is implemented by values that carry their own instance identity.
// A non-empty EntityID replaces the pointer-derived identity tag.
type Identifier interface {
	EntityID() string
}

// Fields receives the fields of a Formattable value.
type Fields interface {
	// Field appends one field at the default detail level.
	Field(name string, v any)
	// FieldDetail appends one field at the requested detail level.
	FieldDetail(name string, v any, d Detail)
}

// Formattable is implemented by types that lay out their own fields.
//
// Formattable is preferred over fmt.Stringer during rendering: the Fields
// passed in shares the render context of the enclosing pass, so cycles
// through Formattable values are detected. A String method that starts a
// fresh session cannot see the enclosing context.
type Formattable interface {
	FormatFields(f Fields)
}

// Collection is implemented by container types that are not slices or maps.
type Collection interface {
	// Len returns the number of elements.
	Len() int
	// Elements returns the elements in iteration order.
	Elements() []any
}

// Char marks a rune as a character rather than an int32.
// Go cannot tell the two apart at runtime, so callers wrap runes explicitly.
type Char rune

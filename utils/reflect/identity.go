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

package reflect

import (
	"reflect"
	"strconv"

	"dirpx.dev/tostr/apis"
)

// Identity is the reference identity of a value: its dynamic type and the
// address it points at. Slices also carry their length, so that s and s[:1]
// are different identities.
type Identity struct {
	t reflect.Type
	p uintptr
	n int
}

// IdentityOf returns the reference identity of v.
// Only pointer, map, chan, func, unsafe pointer and slice kinds have one;
// any other value (including nil references) reports false.
func IdentityOf(v reflect.Value) (Identity, bool) {
	v = Indirect(v)
	if !v.IsValid() {
		return Identity{}, false
	}
	switch v.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Chan, reflect.Func, reflect.UnsafePointer:
		if v.IsNil() {
			return Identity{}, false
		}
		return Identity{t: v.Type(), p: v.Pointer()}, true
	case reflect.Slice:
		if v.IsNil() {
			return Identity{}, false
		}
		return Identity{t: v.Type(), p: v.Pointer(), n: v.Len()}, true
	default:
		return Identity{}, false
	}
}

// IdentityTag returns the tag printed after a class name.
// A non-empty apis.Identifier EntityID wins; otherwise the address in
// hexadecimal. Values without identity yield "".
func IdentityTag(v reflect.Value) string {
	v = Indirect(v)
	if v.IsValid() && v.CanInterface() {
		if id, ok := v.Interface().(apis.Identifier); ok {
			if s := id.EntityID(); s != "" {
				return s
			}
		}
	}
	ident, ok := IdentityOf(v)
	if !ok {
		return ""
	}
	return strconv.FormatUint(uint64(ident.p), 16)
}

// Indirect unwraps interface values until it reaches a concrete value.
func Indirect(v reflect.Value) reflect.Value {
	for v.IsValid() && v.Kind() == reflect.Interface {
		if v.IsNil() {
			return reflect.Value{}
		}
		v = v.Elem()
	}
	return v
}

// IsNil reports whether v is invalid or a nil reference of any nillable kind.
func IsNil(v reflect.Value) bool {
	v = Indirect(v)
	if !v.IsValid() {
		return true
	}
	switch v.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func, reflect.UnsafePointer:
		return v.IsNil()
	default:
		return false
	}
}

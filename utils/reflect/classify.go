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
	"container/list"
	"fmt"
	"reflect"

	"dirpx.dev/tostr/apis"
)

// Variant is the closed set of shapes a rendered value can take.
// Classify picks exactly one per value; styles render each one separately.
type Variant uint8

const (
	// VariantNull is a nil interface or nil reference.
	VariantNull Variant = iota
	// VariantCyclic is a value whose rendering is already in progress.
	VariantCyclic
	// VariantEnum is a named integer type with a String method.
	VariantEnum
	// VariantCollection is a list, set or apis.Collection.
	VariantCollection
	// VariantMap is a map that is not a set.
	VariantMap
	// VariantNumber covers ints, uints, floats and complex numbers.
	VariantNumber
	// VariantBool is a boolean.
	VariantBool
	// VariantChar is an apis.Char.
	VariantChar
	// VariantString is any string kind.
	VariantString
	// VariantPrimitiveArray is an array or slice of bool, number or Char.
	VariantPrimitiveArray
	// VariantObjectArray is any other array or slice.
	VariantObjectArray
	// VariantObject is everything else.
	VariantObject
)

var variantNames = [...]string{
	VariantNull:           "null",
	VariantCyclic:         "cyclic",
	VariantEnum:           "enum",
	VariantCollection:     "collection",
	VariantMap:            "map",
	VariantNumber:         "number",
	VariantBool:           "bool",
	VariantChar:           "char",
	VariantString:         "string",
	VariantPrimitiveArray: "primitive-array",
	VariantObjectArray:    "object-array",
	VariantObject:         "object",
}

// String returns the textual form of v.
func (v Variant) String() string {
	if int(v) < len(variantNames) {
		return variantNames[v]
	}
	return fmt.Sprintf("Variant(%d)", uint8(v))
}

// Terminal reports whether values of this variant are rendered without
// recursion and therefore never take part in cycle detection.
func (v Variant) Terminal() bool {
	switch v {
	case VariantNull, VariantEnum, VariantNumber, VariantBool, VariantChar, VariantString:
		return true
	default:
		return false
	}
}

var (
	stringerType    = reflect.TypeOf((*fmt.Stringer)(nil)).Elem()
	errorType       = reflect.TypeOf((*error)(nil)).Elem()
	formattableType = reflect.TypeOf((*apis.Formattable)(nil)).Elem()
	collectionType  = reflect.TypeOf((*apis.Collection)(nil)).Elem()
	listType        = reflect.TypeOf((*list.List)(nil))
	charType        = reflect.TypeOf(apis.Char(0))
)

// MaxDeref bounds how many plain pointers Classify follows before it gives
// up and treats the value as an opaque object. A *any pointing at itself
// would otherwise never terminate.
const MaxDeref = 64

// Classify determines the variant of v, consulting g (which may be nil) for
// values already being rendered. It returns the value the variant applies to:
// interfaces are unwrapped and pointers to plain values are dereferenced.
func Classify(v reflect.Value, g apis.Guard) (Variant, reflect.Value) {
	for hops := 0; ; hops++ {
		v = Indirect(v)
		if IsNil(v) {
			return VariantNull, v
		}
		if g != nil && g.Contains(v) {
			return VariantCyclic, v
		}
		if v.Kind() != reflect.Ptr || recognized(v.Type()) || v.Elem().Kind() == reflect.Struct {
			break
		}
		if hops == MaxDeref {
			return VariantObject, v
		}
		v = v.Elem()
	}

	t := v.Type()
	switch {
	case IsEnum(t):
		return VariantEnum, v
	case t.Implements(formattableType):
		return VariantObject, v
	case IsSet(t):
		return VariantCollection, v
	case IsCollection(t):
		if u, ok := interfaceable(v); ok {
			return VariantCollection, u
		}
		return VariantObject, v
	}

	switch v.Kind() {
	case reflect.Map:
		return VariantMap, v
	case reflect.Bool:
		return VariantBool, v
	case reflect.Int32:
		if t == charType {
			return VariantChar, v
		}
		return VariantNumber, v
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64, reflect.Complex64, reflect.Complex128:
		return VariantNumber, v
	case reflect.String:
		return VariantString, v
	case reflect.Slice, reflect.Array:
		if isPrimitive(t.Elem()) {
			return VariantPrimitiveArray, v
		}
		return VariantObjectArray, v
	default:
		return VariantObject, v
	}
}

// IsEnum reports whether t is Go's enum idiom: a named integer type with a
// String method.
func IsEnum(t reflect.Type) bool {
	if t.PkgPath() == "" || !t.Implements(stringerType) {
		return false
	}
	switch t.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return true
	default:
		return false
	}
}

// IsCollection reports whether t is a *list.List, implements
// apis.Collection, or is a set (map[K]struct{}).
func IsCollection(t reflect.Type) bool {
	if t == listType || t.Implements(collectionType) {
		return true
	}
	return IsSet(t)
}

// IsSet reports whether t is a map whose values carry no data.
func IsSet(t reflect.Type) bool {
	return t.Kind() == reflect.Map && t.Elem().Kind() == reflect.Struct && t.Elem().NumField() == 0
}

// Elements returns the elements of a collection-variant value in a
// deterministic order (sets are sorted by key).
func Elements(v reflect.Value) []reflect.Value {
	v = Indirect(v)
	if IsNil(v) {
		return nil
	}
	if u, ok := interfaceable(v); ok {
		v = u
	}
	if v.Type() == listType && v.CanInterface() {
		l := v.Interface().(*list.List)
		out := make([]reflect.Value, 0, l.Len())
		for e := l.Front(); e != nil; e = e.Next() {
			out = append(out, reflect.ValueOf(e.Value))
		}
		return out
	}
	if v.CanInterface() {
		if c, ok := v.Interface().(apis.Collection); ok {
			elems := c.Elements()
			out := make([]reflect.Value, len(elems))
			for i, e := range elems {
				out[i] = reflect.ValueOf(e)
			}
			return out
		}
	}
	if v.Kind() == reflect.Map {
		return SortedKeys(v)
	}
	return nil
}

// Size returns the element count of a sized value, or -1.
func Size(v reflect.Value) int {
	v = Indirect(v)
	if !v.IsValid() {
		return -1
	}
	if u, ok := interfaceable(v); ok {
		v = u
	}
	if v.CanInterface() {
		if c, ok := v.Interface().(apis.Collection); ok {
			return c.Len()
		}
		if l, ok := v.Interface().(*list.List); ok {
			return l.Len()
		}
	}
	switch v.Kind() {
	case reflect.Map, reflect.Slice, reflect.Array, reflect.Chan, reflect.String:
		return v.Len()
	default:
		return -1
	}
}

// recognized reports whether a pointer type carries behaviour of its own
// and must therefore not be dereferenced before classification.
func recognized(t reflect.Type) bool {
	return t.Implements(formattableType) ||
		t.Implements(stringerType) ||
		t.Implements(errorType) ||
		t.Implements(collectionType) ||
		t == listType
}

// isPrimitive reports whether elements of type t render as plain literals.
func isPrimitive(t reflect.Type) bool {
	if t == charType {
		return true
	}
	switch t.Kind() {
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64, reflect.Complex64, reflect.Complex128:
		return !IsEnum(t)
	default:
		return false
	}
}

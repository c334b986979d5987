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
	"slices"
	"strings"
	"unsafe"
)

// TagName is the struct tag consulted by Fields.
//
//	Name   string `tostr:"name"`        // renamed
//	Secret string `tostr:"-"`           // skipped
//	Items  []Item `tostr:",summary"`    // rendered as a summary
const TagName = "tostr"

// Field is one struct field selected for rendering.
type Field struct {
	// Name is the field name, or its tag alias.
	Name string
	// Value is the field value. Unexported fields are made readable when the
	// struct is addressable and FieldOptions.Unexported is set.
	Value reflect.Value
	// Summary is set by the ",summary" tag option.
	Summary bool
}

// FieldOptions selects which struct fields Fields returns.
type FieldOptions struct {
	// Unexported includes unexported fields.
	Unexported bool
	// ExcludeNil drops fields holding nil references.
	ExcludeNil bool
	// Excluded lists field names (or tag aliases) to drop.
	Excluded []string
}

// Fields returns the renderable fields of the struct behind v, in
// declaration order. Pointers and interfaces are followed; embedded structs
// are flattened into their parent. An embedded pointer back to a struct
// already being flattened is returned as an ordinary field instead.
// Non-struct values yield nil.
func Fields(v reflect.Value, opts FieldOptions) []Field {
	v = Indirect(v)
	var path []Identity
	for v.IsValid() && v.Kind() == reflect.Ptr {
		if v.IsNil() {
			return nil
		}
		if id, ok := IdentityOf(v); ok {
			path = append(path, id)
		}
		v = v.Elem()
	}
	if !v.IsValid() || v.Kind() != reflect.Struct {
		return nil
	}
	var out []Field
	collect(v, opts, path, &out)
	return out
}

// collect appends the fields of struct v. path holds the embedded pointers
// followed to reach v.
func collect(v reflect.Value, opts FieldOptions, path []Identity, out *[]Field) {
	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		tag := parseTag(sf.Tag.Get(TagName))
		if tag.skip {
			continue
		}
		fv := v.Field(i)

		if sf.Anonymous && tag.name == "" {
			if ev, inner, ok := embedded(fv, path); ok {
				collect(accessible(ev), opts, inner, out)
				continue
			}
			if fv.Kind() == reflect.Ptr && fv.IsNil() {
				continue
			}
		}

		if !sf.IsExported() && !opts.Unexported {
			continue
		}
		name := sf.Name
		if tag.name != "" {
			name = tag.name
		}
		if slices.Contains(opts.Excluded, name) || slices.Contains(opts.Excluded, sf.Name) {
			continue
		}
		fv = accessible(fv)
		if opts.ExcludeNil && IsNil(fv) {
			continue
		}
		*out = append(*out, Field{Name: name, Value: fv, Summary: tag.summary})
	}
}

// embedded returns the struct to flatten for an anonymous field and the path
// below it. It refuses nil pointers, non-structs and pointers already on path.
func embedded(fv reflect.Value, path []Identity) (reflect.Value, []Identity, bool) {
	if fv.Kind() != reflect.Ptr {
		return fv, path, fv.Kind() == reflect.Struct
	}
	if fv.IsNil() || fv.Elem().Kind() != reflect.Struct {
		return fv, path, false
	}
	id, _ := IdentityOf(fv)
	if slices.Contains(path, id) {
		return fv, path, false
	}
	return fv.Elem(), append(path[:len(path):len(path)], id), true
}

// accessible lifts the read-only flag reflect puts on values reached through
// unexported fields, which is only possible for addressable values.
func accessible(v reflect.Value) reflect.Value {
	if v.CanInterface() || !v.CanAddr() {
		return v
	}
	return reflect.NewAt(v.Type(), unsafe.Pointer(v.UnsafeAddr())).Elem()
}

// interfaceable returns v in a form whose Interface method may be called.
// Pointers and addressable values read through unexported fields are
// rebuilt from their address; anything else reports false.
func interfaceable(v reflect.Value) (reflect.Value, bool) {
	switch {
	case v.CanInterface():
		return v, true
	case v.Kind() == reflect.Ptr && !v.IsNil():
		return reflect.NewAt(v.Type().Elem(), v.UnsafePointer()), true
	case v.CanAddr():
		return accessible(v), true
	default:
		return v, false
	}
}

type fieldTag struct {
	name    string
	skip    bool
	summary bool
}

func parseTag(s string) fieldTag {
	if s == "-" {
		return fieldTag{skip: true}
	}
	name, rest, _ := strings.Cut(s, ",")
	tag := fieldTag{name: name}
	for rest != "" {
		var opt string
		opt, rest, _ = strings.Cut(rest, ",")
		if opt == "summary" {
			tag.summary = true
		}
	}
	return tag
}

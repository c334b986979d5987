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

package tostr

import (
	"reflect"

	"dirpx.dev/tostr/apis"
	uref "dirpx.dev/tostr/utils/reflect"
)

// Option customizes Reflect.
type Option func(*options)

type options struct {
	sty    apis.Style
	fields uref.FieldOptions
}

// WithStyle renders with sty instead of the global default style.
func WithStyle(sty apis.Style) Option {
	return func(o *options) {
		if sty != nil {
			o.sty = sty
		}
	}
}

// WithExcluded drops the named fields (Go names or tag aliases).
func WithExcluded(names ...string) Option {
	return func(o *options) {
		o.fields.Excluded = append(o.fields.Excluded, names...)
	}
}

// WithExcludeNil drops fields holding nil references.
func WithExcludeNil() Option {
	return func(o *options) {
		o.fields.ExcludeNil = true
	}
}

// WithUnexported includes unexported fields.
func WithUnexported() Option {
	return func(o *options) {
		o.fields.Unexported = true
	}
}

// Of formats v with the global default style: apis.Formattable values lay
// out their own fields, structs are walked field by field and anything else
// is rendered as a plain value.
func Of(v any) string {
	return Reflect(v)
}

// OfStyle is Of rendered by sty.
func OfStyle(v any, sty apis.Style) string {
	return Reflect(v, WithStyle(sty))
}

// Reflect is Of with options.
//
// Struct fields are read in declaration order; embedded structs are
// flattened. The "tostr" struct tag renames a field, excludes it with "-",
// or forces its summary form with ",summary".
func Reflect(v any, opts ...Option) string {
	o := options{sty: DefaultStyle()}
	for _, opt := range opts {
		opt(&o)
	}

	if f, ok := v.(apis.Formattable); ok && !uref.IsNil(reflect.ValueOf(v)) {
		return NewWithStyle(v, o.sty).AppendFields(f).String()
	}
	rv := reflect.ValueOf(v)
	if !isStruct(rv) {
		return NewWithStyle(nil, o.sty).AppendValue(v).String()
	}
	if rv.Kind() == reflect.Struct && o.fields.Unexported {
		// Copy into an addressable value so unexported fields can be read.
		cp := reflect.New(rv.Type()).Elem()
		cp.Set(rv)
		rv = cp
	}

	b := NewWithStyle(v, o.sty)
	for _, f := range uref.Fields(rv, o.fields) {
		d := apis.DetailDefault
		if f.Summary {
			d = apis.DetailSummary
		}
		b.appendValue(f.Name, f.Value, d)
	}
	return b.String()
}

func isStruct(v reflect.Value) bool {
	for v.IsValid() && v.Kind() == reflect.Ptr {
		if v.IsNil() {
			return false
		}
		v = v.Elem()
	}
	return v.IsValid() && v.Kind() == reflect.Struct
}

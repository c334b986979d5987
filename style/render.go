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

package style

import (
	"bytes"
	"fmt"
	"reflect"
	"strconv"
	"unicode/utf8"

	"dirpx.dev/tostr/apis"
	"dirpx.dev/tostr/cycle"
	uref "dirpx.dev/tostr/utils/reflect"
)

// appendInternal renders a non-nil field value. Every non-terminal value is
// pushed on the guard while its contents are rendered, so a value reachable
// from itself is printed as a cyclic marker on the second visit. Past
// cycle.MaxNesting levels values are only summarized.
func (s *style) appendInternal(buf *bytes.Buffer, ctx *apis.Context, v reflect.Value, full bool) {
	variant, v := uref.Classify(v, ctx.Guard)
	switch variant {
	case uref.VariantNull:
		s.writeNull(buf)
		return
	case uref.VariantCyclic:
		s.writeCyclic(buf, v)
		return
	}

	if !variant.Terminal() {
		if cycle.TooDeep(ctx) {
			s.writeSummary(buf, v)
			return
		}
		ctx.Guard.Push(v)
		defer ctx.Guard.Pop(v)
	}

	switch variant {
	case uref.VariantEnum:
		if full {
			s.writeText(buf, enumName(v))
		} else {
			s.writeSummary(buf, v)
		}
	case uref.VariantCollection:
		if full {
			s.writeElements(buf, ctx, uref.Elements(v))
		} else {
			s.writeSize(buf, uref.Size(v))
		}
	case uref.VariantMap:
		if full {
			s.writeMap(buf, ctx, v)
		} else {
			s.writeSize(buf, v.Len())
		}
	case uref.VariantNumber:
		buf.WriteString(formatNumber(v))
	case uref.VariantBool:
		buf.WriteString(strconv.FormatBool(v.Bool()))
	case uref.VariantChar:
		s.writeChar(buf, rune(v.Int()))
	case uref.VariantString:
		if full {
			s.writeString(buf, v.String())
		} else {
			s.writeSummary(buf, v)
		}
	case uref.VariantPrimitiveArray, uref.VariantObjectArray:
		if full {
			s.writeElements(buf, ctx, indexed(v))
		} else {
			s.writeSize(buf, v.Len())
		}
	default:
		if full {
			s.writeObject(buf, ctx, v)
		} else {
			s.writeSummary(buf, v)
		}
	}
}

func (s *style) writeNull(buf *bytes.Buffer) {
	buf.WriteString(s.cfg.NullText)
}

// writeCyclic prints the identity form of a value already in progress.
func (s *style) writeCyclic(buf *bytes.Buffer, v reflect.Value) {
	s.writeText(buf, s.identity(v))
}

func (s *style) writeSize(buf *bytes.Buffer, n int) {
	buf.WriteString(s.cfg.SizeStartText)
	buf.WriteString(strconv.Itoa(n))
	buf.WriteString(s.cfg.SizeEndText)
}

func (s *style) writeSummary(buf *bytes.Buffer, v reflect.Value) {
	buf.WriteString(s.cfg.SummaryObjectStartText)
	buf.WriteString(s.className(v, true))
	buf.WriteString(s.cfg.SummaryObjectEndText)
}

func (s *style) writeElements(buf *bytes.Buffer, ctx *apis.Context, elems []reflect.Value) {
	buf.WriteString(s.cfg.ArrayStart)
	for i, e := range elems {
		if i > 0 {
			buf.WriteString(s.cfg.ArraySeparator)
		}
		s.writeElement(buf, ctx, e)
	}
	buf.WriteString(s.cfg.ArrayEnd)
}

func (s *style) writeElement(buf *bytes.Buffer, ctx *apis.Context, e reflect.Value) {
	if uref.IsNil(e) {
		s.writeNull(buf)
		return
	}
	s.appendInternal(buf, ctx, e, s.cfg.ArrayContentDetail)
}

// writeMap prints entries in sorted key order.
func (s *style) writeMap(buf *bytes.Buffer, ctx *apis.Context, m reflect.Value) {
	buf.WriteString(s.cfg.MapStart)
	for i, k := range uref.SortedKeys(m) {
		if i > 0 {
			buf.WriteString(s.cfg.ArraySeparator)
		}
		s.writeKey(buf, ctx, k)
		buf.WriteString(s.cfg.MapKeyValueSeparator)
		s.writeElement(buf, ctx, m.MapIndex(k))
	}
	buf.WriteString(s.cfg.MapEnd)
}

// writeKey renders a map key. With EscapeStrings every key becomes a
// string literal, as JSON object keys must be.
func (s *style) writeKey(buf *bytes.Buffer, ctx *apis.Context, k reflect.Value) {
	if !s.cfg.EscapeStrings || uref.Indirect(k).Kind() == reflect.String {
		s.writeElement(buf, ctx, k)
		return
	}
	var tmp bytes.Buffer
	plain := *s
	plain.cfg.EscapeStrings = false
	plain.cfg.StringQuote = ""
	plain.writeElement(&tmp, ctx, k)
	writeJSONString(buf, tmp.String())
}

func (s *style) writeChar(buf *bytes.Buffer, r rune) {
	if s.cfg.EscapeStrings {
		writeJSONString(buf, string(r))
		return
	}
	fmt.Fprintf(buf, "%#U", r)
}

// writeString wraps str in StringQuote. Embedded quotes are not escaped, so
// the output is ambiguous for strings containing the quote; EscapeStrings
// produces an escaped JSON literal instead.
func (s *style) writeString(buf *bytes.Buffer, str string) {
	if s.cfg.EscapeStrings {
		writeJSONString(buf, str)
		return
	}
	buf.WriteString(s.cfg.StringQuote)
	buf.WriteString(str)
	buf.WriteString(s.cfg.StringQuote)
}

// writeText emits free text: raw normally, a JSON literal under EscapeStrings.
func (s *style) writeText(buf *bytes.Buffer, text string) {
	if s.cfg.EscapeStrings {
		writeJSONString(buf, text)
		return
	}
	buf.WriteString(text)
}

// writeObject renders an object in full detail. Own field layouts win over
// own text, which wins over reflective expansion and finally fmt.
func (s *style) writeObject(buf *bytes.Buffer, ctx *apis.Context, v reflect.Value) {
	if v.CanInterface() {
		switch x := v.Interface().(type) {
		case apis.Formattable:
			s.nested(buf, ctx, v, x.FormatFields)
			return
		case error:
			s.writeText(buf, s.borrowed(ctx, x.Error))
			return
		case fmt.Stringer:
			s.writeText(buf, s.borrowed(ctx, x.String))
			return
		}
	}
	if isStruct(v) && (s.cfg.Recursive || !v.CanInterface()) {
		s.nested(buf, ctx, v, func(f apis.Fields) {
			for _, fd := range uref.Fields(v, uref.FieldOptions{}) {
				d := apis.DetailDefault
				if fd.Summary {
					d = apis.DetailSummary
				}
				f.(*fields).value(fd.Name, fd.Value, d)
			}
		})
		return
	}
	if v.CanInterface() {
		s.writeText(buf, fmt.Sprint(v.Interface()))
		return
	}
	s.writeText(buf, s.identity(v))
}

// borrowed runs a value's own text method one level deeper, lending ctx to
// any session the method opens on this goroutine. A String method built on
// tostr.New therefore sees the values already in progress.
func (s *style) borrowed(ctx *apis.Context, text func() string) string {
	ctx.Depth++
	defer func() { ctx.Depth-- }()
	defer cycle.Lend(ctx)()
	return text()
}

// nested renders v as a sub-object one level deeper, sharing ctx so that
// cycles through it are still detected.
func (s *style) nested(buf *bytes.Buffer, ctx *apis.Context, v reflect.Value, fill func(apis.Fields)) {
	ctx.Depth++
	defer func() { ctx.Depth-- }()
	s.start(buf, ctx, v)
	fill(&fields{s: s, buf: buf, ctx: ctx})
	s.end(buf, ctx, v)
}

// fields adapts a style and an in-progress buffer to apis.Fields.
type fields struct {
	s   *style
	buf *bytes.Buffer
	ctx *apis.Context
}

// Field appends one field at the default detail level.
func (f *fields) Field(name string, v any) {
	f.s.AppendField(f.buf, f.ctx, name, v, apis.DetailDefault)
}

// FieldDetail appends one field at the requested detail level.
func (f *fields) FieldDetail(name string, v any, d apis.Detail) {
	f.s.AppendField(f.buf, f.ctx, name, v, d)
}

func (f *fields) value(name string, v reflect.Value, d apis.Detail) {
	f.s.AppendFieldValue(f.buf, f.ctx, name, v, d)
}

func isStruct(v reflect.Value) bool {
	for v.Kind() == reflect.Ptr {
		if v.IsNil() {
			return false
		}
		v = v.Elem()
	}
	return v.Kind() == reflect.Struct
}

func indexed(v reflect.Value) []reflect.Value {
	out := make([]reflect.Value, v.Len())
	for i := range out {
		out[i] = v.Index(i)
	}
	return out
}

func enumName(v reflect.Value) string {
	if v.CanInterface() {
		if st, ok := v.Interface().(fmt.Stringer); ok {
			return st.String()
		}
	}
	return formatNumber(v)
}

// formatNumber prints numbers the same way regardless of locale.
func formatNumber(v reflect.Value) string {
	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(v.Int(), 10)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return strconv.FormatUint(v.Uint(), 10)
	case reflect.Float32:
		return strconv.FormatFloat(v.Float(), 'g', -1, 32)
	case reflect.Float64:
		return strconv.FormatFloat(v.Float(), 'g', -1, 64)
	case reflect.Complex64:
		return strconv.FormatComplex(v.Complex(), 'g', -1, 64)
	case reflect.Complex128:
		return strconv.FormatComplex(v.Complex(), 'g', -1, 128)
	default:
		return v.String()
	}
}

const hex = "0123456789abcdef"

// writeJSONString writes str as a JSON string literal.
func writeJSONString(buf *bytes.Buffer, str string) {
	buf.WriteByte('"')
	for i := 0; i < len(str); {
		r, size := utf8.DecodeRuneInString(str[i:])
		i += size
		switch r {
		case '"':
			buf.WriteString(`\"`)
		case '\\':
			buf.WriteString(`\\`)
		case '\n':
			buf.WriteString(`\n`)
		case '\r':
			buf.WriteString(`\r`)
		case '\t':
			buf.WriteString(`\t`)
		case '\b':
			buf.WriteString(`\b`)
		case '\f':
			buf.WriteString(`\f`)
		default:
			if r < 0x20 {
				buf.WriteString(`\u00`)
				buf.WriteByte(hex[r>>4])
				buf.WriteByte(hex[r&0xf])
				continue
			}
			buf.WriteRune(r)
		}
	}
	buf.WriteByte('"')
}

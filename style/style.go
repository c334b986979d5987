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

// Package style implements apis.Style: the rules deciding how a subject and
// each of its field values are turned into text.
//
// A style is immutable after New and safe for concurrent use. Everything
// that changes during a formatting pass (the cycle guard and the nesting
// depth used for multi-line indentation) lives in the apis.Context passed
// to every call.
//
// Field values are classified once (utils/reflect.Classify) and rendered by
// one function per variant:
//
//	nil            -> NullText
//	in progress    -> "pkg.Type@<hex>" (never expanded again)
//	enum           -> String()              | <Type>
//	collection/map -> {e1,e2} / {k=v}       | <size=N>
//	number/bool    -> strconv literal
//	char           -> U+0061 'a'
//	string         -> "text" (not escaped)  | <string>
//	array/slice    -> {e1,e2}               | <size=N>
//	object         -> own text or fields    | <Type>
//
// The right-hand column is the summary form, used when a caller requests
// apis.DetailSummary (or DefaultFullDetail is off).
package style

import (
	"bytes"
	"errors"
	"reflect"
	"strings"

	"dirpx.dev/tostr/apis"
	"dirpx.dev/tostr/config"
	"dirpx.dev/tostr/cycle"
	uref "dirpx.dev/tostr/utils/reflect"
)

// ErrNilResolver is raised by New when no class-name resolver is given.
var ErrNilResolver = errors.New("tostr(style): nil resolver")

// New constructs the apis.Style rendering cfg. Class names are obtained
// from res. It panics with ErrNilResolver if res is nil.
func New(cfg apis.Config, res apis.Resolver) apis.Style {
	if res == nil {
		panic(ErrNilResolver)
	}
	s := &style{cfg: cfg, res: res}
	if config.ResolveColor(cfg.Color) {
		s.pal = newPalette()
	}
	return s
}

// style is the single apis.Style implementation; presets differ only in Config.
type style struct {
	cfg apis.Config
	res apis.Resolver
	pal *palette
}

// Ensure style implements apis.Style.
var _ apis.Style = (*style)(nil)

// Config returns the rules this style renders with.
func (s *style) Config() apis.Config {
	return s.cfg
}

// FullDetail resolves a detail request against DefaultFullDetail.
func (s *style) FullDetail(d apis.Detail) bool {
	switch d {
	case apis.DetailFull:
		return true
	case apis.DetailSummary:
		return false
	default:
		return s.cfg.DefaultFullDetail
	}
}

// AppendStart emits class name, identity tag and ContentStart for subject.
func (s *style) AppendStart(buf *bytes.Buffer, ctx *apis.Context, subject any) {
	s.start(buf, ensure(ctx), reflect.ValueOf(subject))
}

// AppendEnd closes subject and pops it from the guard.
func (s *style) AppendEnd(buf *bytes.Buffer, ctx *apis.Context, subject any) {
	s.end(buf, ensure(ctx), reflect.ValueOf(subject))
}

// AppendField emits "name=value" followed by the field separator.
func (s *style) AppendField(buf *bytes.Buffer, ctx *apis.Context, name string, v any, d apis.Detail) {
	s.AppendFieldValue(buf, ctx, name, reflect.ValueOf(v), d)
}

// AppendFieldValue is AppendField for reflected values.
func (s *style) AppendFieldValue(buf *bytes.Buffer, ctx *apis.Context, name string, v reflect.Value, d apis.Detail) {
	ctx = ensure(ctx)
	s.fieldStart(buf, name)
	if uref.IsNil(v) {
		s.writeNull(buf)
	} else {
		s.appendInternal(buf, ctx, v, s.FullDetail(d))
	}
	s.fieldEnd(buf, ctx)
}

// AppendSuper splices the content found between the first ContentStart and
// the last ContentEnd of text. Text without those markers is appended as an
// opaque unnamed value.
func (s *style) AppendSuper(buf *bytes.Buffer, ctx *apis.Context, text string) {
	if text == "" {
		return
	}
	ctx = ensure(ctx)
	if !s.splice(buf, ctx, text) {
		s.opaque(buf, ctx, "", text)
	}
}

// AppendDelegate splices text like AppendSuper when name is empty, and
// otherwise emits text verbatim as the value of the named field.
func (s *style) AppendDelegate(buf *bytes.Buffer, ctx *apis.Context, name, text string) {
	if text == "" {
		return
	}
	if name == "" {
		s.AppendSuper(buf, ctx, text)
		return
	}
	s.opaque(buf, ensure(ctx), name, text)
}

// ClassName returns the configured (short or qualified) class name of v.
func (s *style) ClassName(v any) string {
	return s.className(reflect.ValueOf(v), s.cfg.UseShortClassName)
}

// IdentityString returns "pkg.Type@<tag>" for v.
func (s *style) IdentityString(v any) string {
	return s.identity(reflect.ValueOf(v))
}

func (s *style) identity(v reflect.Value) string {
	name := s.className(v, false)
	if tag := uref.IdentityTag(v); tag != "" {
		return name + "@" + tag
	}
	return name
}

func (s *style) start(buf *bytes.Buffer, ctx *apis.Context, v reflect.Value) {
	if uref.IsNil(v) {
		return
	}
	ctx.Guard.Push(v)
	if s.cfg.UseClassName {
		buf.WriteString(s.pal.class(s.className(v, s.cfg.UseShortClassName)))
	}
	if s.cfg.UseIdentityTag {
		if tag := uref.IdentityTag(v); tag != "" {
			buf.WriteByte('@')
			buf.WriteString(tag)
		}
	}
	buf.WriteString(s.cfg.ContentStart)
	if s.cfg.FieldSeparatorAtStart {
		buf.WriteString(s.separator(ctx))
	} else {
		buf.WriteString(s.lineBreak(ctx.Depth + 1))
	}
}

func (s *style) end(buf *bytes.Buffer, ctx *apis.Context, v reflect.Value) {
	lb := s.lineBreak(ctx.Depth + 1)
	empty := lb != "" && bytes.HasSuffix(buf.Bytes(), []byte(s.cfg.ContentStart+lb))
	switch {
	case empty:
		trimSuffix(buf, lb)
	case !s.cfg.FieldSeparatorAtEnd:
		trimSuffix(buf, s.separator(ctx))
	}
	if uref.IsNil(v) {
		return
	}
	if !empty {
		buf.WriteString(s.lineBreak(ctx.Depth))
	}
	buf.WriteString(s.cfg.ContentEnd)
	ctx.Guard.Pop(v)
}

func (s *style) fieldStart(buf *bytes.Buffer, name string) {
	if !s.cfg.UseFieldNames || name == "" {
		return
	}
	buf.WriteString(s.cfg.FieldNameQuote)
	buf.WriteString(s.pal.field(name))
	buf.WriteString(s.cfg.FieldNameQuote)
	buf.WriteString(s.cfg.FieldNameValueSeparator)
}

func (s *style) fieldEnd(buf *bytes.Buffer, ctx *apis.Context) {
	buf.WriteString(s.separator(ctx))
}

// splice copies the field content of a rendered text into buf.
// It reports false when text carries no content markers.
func (s *style) splice(buf *bytes.Buffer, ctx *apis.Context, text string) bool {
	open, closing := s.cfg.ContentStart, s.cfg.ContentEnd
	if open == "" || closing == "" {
		return false
	}
	i := strings.Index(text, open)
	j := strings.LastIndex(text, closing)
	if i < 0 || j < 0 || i+len(open) > j {
		return false
	}
	data := text[i+len(open) : j]
	if s.multiLine() {
		data = strings.Trim(data, "\n ")
	}
	if s.cfg.FieldSeparatorAtEnd {
		data = strings.TrimSuffix(data, s.cfg.FieldSeparator)
	}
	if data == "" {
		return true
	}
	if s.cfg.FieldSeparatorAtStart {
		trimSuffix(buf, s.separator(ctx))
	}
	buf.WriteString(data)
	s.fieldEnd(buf, ctx)
	return true
}

func (s *style) opaque(buf *bytes.Buffer, ctx *apis.Context, name, text string) {
	s.fieldStart(buf, name)
	buf.WriteString(text)
	s.fieldEnd(buf, ctx)
}

// separator is the text emitted after every field at the current depth.
func (s *style) separator(ctx *apis.Context) string {
	return s.cfg.FieldSeparator + s.lineBreak(ctx.Depth+1)
}

// lineBreak starts a new line indented for depth; empty unless multi-line.
func (s *style) lineBreak(depth int) string {
	if !s.multiLine() {
		return ""
	}
	return "\n" + strings.Repeat(" ", s.cfg.IndentWidth*depth)
}

func (s *style) multiLine() bool {
	return s.cfg.IndentWidth > 0
}

// className names v through the resolver, short or package-qualified.
func (s *style) className(v reflect.Value, short bool) string {
	v = uref.Indirect(v)
	if !v.IsValid() {
		return ""
	}
	nc := s.cfg.Naming
	nc.Short = short
	if v.CanInterface() {
		return s.res.Resolve(v.Interface(), nc)
	}
	return s.res.ResolveType(v.Type(), nc)
}

// ensure tolerates callers that pass no context.
func ensure(ctx *apis.Context) *apis.Context {
	if ctx == nil {
		if lent := cycle.Borrowed(); lent != nil {
			return lent
		}
		return cycle.NewContext()
	}
	if ctx.Guard == nil {
		ctx.Guard = cycle.New()
	}
	return ctx
}

// trimSuffix removes suffix from the end of buf and reports whether it did.
func trimSuffix(buf *bytes.Buffer, suffix string) bool {
	if suffix == "" || !bytes.HasSuffix(buf.Bytes(), []byte(suffix)) {
		return false
	}
	buf.Truncate(buf.Len() - len(suffix))
	return true
}

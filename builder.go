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
	"bytes"
	"errors"
	"reflect"

	"dirpx.dev/tostr/apis"
	"dirpx.dev/tostr/cycle"
	uref "dirpx.dev/tostr/utils/reflect"
)

// ErrAlreadyBuilt is returned by Build on every call after the first.
var ErrAlreadyBuilt = errors.New("tostr: session already built")

// Builder is a single formatting session for one subject.
//
// The zero value is not usable; create Builders with New, NewWithStyle or
// NewWithContext. A Builder is not safe for concurrent use.
type Builder struct {
	sty     apis.Style
	ctx     *apis.Context
	buf     bytes.Buffer
	subject any
	built   bool
	text    string
}

// Ensure Builder implements apis.Fields.
var _ apis.Fields = (*Builder)(nil)

// New starts a session for subject with the global default style.
func New(subject any) *Builder {
	return NewWithStyle(subject, DefaultStyle())
}

// NewWithStyle starts a session for subject rendered by sty.
// It panics with ErrNilStyle if sty is nil.
func NewWithStyle(subject any, sty apis.Style) *Builder {
	return NewWithContext(subject, sty, nil)
}

// NewWithContext starts a session that shares ctx with an enclosing render,
// so that cycles through subject are detected. A nil ctx continues the
// render whose String or Error method is running on this goroutine, if
// any, and starts a fresh one otherwise.
// It panics with ErrNilStyle if sty is nil.
func NewWithContext(subject any, sty apis.Style, ctx *apis.Context) *Builder {
	if sty == nil {
		panic(ErrNilStyle)
	}
	if ctx == nil {
		ctx = cycle.Borrowed()
	}
	if ctx == nil {
		ctx = cycle.NewContext()
	}
	b := &Builder{sty: sty, ctx: ctx, subject: subject}
	sty.AppendStart(&b.buf, ctx, subject)
	return b
}

// Append adds a field at the style's default detail level.
func (b *Builder) Append(name string, v any) *Builder {
	return b.AppendDetail(name, v, apis.DetailDefault)
}

// AppendDetail adds a field at detail level d.
func (b *Builder) AppendDetail(name string, v any, d apis.Detail) *Builder {
	if !b.built {
		b.sty.AppendField(&b.buf, b.ctx, name, v, d)
	}
	return b
}

// AppendSummary adds a field in summary form.
func (b *Builder) AppendSummary(name string, v any) *Builder {
	return b.AppendDetail(name, v, apis.DetailSummary)
}

// AppendValue adds an unnamed value.
func (b *Builder) AppendValue(v any) *Builder {
	return b.Append("", v)
}

// AppendRune adds r as a character rather than a number.
func (b *Builder) AppendRune(name string, r rune) *Builder {
	return b.Append(name, apis.Char(r))
}

// AppendRunes adds rs as an array of characters. A nil rs renders as null.
func (b *Builder) AppendRunes(name string, rs []rune) *Builder {
	if rs == nil {
		return b.Append(name, nil)
	}
	cs := make([]apis.Char, len(rs))
	for i, r := range rs {
		cs[i] = apis.Char(r)
	}
	return b.Append(name, cs)
}

// Field implements apis.Fields.
func (b *Builder) Field(name string, v any) {
	b.Append(name, v)
}

// FieldDetail implements apis.Fields.
func (b *Builder) FieldDetail(name string, v any, d apis.Detail) {
	b.AppendDetail(name, v, d)
}

// AppendFields lets f add its fields to this session, flattening it into
// the current subject.
func (b *Builder) AppendFields(f apis.Formattable) *Builder {
	if f != nil && !b.built {
		f.FormatFields(b)
	}
	return b
}

// AppendSuper splices the fields of text, typically the output of an
// embedded type's String method, into this session.
func (b *Builder) AppendSuper(text string) *Builder {
	if text != "" && !b.built {
		b.sty.AppendSuper(&b.buf, b.ctx, text)
	}
	return b
}

// AppendDelegate adds text rendered by another formatter as the named field,
// or splices it like AppendSuper when name is empty.
func (b *Builder) AppendDelegate(name, text string) *Builder {
	if text != "" && !b.built {
		b.sty.AppendDelegate(&b.buf, b.ctx, name, text)
	}
	return b
}

// Reset discards the accumulated text and starts over for subject, keeping
// the style and context.
func (b *Builder) Reset(subject any) *Builder {
	if !b.built {
		b.ctx.Guard.Pop(reflect.ValueOf(b.subject))
	}
	b.buf.Reset()
	b.subject, b.built, b.text = subject, false, ""
	b.sty.AppendStart(&b.buf, b.ctx, subject)
	return b
}

// Style returns the style this session renders with.
func (b *Builder) Style() apis.Style {
	return b.sty
}

// Subject returns the value being formatted.
func (b *Builder) Subject() any {
	return b.subject
}

// Build closes the session and returns its text. A nil subject with nothing
// appended yields the style's null text. Later calls return the same text
// and ErrAlreadyBuilt.
func (b *Builder) Build() (string, error) {
	if b.built {
		return b.text, ErrAlreadyBuilt
	}
	b.built = true
	if uref.IsNil(reflect.ValueOf(b.subject)) && b.buf.Len() == 0 {
		b.text = b.sty.Config().NullText
		return b.text, nil
	}
	b.sty.AppendEnd(&b.buf, b.ctx, b.subject)
	b.text = b.buf.String()
	return b.text, nil
}

// String returns the session text, building it on first use.
func (b *Builder) String() string {
	text, _ := b.Build()
	return text
}

// appendValue adds a reflected field value, which may be read-only.
func (b *Builder) appendValue(name string, v reflect.Value, d apis.Detail) {
	if !b.built {
		b.sty.AppendFieldValue(&b.buf, b.ctx, name, v, d)
	}
}

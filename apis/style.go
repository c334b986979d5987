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

import (
	"bytes"
	"reflect"
)

// Style owns every formatting decision of a session: delimiters, class names,
// identity tags and the per-variant rendering of field values.
//
// A Style is shared between sessions and must be safe for concurrent use.
// All mutable render state lives in the *Context passed to each call.
type Style interface {
	// Config returns the rules this style renders with.
	Config() Config

	// FullDetail resolves a detail request against the configured default.
	FullDetail(d Detail) bool

	// AppendStart emits the opening of subject and pushes it onto ctx.Guard.
	// A nil subject is a no-op.
	AppendStart(buf *bytes.Buffer, ctx *Context, subject any)

	// AppendEnd removes a trailing field separator, emits the closing of
	// subject and pops it from ctx.Guard. For a nil subject only the
	// separator is removed.
	AppendEnd(buf *bytes.Buffer, ctx *Context, subject any)

	// AppendField emits one field. An empty name means "no name".
	AppendField(buf *bytes.Buffer, ctx *Context, name string, v any, d Detail)

	// AppendFieldValue is AppendField for values obtained through reflection,
	// including unexported struct fields that cannot be turned into any.
	AppendFieldValue(buf *bytes.Buffer, ctx *Context, name string, v reflect.Value, d Detail)

	// AppendSuper splices the field content of a previously rendered text.
	AppendSuper(buf *bytes.Buffer, ctx *Context, text string)

	// AppendDelegate splices text without a name, or emits it as the opaque
	// value of the named field.
	AppendDelegate(buf *bytes.Buffer, ctx *Context, name, text string)

	// ClassName returns the short or qualified class name of v as configured.
	ClassName(v any) string

	// IdentityString returns the qualified class name of v followed by "@"
	// and its identity tag, the form used for cyclic references. Values
	// without identity yield the class name alone; nil yields "".
	IdentityString(v any) string
}

// Guard is a stack of values whose rendering is in progress.
// Membership is decided by reference identity, never by equality.
type Guard interface {
	// Contains reports whether v's identity is on the stack.
	Contains(v reflect.Value) bool
	// Push records v as in progress. Values without identity are ignored.
	Push(v reflect.Value)
	// Pop removes the top entry only if it is v; otherwise it does nothing.
	Pop(v reflect.Value)
	// Len returns the number of entries on the stack.
	Len() int
}

// Context is the explicit render state threaded through a formatting pass.
// It is not safe for concurrent use; independent passes use independent
// contexts.
type Context struct {
	// Guard tracks the values currently being rendered.
	Guard Guard
	// Depth is the nesting level, used for multi-line indentation.
	Depth int
}

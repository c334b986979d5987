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

package cycle

import (
	"bytes"
	"runtime"
	"strconv"
	"sync"
	"sync/atomic"

	"dirpx.dev/tostr/apis"
)

// MaxNesting bounds how many values one render may have in progress.
// Deeper values are summarized instead of expanded, which also stops
// recursion that never reaches the guard.
const MaxNesting = 256

// TooDeep reports whether ctx has reached MaxNesting.
func TooDeep(ctx *apis.Context) bool {
	return ctx.Depth >= MaxNesting || (ctx.Guard != nil && ctx.Guard.Len() >= MaxNesting)
}

var (
	lent    sync.Map // goroutine id -> *apis.Context
	lending atomic.Int64
)

// Lend makes ctx the context that Borrowed returns on the calling goroutine
// until release is called. Lends nest: release restores the previous one.
//
// A render lends its context while it runs a value's own String or Error
// method, so a session opened inside that method continues the same render.
func Lend(ctx *apis.Context) (release func()) {
	id := goroutineID()
	prev, had := lent.Load(id)
	lent.Store(id, ctx)
	lending.Add(1)
	return func() {
		if had {
			lent.Store(id, prev)
		} else {
			lent.Delete(id)
		}
		lending.Add(-1)
	}
}

// Borrowed returns the context lent on the calling goroutine, or nil.
func Borrowed() *apis.Context {
	if lending.Load() == 0 {
		return nil
	}
	if ctx, ok := lent.Load(goroutineID()); ok {
		return ctx.(*apis.Context)
	}
	return nil
}

var goroutineSpace = []byte("goroutine ")

// goroutineID parses the id from the "goroutine N [" stack header.
func goroutineID() uint64 {
	var b [64]byte
	s := b[:runtime.Stack(b[:], false)]
	s = bytes.TrimPrefix(s, goroutineSpace)
	if i := bytes.IndexByte(s, ' '); i > 0 {
		s = s[:i]
	}
	n, err := strconv.ParseUint(string(s), 10, 64)
	if err != nil {
		panic("cycle: cannot parse goroutine id: " + err.Error())
	}
	return n
}

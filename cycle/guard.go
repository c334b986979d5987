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

// Package cycle detects re-entrant rendering of self-referencing values.
//
// A Guard is a LIFO stack of the values whose rendering is in progress.
// Membership is decided by reference identity (dynamic type plus address),
// so two equal but distinct values are never mistaken for a cycle.
// Guards are not safe for concurrent use: each formatting pass owns one,
// carried explicitly in an apis.Context.
package cycle

import (
	"reflect"

	"dirpx.dev/tostr/apis"
	uref "dirpx.dev/tostr/utils/reflect"
)

// NewContext returns a render context with an empty Guard at depth 0.
func NewContext() *apis.Context {
	return &apis.Context{Guard: New()}
}

// New returns an empty Guard.
func New() *Guard {
	return &Guard{}
}

// Guard is the apis.Guard implementation backed by a slice.
type Guard struct {
	stack []uref.Identity
}

// Ensure Guard implements apis.Guard.
var _ apis.Guard = (*Guard)(nil)

// Contains reports whether v's identity is on the stack.
// Values without identity are never contained.
func (g *Guard) Contains(v reflect.Value) bool {
	id, ok := uref.IdentityOf(v)
	if !ok {
		return false
	}
	for i := len(g.stack) - 1; i >= 0; i-- {
		if g.stack[i] == id {
			return true
		}
	}
	return false
}

// Push records v as in progress. Values without identity are ignored.
func (g *Guard) Push(v reflect.Value) {
	if id, ok := uref.IdentityOf(v); ok {
		g.stack = append(g.stack, id)
	}
}

// Pop removes the top entry if it is v and does nothing otherwise,
// tolerating unbalanced calls rather than failing a diagnostic render.
func (g *Guard) Pop(v reflect.Value) {
	id, ok := uref.IdentityOf(v)
	if !ok || len(g.stack) == 0 {
		return
	}
	if last := len(g.stack) - 1; g.stack[last] == id {
		g.stack[last] = uref.Identity{}
		g.stack = g.stack[:last]
	}
}

// Len returns the number of values in progress.
func (g *Guard) Len() int {
	return len(g.stack)
}

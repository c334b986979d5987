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

package cycle_test

import (
	"reflect"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dirpx.dev/tostr/apis"
	"dirpx.dev/tostr/cycle"
)

func TestLend_NestsAndRestores(t *testing.T) {
	require.Nil(t, cycle.Borrowed())

	outer, inner := cycle.NewContext(), cycle.NewContext()
	releaseOuter := cycle.Lend(outer)
	assert.Same(t, outer, cycle.Borrowed())

	releaseInner := cycle.Lend(inner)
	assert.Same(t, inner, cycle.Borrowed())

	releaseInner()
	assert.Same(t, outer, cycle.Borrowed())
	releaseOuter()
	assert.Nil(t, cycle.Borrowed())
}

func TestLend_StaysOnItsGoroutine(t *testing.T) {
	ctx := cycle.NewContext()
	defer cycle.Lend(ctx)()

	var seen *apis.Context
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		seen = cycle.Borrowed()
	}()
	wg.Wait()

	assert.Nil(t, seen)
	assert.Same(t, ctx, cycle.Borrowed())
}

func TestLend_ParallelGoroutines(t *testing.T) {
	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				ctx := cycle.NewContext()
				release := cycle.Lend(ctx)
				if cycle.Borrowed() != ctx {
					t.Error("borrowed a context lent by another goroutine")
				}
				release()
			}
		}()
	}
	wg.Wait()
	assert.Nil(t, cycle.Borrowed())
}

func TestTooDeep(t *testing.T) {
	ctx := cycle.NewContext()
	assert.False(t, cycle.TooDeep(ctx))

	ctx.Depth = cycle.MaxNesting
	assert.True(t, cycle.TooDeep(ctx))

	ctx = cycle.NewContext()
	nodes := make([]node, cycle.MaxNesting)
	for i := range nodes {
		ctx.Guard.Push(reflect.ValueOf(&nodes[i]))
	}
	assert.True(t, cycle.TooDeep(ctx))
}

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

package tostr_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"dirpx.dev/tostr"
	"dirpx.dev/tostr/config"
)

type Account struct {
	ID       int
	Name     string   `tostr:"name"`
	Password string   `tostr:"-"`
	Tags     []string `tostr:",summary"`
	Owner    *Person
	balance  int
}

type Point struct{ X, Y int }

type Chain struct {
	*Chain
	Len int
}

type Line struct{ From, To Point }

func account() Account {
	return Account{ID: 1, Name: "main", Password: "hunter2", Tags: []string{"a", "b"}, balance: 10}
}

func TestReflect_Fields(t *testing.T) {
	short := tostr.WithStyle(tostr.NewStyle(config.ShortPrefixConfig()))
	acc := account()

	assert.Equal(t, "Account[ID=1,name=main,Tags=<size=2>,Owner=<null>]", tostr.Reflect(&acc, short))
	assert.Equal(t, "Account[ID=1,name=main,Tags=<size=2>]", tostr.Reflect(&acc, short, tostr.WithExcludeNil()))
	assert.Equal(t, "Account[Tags=<size=2>]", tostr.Reflect(&acc, short, tostr.WithExcludeNil(), tostr.WithExcluded("ID", "name")))
}

func TestReflect_Unexported(t *testing.T) {
	short := tostr.WithStyle(tostr.NewStyle(config.ShortPrefixConfig()))
	acc := account()

	want := "Account[ID=1,name=main,Tags=<size=2>,Owner=<null>,balance=10]"
	assert.Equal(t, want, tostr.Reflect(&acc, short, tostr.WithUnexported()))
	assert.Equal(t, want, tostr.Reflect(acc, short, tostr.WithUnexported()), "values are copied to read unexported fields")
}

func TestReflect_Recursive(t *testing.T) {
	st := tostr.NewStyle(config.RecursiveConfig())
	got := tostr.OfStyle(Line{From: Point{1, 2}, To: Point{3, 4}}, st)
	assert.Equal(t, "tostr_test.Line[From=tostr_test.Point[X=1,Y=2],To=tostr_test.Point[X=3,Y=4]]", got)
}

func TestReflect_EmbeddedCycle(t *testing.T) {
	short := tostr.WithStyle(tostr.NewStyle(config.ShortPrefixConfig()))

	self := &Chain{Len: 1}
	self.Chain = self
	assert.Equal(t, "Chain[Chain=tostr_test.Chain@"+tagOf(self)+",Len=1]", tostr.Reflect(self, short))

	a, b := &Chain{Len: 1}, &Chain{Len: 2}
	a.Chain, b.Chain = b, a
	assert.Equal(t, "Chain[Chain=tostr_test.Chain@"+tagOf(a)+",Len=2,Len=1]", tostr.Reflect(a, short))
}

func TestReflect_JSON(t *testing.T) {
	acc := account()
	got := tostr.OfStyle(&acc, tostr.NewStyle(config.JSONConfig()))
	assert.Equal(t, `{"ID":1,"name":"main","Tags":"<size=2>","Owner":null}`, got)
}

func TestReflect_NonStruct(t *testing.T) {
	st := tostr.NewStyle(config.DefaultConfig())
	assert.Equal(t, "5", tostr.OfStyle(5, st))
	assert.Equal(t, `"x"`, tostr.OfStyle("x", st))
	assert.Equal(t, "<null>", tostr.OfStyle(nil, st))
	assert.Equal(t, "<null>", tostr.OfStyle((*Account)(nil), st))
	assert.Equal(t, "{1,2}", tostr.OfStyle([]int{1, 2}, st))
}

func TestReflect_Deterministic(t *testing.T) {
	st := tostr.NewStyle(config.MultiLineRecursiveConfig())
	v := map[string]Line{"b": {}, "a": {To: Point{1, 1}}}
	first := tostr.OfStyle(v, st)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, tostr.OfStyle(v, st))
	}
}

func TestOf_UsesDefaultStyle(t *testing.T) {
	assert.Equal(t, "tostr_test.Point[X=1,Y=2]", tostr.Of(Point{1, 2}))
}

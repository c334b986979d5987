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
	"reflect"
	"strconv"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dirpx.dev/tostr"
	"dirpx.dev/tostr/apis"
	"dirpx.dev/tostr/config"
	"dirpx.dev/tostr/cycle"
)

type Person struct {
	Name   string
	Age    int
	Smoker bool
}

func (p *Person) format(st apis.Style) string {
	return tostr.NewWithStyle(p, st).
		Append("name", p.Name).
		Append("age", p.Age).
		Append("smoker", p.Smoker).
		String()
}

func (p *Person) String() string {
	return p.format(tostr.DefaultStyle())
}

type Employee struct {
	Person
	Company string
}

func (e *Employee) format(st apis.Style) string {
	return tostr.NewWithStyle(e, st).
		AppendSuper(e.Person.format(st)).
		Append("company", e.Company).
		String()
}

type Node struct {
	Name string
	Next *Node
}

func (n *Node) FormatFields(f apis.Fields) {
	f.Field("name", n.Name)
	f.Field("next", n.Next)
}

// Friend renders itself with a String method, so a pair of friends forms a
// cycle that passes through fmt.Stringer.
type Friend struct {
	Name  string
	Buddy *Friend
}

func (f *Friend) String() string {
	return tostr.NewWithStyle(f, tostr.NewStyle(config.ShortPrefixConfig())).
		Append("name", f.Name).
		Append("buddy", f.Buddy).
		String()
}

type failure struct {
	msg   string
	cause error
}

func (e *failure) Error() string {
	return tostr.NewWithStyle(e, tostr.NewStyle(config.ShortPrefixConfig())).
		Append("msg", e.msg).
		Append("cause", e.cause).
		String()
}

func friends() (a, b *Friend) {
	a, b = &Friend{Name: "a"}, &Friend{Name: "b"}
	a.Buddy, b.Buddy = b, a
	return a, b
}

func tagOf(p any) string {
	return strconv.FormatUint(uint64(reflect.ValueOf(p).Pointer()), 16)
}

func johnDoe() *Person {
	return &Person{Name: "John Doe", Age: 33, Smoker: false}
}

func TestBuilder_Styles(t *testing.T) {
	p := johnDoe()
	cases := []struct {
		name string
		cfg  apis.Config
		want string
	}{
		{"default", config.DefaultConfig(), `tostr_test.Person@` + tagOf(p) + `[name="John Doe",age=33,smoker=false]`},
		{"simple", config.SimpleConfig(), `John Doe,33,false`},
		{"short prefix", config.ShortPrefixConfig(), `Person[name=John Doe,age=33,smoker=false]`},
		{"json", config.JSONConfig(), `{"name":"John Doe","age":33,"smoker":false}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, p.format(tostr.NewStyle(tc.cfg)))
		})
	}
}

func TestBuilder_DefaultStyle(t *testing.T) {
	p := johnDoe()
	assert.Equal(t, `tostr_test.Person@`+tagOf(p)+`[name="John Doe",age=33,smoker=false]`, p.String())
}

func TestBuilder_BuildIsSingleUse(t *testing.T) {
	st := tostr.NewStyle(config.ShortPrefixConfig())
	b := tostr.NewWithStyle(johnDoe(), st).Append("age", 33)

	text, err := b.Build()
	require.NoError(t, err)
	assert.Equal(t, "Person[age=33]", text)

	b.Append("late", 1).AppendSuper("x[y=1]").AppendDelegate("d", "z")
	again, err := b.Build()
	assert.ErrorIs(t, err, tostr.ErrAlreadyBuilt)
	assert.Equal(t, text, again)
	assert.Equal(t, text, b.String())
}

func TestBuilder_NullSubject(t *testing.T) {
	st := tostr.NewStyle(config.DefaultConfig())
	assert.Equal(t, "<null>", tostr.NewWithStyle(nil, st).String())
	assert.Equal(t, "<null>", tostr.NewWithStyle((*Person)(nil), st).String())
	assert.Equal(t, "a=1", tostr.NewWithStyle(nil, st).Append("a", 1).String())
	assert.Equal(t, "7", tostr.NewWithStyle(nil, st).AppendValue(7).String())
}

func TestBuilder_TypedAppends(t *testing.T) {
	st := tostr.NewStyle(config.NoClassNameConfig())
	got := tostr.NewWithStyle(nil, st).
		AppendRune("r", 'x').
		AppendRunes("rs", []rune{'a', 'b'}).
		AppendRunes("none", nil).
		AppendSummary("list", []string{"a", "b"}).
		AppendDetail("full", []int{1}, apis.DetailFull).
		String()
	assert.Equal(t, `r=U+0078 'x',rs={U+0061 'a',U+0062 'b'},none=<null>,list=<size=2>,full={1}`, got)
}

func TestBuilder_AppendSuper(t *testing.T) {
	st := tostr.NewStyle(config.ShortPrefixConfig())
	e := &Employee{Person: *johnDoe(), Company: "ACME"}
	assert.Equal(t, "Employee[name=John Doe,age=33,smoker=false,company=ACME]", e.format(st))
}

func TestBuilder_AppendFields(t *testing.T) {
	st := tostr.NewStyle(config.ShortPrefixConfig())
	n := &Node{Name: "leaf"}
	got := tostr.NewWithStyle(nil, st).AppendFields(n).AppendFields(nil).String()
	assert.Equal(t, "name=leaf,next=<null>", got)
}

func TestBuilder_Reset(t *testing.T) {
	st := tostr.NewStyle(config.ShortPrefixConfig())
	b := tostr.NewWithStyle(johnDoe(), st).Append("a", 1)

	b.Reset(&Node{}).Append("b", 2)
	assert.IsType(t, &Node{}, b.Subject())
	assert.Same(t, st, b.Style())
	assert.Equal(t, "Node[b=2]", b.String())

	b.Reset(johnDoe())
	assert.Equal(t, "Person[]", b.String())
}

func TestBuilder_SharedContextDetectsCycles(t *testing.T) {
	st := tostr.NewStyle(config.ShortPrefixConfig())
	outer := &Node{Name: "outer"}

	ctx := cycle.NewContext()
	b := tostr.NewWithContext(outer, st, ctx)
	got := tostr.NewWithContext(&Node{Name: "inner"}, st, ctx).Append("parent", outer).String()
	assert.Equal(t, "Node[parent=tostr_test.Node@"+tagOf(outer)+"]", got)

	assert.Equal(t, "Node[]", b.String())
	assert.Equal(t, 0, ctx.Guard.Len())
}

func TestBuilder_Cycles(t *testing.T) {
	st := tostr.NewStyle(config.ShortPrefixConfig())
	a := &Node{Name: "a"}
	a.Next = a
	assert.Equal(t, "Node[name=a,next=tostr_test.Node@"+tagOf(a)+"]", tostr.OfStyle(a, st))

	b := &Node{Name: "b"}
	a.Next, b.Next = b, a
	assert.Equal(t,
		"tostr_test.Node[name=a,next=tostr_test.Node[name=b,next=tostr_test.Node@"+tagOf(a)+"]]",
		tostr.OfStyle(a, tostr.NewStyle(config.NewConfig(config.WithIdentityTag(false), config.WithStringQuote("")))),
	)
}

func TestBuilder_StringerCycle(t *testing.T) {
	a, b := friends()

	assert.Equal(t,
		"Friend[name=a,buddy=Friend[name=b,buddy=tostr_test.Friend@"+tagOf(a)+"]]",
		a.String())
	assert.Equal(t,
		"Friend[name=b,buddy=Friend[name=a,buddy=tostr_test.Friend@"+tagOf(b)+"]]",
		b.String())
	assert.Nil(t, cycle.Borrowed(), "nothing stays lent after a render")

	ctx := cycle.NewContext()
	got := tostr.NewWithContext(a, tostr.NewStyle(config.ShortPrefixConfig()), ctx).Append("buddy", b).String()
	assert.Equal(t, "Friend[buddy=Friend[name=b,buddy=tostr_test.Friend@"+tagOf(a)+"]]", got)
	assert.Equal(t, 0, ctx.Guard.Len())
	assert.Equal(t, 0, ctx.Depth)
}

func TestBuilder_ErrorCycle(t *testing.T) {
	one := &failure{msg: "one"}
	two := &failure{msg: "two", cause: one}
	one.cause = two

	assert.Equal(t,
		"failure[msg=one,cause=failure[msg=two,cause=tostr_test.failure@"+tagOf(one)+"]]",
		one.Error())
}

func TestBuilder_NestingIsCapped(t *testing.T) {
	head := &Node{Name: "0"}
	n := head
	for i := 1; i < 2*cycle.MaxNesting; i++ {
		n.Next = &Node{Name: strconv.Itoa(i)}
		n = n.Next
	}

	got := tostr.OfStyle(head, tostr.NewStyle(config.ShortPrefixConfig()))
	assert.Equal(t, cycle.MaxNesting, strings.Count(got, "Node["))
	assert.Contains(t, got, "next=<Node>")
}

func TestBuilder_SharedStyleInParallel(t *testing.T) {
	st := tostr.NewStyle(config.ShortPrefixConfig())

	var wg sync.WaitGroup
	for g := 0; g < 16; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 200; i++ {
				a, b := &Node{Name: "a"}, &Node{Name: "b"}
				a.Next, b.Next = b, a

				ctx := cycle.NewContext()
				bld := tostr.NewWithContext(a, st, ctx)
				a.FormatFields(bld)
				assert.Equal(t, "Node[name=a,next=Node[name=b,next=tostr_test.Node@"+tagOf(a)+"]]", bld.String())
				assert.Equal(t, 0, ctx.Guard.Len())

				fa, _ := friends()
				assert.Equal(t,
					"Friend[name=a,buddy=Friend[name=b,buddy=tostr_test.Friend@"+tagOf(fa)+"]]",
					fa.String())
			}
		}()
	}
	wg.Wait()
}

func TestBuilder_EqualButDistinct(t *testing.T) {
	st := tostr.NewStyle(config.ShortPrefixConfig())
	a := &Node{Name: "x"}
	b := &Node{Name: "x", Next: nil}
	a.Next = b
	assert.Equal(t, "Node[name=x,next=Node[name=x,next=<null>]]", tostr.OfStyle(a, st))
}

func TestNewWithStyle_NilPanics(t *testing.T) {
	assert.PanicsWithValue(t, tostr.ErrNilStyle, func() { tostr.NewWithStyle(1, nil) })
}

// Builder must be usable wherever apis.Fields is expected.
var _ apis.Fields = (*tostr.Builder)(nil)

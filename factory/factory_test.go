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

package factory_test

import (
	"bytes"
	"reflect"
	"runtime"
	"strings"
	"sync"
	"testing"

	"dirpx.dev/tostr/apis"
	"dirpx.dev/tostr/config"
	"dirpx.dev/tostr/cycle"
	"dirpx.dev/tostr/factory"
	"dirpx.dev/tostr/registry"
)

// plainType has no naming behavior and is named by reflection.
type plainType struct{}

// namedType names itself and must win over every other strategy.
type namedType struct{}

func (namedType) EntityName() string { return "named" }

func naming() apis.NamingConfig {
	return config.DefaultNamingConfig()
}

// TestBuildRegistry_Basic asserts that BuildRegistry returns a working Registry.
func TestBuildRegistry_Basic(t *testing.T) {
	reg := factory.New().BuildRegistry(config.DefaultConfig(), nil)
	if reg == nil {
		t.Fatal("BuildRegistry returned nil")
	}

	tt := reflect.TypeOf(plainType{})
	if err := reg.Register(tt, "Plain"); err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	if e, ok := reg.Lookup(tt); !ok || e.Name != "Plain" {
		t.Fatalf("Lookup mismatch: ok=%v got=%+v", ok, e)
	}
	if c := reg.Count(); c != 1 {
		t.Fatalf("Count: got %d want 1", c)
	}
}

// TestBuildRegistry_MigratesPrevious asserts that entries of a previous
// registry survive a rebuild.
func TestBuildRegistry_MigratesPrevious(t *testing.T) {
	f := factory.New()
	prev := f.BuildRegistry(config.DefaultConfig(), nil)
	if err := prev.Register(reflect.TypeOf(plainType{}), "Plain"); err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	next := f.BuildRegistry(config.ShortPrefixConfig(), prev)
	if next == prev {
		t.Fatal("BuildRegistry returned the previous instance")
	}
	if e, ok := next.Lookup(reflect.TypeOf(&plainType{})); !ok || e.Name != "Plain" {
		t.Fatalf("entry not migrated: ok=%v got=%+v", ok, e)
	}
}

// TestBuildResolver_Order verifies resolution priority:
// Namer first, then the registry, then reflection.
func TestBuildResolver_Order(t *testing.T) {
	f := factory.New()
	cfg := config.DefaultConfig()
	reg := f.BuildRegistry(cfg, nil)

	type fromRegistry struct{}
	ttReg := reflect.TypeOf(fromRegistry{})
	if err := reg.Register(ttReg, "registered"); err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	res := f.BuildResolver(cfg, reg, nil)

	if got := res.Resolve(namedType{}, naming()); got != "named" {
		t.Fatalf("Namer priority broken: got %q", got)
	}
	if got := res.ResolveType(ttReg, naming()); got != "registered" {
		t.Fatalf("Registry strategy broken: got %q", got)
	}
	got := res.ResolveType(reflect.TypeOf(plainType{}), naming())
	if got != "factory_test.plainType" {
		t.Fatalf("Reflect strategy: got %q", got)
	}
	if got := res.ResolveType(reflect.TypeOf([]*fromRegistry{}), naming()); got != "[]*registered" {
		t.Fatalf("container of a registered type: got %q", got)
	}
}

// TestBuildResolver_WithExternalRegistry asserts that any apis.Registry
// implementation can back the resolver.
func TestBuildResolver_WithExternalRegistry(t *testing.T) {
	r := registry.New()
	if err := r.Register(reflect.TypeOf(plainType{}), "p"); err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	res := factory.New().BuildResolver(config.DefaultConfig(), r, nil)
	if got := res.ResolveType(reflect.TypeOf(plainType{}), naming()); got != "p" {
		t.Fatalf("resolver did not use registry mapping: got %q", got)
	}
}

// TestBuildStyle_UsesResolver asserts that the built style names classes
// through the resolver it was given.
func TestBuildStyle_UsesResolver(t *testing.T) {
	f := factory.New()
	cfg := config.DefaultConfig()
	reg := f.BuildRegistry(cfg, nil)
	if err := reg.Register(reflect.TypeOf(plainType{}), "pkg.Plain"); err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	st := f.BuildStyle(cfg, f.BuildResolver(cfg, reg, nil))

	if got := st.ClassName(plainType{}); got != "pkg.Plain" {
		t.Fatalf("ClassName: got %q", got)
	}

	var buf bytes.Buffer
	ctx := cycle.NewContext()
	v := plainType{}
	st.AppendStart(&buf, ctx, v)
	st.AppendField(&buf, ctx, "n", 1, apis.DetailDefault)
	st.AppendEnd(&buf, ctx, v)
	if got := buf.String(); got != "pkg.Plain[n=1]" {
		t.Fatalf("render: got %q", got)
	}
}

// TestBuildResolver_Concurrency_Smoke calls a built resolver from many
// goroutines at once.
func TestBuildResolver_Concurrency_Smoke(t *testing.T) {
	f := factory.New()
	cfg := config.DefaultConfig()
	reg := f.BuildRegistry(cfg, nil)
	_ = reg.Register(reflect.TypeOf(plainType{}), "plain")
	_ = reg.Register(reflect.TypeOf(namedType{}), "shadowed")
	res := f.BuildResolver(cfg, reg, nil)

	types := []reflect.Type{
		reflect.TypeOf(plainType{}),
		reflect.TypeOf(namedType{}),
		reflect.TypeOf(&plainType{}),
		reflect.TypeOf([]plainType{}),
	}

	workers := runtime.GOMAXPROCS(0) * 4
	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func(id int) {
			defer wg.Done()
			for i := 0; i < 2000; i++ {
				if got := res.ResolveType(types[(i+id)%len(types)], naming()); strings.TrimSpace(got) == "" {
					t.Errorf("empty name")
					return
				}
				if got := res.Resolve(namedType{}, naming()); got != "named" {
					t.Errorf("Resolve(namedType) = %q", got)
					return
				}
			}
		}(w)
	}
	wg.Wait()
}

// Compile-time check: factory.New() must satisfy apis.Factory.
var _ apis.Factory = factory.New()

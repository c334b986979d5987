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
	"errors"
	"reflect"
	"sync"
	"sync/atomic"

	"dirpx.dev/tostr/apis"
	"dirpx.dev/tostr/config"
	"dirpx.dev/tostr/factory"
)

// init publishes the initial snapshot built from config.DefaultConfig.
func init() {
	f := factory.New()
	cfg := config.DefaultConfig()
	reg := f.BuildRegistry(cfg, nil)
	res := f.BuildResolver(cfg, reg, nil)
	st.Store(&state{
		cfg: cfg,
		reg: reg,
		res: res,
		sty: f.BuildStyle(cfg, res),
		fac: f,
	})
}

var (
	// ErrNilRegistry is raised when a factory returns a nil registry.
	ErrNilRegistry = errors.New("tostr: factory returned nil registry")
	// ErrNilResolver is raised when a factory returns a nil resolver.
	ErrNilResolver = errors.New("tostr: factory returned nil resolver")
	// ErrNilStyle is raised when a factory returns a nil style, or a
	// Builder is created without one.
	ErrNilStyle = errors.New("tostr: nil style")
)

// ClassName resolves the class name of v through the global resolver.
func ClassName(v any) string {
	s := st.Load()
	return s.res.Resolve(v, s.cfg.Naming)
}

// ClassNameType is ClassName for a reflect.Type.
func ClassNameType(t reflect.Type) string {
	s := st.Load()
	return s.res.ResolveType(t, s.cfg.Naming)
}

// RegisterType adds a type-name mapping to the global registry.
func RegisterType(t reflect.Type, name string) error {
	return st.Load().reg.Register(t, name)
}

// NewStyle builds a style for cfg with the global factory and resolver.
// The global state is left untouched.
func NewStyle(cfg apis.Config) apis.Style {
	s := st.Load()
	return s.fac.BuildStyle(cfg, s.res)
}

// LoadConfig reads a configuration file (see config.Load) and installs it
// with SetConfig. The global state is unchanged on error.
func LoadConfig(path string, opts ...config.LoadOption) error {
	cfg, err := config.Load(path, opts...)
	if err != nil {
		return err
	}
	SetConfig(cfg)
	return nil
}

// SetAll replaces every global component at once. Nil arguments are built
// by the factory (the current one if fac is nil) and leave the component
// unpinned; non-nil ones are pinned.
func SetAll(cfg *apis.Config, reg apis.Registry, res apis.Resolver, sty apis.Style, fac apis.Factory) {
	buildMu.Lock()
	defer buildMu.Unlock()

	old := st.Load()
	next := &state{
		cfg:  old.cfg,
		fac:  old.fac,
		reg:  reg,
		res:  res,
		sty:  sty,
		preg: reg != nil,
		pres: res != nil,
		psty: sty != nil,
	}
	if cfg != nil {
		next.cfg = *cfg
	}
	if fac != nil {
		next.fac = fac
	}
	publish(next, old)
}

// Config returns the global configuration.
func Config() apis.Config {
	return st.Load().cfg
}

// SetConfig installs cfg and rebuilds every unpinned component.
func SetConfig(cfg apis.Config) {
	update(func(s *state) { s.cfg = cfg })
}

// DefaultStyle returns the global style used by New and Of.
func DefaultStyle() apis.Style {
	return st.Load().sty
}

// SetDefaultStyle installs and pins sty. A nil sty is ignored.
func SetDefaultStyle(sty apis.Style) {
	if sty == nil {
		return
	}
	update(func(s *state) { s.sty, s.psty = sty, true })
}

// Registry returns the global registry.
func Registry() apis.Registry {
	return st.Load().reg
}

// SetRegistry installs and pins reg, rebuilding the resolver and style
// unless pinned. A nil reg is ignored.
func SetRegistry(reg apis.Registry) {
	if reg == nil {
		return
	}
	update(func(s *state) { s.reg, s.preg = reg, true })
}

// Resolver returns the global resolver.
func Resolver() apis.Resolver {
	return st.Load().res
}

// SetResolver installs and pins res, rebuilding the style unless pinned.
// A nil res is ignored.
func SetResolver(res apis.Resolver) {
	if res == nil {
		return
	}
	update(func(s *state) { s.res, s.pres = res, true })
}

// Factory returns the global factory.
func Factory() apis.Factory {
	return st.Load().fac
}

// SetFactory installs f and rebuilds every unpinned component with it.
// A nil f is ignored.
func SetFactory(f apis.Factory) {
	if f == nil {
		return
	}
	update(func(s *state) { s.fac = f })
}

// IsRegistryPinned reports whether the global registry survives rebuilds.
func IsRegistryPinned() bool { return st.Load().preg }

// PinRegistry keeps the global registry across rebuilds.
func PinRegistry() { pin(func(s *state) { s.preg = true }) }

// UnpinRegistry lets the next rebuild replace the global registry.
func UnpinRegistry() { pin(func(s *state) { s.preg = false }) }

// IsResolverPinned reports whether the global resolver survives rebuilds.
func IsResolverPinned() bool { return st.Load().pres }

// PinResolver keeps the global resolver across rebuilds.
func PinResolver() { pin(func(s *state) { s.pres = true }) }

// UnpinResolver lets the next rebuild replace the global resolver.
func UnpinResolver() { pin(func(s *state) { s.pres = false }) }

// IsStylePinned reports whether the global style survives rebuilds.
func IsStylePinned() bool { return st.Load().psty }

// PinStyle keeps the global style across rebuilds.
func PinStyle() { pin(func(s *state) { s.psty = true }) }

// UnpinStyle lets the next rebuild replace the global style.
func UnpinStyle() { pin(func(s *state) { s.psty = false }) }

// update copies the current snapshot, applies fn and publishes the copy
// with unpinned components rebuilt.
func update(fn func(*state)) {
	buildMu.Lock()
	defer buildMu.Unlock()

	old := st.Load()
	next := *old
	fn(&next)
	publish(&next, old)
}

// pin is update without rebuilding: only pin flags change.
func pin(fn func(*state)) {
	buildMu.Lock()
	defer buildMu.Unlock()

	next := *st.Load()
	fn(&next)
	st.Store(&next)
}

// publish rebuilds the unpinned components of next in dependency order
// (registry, resolver, style) and stores it. Callers hold buildMu.
func publish(next, old *state) {
	f := next.fac
	if !next.preg {
		next.reg = f.BuildRegistry(next.cfg, old.reg)
	}
	if !next.pres {
		next.res = f.BuildResolver(next.cfg, next.reg, old.res)
	}
	if !next.psty {
		next.sty = f.BuildStyle(next.cfg, next.res)
	}

	switch {
	case next.reg == nil:
		panic(ErrNilRegistry)
	case next.res == nil:
		panic(ErrNilResolver)
	case next.sty == nil:
		panic(ErrNilStyle)
	}
	st.Store(next)
}

// buildMu serializes writers so that partially built snapshots are never
// published.
var buildMu sync.Mutex

// st is the global snapshot.
var st atomic.Pointer[state]

// state is an immutable snapshot of the global components. Writers copy it,
// modify the copy and swap it in; a published state is never mutated.
type state struct {
	// cfg is the global configuration.
	cfg apis.Config
	// reg is the global registry.
	reg apis.Registry
	// res is the global resolver.
	res apis.Resolver
	// sty is the global style.
	sty apis.Style
	// fac builds unpinned components.
	fac apis.Factory
	// preg indicates whether reg is pinned.
	preg bool
	// pres indicates whether res is pinned.
	pres bool
	// psty indicates whether sty is pinned.
	psty bool
}

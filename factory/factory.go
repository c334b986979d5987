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

// Package factory provides the default apis.Factory, composing the stock
// registry, resolver and style packages.
package factory

import (
	"dirpx.dev/tostr/apis"
	"dirpx.dev/tostr/registry"
	"dirpx.dev/tostr/resolver"
	"dirpx.dev/tostr/strategy"
	"dirpx.dev/tostr/style"
)

// New creates and returns a new instance of an apis.Factory.
func New() apis.Factory {
	return &factory{}
}

// factory is an empty struct to be used as a receiver for factory methods.
type factory struct{}

// BuildRegistry builds an empty registry and copies over the entries of
// prev, if any, so registrations survive a configuration change.
func (f *factory) BuildRegistry(_ apis.Config, prev apis.Registry) apis.Registry {
	nreg := registry.New()
	if prev != nil {
		for _, e := range prev.Entries() {
			_ = nreg.Register(e.Type, e.Name)
		}
	}
	return nreg
}

// BuildResolver builds the Namer -> Registry -> Reflect resolution chain over reg.
func (f *factory) BuildResolver(_ apis.Config, reg apis.Registry, _ apis.Resolver) apis.Resolver {
	return resolver.New(
		strategy.NewNamerStrategy(),
		strategy.NewRegistryStrategy(reg),
		strategy.NewReflectStrategy(),
	)
}

// BuildStyle builds the style rendering cfg.
func (f *factory) BuildStyle(cfg apis.Config, res apis.Resolver) apis.Style {
	return style.New(cfg, res)
}

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

package resolver

import (
	"reflect"

	"dirpx.dev/tostr/apis"
	uref "dirpx.dev/tostr/utils/reflect"
)

// New constructs an apis.Resolver that tries the given strategies in order.
// Nil strategies are ignored. The returned resolver is safe for concurrent use
// provided strategies themselves are safe for concurrent TryResolve calls.
//
// Strategies see values and named types only. Everything else is spelled
// as a type expression whose named parts are resolved through the chain,
// so a registered T also names []*T and map[string]T.
func New(strategies ...apis.Strategy) apis.Resolver {
	out := make([]apis.Strategy, 0, len(strategies))
	for _, s := range strategies {
		if s != nil {
			out = append(out, s)
		}
	}
	return chain{strats: out}
}

// chain is an immutable, order-preserving resolver over a set of strategies.
type chain struct {
	strats []apis.Strategy
}

// Resolve runs strategies in order until one names the value, then falls
// back to ResolveType. Returns an empty string only for a nil v.
func (r chain) Resolve(v any, cfg apis.NamingConfig) string {
	if v == nil {
		return ""
	}
	for _, s := range r.strats {
		if name, ok := s.TryResolve(v, cfg); ok && name != "" {
			return name
		}
	}
	return r.ResolveType(reflect.TypeOf(v), cfg)
}

// ResolveType names t. Leading pointers are dropped, since a class name
// describes the value pointed to. Returns an empty string only for a nil t.
func (r chain) ResolveType(t reflect.Type, cfg apis.NamingConfig) string {
	if t == nil {
		return ""
	}
	for t.Name() == "" && t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return uref.TypeName(t, cfg, func(named reflect.Type) string {
		return r.named(named, cfg)
	})
}

// named asks the chain for one named type. Without a reflect strategy in
// the chain the bare reflective name is used.
func (r chain) named(t reflect.Type, cfg apis.NamingConfig) string {
	for _, s := range r.strats {
		if name, ok := s.TryResolveType(t, cfg); ok && name != "" {
			return name
		}
	}
	return uref.NamedName(t, cfg)
}

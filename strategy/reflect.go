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

package strategy

import (
	"reflect"
	"sync"

	"dirpx.dev/tostr/apis"
	uref "dirpx.dev/tostr/utils/reflect"
)

// NewReflectStrategy creates the apis.Strategy that names any named type
// from reflection: "pkg.Type", "Type" when short.
func NewReflectStrategy() apis.Strategy {
	return reflectStrategy{}
}

// reflectStrategy is the last step of the chain. It handles every named
// type, so the resolver never falls back for them; unnamed types are left
// to the resolver, which spells them out.
type reflectStrategy struct{}

// Ensure reflectStrategy implements apis.Strategy.
var _ apis.Strategy = reflectStrategy{}

// nameKey holds the knobs that change a reflective name.
type nameKey struct {
	t        reflect.Type
	short    bool
	typeArgs bool
}

// names memoizes NamedName, which trims import paths out of generic
// instantiations on every call.
var names sync.Map // nameKey -> string

// TryResolve names v's type when it is named.
func (s reflectStrategy) TryResolve(v any, cfg apis.NamingConfig) (string, bool) {
	if v == nil {
		return "", false
	}
	return s.TryResolveType(reflect.TypeOf(v), cfg)
}

// TryResolveType names t when it is named.
func (reflectStrategy) TryResolveType(t reflect.Type, cfg apis.NamingConfig) (string, bool) {
	if t == nil || t.Name() == "" {
		return "", false
	}
	key := nameKey{t: t, short: cfg.Short, typeArgs: cfg.TypeArgs}
	if n, ok := names.Load(key); ok {
		return n.(string), true
	}
	n := uref.NamedName(t, cfg)
	names.Store(key, n)
	return n, true
}

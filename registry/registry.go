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

// Package registry holds explicit class names for named Go types.
//
// Only named types are registered. A container of a registered type is
// named by composition at resolution time, so registering model.User once
// also names []*model.User and map[string]model.User.
package registry

import (
	"errors"
	"reflect"
	"sort"
	"strings"
	"sync"

	"dirpx.dev/tostr/apis"
)

var (
	// ErrNilType is returned when a nil reflect.Type is provided.
	ErrNilType = errors.New("tostr(registry): nil reflect.Type provided")
	// ErrEmptyName is returned when an empty name is provided.
	ErrEmptyName = errors.New("tostr(registry): empty name provided")
	// ErrNotNamed is returned for types that have no name of their own,
	// such as []T or struct{...}. Register the element type instead.
	ErrNotNamed = errors.New("tostr(registry): type is not named")
	// ErrConflictingRegistration indicates an attempt to re-register
	// a type with a different name.
	ErrConflictingRegistration = errors.New("tostr(registry): conflicting type registration")
)

// New returns an empty registry. It is safe for concurrent use.
func New() apis.Registry {
	return &registry{m: make(map[reflect.Type]apis.Entry)}
}

// registry is a read-mostly map guarded by a RWMutex: lookups happen on
// every rendered class name, registrations at start-up.
type registry struct {
	mu sync.RWMutex
	m  map[reflect.Type]apis.Entry
}

// Ensure registry implements apis.Registry.
var _ apis.Registry = (*registry)(nil)

// Register names t. Pointers are stripped, so *T and T share an entry.
// It is idempotent for the same (type, name) pair.
func (r *registry) Register(t reflect.Type, name string) error {
	if t == nil {
		return ErrNilType
	}
	if name == "" {
		return ErrEmptyName
	}
	t = named(t)
	if t.Name() == "" {
		return ErrNotNamed
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if old, ok := r.m[t]; ok {
		if old.Name == name {
			return nil
		}
		return ErrConflictingRegistration
	}
	r.m[t] = apis.Entry{Type: t, Name: name, Short: short(name)}
	return nil
}

// Lookup returns the entry of t, or of the type t points to.
func (r *registry) Lookup(t reflect.Type) (apis.Entry, bool) {
	if t == nil {
		return apis.Entry{}, false
	}
	t = named(t)
	r.mu.RLock()
	e, ok := r.m[t]
	r.mu.RUnlock()
	return e, ok
}

// Entries returns a snapshot ordered by name.
func (r *registry) Entries() []apis.Entry {
	r.mu.RLock()
	out := make([]apis.Entry, 0, len(r.m))
	for _, e := range r.m {
		out = append(out, e)
	}
	r.mu.RUnlock()
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Count returns the number of registered entries.
func (r *registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.m)
}

// Reset clears all registered entries.
func (r *registry) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	clear(r.m)
}

// named strips unnamed pointer layers: **T -> T.
func named(t reflect.Type) reflect.Type {
	for t.Name() == "" && t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t
}

// short keeps the part of a class name after its last dot.
func short(name string) string {
	if i := strings.LastIndexByte(name, '.'); i >= 0 && i < len(name)-1 {
		return name[i+1:]
	}
	return name
}

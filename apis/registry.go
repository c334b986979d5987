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

package apis

import "reflect"

// Registry maps named Go types to explicit class names, overriding the
// names derived by reflection. Containers of a registered type are named
// after it: registering T names []*T as "[]*<name>".
type Registry interface {
	// Register associates a named type (or a pointer to one) with name.
	// Re-registering the same name is a no-op; a different name is an error.
	Register(t reflect.Type, name string) error
	// Lookup returns the entry registered for the named type t.
	Lookup(t reflect.Type) (Entry, bool)
	// Entries returns a snapshot ordered by name.
	Entries() []Entry
	// Count returns the number of registered entries.
	Count() int
	// Reset clears all registered entries.
	Reset()
}

// Entry is a single type registration.
type Entry struct {
	// Type is the registered named type.
	Type reflect.Type
	// Name is the qualified class name, e.g. "domain.User".
	Name string
	// Short is Name without its qualifier, e.g. "User".
	Short string
}

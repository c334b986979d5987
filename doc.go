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

// Package tostr renders Go values as consistent, style-driven text for
// logs, debugging output and error messages.
//
// A Builder is one formatting session for one subject. It opens with the
// subject's class name and an identity tag, accumulates "name=value" fields,
// and closes when Build is called. Types describe their fields once by
// implementing apis.Formattable and reuse that layout in String:
//
//	func (p *Person) FormatFields(f apis.Fields) {
//		f.Field("name", p.Name)
//		f.Field("age", p.Age)
//		f.Field("friend", p.Friend)
//	}
//
//	func (p *Person) String() string { return tostr.Of(p) }
//	// main.Person@c000010030[name="John Doe",age=33,friend=<null>]
//
// Of and Reflect build the same kind of text from the struct fields of a
// value without any hand-written layout. New starts a session for fields
// appended one by one.
//
// # Styles
//
// Every choice about layout (brackets, separators, quoting, null text,
// summary markers, class and field names, indentation) is made by an
// apis.Style built from an apis.Config. The config package carries the
// stock presets (default, short-prefix, simple, no-field-names,
// no-class-name, multi-line, recursive, json) and loads configurations
// from YAML, TOML or JSON files:
//
//	tostr.NewWithStyle(p, tostr.NewStyle(config.SimpleConfig())).Append(...)
//	// John Doe,33,false
//
// # Cycles
//
// Everything a session renders shares one apis.Context. Its cycle guard
// holds the reference identities of the values being rendered, so a value
// reachable from itself prints once in full and then as "Class@tag".
// Identity, not equality, decides: equal but distinct values are expanded
// normally. A String or Error method that opens its own session while a
// render is calling it joins that render on the same goroutine, so cycles
// through fmt.Stringer are caught as well. Past cycle.MaxNesting nested
// values the rest is summarized.
//
// # Process-wide defaults
//
// The package keeps an atomically published snapshot of the global Config,
// Registry, Resolver, Style and Factory, initialised at package init from
// config.DefaultConfig. Reads are lock-free. Writers (SetConfig,
// SetFactory, SetRegistry, ...) build a new snapshot under a mutex and swap
// it in, rebuilding every component that is not pinned. Components set
// explicitly are pinned until unpinned.
//
// Class names are resolved by a chain of strategies: apis.Namer first, then
// the Registry, then reflection ("pkg.Type").
package tostr

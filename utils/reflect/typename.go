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

package reflect

import (
	"path"
	"reflect"
	"strconv"
	"strings"

	"dirpx.dev/tostr/apis"
	"dirpx.dev/tostr/config"
)

// NameFunc names one named type. TypeName never calls it for unnamed types.
type NameFunc func(t reflect.Type) string

// TypeName spells t as a Go type expression whose named parts come from
// name:
//
//	[]*pkg.Node   map[string]pkg.Node   chan<- pkg.Event   [4]int
//
// At most cfg.MaxUnwrap container layers are spelled out this way; whatever
// lies deeper is printed by reflection with TrimPackages applied.
func TypeName(t reflect.Type, cfg apis.NamingConfig, name NameFunc) string {
	if t == nil {
		return ""
	}
	budget := cfg.MaxUnwrap
	if budget <= 0 {
		budget = config.DefaultMaxUnwrap
	}
	var b strings.Builder
	writeType(&b, t, cfg, name, budget)
	return b.String()
}

func writeType(b *strings.Builder, t reflect.Type, cfg apis.NamingConfig, name NameFunc, budget int) {
	if t.Name() != "" {
		b.WriteString(name(t))
		return
	}
	if budget == 0 {
		b.WriteString(TrimPackages(t.String(), cfg))
		return
	}
	budget--
	switch t.Kind() {
	case reflect.Ptr:
		b.WriteByte('*')
	case reflect.Slice:
		b.WriteString("[]")
	case reflect.Array:
		b.WriteByte('[')
		b.WriteString(strconv.Itoa(t.Len()))
		b.WriteByte(']')
	case reflect.Chan:
		writeChan(b, t, cfg, name, budget)
		return
	case reflect.Map:
		b.WriteString("map[")
		writeType(b, t.Key(), cfg, name, budget)
		b.WriteByte(']')
	default:
		b.WriteString(TrimPackages(t.String(), cfg))
		return
	}
	writeType(b, t.Elem(), cfg, name, budget)
}

// writeChan parenthesizes a receive-only element of a bidirectional chan,
// as "chan <-chan T" would read as "chan<- chan T".
func writeChan(b *strings.Builder, t reflect.Type, cfg apis.NamingConfig, name NameFunc, budget int) {
	elem := t.Elem()
	paren := false
	switch t.ChanDir() {
	case reflect.RecvDir:
		b.WriteString("<-chan ")
	case reflect.SendDir:
		b.WriteString("chan<- ")
	default:
		b.WriteString("chan ")
		paren = elem.Name() == "" && elem.Kind() == reflect.Chan && elem.ChanDir() == reflect.RecvDir
	}
	if paren {
		b.WriteByte('(')
	}
	writeType(b, elem, cfg, name, budget)
	if paren {
		b.WriteByte(')')
	}
}

// NamedName returns the reflective class name of the named type t:
// "pkg.Type", or "Type" with cfg.Short. Predeclared types keep their bare
// name. Generic instantiations drop their type arguments unless
// cfg.TypeArgs is set.
func NamedName(t reflect.Type, cfg apis.NamingConfig) string {
	n := t.Name()
	if i := strings.IndexByte(n, '['); i >= 0 {
		if cfg.TypeArgs {
			n = n[:i] + TrimPackages(n[i:], cfg)
		} else {
			n = n[:i]
		}
	}
	if p := t.PkgPath(); p != "" && !cfg.Short {
		n = path.Base(p) + "." + n
	}
	return n
}

// TrimPackages rewrites the qualified identifiers of a type expression:
// import paths are cut to their last element, and with cfg.Short the
// package qualifier is dropped as well.
//
//	map[string]dirpx.dev/app/model.User -> map[string]model.User
func TrimPackages(s string, cfg apis.NamingConfig) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); {
		if !identByte(s[i]) {
			b.WriteByte(s[i])
			i++
			continue
		}
		j := i
		for j < len(s) && identByte(s[j]) {
			j++
		}
		b.WriteString(trimIdent(s[i:j], cfg.Short))
		i = j
	}
	return b.String()
}

func trimIdent(tok string, short bool) string {
	rest := strings.TrimLeft(tok, ".")
	dots := tok[:len(tok)-len(rest)]
	if k := strings.LastIndexByte(rest, '/'); k >= 0 {
		rest = rest[k+1:]
	}
	if short {
		if k := strings.LastIndexByte(rest, '.'); k >= 0 {
			rest = rest[k+1:]
		}
	}
	return dots + rest
}

// identByte reports whether c can be part of a qualified identifier,
// import path included.
func identByte(c byte) bool {
	switch {
	case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
		return true
	case c == '_', c == '.', c == '/', c == '-', c == '~', c >= 0x80:
		return true
	default:
		return false
	}
}

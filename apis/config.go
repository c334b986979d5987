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

// Config carries the formatting rules of a Style: which parts of a subject
// are printed and which delimiters surround them.
// It is passed by value and should be treated as immutable by implementations.
//
// Text fields are never "absent": an empty string simply emits nothing, so
// concatenation over a Config is always total.
type Config struct {
	// UseClassName controls whether the subject's class name is emitted.
	UseClassName bool
	// UseShortClassName selects "Person" over "pkg.Person".
	UseShortClassName bool
	// UseIdentityTag controls whether "@<hex>" follows the class name.
	UseIdentityTag bool
	// UseFieldNames controls whether "name=" precedes each field value.
	UseFieldNames bool

	// ContentStart opens the field list, e.g. "[".
	ContentStart string
	// ContentEnd closes the field list, e.g. "]".
	ContentEnd string

	// FieldNameValueSeparator sits between a field name and its value.
	FieldNameValueSeparator string
	// FieldSeparator sits between fields.
	FieldSeparator string
	// FieldSeparatorAtStart emits a separator right after ContentStart.
	FieldSeparatorAtStart bool
	// FieldSeparatorAtEnd keeps the separator after the last field.
	FieldSeparatorAtEnd bool

	// ArrayStart opens arrays, slices and collections.
	ArrayStart string
	// ArraySeparator sits between elements (also used between map entries).
	ArraySeparator string
	// ArrayEnd closes arrays, slices and collections.
	ArrayEnd string
	// ArrayContentDetail is the detail level used for elements.
	ArrayContentDetail bool

	// MapStart opens a map in full detail.
	MapStart string
	// MapKeyValueSeparator sits between a map key and its value.
	MapKeyValueSeparator string
	// MapEnd closes a map in full detail.
	MapEnd string

	// DefaultFullDetail is used when a caller does not request a detail level.
	DefaultFullDetail bool

	// NullText renders nil values.
	NullText string
	// SizeStartText precedes the size of a summarized sized value.
	SizeStartText string
	// SizeEndText follows the size of a summarized sized value.
	SizeEndText string
	// SummaryObjectStartText precedes the short class name of a summarized object.
	SummaryObjectStartText string
	// SummaryObjectEndText follows the short class name of a summarized object.
	SummaryObjectEndText string

	// StringQuote wraps strings rendered in full detail.
	// Embedded quotes are NOT escaped; use EscapeStrings for unambiguous output.
	StringQuote string
	// EscapeStrings renders every textual value (strings, runes, enum names,
	// object text, non-string map keys) as a quoted, escaped JSON literal.
	EscapeStrings bool
	// FieldNameQuote wraps field names.
	FieldNameQuote string

	// Recursive expands structs that have no textual form of their own
	// field by field instead of falling back to fmt.
	Recursive bool
	// IndentWidth enables multi-line output when > 0: every nesting level is
	// re-indented by IndentWidth spaces.
	IndentWidth int

	// Color controls terminal coloring of class and field names.
	Color ColorMode

	// Naming carries the class-name resolution knobs.
	Naming NamingConfig
}

// NamingConfig carries the knobs that shape a class name.
//
// Class names spell a type the way Go source does, with every named part
// resolved through the strategy chain: a []*Node field is named
// "[]*pkg.Node", not "pkg.Node".
type NamingConfig struct {
	// Short drops package qualifiers from every named part: "[]*Node".
	Short bool

	// MaxUnwrap bounds how many container layers (pointer, slice, array,
	// chan, map) are spelled out through the strategy chain. Deeper layers
	// are printed from reflection alone.
	MaxUnwrap int

	// TypeArgs keeps the instantiation of generic types: "pkg.Box[int]"
	// instead of "pkg.Box".
	TypeArgs bool
}

// Detail is a tri-state detail request: unspecified, full or summary.
type Detail uint8

const (
	// DetailDefault defers to Config.DefaultFullDetail.
	DetailDefault Detail = iota
	// DetailFull expands contents.
	DetailFull
	// DetailSummary prints only a size or type marker.
	DetailSummary
)

// String returns the textual form of d.
func (d Detail) String() string {
	switch d {
	case DetailDefault:
		return "default"
	case DetailFull:
		return "full"
	case DetailSummary:
		return "summary"
	default:
		return "unknown"
	}
}

// DetailOf maps a plain boolean onto a Detail request.
func DetailOf(full bool) Detail {
	if full {
		return DetailFull
	}
	return DetailSummary
}

// ColorMode selects when class and field names are painted.
type ColorMode uint8

const (
	// ColorNever disables coloring.
	ColorNever ColorMode = iota
	// ColorAuto colors only when stdout is a terminal.
	ColorAuto
	// ColorAlways forces coloring.
	ColorAlways
)

// String returns the textual form of m.
func (m ColorMode) String() string {
	switch m {
	case ColorNever:
		return "never"
	case ColorAuto:
		return "auto"
	case ColorAlways:
		return "always"
	default:
		return "unknown"
	}
}

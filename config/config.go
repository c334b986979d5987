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

package config

import (
	"dirpx.dev/tostr/apis"
)

const (
	// DefaultMaxUnwrap represents the default for NamingConfig.MaxUnwrap.
	// A value of 8 should be sufficient for all practical purposes.
	DefaultMaxUnwrap = 8

	// DefaultNullText renders nil values.
	DefaultNullText = "<null>"
	// DefaultIndentWidth is the indentation step of the multi-line presets.
	DefaultIndentWidth = 2
)

// NewConfig constructs an apis.Config from DefaultConfig and the given options.
func NewConfig(opts ...Option) apis.Config {
	return Apply(DefaultConfig(), opts...)
}

// Apply returns cfg with opts applied in order.
func Apply(cfg apis.Config, opts ...Option) apis.Config {
	for _, opt := range opts {
		opt(&cfg)
	}
	// Ensure MaxUnwrap is valid.
	if cfg.Naming.MaxUnwrap <= 0 {
		cfg.Naming.MaxUnwrap = DefaultMaxUnwrap
	}
	if cfg.IndentWidth < 0 {
		cfg.IndentWidth = 0
	}
	return cfg
}

// DefaultNamingConfig is the class-name resolution baseline of every preset.
func DefaultNamingConfig() apis.NamingConfig {
	return apis.NamingConfig{
		MaxUnwrap: DefaultMaxUnwrap,
	}
}

// DefaultConfig renders class name, identity tag and field names:
//
//	pkg.Person@c000010030[name="John Doe",age=33,smoker=false]
func DefaultConfig() apis.Config {
	return apis.Config{
		UseClassName:            true,
		UseIdentityTag:          true,
		UseFieldNames:           true,
		ContentStart:            "[",
		ContentEnd:              "]",
		FieldNameValueSeparator: "=",
		FieldSeparator:          ",",
		ArrayStart:              "{",
		ArraySeparator:          ",",
		ArrayEnd:                "}",
		ArrayContentDetail:      true,
		MapStart:                "{",
		MapKeyValueSeparator:    "=",
		MapEnd:                  "}",
		DefaultFullDetail:       true,
		NullText:                DefaultNullText,
		SizeStartText:           "<size=",
		SizeEndText:             ">",
		SummaryObjectStartText:  "<",
		SummaryObjectEndText:    ">",
		StringQuote:             `"`,
		Naming:                  DefaultNamingConfig(),
	}
}

// ShortPrefixConfig uses the short class name and no identity tag:
//
//	Person[name=John Doe,age=33,smoker=false]
func ShortPrefixConfig() apis.Config {
	cfg := DefaultConfig()
	cfg.UseShortClassName = true
	cfg.UseIdentityTag = false
	cfg.StringQuote = ""
	return cfg
}

// NoFieldNamesConfig omits field names:
//
//	pkg.Person@c000010030[John Doe,33,false]
func NoFieldNamesConfig() apis.Config {
	cfg := DefaultConfig()
	cfg.UseFieldNames = false
	cfg.StringQuote = ""
	return cfg
}

// SimpleConfig prints raw values only:
//
//	John Doe,33,false
func SimpleConfig() apis.Config {
	cfg := DefaultConfig()
	cfg.UseClassName = false
	cfg.UseIdentityTag = false
	cfg.UseFieldNames = false
	cfg.ContentStart = ""
	cfg.ContentEnd = ""
	cfg.StringQuote = ""
	return cfg
}

// NoClassNameConfig keeps field names and brackets but drops the class name:
//
//	[name="John Doe",age=33,smoker=false]
func NoClassNameConfig() apis.Config {
	cfg := DefaultConfig()
	cfg.UseClassName = false
	cfg.UseIdentityTag = false
	return cfg
}

// MultiLineConfig puts every field on its own line:
//
//	pkg.Person@c000010030[
//	  name="John Doe"
//	  age=33
//	]
func MultiLineConfig() apis.Config {
	cfg := DefaultConfig()
	cfg.FieldSeparator = ""
	cfg.IndentWidth = DefaultIndentWidth
	return cfg
}

// RecursiveConfig expands nested structs field by field.
func RecursiveConfig() apis.Config {
	cfg := DefaultConfig()
	cfg.Recursive = true
	return cfg
}

// MultiLineRecursiveConfig expands nested structs, one comma-terminated
// field per line, indenting every nesting level.
func MultiLineRecursiveConfig() apis.Config {
	cfg := MultiLineConfig()
	cfg.FieldSeparator = ","
	cfg.Recursive = true
	return cfg
}

// JSONConfig renders JSON text:
//
//	{"name":"John Doe","age":33,"smoker":false}
func JSONConfig() apis.Config {
	return apis.Config{
		UseFieldNames:           true,
		ContentStart:            "{",
		ContentEnd:              "}",
		FieldNameValueSeparator: ":",
		FieldSeparator:          ",",
		ArrayStart:              "[",
		ArraySeparator:          ",",
		ArrayEnd:                "]",
		ArrayContentDetail:      true,
		MapStart:                "{",
		MapKeyValueSeparator:    ":",
		MapEnd:                  "}",
		DefaultFullDetail:       true,
		NullText:                "null",
		SizeStartText:           `"<size=`,
		SizeEndText:             `>"`,
		SummaryObjectStartText:  `"<`,
		SummaryObjectEndText:    `>"`,
		StringQuote:             `"`,
		EscapeStrings:           true,
		FieldNameQuote:          `"`,
		Recursive:               true,
		Naming:                  DefaultNamingConfig(),
	}
}

// Option is a functional option that mutates an apis.Config during construction.
type Option func(*apis.Config)

// WithMaxUnwrap sets the Naming.MaxUnwrap option.
// A non-positive value resets to the default.
func WithMaxUnwrap(max int) Option {
	return func(c *apis.Config) {
		if max <= 0 {
			c.Naming.MaxUnwrap = DefaultMaxUnwrap
			return
		}
		c.Naming.MaxUnwrap = max
	}
}

// WithTypeArgs keeps generic instantiations in class names: "pkg.Box[int]".
func WithTypeArgs(keep bool) Option {
	return func(c *apis.Config) {
		c.Naming.TypeArgs = keep
	}
}

// WithClassName toggles the class name; short selects the unqualified form.
func WithClassName(use, short bool) Option {
	return func(c *apis.Config) {
		c.UseClassName = use
		c.UseShortClassName = short
	}
}

// WithIdentityTag toggles the "@<hex>" identity tag.
func WithIdentityTag(use bool) Option {
	return func(c *apis.Config) {
		c.UseIdentityTag = use
	}
}

// WithFieldNames toggles field names.
func WithFieldNames(use bool) Option {
	return func(c *apis.Config) {
		c.UseFieldNames = use
	}
}

// WithContent sets the brackets around the field list.
func WithContent(start, end string) Option {
	return func(c *apis.Config) {
		c.ContentStart = start
		c.ContentEnd = end
	}
}

// WithFieldSeparator sets the field separator and where it is kept.
func WithFieldSeparator(sep string, atStart, atEnd bool) Option {
	return func(c *apis.Config) {
		c.FieldSeparator = sep
		c.FieldSeparatorAtStart = atStart
		c.FieldSeparatorAtEnd = atEnd
	}
}

// WithFieldNameValueSeparator sets the text between a field name and its value.
func WithFieldNameValueSeparator(sep string) Option {
	return func(c *apis.Config) {
		c.FieldNameValueSeparator = sep
	}
}

// WithArray sets the array delimiters.
func WithArray(start, sep, end string) Option {
	return func(c *apis.Config) {
		c.ArrayStart = start
		c.ArraySeparator = sep
		c.ArrayEnd = end
	}
}

// WithArrayContentDetail sets the detail level used for array elements.
func WithArrayContentDetail(full bool) Option {
	return func(c *apis.Config) {
		c.ArrayContentDetail = full
	}
}

// WithMap sets the map delimiters.
func WithMap(start, kvSep, end string) Option {
	return func(c *apis.Config) {
		c.MapStart = start
		c.MapKeyValueSeparator = kvSep
		c.MapEnd = end
	}
}

// WithDefaultFullDetail sets the detail level used when none is requested.
func WithDefaultFullDetail(full bool) Option {
	return func(c *apis.Config) {
		c.DefaultFullDetail = full
	}
}

// WithNullText sets the text rendered for nil values.
func WithNullText(text string) Option {
	return func(c *apis.Config) {
		c.NullText = text
	}
}

// WithSizeText sets the text around the size of a summarized value.
func WithSizeText(start, end string) Option {
	return func(c *apis.Config) {
		c.SizeStartText = start
		c.SizeEndText = end
	}
}

// WithSummaryObjectText sets the text around a summarized class name.
func WithSummaryObjectText(start, end string) Option {
	return func(c *apis.Config) {
		c.SummaryObjectStartText = start
		c.SummaryObjectEndText = end
	}
}

// WithStringQuote sets the quote wrapped around full-detail strings.
func WithStringQuote(q string) Option {
	return func(c *apis.Config) {
		c.StringQuote = q
	}
}

// WithRecursive toggles reflective expansion of nested structs.
func WithRecursive(recursive bool) Option {
	return func(c *apis.Config) {
		c.Recursive = recursive
	}
}

// WithIndentWidth enables multi-line output when width > 0.
func WithIndentWidth(width int) Option {
	return func(c *apis.Config) {
		c.IndentWidth = width
	}
}

// WithColor sets the color mode.
func WithColor(mode apis.ColorMode) Option {
	return func(c *apis.Config) {
		c.Color = mode
	}
}

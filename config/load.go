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
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"dirpx.dev/tostr/apis"
)

// ErrEmptyPath is returned by Load when no path is given.
var ErrEmptyPath = errors.New("tostr(config): empty path")

// Format identifies the encoding of a configuration document.
type Format string

const (
	// FormatYAML decodes with gopkg.in/yaml.v3.
	FormatYAML Format = "yaml"
	// FormatTOML decodes with github.com/BurntSushi/toml.
	FormatTOML Format = "toml"
	// FormatJSON decodes with encoding/json.
	FormatJSON Format = "json"
)

// FormatOf derives the Format of a file from its extension.
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	case ".json":
		return FormatJSON, nil
	default:
		return "", &ParseError{Type: "Format", Value: filepath.Ext(path)}
	}
}

// File is the on-disk shape of a style configuration: a preset plus
// optional overrides. Absent fields keep the preset's value.
//
//	preset: short-prefix
//	nullText: "nil"
//	array:
//	  start: "["
//	  end: "]"
type File struct {
	Preset string `yaml:"preset" toml:"preset" json:"preset"`

	UseClassName      *bool `yaml:"useClassName" toml:"useClassName" json:"useClassName"`
	UseShortClassName *bool `yaml:"useShortClassName" toml:"useShortClassName" json:"useShortClassName"`
	UseIdentityTag    *bool `yaml:"useIdentityTag" toml:"useIdentityTag" json:"useIdentityTag"`
	UseFieldNames     *bool `yaml:"useFieldNames" toml:"useFieldNames" json:"useFieldNames"`

	ContentStart *string `yaml:"contentStart" toml:"contentStart" json:"contentStart"`
	ContentEnd   *string `yaml:"contentEnd" toml:"contentEnd" json:"contentEnd"`

	FieldNameValueSeparator *string `yaml:"fieldNameValueSeparator" toml:"fieldNameValueSeparator" json:"fieldNameValueSeparator"`
	FieldSeparator          *string `yaml:"fieldSeparator" toml:"fieldSeparator" json:"fieldSeparator"`
	FieldSeparatorAtStart   *bool   `yaml:"fieldSeparatorAtStart" toml:"fieldSeparatorAtStart" json:"fieldSeparatorAtStart"`
	FieldSeparatorAtEnd     *bool   `yaml:"fieldSeparatorAtEnd" toml:"fieldSeparatorAtEnd" json:"fieldSeparatorAtEnd"`

	Array *DelimitersFile `yaml:"array" toml:"array" json:"array"`
	Map   *DelimitersFile `yaml:"map" toml:"map" json:"map"`

	ArrayContentDetail *bool `yaml:"arrayContentDetail" toml:"arrayContentDetail" json:"arrayContentDetail"`
	DefaultFullDetail  *bool `yaml:"defaultFullDetail" toml:"defaultFullDetail" json:"defaultFullDetail"`

	NullText               *string `yaml:"nullText" toml:"nullText" json:"nullText"`
	SizeStartText          *string `yaml:"sizeStartText" toml:"sizeStartText" json:"sizeStartText"`
	SizeEndText            *string `yaml:"sizeEndText" toml:"sizeEndText" json:"sizeEndText"`
	SummaryObjectStartText *string `yaml:"summaryObjectStartText" toml:"summaryObjectStartText" json:"summaryObjectStartText"`
	SummaryObjectEndText   *string `yaml:"summaryObjectEndText" toml:"summaryObjectEndText" json:"summaryObjectEndText"`

	StringQuote    *string `yaml:"stringQuote" toml:"stringQuote" json:"stringQuote"`
	EscapeStrings  *bool   `yaml:"escapeStrings" toml:"escapeStrings" json:"escapeStrings"`
	FieldNameQuote *string `yaml:"fieldNameQuote" toml:"fieldNameQuote" json:"fieldNameQuote"`

	Recursive   *bool   `yaml:"recursive" toml:"recursive" json:"recursive"`
	IndentWidth *int    `yaml:"indentWidth" toml:"indentWidth" json:"indentWidth"`
	Color       *string `yaml:"color" toml:"color" json:"color"`

	Naming *NamingFile `yaml:"naming" toml:"naming" json:"naming"`
}

// DelimitersFile overrides the delimiters of arrays or maps.
// For maps, Separator is the key/value separator.
type DelimitersFile struct {
	Start     *string `yaml:"start" toml:"start" json:"start"`
	Separator *string `yaml:"separator" toml:"separator" json:"separator"`
	End       *string `yaml:"end" toml:"end" json:"end"`
}

// NamingFile overrides apis.NamingConfig.
type NamingFile struct {
	MaxUnwrap *int  `yaml:"maxUnwrap" toml:"maxUnwrap" json:"maxUnwrap"`
	TypeArgs  *bool `yaml:"typeArgs" toml:"typeArgs" json:"typeArgs"`
}

// Config resolves the preset, applies the overrides and validates the result.
func (f *File) Config() (apis.Config, error) {
	cfg, err := PresetConfig(f.Preset)
	if err != nil {
		return apis.Config{}, err
	}

	setBool(&cfg.UseClassName, f.UseClassName)
	setBool(&cfg.UseShortClassName, f.UseShortClassName)
	setBool(&cfg.UseIdentityTag, f.UseIdentityTag)
	setBool(&cfg.UseFieldNames, f.UseFieldNames)
	setString(&cfg.ContentStart, f.ContentStart)
	setString(&cfg.ContentEnd, f.ContentEnd)
	setString(&cfg.FieldNameValueSeparator, f.FieldNameValueSeparator)
	setString(&cfg.FieldSeparator, f.FieldSeparator)
	setBool(&cfg.FieldSeparatorAtStart, f.FieldSeparatorAtStart)
	setBool(&cfg.FieldSeparatorAtEnd, f.FieldSeparatorAtEnd)
	if d := f.Array; d != nil {
		setString(&cfg.ArrayStart, d.Start)
		setString(&cfg.ArraySeparator, d.Separator)
		setString(&cfg.ArrayEnd, d.End)
	}
	if d := f.Map; d != nil {
		setString(&cfg.MapStart, d.Start)
		setString(&cfg.MapKeyValueSeparator, d.Separator)
		setString(&cfg.MapEnd, d.End)
	}
	setBool(&cfg.ArrayContentDetail, f.ArrayContentDetail)
	setBool(&cfg.DefaultFullDetail, f.DefaultFullDetail)
	setString(&cfg.NullText, f.NullText)
	setString(&cfg.SizeStartText, f.SizeStartText)
	setString(&cfg.SizeEndText, f.SizeEndText)
	setString(&cfg.SummaryObjectStartText, f.SummaryObjectStartText)
	setString(&cfg.SummaryObjectEndText, f.SummaryObjectEndText)
	setString(&cfg.StringQuote, f.StringQuote)
	setBool(&cfg.EscapeStrings, f.EscapeStrings)
	setString(&cfg.FieldNameQuote, f.FieldNameQuote)
	setBool(&cfg.Recursive, f.Recursive)
	if f.IndentWidth != nil {
		cfg.IndentWidth = *f.IndentWidth
	}
	if f.Color != nil {
		mode, err := ParseColorMode(*f.Color)
		if err != nil {
			return apis.Config{}, err
		}
		cfg.Color = mode
	}
	if n := f.Naming; n != nil {
		setBool(&cfg.Naming.TypeArgs, n.TypeArgs)
		if n.MaxUnwrap != nil {
			cfg.Naming.MaxUnwrap = *n.MaxUnwrap
		}
	}

	if err := Validate(cfg); err != nil {
		return apis.Config{}, err
	}
	return cfg, nil
}

// LoadOption configures Load and Parse.
type LoadOption func(*loadOptions)

type loadOptions struct {
	log *slog.Logger
}

// WithLogger sets the logger used to report loading. Defaults to slog.Default().
func WithLogger(log *slog.Logger) LoadOption {
	return func(o *loadOptions) {
		if log != nil {
			o.log = log
		}
	}
}

// Load reads a style configuration file, choosing the decoder by extension
// (.yaml/.yml, .toml, .json).
func Load(path string, opts ...LoadOption) (apis.Config, error) {
	if path == "" {
		return apis.Config{}, ErrEmptyPath
	}
	format, err := FormatOf(path)
	if err != nil {
		return apis.Config{}, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return apis.Config{}, fmt.Errorf("tostr(config): read %s: %w", path, err)
	}
	o := newLoadOptions(opts)
	o.log.Debug("loading style config", slog.String("path", path), slog.String("format", string(format)))
	return parse(data, format, o)
}

// Parse decodes an in-memory style configuration document.
func Parse(data []byte, format Format, opts ...LoadOption) (apis.Config, error) {
	return parse(data, format, newLoadOptions(opts))
}

func parse(data []byte, format Format, o loadOptions) (apis.Config, error) {
	var f File
	switch format {
	case FormatYAML:
		if err := yaml.Unmarshal(data, &f); err != nil {
			return apis.Config{}, fmt.Errorf("tostr(config): decode yaml: %w", err)
		}
	case FormatTOML:
		if _, err := toml.Decode(string(data), &f); err != nil {
			return apis.Config{}, fmt.Errorf("tostr(config): decode toml: %w", err)
		}
	case FormatJSON:
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&f); err != nil {
			return apis.Config{}, fmt.Errorf("tostr(config): decode json: %w", err)
		}
	default:
		return apis.Config{}, &ParseError{Type: "Format", Value: string(format)}
	}

	cfg, err := f.Config()
	if err != nil {
		o.log.Warn("rejected style config", slog.String("preset", f.Preset), slog.Any("error", err))
		return apis.Config{}, err
	}
	o.log.Debug("resolved style config", slog.String("preset", f.Preset))
	return cfg, nil
}

func newLoadOptions(opts []LoadOption) loadOptions {
	o := loadOptions{log: slog.Default()}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

func setBool(dst *bool, src *bool) {
	if src != nil {
		*dst = *src
	}
}

func setString(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}

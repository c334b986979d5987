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
	"strings"

	"dirpx.dev/tostr/apis"
)

// Preset names a built-in configuration.
type Preset string

const (
	// PresetDefault selects DefaultConfig.
	PresetDefault Preset = "default"
	// PresetShortPrefix selects ShortPrefixConfig.
	PresetShortPrefix Preset = "short-prefix"
	// PresetNoFieldNames selects NoFieldNamesConfig.
	PresetNoFieldNames Preset = "no-field-names"
	// PresetSimple selects SimpleConfig.
	PresetSimple Preset = "simple"
	// PresetNoClassName selects NoClassNameConfig.
	PresetNoClassName Preset = "no-class-name"
	// PresetMultiLine selects MultiLineConfig.
	PresetMultiLine Preset = "multi-line"
	// PresetRecursive selects RecursiveConfig.
	PresetRecursive Preset = "recursive"
	// PresetMultiLineRecursive selects MultiLineRecursiveConfig.
	PresetMultiLineRecursive Preset = "multi-line-recursive"
	// PresetJSON selects JSONConfig.
	PresetJSON Preset = "json"
)

var presets = map[Preset]func() apis.Config{
	PresetDefault:            DefaultConfig,
	PresetShortPrefix:        ShortPrefixConfig,
	PresetNoFieldNames:       NoFieldNamesConfig,
	PresetSimple:             SimpleConfig,
	PresetNoClassName:        NoClassNameConfig,
	PresetMultiLine:          MultiLineConfig,
	PresetRecursive:          RecursiveConfig,
	PresetMultiLineRecursive: MultiLineRecursiveConfig,
	PresetJSON:               JSONConfig,
}

// Presets returns every known preset name in documentation order.
func Presets() []Preset {
	return []Preset{
		PresetDefault, PresetShortPrefix, PresetNoFieldNames, PresetSimple,
		PresetNoClassName, PresetMultiLine, PresetRecursive,
		PresetMultiLineRecursive, PresetJSON,
	}
}

// ParsePreset converts s (case-insensitive, "_" accepted for "-") into a Preset.
// The empty string selects PresetDefault.
func ParsePreset(s string) (Preset, error) {
	norm := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "_", "-")
	if norm == "" {
		return PresetDefault, nil
	}
	p := Preset(norm)
	if _, ok := presets[p]; !ok {
		return "", &ParseError{Type: "Preset", Value: s}
	}
	return p, nil
}

// PresetConfig returns the configuration of the named preset.
func PresetConfig(name string) (apis.Config, error) {
	p, err := ParsePreset(name)
	if err != nil {
		return apis.Config{}, err
	}
	return presets[p](), nil
}

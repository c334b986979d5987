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

package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dirpx.dev/tostr/apis"
	"dirpx.dev/tostr/config"
)

func TestPresets_AllResolveAndValidate(t *testing.T) {
	for _, p := range config.Presets() {
		t.Run(string(p), func(t *testing.T) {
			cfg, err := config.PresetConfig(string(p))
			require.NoError(t, err)
			assert.NoError(t, config.Validate(cfg))
		})
	}
}

func TestPresets_Shape(t *testing.T) {
	simple := config.SimpleConfig()
	assert.False(t, simple.UseClassName)
	assert.False(t, simple.UseFieldNames)
	assert.Empty(t, simple.ContentStart)
	assert.Empty(t, simple.StringQuote)

	short := config.ShortPrefixConfig()
	assert.True(t, short.UseShortClassName)
	assert.False(t, short.UseIdentityTag)

	ml := config.MultiLineConfig()
	assert.Equal(t, config.DefaultIndentWidth, ml.IndentWidth)
	assert.False(t, ml.FieldSeparatorAtStart)
	assert.Empty(t, ml.FieldSeparator, "each field is separated by its line break alone")
	assert.Equal(t, ",", config.MultiLineRecursiveConfig().FieldSeparator)

	js := config.JSONConfig()
	assert.True(t, js.EscapeStrings)
	assert.Equal(t, "null", js.NullText)
	assert.Equal(t, `"`, js.FieldNameQuote)
}

func TestParsePreset(t *testing.T) {
	cases := []struct {
		in   string
		want config.Preset
	}{
		{"", config.PresetDefault},
		{"simple", config.PresetSimple},
		{"Short_Prefix", config.PresetShortPrefix},
		{"  JSON ", config.PresetJSON},
		{"multi-line-recursive", config.PresetMultiLineRecursive},
	}
	for _, tc := range cases {
		got, err := config.ParsePreset(tc.in)
		require.NoError(t, err, tc.in)
		assert.Equal(t, tc.want, got, tc.in)
	}

	_, err := config.ParsePreset("fancy")
	var pe *config.ParseError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, "Preset", pe.Type)
	assert.Equal(t, "fancy", pe.Value)
	assert.Equal(t, `tostr(config): invalid Preset value: "fancy"`, err.Error())
}

func TestParseColorMode(t *testing.T) {
	cases := map[string]apis.ColorMode{
		"":       apis.ColorNever,
		"never":  apis.ColorNever,
		"Auto":   apis.ColorAuto,
		"always": apis.ColorAlways,
		"on":     apis.ColorAlways,
	}
	for in, want := range cases {
		got, err := config.ParseColorMode(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := config.ParseColorMode("rainbow")
	assert.Error(t, err)
}

func TestResolveColor(t *testing.T) {
	assert.True(t, config.ResolveColor(apis.ColorAlways))
	assert.False(t, config.ResolveColor(apis.ColorNever))
}

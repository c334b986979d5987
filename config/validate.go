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
	"strconv"

	"go.uber.org/multierr"

	"dirpx.dev/tostr/apis"
)

// MaxIndentWidth bounds IndentWidth.
const MaxIndentWidth = 16

// Validate checks cfg for contradictory or out-of-range settings and reports
// every violation at once.
func Validate(cfg apis.Config) error {
	var err error
	if cfg.IndentWidth < 0 || cfg.IndentWidth > MaxIndentWidth {
		err = multierr.Append(err, &ValidationError{
			Field:  "IndentWidth",
			Reason: "must be within [0, " + strconv.Itoa(MaxIndentWidth) + "], got " + strconv.Itoa(cfg.IndentWidth),
		})
	}
	if cfg.Naming.MaxUnwrap < 0 {
		err = multierr.Append(err, &ValidationError{
			Field:  "Naming.MaxUnwrap",
			Reason: "must not be negative, got " + strconv.Itoa(cfg.Naming.MaxUnwrap),
		})
	}
	if cfg.Color > apis.ColorAlways {
		err = multierr.Append(err, &ValidationError{
			Field:  "Color",
			Reason: "unknown mode " + strconv.Itoa(int(cfg.Color)),
		})
	}
	if cfg.EscapeStrings && cfg.StringQuote == "" {
		err = multierr.Append(err, &ValidationError{
			Field:  "StringQuote",
			Reason: "must not be empty when EscapeStrings is set",
		})
	}
	if cfg.UseShortClassName && !cfg.UseClassName {
		err = multierr.Append(err, &ValidationError{
			Field:  "UseShortClassName",
			Reason: "has no effect without UseClassName",
		})
	}
	if (cfg.ContentStart == "") != (cfg.ContentEnd == "") {
		err = multierr.Append(err, &ValidationError{
			Field:  "ContentStart",
			Reason: "ContentStart and ContentEnd must both be set or both be empty",
		})
	}
	return err
}

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

import "strconv"

// ParseError is returned when a textual configuration value (a preset name,
// a color mode, a file format) does not name a known constant.
//
// Type identifies the logical type being parsed (for example, "Preset"), and
// Value contains the exact string that could not be interpreted.
type ParseError struct {
	// Type is the logical name of the type being parsed (for example, "Preset").
	Type string

	// Value is the invalid textual representation that was provided.
	Value string
}

// Error implements the error interface for ParseError.
//
// The error message format is:
//
//	"tostr(config): invalid {Type} value: {Value}"
func (e *ParseError) Error() string {
	return "tostr(config): invalid " + e.Type + " value: " + strconv.Quote(e.Value)
}

// ValidationError is returned when a Config violates a constraint.
// Validate reports one ValidationError per violated field, combined with
// go.uber.org/multierr.
type ValidationError struct {
	// Field is the name of the offending Config field.
	Field string

	// Reason describes the violated constraint.
	Reason string
}

// Error implements the error interface for ValidationError.
//
// The error message format is:
//
//	"tostr(config): invalid {Field}: {Reason}"
func (e *ValidationError) Error() string {
	return "tostr(config): invalid " + e.Field + ": " + e.Reason
}

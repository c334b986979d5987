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
	"os"
	"strings"

	"github.com/mattn/go-isatty"

	"dirpx.dev/tostr/apis"
)

// ParseColorMode converts "never", "auto" or "always" (case-insensitive)
// into an apis.ColorMode. The empty string selects ColorNever.
func ParseColorMode(s string) (apis.ColorMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "never", "off", "false":
		return apis.ColorNever, nil
	case "auto":
		return apis.ColorAuto, nil
	case "always", "on", "true":
		return apis.ColorAlways, nil
	default:
		return apis.ColorNever, &ParseError{Type: "ColorMode", Value: s}
	}
}

// ResolveColor decides whether output painted under mode should carry
// color codes. ColorAuto colors only when stdout is a terminal.
func ResolveColor(mode apis.ColorMode) bool {
	switch mode {
	case apis.ColorAlways:
		return true
	case apis.ColorAuto:
		fd := os.Stdout.Fd()
		return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
	default:
		return false
	}
}

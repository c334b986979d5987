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

package style

import "github.com/fatih/color"

// palette paints class and field names for terminal output.
// A nil palette leaves text untouched.
type palette struct {
	className *color.Color
	fieldName *color.Color
}

func newPalette() *palette {
	p := &palette{
		className: color.New(color.FgCyan, color.Bold),
		fieldName: color.New(color.FgYellow),
	}
	// The color decision was already made from the configured mode;
	// do not let fatih/color second-guess it from its own globals.
	p.className.EnableColor()
	p.fieldName.EnableColor()
	return p
}

func (p *palette) class(s string) string {
	if p == nil || s == "" {
		return s
	}
	return p.className.Sprint(s)
}

func (p *palette) field(s string) string {
	if p == nil || s == "" {
		return s
	}
	return p.fieldName.Sprint(s)
}

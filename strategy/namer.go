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

package strategy

import (
	"reflect"
	"strings"

	"dirpx.dev/tostr/apis"
)

// NewNamerStrategy returns the strategy that lets values name themselves
// through apis.Namer. It heads the default chain.
func NewNamerStrategy() apis.Strategy {
	return selfNamed{}
}

// selfNamed asks the value for its name. Names are per instance, so it has
// nothing to say about bare types.
type selfNamed struct{}

// Ensure selfNamed implements apis.Strategy.
var _ apis.Strategy = selfNamed{}

// TryResolve returns v's EntityName, cut to its last dotted segment for
// short names. Values without a name fall through.
func (selfNamed) TryResolve(v any, cfg apis.NamingConfig) (string, bool) {
	n, ok := v.(apis.Namer)
	if !ok {
		return "", false
	}
	name := n.EntityName()
	if name == "" {
		return "", false
	}
	if cfg.Short {
		name = name[strings.LastIndexByte(name, '.')+1:]
	}
	return name, true
}

func (selfNamed) TryResolveType(reflect.Type, apis.NamingConfig) (string, bool) {
	return "", false
}

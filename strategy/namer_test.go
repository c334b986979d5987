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

package strategy_test

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"

	"dirpx.dev/tostr"
	"dirpx.dev/tostr/apis"
	"dirpx.dev/tostr/config"
	"dirpx.dev/tostr/strategy"
)

type invoice struct{ Total int }

func (*invoice) EntityName() string { return "billing.Invoice" }

type unnamed struct{}

func (unnamed) EntityName() string { return "" }

func TestNamerStrategy_TryResolve(t *testing.T) {
	s := strategy.NewNamerStrategy()

	name, ok := s.TryResolve(&invoice{}, apis.NamingConfig{})
	assert.True(t, ok)
	assert.Equal(t, "billing.Invoice", name)

	name, ok = s.TryResolve(&invoice{}, apis.NamingConfig{Short: true})
	assert.True(t, ok)
	assert.Equal(t, "Invoice", name)

	for _, v := range []any{nil, invoice{}, unnamed{}, 42} {
		_, ok = s.TryResolve(v, apis.NamingConfig{})
		assert.False(t, ok, "%T", v)
	}

	_, ok = s.TryResolveType(reflect.TypeOf(&invoice{}), apis.NamingConfig{})
	assert.False(t, ok, "a bare type cannot name itself")
}

func TestNamerStrategy_InRendering(t *testing.T) {
	st := tostr.NewStyle(config.NewConfig(config.WithIdentityTag(false)))

	assert.Equal(t, "billing.Invoice[Total=3]", tostr.OfStyle(&invoice{Total: 3}, st))
	assert.Equal(t, "strategy_test.invoice[Total=3]", tostr.OfStyle(invoice{Total: 3}, st),
		"only the pointer carries the name")
}

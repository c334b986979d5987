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
	"github.com/stretchr/testify/require"

	"dirpx.dev/tostr/apis"
	"dirpx.dev/tostr/registry"
	"dirpx.dev/tostr/strategy"
)

type order struct{}

func TestRegistryStrategy(t *testing.T) {
	reg := registry.New()
	require.NoError(t, reg.Register(reflect.TypeOf(order{}), "shop.Order"))
	s := strategy.NewRegistryStrategy(reg)

	cases := []struct {
		name string
		val  any
		cfg  apis.NamingConfig
		want string
	}{
		{"value", order{}, apis.NamingConfig{}, "shop.Order"},
		{"pointer", &order{}, apis.NamingConfig{}, "shop.Order"},
		{"short", order{}, apis.NamingConfig{Short: true}, "Order"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := s.TryResolve(tc.val, tc.cfg)
			assert.True(t, ok)
			assert.Equal(t, tc.want, got)
		})
	}

	got, ok := s.TryResolveType(reflect.TypeOf(order{}), apis.NamingConfig{})
	assert.True(t, ok)
	assert.Equal(t, "shop.Order", got)
}

func TestRegistryStrategy_Misses(t *testing.T) {
	reg := registry.New()
	require.NoError(t, reg.Register(reflect.TypeOf(order{}), "shop.Order"))
	s := strategy.NewRegistryStrategy(reg)

	_, ok := s.TryResolve([]order{}, apis.NamingConfig{})
	assert.False(t, ok, "containers are composed by the resolver")
	_, ok = s.TryResolve(42, apis.NamingConfig{})
	assert.False(t, ok)
	_, ok = s.TryResolve(nil, apis.NamingConfig{})
	assert.False(t, ok)

	_, ok = strategy.NewRegistryStrategy(nil).TryResolveType(reflect.TypeOf(order{}), apis.NamingConfig{})
	assert.False(t, ok)
}

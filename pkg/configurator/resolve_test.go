// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package configurator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	mcerrors "github.com/NVIDIA/multiconf/pkg/errors"
)

func TestSplitKeyPath(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{in: "", want: []string{}},
		{in: "a", want: []string{"a"}},
		{in: "a.b.c", want: []string{"a", "b", "c"}},
		{in: "a.b[0].c", want: []string{"a", "b", "0", "c"}},
		{in: "a[1][2]", want: []string{"a", "1", "2"}},
		{in: ".a..b.", want: []string{"a", "b"}},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, splitKeyPath(tt.in))
		})
	}
}

func TestLookupKeyPath(t *testing.T) {
	doc := map[string]any{
		"db": map[string]any{
			"hosts": []any{"a", map[string]any{"name": "b"}},
			"port":  5432,
		},
	}

	got, err := lookupKeyPath(doc, "")
	require.NoError(t, err)
	assert.Equal(t, doc, got)

	got, err = lookupKeyPath(doc, "db.port")
	require.NoError(t, err)
	assert.Equal(t, 5432, got)

	got, err = lookupKeyPath(doc, "db.hosts[1].name")
	require.NoError(t, err)
	assert.Equal(t, "b", got)

	missing := []string{"nope", "db.hosts[2]", "db.hosts[-1]", "db.hosts.x", "db.port.deeper"}
	for _, key := range missing {
		t.Run(key, func(t *testing.T) {
			_, err := lookupKeyPath(doc, key)
			require.Error(t, err)
			assert.True(t, mcerrors.IsCode(err, mcerrors.ErrCodeNotFound))
			assert.Contains(t, err.Error(), key)
		})
	}
}

func TestLookupKeyPath_NonStringKeys(t *testing.T) {
	doc := map[string]any{
		"ports": map[any]any{8080: "web", 9090: map[any]any{"name": "admin"}},
	}

	got, err := lookupKeyPath(doc, "ports.8080")
	require.NoError(t, err)
	assert.Equal(t, "web", got)

	got, err = lookupKeyPath(doc, "ports.9090.name")
	require.NoError(t, err)
	assert.Equal(t, "admin", got)

	_, err = lookupKeyPath(doc, "ports.7070")
	assert.True(t, mcerrors.IsCode(err, mcerrors.ErrCodeNotFound))
}

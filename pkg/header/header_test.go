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

package header

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKind_IsValid(t *testing.T) {
	assert.True(t, KindConfiguration.IsValid())
	assert.True(t, KindConfiguratorTypes.IsValid())
	assert.False(t, Kind("Recipe").IsValid())
	assert.False(t, Kind("").IsValid())
}

func TestNew(t *testing.T) {
	h := New()

	assert.Equal(t, APIVersion, h.APIVersion)
	assert.Empty(t, h.Kind)
	assert.NotContains(t, h.Metadata, "version")

	_, err := time.Parse(time.RFC3339, h.Metadata["timestamp"])
	require.NoError(t, err)
}

func TestNew_Options(t *testing.T) {
	h := New(
		WithKind(KindConfiguration),
		WithAPIVersion("example.com/v2"),
		WithVersion("v1.2.3"),
		WithMetadata("source", "/etc/app/conf.yaml"),
	)

	assert.Equal(t, KindConfiguration, h.Kind)
	assert.Equal(t, "example.com/v2", h.APIVersion)
	assert.Equal(t, "v1.2.3", h.Metadata["version"])
	assert.Equal(t, "/etc/app/conf.yaml", h.Metadata["source"])
	assert.Contains(t, h.Metadata, "timestamp")
}

func TestWithVersion_EmptySkipped(t *testing.T) {
	h := New(WithVersion(""))
	assert.NotContains(t, h.Metadata, "version")
}

func TestNew_IndependentMetadata(t *testing.T) {
	a := New(WithMetadata("k", "a"))
	b := New()
	assert.NotContains(t, b.Metadata, "k")
	assert.Equal(t, "a", a.Metadata["k"])
}

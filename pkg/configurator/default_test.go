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

func TestHolder(t *testing.T) {
	var h Holder

	assert.False(t, h.Has())
	_, err := h.Get()
	require.Error(t, err)
	assert.True(t, mcerrors.IsCode(err, mcerrors.ErrCodeUninitializedDefault))

	x := &recordingConfigurator{}
	h.Set(x)
	assert.True(t, h.Has())
	got, err := h.Get()
	require.NoError(t, err)
	assert.Same(t, x, got)

	y := &recordingConfigurator{}
	h.Set(y)
	got, err = h.Get()
	require.NoError(t, err)
	assert.Same(t, y, got)

	h.Reset()
	assert.False(t, h.Has())
}

func TestHolder_SetNilEmpties(t *testing.T) {
	var h Holder
	h.Set(&recordingConfigurator{})
	h.Set(nil)
	assert.False(t, h.Has())
}

func TestProcessDefault(t *testing.T) {
	ResetDefault()
	t.Cleanup(ResetDefault)

	assert.False(t, HasDefault())
	_, err := GetDefault()
	assert.True(t, mcerrors.IsCode(err, mcerrors.ErrCodeUninitializedDefault))

	x := &recordingConfigurator{}
	SetDefault(x)
	assert.True(t, HasDefault())
	got, err := GetDefault()
	require.NoError(t, err)
	assert.Same(t, x, got)

	y := &recordingConfigurator{}
	SetDefault(y)
	got, err = DefaultHolder().Get()
	require.NoError(t, err)
	assert.Same(t, y, got)
}

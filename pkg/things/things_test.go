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

package things

import (
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestThings_AddFind(t *testing.T) {
	c := New[int]("numbers")
	assert.Equal(t, "numbers", c.Name())
	assert.Equal(t, 0, c.Len())

	c.Add("one", 1)
	c.Add("two", 2)

	v, ok := c.Find("two")
	require.True(t, ok)
	assert.Equal(t, 2, v)

	_, ok = c.Find("three")
	assert.False(t, ok)
	assert.True(t, c.Has("one"))
	assert.False(t, c.Has("three"))
}

func TestThings_PreservesOrder(t *testing.T) {
	c := New[string]("letters")
	for _, name := range []string{"c", "a", "b"} {
		c.Add(name, name+name)
	}

	assert.Equal(t, []string{"c", "a", "b"}, c.Names())
	assert.Equal(t, []string{"cc", "aa", "bb"}, c.Items())
}

func TestThings_ReplaceKeepsPosition(t *testing.T) {
	c := New[int]("numbers")
	c.Add("a", 1)
	c.Add("b", 2)
	c.Add("a", 10)

	assert.Equal(t, []string{"a", "b"}, c.Names())
	assert.Equal(t, []int{10, 2}, c.Items())
	assert.Equal(t, 2, c.Len())
}

func TestThings_GeneratedName(t *testing.T) {
	c := New[int]("numbers")
	name := c.Add("", 7)

	_, err := uuid.Parse(name)
	require.NoError(t, err)
	v, ok := c.Find(name)
	require.True(t, ok)
	assert.Equal(t, 7, v)
}

func TestThings_NamesIsCopy(t *testing.T) {
	c := New[int]("numbers")
	c.Add("a", 1)

	names := c.Names()
	names[0] = "mutated"
	assert.Equal(t, []string{"a"}, c.Names())
}

func TestThings_ConcurrentAdd(t *testing.T) {
	c := New[int]("numbers")

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			c.Add("", i)
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 50, c.Len())
}

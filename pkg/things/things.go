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

// Package things provides an ordered, name-keyed collection.
//
// Entries keep their insertion order and are never removed implicitly;
// adding an existing name replaces the entry in place.
package things

import (
	"sync"

	"github.com/google/uuid"
)

// Things is a named collection of T with thread-safe operations.
type Things[T any] struct {
	name  string
	order []string
	items map[string]T

	mu sync.RWMutex
}

// New creates an empty collection called name.
func New[T any](name string) *Things[T] {
	return &Things[T]{
		name:  name,
		items: make(map[string]T),
	}
}

// Name returns the collection name.
func (t *Things[T]) Name() string {
	return t.name
}

// Add stores item under name and returns the name used.
// An empty name is replaced by a generated one.
func (t *Things[T]) Add(name string, item T) string {
	if name == "" {
		name = uuid.NewString()
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	if _, exists := t.items[name]; !exists {
		t.order = append(t.order, name)
	}
	t.items[name] = item
	return name
}

// Find returns the item stored under name.
func (t *Things[T]) Find(name string) (T, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	item, ok := t.items[name]
	return item, ok
}

// Has reports whether name is present.
func (t *Things[T]) Has(name string) bool {
	_, ok := t.Find(name)
	return ok
}

// Names returns entry names in insertion order.
func (t *Things[T]) Names() []string {
	t.mu.RLock()
	defer t.mu.RUnlock()

	names := make([]string, len(t.order))
	copy(names, t.order)
	return names
}

// Items returns entries in insertion order.
func (t *Things[T]) Items() []T {
	t.mu.RLock()
	defer t.mu.RUnlock()

	items := make([]T, 0, len(t.order))
	for _, name := range t.order {
		items = append(items, t.items[name])
	}
	return items
}

// Len returns the number of entries.
func (t *Things[T]) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.order)
}

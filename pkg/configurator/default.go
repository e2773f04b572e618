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
	"sync"

	mcerrors "github.com/NVIDIA/multiconf/pkg/errors"
)

// Holder is a single-slot cell holding at most one configurator.
// The zero value is empty and ready to use.
type Holder struct {
	configurator Configurator

	mu sync.RWMutex
}

// Set stores c, replacing any previous value. Setting nil empties the holder.
func (h *Holder) Set(c Configurator) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.configurator = c
}

// Get returns the stored configurator, failing with UNINITIALIZED_DEFAULT
// when nothing has been set.
func (h *Holder) Get() (Configurator, error) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	if h.configurator == nil {
		return nil, mcerrors.New(mcerrors.ErrCodeUninitializedDefault,
			"default configurator has not been set")
	}
	return h.configurator, nil
}

// Has reports whether a configurator is stored.
func (h *Holder) Has() bool {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.configurator != nil
}

// Reset empties the holder.
func (h *Holder) Reset() {
	h.Set(nil)
}

// defaultHolder is the process-wide default. It starts empty, is filled by
// application startup code, and is only emptied by ResetDefault.
var defaultHolder Holder

// DefaultHolder returns the process-wide holder, for code that prefers to
// receive the holder explicitly.
func DefaultHolder() *Holder {
	return &defaultHolder
}

// SetDefault stores c as the process-wide default configurator.
func SetDefault(c Configurator) {
	defaultHolder.Set(c)
}

// GetDefault returns the process-wide default configurator.
func GetDefault() (Configurator, error) {
	return defaultHolder.Get()
}

// HasDefault reports whether a process-wide default configurator is set.
func HasDefault() bool {
	return defaultHolder.Has()
}

// ResetDefault empties the process-wide default. Intended for tests and
// for orderly shutdown.
func ResetDefault() {
	defaultHolder.Reset()
}

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

// Package envvar reads named environment variables from either the process
// environment or an explicit mapping supplied by the caller.
package envvar

import (
	"os"
	"strings"
)

// Environ is an explicit set of environment variables.
// A nil Environ means the process environment.
type Environ map[string]string

// Lookup returns the value of name and whether it is present.
func (e Environ) Lookup(name string) (string, bool) {
	if e == nil {
		return os.LookupEnv(name)
	}
	v, ok := e[name]
	return v, ok
}

// FromOS snapshots the current process environment.
func FromOS() Environ {
	env := make(Environ)
	for _, kv := range os.Environ() {
		name, value, ok := strings.Cut(kv, "=")
		if !ok {
			continue
		}
		env[name] = value
	}
	return env
}

// Envvar is the state of one environment variable at the time it was read.
type Envvar struct {
	// Name is the variable name.
	Name string
	// IsSet is true when the variable is present, even if empty.
	IsSet bool
	// Value is the variable value; empty when unset.
	Value string
}

// New reads name from environ.
func New(name string, environ Environ) *Envvar {
	value, ok := environ.Lookup(name)
	return &Envvar{
		Name:  name,
		IsSet: ok,
		Value: value,
	}
}

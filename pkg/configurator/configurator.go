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
	"context"
	"sort"

	"github.com/NVIDIA/multiconf/pkg/specification"
)

// Configurator loads a configuration document and resolves values from it.
type Configurator interface {
	// Substitute merges substitutions into the placeholder table used when
	// the document is loaded. Later calls win on conflicting names.
	Substitute(substitutions map[string]string)

	// Load reads the document and returns it with placeholders expanded.
	Load(ctx context.Context) (map[string]any, error)

	// Resolve loads the document and returns the value at a dotted key path
	// such as "database.hosts[0]".
	Resolve(ctx context.Context, keyPath string) (any, error)
}

// Type identifies a configurator variant.
type Type string

// Recognized configurator types.
const (
	// TypeYAML reads a YAML or JSON file.
	TypeYAML Type = "dls_multiconf_lib.dls_multiconf_configurators.yaml"
)

// String returns the string representation of the Type.
func (t Type) String() string {
	return string(t)
}

// Constructor builds a configurator from the full specification.
type Constructor func(spec specification.Specification) (Configurator, error)

// builtinConstructors returns the constructor table every registry starts from.
func builtinConstructors() map[Type]Constructor {
	return map[Type]Constructor{
		TypeYAML: NewYAML,
	}
}

// Types returns the built-in configurator types, sorted.
func Types() []Type {
	return sortedTypes(builtinConstructors())
}

func sortedTypes(constructors map[Type]Constructor) []Type {
	types := make([]Type, 0, len(constructors))
	for t := range constructors {
		types = append(types, t)
	}
	sort.Slice(types, func(i, j int) bool { return types[i] < types[j] })
	return types
}

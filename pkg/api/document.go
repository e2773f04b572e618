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

package api

import (
	"github.com/NVIDIA/multiconf/pkg/configurator"
	"github.com/NVIDIA/multiconf/pkg/header"
)

// ConfigurationDocument wraps a loaded configuration in a header.
type ConfigurationDocument struct {
	header.Header `yaml:",inline"`

	Configuration map[string]any `json:"configuration" yaml:"configuration"`
}

// NewConfigurationDocument stamps doc with a Configuration header. The file
// a YAML configurator reads from is recorded as the "source" metadata.
func NewConfigurationDocument(c configurator.Configurator, doc map[string]any, version string) *ConfigurationDocument {
	opts := []header.Option{
		header.WithKind(header.KindConfiguration),
		header.WithVersion(version),
	}
	if y, ok := c.(*configurator.YAML); ok {
		opts = append(opts, header.WithMetadata("source", y.Filename()))
	}

	return &ConfigurationDocument{
		Header:        header.New(opts...),
		Configuration: doc,
	}
}

// ValueDocument is one resolved value.
type ValueDocument struct {
	Key   string `json:"key" yaml:"key"`
	Value any    `json:"value" yaml:"value"`
}

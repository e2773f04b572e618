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

// Package configurator builds configurators: objects that load a configuration
// document and resolve values from it after placeholder substitution.
//
// # Variants
//
// Each configurator variant is identified by a Type tag and built by a
// Constructor. The built-in table currently holds one variant, TypeYAML,
// which reads a YAML (or JSON) file. New variants are added with
// WithConstructor without touching callers:
//
//	configurators := configurator.NewConfigurators(
//	    configurator.WithConstructor("example.configurators.memory", newMemory),
//	)
//
// # Building
//
// BuildObject takes a Specification whose "type" key selects the variant and
// passes the whole Specification to the variant's constructor:
//
//	cfg, err := configurators.BuildObject(specification.Specification{
//	    "type": string(configurator.TypeYAML),
//	    "type_specific_tbd": map[string]any{"filename": "/etc/app/conf.yaml"},
//	})
//
// BuildObjectFromEnvironment does the same for the file named by the
// ECHOLOCATOR_CONFIGFILE variable and then substitutes configurator_directory
// with the directory holding that file, so the document can refer to sibling
// files as ${configurator_directory}/other.yaml.
//
// # Process default
//
// Applications typically build one configurator at startup and publish it:
//
//	cfg, err := configurator.NewConfigurators().BuildObjectFromEnvironment(nil)
//	if err != nil {
//	    return err
//	}
//	configurator.SetDefault(cfg)
//
// Later readers call GetDefault, which fails with UNINITIALIZED_DEFAULT until
// SetDefault has run. Tests call ResetDefault to start from a clean slate.
//
// # Errors
//
// All failures are StructuredErrors from pkg/errors: NOT_FOUND,
// MISSING_REQUIRED_FIELD, INSTANTIATION_FAILURE, ENVIRONMENT_MISCONFIGURATION
// and UNINITIALIZED_DEFAULT. Nothing is retried.
package configurator

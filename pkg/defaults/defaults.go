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

package defaults

import "time"

// Environment variables.
const (
	// ConfigFileEnv names the YAML configuration file used to bootstrap the
	// default configurator.
	ConfigFileEnv = "ECHOLOCATOR_CONFIGFILE"
)

// Specification keys.
const (
	// TypeKey selects the configurator variant.
	TypeKey = "type"

	// TypeSpecificKey holds the variant-specific section of a specification.
	TypeSpecificKey = "type_specific_tbd"

	// FilenameKey is the file path inside the variant-specific section.
	FilenameKey = "filename"
)

// Substitution keys.
const (
	// ConfiguratorDirectoryKey is the placeholder bound to the directory
	// holding the configuration file.
	ConfiguratorDirectoryKey = "configurator_directory"
)

// Timeouts.
const (
	// LoadTimeout bounds reading and expanding one configuration file from the CLI.
	LoadTimeout = 10 * time.Second
)

// Server timeouts for the configuration HTTP server.
const (
	// ServerReadTimeout is the maximum duration for reading a request.
	ServerReadTimeout = 10 * time.Second

	// ServerReadHeaderTimeout prevents slow header attacks.
	ServerReadHeaderTimeout = 5 * time.Second

	// ServerWriteTimeout is the maximum duration for writing a response.
	ServerWriteTimeout = 30 * time.Second

	// ServerIdleTimeout is the maximum duration to wait for the next request.
	ServerIdleTimeout = 120 * time.Second

	// ServerShutdownTimeout is the maximum duration for graceful shutdown.
	ServerShutdownTimeout = 30 * time.Second

	// ServerReadinessTimeout bounds one readiness check on GET /ready.
	ServerReadinessTimeout = 3 * time.Second
)

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
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/NVIDIA/multiconf/pkg/defaults"
	"github.com/NVIDIA/multiconf/pkg/envvar"
	mcerrors "github.com/NVIDIA/multiconf/pkg/errors"
	"github.com/NVIDIA/multiconf/pkg/specification"
	"github.com/NVIDIA/multiconf/pkg/things"
)

const defaultRegistryName = "configurators"

// Configurators resolves configurator types to constructors, builds
// configurators from specifications, and keeps a named collection of
// configurators the application chooses to register.
type Configurators struct {
	*things.Things[Configurator]

	constructors map[Type]Constructor
	variable     string
	stat         func(string) (os.FileInfo, error)
}

// Option is a functional option for configuring Configurators.
type Option func(*settings)

type settings struct {
	name         string
	constructors map[Type]Constructor
	variable     string
}

// WithName sets the registry name used in diagnostics.
func WithName(name string) Option {
	return func(s *settings) {
		s.name = name
	}
}

// WithConstructor adds a variant, or replaces the constructor of an existing one.
func WithConstructor(t Type, c Constructor) Option {
	return func(s *settings) {
		s.constructors[t] = c
	}
}

// WithVariable overrides the environment variable naming the config file.
func WithVariable(name string) Option {
	return func(s *settings) {
		s.variable = name
	}
}

// NewConfigurators creates a registry holding the built-in constructors.
func NewConfigurators(opts ...Option) *Configurators {
	s := &settings{
		name:         defaultRegistryName,
		constructors: builtinConstructors(),
		variable:     defaults.ConfigFileEnv,
	}

	for _, opt := range opts {
		opt(s)
	}

	return &Configurators{
		Things:       things.New[Configurator](s.name),
		constructors: s.constructors,
		variable:     s.variable,
		stat:         os.Stat,
	}
}

// Callsign identifies the registry in error messages.
func (c *Configurators) Callsign() string {
	return fmt.Sprintf("Configurators %q", c.Name())
}

// Variable returns the environment variable consulted by BuildObjectFromEnvironment.
func (c *Configurators) Variable() string {
	return c.variable
}

// Types returns the configurator types this registry can build, sorted.
func (c *Configurators) Types() []Type {
	return sortedTypes(c.constructors)
}

// LookupClass returns the constructor registered for t.
// Unknown types fail with NOT_FOUND carrying the identifier.
func (c *Configurators) LookupClass(t Type) (Constructor, error) {
	ctor, ok := c.constructors[t]
	if !ok {
		return nil, mcerrors.NewWithContext(mcerrors.ErrCodeNotFound,
			fmt.Sprintf("unable to get configurator class for type %s", t),
			map[string]any{
				"type": string(t),
			})
	}
	return ctor, nil
}

// BuildObject builds a configurator from spec. The "type" key is required and
// selects the constructor, which receives the whole spec. Constructor errors
// and panics are reported as INSTANTIATION_FAILURE with the original error as
// the cause.
func (c *Configurators) BuildObject(spec specification.Specification) (Configurator, error) {
	typeName, err := specification.RequireString(c.Callsign(), spec, defaults.TypeKey)
	if err != nil {
		recordBuild("", buildResultInvalid, 0)
		return nil, err
	}

	t := Type(typeName)
	ctor, err := c.LookupClass(t)
	if err != nil {
		recordBuild("", buildResultNotFound, 0)
		return nil, err
	}

	start := time.Now()
	cfg, err := construct(ctor, spec)
	elapsed := time.Since(start)
	if err != nil {
		recordBuild(t, buildResultFailure, elapsed)
		slog.Error("configurator instantiation failed", "type", t, "error", err)
		return nil, mcerrors.WrapWithContext(mcerrors.ErrCodeInstantiationFailure,
			fmt.Sprintf("unable to instantiate configurator object from type %s", t),
			err,
			map[string]any{
				"type": string(t),
			})
	}

	recordBuild(t, buildResultSuccess, elapsed)
	slog.Debug("configurator built", "type", t, "registry", c.Name())
	return cfg, nil
}

// construct runs ctor, turning a panic or a nil result into an error.
func construct(ctor Constructor, spec specification.Specification) (cfg Configurator, err error) {
	defer func() {
		if r := recover(); r != nil {
			cfg = nil
			if rerr, ok := r.(error); ok {
				err = fmt.Errorf("constructor panicked: %w", rerr)
				return
			}
			err = fmt.Errorf("constructor panicked: %v", r)
		}
	}()

	cfg, err = ctor(spec)
	if err == nil && cfg == nil {
		err = errors.New("constructor returned no configurator")
	}
	return cfg, err
}

// BuildObjectFromEnvironment builds the YAML configurator for the file named
// by the registry's environment variable, read from environ (nil means the
// process environment). The built configurator has configurator_directory
// substituted with the directory holding the file.
func (c *Configurators) BuildObjectFromEnvironment(environ envvar.Environ) (Configurator, error) {
	configFile := envvar.New(c.variable, environ)
	if !configFile.IsSet {
		return nil, mcerrors.NewWithContext(mcerrors.ErrCodeEnvironmentMisconfiguration,
			fmt.Sprintf("environment variable %s is not set", c.variable),
			map[string]any{
				"variable": c.variable,
			})
	}

	filename := configFile.Value
	if _, err := c.stat(filename); err != nil {
		return nil, mcerrors.WrapWithContext(mcerrors.ErrCodeEnvironmentMisconfiguration,
			fmt.Sprintf("unable to find %s %s", c.variable, filename),
			err,
			map[string]any{
				"variable": c.variable,
				"path":     filename,
			})
	}

	cfg, err := c.BuildObject(specification.Specification{
		defaults.TypeKey: string(TypeYAML),
		defaults.TypeSpecificKey: map[string]any{
			defaults.FilenameKey: filename,
		},
	})
	if err != nil {
		return nil, err
	}

	directory := filepath.Dir(filename)
	cfg.Substitute(map[string]string{
		defaults.ConfiguratorDirectoryKey: directory,
	})

	slog.Info("configurator built from environment",
		"variable", c.variable,
		"path", filename,
		"directory", directory)

	return cfg, nil
}

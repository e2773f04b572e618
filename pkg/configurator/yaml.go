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
	"errors"
	"fmt"
	"log/slog"
	"maps"
	"os"
	"sync"

	"github.com/NVIDIA/multiconf/pkg/defaults"
	mcerrors "github.com/NVIDIA/multiconf/pkg/errors"
	"github.com/NVIDIA/multiconf/pkg/serializer"
	"github.com/NVIDIA/multiconf/pkg/specification"
)

const yamlOwner = "YAML configurator"

// YAML is a configurator backed by a YAML file. JSON files are accepted too,
// detected by extension or content.
type YAML struct {
	filename      string
	substitutions map[string]string
	lookupEnv     func(string) (string, bool)

	mu sync.RWMutex
}

var _ Configurator = (*YAML)(nil)

// NewYAML builds a YAML configurator. spec must carry
// type_specific_tbd.filename. The file is not read until Load.
func NewYAML(spec specification.Specification) (Configurator, error) {
	section, err := specification.RequireSection(yamlOwner, spec, defaults.TypeSpecificKey)
	if err != nil {
		return nil, err
	}

	filename, err := specification.RequireString(yamlOwner, section, defaults.FilenameKey)
	if err != nil {
		return nil, err
	}

	if filename == "" {
		return nil, mcerrors.New(mcerrors.ErrCodeInvalidRequest,
			fmt.Sprintf("%s specification field %q must not be empty", yamlOwner, defaults.FilenameKey))
	}

	return &YAML{
		filename:      filename,
		substitutions: make(map[string]string),
		lookupEnv:     os.LookupEnv,
	}, nil
}

// Filename returns the path of the backing file.
func (y *YAML) Filename() string {
	return y.filename
}

// Callsign identifies the configurator in error messages.
func (y *YAML) Callsign() string {
	return fmt.Sprintf("YAML %q", y.filename)
}

// Substitute merges substitutions into the placeholder table.
func (y *YAML) Substitute(substitutions map[string]string) {
	y.mu.Lock()
	defer y.mu.Unlock()
	maps.Copy(y.substitutions, substitutions)
}

// Substitutions returns a copy of the current placeholder table.
func (y *YAML) Substitutions() map[string]string {
	y.mu.RLock()
	defer y.mu.RUnlock()
	return maps.Clone(y.substitutions)
}

// Load reads the file and expands placeholders in every string value.
// An empty file yields an empty document; a document whose top level is not
// a mapping is rejected. A done ctx fails with TIMEOUT on deadline and
// UNAVAILABLE on cancellation.
func (y *YAML) Load(ctx context.Context) (map[string]any, error) {
	if err := y.checkContext(ctx); err != nil {
		return nil, err
	}

	raw, err := serializer.FromFile[any](y.filename)
	if err != nil {
		return nil, mcerrors.WrapWithContext(mcerrors.ErrCodeInternal,
			fmt.Sprintf("unable to read configuration file %s", y.filename),
			err,
			map[string]any{
				"path": y.filename,
			})
	}

	if err := y.checkContext(ctx); err != nil {
		return nil, err
	}

	exp := &expander{
		substitutions: y.Substitutions(),
		lookupEnv:     y.lookupEnv,
	}

	var doc map[string]any
	switch v := exp.expandValue(*raw).(type) {
	case nil:
		doc = map[string]any{}
	case map[string]any:
		doc = v
	default:
		return nil, mcerrors.NewWithContext(mcerrors.ErrCodeInvalidRequest,
			fmt.Sprintf("configuration file %s must contain a mapping, got %T", y.filename, v),
			map[string]any{
				"path": y.filename,
			})
	}

	slog.Debug("configuration loaded", "path", y.filename, "keys", len(doc))
	return doc, nil
}

func (y *YAML) checkContext(ctx context.Context) error {
	err := ctx.Err()
	if err == nil {
		return nil
	}

	code := mcerrors.ErrCodeUnavailable
	if errors.Is(err, context.DeadlineExceeded) {
		code = mcerrors.ErrCodeTimeout
	}
	return mcerrors.WrapWithContext(code,
		fmt.Sprintf("loading configuration file %s abandoned", y.filename),
		err,
		map[string]any{
			"path": y.filename,
		})
}

// Resolve loads the document and returns the value at keyPath.
// Missing keys fail with NOT_FOUND.
func (y *YAML) Resolve(ctx context.Context, keyPath string) (any, error) {
	doc, err := y.Load(ctx)
	if err != nil {
		return nil, err
	}
	return lookupKeyPath(doc, keyPath)
}

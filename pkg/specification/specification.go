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

// Package specification holds the mapping that describes which configurator
// variant to build and with what parameters, plus helpers to read required
// fields from it with diagnostics that name the caller.
package specification

import (
	"fmt"
	"strings"

	mcerrors "github.com/NVIDIA/multiconf/pkg/errors"
)

// Specification is the input mapping consumed by a configurator factory.
// It always carries a "type" key plus variant-specific data.
type Specification map[string]any

// Callsigner is implemented by values that describe themselves in diagnostics.
type Callsigner interface {
	Callsign() string
}

// Callsign returns a human-readable identity of v for error messages.
// Values implementing Callsigner describe themselves; values with a non-empty
// Name() are rendered as `Type "name"`; anything else renders as its type.
func Callsign(v any) string {
	switch c := v.(type) {
	case nil:
		return "<nil>"
	case Callsigner:
		return c.Callsign()
	}

	typ := strings.TrimPrefix(fmt.Sprintf("%T", v), "*")
	if n, ok := v.(interface{ Name() string }); ok && n.Name() != "" {
		return fmt.Sprintf("%s %q", typ, n.Name())
	}
	return typ
}

// Require returns spec[key], failing with MISSING_REQUIRED_FIELD when the key
// is absent. owner is the call-sign of whoever needs the field.
func Require(owner string, spec Specification, key string) (any, error) {
	value, ok := spec[key]
	if !ok {
		return nil, mcerrors.NewWithContext(mcerrors.ErrCodeMissingRequiredField,
			fmt.Sprintf("%s specification is missing required field %q", owner, key),
			map[string]any{
				"owner": owner,
				"field": key,
			})
	}
	return value, nil
}

// RequireString is Require for fields that must hold a string.
func RequireString(owner string, spec Specification, key string) (string, error) {
	value, err := Require(owner, spec, key)
	if err != nil {
		return "", err
	}

	s, ok := value.(string)
	if !ok {
		return "", mcerrors.NewWithContext(mcerrors.ErrCodeInvalidRequest,
			fmt.Sprintf("%s specification field %q must be a string, got %T", owner, key, value),
			map[string]any{
				"owner": owner,
				"field": key,
			})
	}
	return s, nil
}

// Section returns the nested mapping stored under key.
// Both Specification and map[string]any values are accepted.
func Section(spec Specification, key string) (Specification, bool) {
	switch v := spec[key].(type) {
	case Specification:
		return v, true
	case map[string]any:
		return Specification(v), true
	default:
		return nil, false
	}
}

// RequireSection is Section with MISSING_REQUIRED_FIELD and INVALID_REQUEST
// failures naming owner.
func RequireSection(owner string, spec Specification, key string) (Specification, error) {
	value, err := Require(owner, spec, key)
	if err != nil {
		return nil, err
	}

	section, ok := Section(spec, key)
	if !ok {
		return nil, mcerrors.NewWithContext(mcerrors.ErrCodeInvalidRequest,
			fmt.Sprintf("%s specification field %q must be a mapping, got %T", owner, key, value),
			map[string]any{
				"owner": owner,
				"field": key,
			})
	}
	return section, nil
}

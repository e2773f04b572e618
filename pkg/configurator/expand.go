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
	"fmt"
	"regexp"
	"strings"
)

// placeholderPattern matches ${NAME} and ${NAME:-default}.
var placeholderPattern = regexp.MustCompile(`\$\{([^}:]+)(?::-([^}]*))?\}`)

// expander replaces placeholders in document strings. Names are looked up in
// the substitution table, then in the environment. With a ":-" default, an
// empty or missing value yields the default; without one, a missing name
// leaves the placeholder untouched.
type expander struct {
	substitutions map[string]string
	lookupEnv     func(string) (string, bool)
}

func (e *expander) lookup(name string) (string, bool) {
	if v, ok := e.substitutions[name]; ok {
		return v, true
	}
	if e.lookupEnv != nil {
		return e.lookupEnv(name)
	}
	return "", false
}

func (e *expander) expandString(s string) string {
	if !strings.Contains(s, "${") {
		return s
	}

	return placeholderPattern.ReplaceAllStringFunc(s, func(match string) string {
		parts := placeholderPattern.FindStringSubmatch(match)
		if len(parts) < 2 {
			return match
		}

		name := parts[1]
		hasDefault := strings.Contains(match, ":-")

		value, ok := e.lookup(name)
		switch {
		case ok && (value != "" || !hasDefault):
			return value
		case hasDefault:
			return parts[2]
		default:
			return match
		}
	})
}

// expandValue returns v with every string leaf expanded. Map keys are not
// expanded. Mappings decoded with non-string keys (8080: web) come back as
// map[string]any keyed by the key's text, so later lookups and JSON encoding
// see a single map type.
func (e *expander) expandValue(v any) any {
	switch val := v.(type) {
	case string:
		return e.expandString(val)
	case map[string]any:
		out := make(map[string]any, len(val))
		for k, item := range val {
			out[k] = e.expandValue(item)
		}
		return out
	case map[any]any:
		out := make(map[string]any, len(val))
		for k, item := range val {
			out[fmt.Sprint(k)] = e.expandValue(item)
		}
		return out
	case []any:
		out := make([]any, len(val))
		for i, item := range val {
			out[i] = e.expandValue(item)
		}
		return out
	default:
		return v
	}
}

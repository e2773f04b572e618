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
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExpander_ExpandString(t *testing.T) {
	env := map[string]string{
		"HOME":  "/home/op",
		"EMPTY": "",
	}
	e := &expander{
		substitutions: map[string]string{
			"configurator_directory": "/etc/app",
			"HOME":                   "/override",
			"blank":                  "",
		},
		lookupEnv: func(name string) (string, bool) {
			v, ok := env[name]
			return v, ok
		},
	}

	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "no placeholder", in: "plain", want: "plain"},
		{name: "substitution", in: "${configurator_directory}/x.yaml", want: "/etc/app/x.yaml"},
		{name: "substitution wins over env", in: "${HOME}", want: "/override"},
		{name: "env fallback", in: "${EMPTY}", want: ""},
		{name: "default when unset", in: "${MISSING:-fallback}", want: "fallback"},
		{name: "default when empty", in: "${EMPTY:-fallback}", want: "fallback"},
		{name: "empty default", in: "a${MISSING:-}b", want: "ab"},
		{name: "blank substitution without default", in: "[${blank}]", want: "[]"},
		{name: "unknown kept verbatim", in: "${MISSING}", want: "${MISSING}"},
		{name: "several", in: "${configurator_directory}:${MISSING:-d}", want: "/etc/app:d"},
		{name: "dollar without braces", in: "$HOME", want: "$HOME"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, e.expandString(tt.in))
		})
	}
}

func TestExpander_ExpandValue(t *testing.T) {
	e := &expander{substitutions: map[string]string{"d": "/etc"}}

	in := map[string]any{
		"${d}": "${d}/a",
		"list": []any{"${d}/b", 3, map[string]any{"c": "${d}/c"}},
		"n":    1,
		"nil":  nil,
	}

	got := e.expandValue(in).(map[string]any)
	assert.Equal(t, "/etc/a", got["${d}"], "keys are not expanded")
	assert.Equal(t, []any{"/etc/b", 3, map[string]any{"c": "/etc/c"}}, got["list"])
	assert.Equal(t, 1, got["n"])
	assert.Nil(t, got["nil"])

	assert.Equal(t, "${d}/a", in["${d}"], "input is not modified")
}

func TestExpander_ExpandValueNonStringKeys(t *testing.T) {
	e := &expander{substitutions: map[string]string{"d": "/etc"}}

	in := map[string]any{
		"ports": map[any]any{
			8080:  "${d}/web",
			"tls": map[any]any{true: []any{"${d}/cert"}},
		},
	}

	got := e.expandValue(in).(map[string]any)
	assert.Equal(t, map[string]any{
		"8080": "/etc/web",
		"tls":  map[string]any{"true": []any{"/etc/cert"}},
	}, got["ports"])
}

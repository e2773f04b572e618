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

package serializer

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestRespondJSON(t *testing.T) {
	w := httptest.NewRecorder()

	RespondJSON(w, http.StatusCreated, map[string]string{"status": "ok"})

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "ok", body["status"])
}

func TestRespondJSON_EncodingFailure(t *testing.T) {
	w := httptest.NewRecorder()

	RespondJSON(w, http.StatusOK, map[string]any{"ch": make(chan int)})

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotEqual(t, "application/json", w.Header().Get("Content-Type"))
}

func TestRespond_YAML(t *testing.T) {
	w := httptest.NewRecorder()

	Respond(w, FormatYAML, http.StatusOK, map[string]any{"ports": map[string]any{"8080": "web"}})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/yaml", w.Header().Get("Content-Type"))

	var body map[string]any
	require.NoError(t, yaml.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, map[string]any{"8080": "web"}, body["ports"])
}

func TestRespond_Table(t *testing.T) {
	w := httptest.NewRecorder()

	Respond(w, FormatTable, http.StatusOK, map[string]any{"db": map[string]any{"port": 5432}})

	assert.Equal(t, "text/plain; charset=utf-8", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Body.String(), "db.port")
	assert.Contains(t, w.Body.String(), "5432")
}

func TestNegotiateFormat(t *testing.T) {
	tests := []struct {
		name   string
		target string
		accept string
		want   Format
	}{
		{name: "no preference", target: "/", want: FormatJSON},
		{name: "wildcard", target: "/", accept: "*/*", want: FormatJSON},
		{name: "yaml", target: "/", accept: "application/yaml", want: FormatYAML},
		{name: "legacy yaml", target: "/", accept: "text/html, application/x-yaml;q=0.9", want: FormatYAML},
		{name: "plain text", target: "/", accept: "text/plain", want: FormatTable},
		{name: "quality wins over order", target: "/", accept: "application/yaml;q=0.5, application/json", want: FormatJSON},
		{name: "low quality table", target: "/", accept: "text/plain;q=0.1, application/yaml;q=0.8", want: FormatYAML},
		{name: "unsupported only", target: "/", accept: "text/html", want: FormatJSON},
		{name: "query wins", target: "/?format=yaml", accept: "application/json", want: FormatYAML},
		{name: "query case-insensitive", target: "/?format=TABLE", want: FormatTable},
		{name: "unknown query ignored", target: "/?format=xml", accept: "application/yaml", want: FormatYAML},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodGet, tt.target, nil)
			if tt.accept != "" {
				r.Header.Set("Accept", tt.accept)
			}
			assert.Equal(t, tt.want, NegotiateFormat(r))
		})
	}
}

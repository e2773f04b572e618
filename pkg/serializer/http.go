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
	"bytes"
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/munnerz/goautoneg"
)

// FormatQueryParam overrides Accept negotiation when set on a request.
const FormatQueryParam = "format"

// offers lists the media types NegotiateFormat answers, preferred first.
var offers = []string{
	"application/json",
	"application/yaml",
	"application/x-yaml",
	"text/yaml",
	"text/plain",
}

var mediaTypes = map[string]Format{
	"application/json":   FormatJSON,
	"application/yaml":   FormatYAML,
	"application/x-yaml": FormatYAML,
	"text/yaml":          FormatYAML,
	"text/plain":         FormatTable,
}

// ContentType returns the media type written for f.
func ContentType(f Format) string {
	switch f {
	case FormatYAML:
		return "application/yaml"
	case FormatTable:
		return "text/plain; charset=utf-8"
	default:
		return "application/json"
	}
}

// NegotiateFormat picks the response format for r. A known ?format= value
// wins; otherwise the Accept header is matched against offers, honoring
// quality values. JSON is the fallback.
func NegotiateFormat(r *http.Request) Format {
	if q := Format(strings.ToLower(r.URL.Query().Get(FormatQueryParam))); q != "" && !q.IsUnknown() {
		return q
	}

	if match := goautoneg.Negotiate(r.Header.Get("Accept"), offers); match != "" {
		return mediaTypes[match]
	}
	return FormatJSON
}

// Respond serializes data in format and writes it with statusCode. Nothing is
// written until encoding succeeds; a failure becomes a plain 500.
func Respond(w http.ResponseWriter, format Format, statusCode int, data any) {
	var buf bytes.Buffer
	if err := NewWriter(format, &buf).Serialize(context.Background(), data); err != nil {
		slog.Error("response encoding failed", "format", format, "error", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", ContentType(format))
	w.WriteHeader(statusCode)
	if _, err := w.Write(buf.Bytes()); err != nil {
		slog.Warn("response write failed", "error", err)
	}
}

// RespondJSON writes data as JSON with statusCode.
func RespondJSON(w http.ResponseWriter, statusCode int, data any) {
	Respond(w, FormatJSON, statusCode, data)
}

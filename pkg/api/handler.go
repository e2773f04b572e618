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
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/NVIDIA/multiconf/pkg/configurator"
	"github.com/NVIDIA/multiconf/pkg/defaults"
	mcerrors "github.com/NVIDIA/multiconf/pkg/errors"
	"github.com/NVIDIA/multiconf/pkg/serializer"
	"github.com/NVIDIA/multiconf/pkg/server"
)

const (
	// ConfigurationPath serves the whole document.
	ConfigurationPath = "/v1/configuration"
	// ValuePath serves one value by key path.
	ValuePath = "/v1/configuration/value"
)

// Handler serves a configurator over HTTP.
type Handler struct {
	configurator configurator.Configurator
	version      string
	loadTimeout  time.Duration
}

// NewHandler returns a Handler reading from c.
func NewHandler(c configurator.Configurator, version string) *Handler {
	return &Handler{
		configurator: c,
		version:      version,
		loadTimeout:  defaults.LoadTimeout,
	}
}

// Routes returns the handler's routes for server.WithHandler.
func (h *Handler) Routes() map[string]http.HandlerFunc {
	return map[string]http.HandlerFunc{
		ConfigurationPath: h.HandleConfiguration,
		ValuePath:         h.HandleValue,
	}
}

// HandleConfiguration handles GET /v1/configuration.
func (h *Handler) HandleConfiguration(w http.ResponseWriter, r *http.Request) {
	if !allowGet(w, r) {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.loadTimeout)
	defer cancel()

	doc, err := h.configurator.Load(ctx)
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		server.WriteErrorFromErr(w, r, err, "Failed to load configuration", nil)
		return
	}

	w.Header().Set("Cache-Control", "no-store")
	serializer.Respond(w, serializer.NegotiateFormat(r), http.StatusOK,
		NewConfigurationDocument(h.configurator, doc, h.version))
}

// HandleValue handles GET /v1/configuration/value?key=a.b[0].
func (h *Handler) HandleValue(w http.ResponseWriter, r *http.Request) {
	if !allowGet(w, r) {
		return
	}

	key := r.URL.Query().Get("key")
	if key == "" {
		server.WriteError(w, r, http.StatusBadRequest, mcerrors.ErrCodeInvalidRequest,
			"Missing key query parameter", false, nil)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.loadTimeout)
	defer cancel()

	value, err := h.configurator.Resolve(ctx, key)
	if err != nil {
		server.WriteErrorFromErr(w, r, err, "Failed to resolve key", map[string]any{"key": key})
		return
	}

	w.Header().Set("Cache-Control", "no-store")
	serializer.Respond(w, serializer.NegotiateFormat(r), http.StatusOK, ValueDocument{Key: key, Value: value})
}

// CheckLoadable reports whether the configuration still loads. It backs
// GET /ready, so a deleted or broken file takes the instance out of rotation.
func (h *Handler) CheckLoadable(ctx context.Context) error {
	if _, err := h.configurator.Load(ctx); err != nil {
		return mcerrors.Wrap(mcerrors.ErrCodeUnavailable, "configuration cannot be loaded", err)
	}
	return nil
}

func allowGet(w http.ResponseWriter, r *http.Request) bool {
	if r.Method == http.MethodGet {
		return true
	}
	w.Header().Set("Allow", http.MethodGet)
	server.WriteError(w, r, http.StatusMethodNotAllowed, mcerrors.ErrCodeMethodNotAllowed,
		"Method not allowed", false, map[string]any{"method": r.Method})
	return false
}

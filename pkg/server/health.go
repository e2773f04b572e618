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

package server

import (
	"context"
	"net/http"
	"time"

	mcerrors "github.com/NVIDIA/multiconf/pkg/errors"
	"github.com/NVIDIA/multiconf/pkg/serializer"
)

// Probe states.
const (
	StatusHealthy  = "healthy"
	StatusReady    = "ready"
	StatusNotReady = "not_ready"
)

// HealthResponse is the body of GET /health and GET /ready.
type HealthResponse struct {
	Status    string    `json:"status" yaml:"status"`
	Timestamp time.Time `json:"timestamp" yaml:"timestamp"`
	Code      string    `json:"code,omitempty" yaml:"code,omitempty"`
	Reason    string    `json:"reason,omitempty" yaml:"reason,omitempty"`
}

// handleHealth reports liveness. It does no I/O.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if !allowProbeMethod(w, r) {
		return
	}
	serializer.Respond(w, serializer.NegotiateFormat(r), http.StatusOK, HealthResponse{
		Status:    StatusHealthy,
		Timestamp: time.Now().UTC(),
	})
}

// handleReady reports ready only while the server is started and the
// configured readiness check passes.
func (s *Server) handleReady(w http.ResponseWriter, r *http.Request) {
	if !allowProbeMethod(w, r) {
		return
	}
	format := serializer.NegotiateFormat(r)

	if err := s.checkReadiness(r.Context()); err != nil {
		code := mcerrors.CodeOf(err)
		if code == "" {
			code = mcerrors.ErrCodeUnavailable
		}
		readinessFailures.WithLabelValues(string(code)).Inc()

		serializer.Respond(w, format, http.StatusServiceUnavailable, HealthResponse{
			Status:    StatusNotReady,
			Timestamp: time.Now().UTC(),
			Code:      string(code),
			Reason:    err.Error(),
		})
		return
	}

	serializer.Respond(w, format, http.StatusOK, HealthResponse{
		Status:    StatusReady,
		Timestamp: time.Now().UTC(),
	})
}

func (s *Server) checkReadiness(ctx context.Context) error {
	if !s.isReady() {
		return mcerrors.New(mcerrors.ErrCodeUnavailable, "server is not accepting traffic")
	}
	if s.config.ReadinessCheck == nil {
		return nil
	}

	if s.config.ReadinessTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.config.ReadinessTimeout)
		defer cancel()
	}
	return s.config.ReadinessCheck(ctx)
}

func allowProbeMethod(w http.ResponseWriter, r *http.Request) bool {
	if r.Method == http.MethodGet || r.Method == http.MethodHead {
		return true
	}
	w.Header().Set("Allow", "GET, HEAD")
	WriteError(w, r, http.StatusMethodNotAllowed, mcerrors.ErrCodeMethodNotAllowed,
		"Method not allowed", false, map[string]any{"method": r.Method})
	return false
}

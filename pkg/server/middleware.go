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
	"errors"
	"fmt"
	"log/slog"
	"math"
	"net/http"
	"runtime/debug"
	"strconv"
	"time"

	"github.com/google/uuid"

	mcerrors "github.com/NVIDIA/multiconf/pkg/errors"
)

// wrap builds the chain for one registered route. Outermost first: metrics,
// request ID, API version, panic recovery, rate limit, access log.
func (s *Server) wrap(route string, handler http.HandlerFunc) http.Handler {
	var h http.Handler = handler
	h = s.accessLog(route, h)
	h = s.rateLimit(route, h)
	h = s.recoverPanics(route, h)
	h = withAPIVersion(h)
	h = withRequestID(h)
	return instrument(route, h)
}

// withRequestID keeps a client X-Request-Id that parses as a UUID and
// otherwise issues a new one.
func withRequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get("X-Request-Id")
		if _, err := uuid.Parse(id); err != nil {
			id = uuid.NewString()
		}
		w.Header().Set("X-Request-Id", id)
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), contextKeyRequestID, id)))
	})
}

func withAPIVersion(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		version := negotiateAPIVersion(r)
		SetAPIVersionHeader(w, version)
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), contextKeyAPIVersion, version)))
	})
}

// rateLimit reserves a token per request. When the token is not available
// now the reservation is returned and Retry-After carries the wait.
func (s *Server) rateLimit(route string, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		res := s.rateLimiter.Reserve()
		if !res.OK() || res.Delay() > 0 {
			wait := 1
			if res.OK() {
				wait = max(1, int(math.Ceil(res.Delay().Seconds())))
			}
			res.Cancel()

			requestsRejected.WithLabelValues(route, rejectRateLimit).Inc()
			w.Header().Set("Retry-After", strconv.Itoa(wait))
			WriteError(w, r, http.StatusTooManyRequests, mcerrors.ErrCodeRateLimitExceeded,
				"Rate limit exceeded", true, map[string]any{
					"limit":             float64(s.config.RateLimit),
					"burst":             s.config.RateLimitBurst,
					"retryAfterSeconds": wait,
				})
			return
		}

		w.Header().Set("X-RateLimit-Limit", strconv.Itoa(int(s.config.RateLimit)))
		w.Header().Set("X-RateLimit-Remaining", strconv.Itoa(max(0, int(s.rateLimiter.Tokens()))))
		next.ServeHTTP(w, r)
	})
}

// recoverPanics turns a handler panic into a 500. http.ErrAbortHandler is
// re-raised so net/http can abort the connection.
func (s *Server) recoverPanics(route string, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if err, ok := rec.(error); ok && errors.Is(err, http.ErrAbortHandler) {
				panic(rec)
			}

			requestsRejected.WithLabelValues(route, rejectPanic).Inc()
			slog.Error("handler panic",
				"route", route,
				"requestID", r.Context().Value(contextKeyRequestID),
				"panic", fmt.Sprint(rec),
				"stack", string(debug.Stack()),
			)
			WriteError(w, r, http.StatusInternalServerError, mcerrors.ErrCodeInternal,
				"Internal server error", true, map[string]any{"route": route})
		}()
		next.ServeHTTP(w, r)
	})
}

// statusRecorder remembers the first status written through it.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (sr *statusRecorder) WriteHeader(code int) {
	if sr.status == 0 {
		sr.status = code
	}
	sr.ResponseWriter.WriteHeader(code)
}

func (sr *statusRecorder) Write(b []byte) (int, error) {
	if sr.status == 0 {
		sr.status = http.StatusOK
	}
	return sr.ResponseWriter.Write(b)
}

// Unwrap exposes the underlying writer to http.ResponseController.
func (sr *statusRecorder) Unwrap() http.ResponseWriter {
	return sr.ResponseWriter
}

// accessLog writes one line per request once the handler returns. Server
// errors log at WARN, everything else at DEBUG.
func (s *Server) accessLog(route string, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w}
		next.ServeHTTP(rec, r)

		if rec.status == 0 {
			rec.status = http.StatusOK
		}
		level := slog.LevelDebug
		if rec.status >= http.StatusInternalServerError {
			level = slog.LevelWarn
		}
		slog.Log(r.Context(), level, "request served",
			"route", route,
			"method", r.Method,
			"path", r.URL.Path,
			"query", r.URL.RawQuery,
			"status", rec.status,
			"apiVersion", r.Context().Value(contextKeyAPIVersion),
			"requestID", r.Context().Value(contextKeyRequestID),
			"duration", time.Since(start),
		)
	})
}

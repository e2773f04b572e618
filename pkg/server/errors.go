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
	"errors"
	"maps"
	"net/http"
	"time"

	"github.com/google/uuid"

	mcerrors "github.com/NVIDIA/multiconf/pkg/errors"
	"github.com/NVIDIA/multiconf/pkg/serializer"
)

// ErrorResponse is the JSON body of every API error.
type ErrorResponse struct {
	Code      string         `json:"code"`
	Message   string         `json:"message"`
	Details   map[string]any `json:"details,omitempty"`
	RequestID string         `json:"requestId"`
	Timestamp time.Time      `json:"timestamp"`
	Retryable bool           `json:"retryable"`
}

// HTTPStatusFromCode maps an error code onto an HTTP status.
func HTTPStatusFromCode(code mcerrors.ErrorCode) int {
	switch code {
	case mcerrors.ErrCodeInvalidRequest, mcerrors.ErrCodeMissingRequiredField:
		return http.StatusBadRequest
	case mcerrors.ErrCodeNotFound:
		return http.StatusNotFound
	case mcerrors.ErrCodeMethodNotAllowed:
		return http.StatusMethodNotAllowed
	case mcerrors.ErrCodeRateLimitExceeded:
		return http.StatusTooManyRequests
	case mcerrors.ErrCodeUnavailable, mcerrors.ErrCodeUninitializedDefault:
		return http.StatusServiceUnavailable
	case mcerrors.ErrCodeTimeout:
		return http.StatusGatewayTimeout
	case mcerrors.ErrCodeInternal, mcerrors.ErrCodeInstantiationFailure,
		mcerrors.ErrCodeEnvironmentMisconfiguration:
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}

func retryableFromCode(code mcerrors.ErrorCode) bool {
	switch code {
	case mcerrors.ErrCodeTimeout, mcerrors.ErrCodeUnavailable,
		mcerrors.ErrCodeRateLimitExceeded, mcerrors.ErrCodeInternal,
		mcerrors.ErrCodeUninitializedDefault:
		return true
	default:
		return false
	}
}

// mergeDetails returns a new map with b layered over a, or nil when both are empty.
func mergeDetails(a, b map[string]any) map[string]any {
	if len(a) == 0 && len(b) == 0 {
		return nil
	}
	out := make(map[string]any, len(a)+len(b))
	maps.Copy(out, a)
	maps.Copy(out, b)
	return out
}

// WriteError writes an ErrorResponse with the request's ID.
func WriteError(w http.ResponseWriter, r *http.Request, statusCode int,
	code mcerrors.ErrorCode, message string, retryable bool, details map[string]any) {

	requestID, _ := r.Context().Value(contextKeyRequestID).(string)
	if requestID == "" {
		requestID = uuid.New().String()
	}

	errResp := ErrorResponse{
		Code:      string(code),
		Message:   message,
		Details:   details,
		RequestID: requestID,
		Timestamp: time.Now().UTC(),
		Retryable: retryable,
	}

	serializer.RespondJSON(w, statusCode, errResp)
}

// WriteErrorFromErr writes err as an ErrorResponse. A StructuredError keeps
// its code, message and context; anything else is reported as INTERNAL with
// fallbackMessage.
func WriteErrorFromErr(w http.ResponseWriter, r *http.Request, err error,
	fallbackMessage string, extraDetails map[string]any) {

	var se *mcerrors.StructuredError
	if errors.As(err, &se) {
		details := mergeDetails(se.Context, extraDetails)
		if se.Cause != nil {
			details = mergeDetails(details, map[string]any{"error": se.Cause.Error()})
		}
		WriteError(w, r, HTTPStatusFromCode(se.Code), se.Code, se.Message,
			retryableFromCode(se.Code), details)
		return
	}

	details := mergeDetails(extraDetails, map[string]any{"error": err.Error()})
	WriteError(w, r, http.StatusInternalServerError, mcerrors.ErrCodeInternal,
		fallbackMessage, retryableFromCode(mcerrors.ErrCodeInternal), details)
}

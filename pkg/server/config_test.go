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
	"testing"
	"time"

	"github.com/NVIDIA/multiconf/pkg/defaults"
)

func TestParseConfig(t *testing.T) {
	tests := []struct {
		name         string
		port         string
		shutdown     string
		wantPort     int
		wantShutdown time.Duration
	}{
		{name: "defaults", wantPort: 8080, wantShutdown: defaults.ServerShutdownTimeout},
		{name: "port override", port: "9000", wantPort: 9000, wantShutdown: defaults.ServerShutdownTimeout},
		{name: "invalid port ignored", port: "abc", wantPort: 8080, wantShutdown: defaults.ServerShutdownTimeout},
		{name: "shutdown override", shutdown: "5", wantPort: 8080, wantShutdown: 5 * time.Second},
		{name: "non-positive shutdown ignored", shutdown: "0", wantPort: 8080, wantShutdown: defaults.ServerShutdownTimeout},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("PORT", tt.port)
			t.Setenv("SHUTDOWN_TIMEOUT_SECONDS", tt.shutdown)

			cfg := parseConfig()

			if cfg.Port != tt.wantPort {
				t.Errorf("Port = %d, want %d", cfg.Port, tt.wantPort)
			}
			if cfg.ShutdownTimeout != tt.wantShutdown {
				t.Errorf("ShutdownTimeout = %v, want %v", cfg.ShutdownTimeout, tt.wantShutdown)
			}
			if cfg.ReadHeaderTimeout != defaults.ServerReadHeaderTimeout {
				t.Errorf("ReadHeaderTimeout = %v, want %v", cfg.ReadHeaderTimeout, defaults.ServerReadHeaderTimeout)
			}
			if cfg.ReadinessTimeout != defaults.ServerReadinessTimeout {
				t.Errorf("ReadinessTimeout = %v, want %v", cfg.ReadinessTimeout, defaults.ServerReadinessTimeout)
			}
			if cfg.ReadinessCheck != nil {
				t.Error("ReadinessCheck should be unset by default")
			}
		})
	}
}

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
	"slices"

	"github.com/NVIDIA/multiconf/pkg/configurator"
	"github.com/NVIDIA/multiconf/pkg/server"
)

const name = "multiconf"

// Serve exposes c over HTTP until ctx is canceled or the process is
// signaled. GET /ready reports ready only while c still loads.
func Serve(ctx context.Context, c configurator.Configurator, version string, opts ...server.Option) error {
	if err := NewServer(c, version, opts...).Run(ctx); err != nil {
		slog.Error("server exited with error", "error", err)
		return err
	}

	return nil
}

// NewServer builds the API server for c. opts are applied before the API's
// own name, version, routes and readiness check; the caller's slice is not
// modified.
func NewServer(c configurator.Configurator, version string, opts ...server.Option) *server.Server {
	h := NewHandler(c, version)

	all := append(slices.Clone(opts),
		server.WithName(name),
		server.WithVersion(version),
		server.WithHandler(h.Routes()),
		server.WithReadinessCheck(h.CheckLoadable),
	)
	return server.New(all...)
}

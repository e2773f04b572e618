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

package cli

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/NVIDIA/multiconf/pkg/api"
	"github.com/NVIDIA/multiconf/pkg/server"
)

func serveCmd() *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "Serve the resolved configuration over HTTP",
		Description: `Build the default configurator from the environment and expose it on
GET /v1/configuration and GET /v1/configuration/value?key=..., alongside
/health, /ready and /metrics. The listen port defaults to $PORT or 8080.`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "address",
				Usage: "Listen address (default: all interfaces)",
			},
			&cli.IntFlag{
				Name:  "port",
				Usage: "Listen port (overrides PORT)",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			cfg, err := defaultConfigurator(cmd)
			if err != nil {
				return err
			}

			serverCfg := server.NewConfig()
			if cmd.IsSet("address") {
				serverCfg.Address = cmd.String("address")
			}
			if cmd.IsSet("port") {
				serverCfg.Port = int(cmd.Int("port"))
			}

			return api.Serve(ctx, cfg, version, server.WithConfig(serverCfg))
		},
	}
}

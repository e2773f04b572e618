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
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/NVIDIA/multiconf/pkg/api"
	"github.com/NVIDIA/multiconf/pkg/defaults"
)

func showCmd() *cli.Command {
	return &cli.Command{
		Name:  "show",
		Usage: "Print the resolved configuration",
		Description: `Build the default configurator from the environment and print the
loaded document with all placeholders expanded.`,
		Flags: []cli.Flag{
			outputFlag(),
			formatFlag(),
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			outFormat, err := parseOutputFormat(cmd)
			if err != nil {
				return err
			}

			cfg, err := defaultConfigurator(cmd)
			if err != nil {
				return err
			}

			loadCtx, cancel := context.WithTimeout(ctx, defaults.LoadTimeout)
			defer cancel()

			doc, err := cfg.Load(loadCtx)
			if err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}

			ser := newSerializer(cmd, outFormat)
			defer closeSerializer(ser)

			return ser.Serialize(ctx, api.NewConfigurationDocument(cfg, doc, version))
		},
	}
}

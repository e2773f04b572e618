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

	"github.com/NVIDIA/multiconf/pkg/defaults"
)

func getCmd() *cli.Command {
	return &cli.Command{
		Name:      "get",
		Usage:     "Print one configuration value",
		ArgsUsage: "KEY",
		Description: `Resolve a dotted key path such as "service.hosts[0]" against the
default configurator. Scalars print as plain text; mappings and lists use
--format.`,
		Flags: []cli.Flag{
			outputFlag(),
			formatFlag(),
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if cmd.Args().Len() != 1 {
				return fmt.Errorf("expected exactly one KEY argument, got %d", cmd.Args().Len())
			}
			key := cmd.Args().First()

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

			value, err := cfg.Resolve(loadCtx, key)
			if err != nil {
				return err
			}

			switch value.(type) {
			case map[string]any, []any:
				ser := newSerializer(cmd, outFormat)
				defer closeSerializer(ser)
				return ser.Serialize(ctx, value)
			default:
				_, err = fmt.Fprintln(writerOf(cmd), value)
				return err
			}
		},
	}
}

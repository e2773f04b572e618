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

	"github.com/NVIDIA/multiconf/pkg/configurator"
	"github.com/NVIDIA/multiconf/pkg/header"
)

type typesDocument struct {
	header.Header `yaml:",inline"`

	Types []string `json:"types" yaml:"types"`
}

func typesCmd() *cli.Command {
	return &cli.Command{
		Name:  "types",
		Usage: "List the configurator types that can be built",
		Flags: []cli.Flag{
			outputFlag(),
			formatFlag(),
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			outFormat, err := parseOutputFormat(cmd)
			if err != nil {
				return err
			}

			out := typesDocument{
				Header: header.New(header.WithKind(header.KindConfiguratorTypes), header.WithVersion(version)),
			}
			for _, t := range configurator.NewConfigurators().Types() {
				out.Types = append(out.Types, t.String())
			}

			ser := newSerializer(cmd, outFormat)
			defer closeSerializer(ser)

			return ser.Serialize(ctx, out)
		},
	}
}

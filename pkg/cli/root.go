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
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v3"

	"github.com/NVIDIA/multiconf/pkg/configurator"
	"github.com/NVIDIA/multiconf/pkg/defaults"
	"github.com/NVIDIA/multiconf/pkg/envvar"
	"github.com/NVIDIA/multiconf/pkg/logging"
	"github.com/NVIDIA/multiconf/pkg/serializer"
)

const (
	name           = "multiconf"
	versionDefault = "dev"
)

var (
	// overridden during build with ldflags
	version = versionDefault
	commit  = "unknown"
	date    = "unknown"
)

// Flags keep parse state, so every command tree gets its own instances.
func outputFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "output",
		Aliases: []string{"o"},
		Usage:   "Output file path (default: stdout)",
	}
}

func formatFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "format",
		Aliases: []string{"t"},
		Value:   string(serializer.FormatYAML),
		Usage:   fmt.Sprintf("Output format (supported values: %v)", serializer.SupportedFormats()),
	}
}

// Execute runs the CLI with process arguments and exits non-zero on failure.
// This is called by main.main().
func Execute() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle SIGINT/SIGTERM for graceful shutdown
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigCh
		fmt.Fprintln(os.Stderr, "\nReceived interrupt signal, shutting down...")
		cancel()
	}()

	if err := newRootCmd().Run(ctx, os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cli.Command {
	return &cli.Command{
		Name:    name,
		Usage:   "Load and inspect configurator-backed configuration files",
		Version: fmt.Sprintf("%s (commit %s, built %s)", version, commit, date),
		Description: fmt.Sprintf(`multiconf builds a configurator from the YAML file named by
the %s environment variable (or --config) and prints the
resolved configuration. ${configurator_directory} in the file expands to the
directory holding it.`, defaults.ConfigFileEnv),
		EnableShellCompletion: true,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   fmt.Sprintf("Configuration file (overrides %s)", defaults.ConfigFileEnv),
			},
			&cli.StringFlag{
				Name:    "log-level",
				Value:   "info",
				Usage:   "Log level (debug, info, warn, error)",
				Sources: cli.EnvVars(logging.EnvLogLevel),
			},
		},
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			logLevel := cmd.String("log-level")
			logging.SetDefaultStructuredLoggerWithLevel(name, version, logLevel)
			slog.Debug("starting",
				"name", name,
				"version", version,
				"commit", commit,
				"date", date,
				"logLevel", logLevel)
			return ctx, nil
		},
		Commands: []*cli.Command{
			showCmd(),
			getCmd(),
			typesCmd(),
			serveCmd(),
		},
	}
}

// parseOutputFormat validates the --format flag.
func parseOutputFormat(cmd *cli.Command) (serializer.Format, error) {
	format := serializer.Format(cmd.String("format"))
	if format.IsUnknown() {
		return "", fmt.Errorf("unknown output format: %q", format)
	}
	return format, nil
}

// environFromCmd returns the environment to build from. Without --config this
// is the process environment (nil); with it, the config file variable is
// replaced by the flag value.
func environFromCmd(cmd *cli.Command, variable string) envvar.Environ {
	configFile := cmd.String("config")
	if configFile == "" {
		return nil
	}

	env := envvar.FromOS()
	env[variable] = configFile
	return env
}

// defaultConfigurator returns the process default configurator, building it
// from the environment and publishing it on first use.
func defaultConfigurator(cmd *cli.Command) (configurator.Configurator, error) {
	if configurator.HasDefault() {
		return configurator.GetDefault()
	}

	configurators := configurator.NewConfigurators(configurator.WithName(name))
	cfg, err := configurators.BuildObjectFromEnvironment(environFromCmd(cmd, configurators.Variable()))
	if err != nil {
		return nil, err
	}

	configurators.Add("default", cfg)
	configurator.SetDefault(cfg)
	return cfg, nil
}

// newSerializer writes to --output when set, otherwise to the command's writer.
func newSerializer(cmd *cli.Command, format serializer.Format) *serializer.Writer {
	if path := cmd.String("output"); path != "" {
		return serializer.NewFileWriterOrStdout(format, path)
	}
	return serializer.NewWriter(format, writerOf(cmd))
}

func writerOf(cmd *cli.Command) io.Writer {
	if w := cmd.Root().Writer; w != nil {
		return w
	}
	return os.Stdout
}

func closeSerializer(w *serializer.Writer) {
	if err := w.Close(); err != nil {
		slog.Warn("failed to close serializer", "error", err)
	}
}

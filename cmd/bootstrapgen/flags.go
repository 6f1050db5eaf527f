package main

import (
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/mholzen/bootstrapgen/pkg/config"
)

func getGlobalFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:  "log-level",
			Value: "info",
			Usage: "Log level: debug, info, warn, error",
		},
		&cli.StringFlag{
			Name:  "log-file",
			Usage: "Write logs to this file instead of stderr",
		},
		&cli.StringFlag{
			Name:  "config",
			Usage: fmt.Sprintf("Path to a TOML config file (default: ./%s when present)", config.DefaultFile),
		},
	}
}

func getShapeArguments() []cli.Argument {
	return []cli.Argument{
		&cli.StringArg{
			Name:      "shape",
			Value:     "-",
			UsageText: "<shape.json> (default: stdin)",
		},
	}
}

func getLimitFlags() []cli.Flag {
	return []cli.Flag{
		&cli.IntFlag{
			Name:  "max-depth",
			Usage: "Cut the shape tree below this depth (0: config value or unlimited)",
		},
		&cli.IntFlag{
			Name:  "max-nodes",
			Usage: "Stop converting after this many shapes (0: config value or unlimited)",
		},
	}
}

func getOutputFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "output",
		Aliases: []string{"o"},
		Usage:   "Write the result to this file instead of stdout",
	}
}

func getPreviewFlags() []cli.Flag {
	flags := []cli.Flag{
		&cli.StringFlag{
			Name:  "format",
			Value: "debug",
			Usage: "Output format: debug, html or json",
		},
		getOutputFlag(),
	}
	return append(flags, getLimitFlags()...)
}

func getGenerateFlags() []cli.Flag {
	flags := []cli.Flag{
		&cli.StringFlag{
			Name:  "selection",
			Value: "-",
			Usage: "Selection file: a JSON shape or array of shapes (default: stdin)",
		},
		&cli.StringFlag{
			Name:  "tokens",
			Usage: "Design token file or http(s) URL (overrides tokens.source)",
		},
		&cli.StringFlag{
			Name:  "bootstrap-version",
			Usage: "Bootstrap version referenced from the CDN (overrides document.bootstrap_version)",
		},
		getOutputFlag(),
	}
	return append(flags, getLimitFlags()...)
}

func validateFormat(format string) error {
	if format != "debug" && format != "html" && format != "json" {
		return fmt.Errorf("format must be 'debug', 'html', or 'json'")
	}
	return nil
}

// applyOverrides copies flags that were set on the command line over cfg.
func applyOverrides(cmd *cli.Command, cfg *config.Config) {
	if cmd.IsSet("max-depth") {
		cfg.Limits.MaxDepth = int(cmd.Int("max-depth"))
	}
	if cmd.IsSet("max-nodes") {
		cfg.Limits.MaxNodes = int(cmd.Int("max-nodes"))
	}
	if cmd.IsSet("tokens") {
		cfg.Tokens.Source = cmd.String("tokens")
	}
	if cmd.IsSet("bootstrap-version") {
		cfg.Document.BootstrapVersion = cmd.String("bootstrap-version")
	}
	if cmd.IsSet("addr") {
		cfg.Serve.Addr = cmd.String("addr")
	}
	if cmd.IsSet("legacy-code-output") {
		cfg.Plugin.LegacyCodeOutput = cmd.Bool("legacy-code-output")
	}
}

// loadConfig reads the --config file (or the default file) and applies the
// command's flag overrides.
func loadConfig(cmd *cli.Command) (config.Config, error) {
	cfg, err := config.Load(cmd.String("config"))
	if err != nil {
		return cfg, err
	}
	applyOverrides(cmd, &cfg)
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/pelletier/go-toml/v2"
	"github.com/urfave/cli/v3"

	"github.com/mholzen/bootstrapgen/pkg/bridge"
	"github.com/mholzen/bootstrapgen/pkg/config"
	"github.com/mholzen/bootstrapgen/pkg/element"
	"github.com/mholzen/bootstrapgen/pkg/formatter"
	"github.com/mholzen/bootstrapgen/pkg/mcp"
	"github.com/mholzen/bootstrapgen/pkg/plugin"
	"github.com/mholzen/bootstrapgen/pkg/shape"
	"github.com/mholzen/bootstrapgen/pkg/tokens"
)

func getCommands() []*cli.Command {
	return []*cli.Command{
		getPreviewCommand(),
		getGenerateCommand(),
		getInspectCommand(),
		getColorCommand(),
		getConfigCommand(),
		getMcpCommand(),
		getServeCommand(),
		getVersionCommand(),
	}
}

func getPreviewCommand() *cli.Command {
	return &cli.Command{
		Name:      "preview",
		Usage:     "Convert one shape to markup",
		UsageText: "bootstrapgen preview [<shape.json>] [options]",
		Description: `Convert the first shape of a JSON file into Bootstrap markup.

Formats:
  debug  escaped, indented markup as shown in the plugin panel (default)
  html   production markup
  json   the element tree`,
		Arguments: getShapeArguments(),
		Flags:     getPreviewFlags(),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			format := cmd.String("format")
			if err := validateFormat(format); err != nil {
				return err
			}
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			s, err := readShape(cmd, cmd.StringArg("shape"))
			if err != nil {
				return err
			}

			el := element.NewBuilder(cfg.ElementOptions()).Build(s)
			if format == "json" {
				return printJSONToWriter(stdout(cmd), toElementJSON(el))
			}
			f, err := formatter.New(formatter.Mode(format))
			if err != nil {
				return err
			}
			return writeOutput(cmd, cmd.String("output"), f.Format(el))
		},
	}
}

func getGenerateCommand() *cli.Command {
	return &cli.Command{
		Name:      "generate",
		Usage:     "Generate a standalone HTML document",
		UsageText: "bootstrapgen generate [--selection=<file>] [--tokens=<file|url>] [options]",
		Description: `Assemble a complete HTML page from a selection and optional design tokens.

The page embeds the production markup of the first selected shape, a :root
stylesheet built from the tokens and the Bootstrap CSS and JS from jsDelivr.
Token problems never fail the command: the page is generated without them.`,
		Flags: getGenerateFlags(),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			src, err := cfg.TokenSource()
			if err != nil {
				return err
			}
			selection, err := readSelection(cmd, cmd.String("selection"))
			if err != nil {
				return err
			}

			host := fileHost{selection: selection, tokens: src}
			code := plugin.New(host, nil, cfg.PluginConfig()).GenerateFinalCode(ctx)
			return writeOutput(cmd, cmd.String("output"), code)
		},
	}
}

func getInspectCommand() *cli.Command {
	return &cli.Command{
		Name:      "inspect",
		Usage:     "Report statistics about a shape tree",
		UsageText: "bootstrapgen inspect [<shape.json>]",
		Arguments: getShapeArguments(),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			s, err := readShape(cmd, cmd.StringArg("shape"))
			if err != nil {
				return err
			}
			return printJSONToWriter(stdout(cmd), mcp.Inspect(s))
		},
	}
}

func getColorCommand() *cli.Command {
	return &cli.Command{
		Name:      "color",
		Aliases:   []string{"colour"},
		Usage:     "Look up the Bootstrap theme colour of a hex value",
		UsageText: "bootstrapgen color <hex>",
		Arguments: []cli.Argument{
			&cli.StringArg{
				Name:      "hex",
				UsageText: "<hex>",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			hex := cmd.StringArg("hex")
			if hex == "" {
				return fmt.Errorf("hex is required")
			}
			return printJSONToWriter(stdout(cmd), mcp.LookupColor(hex))
		},
	}
}

func getConfigCommand() *cli.Command {
	return &cli.Command{
		Name:      "config",
		Usage:     "Show the effective configuration",
		UsageText: "bootstrapgen config [--output=<file>]",
		Flags: []cli.Flag{
			getOutputFlag(),
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			if path := cmd.String("output"); path != "" {
				if err := config.Save(path, cfg); err != nil {
					return err
				}
				slog.Info("wrote config", "file", path)
				return nil
			}
			data, err := toml.Marshal(cfg)
			if err != nil {
				return fmt.Errorf("cannot marshal config: %w", err)
			}
			_, err = stdout(cmd).Write(data)
			return err
		},
	}
}

func getMcpCommand() *cli.Command {
	return &cli.Command{
		Name:      "mcp",
		Usage:     "Run as MCP server (stdio transport)",
		UsageText: "bootstrapgen mcp [options]",
		Description: `Start the bootstrapgen MCP server for tool-calling assistants.

The server communicates via stdio using the Model Context Protocol (MCP).

Tool groups:
  convert  preview, html and generate tools
  inspect  color and inspect tools
  all      All available tools (default)

Examples:
  bootstrapgen mcp                        # All tools
  bootstrapgen mcp --expose=convert       # Conversion tools only
  bootstrapgen mcp --expose=html,color    # Specific tools only`,
		Flags: append([]cli.Flag{
			&cli.StringFlag{
				Name:  "expose",
				Value: "all",
				Usage: "Tools to expose: all, convert, inspect, or comma-separated tool names",
			},
			&cli.StringFlag{
				Name:  "tokens",
				Usage: "Design token file or http(s) URL used when a call carries no tokens",
			},
		}, getLimitFlags()...),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			src, err := cfg.TokenSource()
			if err != nil {
				return err
			}
			serverConfig := mcp.Config{
				Expose:   cmd.String("expose"),
				Version:  version,
				Limits:   cfg.ElementOptions(),
				Template: cfg.Template(),
				Tokens:   src,
			}
			return mcp.RunServer(ctx, serverConfig)
		},
	}
}

func getServeCommand() *cli.Command {
	return &cli.Command{
		Name:      "serve",
		Usage:     "Serve the plugin panel over HTTP and websockets",
		UsageText: "bootstrapgen serve [--addr=<addr>] [options]",
		Description: `Start the panel bridge.

GET /        the plugin panel (?theme=dark|light)
GET /ws      websocket carrying plugin events and messages
GET /healthz status and number of connected panels

Examples:
  bootstrapgen serve
  bootstrapgen serve --addr=:8765 --tokens=tokens.json`,
		Flags: append([]cli.Flag{
			&cli.StringFlag{
				Name:  "addr",
				Value: bridge.DefaultAddr,
				Usage: "Address to listen on (overrides serve.addr)",
			},
			&cli.StringFlag{
				Name:  "tokens",
				Usage: "Design token file or http(s) URL for panels that push none",
			},
			&cli.BoolFlag{
				Name:  "legacy-code-output",
				Value: true,
				Usage: "Also send generated documents as code-output messages",
			},
		}, getLimitFlags()...),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			src, err := cfg.TokenSource()
			if err != nil {
				return err
			}
			server := bridge.New(bridge.Config{
				Addr:   cfg.Serve.Addr,
				Plugin: cfg.PluginConfig(),
				Tokens: src,
			})
			return server.Run(ctx)
		},
	}
}

func getVersionCommand() *cli.Command {
	return &cli.Command{
		Name:      "version",
		Usage:     "Show version information",
		UsageText: "bootstrapgen version",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			w := stdout(cmd)
			fmt.Fprintf(w, "bootstrapgen version %s\n", version)
			fmt.Fprintf(w, "commit: %s\n", commit)
			fmt.Fprintf(w, "built: %s\n", date)
			return nil
		},
	}
}

// fileHost serves a selection read from disk and an optional token source.
type fileHost struct {
	selection []*shape.Shape
	tokens    tokens.Source
}

func (h fileHost) Selection(context.Context) ([]*shape.Shape, error) {
	return h.selection, nil
}

func (h fileHost) DesignTokens(ctx context.Context) (*tokens.Set, error) {
	if h.tokens == nil {
		return nil, nil
	}
	return h.tokens.DesignTokens(ctx)
}

func readSelection(cmd *cli.Command, path string) ([]*shape.Shape, error) {
	r, err := openInput(cmd, path)
	if err != nil {
		return nil, err
	}
	defer r.Close()
	return shape.DecodeSelection(r)
}

// readShape returns the first shape of the selection at path.
func readShape(cmd *cli.Command, path string) (*shape.Shape, error) {
	selection, err := readSelection(cmd, path)
	if err != nil {
		return nil, err
	}
	if len(selection) == 0 || selection[0] == nil {
		return nil, fmt.Errorf("no shape in input")
	}
	if len(selection) > 1 {
		slog.Debug("using the first shape of the selection", "selected", len(selection))
	}
	return selection[0], nil
}

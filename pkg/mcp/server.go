package mcp

import (
	"context"
	"fmt"
	"strings"

	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/mholzen/bootstrapgen/pkg/document"
	"github.com/mholzen/bootstrapgen/pkg/element"
	"github.com/mholzen/bootstrapgen/pkg/tokens"
)

// Config controls MCP server startup.
type Config struct {
	Expose   string
	Version  string
	Limits   element.Options
	Template document.Template
	// Tokens is used by the generate tool when the call carries no tokens
	Tokens tokens.Source
}

// RunServer starts the MCP stdio server with the requested tool set.
func RunServer(ctx context.Context, cfg Config) error {
	server, err := NewServer(cfg)
	if err != nil {
		return err
	}
	return mcpserver.ServeStdio(server, mcpserver.WithStdioContextFunc(func(_ context.Context) context.Context {
		return ctx
	}))
}

// NewServer builds the MCP server without starting a transport.
func NewServer(cfg Config) (*mcpserver.MCPServer, error) {
	expose := strings.TrimSpace(cfg.Expose)
	if expose == "" {
		expose = "all"
	}

	toolsToEnable, err := ParseExposeList(expose)
	if err != nil {
		return nil, err
	}

	builder := NewToolBuilder(cfg.Limits, cfg.Template, cfg.Tokens)
	serverTools, err := builder.BuildTools(toolsToEnable)
	if err != nil {
		return nil, err
	}

	server := mcpserver.NewMCPServer(
		"bootstrapgen",
		cfg.Version,
		mcpserver.WithToolCapabilities(true),
		mcpserver.WithLogging(),
	)

	for _, tool := range serverTools {
		server.AddTool(tool.Tool, tool.Handler)
	}
	return server, nil
}

// ParseExposeList converts the --expose flag into a deduplicated, ordered tool list.
// Supports groups: all, convert, inspect. Individual tools can be referenced either by
// their short name (e.g., "html") or full MCP name (e.g., "bootstrap_html").
func ParseExposeList(raw string) ([]string, error) {
	tokenList := strings.Split(raw, ",")

	var names []string
	for _, t := range tokenList {
		name := strings.TrimSpace(strings.ToLower(t))
		if name == "" {
			continue
		}
		names = append(names, name)
	}

	if len(names) == 0 {
		names = []string{"all"}
	}

	result := make([]string, 0, len(allTools))
	seen := make(map[string]struct{})

	addSet := func(tools []string) {
		for _, tool := range tools {
			if _, ok := seen[tool]; ok {
				continue
			}
			seen[tool] = struct{}{}
			result = append(result, tool)
		}
	}

	for _, name := range names {
		if group, ok := groupMap[name]; ok {
			addSet(group)
			continue
		}

		if alias, ok := aliasMap[name]; ok {
			addSet([]string{alias})
			continue
		}

		// Accept the fully qualified tool name if provided.
		if _, ok := fullNames[name]; ok {
			addSet([]string{name})
			continue
		}

		return nil, fmt.Errorf("unknown tool or group in --expose: %s", name)
	}

	return result, nil
}

var (
	allTools = []string{
		ToolPreview,
		ToolHTML,
		ToolGenerate,
		ToolColor,
		ToolInspect,
	}

	convertTools = []string{
		ToolPreview,
		ToolHTML,
		ToolGenerate,
	}

	inspectTools = []string{
		ToolColor,
		ToolInspect,
	}

	groupMap = map[string][]string{
		"all":     allTools,
		"convert": convertTools,
		"inspect": inspectTools,
	}

	aliasMap = map[string]string{
		"preview":  ToolPreview,
		"html":     ToolHTML,
		"generate": ToolGenerate,
		"color":    ToolColor,
		"colour":   ToolColor,
		"stats":    ToolInspect,
	}

	fullNames = func() map[string]struct{} {
		out := make(map[string]struct{}, len(allTools))
		for _, name := range allTools {
			out[name] = struct{}{}
		}
		return out
	}()
)

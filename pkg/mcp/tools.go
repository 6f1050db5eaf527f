package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	mcptypes "github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/mholzen/bootstrapgen/pkg/bootstrap"
	"github.com/mholzen/bootstrapgen/pkg/document"
	"github.com/mholzen/bootstrapgen/pkg/element"
	"github.com/mholzen/bootstrapgen/pkg/formatter"
	"github.com/mholzen/bootstrapgen/pkg/shape"
	"github.com/mholzen/bootstrapgen/pkg/tokens"
)

const (
	ToolPreview  = "bootstrap_preview"
	ToolHTML     = "bootstrap_html"
	ToolGenerate = "bootstrap_generate"
	ToolColor    = "bootstrap_color"
	ToolInspect  = "bootstrap_inspect"
)

// ToolBuilder wires the converters into MCP tool handlers.
type ToolBuilder struct {
	builder   *element.Builder
	assembler *document.Assembler
	tokens    tokens.Source
}

// NewToolBuilder creates a builder. src supplies design tokens to the
// generate tool when a call does not pass its own; it may be nil.
func NewToolBuilder(limits element.Options, tmpl document.Template, src tokens.Source) ToolBuilder {
	builder := element.NewBuilder(limits)
	return ToolBuilder{
		builder:   builder,
		assembler: document.NewAssembler(builder, tmpl),
		tokens:    src,
	}
}

// BuildTools constructs the requested tools in the order provided.
func (b ToolBuilder) BuildTools(toolNames []string) ([]mcpserver.ServerTool, error) {
	factories := map[string]func() mcpserver.ServerTool{
		ToolPreview:  b.buildPreviewTool,
		ToolHTML:     b.buildHTMLTool,
		ToolGenerate: b.buildGenerateTool,
		ToolColor:    b.buildColorTool,
		ToolInspect:  b.buildInspectTool,
	}

	var tools []mcpserver.ServerTool
	for _, name := range toolNames {
		factory, ok := factories[name]
		if !ok {
			return nil, fmt.Errorf("unknown tool: %s", name)
		}
		tools = append(tools, factory())
	}
	return tools, nil
}

func shapeParam() mcptypes.ToolOption {
	return mcptypes.WithString("shape",
		mcptypes.Required(),
		mcptypes.Description("Shape tree as JSON (type, width, height, fills, strokes, shadows, children, ...)"),
	)
}

func (b ToolBuilder) buildPreviewTool() mcpserver.ServerTool {
	return mcpserver.ServerTool{
		Tool: mcptypes.NewTool(
			ToolPreview,
			mcptypes.WithDescription("Convert a shape to the escaped, indented Bootstrap markup preview"),
			shapeParam(),
		),
		Handler: func(ctx context.Context, req mcptypes.CallToolRequest) (*mcptypes.CallToolResult, error) {
			s, err := decodeShape(req.GetString("shape", ""))
			if err != nil {
				return mcptypes.NewToolResultErrorFromErr("cannot read shape", err), nil
			}
			return mcptypes.NewToolResultText(formatter.NewDebugFormatter().Format(b.builder.Build(s))), nil
		},
	}
}

func (b ToolBuilder) buildHTMLTool() mcpserver.ServerTool {
	return mcpserver.ServerTool{
		Tool: mcptypes.NewTool(
			ToolHTML,
			mcptypes.WithDescription("Convert a shape to Bootstrap-classed HTML"),
			shapeParam(),
		),
		Handler: func(ctx context.Context, req mcptypes.CallToolRequest) (*mcptypes.CallToolResult, error) {
			s, err := decodeShape(req.GetString("shape", ""))
			if err != nil {
				return mcptypes.NewToolResultErrorFromErr("cannot read shape", err), nil
			}
			return mcptypes.NewToolResultText(formatter.NewHTMLFormatter().Format(b.builder.Build(s))), nil
		},
	}
}

func (b ToolBuilder) buildGenerateTool() mcpserver.ServerTool {
	return mcpserver.ServerTool{
		Tool: mcptypes.NewTool(
			ToolGenerate,
			mcptypes.WithDescription("Generate a standalone Bootstrap page for the first shape of a selection, with design tokens as CSS variables"),
			mcptypes.WithString("selection",
				mcptypes.Description("Selected shapes as a JSON array or a single shape object (default: empty selection)"),
				mcptypes.DefaultString(""),
			),
			mcptypes.WithString("tokens",
				mcptypes.Description(`Design tokens as JSON: {"color":[{"name","value"}],"typography":[...]}`),
				mcptypes.DefaultString(""),
			),
		),
		Handler: func(ctx context.Context, req mcptypes.CallToolRequest) (*mcptypes.CallToolResult, error) {
			selection, err := shape.DecodeSelection(strings.NewReader(req.GetString("selection", "")))
			if err != nil {
				return mcptypes.NewToolResultErrorFromErr("cannot read selection", err), nil
			}

			var result tokens.Result
			if raw := strings.TrimSpace(req.GetString("tokens", "")); raw != "" {
				set, err := tokens.Decode(strings.NewReader(raw))
				if err != nil {
					return mcptypes.NewToolResultErrorFromErr("cannot read tokens", err), nil
				}
				result = tokens.Loaded(set)
			} else {
				result = tokens.Fetch(ctx, b.tokens)
			}

			return mcptypes.NewToolResultText(b.assembler.Assemble(selection, result)), nil
		},
	}
}

// ColorResult reports a palette lookup.
type ColorResult struct {
	Hex        string `json:"hex"`
	Name       string `json:"name,omitempty"`
	Background string `json:"background,omitempty"`
	Text       string `json:"text,omitempty"`
	Border     string `json:"border,omitempty"`
}

// LookupColor returns the theme classes for hex; only Hex is set when it is not a theme colour.
func LookupColor(hex string) ColorResult {
	r := ColorResult{Hex: strings.ToLower(strings.TrimSpace(hex))}
	if name := bootstrap.ClassifyColor(hex); name != "" {
		r.Name = name
		r.Background = "bg-" + name
		r.Text = "text-" + name
		r.Border = "border-" + name
	}
	return r
}

func (b ToolBuilder) buildColorTool() mcpserver.ServerTool {
	return mcpserver.ServerTool{
		Tool: mcptypes.NewTool(
			ToolColor,
			mcptypes.WithDescription("Look up the Bootstrap theme colour of a hex value (exact match only)"),
			mcptypes.WithString("hex",
				mcptypes.Required(),
				mcptypes.Description("Hex colour, e.g. #0d6efd"),
			),
		),
		Handler: func(ctx context.Context, req mcptypes.CallToolRequest) (*mcptypes.CallToolResult, error) {
			hex := req.GetString("hex", "")
			if strings.TrimSpace(hex) == "" {
				return mcptypes.NewToolResultError("hex is required"), nil
			}
			return mcptypes.NewToolResultJSON(LookupColor(hex))
		},
	}
}

// InspectResult summarises a shape tree.
type InspectResult struct {
	shape.Stats
	Kinds    map[string]int `json:"kinds"`
	Category string         `json:"category"`
}

// Inspect measures the tree rooted at s.
func Inspect(s *shape.Shape) InspectResult {
	stats := shape.Measure(s)
	return InspectResult{
		Stats:    stats,
		Kinds:    stats.KindCounts(),
		Category: element.Classify(s).String(),
	}
}

func (b ToolBuilder) buildInspectTool() mcpserver.ServerTool {
	return mcpserver.ServerTool{
		Tool: mcptypes.NewTool(
			ToolInspect,
			mcptypes.WithDescription("Report node counts, depth and the root category of a shape tree"),
			shapeParam(),
		),
		Handler: func(ctx context.Context, req mcptypes.CallToolRequest) (*mcptypes.CallToolResult, error) {
			s, err := decodeShape(req.GetString("shape", ""))
			if err != nil {
				return mcptypes.NewToolResultErrorFromErr("cannot read shape", err), nil
			}
			return mcptypes.NewToolResultJSON(Inspect(s))
		},
	}
}

func decodeShape(raw string) (*shape.Shape, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, fmt.Errorf("shape is required")
	}
	var s shape.Shape
	if err := json.Unmarshal([]byte(raw), &s); err != nil {
		return nil, fmt.Errorf("cannot decode shape: %w", err)
	}
	return &s, nil
}

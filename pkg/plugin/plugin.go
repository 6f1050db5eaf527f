// Package plugin reacts to host and UI events by converting the current
// selection and sending the result to the UI peer.
package plugin

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"

	"github.com/mholzen/bootstrapgen/pkg/document"
	"github.com/mholzen/bootstrapgen/pkg/element"
	"github.com/mholzen/bootstrapgen/pkg/formatter"
	"github.com/mholzen/bootstrapgen/pkg/shape"
	"github.com/mholzen/bootstrapgen/pkg/tokens"
)

// Host is the design application: it owns the selection and the design tokens.
type Host interface {
	Selection(ctx context.Context) ([]*shape.Shape, error)
	tokens.Source
}

// Sender delivers messages to the UI peer.
type Sender interface {
	Send(ctx context.Context, msg Message) error
}

// Config holds the plugin's conversion settings
type Config struct {
	Limits   element.Options
	Template document.Template
	// LegacyCodeOutput also sends generated documents as code-output messages
	LegacyCodeOutput bool
}

func DefaultConfig() Config {
	return Config{
		Template:         document.DefaultTemplate(),
		LegacyCodeOutput: true,
	}
}

// Plugin handles events for one host and UI peer pair.
type Plugin struct {
	host      Host
	sender    Sender
	config    Config
	builder   *element.Builder
	preview   formatter.Formatter
	assembler *document.Assembler

	previews    latest
	generations latest
}

func New(host Host, sender Sender, config Config) *Plugin {
	builder := element.NewBuilder(config.Limits)
	return &Plugin{
		host:      host,
		sender:    sender,
		config:    config,
		builder:   builder,
		preview:   formatter.NewDebugFormatter(),
		assembler: document.NewAssembler(builder, config.Template),
	}
}

// HandleEvent dispatches one event. Conversion problems never surface here;
// the returned error is a delivery failure from the Sender.
func (p *Plugin) HandleEvent(ctx context.Context, ev Event) error {
	switch ev.Type {
	case EventReady, EventSelectionChange:
		return p.SendPreview(ctx)
	case EventGenerateCode:
		return p.SendFinalCode(ctx)
	case EventThemeChange:
		return p.SendTheme(ctx, ev.Theme)
	default:
		slog.Debug("ignoring event", "type", ev.Type, "request", RequestID(ctx))
		return nil
	}
}

// SendTheme forwards a theme name to the UI peer.
func (p *Plugin) SendTheme(ctx context.Context, theme string) error {
	return p.sender.Send(ctx, Message{Type: MessageTheme, Content: theme})
}

// SendPreview sends the debug markup of the primary selection. Nothing is sent
// when the selection is empty or a newer preview request has arrived.
func (p *Plugin) SendPreview(ctx context.Context) error {
	return p.previews.run(ctx, "preview", func() (string, bool) {
		return p.Preview(ctx)
	}, func(content string) error {
		return p.sender.Send(ctx, Message{Type: MessageHTML, Content: content})
	})
}

// SendFinalCode generates the full document and sends it, followed by the
// legacy code-output message when enabled. Superseded requests send nothing.
func (p *Plugin) SendFinalCode(ctx context.Context) error {
	return p.generations.run(ctx, "generate", func() (string, bool) {
		return p.GenerateFinalCode(ctx), true
	}, func(code string) error {
		if err := p.sender.Send(ctx, Message{Type: MessageCode, Content: code}); err != nil {
			return err
		}
		if !p.config.LegacyCodeOutput {
			return nil
		}
		return p.sender.Send(ctx, Message{Type: MessageCodeOutput, Content: code})
	})
}

// Preview returns the debug markup of the primary selection. ok is false when
// nothing is selected.
func (p *Plugin) Preview(ctx context.Context) (content string, ok bool) {
	selection := p.selection(ctx)
	if len(selection) == 0 || selection[0] == nil {
		return "", false
	}
	return p.preview.Format(p.builder.Build(selection[0])), true
}

// GenerateFinalCode assembles the standalone document for the current
// selection and design tokens.
func (p *Plugin) GenerateFinalCode(ctx context.Context) string {
	result := tokens.Fetch(ctx, p.host)
	selection := p.selection(ctx)
	slog.Debug("generating document", "request", RequestID(ctx), "selected", len(selection), "tokens", result.Status)
	return p.assembler.Assemble(selection, result)
}

func (p *Plugin) selection(ctx context.Context) []*shape.Shape {
	selection, err := p.host.Selection(ctx)
	if err != nil {
		slog.Warn("cannot read selection, treating it as empty", "error", err, "request", RequestID(ctx))
		return nil
	}
	return selection
}

// latest runs requests one at a time and delivers only the newest one.
type latest struct {
	mu  sync.Mutex
	seq atomic.Uint64
}

func (l *latest) run(ctx context.Context, name string, produce func() (string, bool), deliver func(string) error) error {
	id := l.seq.Add(1)

	l.mu.Lock()
	defer l.mu.Unlock()

	if l.seq.Load() != id {
		slog.Debug("request superseded before start", "kind", name, "request", RequestID(ctx))
		return nil
	}
	out, ok := produce()
	if !ok {
		return nil
	}
	if l.seq.Load() != id {
		slog.Debug("request superseded, dropping result", "kind", name, "request", RequestID(ctx))
		return nil
	}
	return deliver(out)
}

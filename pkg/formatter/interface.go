// Package formatter serializes element trees to markup.
package formatter

import (
	"fmt"
	"strings"

	"github.com/mholzen/bootstrapgen/pkg/element"
)

// Mode selects a serialization
type Mode string

const (
	ModeDebug Mode = "debug"
	ModeHTML  Mode = "html"
)

// Formatter defines the interface for converting element trees to strings
type Formatter interface {
	// Format renders the tree rooted at el. A nil element renders as "".
	Format(el *element.Element) string
}

// Config holds the debug formatter's markers
type Config struct {
	// Indent is added once per nesting level
	Indent string
	// LineBreak separates children
	LineBreak string
	// TagPrefix starts every opening tag
	TagPrefix string
}

// DefaultConfig returns the preview markers: non-breaking spaces, <br/> line
// breaks and a newline plus four spaces before each opening tag
func DefaultConfig() *Config {
	return &Config{
		Indent:    "&nbsp;&nbsp;",
		LineBreak: "<br/>",
		TagPrefix: "\n    ",
	}
}

// ParseMode validates a mode name
func ParseMode(s string) (Mode, error) {
	switch m := Mode(strings.ToLower(strings.TrimSpace(s))); m {
	case ModeDebug, ModeHTML:
		return m, nil
	default:
		return "", fmt.Errorf("unknown format: '%s' (use debug or html)", s)
	}
}

// New returns the formatter for mode
func New(mode Mode) (Formatter, error) {
	switch mode {
	case ModeDebug:
		return NewDebugFormatter(), nil
	case ModeHTML:
		return NewHTMLFormatter(), nil
	default:
		return nil, fmt.Errorf("unknown format: '%s'", mode)
	}
}

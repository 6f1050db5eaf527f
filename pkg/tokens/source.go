package tokens

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"os"
	"strings"

	"github.com/mholzen/bootstrapgen/pkg/client"
)

// Source supplies design tokens on request.
type Source interface {
	DesignTokens(ctx context.Context) (*Set, error)
}

// SourceFunc adapts a function to Source.
type SourceFunc func(ctx context.Context) (*Set, error)

func (f SourceFunc) DesignTokens(ctx context.Context) (*Set, error) {
	return f(ctx)
}

// Static always returns the same set.
type Static struct {
	Set *Set
}

func (s Static) DesignTokens(context.Context) (*Set, error) {
	return s.Set, nil
}

// FileSource reads a JSON token file on every request.
type FileSource struct {
	Path string
}

func (s FileSource) DesignTokens(ctx context.Context) (*Set, error) {
	slog.Debug("reading design tokens", "file", s.Path)
	f, err := os.Open(s.Path)
	if err != nil {
		return nil, fmt.Errorf("cannot open design tokens (file='%s'): %w", s.Path, err)
	}
	defer f.Close()
	return Decode(f)
}

// HTTPSource fetches a JSON token document from a URL.
type HTTPSource struct {
	client *client.Client
	path   string
}

// NewHTTPSource splits rawURL into the client's base URL and a request path.
func NewHTTPSource(rawURL string, opts ...client.Option) (*HTTPSource, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("cannot parse design token URL: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("unsupported design token URL scheme: '%s'", u.Scheme)
	}
	path := u.EscapedPath()
	if u.RawQuery != "" {
		path += "?" + u.RawQuery
	}
	base := u.Scheme + "://" + u.Host
	return &HTTPSource{client: client.New(base, opts...), path: path}, nil
}

func (s *HTTPSource) DesignTokens(ctx context.Context) (*Set, error) {
	slog.Debug("fetching design tokens", "url", s.client.BaseURL()+s.path)
	var set Set
	if err := s.client.Get(ctx, s.path, &set); err != nil {
		return nil, fmt.Errorf("cannot fetch design tokens: %w", err)
	}
	return &set, nil
}

// ParseSource returns an HTTPSource for http(s) URLs and a FileSource
// otherwise. An empty location means no source.
func ParseSource(location string, opts ...client.Option) (Source, error) {
	location = strings.TrimSpace(location)
	switch {
	case location == "":
		return nil, nil
	case strings.HasPrefix(location, "http://"), strings.HasPrefix(location, "https://"):
		src, err := NewHTTPSource(location, opts...)
		if err != nil {
			return nil, err
		}
		return src, nil
	default:
		return FileSource{Path: location}, nil
	}
}

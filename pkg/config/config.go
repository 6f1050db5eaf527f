// Package config loads bootstrapgen.toml.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"

	"github.com/mholzen/bootstrapgen/pkg/bridge"
	"github.com/mholzen/bootstrapgen/pkg/client"
	"github.com/mholzen/bootstrapgen/pkg/document"
	"github.com/mholzen/bootstrapgen/pkg/element"
	"github.com/mholzen/bootstrapgen/pkg/plugin"
	"github.com/mholzen/bootstrapgen/pkg/tokens"
)

// DefaultFile is read from the working directory when no path is given.
const DefaultFile = "bootstrapgen.toml"

// Config represents the bootstrapgen.toml configuration file
type Config struct {
	Document DocumentConfig `toml:"document"`
	Images   ImagesConfig   `toml:"images"`
	Limits   LimitsConfig   `toml:"limits"`
	Plugin   PluginConfig   `toml:"plugin"`
	Serve    ServeConfig    `toml:"serve"`
	Tokens   TokensConfig   `toml:"tokens"`
}

type DocumentConfig struct {
	Title            string `toml:"title"`
	BootstrapVersion string `toml:"bootstrap_version"`
	// Explicit asset URLs override the CDN URLs derived from the version
	CSSURL string `toml:"css_url"`
	JSURL  string `toml:"js_url"`
}

type ImagesConfig struct {
	// Printf template receiving the rounded width and height
	PlaceholderURL string `toml:"placeholder_url"`
}

// LimitsConfig bounds shape tree conversion; 0 means unlimited
type LimitsConfig struct {
	MaxDepth int `toml:"max_depth"`
	MaxNodes int `toml:"max_nodes"`
}

type PluginConfig struct {
	LegacyCodeOutput bool `toml:"legacy_code_output"`
}

type ServeConfig struct {
	Addr string `toml:"addr"`
}

type TokensConfig struct {
	// File path or http(s) URL of a design token document
	Source string `toml:"source"`
	// Environment variable holding a bearer token for URL sources
	BearerTokenEnv string `toml:"bearer_token_env"`
	TimeoutSeconds int    `toml:"timeout_seconds"`
}

// Default returns the built-in configuration
func Default() Config {
	return Config{
		Document: DocumentConfig{
			Title:            document.DefaultTitle,
			BootstrapVersion: document.DefaultBootstrapVersion,
		},
		Images: ImagesConfig{
			PlaceholderURL: element.DefaultImageURL,
		},
		Plugin: PluginConfig{
			LegacyCodeOutput: true,
		},
		Serve: ServeConfig{
			Addr: bridge.DefaultAddr,
		},
		Tokens: TokensConfig{
			TimeoutSeconds: 10,
		},
	}
}

// Load reads path over the defaults. An empty path reads DefaultFile when it
// exists and returns the defaults otherwise; an explicit path must exist.
func Load(path string) (Config, error) {
	config := Default()

	explicit := path != ""
	if !explicit {
		path = DefaultFile
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			slog.Debug("no config file, using defaults", "file", path)
			return config, nil
		}
		return config, fmt.Errorf("cannot read config file (file='%s'): %w", path, err)
	}

	if err := toml.Unmarshal(data, &config); err != nil {
		return config, fmt.Errorf("cannot parse config file (file='%s'): %w", path, err)
	}
	if err := config.Validate(); err != nil {
		return config, fmt.Errorf("invalid config file (file='%s'): %w", path, err)
	}
	slog.Debug("loaded config", "file", path)
	return config, nil
}

// Save writes the configuration as TOML
func Save(path string, config Config) error {
	data, err := toml.Marshal(config)
	if err != nil {
		return fmt.Errorf("cannot marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("cannot write config file (file='%s'): %w", path, err)
	}
	return nil
}

func (c Config) Validate() error {
	if c.Limits.MaxDepth < 0 {
		return fmt.Errorf("limits.max_depth must not be negative")
	}
	if c.Limits.MaxNodes < 0 {
		return fmt.Errorf("limits.max_nodes must not be negative")
	}
	if c.Tokens.TimeoutSeconds < 0 {
		return fmt.Errorf("tokens.timeout_seconds must not be negative")
	}
	if u := c.Images.PlaceholderURL; u != "" && strings.Count(u, "%d") != 2 {
		return fmt.Errorf("images.placeholder_url needs two %%d verbs: '%s'", u)
	}
	return nil
}

func (c Config) ElementOptions() element.Options {
	return element.Options{
		MaxDepth: c.Limits.MaxDepth,
		MaxNodes: c.Limits.MaxNodes,
		ImageURL: c.Images.PlaceholderURL,
	}
}

func (c Config) Template() document.Template {
	return document.Template{
		Title:            c.Document.Title,
		BootstrapVersion: c.Document.BootstrapVersion,
		CSSURL:           c.Document.CSSURL,
		JSURL:            c.Document.JSURL,
	}
}

func (c Config) PluginConfig() plugin.Config {
	return plugin.Config{
		Limits:           c.ElementOptions(),
		Template:         c.Template(),
		LegacyCodeOutput: c.Plugin.LegacyCodeOutput,
	}
}

// TokenSource builds the configured design token source, or nil when none is set.
func (c Config) TokenSource() (tokens.Source, error) {
	var opts []client.Option
	if c.Tokens.TimeoutSeconds > 0 {
		opts = append(opts, client.WithTimeout(time.Duration(c.Tokens.TimeoutSeconds)*time.Second))
	}
	if env := c.Tokens.BearerTokenEnv; env != "" {
		if token := strings.TrimSpace(os.Getenv(env)); token != "" {
			slog.Debug("using bearer token from environment", "variable", env)
			opts = append(opts, client.WithBearerToken(token))
		}
	}
	return tokens.ParseSource(c.Tokens.Source, opts...)
}

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/mholzen/bootstrapgen/pkg/bridge"
	"github.com/mholzen/bootstrapgen/pkg/element"
	"github.com/mholzen/bootstrapgen/pkg/tokens"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func write(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "bootstrapgen.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	path := write(t, `
[document]
title = "Export"
bootstrap_version = "5.2.0"

[limits]
max_depth = 32

[plugin]
legacy_code_output = false

[tokens]
source = "tokens.json"
`)

	cfg, err := Load(path)

	require.NoError(t, err)
	assert.Equal(t, "Export", cfg.Document.Title)
	assert.Equal(t, "5.2.0", cfg.Document.BootstrapVersion)
	assert.Equal(t, 32, cfg.Limits.MaxDepth)
	assert.Equal(t, 0, cfg.Limits.MaxNodes)
	assert.False(t, cfg.Plugin.LegacyCodeOutput)
	assert.Equal(t, bridge.DefaultAddr, cfg.Serve.Addr)
	assert.Equal(t, element.DefaultImageURL, cfg.Images.PlaceholderURL)

	src, err := cfg.TokenSource()
	require.NoError(t, err)
	assert.Equal(t, tokens.FileSource{Path: "tokens.json"}, src)
}

func TestLoad_DefaultFileMissing(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := Load("")

	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_ExplicitFileMissing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	assert.ErrorContains(t, err, "cannot read config file")
}

func TestLoad_Invalid(t *testing.T) {
	tests := map[string]string{
		"syntax":          "[limits\nmax_depth = 1",
		"negative depth":  "[limits]\nmax_depth = -1",
		"negative nodes":  "[limits]\nmax_nodes = -5",
		"bad placeholder": "[images]\nplaceholder_url = \"https://img.test/%d\"",
	}
	for name, content := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := Load(write(t, content))
			assert.Error(t, err)
		})
	}
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.toml")
	cfg := Default()
	cfg.Limits.MaxNodes = 1000
	cfg.Tokens.Source = "https://tokens.test/doc"

	require.NoError(t, Save(path, cfg))
	loaded, err := Load(path)

	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestDerivedSettings(t *testing.T) {
	cfg := Default()
	cfg.Limits = LimitsConfig{MaxDepth: 4, MaxNodes: 50}
	cfg.Document.CSSURL = "/bootstrap.css"

	pc := cfg.PluginConfig()

	assert.Equal(t, element.Options{MaxDepth: 4, MaxNodes: 50, ImageURL: element.DefaultImageURL}, pc.Limits)
	assert.Equal(t, "/bootstrap.css", pc.Template.CSSURL)
	assert.True(t, pc.LegacyCodeOutput)
}

func TestTokenSource_None(t *testing.T) {
	src, err := Default().TokenSource()
	assert.NoError(t, err)
	assert.Nil(t, src)
}

package mcp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseExposeList(t *testing.T) {
	tests := []struct {
		raw     string
		want    []string
		wantErr bool
	}{
		{raw: "", want: allTools},
		{raw: "all", want: allTools},
		{raw: "convert", want: []string{ToolPreview, ToolHTML, ToolGenerate}},
		{raw: "inspect", want: []string{ToolColor, ToolInspect}},
		{raw: "html, color", want: []string{ToolHTML, ToolColor}},
		{raw: "HTML,bootstrap_html,convert", want: []string{ToolHTML, ToolPreview, ToolGenerate}},
		{raw: "colour,stats", want: []string{ToolColor, ToolInspect}},
		{raw: "write", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := ParseExposeList(tt.raw)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewServer(t *testing.T) {
	server, err := NewServer(Config{Expose: "convert", Version: "test"})
	require.NoError(t, err)
	assert.NotNil(t, server)

	_, err = NewServer(Config{Expose: "nope"})
	assert.Error(t, err)
}

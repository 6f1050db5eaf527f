// Package bootstrap maps visual shape properties to Bootstrap 5 utility classes.
package bootstrap

import (
	"log/slog"
	"strings"
)

// PaletteEntry pairs a lower-case hex colour with a Bootstrap theme colour name.
type PaletteEntry struct {
	Hex  string
	Name string
}

// Collision records a palette entry that replaced an earlier one with the same hex.
type Collision struct {
	Hex      string
	Replaced string
	Winner   string
}

// DefaultPalette lists the theme colours in insertion order. "muted" shares its
// hex with "secondary" and, coming later, wins the lookup.
var DefaultPalette = []PaletteEntry{
	{"#0d6efd", "primary"},
	{"#6c757d", "secondary"},
	{"#198754", "success"},
	{"#dc3545", "danger"},
	{"#ffc107", "warning"},
	{"#0dcaf0", "info"},
	{"#f8f9fa", "light"},
	{"#212529", "dark"},
	{"#6c757d", "muted"},
}

// Palette is an exact-match hex lookup.
type Palette struct {
	byHex      map[string]string
	collisions []Collision
}

// NewPalette folds entries left to right; later entries win on a shared hex.
func NewPalette(entries []PaletteEntry) *Palette {
	p := &Palette{byHex: make(map[string]string, len(entries))}
	for _, e := range entries {
		hex := strings.ToLower(strings.TrimSpace(e.Hex))
		if previous, ok := p.byHex[hex]; ok && previous != e.Name {
			p.collisions = append(p.collisions, Collision{Hex: hex, Replaced: previous, Winner: e.Name})
		}
		p.byHex[hex] = e.Name
	}
	return p
}

var defaultPalette = NewPalette(DefaultPalette)

// Name returns the theme colour name for hex, or "" when there is no exact match.
func (p *Palette) Name(hex string) string {
	if hex == "" {
		return ""
	}
	name, ok := p.byHex[strings.ToLower(strings.TrimSpace(hex))]
	if !ok {
		slog.Debug("colour has no theme class", "hex", hex)
		return ""
	}
	return name
}

// Collisions returns the entries that were overwritten while building the palette.
func (p *Palette) Collisions() []Collision {
	return append([]Collision(nil), p.collisions...)
}

// ClassifyColor looks hex up in the default palette.
func ClassifyColor(hex string) string {
	return defaultPalette.Name(hex)
}

// PaletteCollisions reports the default palette's overwritten entries.
func PaletteCollisions() []Collision {
	return defaultPalette.Collisions()
}

// Package tokens reads the host's design tokens.
package tokens

import (
	"encoding/json"
	"fmt"
	"io"
	"regexp"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Token is a named design value. Colour values are normally strings;
// typography values are often objects.
type Token struct {
	Name  string `json:"name"`
	Value any    `json:"value"`
}

// Set is the subset of a design-token library that the stylesheet uses.
type Set struct {
	Color      []Token `json:"color,omitempty"`
	Typography []Token `json:"typography,omitempty"`
}

func (s *Set) IsEmpty() bool {
	return s == nil || (len(s.Color) == 0 && len(s.Typography) == 0)
}

var whitespace = regexp.MustCompile(`[\s\p{Z}]+`)

var lower = cases.Lower(language.Und)

// Slug lower-cases name and replaces every whitespace run with a hyphen.
func Slug(name string) string {
	return whitespace.ReplaceAllString(lower.String(name), "-")
}

// ValueString renders a token value for a CSS custom property: strings as
// they are, anything else as JSON.
func ValueString(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprint(v)
	}
	return string(b)
}

// Decode reads a token set from JSON.
func Decode(r io.Reader) (*Set, error) {
	var set Set
	if err := json.NewDecoder(r).Decode(&set); err != nil {
		if err == io.EOF {
			return &set, nil
		}
		return nil, fmt.Errorf("cannot decode design tokens: %w", err)
	}
	return &set, nil
}

// Package shape models the host design tool's scene graph as it arrives on the
// wire, and provides the read-only queries the converters need.
package shape

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
)

// Shape is a node of the host's scene graph. It is owned by the host and never
// mutated by this module.
type Shape struct {
	ID   string `json:"id,omitempty"`
	Name string `json:"name,omitempty"`
	Type string `json:"type"`

	Width  float64 `json:"width,omitempty"`
	Height float64 `json:"height,omitempty"`

	Fills        []Fill   `json:"fills,omitempty"`
	Strokes      []Stroke `json:"strokes,omitempty"`
	Shadows      []Shadow `json:"shadows,omitempty"`
	BorderRadius *Number  `json:"borderRadius,omitempty"`
	Padding      Number   `json:"padding,omitempty"`

	Flex *FlexLayout `json:"flex,omitempty"`
	Grid *GridLayout `json:"grid,omitempty"`

	Characters *string `json:"characters,omitempty"`
	Content    *string `json:"content,omitempty"`
	FontSize   Number  `json:"fontSize,omitempty"`
	FontWeight Weight  `json:"fontWeight,omitempty"`
	FontStyle  string  `json:"fontStyle,omitempty"`
	Align      string  `json:"align,omitempty"`
	TextAlign  string  `json:"textAlign,omitempty"`

	Visible *bool `json:"visible,omitempty"`

	// Children is nil when the host sent no children attribute at all, which
	// is different from an empty list for the vector-graphic test.
	Children []*Shape `json:"children,omitempty"`
}

// Fill is one entry of a shape's fill list. At most one of the colour,
// gradient or image forms is normally set.
type Fill struct {
	FillColor         string  `json:"fillColor,omitempty"`
	FillColorHex      string  `json:"fillColorHex,omitempty"`
	FillColorHex8     string  `json:"fillColorHex8,omitempty"`
	Fill              string  `json:"fill,omitempty"`
	FillOpacity       *Number `json:"fillOpacity,omitempty"`
	FillColorGradient any     `json:"fillColorGradient,omitempty"`
	FillImage         any     `json:"fillImage,omitempty"`
}

// Stroke is one entry of a shape's stroke list.
type Stroke struct {
	StrokeWidth Number `json:"strokeWidth,omitempty"`
	StrokeColor string `json:"strokeColor,omitempty"`
}

// Shadow is one entry of a shape's shadow list.
type Shadow struct {
	Blur Number `json:"blur,omitempty"`
}

// FlexLayout is the host's flex layout descriptor.
type FlexLayout struct {
	Dir  string `json:"dir,omitempty"`
	Wrap string `json:"wrap,omitempty"`
}

// GridLayout is the host's grid layout descriptor. Only its presence matters.
type GridLayout struct {
	Rows    []any `json:"rows,omitempty"`
	Columns []any `json:"columns,omitempty"`
}

func (s *Shape) Kind() Kind {
	return ParseKind(s.Type)
}

// IsVisible is true unless the host explicitly hid the shape.
func (s *Shape) IsVisible() bool {
	return s.Visible == nil || *s.Visible
}

// HasChildren reports whether the host sent a children attribute, even an empty one.
func (s *Shape) HasChildren() bool {
	return s.Children != nil
}

// VisibleChildren returns the children that take part in conversion, in host order.
func (s *Shape) VisibleChildren() []*Shape {
	visible := make([]*Shape, 0, len(s.Children))
	for _, child := range s.Children {
		if child != nil && child.IsVisible() {
			visible = append(visible, child)
		}
	}
	return visible
}

// Text returns the text content, preferring characters over content.
func (s *Shape) Text() string {
	if s.Characters != nil {
		return *s.Characters
	}
	if s.Content != nil {
		return *s.Content
	}
	return ""
}

// Alignment returns the declared horizontal text alignment from either attribute name.
func (s *Shape) Alignment() string {
	if s.Align != "" {
		return s.Align
	}
	return s.TextAlign
}

// HasLayout reports whether the shape lays out its children with flex or grid.
func (s *Shape) HasLayout() bool {
	return s.Flex != nil || s.Grid != nil
}

// FirstFill returns the first fill, or nil when the shape has none.
func (s *Shape) FirstFill() *Fill {
	if len(s.Fills) == 0 {
		return nil
	}
	return &s.Fills[0]
}

// FirstFillIsImage reports whether the first fill references an image.
func (s *Shape) FirstFillIsImage() bool {
	f := s.FirstFill()
	return f != nil && f.IsImage()
}

// IsVectorGraphic reports whether the shape can be emitted as a single vector
// graphic. A shape without a children list never is; a shape with one is when
// every visible child is, so a container with no visible children qualifies.
func (s *Shape) IsVectorGraphic() bool {
	if !s.HasChildren() {
		return false
	}
	for _, child := range s.VisibleChildren() {
		if !child.IsVectorGraphic() {
			return false
		}
	}
	return true
}

// Color returns the first solid colour attribute of the fill, in host precedence order.
func (f *Fill) Color() string {
	for _, c := range []string{f.FillColor, f.FillColorHex, f.FillColorHex8, f.Fill} {
		if c != "" {
			return c
		}
	}
	return ""
}

// TextColor returns the colour used for text: only fillColor and fillColorHex count.
func (f *Fill) TextColor() string {
	if f.FillColor != "" {
		return f.FillColor
	}
	return f.FillColorHex
}

func (f *Fill) IsGradient() bool {
	return f.FillColorGradient != nil
}

func (f *Fill) IsImage() bool {
	return f.FillImage != nil
}

// Decode reads a single shape from JSON.
func Decode(r io.Reader) (*Shape, error) {
	var s Shape
	if err := json.NewDecoder(r).Decode(&s); err != nil {
		return nil, fmt.Errorf("cannot decode shape: %w", err)
	}
	return &s, nil
}

// DecodeSelection reads a selection: either a JSON array of shapes or a single
// shape object, which becomes a one-element selection.
func DecodeSelection(r io.Reader) ([]*Shape, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("cannot read selection: %w", err)
	}
	trimmed := strings.TrimSpace(string(data))
	if trimmed == "" {
		return nil, nil
	}

	if strings.HasPrefix(trimmed, "[") {
		var selection []*Shape
		if err := json.Unmarshal([]byte(trimmed), &selection); err != nil {
			return nil, fmt.Errorf("cannot decode selection: %w", err)
		}
		return selection, nil
	}

	single, err := Decode(strings.NewReader(trimmed))
	if err != nil {
		return nil, err
	}
	return []*Shape{single}, nil
}

package bootstrap

import (
	"strings"

	"github.com/mholzen/bootstrapgen/pkg/shape"
)

var alignClasses = map[string]string{
	"left":   "text-start",
	"center": "text-center",
	"right":  "text-end",
}

// BackgroundClasses inspects the first fill only. Gradient and image fills
// produce no class.
func BackgroundClasses(s *shape.Shape) []string {
	fill := s.FirstFill()
	if fill == nil || fill.IsGradient() {
		return nil
	}
	if name := ClassifyColor(fill.Color()); name != "" {
		return []string{"bg-" + name}
	}
	return nil
}

// BorderClasses emits the width class, then the colour class when the colour is
// a theme colour.
func BorderClasses(stroke *shape.Stroke) []string {
	if stroke == nil {
		return nil
	}
	var classes []string
	if c := BorderWidthClass(stroke.StrokeWidth); c != "" {
		classes = append(classes, c)
	}
	if name := ClassifyColor(stroke.StrokeColor); name != "" {
		classes = append(classes, "border-"+name)
	}
	return classes
}

// StrokeClasses applies BorderClasses to the shape's first stroke.
func StrokeClasses(s *shape.Shape) []string {
	if len(s.Strokes) == 0 {
		return nil
	}
	return BorderClasses(&s.Strokes[0])
}

// RadiusClasses returns the rounding class for the shape's corner radius.
func RadiusClasses(s *shape.Shape) []string {
	if c := RadiusClass(s.BorderRadius, s.Width, s.Height); c != "" {
		return []string{c}
	}
	return nil
}

// ShadowClasses consults the first shadow's blur.
func ShadowClasses(s *shape.Shape) []string {
	if len(s.Shadows) == 0 {
		return nil
	}
	return []string{ShadowClass(s.Shadows[0].Blur)}
}

// Typography is the result of converting a text shape's type settings.
type Typography struct {
	Classes []string
	// Style carries the inline colour declaration used when the text colour
	// is not a theme colour.
	Style string
}

// TypographyClasses converts style, weight, size, alignment and colour, in that order.
func TypographyClasses(s *shape.Shape) Typography {
	var t Typography
	if s.FontStyle == "italic" {
		t.Classes = append(t.Classes, "fst-italic")
	}
	if c := FontWeightClass(s.FontWeight); c != "" {
		t.Classes = append(t.Classes, c)
	}
	if c := FontSizeClass(s.FontSize); c != "" {
		t.Classes = append(t.Classes, c)
	}
	if c, ok := alignClasses[s.Alignment()]; ok {
		t.Classes = append(t.Classes, c)
	}

	hex := textColor(s.Fills)
	if hex == "" {
		return t
	}
	if name := ClassifyColor(hex); name != "" {
		t.Classes = append(t.Classes, "text-"+name)
	} else {
		t.Style = "color: " + hex + ";"
	}
	return t
}

func textColor(fills []shape.Fill) string {
	for i := range fills {
		if c := fills[i].TextColor(); c != "" {
			return strings.ToLower(c)
		}
	}
	return ""
}

// LayoutClasses turns a container into a flex container or a plain Bootstrap
// container, and adds its padding step.
func LayoutClasses(s *shape.Shape) []string {
	var classes []string
	if s.Flex != nil {
		classes = append(classes, "d-flex")
		if s.Flex.Dir == "column" {
			classes = append(classes, "flex-column")
		}
		if s.Flex.Wrap == "wrap" {
			classes = append(classes, "flex-wrap")
		}
	} else {
		classes = append(classes, "container")
	}
	if !s.Padding.IsZero() {
		if c := SpacingClass(SpacingPadding, s.Padding); c != "" {
			classes = append(classes, c)
		}
	}
	return classes
}

// DecorationClasses returns background, border, radius and shadow classes in that order.
func DecorationClasses(s *shape.Shape, withBackground bool) []string {
	var classes []string
	if withBackground {
		classes = append(classes, BackgroundClasses(s)...)
	}
	classes = append(classes, StrokeClasses(s)...)
	classes = append(classes, RadiusClasses(s)...)
	classes = append(classes, ShadowClasses(s)...)
	return classes
}

package bootstrap

import (
	"math"

	"github.com/mholzen/bootstrapgen/pkg/shape"
)

// Spacing prefixes accepted by SpacingClass.
const (
	SpacingPadding = "p"
	SpacingMargin  = "m"
	SpacingGap     = "gap"
)

// FontSizeClass maps a pixel font size to fs-1 (largest) .. fs-6.
// Zero means unspecified and yields no class.
func FontSizeClass(size shape.Number) string {
	if size.IsZero() {
		return ""
	}
	switch v := size.Float(); {
	case v >= 48:
		return "fs-1"
	case v >= 36:
		return "fs-2"
	case v >= 28:
		return "fs-3"
	case v >= 20:
		return "fs-4"
	case v >= 16:
		return "fs-5"
	default:
		return "fs-6"
	}
}

// FontWeightClass maps the integer part of a font weight to fw-bold, fw-semibold or fw-normal.
func FontWeightClass(weight shape.Weight) string {
	if !weight.Declared {
		return ""
	}
	w := math.Trunc(weight.Value.Float())
	switch {
	case w >= 700:
		return "fw-bold"
	case w >= 600:
		return "fw-semibold"
	default:
		return "fw-normal"
	}
}

// SpacingClass maps pixels to the 0-5 spacing scale: clamp(round(px/8), 0, 5).
func SpacingClass(prefix string, px shape.Number) string {
	if px.IsNaN() {
		return ""
	}
	step := shape.Round(px.Float() / 8)
	step = math.Max(0, math.Min(5, step))
	return prefix + "-" + shape.Number(step).Format()
}

// BorderWidthClass passes the stroke width straight through, so widths outside
// Bootstrap's border-0..border-5 produce classes the stylesheet does not define.
func BorderWidthClass(width shape.Number) string {
	if width.IsZero() || width.IsNaN() {
		return ""
	}
	return "border-" + width.Format()
}

// ShadowClass maps a shadow blur to shadow-sm, shadow or shadow-lg.
func ShadowClass(blur shape.Number) string {
	b := blur.Float()
	switch {
	case b > 20:
		return "shadow-lg"
	case b > 6:
		return "shadow"
	default:
		return "shadow-sm"
	}
}

// RadiusClass maps a declared corner radius to rounded-circle when it covers
// the shorter side, rounded from 12px up, and nothing otherwise. A zero radius
// covers a shape without width or height.
func RadiusClass(radius *shape.Number, width, height float64) string {
	if radius == nil || radius.IsNaN() {
		return ""
	}
	r := radius.Float()
	if r >= math.Min(width, height) {
		return "rounded-circle"
	}
	if r >= 12 {
		return "rounded"
	}
	return ""
}

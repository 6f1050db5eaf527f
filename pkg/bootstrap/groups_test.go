package bootstrap

import (
	"strings"
	"testing"

	"github.com/mholzen/bootstrapgen/pkg/shape"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBackgroundClasses(t *testing.T) {
	tests := []struct {
		name  string
		shape *shape.Shape
		want  []string
	}{
		{
			name:  "no fills",
			shape: &shape.Shape{Type: "rect"},
			want:  nil,
		},
		{
			name:  "theme colour",
			shape: &shape.Shape{Type: "rect", Fills: []shape.Fill{{FillColor: "#198754"}}},
			want:  []string{"bg-success"},
		},
		{
			name:  "hex field",
			shape: &shape.Shape{Type: "rect", Fills: []shape.Fill{{FillColorHex: "#DC3545"}}},
			want:  []string{"bg-danger"},
		},
		{
			name:  "custom colour",
			shape: &shape.Shape{Type: "rect", Fills: []shape.Fill{{FillColor: "#123456"}}},
			want:  nil,
		},
		{
			name: "gradient first",
			shape: &shape.Shape{Type: "rect", Fills: []shape.Fill{
				{FillColor: "#0d6efd", FillColorGradient: map[string]any{"type": "linear"}},
			}},
			want: nil,
		},
		{
			name: "only first fill counts",
			shape: &shape.Shape{Type: "rect", Fills: []shape.Fill{
				{FillColor: "#123456"},
				{FillColor: "#0d6efd"},
			}},
			want: nil,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, BackgroundClasses(tt.shape))
		})
	}
}

func TestBorderClasses(t *testing.T) {
	assert.Nil(t, BorderClasses(nil))
	assert.Equal(t, []string{"border-2", "border-primary"}, BorderClasses(&shape.Stroke{StrokeWidth: 2, StrokeColor: "#0d6efd"}))
	assert.Equal(t, []string{"border-3"}, BorderClasses(&shape.Stroke{StrokeWidth: 3, StrokeColor: "#abcdef"}))
	assert.Equal(t, []string{"border-dark"}, BorderClasses(&shape.Stroke{StrokeColor: "#212529"}))
}

func TestStrokeClasses_FirstStrokeOnly(t *testing.T) {
	s := &shape.Shape{Strokes: []shape.Stroke{
		{StrokeWidth: 1},
		{StrokeWidth: 4, StrokeColor: "#0d6efd"},
	}}
	assert.Equal(t, []string{"border-1"}, StrokeClasses(s))
}

func TestTypographyClasses(t *testing.T) {
	hi := "Hi"
	s := &shape.Shape{
		Type:       "text",
		FontSize:   50,
		FontWeight: shape.NewWeight(800),
		Align:      "center",
		Characters: &hi,
		Fills:      []shape.Fill{{FillColor: "#0d6efd"}},
	}

	got := TypographyClasses(s)

	assert.Equal(t, []string{"fw-bold", "fs-1", "text-center", "text-primary"}, got.Classes)
	assert.Empty(t, got.Style)
}

func TestTypographyClasses_InlineColourFallback(t *testing.T) {
	s := &shape.Shape{
		Type:      "text",
		FontStyle: "italic",
		TextAlign: "right",
		Fills:     []shape.Fill{{FillImage: map[string]any{}}, {FillColorHex: "#ABCDEF"}},
	}

	got := TypographyClasses(s)

	assert.Equal(t, []string{"fst-italic", "text-end"}, got.Classes)
	assert.Equal(t, "color: #abcdef;", got.Style)
}

func TestTypographyClasses_StringWeightZero(t *testing.T) {
	s, err := shape.Decode(strings.NewReader(`{"type":"text","fontWeight":"0"}`))
	require.NoError(t, err)
	assert.Equal(t, []string{"fw-normal"}, TypographyClasses(s).Classes)

	s, err = shape.Decode(strings.NewReader(`{"type":"text","fontWeight":0}`))
	require.NoError(t, err)
	assert.Empty(t, TypographyClasses(s).Classes)
}

func TestRadiusClasses_ZeroRadiusWithoutSize(t *testing.T) {
	s, err := shape.Decode(strings.NewReader(`{"type":"rect","borderRadius":0}`))
	require.NoError(t, err)
	assert.Equal(t, []string{"rounded-circle"}, RadiusClasses(s))

	s, err = shape.Decode(strings.NewReader(`{"type":"rect","borderRadius":0,"width":40,"height":40}`))
	require.NoError(t, err)
	assert.Empty(t, RadiusClasses(s))
}

func TestTypographyClasses_IgnoresUnknownAlignment(t *testing.T) {
	got := TypographyClasses(&shape.Shape{Type: "text", Align: "justify"})
	assert.Empty(t, got.Classes)
}

func TestLayoutClasses(t *testing.T) {
	tests := []struct {
		name  string
		shape *shape.Shape
		want  []string
	}{
		{
			name:  "block container",
			shape: &shape.Shape{Type: "board"},
			want:  []string{"container"},
		},
		{
			name:  "flex row",
			shape: &shape.Shape{Type: "board", Flex: &shape.FlexLayout{}},
			want:  []string{"d-flex"},
		},
		{
			name:  "flex column wrap with padding",
			shape: &shape.Shape{Type: "board", Flex: &shape.FlexLayout{Dir: "column", Wrap: "wrap"}, Padding: 16},
			want:  []string{"d-flex", "flex-column", "flex-wrap", "p-2"},
		},
		{
			name:  "grid stays a container",
			shape: &shape.Shape{Type: "board", Grid: &shape.GridLayout{}, Padding: 40},
			want:  []string{"container", "p-5"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, LayoutClasses(tt.shape))
		})
	}
}

func TestDecorationClasses_Order(t *testing.T) {
	s := &shape.Shape{
		Type:         "rect",
		Width:        100,
		Height:       40,
		Fills:        []shape.Fill{{FillColor: "#f8f9fa"}},
		Strokes:      []shape.Stroke{{StrokeWidth: 1, StrokeColor: "#6c757d"}},
		BorderRadius: numPtr(12),
		Shadows:      []shape.Shadow{{Blur: 10}},
	}

	assert.Equal(t, []string{"bg-light", "border-1", "border-muted", "rounded", "shadow"}, DecorationClasses(s, true))
	assert.Equal(t, []string{"border-1", "border-muted", "rounded", "shadow"}, DecorationClasses(s, false))
}

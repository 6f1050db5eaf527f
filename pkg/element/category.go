package element

import "github.com/mholzen/bootstrapgen/pkg/shape"

// Category is the structural role a shape takes in the markup.
type Category int

const (
	CategoryPlain Category = iota
	CategoryText
	CategoryContainer
	CategoryCircle
	CategoryVector
	CategoryImage
)

func (c Category) String() string {
	switch c {
	case CategoryText:
		return "text"
	case CategoryContainer:
		return "container"
	case CategoryCircle:
		return "circle"
	case CategoryVector:
		return "vector"
	case CategoryImage:
		return "image"
	default:
		return "plain"
	}
}

// Classify picks the category in priority order: text, container, circle,
// vector group, image fill, then plain.
func Classify(s *shape.Shape) Category {
	switch kind := s.Kind(); kind {
	case shape.KindText:
		return CategoryText
	case shape.KindBoard:
		return CategoryContainer
	case shape.KindEllipse:
		return CategoryCircle
	case shape.KindGroup:
		if s.IsVectorGraphic() {
			return CategoryVector
		}
		return imageOrPlain(s)
	case shape.KindRect, shape.KindPath, shape.KindBool, shape.KindImage, shape.KindSVGRaw, shape.KindUnknown:
		return imageOrPlain(s)
	default:
		return imageOrPlain(s)
	}
}

func imageOrPlain(s *shape.Shape) Category {
	if s.FirstFillIsImage() {
		return CategoryImage
	}
	return CategoryPlain
}

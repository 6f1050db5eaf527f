package element

import (
	"fmt"
	"log/slog"
	"slices"

	"github.com/mholzen/bootstrapgen/pkg/bootstrap"
	"github.com/mholzen/bootstrapgen/pkg/collections"
	"github.com/mholzen/bootstrapgen/pkg/shape"
)

// DefaultImageURL is the placeholder image service, templated with the
// rounded width and height.
const DefaultImageURL = "https://picsum.photos/%d/%d"

// Options bound the conversion. Zero limits mean unlimited.
type Options struct {
	MaxDepth int
	MaxNodes int
	ImageURL string
}

// Builder converts shape trees to element trees.
type Builder struct {
	opts Options
}

func NewBuilder(opts Options) *Builder {
	if opts.ImageURL == "" {
		opts.ImageURL = DefaultImageURL
	}
	return &Builder{opts: opts}
}

type buildFrame struct {
	shape  *shape.Shape
	parent *Element
	depth  int
}

// Build converts the tree rooted at s. It never fails: subtrees beyond the
// configured limits are dropped and logged. A nil shape yields nil.
func (b *Builder) Build(s *shape.Shape) *Element {
	if s == nil {
		return nil
	}

	var root *Element
	var nodes, cutDepth, cutNodes int

	stack := collections.NewStack(buildFrame{shape: s, depth: 1})
	for !stack.IsEmpty() {
		f, _ := stack.Pop()
		if b.opts.MaxNodes > 0 && nodes >= b.opts.MaxNodes {
			cutNodes++
			continue
		}
		nodes++

		el, expand := b.convert(f.shape)
		if f.parent == nil {
			root = el
		} else {
			f.parent.Children = append(f.parent.Children, el)
		}
		if !expand {
			continue
		}

		children := f.shape.VisibleChildren()
		if len(children) == 0 {
			continue
		}
		if b.opts.MaxDepth > 0 && f.depth >= b.opts.MaxDepth {
			cutDepth += len(children)
			continue
		}

		// Children attach in pop order. Flex and grid parents list their
		// children in reverse paint order, so those keep host order on the
		// stack and pop reversed.
		if !f.shape.HasLayout() {
			children = slices.Clone(children)
			slices.Reverse(children)
		}
		for _, child := range children {
			stack.Push(buildFrame{shape: child, parent: el, depth: f.depth + 1})
		}
	}

	if cutDepth > 0 {
		slog.Warn("shape tree truncated at depth limit", "max_depth", b.opts.MaxDepth, "dropped_subtrees", cutDepth)
	}
	if cutNodes > 0 {
		slog.Warn("shape tree truncated at node limit", "max_nodes", b.opts.MaxNodes, "dropped", cutNodes)
	}
	return root
}

// convert builds the element for a single shape without its children. expand
// reports whether the shape's children belong in the element.
func (b *Builder) convert(s *shape.Shape) (*Element, bool) {
	el := &Element{Tag: "div"}
	expand := true
	withBackground := true

	category := Classify(s)
	switch category {
	case CategoryText:
		t := bootstrap.TypographyClasses(s)
		el.AddClasses(t.Classes...)
		if t.Style != "" {
			el.SetAttr("style", t.Style)
		}
		el.Children = []Node{Text(s.Text())}
		// the fill is the text colour, not a background
		withBackground = false
		expand = false
	case CategoryContainer:
		el.AddClasses(bootstrap.LayoutClasses(s)...)
	case CategoryCircle:
		el.AddClasses("rounded-circle")
	case CategoryVector:
		el.Tag = "svg"
		expand = false
	case CategoryImage:
		el.Tag = "img"
		el.SetAttr("src", b.imageURL(s))
		expand = false
	case CategoryPlain:
	default:
		slog.Debug("unhandled shape category", "category", category, "type", s.Type)
	}

	if category == CategoryPlain && s.Kind() == shape.KindUnknown && s.Type != "" {
		slog.Debug("unrecognised shape type", "type", s.Type, "id", s.ID)
	}

	el.AddClasses(bootstrap.DecorationClasses(s, withBackground)...)
	return el, expand
}

func (b *Builder) imageURL(s *shape.Shape) string {
	w := int(shape.Round(s.Width))
	h := int(shape.Round(s.Height))
	return fmt.Sprintf(b.opts.ImageURL, w, h)
}

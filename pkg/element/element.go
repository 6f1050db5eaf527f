// Package element holds the intermediate markup tree built from a shape tree
// and the builder that produces it.
package element

// Void tags never carry children and serialize self-closed.
var voidTags = map[string]bool{
	"img":   true,
	"input": true,
}

// IsVoid reports whether tag is serialized without a closing tag.
func IsVoid(tag string) bool {
	return voidTags[tag]
}

// Attr is an extra HTML attribute. Attributes keep their insertion order.
type Attr struct {
	Name  string
	Value string
}

// Node is a child of an Element: either Text or *Element.
type Node interface {
	node()
}

// Text is a literal text child.
type Text string

func (Text) node() {}

// Element is one markup node.
type Element struct {
	Tag      string
	Classes  []string
	Attrs    []Attr
	Children []Node
}

func (*Element) node() {}

// AddClasses appends the non-empty class names.
func (e *Element) AddClasses(classes ...string) {
	for _, c := range classes {
		if c != "" {
			e.Classes = append(e.Classes, c)
		}
	}
}

// SetAttr sets an attribute, keeping the position of an existing one.
func (e *Element) SetAttr(name, value string) {
	for i := range e.Attrs {
		if e.Attrs[i].Name == name {
			e.Attrs[i].Value = value
			return
		}
	}
	e.Attrs = append(e.Attrs, Attr{Name: name, Value: value})
}

// Attr returns the value of the named attribute.
func (e *Element) Attr(name string) (string, bool) {
	for _, a := range e.Attrs {
		if a.Name == name {
			return a.Value, true
		}
	}
	return "", false
}

// Elements returns the element children, skipping text.
func (e *Element) Elements() []*Element {
	var elements []*Element
	for _, child := range e.Children {
		if el, ok := child.(*Element); ok {
			elements = append(elements, el)
		}
	}
	return elements
}

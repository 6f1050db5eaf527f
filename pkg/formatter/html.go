package formatter

import (
	"html"
	"strings"

	"github.com/mholzen/bootstrapgen/pkg/element"
)

// HTMLFormatter renders production markup. Attribute values are written
// verbatim; text children are escaped.
type HTMLFormatter struct{}

func NewHTMLFormatter() *HTMLFormatter {
	return &HTMLFormatter{}
}

func (f *HTMLFormatter) Format(el *element.Element) string {
	if el == nil {
		return ""
	}
	var b strings.Builder
	f.writeElement(&b, el)
	return b.String()
}

func (f *HTMLFormatter) writeElement(b *strings.Builder, el *element.Element) {
	tag := el.Tag
	if tag == "" {
		tag = "div"
	}

	b.WriteByte('<')
	b.WriteString(tag)
	writeAttrs(b, el, false)
	if element.IsVoid(tag) {
		b.WriteString(" />")
		return
	}
	b.WriteByte('>')

	for _, child := range el.Children {
		switch v := child.(type) {
		case element.Text:
			b.WriteString(html.EscapeString(string(v)))
		case *element.Element:
			f.writeElement(b, v)
		}
	}

	b.WriteString("</")
	b.WriteString(tag)
	b.WriteByte('>')
}

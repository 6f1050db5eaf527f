package formatter

import (
	"strings"

	"github.com/mholzen/bootstrapgen/pkg/element"
)

// DebugFormatter renders an escaped, indented preview meant to be shown as
// HTML text rather than rendered
type DebugFormatter struct {
	config *Config
}

// NewDebugFormatter creates a debug formatter with the default markers
func NewDebugFormatter() *DebugFormatter {
	return &DebugFormatter{config: DefaultConfig()}
}

// NewDebugFormatterWithConfig creates a debug formatter with custom markers
func NewDebugFormatterWithConfig(config *Config) *DebugFormatter {
	return &DebugFormatter{config: config}
}

func (f *DebugFormatter) Format(el *element.Element) string {
	if el == nil {
		return ""
	}
	var b strings.Builder
	f.writeElement(&b, el, "")
	return b.String()
}

func (f *DebugFormatter) writeNode(b *strings.Builder, n element.Node, space string) {
	switch v := n.(type) {
	case element.Text:
		b.WriteString(space)
		b.WriteString(string(v))
	case *element.Element:
		f.writeElement(b, v, space)
	}
}

func (f *DebugFormatter) writeElement(b *strings.Builder, el *element.Element, space string) {
	selfClose := element.IsVoid(el.Tag)

	b.WriteString(f.config.TagPrefix)
	b.WriteString(space)
	b.WriteString("&lt;")
	b.WriteString(el.Tag)
	writeAttrs(b, el, true)
	if selfClose {
		b.WriteString(" /&gt;")
		return
	}
	b.WriteString("&gt;")

	if len(el.Children) > 0 {
		b.WriteString(f.config.LineBreak)
		for i, child := range el.Children {
			if i > 0 {
				b.WriteString(f.config.LineBreak)
			}
			f.writeNode(b, child, space+f.config.Indent)
		}
		b.WriteString(f.config.LineBreak)
		b.WriteString(space)
	}

	b.WriteString(space)
	b.WriteString("&lt;/")
	b.WriteString(el.Tag)
	b.WriteString("&gt;")
}

// writeAttrs writes the element's attributes in order, followed by class.
// With keepEmptyClass the class attribute is written even with no classes.
func writeAttrs(b *strings.Builder, el *element.Element, keepEmptyClass bool) {
	for _, a := range el.Attrs {
		if a.Name == "class" {
			continue
		}
		writeAttr(b, a.Name, a.Value)
	}
	if len(el.Classes) > 0 || keepEmptyClass {
		writeAttr(b, "class", strings.Join(el.Classes, " "))
	}
}

func writeAttr(b *strings.Builder, name, value string) {
	b.WriteByte(' ')
	b.WriteString(name)
	b.WriteString(`="`)
	b.WriteString(value)
	b.WriteByte('"')
}

// Package document assembles the standalone HTML page delivered for a selection.
package document

import (
	"bytes"
	"fmt"
	"log/slog"
	"text/template"

	"github.com/mholzen/bootstrapgen/pkg/element"
	"github.com/mholzen/bootstrapgen/pkg/formatter"
	"github.com/mholzen/bootstrapgen/pkg/shape"
	"github.com/mholzen/bootstrapgen/pkg/tokens"
)

// Placeholder is the body used when nothing is selected.
const Placeholder = `<div class="container p-4"><p class="text-muted">No element selected</p></div>`

const (
	DefaultBootstrapVersion = "5.3.3"
	DefaultTitle            = "Penpot → Bootstrap"
	cssURLFormat            = "https://cdn.jsdelivr.net/npm/bootstrap@%s/dist/css/bootstrap.min.css"
	jsURLFormat             = "https://cdn.jsdelivr.net/npm/bootstrap@%s/dist/js/bootstrap.bundle.min.js"
)

// Template configures the page around the generated markup. Empty URLs are
// derived from the Bootstrap version.
type Template struct {
	Title            string
	BootstrapVersion string
	CSSURL           string
	JSURL            string
}

func DefaultTemplate() Template {
	return Template{Title: DefaultTitle, BootstrapVersion: DefaultBootstrapVersion}
}

func (t Template) withDefaults() Template {
	if t.Title == "" {
		t.Title = DefaultTitle
	}
	if t.BootstrapVersion == "" {
		t.BootstrapVersion = DefaultBootstrapVersion
	}
	if t.CSSURL == "" {
		t.CSSURL = fmt.Sprintf(cssURLFormat, t.BootstrapVersion)
	}
	if t.JSURL == "" {
		t.JSURL = fmt.Sprintf(jsURLFormat, t.BootstrapVersion)
	}
	return t
}

var pageTmpl = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8" />
<meta name="viewport" content="width=device-width, initial-scale=1" />
<title>{{.Title}}</title>
<link href="{{.CSSURL}}" rel="stylesheet">
<style>
{{.Stylesheet}}
</style>
</head>
<body>
{{.Content}}
<script src="{{.JSURL}}"></script>
</body>
</html>`))

type page struct {
	Template
	Stylesheet string
	Content    string
}

// Assembler turns a selection and its design tokens into a complete page.
type Assembler struct {
	builder   *element.Builder
	formatter formatter.Formatter
	template  Template
}

func NewAssembler(builder *element.Builder, tmpl Template) *Assembler {
	if builder == nil {
		builder = element.NewBuilder(element.Options{})
	}
	return &Assembler{
		builder:   builder,
		formatter: formatter.NewHTMLFormatter(),
		template:  tmpl.withDefaults(),
	}
}

// Body renders the production markup of the first selected shape, or the
// placeholder when the selection is empty.
func (a *Assembler) Body(selection []*shape.Shape) string {
	if len(selection) == 0 || selection[0] == nil {
		return Placeholder
	}
	return a.formatter.Format(a.builder.Build(selection[0]))
}

// Assemble never fails: token failures degrade to an empty stylesheet.
func (a *Assembler) Assemble(selection []*shape.Shape, result tokens.Result) string {
	if result.Status == tokens.StatusFailed {
		slog.Debug("assembling without design tokens", "error", result.Err)
	}
	p := page{
		Template:   a.template,
		Stylesheet: Stylesheet(result.Tokens()),
		Content:    a.Body(selection),
	}

	var buf bytes.Buffer
	if err := pageTmpl.Execute(&buf, p); err != nil {
		// a string-only template cannot fail to execute
		slog.Error("cannot render document", "error", err)
		return ""
	}
	return buf.String()
}

package document

import (
	"errors"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/google/go-cmp/cmp"
	"github.com/mholzen/bootstrapgen/pkg/element"
	"github.com/mholzen/bootstrapgen/pkg/shape"
	"github.com/mholzen/bootstrapgen/pkg/tokens"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parse(t *testing.T, html string) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	require.NoError(t, err)
	return doc
}

func TestStylesheet(t *testing.T) {
	set := &tokens.Set{
		Color: []tokens.Token{
			{Name: "Brand Blue", Value: "#123456"},
			{Name: "Accent", Value: "rgb(1, 2, 3)"},
		},
		Typography: []tokens.Token{
			{Name: "Heading Large", Value: map[string]any{"fontSize": "32"}},
			{Name: "Body", Value: "16px Inter"},
		},
	}

	want := ":root {\n" +
		"  --pp-color-brand-blue: #123456;\n" +
		"  --pp-color-accent: rgb(1, 2, 3);\n" +
		"  --pp-typography-heading-large: {\"fontSize\":\"32\"};\n" +
		"  --pp-typography-body: 16px Inter;\n" +
		"}\n"
	if diff := cmp.Diff(want, Stylesheet(set)); diff != "" {
		t.Errorf("stylesheet mismatch (-want +got):\n%s", diff)
	}
}

func TestStylesheet_Empty(t *testing.T) {
	assert.Equal(t, ":root {\n}\n", Stylesheet(nil))
	assert.Equal(t, ":root {\n}\n", Stylesheet(&tokens.Set{}))
}

func TestAssemble_EmptySelectionFailedTokens(t *testing.T) {
	a := NewAssembler(nil, DefaultTemplate())

	out := a.Assemble(nil, tokens.Result{Status: tokens.StatusFailed, Err: errors.New("no api")})

	assert.Contains(t, out, "<body>\n"+Placeholder+"\n<script")
	assert.Contains(t, out, "<style>\n:root {\n}\n\n</style>")

	doc := parse(t, out)
	assert.Equal(t, "No element selected", doc.Find("body div.container.p-4 p.text-muted").Text())
}

func TestAssemble_ExactDocument(t *testing.T) {
	a := NewAssembler(nil, DefaultTemplate())
	hi := "Hi"
	selection := []*shape.Shape{{Type: "text", Characters: &hi, FontWeight: shape.NewWeight(700)}}

	out := a.Assemble(selection, tokens.Loaded(&tokens.Set{Color: []tokens.Token{{Name: "Ink", Value: "#000"}}}))

	want := `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8" />
<meta name="viewport" content="width=device-width, initial-scale=1" />
<title>Penpot → Bootstrap</title>
<link href="https://cdn.jsdelivr.net/npm/bootstrap@5.3.3/dist/css/bootstrap.min.css" rel="stylesheet">
<style>
:root {
  --pp-color-ink: #000;
}

</style>
</head>
<body>
<div class="fw-bold">Hi</div>
<script src="https://cdn.jsdelivr.net/npm/bootstrap@5.3.3/dist/js/bootstrap.bundle.min.js"></script>
</body>
</html>`
	if diff := cmp.Diff(want, out); diff != "" {
		t.Errorf("document mismatch (-want +got):\n%s", diff)
	}
}

func TestAssemble_UsesFirstSelectedShapeOnly(t *testing.T) {
	a := NewAssembler(nil, DefaultTemplate())
	first, second := "first", "second"
	selection := []*shape.Shape{
		{Type: "board", Flex: &shape.FlexLayout{}, Children: []*shape.Shape{
			{Type: "text", Characters: &first},
			{Type: "rect", Width: 64, Height: 48, Fills: []shape.Fill{{FillImage: "ref"}}},
		}},
		{Type: "text", Characters: &second},
	}

	doc := parse(t, a.Assemble(selection, tokens.Result{}))

	body := doc.Find("body > div.d-flex")
	require.Equal(t, 1, body.Length())
	assert.Equal(t, "https://picsum.photos/64/48", body.Children().First().AttrOr("src", ""))
	assert.Equal(t, "first", body.Children().Last().Text())
	assert.NotContains(t, doc.Text(), "second")
}

func TestAssemble_CustomTemplate(t *testing.T) {
	a := NewAssembler(element.NewBuilder(element.Options{}), Template{Title: "Export", BootstrapVersion: "5.2.0"})

	doc := parse(t, a.Assemble(nil, tokens.Result{}))

	assert.Equal(t, "Export", doc.Find("title").Text())
	assert.Equal(t, "https://cdn.jsdelivr.net/npm/bootstrap@5.2.0/dist/css/bootstrap.min.css", doc.Find("link").AttrOr("href", ""))
	assert.Equal(t, "https://cdn.jsdelivr.net/npm/bootstrap@5.2.0/dist/js/bootstrap.bundle.min.js", doc.Find("script").AttrOr("src", ""))
}

func TestAssemble_ExplicitURLsWin(t *testing.T) {
	a := NewAssembler(nil, Template{CSSURL: "/static/bootstrap.css", JSURL: "/static/bootstrap.js"})

	doc := parse(t, a.Assemble(nil, tokens.Result{}))

	assert.Equal(t, "/static/bootstrap.css", doc.Find("link").AttrOr("href", ""))
	assert.Equal(t, "/static/bootstrap.js", doc.Find("script").AttrOr("src", ""))
	assert.Equal(t, DefaultTitle, doc.Find("title").Text())
}

func TestAssemble_Idempotent(t *testing.T) {
	a := NewAssembler(nil, DefaultTemplate())
	selection := []*shape.Shape{{Type: "ellipse", Fills: []shape.Fill{{FillColor: "#198754"}}}}
	r := tokens.Loaded(&tokens.Set{Typography: []tokens.Token{{Name: "Body", Value: "16px"}}})

	assert.Equal(t, a.Assemble(selection, r), a.Assemble(selection, r))
}

package document

import (
	"strings"

	"github.com/mholzen/bootstrapgen/pkg/tokens"
)

// Stylesheet renders the token set as CSS custom properties on :root. A nil
// or empty set renders an empty rule.
func Stylesheet(set *tokens.Set) string {
	var b strings.Builder
	b.WriteString(":root {\n")
	if set != nil {
		writeVars(&b, "--pp-color-", set.Color)
		writeVars(&b, "--pp-typography-", set.Typography)
	}
	b.WriteString("}\n")
	return b.String()
}

func writeVars(b *strings.Builder, prefix string, list []tokens.Token) {
	for _, t := range list {
		b.WriteString("  ")
		b.WriteString(prefix)
		b.WriteString(tokens.Slug(t.Name))
		b.WriteString(": ")
		b.WriteString(tokens.ValueString(t.Value))
		b.WriteString(";\n")
	}
}

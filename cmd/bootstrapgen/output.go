package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/mholzen/bootstrapgen/pkg/element"
)

func stdout(cmd *cli.Command) io.Writer {
	if w := cmd.Root().Writer; w != nil {
		return w
	}
	return os.Stdout
}

func printJSONToWriter(w io.Writer, response interface{}) error {
	prettyJSON, err := json.MarshalIndent(response, "", "  ")
	if err != nil {
		return fmt.Errorf("cannot format JSON: %w", err)
	}
	_, err = fmt.Fprintf(w, "%s\n", prettyJSON)
	return err
}

// writeOutput writes content to path, or to the command's stdout when path is empty.
func writeOutput(cmd *cli.Command, path string, content string) error {
	if path == "" {
		_, err := fmt.Fprintln(stdout(cmd), content)
		return err
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return fmt.Errorf("cannot write output file (file='%s'): %w", path, err)
	}
	return nil
}

// openInput opens path for reading; "-" and "" read the command's stdin.
func openInput(cmd *cli.Command, path string) (io.ReadCloser, error) {
	if path == "" || path == "-" {
		r := cmd.Root().Reader
		if r == nil {
			r = os.Stdin
		}
		return io.NopCloser(r), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("cannot open input file (file='%s'): %w", path, err)
	}
	return f, nil
}

type elementJSON struct {
	Tag      string            `json:"tag"`
	Classes  []string          `json:"classes,omitempty"`
	Attrs    map[string]string `json:"attrs,omitempty"`
	Text     string            `json:"text,omitempty"`
	Children []*elementJSON    `json:"children,omitempty"`
}

// toElementJSON flattens text children into Text; attribute order is not kept.
func toElementJSON(el *element.Element) *elementJSON {
	if el == nil {
		return nil
	}
	out := &elementJSON{Tag: el.Tag, Classes: el.Classes}
	if len(el.Attrs) > 0 {
		out.Attrs = make(map[string]string, len(el.Attrs))
		for _, a := range el.Attrs {
			out.Attrs[a.Name] = a.Value
		}
	}
	for _, child := range el.Children {
		switch c := child.(type) {
		case element.Text:
			out.Text += string(c)
		case *element.Element:
			out.Children = append(out.Children, toElementJSON(c))
		}
	}
	return out
}

// Package guide holds the usage examples shown next to an issued token.
// Each example calls a placeholder endpoint with the token in the
// variant's header and the caller language in X-I18n-Lang.
package guide

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

// PlaceholderURL is the endpoint address every example uses.
const PlaceholderURL = "http://{ip}:{port}"

// Snippet is one fenced code example.
type Snippet struct {
	Language string
	ID       string
	Fence    string
	Body     string
}

// Markdown renders the snippet as a fenced block tagged with its id.
func (s Snippet) Markdown() string {
	return "```" + s.Fence + " [id:" + s.ID + "]\n" + s.Body + "\n```"
}

// Snippets returns the examples for the given token header, in display order.
func Snippets(header string) []Snippet {
	out := make([]Snippet, len(templates))
	for i, t := range templates {
		t.Body = strings.ReplaceAll(t.Body, headerMark, header)
		t.Body = strings.ReplaceAll(t.Body, jsonCmdletMark, jsonCmdlet(header))
		out[i] = t
	}
	return out
}

// Compose joins every example into one markdown document.
func Compose(header string) string {
	snippets := Snippets(header)
	parts := make([]string, len(snippets))
	for i, s := range snippets {
		parts[i] = s.Markdown()
	}
	return strings.Join(parts, "\n\n")
}

var md = goldmark.New(goldmark.WithExtensions(extension.GFM))

// RenderHTML converts a composed guide to HTML.
func RenderHTML(markdown string) (string, error) {
	var buf bytes.Buffer
	if err := md.Convert([]byte(markdown), &buf); err != nil {
		return "", fmt.Errorf("failed to render guide: %w", err)
	}
	return buf.String(), nil
}

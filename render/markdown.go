// Package render turns aggregated Markdown answers into sanitized HTML for
// embedding in web frontends. Responses may interleave model output with
// user-derived text, so everything is sanitized after rendering.
package render

import (
	"github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"
	"github.com/microcosm-cc/bluemonday"
)

var policy = bluemonday.UGCPolicy()

// HTML renders Markdown to sanitized HTML.
func HTML(md string) string {
	p := parser.NewWithExtensions(parser.CommonExtensions | parser.AutoHeadingIDs)
	doc := p.Parse([]byte(md))

	renderer := html.NewRenderer(html.RendererOptions{
		Flags: html.CommonFlags,
	})

	return string(policy.SanitizeBytes(markdown.Render(doc, renderer)))
}

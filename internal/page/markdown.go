package page

import (
	"html/template"

	"github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"
)

// RenderMarkdown converts the intro markdown to HTML. The source is the
// site author's own file and is trusted.
func RenderMarkdown(src []byte) template.HTML {
	extensions := parser.CommonExtensions | parser.AutoHeadingIDs
	p := parser.NewWithExtensions(extensions)
	doc := p.Parse(src)

	renderer := html.NewRenderer(html.RendererOptions{Flags: html.CommonFlags})

	return template.HTML(markdown.Render(doc, renderer)) //nolint:gosec // trusted author content
}

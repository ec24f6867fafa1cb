// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package latex

import (
	"strings"

	"github.com/yuin/goldmark"
	gmast "github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
	"github.com/yuin/goldmark/util"
)

var markdown = goldmark.New()

// InlineMarkdown renders a short Markdown text as LaTeX. Emphasis, strong
// emphasis, code spans and links are translated; block structure collapses
// to paragraphs; raw HTML is dropped. Every text node is escaped.
func InlineMarkdown(src string) string {
	if strings.TrimSpace(src) == "" {
		return ""
	}
	source := []byte(src)
	root := markdown.Parser().Parse(text.NewReader(source))

	var b strings.Builder
	renderChildren(&b, root, source)
	return strings.TrimSpace(b.String())
}

func renderChildren(b *strings.Builder, n gmast.Node, source []byte) {
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		renderNode(b, c, source)
	}
}

func renderNode(b *strings.Builder, n gmast.Node, source []byte) {
	switch node := n.(type) {
	case *gmast.Text:
		b.WriteString(Escape(string(util.UnescapePunctuations(node.Segment.Value(source)))))
		switch {
		case node.HardLineBreak():
			b.WriteString("\\\\\n")
		case node.SoftLineBreak():
			b.WriteString(" ")
		}
	case *gmast.String:
		b.WriteString(Escape(string(node.Value)))
	case *gmast.Emphasis:
		cmd := `\textit{`
		if node.Level >= 2 {
			cmd = `\textbf{`
		}
		b.WriteString(cmd)
		renderChildren(b, node, source)
		b.WriteString("}")
	case *gmast.CodeSpan:
		b.WriteString(`\texttt{`)
		renderChildren(b, node, source)
		b.WriteString("}")
	case *gmast.Link:
		var label strings.Builder
		renderChildren(&label, node, source)
		url := EnsureScheme(string(node.Destination))
		if url == "" {
			b.WriteString(label.String())
			return
		}
		b.WriteString(hyperlink(url, label.String()))
	case *gmast.AutoLink:
		url := string(node.URL(source))
		if node.AutoLinkType == gmast.AutoLinkEmail && !strings.HasPrefix(url, "mailto:") {
			url = "mailto:" + url
		}
		b.WriteString(FormatURL(url, string(node.Label(source))))
	case *gmast.RawHTML, *gmast.HTMLBlock:
		// dropped
	case *gmast.CodeBlock, *gmast.FencedCodeBlock:
		lines := node.Lines()
		parts := make([]string, 0, lines.Len())
		for i := 0; i < lines.Len(); i++ {
			seg := lines.At(i)
			parts = append(parts, strings.TrimRight(string(seg.Value(source)), "\n"))
		}
		b.WriteString(`\texttt{` + Escape(strings.Join(parts, " ")) + "}")
		paragraphBreak(b, node)
	default:
		renderChildren(b, node, source)
		if node.Type() == gmast.TypeBlock {
			paragraphBreak(b, node)
		}
	}
}

// paragraphBreak separates a block from the one that follows it.
func paragraphBreak(b *strings.Builder, n gmast.Node) {
	if n.NextSibling() != nil {
		b.WriteString("\n\n")
	}
}

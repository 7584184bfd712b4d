package format

import (
	"fmt"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

var markdown = goldmark.New()

// flattenMarkdown renders markdown artifacts in a model reply back to plain
// text. Emphasis, links and code spans keep their inner text, fenced blocks
// keep their content without the fences, lists become bullet lines and block
// boundaries become blank lines. Plain text passes through unchanged.
func flattenMarkdown(s string) string {
	src := []byte(s)
	doc := markdown.Parser().Parse(text.NewReader(src))

	var blocks []string
	for node := doc.FirstChild(); node != nil; node = node.NextSibling() {
		if b := renderBlock(node, src); b != "" {
			blocks = append(blocks, b)
		}
	}
	return strings.Join(blocks, "\n\n")
}

func renderBlock(node ast.Node, src []byte) string {
	switch n := node.(type) {
	case *ast.Heading:
		return inlineText(n, src)
	case *ast.Blockquote:
		var parts []string
		for c := n.FirstChild(); c != nil; c = c.NextSibling() {
			if b := renderBlock(c, src); b != "" {
				parts = append(parts, b)
			}
		}
		return strings.Join(parts, "\n")
	case *ast.List:
		return renderList(n, src)
	case *ast.FencedCodeBlock:
		return codeText(n, src)
	case *ast.CodeBlock:
		return codeText(n, src)
	case *ast.ThematicBreak:
		return ""
	case *ast.HTMLBlock:
		return ""
	default:
		return inlineText(node, src)
	}
}

func renderList(list *ast.List, src []byte) string {
	var lines []string
	num := list.Start
	if num == 0 {
		num = 1
	}
	for item := list.FirstChild(); item != nil; item = item.NextSibling() {
		var parts []string
		for c := item.FirstChild(); c != nil; c = c.NextSibling() {
			if b := renderBlock(c, src); b != "" {
				parts = append(parts, b)
			}
		}
		line := strings.Join(parts, " ")
		if line == "" {
			continue
		}
		if list.IsOrdered() {
			lines = append(lines, fmt.Sprintf("%d. %s", num, line))
			num++
		} else {
			lines = append(lines, "• "+line)
		}
	}
	return strings.Join(lines, "\n")
}

func codeText(node ast.Node, src []byte) string {
	var b strings.Builder
	lines := node.Lines()
	for i := 0; i < lines.Len(); i++ {
		seg := lines.At(i)
		b.Write(seg.Value(src))
	}
	return strings.TrimRight(b.String(), "\n")
}

func inlineText(node ast.Node, src []byte) string {
	var b strings.Builder
	writeInline(&b, node, src)
	return strings.TrimSpace(b.String())
}

func writeInline(b *strings.Builder, node ast.Node, src []byte) {
	for c := node.FirstChild(); c != nil; c = c.NextSibling() {
		switch n := c.(type) {
		case *ast.Text:
			b.Write(n.Segment.Value(src))
			if n.SoftLineBreak() || n.HardLineBreak() {
				b.WriteByte('\n')
			}
		case *ast.String:
			b.Write(n.Value)
		case *ast.AutoLink:
			b.Write(n.URL(src))
		case *ast.RawHTML:
			// dropped
		default:
			writeInline(b, c, src)
		}
	}
}

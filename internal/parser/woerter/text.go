package woerter

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

var (
	reSuperscripts = regexp.MustCompile(`[⁰¹²³⁴⁵⁶⁷⁸⁹]+`)
	reSpaces       = regexp.MustCompile(`\s+`)
	reOpenParen    = regexp.MustCompile(`\s*\(\s*`)
	reCloseParen   = regexp.MustCompile(`\s*\)\s*`)

	reTrailingDots  = regexp.MustCompile(`[\x{2026}.]+$`)
	reTrailingPunct = regexp.MustCompile(`[,;]+$`)
)

// normalizeText strips footnote superscripts, collapses whitespace and
// tightens spacing around parentheses.
func normalizeText(s string) string {
	s = reSuperscripts.ReplaceAllString(s, "")
	s = reSpaces.ReplaceAllString(s, " ")
	s = reOpenParen.ReplaceAllString(s, " (")
	s = reCloseParen.ReplaceAllString(s, ")")
	return strings.TrimSpace(s)
}

func collapseSpaces(s string) string {
	return reSpaces.ReplaceAllString(s, " ")
}

// deepText concatenates descendant text nodes. Each element's own text is
// trimmed before it is appended to its parent's.
func deepText(n *html.Node) string {
	var b strings.Builder
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		switch c.Type {
		case html.TextNode:
			b.WriteString(c.Data)
		case html.ElementNode:
			b.WriteString(deepText(c))
		}
	}
	return strings.TrimSpace(b.String())
}

// selectionText returns deepText of the first node in sel.
func selectionText(sel *goquery.Selection) string {
	if sel == nil || sel.Length() == 0 {
		return ""
	}
	return deepText(sel.Get(0))
}

// textUntilMarker concatenates the children of n up to, but excluding, the
// first element carrying class marker.
func textUntilMarker(n *html.Node, marker string) string {
	var b strings.Builder
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode && hasClass(c, marker) {
			break
		}
		switch c.Type {
		case html.TextNode:
			b.WriteString(c.Data)
		case html.ElementNode:
			b.WriteString(deepText(c))
		}
	}
	return b.String()
}

// exampleText concatenates text nodes and span text of an example item,
// stopping at the first link.
func exampleText(n *html.Node) string {
	var b strings.Builder
loop:
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		switch {
		case c.Type == html.TextNode:
			b.WriteString(c.Data)
		case c.Type == html.ElementNode && c.Data == "span":
			b.WriteString(rawText(c))
		case c.Type == html.ElementNode && c.Data == "a":
			break loop
		}
	}
	return collapseSpaces(strings.TrimSpace(b.String()))
}

// rawText is the untrimmed text content of n.
func rawText(n *html.Node) string {
	if n.Type == html.TextNode {
		return n.Data
	}
	var b strings.Builder
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		b.WriteString(rawText(c))
	}
	return b.String()
}

func hasClass(n *html.Node, class string) bool {
	for _, a := range n.Attr {
		if a.Key != "class" {
			continue
		}
		for _, c := range strings.Fields(a.Val) {
			if c == class {
				return true
			}
		}
	}
	return false
}

func cleanTranslation(s string) string {
	s = strings.TrimSpace(s)
	s = reTrailingDots.ReplaceAllString(s, "")
	s = reTrailingPunct.ReplaceAllString(s, "")
	return strings.TrimSpace(s)
}

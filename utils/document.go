package utils

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
	"nonprofit-scraper/internal/types"
)

// blockElements start and end a rendered line
var blockElements = map[string]bool{
	"address": true, "article": true, "aside": true, "blockquote": true,
	"dd": true, "div": true, "dl": true, "dt": true, "figcaption": true,
	"figure": true, "footer": true, "form": true, "h1": true, "h2": true,
	"h3": true, "h4": true, "h5": true, "h6": true, "header": true,
	"hr": true, "li": true, "main": true, "nav": true, "ol": true,
	"p": true, "pre": true, "section": true, "table": true, "tr": true,
	"ul": true,
}

// selectionNode adapts a goquery selection to types.Node
type selectionNode struct {
	sel *goquery.Selection
}

// ParseDocument parses HTML content into a queryable document
func ParseDocument(html string) (types.Node, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("failed to parse HTML: %w", err)
	}
	return NewNode(doc.Selection), nil
}

// NewNode wraps an existing goquery selection
func NewNode(sel *goquery.Selection) types.Node {
	return &selectionNode{sel: sel}
}

func (n *selectionNode) Find(selector string) []types.Node {
	var nodes []types.Node
	n.sel.Find(selector).Each(func(i int, s *goquery.Selection) {
		nodes = append(nodes, &selectionNode{sel: s})
	})
	return nodes
}

func (n *selectionNode) First(selector string) (types.Node, bool) {
	found := n.sel.Find(selector).First()
	if found.Length() == 0 {
		return nil, false
	}
	return &selectionNode{sel: found}, true
}

// Text renders the selection like innerText: <br> and block elements break
// lines, whitespace inside a line collapses, and blank lines are dropped.
func (n *selectionNode) Text() string {
	var lines []string
	var line strings.Builder
	breakLine := func() {
		if text := strings.Join(strings.Fields(line.String()), " "); text != "" {
			lines = append(lines, text)
		}
		line.Reset()
	}

	var walk func(node *html.Node)
	walk = func(node *html.Node) {
		switch node.Type {
		case html.TextNode:
			line.WriteString(node.Data)
			return
		case html.ElementNode:
			switch node.Data {
			case "script", "style", "template":
				return
			case "br":
				breakLine()
				return
			}
		}
		block := node.Type == html.ElementNode && blockElements[node.Data]
		if block {
			breakLine()
		}
		for child := node.FirstChild; child != nil; child = child.NextSibling {
			walk(child)
		}
		if block {
			breakLine()
		}
	}

	for _, node := range n.sel.Nodes {
		walk(node)
	}
	breakLine()
	return strings.Join(lines, "\n")
}

func (n *selectionNode) Attr(name string) (string, bool) {
	return n.sel.Attr(name)
}

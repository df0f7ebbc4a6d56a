package rankings

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// Kind distinguishes element nodes from text nodes.
type Kind uint8

const (
	KindText Kind = iota
	KindElement
)

// Node is one element or text node from the article body, in document
// order. Text is the node's whitespace-collapsed content: for elements the
// aggregated subtree text, for text nodes their own text.
type Node struct {
	Kind Kind
	Tag  string // element name, "" for text nodes
	Text string
	Href string // href attribute, <a> elements only
	// First descendant <a href> inside this element, if any. Block
	// elements in ranking lists usually wrap the team name in a link to
	// its team page.
	LinkHref string
	LinkText string
}

// Sequence is a materialized article body: every descendant node in
// document order plus the flattened text lines the line-window strategy
// scans. Strategies operate on it without touching the document tree again.
type Sequence struct {
	Nodes []Node
	Lines []string
}

// Materialize flattens the article body of doc into a Sequence. The
// <article> element is used as the body when present, otherwise the whole
// document.
func Materialize(doc *goquery.Document) *Sequence {
	var root *html.Node
	if art := doc.Find("article").First(); art.Length() > 0 {
		root = art.Get(0)
	} else if doc.Length() > 0 {
		root = doc.Get(0)
	}

	seq := &Sequence{}
	if root == nil {
		return seq
	}
	appendDescendants(seq, root)
	return seq
}

// FlatText returns the whole body text with whitespace collapsed to single
// spaces.
func (s *Sequence) FlatText() string {
	return collapse(strings.Join(s.Lines, " "))
}

func appendDescendants(seq *Sequence, n *html.Node) {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		switch c.Type {
		case html.TextNode:
			seq.Nodes = append(seq.Nodes, Node{
				Kind: KindText,
				Text: collapse(c.Data),
			})
			appendLines(seq, c.Data)
		case html.ElementNode:
			seq.Nodes = append(seq.Nodes, makeElement(c))
			appendDescendants(seq, c)
		}
	}
}

func makeElement(n *html.Node) Node {
	node := Node{
		Kind: KindElement,
		Tag:  n.Data,
		Text: collapse(subtreeText(n)),
	}
	if n.Data == "a" {
		node.Href = attrVal(n, "href")
	}
	if href, text, ok := firstAnchor(n); ok {
		node.LinkHref = href
		node.LinkText = text
	}
	return node
}

// appendLines splits a raw text chunk into trimmed lines. Empty lines are
// kept: the line-window strategy counts them when sizing its windows.
func appendLines(seq *Sequence, raw string) {
	for _, line := range strings.Split(raw, "\n") {
		seq.Lines = append(seq.Lines, strings.TrimSpace(line))
	}
}

// subtreeText concatenates all text beneath n in document order.
func subtreeText(n *html.Node) string {
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(m *html.Node) {
		for c := m.FirstChild; c != nil; c = c.NextSibling {
			switch c.Type {
			case html.TextNode:
				b.WriteString(c.Data)
				b.WriteByte(' ')
			case html.ElementNode:
				walk(c)
			}
		}
	}
	walk(n)
	return b.String()
}

// firstAnchor returns the first descendant <a href> of n in document order.
func firstAnchor(n *html.Node) (href, text string, ok bool) {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode && c.Data == "a" {
			if v := attrVal(c, "href"); v != "" {
				return v, collapse(subtreeText(c)), true
			}
		}
		if h, t, o := firstAnchor(c); o {
			return h, t, o
		}
	}
	return "", "", false
}

func attrVal(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

func collapse(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

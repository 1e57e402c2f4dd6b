package viewer

import (
	"bytes"
	"fmt"
	"io"

	"github.com/go-echarts/go-echarts/v2/components"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// SummarySectionID is the id of the section holding the text report.
const SummarySectionID = "summary"

// Render writes the page to w with the text report appended to its body
// as <section id="summary"><pre>...</pre></section>.
func Render(w io.Writer, page *components.Page, summary string) error {
	var buf bytes.Buffer
	if err := page.Render(&buf); err != nil {
		return fmt.Errorf("failed to render charts: %w", err)
	}

	doc, err := html.Parse(&buf)
	if err != nil {
		return fmt.Errorf("failed to parse rendered page: %w", err)
	}

	body := findElement(doc, atom.Body)
	if body == nil {
		return ErrNoBody
	}
	body.AppendChild(summarySection(summary))

	if err := html.Render(w, doc); err != nil {
		return fmt.Errorf("failed to write page: %w", err)
	}
	return nil
}

// summarySection builds the node tree for the text report.
func summarySection(summary string) *html.Node {
	section := &html.Node{
		Type:     html.ElementNode,
		DataAtom: atom.Section,
		Data:     "section",
		Attr:     []html.Attribute{{Key: "id", Val: SummarySectionID}},
	}
	pre := &html.Node{
		Type:     html.ElementNode,
		DataAtom: atom.Pre,
		Data:     "pre",
	}
	pre.AppendChild(&html.Node{Type: html.TextNode, Data: summary})
	section.AppendChild(pre)
	return section
}

// findElement returns the first element of the given type in document order.
func findElement(n *html.Node, a atom.Atom) *html.Node {
	if n.Type == html.ElementNode && n.DataAtom == a {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findElement(c, a); found != nil {
			return found
		}
	}
	return nil
}

// Summary extracts the text report from a page written by Render.
// It returns false when the page has no summary section.
func Summary(r io.Reader) (string, bool, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return "", false, fmt.Errorf("failed to parse page: %w", err)
	}

	var section *html.Node
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if section != nil {
			return
		}
		if n.Type == html.ElementNode && n.DataAtom == atom.Section {
			for _, a := range n.Attr {
				if a.Key == "id" && a.Val == SummarySectionID {
					section = n
					return
				}
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)

	if section == nil {
		return "", false, nil
	}
	pre := findElement(section, atom.Pre)
	if pre == nil {
		return "", false, nil
	}

	var text bytes.Buffer
	for c := pre.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.TextNode {
			text.WriteString(c.Data)
		}
	}
	return text.String(), true, nil
}

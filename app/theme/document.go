package theme

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Page is a parsed HTML document the theme is applied to.
type Page struct {
	root *html.Node
}

// ParsePage parses a full HTML document. Missing html/head/body elements are synthesized.
func ParsePage(r io.Reader) (*Page, error) {
	root, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parse page: %w", err)
	}
	return &Page{root: root}, nil
}

// RemoveMarked detaches every element carrying the attribute and returns how many were removed.
func (p *Page) RemoveMarked(attr string) int {
	marked := p.findAll(func(n *html.Node) bool {
		_, ok := attrValue(n, attr)
		return ok
	})
	for _, n := range marked {
		n.Parent.RemoveChild(n)
	}
	return len(marked)
}

// UpsertStylesheet points the element with the given id at href.
// If there is no such element a <link rel="stylesheet"> with that id is appended to <head>.
func (p *Page) UpsertStylesheet(id, href string) {
	link := p.ByID(id)
	if link == nil {
		link = &html.Node{
			Type:     html.ElementNode,
			Data:     "link",
			DataAtom: atom.Link,
			Attr:     []html.Attribute{{Key: "id", Val: id}, {Key: "rel", Val: "stylesheet"}},
		}
		p.Head().AppendChild(link)
	}
	setAttr(link, "href", href)
}

// ReplaceByID swaps the element with the given id for the parsed fragment.
// Returns false if the page has no element with that id.
func (p *Page) ReplaceByID(id, fragment string) (bool, error) {
	target := p.ByID(id)
	if target == nil {
		return false, nil
	}
	nodes, err := html.ParseFragment(strings.NewReader(fragment), target.Parent)
	if err != nil {
		return false, fmt.Errorf("parse fragment for #%s: %w", id, err)
	}
	for _, n := range nodes {
		target.Parent.InsertBefore(n, target)
	}
	target.Parent.RemoveChild(target)
	return true, nil
}

// ByID returns the first element with the id attribute, nil if none.
func (p *Page) ByID(id string) *html.Node {
	found := p.findAll(func(n *html.Node) bool {
		v, ok := attrValue(n, "id")
		return ok && v == id
	})
	if len(found) == 0 {
		return nil
	}
	return found[0]
}

// Head returns the <head> element. Parsing guarantees there is one.
func (p *Page) Head() *html.Node {
	found := p.findAll(func(n *html.Node) bool { return n.DataAtom == atom.Head })
	if len(found) == 0 {
		// unreachable for pages made by ParsePage
		head := &html.Node{Type: html.ElementNode, Data: "head", DataAtom: atom.Head}
		p.root.AppendChild(head)
		return head
	}
	return found[0]
}

// Links returns all <link> elements in document order.
func (p *Page) Links() []*html.Node {
	return p.findAll(func(n *html.Node) bool { return n.DataAtom == atom.Link })
}

// Render writes the whole document.
func (p *Page) Render(w io.Writer) error {
	if err := html.Render(w, p.root); err != nil {
		return fmt.Errorf("render page: %w", err)
	}
	return nil
}

// RenderHead writes the children of <head>, suitable for replacing head's inner HTML.
func (p *Page) RenderHead(w io.Writer) error {
	var errs []error
	for c := p.Head().FirstChild; c != nil; c = c.NextSibling {
		errs = append(errs, html.Render(w, c))
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("render head: %w", err)
	}
	return nil
}

// String renders the document, for logging and tests.
func (p *Page) String() string {
	var buf bytes.Buffer
	if err := p.Render(&buf); err != nil {
		return ""
	}
	return buf.String()
}

func (p *Page) findAll(match func(*html.Node) bool) []*html.Node {
	var res []*html.Node
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && match(n) {
			res = append(res, n)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(p.root)
	return res
}

// AttrValue returns the attribute value of an element node and whether it is present.
func AttrValue(n *html.Node, key string) (string, bool) {
	return attrValue(n, key)
}

func attrValue(n *html.Node, key string) (string, bool) {
	for _, a := range n.Attr {
		if a.Namespace == "" && a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}

func setAttr(n *html.Node, key, val string) {
	for i, a := range n.Attr {
		if a.Namespace == "" && a.Key == key {
			n.Attr[i].Val = val
			return
		}
	}
	n.Attr = append(n.Attr, html.Attribute{Key: key, Val: val})
}

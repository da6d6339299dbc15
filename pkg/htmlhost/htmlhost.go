// Package htmlhost implements the forge host contract on top of
// golang.org/x/net/html nodes, so forged trees can be merged into parsed
// documents and written with html.Render.
package htmlhost

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/vango-dev/forge/pkg/forge"
	"github.com/vango-dev/forge/pkg/render"
	"github.com/vango-dev/forge/pkg/vdom"
)

var (
	// ErrForeignNode is returned when a node from another host is appended.
	ErrForeignNode = errors.New("htmlhost: node does not belong to this host")

	// ErrInvalidTag is returned for tag names that cannot be created.
	ErrInvalidTag = errors.New("htmlhost: invalid tag name")

	// ErrHierarchyRequest is returned when an append would create a cycle or
	// target a void element.
	ErrHierarchyRequest = errors.New("htmlhost: invalid hierarchy request")
)

// Host creates html.Node elements.
type Host struct {
	// Strict rejects tags unknown to the atom table.
	Strict bool
}

var _ forge.TreeHost = (*Host)(nil)

// New returns a lenient Host.
func New() *Host {
	return &Host{}
}

// CreateElement implements forge.TreeHost.
func (h *Host) CreateElement(tag string) (forge.Node, error) {
	if tag == "" || strings.ContainsAny(tag, " \t\n\r\f/<>\"'=") {
		return nil, fmt.Errorf("%w: %q", ErrInvalidTag, tag)
	}
	tag = strings.ToLower(tag)
	a := atom.Lookup([]byte(tag))
	if h.Strict && a == 0 {
		return nil, fmt.Errorf("%w: %q is not a known element", ErrInvalidTag, tag)
	}
	return &Node{html: &html.Node{
		Type:     html.ElementNode,
		DataAtom: a,
		Data:     tag,
	}}, nil
}

// Node wraps an html.Node element.
type Node struct {
	html  *html.Node
	style map[string]any
}

var _ forge.Node = (*Node)(nil)

// Wrap adapts an existing element, e.g. the body of a parsed document.
func Wrap(n *html.Node) *Node {
	return &Node{html: n}
}

// HTML returns the underlying html.Node.
func (n *Node) HTML() *html.Node {
	return n.html
}

// SetProperty implements forge.Node. Body properties replace the element's
// children with a text node; other properties become attributes.
func (n *Node) SetProperty(name string, value any) {
	s, ok := render.FormatValue(value)
	switch name {
	case render.PropTextContent, render.PropInnerText, render.PropInnerHTML:
		for c := n.html.FirstChild; c != nil; c = n.html.FirstChild {
			n.html.RemoveChild(c)
		}
		if ok && s != "" {
			typ := html.TextNode
			if name == render.PropInnerHTML {
				typ = html.RawNode
			}
			n.html.AppendChild(&html.Node{Type: typ, Data: s})
		}
		return
	}

	attr, isAttr := render.AttrName(name)
	if !isAttr {
		return
	}
	if b, isBool := value.(bool); isBool && render.IsBooleanAttr(attr) {
		if b {
			n.setAttr(attr, "")
		} else {
			n.removeAttr(attr)
		}
		return
	}
	if !ok {
		return
	}
	n.setAttr(attr, s)
}

// SetStyle implements forge.Node. The style attribute is rewritten from the
// accumulated entries on every call.
func (n *Node) SetStyle(name string, value any) {
	if n.style == nil {
		n.style = make(map[string]any)
	}
	n.style[name] = value
	n.setAttr("style", render.StyleDecl(n.style))
}

// AppendChild implements forge.Node. An attached child is moved.
func (n *Node) AppendChild(child forge.Node) error {
	c, ok := child.(*Node)
	if !ok || c == nil || c.html == nil {
		return ErrForeignNode
	}
	if n.html.Type == html.ElementNode && vdom.IsVoidElement(n.html.Data) {
		return fmt.Errorf("%w: <%s> cannot hold children", ErrHierarchyRequest, n.html.Data)
	}
	for p := n.html; p != nil; p = p.Parent {
		if p == c.html {
			return fmt.Errorf("%w: cannot append %s to its own descendant", ErrHierarchyRequest, c.html.Data)
		}
	}
	if c.html.Parent != nil {
		c.html.Parent.RemoveChild(c.html)
	}
	n.html.AppendChild(c.html)
	return nil
}

// Attr returns the value of the named attribute.
func (n *Node) Attr(key string) (string, bool) {
	for _, a := range n.html.Attr {
		if a.Namespace == "" && a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}

func (n *Node) setAttr(key, val string) {
	for i, a := range n.html.Attr {
		if a.Namespace == "" && a.Key == key {
			n.html.Attr[i].Val = val
			return
		}
	}
	n.html.Attr = append(n.html.Attr, html.Attribute{Key: key, Val: val})
}

func (n *Node) removeAttr(key string) {
	for i, a := range n.html.Attr {
		if a.Namespace == "" && a.Key == key {
			n.html.Attr = append(n.html.Attr[:i], n.html.Attr[i+1:]...)
			return
		}
	}
}

// Render writes the node and its descendants as HTML.
func Render(w io.Writer, n *Node) error {
	return html.Render(w, n.html)
}

// Body parses an HTML document and returns its body element.
func Body(r io.Reader) (*html.Node, *Node, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, nil, fmt.Errorf("htmlhost: parse document: %w", err)
	}
	var body *html.Node
	var find func(*html.Node)
	find = func(n *html.Node) {
		if body != nil {
			return
		}
		if n.Type == html.ElementNode && n.DataAtom == atom.Body {
			body = n
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			find(c)
		}
	}
	find(doc)
	if body == nil {
		return nil, nil, errors.New("htmlhost: document has no body")
	}
	return doc, Wrap(body), nil
}

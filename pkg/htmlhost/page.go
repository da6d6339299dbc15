package htmlhost

import (
	"io"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// PageData describes a complete document around a forged body.
type PageData struct {
	// Body is the page content. A node other than <body> is wrapped in one.
	Body *Node

	Title string

	// Lang defaults to "en".
	Lang string

	// HeadHTML and BodyHTML are trusted markup appended to head and body.
	HeadHTML string
	BodyHTML string
}

// RenderPage writes a complete HTML document. The body node is detached
// from any previous parent and becomes part of the rendered document.
func RenderPage(w io.Writer, page PageData) error {
	lang := page.Lang
	if lang == "" {
		lang = "en"
	}

	root := element(atom.Html, html.Attribute{Key: "lang", Val: lang})
	head := element(atom.Head)
	head.AppendChild(element(atom.Meta, html.Attribute{Key: "charset", Val: "utf-8"}))
	if page.Title != "" {
		title := element(atom.Title)
		title.AppendChild(&html.Node{Type: html.TextNode, Data: page.Title})
		head.AppendChild(title)
	}
	if page.HeadHTML != "" {
		head.AppendChild(&html.Node{Type: html.RawNode, Data: page.HeadHTML})
	}
	root.AppendChild(head)

	var body *html.Node
	switch {
	case page.Body == nil:
		body = element(atom.Body)
	case page.Body.html.DataAtom == atom.Body:
		body = page.Body.html
		if body.Parent != nil {
			body.Parent.RemoveChild(body)
		}
	default:
		body = element(atom.Body)
		content := page.Body.html
		if content.Parent != nil {
			content.Parent.RemoveChild(content)
		}
		body.AppendChild(content)
	}
	if page.BodyHTML != "" {
		body.AppendChild(&html.Node{Type: html.RawNode, Data: page.BodyHTML})
	}
	root.AppendChild(body)

	if _, err := io.WriteString(w, "<!DOCTYPE html>\n"); err != nil {
		return err
	}
	if err := html.Render(w, root); err != nil {
		return err
	}
	_, err := io.WriteString(w, "\n")
	return err
}

func element(a atom.Atom, attrs ...html.Attribute) *html.Node {
	return &html.Node{
		Type:     html.ElementNode,
		DataAtom: a,
		Data:     a.String(),
		Attr:     attrs,
	}
}

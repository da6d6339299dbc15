package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/vango-dev/forge/pkg/vdom"
)

// PageData contains the data needed to render a complete HTML page.
type PageData struct {
	// Body is the root node for the page content. A node tagged "body" is
	// rendered as the document body, anything else is wrapped in one.
	Body *vdom.VNode

	// Title is the page title.
	Title string

	// Lang is the language attribute for the html element.
	// Defaults to "en" if not specified.
	Lang string

	// HeadHTML is trusted markup appended to the head element.
	HeadHTML string

	// BodyHTML is trusted markup appended to the end of the body.
	BodyHTML string
}

// RenderPage renders a complete HTML document.
func (r *Renderer) RenderPage(w io.Writer, page PageData) error {
	lang := page.Lang
	if lang == "" {
		lang = "en"
	}

	if _, err := fmt.Fprintf(w, "<!DOCTYPE html>\n<html lang=\"%s\">\n<head>\n", escapeAttr(lang)); err != nil {
		return err
	}
	if _, err := io.WriteString(w, "<meta charset=\"utf-8\">\n"); err != nil {
		return err
	}
	if page.Title != "" {
		if _, err := fmt.Fprintf(w, "<title>%s</title>\n", escapeHTML(page.Title)); err != nil {
			return err
		}
	}
	if _, err := io.WriteString(w, page.HeadHTML); err != nil {
		return err
	}
	if _, err := io.WriteString(w, "</head>\n"); err != nil {
		return err
	}

	body := page.Body
	if body == nil || body.Kind != vdom.KindElement || body.Tag != "body" {
		body = &vdom.VNode{Kind: vdom.KindElement, Tag: "body", Children: wrap(page.Body)}
	}

	// The body is rendered without its closing tag so BodyHTML lands inside.
	var buf strings.Builder
	if err := r.RenderToWriter(&buf, body); err != nil {
		return err
	}
	out := buf.String()
	closing := "</body>"
	if r.config.Pretty {
		closing += "\n"
	}
	out = out[:len(out)-len(closing)]

	if _, err := io.WriteString(w, out); err != nil {
		return err
	}
	if _, err := io.WriteString(w, page.BodyHTML); err != nil {
		return err
	}
	_, err := io.WriteString(w, "</body>\n</html>\n")
	return err
}

func wrap(n *vdom.VNode) []*vdom.VNode {
	if n == nil {
		return nil
	}
	return []*vdom.VNode{n}
}

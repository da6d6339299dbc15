package render

import (
	"bytes"
	"fmt"
	"io"
	"sort"

	"github.com/vango-dev/forge/pkg/vdom"
)

// RendererConfig configures the HTML renderer.
type RendererConfig struct {
	// Pretty enables pretty-printed HTML output with indentation.
	Pretty bool

	// Indent is the string used for each indentation level in pretty mode.
	// Defaults to two spaces if not specified.
	Indent string
}

// Renderer serializes vdom trees to HTML.
type Renderer struct {
	config RendererConfig
}

// NewRenderer creates a new Renderer with the given configuration.
func NewRenderer(config RendererConfig) *Renderer {
	if config.Indent == "" {
		config.Indent = "  "
	}
	return &Renderer{config: config}
}

// RenderToString renders a tree to an HTML string.
func (r *Renderer) RenderToString(node *vdom.VNode) (string, error) {
	var buf bytes.Buffer
	if err := r.RenderToWriter(&buf, node); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// RenderToWriter streams a tree to the given writer.
func (r *Renderer) RenderToWriter(w io.Writer, node *vdom.VNode) error {
	return r.renderNode(w, node, 0)
}

func (r *Renderer) renderNode(w io.Writer, node *vdom.VNode, depth int) error {
	if node == nil {
		return nil
	}

	switch node.Kind {
	case vdom.KindElement:
		return r.renderElement(w, node, depth)
	case vdom.KindText:
		_, err := io.WriteString(w, escapeHTML(node.Text))
		return err
	default:
		return fmt.Errorf("render: unknown node kind: %d", node.Kind)
	}
}

func (r *Renderer) renderElement(w io.Writer, node *vdom.VNode, depth int) error {
	tag := node.Tag

	if r.config.Pretty && depth > 0 {
		r.writeIndent(w, depth)
	}

	if _, err := fmt.Fprintf(w, "<%s", tag); err != nil {
		return err
	}
	if err := r.renderAttributes(w, node); err != nil {
		return err
	}
	if _, err := io.WriteString(w, ">"); err != nil {
		return err
	}

	if isVoidElement(tag) {
		if r.config.Pretty {
			io.WriteString(w, "\n")
		}
		return nil
	}

	body, raw := bodyOf(node)
	if raw || IsRawTextElement(tag) {
		if _, err := io.WriteString(w, body); err != nil {
			return err
		}
	} else if body != "" {
		if _, err := io.WriteString(w, escapeHTML(body)); err != nil {
			return err
		}
	}

	block := len(node.Children) > 0 && !isInlineElement(tag)
	if r.config.Pretty && block {
		io.WriteString(w, "\n")
	}
	for _, child := range node.Children {
		if err := r.renderNode(w, child, depth+1); err != nil {
			return err
		}
	}
	if r.config.Pretty && block {
		r.writeIndent(w, depth)
	}

	if _, err := fmt.Fprintf(w, "</%s>", tag); err != nil {
		return err
	}
	if r.config.Pretty {
		io.WriteString(w, "\n")
	}
	return nil
}

// bodyOf returns the content set through body properties. innerHTML wins
// over textContent, which wins over innerText.
func bodyOf(node *vdom.VNode) (body string, raw bool) {
	if s, ok := FormatValue(node.Props[PropInnerHTML]); ok {
		return s, true
	}
	if s, ok := FormatValue(node.Props[PropTextContent]); ok {
		return s, false
	}
	s, _ := FormatValue(node.Props[PropInnerText])
	return s, false
}

func (r *Renderer) renderAttributes(w io.Writer, node *vdom.VNode) error {
	attrs := make(map[string]string, len(node.Props))
	var bools []string
	for prop, value := range node.Props {
		name, ok := AttrName(prop)
		if !ok || name == "style" {
			continue
		}
		if b, isBool := value.(bool); isBool && IsBooleanAttr(name) {
			if b {
				bools = append(bools, name)
			}
			continue
		}
		if s, ok := FormatValue(value); ok {
			attrs[name] = s
		}
	}

	if style := styleAttr(node); style != "" {
		attrs["style"] = style
	}

	names := make([]string, 0, len(attrs)+len(bools))
	for name := range attrs {
		names = append(names, name)
	}
	names = append(names, bools...)
	sort.Strings(names)

	for _, name := range names {
		value, ok := attrs[name]
		if !ok {
			if _, err := fmt.Fprintf(w, " %s", name); err != nil {
				return err
			}
			continue
		}
		if _, err := fmt.Fprintf(w, ` %s="%s"`, name, escapeAttr(value)); err != nil {
			return err
		}
	}
	return nil
}

// styleAttr merges a "style" property string with the node's style entries.
func styleAttr(node *vdom.VNode) string {
	inline, _ := FormatValue(node.Props["style"])
	decl := StyleDecl(node.Style)
	switch {
	case inline == "":
		return decl
	case decl == "":
		return inline
	default:
		return inline + "; " + decl
	}
}

func (r *Renderer) writeIndent(w io.Writer, depth int) {
	for i := 0; i < depth; i++ {
		io.WriteString(w, r.config.Indent)
	}
}

package render

import (
	"strings"
	"testing"

	"github.com/vango-dev/forge/pkg/forge"
	"github.com/vango-dev/forge/pkg/vdom"
)

func TestRenderText(t *testing.T) {
	renderer := NewRenderer(RendererConfig{})

	html, err := renderer.RenderToString(vdom.Text("<script>alert('xss')</script>"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.Contains(html, "<script>") {
		t.Errorf("HTML should be escaped, got %q", html)
	}
	if !strings.Contains(html, "&lt;script&gt;") {
		t.Errorf("should contain escaped script tag, got %q", html)
	}
}

func TestRenderForgedTree(t *testing.T) {
	renderer := NewRenderer(RendererConfig{})

	root := build(t, func(n []forge.Node) forge.Tree {
		return forge.Tree{n[0], forge.Tree{n[1], n[2]}}
	},
		forge.Tag("ul"), forge.Props{"className": "menu"},
		forge.Tag("li"), forge.Props{"textContent": "one"},
		forge.Tag("li"), forge.Props{"textContent": "two & three"},
	)

	html, err := renderer.RenderToString(root)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := `<div><ul class="menu"><li>one</li><li>two &amp; three</li></ul></div>`
	if html != want {
		t.Errorf("got  %q\nwant %q", html, want)
	}
}

func TestRenderAttributes(t *testing.T) {
	tests := []struct {
		name  string
		tag   string
		props vdom.Props
		want  string
	}{
		{
			name:  "class and for",
			tag:   "label",
			props: vdom.Props{"className": "lbl", "htmlFor": "email"},
			want:  `<label class="lbl" for="email"></label>`,
		},
		{
			name:  "lower-cased names",
			tag:   "div",
			props: vdom.Props{"tabIndex": 2, "id": "x"},
			want:  `<div id="x" tabindex="2"></div>`,
		},
		{
			name:  "boolean attributes",
			tag:   "input",
			props: vdom.Props{"disabled": true, "required": false, "type": "text"},
			want:  `<input disabled type="text">`,
		},
		{
			name:  "skipped values",
			tag:   "button",
			props: vdom.Props{"onclick": func() {}, "_internal": "x", "title": nil},
			want:  `<button></button>`,
		},
		{
			name:  "escaped value",
			tag:   "a",
			props: vdom.Props{"title": "say \"hi\"\n"},
			want:  `<a title="say &#34;hi&#34;&#10;"></a>`,
		},
		{
			name:  "raw inner html",
			tag:   "p",
			props: vdom.Props{"innerHTML": "<b>bold</b>"},
			want:  `<p><b>bold</b></p>`,
		},
		{
			name:  "invalid attribute name",
			tag:   "div",
			props: vdom.Props{"x onmouseover=alert(1) y": "v", "id": "ok"},
			want:  `<div id="ok"></div>`,
		},
		{
			name:  "script text",
			tag:   "script",
			props: vdom.Props{"textContent": "if (a && b) { x('<b>') }"},
			want:  `<script>if (a && b) { x('<b>') }</script>`,
		},
		{
			name:  "style text",
			tag:   "style",
			props: vdom.Props{"textContent": "p > a { color: red }"},
			want:  `<style>p > a { color: red }</style>`,
		},
		{
			name:  "inner text",
			tag:   "p",
			props: vdom.Props{"innerText": "a<b"},
			want:  `<p>a&lt;b</p>`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := element(t, tt.tag)
			for k, v := range tt.props {
				n.SetProperty(k, v)
			}
			got, err := NewRenderer(RendererConfig{}).RenderToString(n)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("got  %q\nwant %q", got, tt.want)
			}
		})
	}
}

func TestRenderStyle(t *testing.T) {
	n := element(t, "div")
	forge.Style(n, forge.Styles{"backgroundColor": "#222", "color": "red"})

	got, err := NewRenderer(RendererConfig{}).RenderToString(n)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := `<div style="background-color: #222; color: red"></div>`
	if got != want {
		t.Errorf("got  %q\nwant %q", got, want)
	}

	n.SetProperty("style", "margin: 0")
	got, _ = NewRenderer(RendererConfig{}).RenderToString(n)
	want = `<div style="margin: 0; background-color: #222; color: red"></div>`
	if got != want {
		t.Errorf("got  %q\nwant %q", got, want)
	}
}

func TestRenderPretty(t *testing.T) {
	root := build(t, func(n []forge.Node) forge.Tree {
		return forge.Tree{n[0], forge.Tree{n[1]}}
	}, forge.Tag("section"), forge.Tag("p"), forge.Props{"textContent": "hi"})

	got, err := NewRenderer(RendererConfig{Pretty: true}).RenderToString(root)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := "<div>\n  <section>\n    <p>hi</p>\n  </section>\n</div>\n"
	if got != want {
		t.Errorf("got  %q\nwant %q", got, want)
	}
}

func TestRenderVoidElement(t *testing.T) {
	img := element(t, "img")
	img.SetProperty("src", "/logo.png")

	got, _ := NewRenderer(RendererConfig{}).RenderToString(img)
	if got != `<img src="/logo.png">` {
		t.Errorf("got %q", got)
	}
}

func TestRenderUnknownKind(t *testing.T) {
	_, err := NewRenderer(RendererConfig{}).RenderToString(&vdom.VNode{Kind: vdom.VKind(9)})
	if err == nil {
		t.Error("expected error for unknown kind")
	}
}

func TestRenderNil(t *testing.T) {
	got, err := NewRenderer(RendererConfig{}).RenderToString(nil)
	if err != nil || got != "" {
		t.Errorf("got %q, %v", got, err)
	}
}

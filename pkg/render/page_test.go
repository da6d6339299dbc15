package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/vango-dev/forge/pkg/vdom"
)

func TestRenderPage(t *testing.T) {
	body := element(t, "body")
	h1 := element(t, "h1")
	h1.SetProperty("textContent", "Hello")
	_ = body.AppendChild(h1)

	var buf bytes.Buffer
	err := NewRenderer(RendererConfig{}).RenderPage(&buf, PageData{
		Body:     body,
		Title:    "A <demo>",
		HeadHTML: `<link rel="stylesheet" href="/app.css">`,
		BodyHTML: `<script src="/reload.js"></script>`,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	html := buf.String()

	for _, want := range []string{
		"<!DOCTYPE html>",
		`<html lang="en">`,
		"<title>A &lt;demo&gt;</title>",
		`<link rel="stylesheet" href="/app.css"></head>`,
		`<body><h1>Hello</h1><script src="/reload.js"></script></body>`,
	} {
		if !strings.Contains(html, want) {
			t.Errorf("page missing %q\n%s", want, html)
		}
	}
}

func TestRenderPageWrapsNonBodyRoot(t *testing.T) {
	main := element(t, "main")

	var buf bytes.Buffer
	err := NewRenderer(RendererConfig{Pretty: true}).RenderPage(&buf, PageData{Body: main, Lang: "fr"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	html := buf.String()
	if !strings.Contains(html, `<html lang="fr">`) {
		t.Errorf("missing lang: %s", html)
	}
	if !strings.Contains(html, "<body>\n  <main></main>\n</body>") {
		t.Errorf("main not wrapped in body: %q", html)
	}
}

func TestRenderPageNilBody(t *testing.T) {
	var buf bytes.Buffer
	if err := NewRenderer(RendererConfig{}).RenderPage(&buf, PageData{Body: (*vdom.VNode)(nil)}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(buf.String(), "<body></body>") {
		t.Errorf("got %q", buf.String())
	}
}

package vdom

import (
	"errors"
	"testing"

	"github.com/vango-dev/forge/pkg/forge"
)

func TestDocumentCreateElement(t *testing.T) {
	tests := []struct {
		tag     string
		want    string
		wantErr bool
	}{
		{"div", "div", false},
		{"DIV", "div", false},
		{"my-widget", "my-widget", false},
		{"h1", "h1", false},
		{"", "", true},
		{"1abc", "", true},
		{"bad tag", "", true},
		{"<div>", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.tag, func(t *testing.T) {
			doc := NewDocument()
			n, err := doc.CreateElement(tt.tag)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidTag) {
					t.Errorf("err = %v, want ErrInvalidTag", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got := n.(*VNode).Tag; got != tt.want {
				t.Errorf("Tag = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDocumentWithForge(t *testing.T) {
	doc := NewDocument()
	body := mustElement(t, doc, "body")

	res, err := forge.Elements(doc,
		forge.Tag("ul"), forge.Props{"className": "menu"},
		forge.Tag("li"), forge.Props{"textContent": "one"},
		forge.Tag("li"),
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	nodes := res.Nodes()
	if len(nodes) != 3 {
		t.Fatalf("len = %d, want 3", len(nodes))
	}

	if err := forge.Hierarchy(body, forge.Tree{nodes[0], forge.Tree{nodes[1], nodes[2]}}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	forge.Style(nodes[0], forge.Styles{"listStyle": "none"})

	ul := Find(body, "ul")
	if ul == nil {
		t.Fatal("ul not attached")
	}
	if ul.Props["className"] != "menu" || ul.Style["listStyle"] != "none" {
		t.Errorf("ul props=%v style=%v", ul.Props, ul.Style)
	}
	if len(ul.Children) != 2 {
		t.Errorf("ul children = %d, want 2", len(ul.Children))
	}
	if doc.Created() != 4 {
		t.Errorf("Created() = %d, want 4", doc.Created())
	}
}

func TestDocumentRejectionPropagates(t *testing.T) {
	doc := NewDocument()

	_, err := forge.Elements(doc, forge.Tag("div"), forge.Tag("not valid"))
	if !errors.Is(err, ErrInvalidTag) {
		t.Errorf("err = %v, want ErrInvalidTag", err)
	}
}

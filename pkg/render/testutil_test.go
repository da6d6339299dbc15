package render

import (
	"testing"

	"github.com/vango-dev/forge/pkg/forge"
	"github.com/vango-dev/forge/pkg/vdom"
)

// build forges args on a fresh document, attaches the result under a div
// according to tree, and returns the div.
func build(t *testing.T, tree func(nodes []forge.Node) forge.Tree, args ...forge.Arg) *vdom.VNode {
	t.Helper()
	doc := vdom.NewDocument()
	root, err := doc.Element("div")
	if err != nil {
		t.Fatalf("root: %v", err)
	}
	res, err := forge.Elements(doc, args...)
	if err != nil {
		t.Fatalf("Elements: %v", err)
	}
	if err := forge.Hierarchy(root, tree(res.Nodes())); err != nil {
		t.Fatalf("Hierarchy: %v", err)
	}
	return root
}

func element(t *testing.T, tag string) *vdom.VNode {
	t.Helper()
	n, err := vdom.NewDocument().Element(tag)
	if err != nil {
		t.Fatalf("Element(%q): %v", tag, err)
	}
	return n
}

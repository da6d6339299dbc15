package forge

import (
	"errors"
	"testing"
)

func mustNodes(t *testing.T, host *fakeHost, names ...string) []*fakeNode {
	t.Helper()
	out := make([]*fakeNode, len(names))
	for i, name := range names {
		n, err := host.CreateElement(name)
		if err != nil {
			t.Fatalf("create %s: %v", name, err)
		}
		out[i] = n.(*fakeNode)
	}
	return out
}

func TestHierarchyAttachment(t *testing.T) {
	host := newFakeHost()
	n := mustNodes(t, host, "p", "n1", "n2", "n3", "n4")
	p, n1, n2, n3, n4 := n[0], n[1], n[2], n[3], n[4]

	if err := Hierarchy(p, Tree{n1, Tree{n2, n3}, n4}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := tags(p.children); !equalStrings(got, []string{"n1", "n4"}) {
		t.Errorf("p children = %v, want [n1 n4]", got)
	}
	if got := tags(n1.children); !equalStrings(got, []string{"n2", "n3"}) {
		t.Errorf("n1 children = %v, want [n2 n3]", got)
	}
	if len(n4.children) != 0 {
		t.Errorf("n4 children = %v, want none", tags(n4.children))
	}
}

func TestHierarchyOrphanNestedTree(t *testing.T) {
	host := newFakeHost()
	n := mustNodes(t, host, "p", "n1", "n2")
	p, n1, n2 := n[0], n[1], n[2]

	if err := Hierarchy(p, Tree{Tree{n1, Tree{n2}}}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(p.children) != 0 {
		t.Errorf("p children = %v, want none", tags(p.children))
	}
	if len(n1.children) != 0 {
		t.Errorf("n1 children = %v, want none", tags(n1.children))
	}
}

func TestHierarchyDeepNesting(t *testing.T) {
	host := newFakeHost()
	n := mustNodes(t, host, "body", "p", "h2", "p2", "div", "img", "article")
	body, p, h2, p2, div, img, article := n[0], n[1], n[2], n[3], n[4], n[5], n[6]

	err := Hierarchy(body, Tree{
		p, []any{
			h2,
			p2,
			div, []Node{img},
		},
		article,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	checks := []struct {
		node *fakeNode
		want []string
	}{
		{body, []string{"p", "article"}},
		{p, []string{"h2", "p2", "div"}},
		{div, []string{"img"}},
		{h2, nil},
	}
	for _, c := range checks {
		if got := tags(c.node.children); !equalStrings(got, c.want) {
			t.Errorf("%s children = %v, want %v", c.node.tag, got, c.want)
		}
	}
}

func TestHierarchyNestedTreeUsesLatestSibling(t *testing.T) {
	host := newFakeHost()
	n := mustNodes(t, host, "root", "a", "b", "x", "y")
	root, a, b, x, y := n[0], n[1], n[2], n[3], n[4]

	if err := Hierarchy(root, Tree{a, b, Tree{x}, Tree{y}}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(a.children) != 0 {
		t.Errorf("a children = %v, want none", tags(a.children))
	}
	if got := tags(b.children); !equalStrings(got, []string{"x", "y"}) {
		t.Errorf("b children = %v, want [x y]", got)
	}
}

func TestHierarchyWithResult(t *testing.T) {
	host := newFakeHost()
	root := mustNodes(t, host, "ul")[0]

	items, err := Elements(host, Tag("li"), Props{"textContent": "one"}, Tag("li"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	list := mustNodes(t, host, "ol")[0]

	if err := Hierarchy(root, Tree{list, items}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := tags(list.children); !equalStrings(got, []string{"li", "li"}) {
		t.Errorf("ol children = %v, want [li li]", got)
	}
}

func TestHierarchyNilParent(t *testing.T) {
	host := newFakeHost()
	n1 := mustNodes(t, host, "n1")[0]

	if err := Hierarchy(nil, Tree{n1}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, c := range host.calls {
		if c != "create n1" {
			t.Errorf("unexpected host call %q", c)
		}
	}
}

func TestHierarchyErrors(t *testing.T) {
	host := newFakeHost()
	n := mustNodes(t, host, "p", "a", "b")
	p, a, b := n[0], n[1], n[2]

	if err := Hierarchy(p, Tree{a, "b"}); !errors.Is(err, ErrUnknownItem) {
		t.Errorf("err = %v, want ErrUnknownItem", err)
	}
	if err := Hierarchy(p, Tree{nil}); !errors.Is(err, ErrUnknownItem) {
		t.Errorf("err = %v, want ErrUnknownItem", err)
	}

	a.failOn = b
	err := Hierarchy(p, Tree{a, Tree{b}})
	if err == nil {
		t.Fatal("expected append error")
	}
	if len(a.children) != 0 {
		t.Errorf("a children = %v, want none", tags(a.children))
	}
}

package forge

import (
	"errors"
	"fmt"
)

// fakeHost records every call made against it.
type fakeHost struct {
	created []*fakeNode
	calls   []string
	reject  map[string]bool
}

type fakeNode struct {
	host     *fakeHost
	tag      string
	props    map[string]any
	style    map[string]any
	children []*fakeNode
	failOn   *fakeNode
}

var errRejected = errors.New("rejected tag")

func newFakeHost() *fakeHost {
	return &fakeHost{reject: map[string]bool{}}
}

func (h *fakeHost) CreateElement(tag string) (Node, error) {
	h.calls = append(h.calls, "create "+tag)
	if h.reject[tag] {
		return nil, errRejected
	}
	n := &fakeNode{
		host:  h,
		tag:   tag,
		props: map[string]any{},
		style: map[string]any{},
	}
	h.created = append(h.created, n)
	return n, nil
}

func (n *fakeNode) SetProperty(name string, value any) {
	n.host.calls = append(n.host.calls, fmt.Sprintf("prop %s.%s", n.tag, name))
	n.props[name] = value
}

func (n *fakeNode) SetStyle(name string, value any) {
	n.host.calls = append(n.host.calls, fmt.Sprintf("style %s.%s", n.tag, name))
	n.style[name] = value
}

func (n *fakeNode) AppendChild(child Node) error {
	c := child.(*fakeNode)
	if n.failOn == c {
		return errors.New("append refused")
	}
	n.host.calls = append(n.host.calls, fmt.Sprintf("append %s<-%s", n.tag, c.tag))
	n.children = append(n.children, c)
	return nil
}

func tags(nodes []*fakeNode) []string {
	out := make([]string, len(nodes))
	for i, n := range nodes {
		out[i] = n.tag
	}
	return out
}

func resultTags(r Result) []string {
	out := make([]string, 0, r.Len())
	for _, n := range r.Nodes() {
		out = append(out, n.(*fakeNode).tag)
	}
	return out
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

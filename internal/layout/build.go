package layout

import (
	"fmt"

	"github.com/vango-dev/forge/pkg/forge"
)

// Page is a layout built on a host.
type Page struct {
	// Root is the root element every top-level hierarchy item attaches to.
	Root forge.Node

	// Nodes maps layout names to the nodes created for them.
	Nodes map[string]forge.Node
}

// Build runs the layout's forge entries on host, applies its styles and
// attaches its hierarchy under a new root element.
func (l *Layout) Build(host forge.TreeHost) (*Page, error) {
	page := &Page{Nodes: make(map[string]forge.Node)}

	for _, e := range l.Entries {
		res, err := forge.Elements(host, e.Args...)
		if err != nil {
			return nil, l.errorAtPos("E020", e.Pos).Wrap(err)
		}
		if len(e.Names) != res.Len() {
			return nil, l.errorAtPos("E003", e.Pos).
				WithDetailf("names lists %d entries but args create %d elements.", len(e.Names), res.Len())
		}
		for i, name := range e.Names {
			if _, dup := page.Nodes[name]; dup {
				return nil, l.errorAtPos("E005", e.Pos).WithDetailf("%q is declared twice.", name)
			}
			page.Nodes[name] = res.Nodes()[i]
		}
	}

	for _, rule := range l.Styles {
		n, ok := page.Nodes[rule.Name]
		if !ok {
			return nil, l.errorAtPos("E004", rule.Pos).WithDetailf("styles refers to %q.", rule.Name)
		}
		forge.Style(n, rule.Styles)
	}

	root, err := forge.Element(host, l.Root)
	if err != nil {
		return nil, l.errorAtPos("E020", Pos{}).Wrap(err)
	}
	page.Root = root

	tree, err := l.tree(l.Hierarchy, page.Nodes)
	if err != nil {
		return nil, err
	}
	if err := forge.Hierarchy(root, tree); err != nil {
		return nil, l.errorAtPos("E021", Pos{}).Wrap(err)
	}
	return page, nil
}

func (l *Layout) tree(items []Item, nodes map[string]forge.Node) (forge.Tree, error) {
	t := make(forge.Tree, 0, len(items))
	for _, it := range items {
		if it.Children != nil {
			sub, err := l.tree(it.Children, nodes)
			if err != nil {
				return nil, err
			}
			t = append(t, sub)
			continue
		}
		n, ok := nodes[it.Name]
		if !ok {
			return nil, l.errorAtPos("E004", it.Pos).WithDetailf("hierarchy refers to %q.", it.Name)
		}
		t = append(t, n)
	}
	return t, nil
}

// Names returns the declared node names in declaration order.
func (l *Layout) Names() []string {
	var names []string
	for _, e := range l.Entries {
		names = append(names, e.Names...)
	}
	return names
}

// String summarizes the layout for logs.
func (l *Layout) String() string {
	return fmt.Sprintf("layout %s (%d entries, root %s)", l.Path, len(l.Entries), l.Root)
}

package forge

import "testing"

func TestStyle(t *testing.T) {
	host := newFakeHost()
	n, _ := host.CreateElement("div")
	node := n.(*fakeNode)

	Style(node, Styles{"color": "red", "marginTop": "4px"})

	if node.style["color"] != "red" || node.style["marginTop"] != "4px" {
		t.Errorf("style = %v", node.style)
	}
	if len(node.props) != 0 {
		t.Errorf("Style should not touch properties, got %v", node.props)
	}
}

func TestStyleIdempotent(t *testing.T) {
	host := newFakeHost()
	once, _ := host.CreateElement("div")
	twice, _ := host.CreateElement("div")
	style := Styles{"color": "red", "width": "100%", "zIndex": 3}

	Style(once, style)
	Style(twice, style)
	Style(twice, style)

	a, b := once.(*fakeNode).style, twice.(*fakeNode).style
	if len(a) != len(b) {
		t.Fatalf("len(once) = %d, len(twice) = %d", len(a), len(b))
	}
	for k, v := range a {
		if b[k] != v {
			t.Errorf("style[%s]: once=%v twice=%v", k, v, b[k])
		}
	}
}

func TestStyleEmpty(t *testing.T) {
	host := newFakeHost()
	n, _ := host.CreateElement("div")

	Style(n, nil)

	if got := len(n.(*fakeNode).style); got != 0 {
		t.Errorf("style entries = %d, want 0", got)
	}
}

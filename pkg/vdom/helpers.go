package vdom

// Text creates a detached text node.
func Text(content string) *VNode {
	return &VNode{
		Kind: KindText,
		Text: content,
	}
}

// Walk visits v and its descendants depth first, parents before children.
// Returning false from fn skips the node's children.
func Walk(v *VNode, fn func(*VNode) bool) {
	if v == nil || !fn(v) {
		return
	}
	for _, c := range v.Children {
		Walk(c, fn)
	}
}

// Find returns the first element with the given tag below and including v.
func Find(v *VNode, tag string) *VNode {
	var found *VNode
	Walk(v, func(n *VNode) bool {
		if found != nil {
			return false
		}
		if n.Kind == KindElement && n.Tag == tag {
			found = n
			return false
		}
		return true
	})
	return found
}

// FindByID returns the first element whose "id" property equals id.
func FindByID(v *VNode, id string) *VNode {
	var found *VNode
	Walk(v, func(n *VNode) bool {
		if found != nil {
			return false
		}
		if s, ok := n.Props["id"].(string); ok && s == id {
			found = n
			return false
		}
		return true
	})
	return found
}

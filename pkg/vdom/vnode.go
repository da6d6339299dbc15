package vdom

import (
	"errors"
	"fmt"

	"github.com/vango-dev/forge/pkg/forge"
)

// VKind is the node type discriminator.
type VKind uint8

const (
	KindElement VKind = iota // <div>, <button>, etc.
	KindText                 // Plain text node
)

// String returns the string representation of the VKind.
func (k VKind) String() string {
	switch k {
	case KindElement:
		return "Element"
	case KindText:
		return "Text"
	default:
		return "Unknown"
	}
}

var (
	// ErrInvalidTag is returned for tag names the document cannot create.
	ErrInvalidTag = errors.New("vdom: invalid tag name")

	// ErrForeignNode is returned when a node from another host is appended.
	ErrForeignNode = errors.New("vdom: node does not belong to this tree")

	// ErrHierarchyRequest is returned when an append would create a cycle or
	// target a node that cannot hold children.
	ErrHierarchyRequest = errors.New("vdom: invalid hierarchy request")
)

// Props holds named properties or style entries.
type Props map[string]any

// VNode is a node of the in-memory tree.
type VNode struct {
	Kind     VKind    // Node type
	Tag      string   // Element tag name (e.g., "div")
	Props    Props    // Properties set through SetProperty
	Style    Props    // Style entries set through SetStyle
	Children []*VNode // Child nodes, in order
	Parent   *VNode   // Attached parent, nil when detached
	Text     string   // For KindText
}

var _ forge.Node = (*VNode)(nil)

// SetProperty implements forge.Node.
func (v *VNode) SetProperty(name string, value any) {
	if v.Props == nil {
		v.Props = make(Props)
	}
	v.Props[name] = value
}

// SetStyle implements forge.Node.
func (v *VNode) SetStyle(name string, value any) {
	if v.Style == nil {
		v.Style = make(Props)
	}
	v.Style[name] = value
}

// AppendChild implements forge.Node. A child that is already attached is
// moved, as in the DOM.
func (v *VNode) AppendChild(child forge.Node) error {
	c, ok := child.(*VNode)
	if !ok || c == nil {
		return ErrForeignNode
	}
	if v.Kind != KindElement || IsVoidElement(v.Tag) {
		return fmt.Errorf("%w: <%s> cannot hold children", ErrHierarchyRequest, v.Tag)
	}
	for p := v; p != nil; p = p.Parent {
		if p == c {
			return ErrHierarchyRequest
		}
	}
	if c.Parent != nil {
		c.Parent.RemoveChild(c)
	}
	c.Parent = v
	v.Children = append(v.Children, c)
	return nil
}

// RemoveChild detaches child from v. It reports whether child was found.
func (v *VNode) RemoveChild(child *VNode) bool {
	for i, c := range v.Children {
		if c == child {
			v.Children = append(v.Children[:i], v.Children[i+1:]...)
			c.Parent = nil
			return true
		}
	}
	return false
}

// Property returns the named property and whether it is set.
func (v *VNode) Property(name string) (any, bool) {
	val, ok := v.Props[name]
	return val, ok
}

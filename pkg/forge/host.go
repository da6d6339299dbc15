package forge

// TreeHost creates detached nodes for a live tree.
type TreeHost interface {
	// CreateElement returns a fresh node of the given kind. Hosts may
	// reject tags they do not understand.
	CreateElement(tag string) (Node, error)
}

// Node is an element owned by a TreeHost.
type Node interface {
	// SetProperty assigns a named property. Unsupported names are left to
	// the host, which may ignore them.
	SetProperty(name string, value any)

	// SetStyle assigns a named entry of the node's style surface.
	SetStyle(name string, value any)

	// AppendChild attaches child as the last child of the node.
	AppendChild(child Node) error
}

// HostFunc adapts a function to the TreeHost interface.
type HostFunc func(tag string) (Node, error)

// CreateElement implements TreeHost.
func (f HostFunc) CreateElement(tag string) (Node, error) {
	return f(tag)
}

package middleware

import "github.com/vango-dev/forge/pkg/forge"

// Observer is notified around host operations. Each method is called before
// the operation and returns a function called with its outcome.
type Observer interface {
	CreateElement(tag string) func(err error)
	AppendChild(parent, child string) func(err error)
}

// Observe wraps host so that obs sees every creation and attachment.
func Observe(host forge.TreeHost, obs Observer) forge.TreeHost {
	return &observedHost{host: host, obs: obs}
}

type observedHost struct {
	host forge.TreeHost
	obs  Observer
}

func (h *observedHost) CreateElement(tag string) (forge.Node, error) {
	done := h.obs.CreateElement(tag)
	n, err := h.host.CreateElement(tag)
	done(err)
	if err != nil {
		return nil, err
	}
	return &observedNode{Node: n, tag: tag, obs: h.obs}, nil
}

type observedNode struct {
	forge.Node
	tag string
	obs Observer
}

func (n *observedNode) Unwrap() forge.Node {
	return n.Node
}

func (n *observedNode) AppendChild(child forge.Node) error {
	childTag := "?"
	if c, ok := child.(*observedNode); ok {
		childTag = c.tag
		child = c.Node
	}
	done := n.obs.AppendChild(n.tag, childTag)
	err := n.Node.AppendChild(child)
	done(err)
	return err
}

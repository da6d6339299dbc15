package forge

import "fmt"

// Result is the outcome of Elements: the created nodes in tag order.
type Result struct {
	nodes []Node
}

// Node returns the only node of the result. ok is false unless exactly one
// node was created.
func (r Result) Node() (n Node, ok bool) {
	if len(r.nodes) != 1 {
		return nil, false
	}
	return r.nodes[0], true
}

// Nodes returns the created nodes in the order their tags appeared.
func (r Result) Nodes() []Node {
	return r.nodes
}

// Len returns the number of created nodes.
func (r Result) Len() int {
	return len(r.nodes)
}

// Element creates a single node with no properties.
func Element(host TreeHost, tag string) (Node, error) {
	n, err := host.CreateElement(tag)
	if err != nil {
		return nil, fmt.Errorf("forge: create %q: %w", tag, err)
	}
	return n, nil
}

// scanState tracks whether a created node may still receive properties.
type scanState uint8

const (
	idle scanState = iota
	pendingProps
)

// Elements creates one node per Tag in args. A Props directly after a Tag is
// copied onto that tag's node; any other Props is ignored. Nodes are
// returned detached.
func Elements(host TreeHost, args ...Arg) (Result, error) {
	if len(args) == 0 {
		return Result{}, ErrNoArguments
	}
	if len(args) == 1 {
		tag, ok := args[0].(Tag)
		if !ok {
			return Result{}, ErrNoTag
		}
		n, err := Element(host, string(tag))
		if err != nil {
			return Result{}, err
		}
		return Result{nodes: []Node{n}}, nil
	}

	var (
		state   = idle
		pending Node
		out     = make([]Node, 0, len(args))
	)
	for _, arg := range args {
		switch a := arg.(type) {
		case Tag:
			if state == pendingProps {
				out = append(out, pending)
			}
			n, err := Element(host, string(a))
			if err != nil {
				return Result{}, err
			}
			pending, state = n, pendingProps
		case Props:
			if state != pendingProps {
				continue
			}
			setProperties(pending, a)
			out = append(out, pending)
			pending, state = nil, idle
		}
	}
	if state == pendingProps {
		out = append(out, pending)
	}
	if len(out) == 0 {
		return Result{}, ErrNoTag
	}
	return Result{nodes: out}, nil
}

func setProperties(n Node, props Props) {
	for _, k := range sortedKeys(props) {
		n.SetProperty(k, props[k])
	}
}

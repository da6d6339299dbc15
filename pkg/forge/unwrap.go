package forge

// Wrapper is implemented by nodes that decorate another host's node.
type Wrapper interface {
	Unwrap() Node
}

// Unwrap strips every decorating layer from n and returns the node created
// by the innermost host.
func Unwrap(n Node) Node {
	for {
		w, ok := n.(Wrapper)
		if !ok {
			return n
		}
		n = w.Unwrap()
	}
}

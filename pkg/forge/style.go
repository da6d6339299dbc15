package forge

// Styles maps style property names (e.g. "backgroundColor") to values.
type Styles map[string]any

// Style copies every entry of style onto the node's style surface. Names and
// values are passed through unchecked.
func Style(node Node, style Styles) {
	for _, k := range sortedKeys(style) {
		node.SetStyle(k, style[k])
	}
}

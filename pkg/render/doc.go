// Package render serializes vdom trees to HTML.
//
// Properties set on nodes are written as attributes, following the DOM
// property naming used by forge callers:
//
//   - className and htmlFor become class and for
//   - textContent becomes escaped body text, innerHTML raw body markup
//   - other names are lower-cased (tabIndex → tabindex)
//   - function values and names starting with "_" are skipped
//
// Style entries are merged into a single style attribute with camelCase
// names converted to CSS names (backgroundColor → background-color).
//
// # Basic Usage
//
//	renderer := render.NewRenderer(render.RendererConfig{})
//	html, err := renderer.RenderToString(node)
//
// RenderPage wraps a tree in a complete HTML document.
package render

// Package forge builds element trees declaratively in a single call.
//
// The package does not own a tree implementation. Every operation works
// through a TreeHost, which creates detached nodes, and the Node values it
// returns, which accept named properties, style entries and children.
// Hosts live in sibling packages: vdom (in-memory), htmlhost
// (golang.org/x/net/html) and jsdom (the browser document under js/wasm).
//
// # Elements
//
// Elements takes a flat list of tags, each optionally followed by the
// properties for the node it creates:
//
//	res, err := forge.Elements(doc,
//	    forge.Tag("table"), forge.Props{"className": "cool-table", "width": "100%"},
//	    forge.Tag("thead"),
//	)
//	nodes := res.Nodes() // [table, thead]
//
// A property bag that does not directly follow a tag is dropped.
//
// # Hierarchy
//
// Hierarchy attaches nodes under a parent. A nested Tree attaches under the
// node that precedes it at the same level:
//
//	forge.Hierarchy(body, forge.Tree{
//	    p, forge.Tree{
//	        h2,
//	        anotherP,
//	        div, forge.Tree{img},
//	    },
//	    article,
//	})
//
// # Style
//
// Style copies every entry of a Styles map onto a node's style surface.
package forge

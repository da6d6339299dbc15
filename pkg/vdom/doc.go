// Package vdom provides an in-memory element tree that implements the forge
// host contract.
//
// A Document creates detached VNode elements. VNodes hold properties, a
// style surface and an ordered child list, and can be attached, moved and
// walked like a browser DOM:
//
//	doc := vdom.NewDocument()
//	res, _ := forge.Elements(doc, forge.Tag("ul"), forge.Tag("li"))
//	nodes := res.Nodes()
//	_ = forge.Hierarchy(body, forge.Tree{nodes[0], forge.Tree{nodes[1]}})
//
// The tree is serialized to HTML by package render.
package vdom

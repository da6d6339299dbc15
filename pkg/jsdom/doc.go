// Package jsdom implements the forge host contract on the live browser
// document through syscall/js. It is only built for js/wasm.
//
//	doc := jsdom.Document()
//	res, err := forge.Elements(doc, forge.Tag("p"), forge.Props{"textContent": "hi"})
//	p, _ := res.Node()
//	err = forge.Hierarchy(doc.Body(), forge.Tree{p})
package jsdom

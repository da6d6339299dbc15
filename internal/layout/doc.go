// Package layout reads YAML page layouts and builds them on a forge host.
//
// A layout declares named nodes through forge entries, optional styles per
// name, and the hierarchy that attaches them under a root element:
//
//	title: Demo
//	root: body
//	forge:
//	  - names: [nav, list]
//	    args: [nav, {id: top}, ul]
//	  - names: [home, about]
//	    args: [li, {textContent: Home}, li, {textContent: About}]
//	styles:
//	  nav: {backgroundColor: "#222"}
//	hierarchy: [nav, [list, [home, about]]]
//
// Each forge entry is one forge.Elements call: plain strings are tags and
// maps are the properties of the tag before them. An entry lists one name
// per element it creates.
package layout

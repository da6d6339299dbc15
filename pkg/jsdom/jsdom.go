//go:build js && wasm

package jsdom

import (
	"errors"
	"fmt"
	"syscall/js"

	"github.com/vango-dev/forge/pkg/forge"
)

// ErrForeignNode is returned when a node from another host is appended.
var ErrForeignNode = errors.New("jsdom: node does not belong to the browser document")

// Host creates elements through a JavaScript document object.
type Host struct {
	doc js.Value
}

var _ forge.TreeHost = Host{}

// Document returns a host for the global document.
func Document() Host {
	return Host{doc: js.Global().Get("document")}
}

// CreateElement implements forge.TreeHost. A DOMException thrown by the
// browser (e.g. InvalidCharacterError) is returned as an error.
func (h Host) CreateElement(tag string) (n forge.Node, err error) {
	defer recoverJS(&err)
	return Node{v: h.doc.Call("createElement", tag)}, nil
}

// Body returns the document body.
func (h Host) Body() Node {
	return Node{v: h.doc.Get("body")}
}

// Node wraps a DOM element.
type Node struct {
	v js.Value
}

var _ forge.Node = Node{}

// Value returns the underlying JavaScript value.
func (n Node) Value() js.Value {
	return n.v
}

// SetProperty implements forge.Node.
func (n Node) SetProperty(name string, value any) {
	n.v.Set(name, jsValue(value))
}

// SetStyle implements forge.Node.
func (n Node) SetStyle(name string, value any) {
	n.v.Get("style").Set(name, jsValue(value))
}

// AppendChild implements forge.Node.
func (n Node) AppendChild(child forge.Node) (err error) {
	c, ok := child.(Node)
	if !ok {
		return ErrForeignNode
	}
	defer recoverJS(&err)
	n.v.Call("appendChild", c.v)
	return nil
}

// jsValue converts values js.ValueOf would panic on to their text form.
func jsValue(value any) any {
	switch v := value.(type) {
	case nil, bool, string, int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64, float32, float64,
		js.Value, js.Func, map[string]any, []any:
		return v
	case Node:
		return v.v
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprint(v)
	}
}

func recoverJS(err *error) {
	r := recover()
	if r == nil {
		return
	}
	if jsErr, ok := r.(js.Error); ok {
		*err = fmt.Errorf("jsdom: %w", jsErr)
		return
	}
	panic(r)
}

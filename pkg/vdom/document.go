package vdom

import (
	"fmt"
	"strings"

	"github.com/vango-dev/forge/pkg/forge"
)

// Document creates detached nodes. The zero value is ready to use.
type Document struct {
	created int
}

var _ forge.TreeHost = (*Document)(nil)

// NewDocument returns an empty Document.
func NewDocument() *Document {
	return &Document{}
}

// CreateElement implements forge.TreeHost. Tag names are lower-cased and
// must start with a letter followed by letters, digits, '-' or '_'.
func (d *Document) CreateElement(tag string) (forge.Node, error) {
	n, err := d.Element(tag)
	if err != nil {
		return nil, err
	}
	return n, nil
}

// Element is CreateElement with a concrete return type.
func (d *Document) Element(tag string) (*VNode, error) {
	if !validTag(tag) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidTag, tag)
	}
	d.created++
	return &VNode{
		Kind:     KindElement,
		Tag:      strings.ToLower(tag),
		Props:    make(Props),
		Style:    make(Props),
		Children: make([]*VNode, 0),
	}, nil
}

// Created returns the number of elements this document has created.
func (d *Document) Created() int {
	return d.created
}

func validTag(tag string) bool {
	if tag == "" {
		return false
	}
	for i, r := range tag {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
		case i > 0 && (r >= '0' && r <= '9' || r == '-' || r == '_'):
		default:
			return false
		}
	}
	return true
}

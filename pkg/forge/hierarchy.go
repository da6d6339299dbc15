package forge

import (
	"errors"
	"fmt"
)

// ErrUnknownItem is returned by Hierarchy for items that are neither a node
// nor a nested tree.
var ErrUnknownItem = errors.New("forge: hierarchy item is neither node nor tree")

// Tree is a nested attachment plan. Items are Node values or nested trees
// ([]any, Tree, []Node or Result). A nested tree holds the children of the
// node right before it.
type Tree []any

// Hierarchy appends the nodes of tree to parent, depth first. A nested tree
// that has no preceding node at its level is skipped, including everything
// below it. Attachment stops at the first error.
func Hierarchy(parent Node, tree Tree) error {
	if parent == nil {
		return nil
	}

	var previous Node
	for i, item := range tree {
		switch v := item.(type) {
		case Tree:
			if err := Hierarchy(previous, v); err != nil {
				return err
			}
		case []any:
			if err := Hierarchy(previous, Tree(v)); err != nil {
				return err
			}
		case []Node:
			if err := Hierarchy(previous, nodesTree(v)); err != nil {
				return err
			}
		case Result:
			if err := Hierarchy(previous, nodesTree(v.nodes)); err != nil {
				return err
			}
		case nil:
			return fmt.Errorf("%w: item %d is nil", ErrUnknownItem, i)
		case Node:
			if err := parent.AppendChild(v); err != nil {
				return fmt.Errorf("forge: append item %d: %w", i, err)
			}
			previous = v
		default:
			return fmt.Errorf("%w: item %d has type %T", ErrUnknownItem, i, item)
		}
	}
	return nil
}

func nodesTree(nodes []Node) Tree {
	t := make(Tree, len(nodes))
	for i, n := range nodes {
		t[i] = n
	}
	return t
}

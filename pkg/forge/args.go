package forge

import (
	"errors"
	"fmt"
	"sort"
)

var (
	// ErrNoArguments is returned by Elements when called without arguments.
	ErrNoArguments = errors.New("forge: no arguments")

	// ErrNoTag is returned by Elements when no argument names a tag.
	ErrNoTag = errors.New("forge: no tag in arguments")

	// ErrUnknownArg is returned by Args for values that are neither a tag
	// nor a property bag.
	ErrUnknownArg = errors.New("forge: argument is neither tag nor properties")
)

// Arg is one argument of Elements: either a Tag or a Props.
type Arg interface {
	isArg()
}

// Tag names the kind of node to create (e.g. "div").
type Tag string

// Props holds properties for the node created by the preceding Tag.
// Elements only reads it.
type Props map[string]any

func (Tag) isArg()   {}
func (Props) isArg() {}

// Args converts loosely typed values into arguments. Strings become tags and
// string-keyed maps become property bags; anything else is an error.
func Args(values ...any) ([]Arg, error) {
	args := make([]Arg, 0, len(values))
	for i, v := range values {
		switch v := v.(type) {
		case Arg:
			args = append(args, v)
		case string:
			args = append(args, Tag(v))
		case map[string]any:
			args = append(args, Props(v))
		case map[string]string:
			p := make(Props, len(v))
			for k, s := range v {
				p[k] = s
			}
			args = append(args, p)
		default:
			return nil, fmt.Errorf("%w: argument %d has type %T", ErrUnknownArg, i, v)
		}
	}
	return args, nil
}

// sortedKeys returns the keys of m in ascending order.
func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

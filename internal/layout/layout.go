package layout

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/vango-dev/forge/internal/errors"
	"github.com/vango-dev/forge/pkg/forge"
)

// DefaultRoot is the root tag used when a layout names none.
const DefaultRoot = "body"

// Layout is a parsed layout file.
type Layout struct {
	// Path is the file the layout was read from, used in error locations.
	Path string

	Title string
	Lang  string
	Root  string

	Entries   []Entry
	Styles    []StyleRule
	Hierarchy []Item
}

// Entry is one forge call and the names given to its results.
type Entry struct {
	Names []string
	Args  []forge.Arg
	Pos   Pos
}

// StyleRule applies Styles to the node called Name.
type StyleRule struct {
	Name   string
	Styles forge.Styles
	Pos    Pos
}

// Item is a hierarchy entry: a node name, or a nested list when Children
// is non-nil.
type Item struct {
	Name     string
	Children []Item
	Pos      Pos
}

// Pos is a position in the layout file.
type Pos struct {
	Line   int
	Column int
}

type rawLayout struct {
	Title     string     `yaml:"title"`
	Lang      string     `yaml:"lang"`
	Root      string     `yaml:"root"`
	Forge     []rawEntry `yaml:"forge"`
	Styles    yaml.Node  `yaml:"styles"`
	Hierarchy yaml.Node  `yaml:"hierarchy"`
}

type rawEntry struct {
	Names []string  `yaml:"names"`
	Args  yaml.Node `yaml:"args"`
}

// Load reads and parses a layout file.
func Load(path string) (*Layout, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.New("E001").Wrap(err).WithDetailf("Cannot read %s.", path)
	}
	return Parse(path, data)
}

// Parse parses layout data. path is only used in error locations.
func Parse(path string, data []byte) (*Layout, error) {
	var raw rawLayout
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&raw); err != nil && err != io.EOF {
		return nil, errors.New("E002").Wrap(err).
			WithSuggestion("Top-level keys are title, lang, root, forge, styles and hierarchy")
	}

	l := &Layout{
		Path:  path,
		Title: raw.Title,
		Lang:  raw.Lang,
		Root:  raw.Root,
	}
	if l.Root == "" {
		l.Root = DefaultRoot
	}

	for _, re := range raw.Forge {
		e, err := l.parseEntry(re)
		if err != nil {
			return nil, err
		}
		l.Entries = append(l.Entries, e)
	}

	if err := l.parseStyles(&raw.Styles); err != nil {
		return nil, err
	}

	if raw.Hierarchy.Kind != 0 {
		items, err := l.parseItems(&raw.Hierarchy)
		if err != nil {
			return nil, err
		}
		l.Hierarchy = items
	}
	return l, nil
}

func (l *Layout) parseEntry(re rawEntry) (Entry, error) {
	e := Entry{Names: re.Names, Pos: posOf(&re.Args)}
	if re.Args.Kind != yaml.SequenceNode {
		return e, l.errorAt("E006", &re.Args).WithDetail("args must be a list of tags and property maps.")
	}

	values := make([]any, 0, len(re.Args.Content))
	for _, n := range re.Args.Content {
		switch n.Kind {
		case yaml.ScalarNode:
			values = append(values, n.Value)
		case yaml.MappingNode:
			props := map[string]any{}
			if err := n.Decode(&props); err != nil {
				return e, l.errorAt("E006", n).Wrap(err)
			}
			values = append(values, props)
		default:
			return e, l.errorAt("E006", n).
				WithDetailf("Found a %s where a tag or property map was expected.", kindName(n.Kind))
		}
	}

	args, err := forge.Args(values...)
	if err != nil {
		return e, l.errorAt("E006", &re.Args).Wrap(err)
	}
	e.Args = args
	return e, nil
}

func (l *Layout) parseStyles(n *yaml.Node) error {
	if n.Kind == 0 {
		return nil
	}
	if n.Kind != yaml.MappingNode {
		return l.errorAt("E002", n).WithDetail("styles must map node names to style maps.")
	}
	for i := 0; i+1 < len(n.Content); i += 2 {
		key, val := n.Content[i], n.Content[i+1]
		styles := forge.Styles{}
		if err := val.Decode(&styles); err != nil {
			return l.errorAt("E002", val).Wrap(err)
		}
		l.Styles = append(l.Styles, StyleRule{Name: key.Value, Styles: styles, Pos: posOf(key)})
	}
	return nil
}

func (l *Layout) parseItems(n *yaml.Node) ([]Item, error) {
	if n.Kind != yaml.SequenceNode {
		return nil, l.errorAt("E007", n).WithDetail("hierarchy must be a list.")
	}
	items := make([]Item, 0, len(n.Content))
	for _, c := range n.Content {
		switch c.Kind {
		case yaml.ScalarNode:
			items = append(items, Item{Name: c.Value, Pos: posOf(c)})
		case yaml.SequenceNode:
			children, err := l.parseItems(c)
			if err != nil {
				return nil, err
			}
			items = append(items, Item{Children: children, Pos: posOf(c)})
		default:
			return nil, l.errorAt("E007", c).
				WithDetailf("Found a %s where a node name or list was expected.", kindName(c.Kind))
		}
	}
	return items, nil
}

func (l *Layout) errorAt(code string, n *yaml.Node) *errors.ForgeError {
	return l.errorAtPos(code, posOf(n))
}

func (l *Layout) errorAtPos(code string, p Pos) *errors.ForgeError {
	err := errors.New(code)
	if l.Path != "" && p.Line > 0 {
		err.WithLocation(l.Path, p.Line, p.Column)
	}
	return err
}

func posOf(n *yaml.Node) Pos {
	return Pos{Line: n.Line, Column: n.Column}
}

func kindName(k yaml.Kind) string {
	switch k {
	case yaml.DocumentNode:
		return "document"
	case yaml.SequenceNode:
		return "list"
	case yaml.MappingNode:
		return "map"
	case yaml.ScalarNode:
		return "scalar"
	case yaml.AliasNode:
		return "alias"
	default:
		return fmt.Sprintf("node kind %d", k)
	}
}

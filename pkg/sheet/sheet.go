package sheet

import (
	"bytes"
	stderrors "errors"
	"fmt"
	"io"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"golang.org/x/mod/semver"
	"gopkg.in/yaml.v3"

	"github.com/go-drift/cascade/pkg/cascade"
	"github.com/go-drift/cascade/pkg/core"
	"github.com/go-drift/cascade/pkg/errors"
	"github.com/go-drift/cascade/pkg/style"
)

// SupportedMajor is the only sheet format major version accepted.
const SupportedMajor = "v1"

// Format selects the sheet encoding.
type Format int

const (
	FormatYAML Format = iota
	FormatTOML
)

func (f Format) String() string {
	switch f {
	case FormatYAML:
		return "yaml"
	case FormatTOML:
		return "toml"
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

// FormatFor picks the format from a file extension.
func FormatFor(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	}
	return 0, fmt.Errorf("unsupported sheet extension %q", filepath.Ext(path))
}

type document struct {
	Version  string                    `yaml:"version" toml:"version"`
	Styles   map[string]map[string]any `yaml:"styles" toml:"styles"`
	Bindings []bindingDoc              `yaml:"bindings" toml:"bindings"`
	Tree     *nodeDoc                  `yaml:"tree" toml:"tree"`
}

type bindingDoc struct {
	Style string `yaml:"style" toml:"style"`
	Part  string `yaml:"part" toml:"part"`
	State string `yaml:"state" toml:"state"`
	Class string `yaml:"class" toml:"class"`
}

type nodeDoc struct {
	Name     string    `yaml:"name" toml:"name"`
	Class    string    `yaml:"class" toml:"class"`
	State    string    `yaml:"state" toml:"state"`
	Children []nodeDoc `yaml:"children" toml:"children"`
}

// Binding attaches a named block to a part and state. An empty Class
// binds to whatever widget the sheet is applied to; otherwise only to
// nodes of that class.
type Binding struct {
	Style string
	Part  style.PartSelector
	State style.State
	Class string
	Block *style.Style
}

// Sheet is a decoded style sheet. Its blocks are created once, so binding
// the sheet to many widgets shares them.
type Sheet struct {
	version  string
	styles   map[string]*style.Style
	bindings []Binding
	tree     *nodeDoc
}

// Load reads the sheet at path, choosing the format from its extension.
func Load(path string) (*Sheet, error) {
	format, err := FormatFor(path)
	if err != nil {
		return nil, sheetError("sheet.Load", path, err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, sheetError("sheet.Load", path, err)
	}
	s, err := Parse(data, format)
	if err != nil {
		return nil, withSource(err, path)
	}
	return s, nil
}

// withSource names path as the source of the CascadeError err wraps.
func withSource(err error, path string) error {
	var ce *errors.CascadeError
	if stderrors.As(err, &ce) {
		ce.Source = path
	}
	return err
}

// Parse decodes a sheet.
func Parse(data []byte, format Format) (*Sheet, error) {
	var doc document
	var err error
	switch format {
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		err = dec.Decode(&doc)
		if err == io.EOF {
			err = nil
		}
	case FormatTOML:
		dec := toml.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		err = dec.Decode(&doc)
	default:
		err = fmt.Errorf("unknown format %v", format)
	}
	if err != nil {
		return nil, sheetError("sheet.Parse", "", err)
	}
	s, err := build(&doc)
	if err != nil {
		return nil, sheetError("sheet.Parse", "", err)
	}
	return s, nil
}

func sheetError(op, source string, err error) error {
	ce := errors.New(op, errors.KindSheet, err)
	ce.Source = source
	return ce
}

func build(doc *document) (*Sheet, error) {
	version := doc.Version
	if version == "" {
		version = SupportedMajor + ".0.0"
	}
	if !semver.IsValid(version) {
		return nil, fmt.Errorf("invalid version %q", doc.Version)
	}
	if major := semver.Major(version); major != SupportedMajor {
		return nil, fmt.Errorf("unsupported sheet version %s (want %s.x)", version, SupportedMajor)
	}

	s := &Sheet{
		version: version,
		styles:  make(map[string]*style.Style, len(doc.Styles)),
		tree:    doc.Tree,
	}
	for name, raw := range doc.Styles {
		block, err := decodeBlock(raw)
		if err != nil {
			return nil, fmt.Errorf("style %s: %w", name, err)
		}
		s.styles[name] = block
	}
	for i, b := range doc.Bindings {
		block, ok := s.styles[b.Style]
		if !ok {
			return nil, fmt.Errorf("binding %d: unknown style %q", i, b.Style)
		}
		part := style.OnPart(style.PartMain)
		if b.Part != "" {
			var err error
			if part, err = style.ParsePartSelector(b.Part); err != nil {
				return nil, fmt.Errorf("binding %d: %w", i, err)
			}
		}
		state, err := style.ParseState(b.State)
		if err != nil {
			return nil, fmt.Errorf("binding %d: %w", i, err)
		}
		s.bindings = append(s.bindings, Binding{
			Style: b.Style,
			Part:  part,
			State: state,
			Class: b.Class,
			Block: block,
		})
	}
	if doc.Tree != nil {
		if err := checkTree(doc.Tree); err != nil {
			return nil, err
		}
	}
	return s, nil
}

func checkTree(n *nodeDoc) error {
	if n.Name == "" {
		return fmt.Errorf("tree: node without a name")
	}
	if _, err := style.ParseState(n.State); err != nil {
		return fmt.Errorf("tree %s: %w", n.Name, err)
	}
	for i := range n.Children {
		if err := checkTree(&n.Children[i]); err != nil {
			return err
		}
	}
	return nil
}

// Version returns the declared format version.
func (s *Sheet) Version() string {
	return s.version
}

// Style returns the named block.
func (s *Sheet) Style(name string) (*style.Style, bool) {
	block, ok := s.styles[name]
	return block, ok
}

// StyleNames returns the block names in sorted order.
func (s *Sheet) StyleNames() []string {
	return slices.Sorted(maps.Keys(s.styles))
}

// Bindings returns the bindings in file order.
func (s *Sheet) Bindings() []Binding {
	return slices.Clone(s.bindings)
}

// Apply binds every class-less binding to w behind a single refresh.
func (s *Sheet) Apply(eng *cascade.Engine, w cascade.Widget) error {
	restore := eng.Batch()
	var err error
	for _, b := range s.bindings {
		if b.Class != "" {
			continue
		}
		if err = eng.AddStyle(w, b.Part, b.State, b.Block); err != nil {
			break
		}
	}
	restore()
	eng.RefreshStyle(w, style.AnyPart, style.PropAll)
	return err
}

// ApplyTree binds class-less bindings to root and classed bindings to every
// node of root's subtree whose class matches.
func (s *Sheet) ApplyTree(eng *cascade.Engine, root *core.Node) error {
	restore := eng.Batch()
	var err error
	root.Walk(func(n *core.Node) bool {
		for _, b := range s.bindings {
			if !s.binds(b, n, root) {
				continue
			}
			if err = eng.AddStyle(n, b.Part, b.State, b.Block); err != nil {
				return false
			}
		}
		return true
	})
	restore()
	eng.RefreshStyle(root, style.AnyPart, style.PropAll)
	return err
}

func (s *Sheet) binds(b Binding, n, root *core.Node) bool {
	if b.Class == "" {
		return n == root
	}
	return b.Class == n.ClassName()
}

// HasTree reports whether the sheet describes a widget tree.
func (s *Sheet) HasTree() bool {
	return s.tree != nil
}

// BuildTree creates the described widget tree, or a single node named
// "root" when the sheet has none. States are set without notification.
func (s *Sheet) BuildTree() *core.Node {
	if s.tree == nil {
		return core.NewNode("root")
	}
	return buildNode(s.tree)
}

func buildNode(d *nodeDoc) *core.Node {
	n := core.NewNode(d.Name)
	n.Class = d.Class
	// checkTree already validated the state.
	state, _ := style.ParseState(d.State)
	n.SetActiveState(state)
	for i := range d.Children {
		n.AddChild(buildNode(&d.Children[i]))
	}
	return n
}

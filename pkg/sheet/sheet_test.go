package sheet_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-drift/cascade/pkg/animation"
	"github.com/go-drift/cascade/pkg/cascade"
	"github.com/go-drift/cascade/pkg/errors"
	"github.com/go-drift/cascade/pkg/graphics"
	"github.com/go-drift/cascade/pkg/sheet"
	"github.com/go-drift/cascade/pkg/style"
	drifttest "github.com/go-drift/cascade/pkg/testing"
)

const cardYAML = `
version: v1.2.0
styles:
  card: { bg_color: "#ffffff", bg_opa: 255, radius: 8, pad_all: 12 }
  pressed:
    bg_color: lightgray
    opa: 50%
    transition: { props: [bg_color, opa], duration: 200ms, delay: 10, path: ease_out }
  knob: { width: content, text_font: mono_12, clip_corner: true }
bindings:
  - { style: card, part: main, state: default }
  - { style: pressed, state: pressed|focused }
  - { style: knob, part: knob }
`

const cardTOML = `
version = "v1.0.0"

[styles.card]
bg_color = "#ffffff"
bg_opa = 255
radius = 8
pad_all = 12

[styles.pressed]
bg_color = "lightgray"
opa = "50%"
transition = { props = ["bg_color", "opa"], duration = "200ms", delay = 10, path = "ease_out" }

[styles.knob]
width = "content"
text_font = "mono_12"
clip_corner = true

[[bindings]]
style = "card"
part = "main"
state = "default"

[[bindings]]
style = "pressed"
state = "pressed|focused"

[[bindings]]
style = "knob"
part = "knob"
`

func TestParse_Formats(t *testing.T) {
	tests := []struct {
		name   string
		data   string
		format sheet.Format
	}{
		{"yaml", cardYAML, sheet.FormatYAML},
		{"toml", cardTOML, sheet.FormatTOML},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := sheet.Parse([]byte(tt.data), tt.format)
			require.NoError(t, err)
			assert.Equal(t, []string{"card", "knob", "pressed"}, s.StyleNames())

			card, ok := s.Style("card")
			require.True(t, ok)
			want := style.New().
				SetBgColor(graphics.ColorWhite).
				SetBgOpa(255).
				SetRadius(8).
				SetPadAll(12)
			assert.True(t, want.Equal(card))

			pressed, _ := s.Style("pressed")
			v, _ := pressed.Get(style.PropBgColor)
			assert.Equal(t, graphics.RGBA8(211, 211, 211, 255), v.Color)
			v, _ = pressed.Get(style.PropOpa)
			assert.Equal(t, int32(127), v.Num)
			v, _ = pressed.Get(style.PropTransition)
			desc, ok := v.Ref.(*style.TransitionDesc)
			require.True(t, ok)
			assert.Equal(t, []style.Prop{style.PropBgColor, style.PropOpa}, desc.Props)
			assert.Equal(t, 200*time.Millisecond, desc.Duration)
			assert.Equal(t, 10*time.Millisecond, desc.Delay)
			require.NotNil(t, desc.Path)
			assert.InDelta(t, animation.EaseOut(0.5), desc.Path(0.5), 1e-9)

			knob, _ := s.Style("knob")
			v, _ = knob.Get(style.PropWidth)
			assert.Equal(t, graphics.SizeContent, v.Num)
			v, _ = knob.Get(style.PropTextFont)
			assert.Equal(t, "mono_12", v.Ref)
			v, _ = knob.Get(style.PropClipCorner)
			assert.Equal(t, int32(1), v.Num)

			bindings := s.Bindings()
			require.Len(t, bindings, 3)
			assert.Equal(t, style.OnPart(style.PartMain), bindings[0].Part)
			assert.Equal(t, style.StateDefault, bindings[0].State)
			assert.Equal(t, style.OnPart(style.PartMain), bindings[1].Part, "part defaults to main")
			assert.Equal(t, style.StatePressed|style.StateFocused, bindings[1].State)
			assert.Same(t, pressed, bindings[1].Block)
			assert.Equal(t, style.OnPart(style.PartKnob), bindings[2].Part)
		})
	}
}

func TestParse_Versions(t *testing.T) {
	tests := []struct {
		version string
		ok      bool
	}{
		{"", true},
		{"v1", true},
		{"v1.4.2", true},
		{"v1.0.0-rc.1", true},
		{"v2.0.0", false},
		{"v0.9.0", false},
		{"1.0.0", false},
		{"latest", false},
	}
	for _, tt := range tests {
		t.Run(tt.version, func(t *testing.T) {
			data := "styles: {}\n"
			if tt.version != "" {
				data = "version: " + tt.version + "\n" + data
			}
			_, err := sheet.Parse([]byte(data), sheet.FormatYAML)
			if tt.ok {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, errors.IsKind(err, errors.KindSheet))
		})
	}
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"unknown property", "styles: { a: { glow: 1 } }"},
		{"bad color", `styles: { a: { bg_color: "#12" } }`},
		{"unknown color name", "styles: { a: { bg_color: notacolor } }"},
		{"fractional number", "styles: { a: { radius: 1.5 } }"},
		{"bad percentage", "styles: { a: { opa: 150% } }"},
		{"ref not a string", "styles: { a: { text_font: 12 } }"},
		{"transition without props", "styles: { a: { transition: { duration: 1s } } }"},
		{"transition unknown path", "styles: { a: { transition: { props: [opa], path: wobble } } }"},
		{"transition unknown key", "styles: { a: { transition: { props: [opa], speed: 2 } } }"},
		{"transition bad duration", "styles: { a: { transition: { props: [opa], duration: soon } } }"},
		{"transition negative delay", "styles: { a: { transition: { props: [opa], delay: -1s } } }"},
		{"binding unknown style", "bindings: [ { style: missing } ]"},
		{"binding bad part", "styles: { a: {} }\nbindings: [ { style: a, part: wheel } ]"},
		{"binding bad state", "styles: { a: {} }\nbindings: [ { style: a, state: sleepy } ]"},
		{"unknown top-level key", "colors: {}"},
		{"tree node without name", "tree: { children: [ {} ] }"},
		{"tree bad state", "tree: { name: a, state: sleepy }"},
		{"malformed", "styles: ["},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := sheet.Parse([]byte(tt.data), sheet.FormatYAML)
			require.Error(t, err)
			assert.True(t, errors.IsKind(err, errors.KindSheet), "got %v", err)
		})
	}
}

func TestParse_Empty(t *testing.T) {
	s, err := sheet.Parse(nil, sheet.FormatYAML)
	require.NoError(t, err)
	assert.Empty(t, s.StyleNames())
	assert.Equal(t, "v1.0.0", s.Version())
	assert.False(t, s.HasTree())
	assert.Equal(t, "root", s.BuildTree().Name)
}

func TestFormatFor(t *testing.T) {
	for path, want := range map[string]sheet.Format{
		"a.yaml":     sheet.FormatYAML,
		"a.YML":      sheet.FormatYAML,
		"dir/a.toml": sheet.FormatTOML,
	} {
		got, err := sheet.FormatFor(path)
		require.NoError(t, err, path)
		assert.Equal(t, want, got, path)
	}
	_, err := sheet.FormatFor("a.json")
	assert.Error(t, err)
	assert.Equal(t, "toml", sheet.FormatTOML.String())
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	yamlPath := filepath.Join(dir, "card.yaml")
	tomlPath := filepath.Join(dir, "card.toml")
	badPath := filepath.Join(dir, "bad.yml")
	require.NoError(t, os.WriteFile(yamlPath, []byte(cardYAML), 0o644))
	require.NoError(t, os.WriteFile(tomlPath, []byte(cardTOML), 0o644))
	require.NoError(t, os.WriteFile(badPath, []byte("version: v3.0.0"), 0o644))

	a, err := sheet.Load(yamlPath)
	require.NoError(t, err)
	b, err := sheet.Load(tomlPath)
	require.NoError(t, err)
	for _, name := range a.StyleNames() {
		sa, _ := a.Style(name)
		sb, ok := b.Style(name)
		require.True(t, ok, name)
		assert.ElementsMatch(t, sa.Props(), sb.Props(), name)
	}

	_, err = sheet.Load(badPath)
	var ce *errors.CascadeError
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, errors.KindSheet, ce.Kind)
	assert.Equal(t, badPath, ce.Source)

	_, err = sheet.Load(filepath.Join(dir, "missing.yaml"))
	assert.True(t, errors.IsKind(err, errors.KindSheet))
}

func TestApply(t *testing.T) {
	s, err := sheet.Parse([]byte(cardYAML), sheet.FormatYAML)
	require.NoError(t, err)

	tester := drifttest.NewStyleTesterWithT(t)
	eng := tester.Engine()
	a, b := tester.Chain("a")[0], tester.Chain("b")[0]
	tester.Reset()

	require.NoError(t, s.Apply(eng, a))
	require.NoError(t, s.Apply(eng, b))
	assert.Len(t, tester.StyleEvents, 2, "one refresh per Apply")
	assert.Equal(t, 3, a.StyleList().Len())

	assert.Equal(t, int32(8), cascade.GetProp(a, style.PartMain, style.PropRadius).Num)
	assert.Equal(t, int32(12), cascade.GetProp(a, style.PartMain, style.PropPadLeft).Num)
	assert.Equal(t, graphics.SizeContent, cascade.GetProp(a, style.PartKnob, style.PropWidth).Num)

	// Both widgets share the sheet's blocks.
	card, _ := s.Style("card")
	card.SetRadius(2)
	eng.ReportStyleChange(card)
	assert.Equal(t, int32(2), cascade.GetProp(a, style.PartMain, style.PropRadius).Num)
	assert.Equal(t, int32(2), cascade.GetProp(b, style.PartMain, style.PropRadius).Num)

	eng.SetState(a, style.StatePressed|style.StateFocused)
	require.NoError(t, tester.PumpAndSettle(time.Second))
	assert.Equal(t, graphics.RGBA8(211, 211, 211, 255), cascade.GetProp(a, style.PartMain, style.PropBgColor).Color)
	assert.Equal(t, int32(127), cascade.GetProp(a, style.PartMain, style.PropOpa).Num)
}

func TestApply_Capacity(t *testing.T) {
	s, err := sheet.Parse([]byte(cardYAML), sheet.FormatYAML)
	require.NoError(t, err)

	tester := drifttest.NewStyleTester(cascade.Options{MaxBindings: 2})
	t.Cleanup(tester.Cleanup)
	n := tester.Chain("box")[0]

	err = s.Apply(tester.Engine(), n)
	assert.True(t, errors.IsKind(err, errors.KindCapacity))
	assert.Equal(t, 2, n.StyleList().Len())
}

const treeYAML = `
version: v1.0.0
styles:
  screen: { text_color: "#333333", bg_color: "#fafafa" }
  button: { bg_color: "#2196f3", radius: 4 }
  button_checked: { bg_color: "#1565c0" }
  label: { text_font: sans_16 }
bindings:
  - { style: screen }
  - { style: button, class: button }
  - { style: button_checked, class: button, state: checked }
  - { style: label, class: label, part: any }
tree:
  name: screen
  children:
    - name: toolbar
      children:
        - { name: save, class: button, state: checked }
        - { name: title, class: label }
    - { name: cancel, class: button }
`

func TestApplyTree(t *testing.T) {
	s, err := sheet.Parse([]byte(treeYAML), sheet.FormatYAML)
	require.NoError(t, err)
	require.True(t, s.HasTree())

	root := s.BuildTree()
	assert.Equal(t, "screen", root.Name)
	save := root.Find("screen/toolbar/save")
	require.NotNil(t, save)
	assert.Equal(t, style.StateChecked, save.State())
	cancel := root.Find("cancel")
	require.NotNil(t, cancel)
	title := root.Find("title")
	require.NotNil(t, title)

	tester := drifttest.NewStyleTesterWithT(t)
	eng := tester.Engine()
	eng.Mount(root)
	t.Cleanup(func() { eng.Detach(root) })
	tester.Reset()

	require.NoError(t, s.ApplyTree(eng, root))
	assert.Len(t, tester.StyleEvents, 5, "one refresh reaching every node")

	assert.Equal(t, 1, root.StyleList().Len())
	assert.Equal(t, 0, root.Find("toolbar").StyleList().Len())
	assert.Equal(t, 2, save.StyleList().Len())

	assert.Equal(t, "#1565c0", cascade.GetProp(save, style.PartMain, style.PropBgColor).Format(style.PropBgColor))
	assert.Equal(t, "#2196f3", cascade.GetProp(cancel, style.PartMain, style.PropBgColor).Format(style.PropBgColor))
	assert.Equal(t, "#333333", cascade.GetProp(title, style.PartMain, style.PropTextColor).Format(style.PropTextColor))
	assert.Equal(t, "sans_16", cascade.GetProp(title, style.PartMain, style.PropTextFont).Ref)
}

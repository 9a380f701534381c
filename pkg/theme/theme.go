package theme

import (
	"maps"
	"slices"
	"time"

	"github.com/go-drift/cascade/pkg/cascade"
	"github.com/go-drift/cascade/pkg/core"
	"github.com/go-drift/cascade/pkg/graphics"
	"github.com/go-drift/cascade/pkg/style"
)

// Rule binds one shared block of a class to a part and state.
type Rule struct {
	Part  style.PartSelector
	State style.State
	Style *style.Style
}

// Theme turns ThemeData into shared style blocks grouped by class. The
// blocks keep their identity for the lifetime of the theme; SetData rewrites
// them in place.
type Theme struct {
	data    *ThemeData
	classes map[string][]Rule
	descs   map[string]*style.TransitionDesc
}

// New builds the blocks for data. A nil data uses DefaultLightTheme.
func New(data *ThemeData) *Theme {
	if data == nil {
		data = DefaultLightTheme()
	}
	t := &Theme{data: data, descs: make(map[string]*style.TransitionDesc)}
	t.classes = t.build()
	return t
}

// Data returns the current theme data.
func (t *Theme) Data() *ThemeData {
	return t.data
}

// Classes returns the class names in sorted order.
func (t *Theme) Classes() []string {
	return slices.Sorted(maps.Keys(t.classes))
}

// Rules returns the rules of class, or nil for an unknown class.
func (t *Theme) Rules(class string) []Rule {
	return slices.Clone(t.classes[class])
}

// Apply adds the rules of the node's class to n. Nodes of unknown classes
// are left alone.
func (t *Theme) Apply(eng *cascade.Engine, n *core.Node) error {
	for _, r := range t.classes[n.ClassName()] {
		if err := eng.AddStyle(n, r.Part, r.State, r.Style); err != nil {
			return err
		}
	}
	return nil
}

// ApplyTree applies the theme to root and every descendant behind a single
// refresh.
func (t *Theme) ApplyTree(eng *cascade.Engine, root *core.Node) error {
	restore := eng.Batch()
	var err error
	root.Walk(func(n *core.Node) bool {
		err = t.Apply(eng, n)
		return err == nil
	})
	restore()
	eng.RefreshStyle(root, style.AnyPart, style.PropAll)
	return err
}

// SetData rebuilds every block from data and reports the blocks whose
// contents changed to eng.
func (t *Theme) SetData(eng *cascade.Engine, data *ThemeData) {
	t.data = data
	fresh := t.build()
	for class, rules := range t.classes {
		for i, r := range rules {
			next := fresh[class][i].Style
			if r.Style.Equal(next) {
				continue
			}
			r.Style.CopyFrom(next)
			eng.ReportStyleChange(r.Style)
		}
	}
}

func (t *Theme) desc(key string, d time.Duration, props ...style.Prop) *style.TransitionDesc {
	desc, ok := t.descs[key]
	if !ok {
		desc = &style.TransitionDesc{Props: props}
		t.descs[key] = desc
	}
	desc.Duration = d
	return desc
}

func (t *Theme) build() map[string][]Rule {
	colors := t.data.ColorScheme
	out := make(map[string][]Rule)
	add := func(class string, part style.PartSelector, state style.State, s *style.Style) {
		out[class] = append(out[class], Rule{Part: part, State: state, Style: s})
	}
	main := style.OnPart(style.PartMain)

	add("screen", main, style.StateDefault, style.New().
		SetBgColor(colors.Background).
		SetBgOpa(graphics.OpaCover).
		SetTextColor(colors.OnBackground).
		SetRef(style.PropTextFont, t.data.Font))

	bt := t.data.ButtonThemeOf()
	add("button", main, style.StateDefault, style.New().
		SetBgColor(bt.BackgroundColor).
		SetBgOpa(graphics.OpaCover).
		SetTextColor(bt.ForegroundColor).
		SetRadius(bt.BorderRadius).
		SetNum(style.PropPadLeft, bt.PaddingH).
		SetNum(style.PropPadRight, bt.PaddingH).
		SetNum(style.PropPadTop, bt.PaddingV).
		SetNum(style.PropPadBottom, bt.PaddingV).
		SetTransition(t.desc("button", bt.PressDuration, style.PropBgColor, style.PropTransformWidth)))
	add("button", main, style.StatePressed, style.New().
		SetBgColor(bt.PressedBackgroundColor).
		SetNum(style.PropTransformWidth, 2))
	add("button", main, style.StateFocusKey, style.New().
		SetNum(style.PropOutlineWidth, 2).
		SetColor(style.PropOutlineColor, bt.FocusOutlineColor).
		SetNum(style.PropOutlinePad, 2))
	add("button", main, style.StateDisabled, style.New().
		SetBgColor(bt.DisabledBackgroundColor).
		SetTextColor(bt.DisabledForegroundColor))

	cb := t.data.CheckboxThemeOf()
	indicator := style.OnPart(style.PartIndicator)
	add("checkbox", indicator, style.StateDefault, style.New().
		SetBgColor(cb.BackgroundColor).
		SetBgOpa(graphics.OpaCover).
		SetBorderWidth(cb.BorderWidth).
		SetColor(style.PropBorderColor, cb.BorderColor).
		SetRadius(cb.BorderRadius))
	add("checkbox", indicator, style.StateChecked, style.New().
		SetBgColor(cb.ActiveColor).
		SetColor(style.PropBorderColor, cb.ActiveColor))
	add("checkbox", indicator, style.StateChecked|style.StateDisabled, style.New().
		SetBgColor(cb.DisabledActiveColor).
		SetColor(style.PropBorderColor, cb.DisabledActiveColor))

	sw := t.data.SwitchThemeOf()
	add("switch", style.AnyPart, style.StateDefault, style.New().
		SetRadius(sw.Height/2).
		SetTransition(t.desc("switch", sw.ToggleDuration, style.PropBgOpa, style.PropTranslateX)))
	add("switch", main, style.StateDefault, style.New().
		SetBgColor(sw.InactiveTrackColor).
		SetBgOpa(graphics.OpaCover).
		SetNum(style.PropWidth, sw.Width).
		SetNum(style.PropHeight, sw.Height))
	add("switch", indicator, style.StateDefault, style.New().
		SetBgColor(sw.ActiveTrackColor).
		SetBgOpa(graphics.OpaTransp))
	add("switch", indicator, style.StateChecked, style.New().
		SetBgOpa(graphics.OpaCover))
	add("switch", style.OnPart(style.PartKnob), style.StateDefault, style.New().
		SetBgColor(sw.ThumbColor).
		SetBgOpa(graphics.OpaCover).
		SetPadAll(-2))
	add("switch", style.OnPart(style.PartKnob), style.StateChecked, style.New().
		SetNum(style.PropTranslateX, sw.Width-sw.Height))
	add("switch", style.OnPart(style.PartKnob), style.StateDisabled, style.New().
		SetBgColor(sw.DisabledThumbColor))

	tf := t.data.TextFieldThemeOf()
	add("textfield", main, style.StateDefault, style.New().
		SetBgColor(tf.BackgroundColor).
		SetBgOpa(graphics.OpaCover).
		SetBorderWidth(tf.BorderWidth).
		SetColor(style.PropBorderColor, tf.BorderColor).
		SetTextColor(tf.TextColor).
		SetPadAll(tf.Padding))
	add("textfield", main, style.StateFocused, style.New().
		SetColor(style.PropBorderColor, tf.FocusColor).
		SetBorderWidth(tf.FocusBorderWidth))
	// User1 marks invalid input.
	add("textfield", main, style.StateUser1, style.New().
		SetColor(style.PropBorderColor, tf.ErrorColor))
	add("textfield", style.OnPart(style.PartCursor), style.StateDefault, style.New().
		SetBgColor(tf.CursorColor).
		SetBgOpa(graphics.OpaCover).
		SetNum(style.PropWidth, 2))
	add("textfield", style.OnPart(style.PartCursor), style.StateEdited, style.New().
		SetNum(style.PropAnimTime, 500))

	return out
}

package style

import (
	"fmt"

	"github.com/go-drift/cascade/pkg/graphics"
)

// Prop identifies a style property.
type Prop uint16

// Style properties. The order is stable but carries no meaning; behavior
// comes from each property's [Meta].
const (
	PropInvalid Prop = iota

	PropWidth
	PropMinWidth
	PropMaxWidth
	PropHeight
	PropMinHeight
	PropMaxHeight
	PropX
	PropY
	PropAlign
	PropTransformWidth
	PropTransformHeight
	PropTranslateX
	PropTranslateY
	PropTransformZoom
	PropTransformAngle

	PropPadTop
	PropPadBottom
	PropPadLeft
	PropPadRight
	PropPadRow
	PropPadColumn

	PropRadius
	PropClipCorner
	PropOpa
	PropColorFilterOpa
	PropAnimTime
	PropTransition
	PropBlendMode

	PropBgColor
	PropBgOpa
	PropBgGradColor
	PropBgGradDir
	PropBgImgSrc
	PropBgImgOpa
	PropBgImgRecolor
	PropBgImgRecolorOpa
	PropBgImgTiled

	PropBorderColor
	PropBorderOpa
	PropBorderWidth
	PropBorderSide
	PropBorderPost

	PropOutlineWidth
	PropOutlineColor
	PropOutlineOpa
	PropOutlinePad

	PropShadowWidth
	PropShadowOfsX
	PropShadowOfsY
	PropShadowSpread
	PropShadowColor
	PropShadowOpa

	PropImgOpa
	PropImgRecolor
	PropImgRecolorOpa

	PropLineWidth
	PropLineRounded
	PropLineColor
	PropLineOpa

	PropArcWidth
	PropArcRounded
	PropArcColor
	PropArcOpa

	PropTextColor
	PropTextOpa
	PropTextFont
	PropTextLetterSpace
	PropTextLineSpace
	PropTextDecor
	PropTextAlign

	PropContentText
	PropContentAlign
	PropContentOfsX
	PropContentOfsY

	propCount
)

// PropAll stands for every property in refresh requests. It is never stored
// in a style block and never resolved.
const PropAll Prop = 0xFFFF

// Kind tells which field of a [Value] a property uses.
type Kind uint8

const (
	KindNum Kind = iota
	KindColor
	KindRef
)

func (k Kind) String() string {
	switch k {
	case KindNum:
		return "num"
	case KindColor:
		return "color"
	case KindRef:
		return "ref"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Flags describe how a property change propagates.
type Flags uint8

const (
	// FlagInherit makes an unset property resolve from the parent's main part.
	FlagInherit Flags = 1 << iota
	// FlagLayout marks properties whose change requires a layout pass.
	FlagLayout
	// FlagExtDraw marks properties that grow the drawn area beyond the
	// layout box (shadow, outline, transforms).
	FlagExtDraw
)

// Meta is the static description of a property.
type Meta struct {
	Name    string
	Kind    Kind
	Flags   Flags
	Default Value
}

func num(name string, def int32, flags Flags) Meta {
	return Meta{Name: name, Kind: KindNum, Flags: flags, Default: Num(def)}
}

func color(name string, def graphics.Color, flags Flags) Meta {
	return Meta{Name: name, Kind: KindColor, Flags: flags, Default: ColorValue(def)}
}

func ref(name string, flags Flags) Meta {
	return Meta{Name: name, Kind: KindRef, Flags: flags}
}

var metas = [propCount]Meta{
	PropInvalid: {Name: "invalid"},

	PropWidth:           num("width", graphics.SizeContent, FlagLayout),
	PropMinWidth:        num("min_width", 0, FlagLayout),
	PropMaxWidth:        num("max_width", graphics.CoordMax, FlagLayout),
	PropHeight:          num("height", graphics.SizeContent, FlagLayout),
	PropMinHeight:       num("min_height", 0, FlagLayout),
	PropMaxHeight:       num("max_height", graphics.CoordMax, FlagLayout),
	PropX:               num("x", 0, FlagLayout),
	PropY:               num("y", 0, FlagLayout),
	PropAlign:           num("align", 0, FlagLayout),
	PropTransformWidth:  num("transform_width", 0, FlagExtDraw),
	PropTransformHeight: num("transform_height", 0, FlagExtDraw),
	PropTranslateX:      num("translate_x", 0, FlagLayout),
	PropTranslateY:      num("translate_y", 0, FlagLayout),
	PropTransformZoom:   num("transform_zoom", graphics.ZoomNone, FlagExtDraw),
	PropTransformAngle:  num("transform_angle", 0, FlagExtDraw),

	PropPadTop:    num("pad_top", 0, FlagLayout),
	PropPadBottom: num("pad_bottom", 0, FlagLayout),
	PropPadLeft:   num("pad_left", 0, FlagLayout),
	PropPadRight:  num("pad_right", 0, FlagLayout),
	PropPadRow:    num("pad_row", 0, FlagLayout),
	PropPadColumn: num("pad_column", 0, FlagLayout),

	PropRadius:         num("radius", 0, 0),
	PropClipCorner:     num("clip_corner", 0, 0),
	PropOpa:            num("opa", graphics.OpaCover, 0),
	PropColorFilterOpa: num("color_filter_opa", graphics.OpaTransp, 0),
	PropAnimTime:       num("anim_time", 0, 0),
	PropTransition:     ref("transition", 0),
	PropBlendMode:      num("blend_mode", int32(BlendNormal), 0),

	PropBgColor:         color("bg_color", graphics.ColorWhite, 0),
	PropBgOpa:           num("bg_opa", graphics.OpaTransp, 0),
	PropBgGradColor:     color("bg_grad_color", graphics.ColorBlack, 0),
	PropBgGradDir:       num("bg_grad_dir", 0, 0),
	PropBgImgSrc:        ref("bg_img_src", FlagExtDraw),
	PropBgImgOpa:        num("bg_img_opa", graphics.OpaCover, 0),
	PropBgImgRecolor:    color("bg_img_recolor", graphics.ColorBlack, 0),
	PropBgImgRecolorOpa: num("bg_img_recolor_opa", graphics.OpaTransp, 0),
	PropBgImgTiled:      num("bg_img_tiled", 0, 0),

	PropBorderColor: color("border_color", graphics.ColorBlack, 0),
	PropBorderOpa:   num("border_opa", graphics.OpaCover, 0),
	PropBorderWidth: num("border_width", 0, FlagLayout),
	PropBorderSide:  num("border_side", int32(BorderSideFull), 0),
	PropBorderPost:  num("border_post", 0, 0),

	PropOutlineWidth: num("outline_width", 0, FlagExtDraw),
	PropOutlineColor: color("outline_color", graphics.ColorBlack, 0),
	PropOutlineOpa:   num("outline_opa", graphics.OpaCover, 0),
	PropOutlinePad:   num("outline_pad", 0, FlagExtDraw),

	PropShadowWidth:  num("shadow_width", 0, FlagExtDraw),
	PropShadowOfsX:   num("shadow_ofs_x", 0, FlagExtDraw),
	PropShadowOfsY:   num("shadow_ofs_y", 0, FlagExtDraw),
	PropShadowSpread: num("shadow_spread", 0, FlagExtDraw),
	PropShadowColor:  color("shadow_color", graphics.ColorBlack, 0),
	PropShadowOpa:    num("shadow_opa", graphics.OpaCover, 0),

	PropImgOpa:        num("img_opa", graphics.OpaCover, 0),
	PropImgRecolor:    color("img_recolor", graphics.ColorBlack, 0),
	PropImgRecolorOpa: num("img_recolor_opa", graphics.OpaTransp, 0),

	PropLineWidth:   num("line_width", 0, FlagExtDraw),
	PropLineRounded: num("line_rounded", 0, 0),
	PropLineColor:   color("line_color", graphics.ColorBlack, 0),
	PropLineOpa:     num("line_opa", graphics.OpaCover, 0),

	PropArcWidth:   num("arc_width", 0, FlagExtDraw),
	PropArcRounded: num("arc_rounded", 0, 0),
	PropArcColor:   color("arc_color", graphics.ColorBlack, 0),
	PropArcOpa:     num("arc_opa", graphics.OpaCover, 0),

	PropTextColor:       color("text_color", graphics.ColorBlack, FlagInherit),
	PropTextOpa:         num("text_opa", graphics.OpaCover, FlagInherit),
	PropTextFont:        Meta{Name: "text_font", Kind: KindRef, Flags: FlagInherit | FlagLayout, Default: Ref(DefaultFont)},
	PropTextLetterSpace: num("text_letter_space", 0, FlagInherit|FlagLayout),
	PropTextLineSpace:   num("text_line_space", 0, FlagInherit|FlagLayout),
	PropTextDecor:       num("text_decor", 0, FlagInherit),
	PropTextAlign:       num("text_align", 0, FlagInherit|FlagLayout),

	PropContentText:  ref("content_text", FlagExtDraw),
	PropContentAlign: num("content_align", 0, FlagExtDraw),
	PropContentOfsX:  num("content_ofs_x", 0, FlagExtDraw),
	PropContentOfsY:  num("content_ofs_y", 0, FlagExtDraw),
}

// DefaultFont is the font reference used when no text_font is set anywhere.
const DefaultFont = "sans_14"

// BlendMode values for [PropBlendMode].
type BlendMode int32

const (
	BlendNormal BlendMode = iota
	BlendAdditive
	BlendSubtractive
	BlendMultiply
)

// BorderSide bits for [PropBorderSide].
type BorderSide int32

const (
	BorderSideNone   BorderSide = 0
	BorderSideBottom BorderSide = 1 << 0
	BorderSideTop    BorderSide = 1 << 1
	BorderSideLeft   BorderSide = 1 << 2
	BorderSideRight  BorderSide = 1 << 3
	BorderSideFull   BorderSide = 0x0F
)

var byName = func() map[string]Prop {
	m := make(map[string]Prop, propCount)
	for p := PropInvalid + 1; p < propCount; p++ {
		m[metas[p].Name] = p
	}
	return m
}()

// Lookup returns the property with the given snake_case name.
func Lookup(name string) (Prop, bool) {
	p, ok := byName[name]
	return p, ok
}

// Props returns every valid property in declaration order.
func Props() []Prop {
	out := make([]Prop, 0, propCount-1)
	for p := PropInvalid + 1; p < propCount; p++ {
		out = append(out, p)
	}
	return out
}

// Valid reports whether p names a real property.
func (p Prop) Valid() bool {
	return p > PropInvalid && p < propCount
}

// Meta returns the static description of p. Unknown properties get a
// zero-valued Meta with an empty default.
func (p Prop) Meta() Meta {
	if !p.Valid() {
		return Meta{Name: p.String()}
	}
	return metas[p]
}

// Default returns the value p resolves to when nothing defines it.
func (p Prop) Default() Value {
	return p.Meta().Default
}

// Kind returns which Value field p uses.
func (p Prop) Kind() Kind {
	return p.Meta().Kind
}

// Inherits reports whether an unset p falls back to the parent.
func (p Prop) Inherits() bool {
	return p.Meta().Flags&FlagInherit != 0
}

// AffectsLayout reports whether changing p requires a layout pass.
func (p Prop) AffectsLayout() bool {
	return p.Meta().Flags&FlagLayout != 0
}

// AffectsDrawPad reports whether changing p changes the extra drawn area
// around the widget.
func (p Prop) AffectsDrawPad() bool {
	return p.Meta().Flags&FlagExtDraw != 0
}

func (p Prop) String() string {
	switch {
	case p == PropAll:
		return "all"
	case p.Valid():
		return metas[p].Name
	default:
		return fmt.Sprintf("Prop(%d)", uint16(p))
	}
}

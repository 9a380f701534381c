package cascade

import (
	"math/bits"
	"strings"

	"github.com/go-drift/cascade/pkg/graphics"
	"github.com/go-drift/cascade/pkg/style"
)

// CacheFlag is one coarse fact about a widget's main part in its active
// state.
type CacheFlag uint32

const (
	// CacheOpaCover: opa is fully opaque.
	CacheOpaCover CacheFlag = 1 << iota
	// CacheRadiusZero: no corner radius.
	CacheRadiusZero
	// CachePadZero: all four outer paddings are zero.
	CachePadZero
	// CacheTransformZero: no transform size, translation, zoom or angle.
	CacheTransformZero
	// CacheBlendModeNormal: blend mode is normal.
	CacheBlendModeNormal
	// CacheFilterZero: the color filter is transparent.
	CacheFilterZero
	// CacheClipCornerEnabled: children are clipped to the rounded corners.
	CacheClipCornerEnabled
	// CacheBgOpaCover: the background is fully opaque.
	CacheBgOpaCover
	// CacheBorderWidthZero: no border.
	CacheBorderWidthZero
	// CacheBorderPostEnabled: the border is drawn after the children.
	CacheBorderPostEnabled
	// CacheTextAnySet: a binding of the widget itself sets a text property.
	CacheTextAnySet
	// CacheImgOpaCover: images are drawn fully opaque.
	CacheImgOpaCover
	// CacheOutlineWidthZero: no outline.
	CacheOutlineWidthZero
	// CacheShadowWidthZero: no shadow.
	CacheShadowWidthZero
	// CacheContentTextZero: no content text.
	CacheContentTextZero
	// CacheBgImgSrcZero: no background image.
	CacheBgImgSrcZero

	cacheFlagEnd
)

var cacheFlagNames = [...]string{
	"opa_cover",
	"radius_zero",
	"pad_zero",
	"transform_zero",
	"blend_mode_normal",
	"filter_zero",
	"clip_corner_enabled",
	"bg_opa_cover",
	"border_width_zero",
	"border_post_enabled",
	"text_any_set",
	"img_opa_cover",
	"outline_width_zero",
	"shadow_width_zero",
	"content_text_zero",
	"bg_img_src_zero",
}

func (f CacheFlag) String() string {
	if f == 0 || f >= cacheFlagEnd || bits.OnesCount32(uint32(f)) != 1 {
		return "invalid"
	}
	return cacheFlagNames[bits.TrailingZeros32(uint32(f))]
}

// AllCacheFlags lists every flag in bit order.
func AllCacheFlags() []CacheFlag {
	out := make([]CacheFlag, 0, len(cacheFlagNames))
	for f := CacheFlag(1); f < cacheFlagEnd; f <<= 1 {
		out = append(out, f)
	}
	return out
}

// CacheFlags is a set of CacheFlag.
type CacheFlags uint32

// Has reports whether flag is set.
func (f CacheFlags) Has(flag CacheFlag) bool {
	return uint32(f)&uint32(flag) != 0
}

func (f CacheFlags) with(flag CacheFlag, on bool) CacheFlags {
	if on {
		return f | CacheFlags(flag)
	}
	return f
}

func (f CacheFlags) String() string {
	var names []string
	for _, flag := range AllCacheFlags() {
		if f.Has(flag) {
			names = append(names, flag.String())
		}
	}
	if len(names) == 0 {
		return "none"
	}
	return strings.Join(names, "|")
}

// EnsureCache returns the cache flags of w, recomputing them when they are
// invalid or were computed for another state.
func EnsureCache(w Widget) CacheFlags {
	l := w.StyleList()
	state := w.State()
	if l.cacheValid && l.cacheState == state {
		return l.flags
	}
	l.flags = computeFlags(w)
	l.cacheState = state
	l.cacheValid = true
	return l.flags
}

// HasFlag is EnsureCache(w).Has(flag).
func HasFlag(w Widget, flag CacheFlag) bool {
	return EnsureCache(w).Has(flag)
}

func computeFlags(w Widget) CacheFlags {
	get := func(p style.Prop) style.Value {
		return GetProp(w, style.PartMain, p)
	}
	n := func(p style.Prop) int32 { return get(p).Num }

	var f CacheFlags
	f = f.with(CacheOpaCover, n(style.PropOpa) >= graphics.OpaCover)
	f = f.with(CacheRadiusZero, n(style.PropRadius) == 0)
	f = f.with(CachePadZero, n(style.PropPadTop) == 0 && n(style.PropPadBottom) == 0 &&
		n(style.PropPadLeft) == 0 && n(style.PropPadRight) == 0)
	f = f.with(CacheTransformZero, n(style.PropTransformWidth) == 0 && n(style.PropTransformHeight) == 0 &&
		n(style.PropTranslateX) == 0 && n(style.PropTranslateY) == 0 &&
		n(style.PropTransformAngle) == 0 && n(style.PropTransformZoom) == graphics.ZoomNone)
	f = f.with(CacheBlendModeNormal, style.BlendMode(n(style.PropBlendMode)) == style.BlendNormal)
	f = f.with(CacheFilterZero, n(style.PropColorFilterOpa) == graphics.OpaTransp)
	f = f.with(CacheClipCornerEnabled, n(style.PropClipCorner) != 0)
	f = f.with(CacheBgOpaCover, n(style.PropBgOpa) >= graphics.OpaCover)
	f = f.with(CacheBorderWidthZero, n(style.PropBorderWidth) == 0)
	f = f.with(CacheBorderPostEnabled, n(style.PropBorderPost) != 0)
	f = f.with(CacheTextAnySet, setsText(w))
	f = f.with(CacheImgOpaCover, n(style.PropImgOpa) >= graphics.OpaCover)
	f = f.with(CacheOutlineWidthZero, n(style.PropOutlineWidth) == 0)
	f = f.with(CacheShadowWidthZero, n(style.PropShadowWidth) == 0)
	f = f.with(CacheContentTextZero, refEmpty(get(style.PropContentText).Ref))
	f = f.with(CacheBgImgSrcZero, refEmpty(get(style.PropBgImgSrc).Ref))
	return f
}

var textProps = []style.Prop{
	style.PropTextColor,
	style.PropTextOpa,
	style.PropTextFont,
	style.PropTextLetterSpace,
	style.PropTextLineSpace,
	style.PropTextDecor,
	style.PropTextAlign,
}

// setsText reports whether an applicable main-part binding of w itself
// defines a text property.
func setsText(w Widget) bool {
	l := w.StyleList()
	state := w.State()
	for i := range l.bindings {
		b := &l.bindings[i]
		if !b.Part.Matches(style.PartMain) || (!b.Transition && !b.State.Applies(state)) {
			continue
		}
		for _, p := range textProps {
			if b.Style.Has(p) {
				return true
			}
		}
	}
	return false
}

func refEmpty(ref any) bool {
	switch r := ref.(type) {
	case nil:
		return true
	case string:
		return r == ""
	default:
		return false
	}
}

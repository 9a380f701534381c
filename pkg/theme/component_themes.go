package theme

import (
	"time"

	"github.com/go-drift/cascade/pkg/graphics"
)

// ButtonThemeData defines default styling for buttons.
type ButtonThemeData struct {
	// BackgroundColor is the default button background.
	BackgroundColor graphics.Color
	// PressedBackgroundColor is the background while pressed.
	PressedBackgroundColor graphics.Color
	// ForegroundColor is the default text color.
	ForegroundColor graphics.Color
	// DisabledBackgroundColor is the background when disabled.
	DisabledBackgroundColor graphics.Color
	// DisabledForegroundColor is the text color when disabled.
	DisabledForegroundColor graphics.Color
	// FocusOutlineColor is the outline drawn while focused.
	FocusOutlineColor graphics.Color
	// PaddingH and PaddingV are the horizontal and vertical paddings.
	PaddingH, PaddingV int32
	// BorderRadius is the default corner radius.
	BorderRadius int32
	// PressDuration is the length of the press transition.
	PressDuration time.Duration
}

// CheckboxThemeData defines default styling for checkboxes. The box is the
// indicator part.
type CheckboxThemeData struct {
	// ActiveColor is the fill color when checked.
	ActiveColor graphics.Color
	// BorderColor is the outline color when unchecked.
	BorderColor graphics.Color
	// BackgroundColor is the fill color when unchecked.
	BackgroundColor graphics.Color
	// DisabledActiveColor is the fill color when checked and disabled.
	DisabledActiveColor graphics.Color
	// BorderWidth is the box border width.
	BorderWidth int32
	// BorderRadius is the default corner radius.
	BorderRadius int32
}

// SwitchThemeData defines default styling for switches. The track is the
// main part and the thumb is the knob part.
type SwitchThemeData struct {
	// ActiveTrackColor is the track color when on.
	ActiveTrackColor graphics.Color
	// InactiveTrackColor is the track color when off.
	InactiveTrackColor graphics.Color
	// ThumbColor is the thumb fill color.
	ThumbColor graphics.Color
	// DisabledThumbColor is the thumb color when disabled.
	DisabledThumbColor graphics.Color
	// Width and Height size the track.
	Width, Height int32
	// ToggleDuration is the length of the on/off transition.
	ToggleDuration time.Duration
}

// TextFieldThemeData defines default styling for text fields.
type TextFieldThemeData struct {
	// BackgroundColor is the field background.
	BackgroundColor graphics.Color
	// BorderColor is the default border color.
	BorderColor graphics.Color
	// FocusColor is the border color when focused.
	FocusColor graphics.Color
	// ErrorColor is the border color while the field is in
	// style.StateUser1, which marks invalid input.
	ErrorColor graphics.Color
	// TextColor is the input text color.
	TextColor graphics.Color
	// CursorColor is the color of the cursor part.
	CursorColor graphics.Color
	// Padding is the inner padding.
	Padding int32
	// BorderWidth is the default border stroke width.
	BorderWidth int32
	// FocusBorderWidth is the border stroke width while focused.
	FocusBorderWidth int32
}

// DefaultButtonTheme returns ButtonThemeData derived from a ColorScheme.
func DefaultButtonTheme(colors ColorScheme) ButtonThemeData {
	return ButtonThemeData{
		BackgroundColor:         colors.Primary,
		PressedBackgroundColor:  colors.PrimaryPressed,
		ForegroundColor:         colors.OnPrimary,
		DisabledBackgroundColor: colors.SurfaceVariant,
		DisabledForegroundColor: colors.OnSurfaceVariant,
		FocusOutlineColor:       colors.Secondary,
		PaddingH:                24,
		PaddingV:                14,
		BorderRadius:            8,
		PressDuration:           150 * time.Millisecond,
	}
}

// DefaultCheckboxTheme returns CheckboxThemeData derived from a ColorScheme.
func DefaultCheckboxTheme(colors ColorScheme) CheckboxThemeData {
	return CheckboxThemeData{
		ActiveColor:         colors.Primary,
		BorderColor:         colors.Outline,
		BackgroundColor:     colors.Surface,
		DisabledActiveColor: colors.SurfaceVariant,
		BorderWidth:         2,
		BorderRadius:        4,
	}
}

// DefaultSwitchTheme returns SwitchThemeData derived from a ColorScheme.
func DefaultSwitchTheme(colors ColorScheme) SwitchThemeData {
	return SwitchThemeData{
		ActiveTrackColor:   colors.Primary,
		InactiveTrackColor: colors.SurfaceVariant,
		ThumbColor:         colors.Surface,
		DisabledThumbColor: colors.OnSurfaceVariant,
		Width:              44,
		Height:             26,
		ToggleDuration:     200 * time.Millisecond,
	}
}

// DefaultTextFieldTheme returns TextFieldThemeData derived from a ColorScheme.
func DefaultTextFieldTheme(colors ColorScheme) TextFieldThemeData {
	return TextFieldThemeData{
		BackgroundColor:  colors.Surface,
		BorderColor:      colors.Outline,
		FocusColor:       colors.Primary,
		ErrorColor:       colors.Error,
		TextColor:        colors.OnSurface,
		CursorColor:      colors.Primary,
		Padding:          12,
		BorderWidth:      1,
		FocusBorderWidth: 2,
	}
}

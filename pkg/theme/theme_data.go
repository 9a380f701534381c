package theme

// ThemeData contains all theme configuration for a widget tree.
type ThemeData struct {
	// ColorScheme defines the color palette.
	ColorScheme ColorScheme

	// Brightness indicates if this is a light or dark theme.
	Brightness Brightness

	// Font is the default text font reference.
	Font string

	// Component themes - optional, derived from ColorScheme if nil.
	ButtonTheme    *ButtonThemeData
	CheckboxTheme  *CheckboxThemeData
	SwitchTheme    *SwitchThemeData
	TextFieldTheme *TextFieldThemeData
}

// DefaultLightTheme returns the default light theme.
func DefaultLightTheme() *ThemeData {
	return &ThemeData{
		ColorScheme: LightColorScheme(),
		Brightness:  BrightnessLight,
		Font:        "sans_14",
	}
}

// DefaultDarkTheme returns the default dark theme.
func DefaultDarkTheme() *ThemeData {
	return &ThemeData{
		ColorScheme: DarkColorScheme(),
		Brightness:  BrightnessDark,
		Font:        "sans_14",
	}
}

// ForBrightness returns the default theme for b.
func ForBrightness(b Brightness) *ThemeData {
	if b == BrightnessDark {
		return DefaultDarkTheme()
	}
	return DefaultLightTheme()
}

// CopyWith returns a new ThemeData with the specified fields overridden.
func (t *ThemeData) CopyWith(colorScheme *ColorScheme, brightness *Brightness) *ThemeData {
	result := *t
	if colorScheme != nil {
		result.ColorScheme = *colorScheme
	}
	if brightness != nil {
		result.Brightness = *brightness
	}
	return &result
}

// ButtonThemeOf returns the button theme, deriving from ColorScheme if not set.
func (t *ThemeData) ButtonThemeOf() ButtonThemeData {
	if t.ButtonTheme != nil {
		return *t.ButtonTheme
	}
	return DefaultButtonTheme(t.ColorScheme)
}

// CheckboxThemeOf returns the checkbox theme, deriving from ColorScheme if not set.
func (t *ThemeData) CheckboxThemeOf() CheckboxThemeData {
	if t.CheckboxTheme != nil {
		return *t.CheckboxTheme
	}
	return DefaultCheckboxTheme(t.ColorScheme)
}

// SwitchThemeOf returns the switch theme, deriving from ColorScheme if not set.
func (t *ThemeData) SwitchThemeOf() SwitchThemeData {
	if t.SwitchTheme != nil {
		return *t.SwitchTheme
	}
	return DefaultSwitchTheme(t.ColorScheme)
}

// TextFieldThemeOf returns the text field theme, deriving from ColorScheme if not set.
func (t *ThemeData) TextFieldThemeOf() TextFieldThemeData {
	if t.TextFieldTheme != nil {
		return *t.TextFieldTheme
	}
	return DefaultTextFieldTheme(t.ColorScheme)
}

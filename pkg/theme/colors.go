package theme

import "github.com/go-drift/cascade/pkg/graphics"

// Brightness selects a light or dark palette.
type Brightness int

const (
	BrightnessLight Brightness = iota
	BrightnessDark
)

func (b Brightness) String() string {
	if b == BrightnessDark {
		return "dark"
	}
	return "light"
}

// ColorScheme is the palette every component theme derives from.
type ColorScheme struct {
	Primary          graphics.Color
	OnPrimary        graphics.Color
	PrimaryPressed   graphics.Color
	Secondary        graphics.Color
	OnSecondary      graphics.Color
	Background       graphics.Color
	OnBackground     graphics.Color
	Surface          graphics.Color
	OnSurface        graphics.Color
	SurfaceVariant   graphics.Color
	OnSurfaceVariant graphics.Color
	Outline          graphics.Color
	Error            graphics.Color
	OnError          graphics.Color
}

// LightColorScheme returns the default light palette.
func LightColorScheme() ColorScheme {
	return ColorScheme{
		Primary:          graphics.RGB(0x21, 0x96, 0xF3),
		OnPrimary:        graphics.ColorWhite,
		PrimaryPressed:   graphics.RGB(0x19, 0x76, 0xD2),
		Secondary:        graphics.RGB(0xFF, 0x98, 0x00),
		OnSecondary:      graphics.ColorBlack,
		Background:       graphics.RGB(0xF5, 0xF5, 0xF5),
		OnBackground:     graphics.RGB(0x21, 0x21, 0x21),
		Surface:          graphics.ColorWhite,
		OnSurface:        graphics.RGB(0x21, 0x21, 0x21),
		SurfaceVariant:   graphics.RGB(0xE0, 0xE0, 0xE0),
		OnSurfaceVariant: graphics.RGB(0x75, 0x75, 0x75),
		Outline:          graphics.RGB(0xBD, 0xBD, 0xBD),
		Error:            graphics.RGB(0xF4, 0x43, 0x36),
		OnError:          graphics.ColorWhite,
	}
}

// DarkColorScheme returns the default dark palette.
func DarkColorScheme() ColorScheme {
	return ColorScheme{
		Primary:          graphics.RGB(0x90, 0xCA, 0xF9),
		OnPrimary:        graphics.RGB(0x0D, 0x47, 0xA1),
		PrimaryPressed:   graphics.RGB(0x64, 0xB5, 0xF6),
		Secondary:        graphics.RGB(0xFF, 0xCC, 0x80),
		OnSecondary:      graphics.ColorBlack,
		Background:       graphics.RGB(0x12, 0x12, 0x12),
		OnBackground:     graphics.RGB(0xEE, 0xEE, 0xEE),
		Surface:          graphics.RGB(0x1E, 0x1E, 0x1E),
		OnSurface:        graphics.RGB(0xEE, 0xEE, 0xEE),
		SurfaceVariant:   graphics.RGB(0x42, 0x42, 0x42),
		OnSurfaceVariant: graphics.RGB(0xBD, 0xBD, 0xBD),
		Outline:          graphics.RGB(0x61, 0x61, 0x61),
		Error:            graphics.RGB(0xEF, 0x9A, 0x9A),
		OnError:          graphics.ColorBlack,
	}
}

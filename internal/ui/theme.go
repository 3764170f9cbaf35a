package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"

	"github.com/ytget/seqstat/internal/config"
)

// StatKind identifies one of the observer labels
type StatKind int

const (
	StatLast StatKind = iota
	StatAverage
	StatMaximum
	StatMinimum
	StatProgression
)

// StatStyle is the background and border of a stat label
type StatStyle struct {
	Fill   color.Color
	Border color.Color
}

// Palette holds the colours of one theme variant
type Palette struct {
	Background      color.Color
	Foreground      color.Color
	InputBackground color.Color
	InputBorder     color.Color
	Button          color.Color
	Stats           map[StatKind]StatStyle
}

// Stat returns the style for kind
func (p Palette) Stat(kind StatKind) StatStyle {
	if style, ok := p.Stats[kind]; ok {
		return style
	}
	return StatStyle{Fill: p.Background, Border: p.InputBorder}
}

var green = color.NRGBA{R: 0x4C, G: 0xAF, B: 0x50, A: 0xFF}

// DarkPalette is used for the dark variant
var DarkPalette = Palette{
	Background:      color.NRGBA{R: 0x21, G: 0x21, B: 0x21, A: 0xFF},
	Foreground:      color.NRGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF},
	InputBackground: color.NRGBA{R: 0x38, G: 0x38, B: 0x38, A: 0xFF},
	InputBorder:     green,
	Button:          color.NRGBA{R: 0x75, G: 0x75, B: 0x75, A: 0xFF},
	Stats: map[StatKind]StatStyle{
		StatLast: {
			Fill:   color.NRGBA{R: 0x42, G: 0x42, B: 0x42, A: 0xFF},
			Border: color.NRGBA{R: 0x75, G: 0x75, B: 0x75, A: 0xFF},
		},
		StatAverage: {
			Fill:   color.NRGBA{R: 0x1A, G: 0x23, B: 0x7E, A: 0xFF},
			Border: color.NRGBA{R: 0x39, G: 0x49, B: 0xAB, A: 0xFF},
		},
		StatMaximum: {
			Fill:   color.NRGBA{R: 30, G: 130, B: 76, A: 80},
			Border: color.NRGBA{R: 0x38, G: 0x8E, B: 0x3C, A: 0xFF},
		},
		StatMinimum: {
			Fill:   color.NRGBA{R: 183, G: 28, B: 28, A: 80},
			Border: color.NRGBA{R: 0xD3, G: 0x2F, B: 0x2F, A: 0xFF},
		},
		StatProgression: {
			Fill:   color.NRGBA{R: 0x21, G: 0x21, B: 0x21, A: 0xFF},
			Border: green,
		},
	},
}

// LightPalette is used for the light variant
var LightPalette = Palette{
	Background:      color.NRGBA{R: 0xF0, G: 0xF0, B: 0xF0, A: 0xFF},
	Foreground:      color.NRGBA{R: 0x00, G: 0x00, B: 0x00, A: 0xFF},
	InputBackground: color.NRGBA{R: 0xF0, G: 0xF0, B: 0xF0, A: 0xFF},
	InputBorder:     green,
	Button:          green,
	Stats: map[StatKind]StatStyle{
		StatLast: {
			Fill:   color.NRGBA{R: 0xFF, G: 0xFF, B: 0xE0, A: 0xFF},
			Border: color.NRGBA{R: 0xFF, G: 0xD7, B: 0x00, A: 0xFF},
		},
		StatAverage: {
			Fill:   color.NRGBA{R: 0xE0, G: 0xF7, B: 0xFA, A: 0xFF},
			Border: color.NRGBA{R: 0xB2, G: 0xEB, B: 0xF2, A: 0xFF},
		},
		StatMaximum: {
			Fill:   color.NRGBA{R: 0xE8, G: 0xF5, B: 0xE9, A: 0xFF},
			Border: color.NRGBA{R: 0xA5, G: 0xD6, B: 0xA7, A: 0xFF},
		},
		StatMinimum: {
			Fill:   color.NRGBA{R: 0xFF, G: 0xEB, B: 0xEE, A: 0xFF},
			Border: color.NRGBA{R: 0xEF, G: 0x53, B: 0x50, A: 0xFF},
		},
		StatProgression: {
			Fill:   color.NRGBA{R: 0xF0, G: 0xF0, B: 0xF0, A: 0xFF},
			Border: green,
		},
	},
}

// AppTheme forces one variant over the default Fyne theme
type AppTheme struct {
	variant config.ThemeVariant
}

// NewAppTheme creates a theme for the given variant
func NewAppTheme(variant config.ThemeVariant) *AppTheme {
	return &AppTheme{variant: variant}
}

// Variant returns the configured variant
func (t *AppTheme) Variant() config.ThemeVariant {
	return t.variant
}

// Palette returns the colour set of the variant
func (t *AppTheme) Palette() Palette {
	if t.variant == config.ThemeLight {
		return LightPalette
	}
	return DarkPalette
}

func (t *AppTheme) fyneVariant() fyne.ThemeVariant {
	if t.variant == config.ThemeLight {
		return theme.VariantLight
	}
	return theme.VariantDark
}

// Color returns theme colors
func (t *AppTheme) Color(name fyne.ThemeColorName, _ fyne.ThemeVariant) color.Color {
	p := t.Palette()
	switch name {
	case theme.ColorNameBackground:
		return p.Background
	case theme.ColorNameForeground:
		return p.Foreground
	case theme.ColorNameInputBackground:
		return p.InputBackground
	case theme.ColorNameInputBorder, theme.ColorNameFocus:
		return p.InputBorder
	case theme.ColorNameButton:
		return p.Button
	case theme.ColorNamePrimary:
		return green
	}

	// Use default colors for everything else
	return theme.DefaultTheme().Color(name, t.fyneVariant())
}

// Font returns theme fonts
func (t *AppTheme) Font(style fyne.TextStyle) fyne.Resource {
	return theme.DefaultTheme().Font(style)
}

// Icon returns theme icons
func (t *AppTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}

// Size returns theme sizes
func (t *AppTheme) Size(name fyne.ThemeSizeName) float32 {
	switch name {
	case theme.SizeNameInputBorder:
		return 2
	case theme.SizeNameInputRadius:
		return 5
	case theme.SizeNameInnerPadding:
		return 8
	}
	return theme.DefaultTheme().Size(name)
}

// Toggled returns the opposite variant
func Toggled(variant config.ThemeVariant) config.ThemeVariant {
	if variant == config.ThemeLight {
		return config.ThemeDark
	}
	return config.ThemeLight
}

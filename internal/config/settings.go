package config

import (
	"fyne.io/fyne/v2"

	"github.com/ytget/seqstat/internal/sequence"
)

// ThemeVariant names the colour scheme of the window
type ThemeVariant string

const (
	ThemeDark  ThemeVariant = "dark"
	ThemeLight ThemeVariant = "light"
)

// Settings keys for Fyne preferences
const (
	KeyStartFullscreen = "start_fullscreen"
	KeyThemeVariant    = "theme_variant"
	KeyRandomMin       = "random_min"
	KeyRandomMax       = "random_max"
	KeyLogLevel        = "log_level"
)

// Default values
const (
	DefaultStartFullscreen = true
	DefaultThemeVariant    = ThemeDark
	DefaultRandomMin       = sequence.DefaultMin
	DefaultRandomMax       = sequence.DefaultMax
	DefaultLogLevel        = "info"
)

// Settings manages application configuration
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetStartFullscreen returns whether the window opens fullscreen
func (s *Settings) GetStartFullscreen() bool {
	return s.app.Preferences().BoolWithFallback(KeyStartFullscreen, DefaultStartFullscreen)
}

// SetStartFullscreen sets whether the window opens fullscreen
func (s *Settings) SetStartFullscreen(fullscreen bool) {
	s.app.Preferences().SetBool(KeyStartFullscreen, fullscreen)
}

// GetThemeVariant returns the initial theme variant
func (s *Settings) GetThemeVariant() ThemeVariant {
	variant := ThemeVariant(s.app.Preferences().String(KeyThemeVariant))
	if variant != ThemeDark && variant != ThemeLight {
		s.SetThemeVariant(DefaultThemeVariant)
		return DefaultThemeVariant
	}
	return variant
}

// SetThemeVariant sets the initial theme variant
func (s *Settings) SetThemeVariant(variant ThemeVariant) {
	s.app.Preferences().SetString(KeyThemeVariant, string(variant))
}

// GetRandomRange returns the bounds of generated values.
// An inverted stored range falls back to the defaults.
func (s *Settings) GetRandomRange() (int, int) {
	prefs := s.app.Preferences()
	lo := prefs.IntWithFallback(KeyRandomMin, DefaultRandomMin)
	hi := prefs.IntWithFallback(KeyRandomMax, DefaultRandomMax)
	if lo > hi {
		s.SetRandomRange(DefaultRandomMin, DefaultRandomMax)
		return DefaultRandomMin, DefaultRandomMax
	}
	return lo, hi
}

// SetRandomRange sets the bounds of generated values, swapping them if needed
func (s *Settings) SetRandomRange(lo, hi int) {
	if lo > hi {
		lo, hi = hi, lo
	}
	s.app.Preferences().SetInt(KeyRandomMin, lo)
	s.app.Preferences().SetInt(KeyRandomMax, hi)
}

// GetLogLevel returns the configured log level name
func (s *Settings) GetLogLevel() string {
	level := s.app.Preferences().String(KeyLogLevel)
	if level == "" {
		s.SetLogLevel(DefaultLogLevel)
		return DefaultLogLevel
	}
	return level
}

// SetLogLevel sets the log level name
func (s *Settings) SetLogLevel(level string) {
	if level == "" {
		level = DefaultLogLevel
	}
	s.app.Preferences().SetString(KeyLogLevel, level)
}

// GetThemeVariantOptions returns available theme variants
func (s *Settings) GetThemeVariantOptions() []ThemeVariant {
	return []ThemeVariant{ThemeDark, ThemeLight}
}

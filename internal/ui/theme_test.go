package ui

import (
	"testing"

	"fyne.io/fyne/v2/theme"
	"github.com/stretchr/testify/assert"

	"github.com/ytget/seqstat/internal/config"
)

func TestToggled(t *testing.T) {
	assert.Equal(t, config.ThemeLight, Toggled(config.ThemeDark))
	assert.Equal(t, config.ThemeDark, Toggled(config.ThemeLight))
}

func TestAppTheme_Colors(t *testing.T) {
	dark := NewAppTheme(config.ThemeDark)
	light := NewAppTheme(config.ThemeLight)

	// The requested variant is ignored in favour of the configured one
	assert.Equal(t, DarkPalette.Background, dark.Color(theme.ColorNameBackground, theme.VariantLight))
	assert.Equal(t, LightPalette.Background, light.Color(theme.ColorNameBackground, theme.VariantDark))
	assert.Equal(t, DarkPalette.InputBackground, dark.Color(theme.ColorNameInputBackground, theme.VariantDark))
	assert.Equal(t, LightPalette.Button, light.Color(theme.ColorNameButton, theme.VariantLight))

	assert.Equal(t,
		theme.DefaultTheme().Color(theme.ColorNameError, theme.VariantDark),
		dark.Color(theme.ColorNameError, theme.VariantLight))
}

func TestPalette_Stat(t *testing.T) {
	for _, kind := range statOrder {
		assert.NotNil(t, DarkPalette.Stat(kind).Fill)
		assert.NotNil(t, LightPalette.Stat(kind).Border)
	}

	fallback := DarkPalette.Stat(StatKind(42))
	assert.Equal(t, DarkPalette.Background, fallback.Fill)
	assert.Equal(t, DarkPalette.InputBorder, fallback.Border)
}

package ui

import (
	"bytes"
	"encoding/json"
	"math/rand/v2"
	"strings"
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/test"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ytget/seqstat/internal/config"
	"github.com/ytget/seqstat/internal/logger"
	"github.com/ytget/seqstat/internal/observer"
	"github.com/ytget/seqstat/internal/sequence"
)

func newTestRootUI(t *testing.T) (*RootUI, fyne.App) {
	t.Helper()

	app := test.NewApp()
	window := app.NewWindow("test")
	settings := config.NewSettings(app)

	generator, err := sequence.NewGeneratorWithSource(sequence.DefaultMin, sequence.DefaultMax, rand.NewPCG(1, 2))
	require.NoError(t, err)

	return NewRootUI(window, app, settings, generator, zerolog.Nop()), app
}

func labelTexts(ui *RootUI) []string {
	out := make([]string, len(ui.labels))
	for i, label := range ui.labels {
		out[i] = label.Text()
	}
	return out
}

func TestRootUI_ObserversAttached(t *testing.T) {
	ui, _ := newTestRootUI(t)

	require.Len(t, ui.labels, len(statOrder))
	assert.Equal(t, len(statOrder), ui.subject.Len())
	for i, kind := range statOrder {
		assert.Equal(t, kind, ui.labels[i].Kind())
	}
}

func TestRootUI_TypingUpdatesLabels(t *testing.T) {
	ui, _ := newTestRootUI(t)

	test.Type(ui.entry, "1, 2, 3")

	assert.Equal(t, []string{
		"Текущее значение: 3",
		"Среднее: 2",
		"Максимум: 3",
		"Минимум: 1",
		"Арифметическая прогрессия: да (d=1)",
	}, labelTexts(ui))
}

func TestRootUI_Clear(t *testing.T) {
	ui, _ := newTestRootUI(t)
	test.Type(ui.entry, "5, -3, 10")

	test.Tap(ui.clearBtn)

	assert.Equal(t, "", ui.entry.Text)
	assert.Equal(t, []string{
		"Текущее значение: нет значения",
		"Среднее: Н/Д",
		"Максимум: Н/Д",
		"Минимум: Н/Д",
		"Арифметическая прогрессия: недостаточно данных",
	}, labelTexts(ui))
}

func TestRootUI_Generate(t *testing.T) {
	ui, _ := newTestRootUI(t)

	test.Tap(ui.generateBtn)
	test.Tap(ui.generateBtn)

	values := sequence.Parse(ui.entry.Text)
	require.Len(t, values, 2)
	for _, v := range values {
		assert.GreaterOrEqual(t, v, sequence.DefaultMin)
		assert.LessOrEqual(t, v, sequence.DefaultMax)
	}
	assert.True(t, sequence.Acceptable(ui.entry.Text))
	assert.Equal(t, NewFormatters(ui.texts).Last(values), ui.labels[0].Text())
}

func TestRootUI_NotifiesOncePerChange(t *testing.T) {
	ui, _ := newTestRootUI(t)

	count := 0
	ui.subject.Attach(observer.Func(func([]int) { count++ }))

	ui.setInput("4, 5")
	assert.Equal(t, 1, count)

	ui.setInput("4, 5")
	assert.Equal(t, 1, count)

	ui.onClear()
	assert.Equal(t, 2, count)
}

func TestRootUI_ToggleTheme(t *testing.T) {
	ui, app := newTestRootUI(t)

	assert.Equal(t, config.ThemeDark, ui.theme.Variant())
	assert.Equal(t, DarkPalette.Stat(StatAverage), ui.labels[1].Style())

	test.Tap(ui.themeBtn)

	assert.Equal(t, config.ThemeLight, ui.theme.Variant())
	assert.Equal(t, ui.theme, app.Settings().Theme())
	assert.Equal(t, LightPalette.Stat(StatAverage), ui.labels[1].Style())

	test.Tap(ui.themeBtn)
	assert.Equal(t, config.ThemeDark, ui.theme.Variant())
}

func TestRootUI_StartsWithConfiguredTheme(t *testing.T) {
	app := test.NewApp()
	settings := config.NewSettings(app)
	settings.SetThemeVariant(config.ThemeLight)

	generator, err := sequence.NewGenerator(0, 1)
	require.NoError(t, err)
	ui := NewRootUI(app.NewWindow("test"), app, settings, generator, zerolog.Nop())

	assert.Equal(t, config.ThemeLight, ui.theme.Variant())
}

func TestRootUI_Exit(t *testing.T) {
	ui, _ := newTestRootUI(t)

	quits := 0
	ui.quit = func() { quits++ }

	test.Tap(ui.exitBtn)
	ui.onTypedKey(&fyne.KeyEvent{Name: fyne.KeyEscape})
	ui.entry.TypedKey(&fyne.KeyEvent{Name: fyne.KeyEscape})

	assert.Equal(t, 3, quits)
}

func TestRootUI_SettingsSavedRebuildsGenerator(t *testing.T) {
	ui, _ := newTestRootUI(t)

	ui.settings.SetRandomRange(3, 3)
	ui.onSettingsSaved()

	assert.Equal(t, 3, ui.generator.Next())
}

func TestRootUI_F11TogglesFullscreen(t *testing.T) {
	ui, _ := newTestRootUI(t)
	require.False(t, ui.window.FullScreen())

	ui.onTypedKey(&fyne.KeyEvent{Name: fyne.KeyF11})
	assert.True(t, ui.window.FullScreen())

	ui.onTypedKey(&fyne.KeyEvent{Name: fyne.KeyF11})
	assert.False(t, ui.window.FullScreen())
}

func TestRootUI_ObserverLogsTagged(t *testing.T) {
	app := test.NewApp()
	settings := config.NewSettings(app)
	generator, err := sequence.NewGenerator(0, 1)
	require.NoError(t, err)

	var buf bytes.Buffer
	log := logger.New(&buf, zerolog.DebugLevel)
	ui := NewRootUI(app.NewWindow("test"), app, settings, generator, log)
	buf.Reset()

	ui.setInput("1, 2")

	components := map[string]string{}
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		var entry map[string]any
		require.NoError(t, json.Unmarshal([]byte(line), &entry))
		msg, _ := entry["message"].(string)
		component, _ := entry["component"].(string)
		components[msg] = component
	}
	assert.Equal(t, "observer", components["notify"])
	assert.Equal(t, "ui", components["input changed"])
}

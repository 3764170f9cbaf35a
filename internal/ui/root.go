package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"
	"github.com/rs/zerolog"

	"github.com/ytget/seqstat/internal/config"
	"github.com/ytget/seqstat/internal/logger"
	"github.com/ytget/seqstat/internal/observer"
	"github.com/ytget/seqstat/internal/sequence"
)

// statOrder is the top-to-bottom order of the stat labels
var statOrder = []StatKind{StatLast, StatAverage, StatMaximum, StatMinimum, StatProgression}

// RootUI represents the main UI structure
type RootUI struct {
	window    fyne.Window
	app       fyne.App
	settings  *config.Settings
	texts     *Texts
	log       zerolog.Logger
	subject   *observer.Subject
	generator *sequence.Generator
	theme     *AppTheme

	entry       *NumberEntry
	generateBtn *widget.Button
	themeBtn    *widget.Button
	clearBtn    *widget.Button
	exitBtn     *widget.Button
	labels      []*StatLabel

	// last text pushed to the subject
	lastText string
	notified bool

	quit func()
}

// NewRootUI creates and initializes the main UI.
// log is the application logger; child loggers are tagged per component.
func NewRootUI(window fyne.Window, app fyne.App, settings *config.Settings, generator *sequence.Generator, log zerolog.Logger) *RootUI {
	texts := NewTexts()

	ui := &RootUI{
		window:    window,
		app:       app,
		settings:  settings,
		texts:     texts,
		log:       logger.Component(log, "ui"),
		subject:   observer.NewSubject(logger.Component(log, "observer")),
		generator: generator,
		quit:      window.Close,
	}

	ui.setupUI()
	ui.applyTheme(settings.GetThemeVariant())

	ui.log.Info().Int("observers", ui.subject.Len()).Msg("UI setup completed")
	return ui
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	ui.createMenu()

	ui.entry = NewNumberEntry()
	ui.entry.SetPlaceHolder(ui.texts.GetText(KeyEnterValues))
	ui.entry.OnAccepted = ui.onInputChanged
	ui.entry.OnEscape = ui.onExit

	ui.generateBtn = widget.NewButton(ui.texts.GetText(KeyGenerate), ui.onGenerate)
	ui.themeBtn = widget.NewButton(ui.texts.GetText(KeyToggleTheme), ui.onToggleTheme)
	ui.clearBtn = widget.NewButton(ui.texts.GetText(KeyClear), ui.onClear)
	ui.exitBtn = widget.NewButton(ui.texts.GetText(KeyExit), ui.onExit)
	for _, btn := range []*widget.Button{ui.generateBtn, ui.themeBtn, ui.clearBtn, ui.exitBtn} {
		btn.Importance = widget.HighImportance
	}

	buttons := container.NewHBox(ui.generateBtn, ui.themeBtn, ui.clearBtn, ui.exitBtn, layout.NewSpacer())

	content := container.NewVBox(ui.entry, buttons)

	formatters := NewFormatters(ui.texts)
	palette := DarkPalette
	for _, kind := range statOrder {
		label := NewStatLabel(kind, formatters.For(kind), palette.Stat(kind))
		ui.labels = append(ui.labels, label)
		ui.subject.Attach(label)
		content.Add(label)
	}

	ui.window.SetContent(container.NewPadded(content))
	ui.window.Canvas().SetOnTypedKey(ui.onTypedKey)
	ui.window.Canvas().Focus(ui.entry)
}

// createMenu creates the application menu
func (ui *RootUI) createMenu() {
	settingsItem := fyne.NewMenuItem(ui.texts.GetText(KeySettings), ui.onShowSettings)
	themeItem := fyne.NewMenuItem(ui.texts.GetText(KeyToggleTheme), ui.onToggleTheme)

	mainMenu := fyne.NewMainMenu(
		fyne.NewMenu(ui.texts.GetText(KeyFile), settingsItem, themeItem),
	)

	ui.window.SetMainMenu(mainMenu)
}

// onInputChanged parses text and notifies every observer.
// Repeated notifications for the same text are skipped.
func (ui *RootUI) onInputChanged(text string) {
	if ui.notified && text == ui.lastText {
		return
	}
	ui.lastText = text
	ui.notified = true

	values := sequence.Parse(text)
	ui.log.Debug().Str("text", text).Int("count", len(values)).Msg("input changed")
	ui.subject.Notify(values)
}

// setInput replaces the entry text and notifies observers
func (ui *RootUI) setInput(text string) {
	ui.entry.SetValue(text)
	ui.onInputChanged(text)
}

// onGenerate appends a random value to the input
func (ui *RootUI) onGenerate() {
	value := ui.generator.Next()
	ui.log.Debug().Int("value", value).Msg("generated value")
	ui.setInput(sequence.Append(ui.entry.Text, value))
}

// onClear empties the input
func (ui *RootUI) onClear() {
	ui.setInput("")
	ui.window.Canvas().Focus(ui.entry)
}

// onToggleTheme switches between the dark and light variants
func (ui *RootUI) onToggleTheme() {
	ui.applyTheme(Toggled(ui.theme.Variant()))
}

// applyTheme installs the theme of variant and repaints the stat labels
func (ui *RootUI) applyTheme(variant config.ThemeVariant) {
	ui.theme = NewAppTheme(variant)
	ui.app.Settings().SetTheme(ui.theme)

	palette := ui.theme.Palette()
	for _, label := range ui.labels {
		label.ApplyStyle(palette.Stat(label.Kind()))
	}
	ui.log.Debug().Str("variant", string(variant)).Msg("theme applied")
}

// onExit closes the window
func (ui *RootUI) onExit() {
	ui.log.Info().Msg("exit requested")
	ui.quit()
}

// onTypedKey handles keys not consumed by a focused widget
func (ui *RootUI) onTypedKey(ev *fyne.KeyEvent) {
	switch ev.Name {
	case fyne.KeyEscape:
		ui.onExit()
	case fyne.KeyF11:
		ui.window.SetFullScreen(!ui.window.FullScreen())
	}
}

// onShowSettings shows the settings dialog
func (ui *RootUI) onShowSettings() {
	NewSettingsDialog(ui.settings, ui.window, ui.texts, ui.onSettingsSaved).Show()
}

// onSettingsSaved rebuilds the generator from the stored range
func (ui *RootUI) onSettingsSaved() {
	lo, hi := ui.settings.GetRandomRange()
	generator, err := sequence.NewGenerator(lo, hi)
	if err != nil {
		ui.log.Warn().Err(err).Msg("keeping previous generator")
		return
	}
	ui.generator = generator
	ui.log.Info().Int("min", lo).Int("max", hi).Msg("random range updated")
}

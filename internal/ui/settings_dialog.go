package ui

import (
	"errors"
	"strconv"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/seqstat/internal/config"
)

var errInvalidBound = errors.New("bound is not an integer")

// SettingsDialog represents the settings configuration dialog
type SettingsDialog struct {
	settings *config.Settings
	window   fyne.Window
	texts    *Texts
	dialog   *dialog.ConfirmDialog
	onSaved  func()

	// UI components
	minEntry        *widget.Entry
	maxEntry        *widget.Entry
	fullscreenCheck *widget.Check
	themeSelect     *widget.Select
}

// NewSettingsDialog creates a new settings dialog
func NewSettingsDialog(settings *config.Settings, window fyne.Window, texts *Texts, onSaved func()) *SettingsDialog {
	sd := &SettingsDialog{
		settings: settings,
		window:   window,
		texts:    texts,
		onSaved:  onSaved,
	}

	sd.createUI()
	return sd
}

// Show displays the settings dialog
func (sd *SettingsDialog) Show() {
	sd.loadCurrentSettings()
	sd.dialog.Show()
}

// createUI creates the settings dialog UI
func (sd *SettingsDialog) createUI() {
	sd.minEntry = widget.NewEntry()
	sd.minEntry.Validator = validateBound
	sd.maxEntry = widget.NewEntry()
	sd.maxEntry.Validator = validateBound
	sd.fullscreenCheck = widget.NewCheck(sd.texts.GetText(KeyStartFullscreen), nil)

	themeOptions := []string{}
	for _, variant := range sd.settings.GetThemeVariantOptions() {
		themeOptions = append(themeOptions, string(variant))
	}
	sd.themeSelect = widget.NewSelect(themeOptions, nil)

	form := container.NewVBox(
		widget.NewLabel(sd.texts.GetText(KeyRandomMin)+":"),
		sd.minEntry,
		widget.NewLabel(sd.texts.GetText(KeyRandomMax)+":"),
		sd.maxEntry,
		widget.NewSeparator(),
		widget.NewLabel(sd.texts.GetText(KeyStartTheme)+":"),
		sd.themeSelect,
		sd.fullscreenCheck,
	)

	sd.dialog = dialog.NewCustomConfirm(
		sd.texts.GetText(KeySettings),
		sd.texts.GetText(KeySave),
		sd.texts.GetText(KeyCancel),
		form,
		sd.onSave,
		sd.window,
	)

	sd.dialog.Resize(fyne.NewSize(SettingsDialogWidth, SettingsDialogHeight))
}

// loadCurrentSettings loads current settings into the UI
func (sd *SettingsDialog) loadCurrentSettings() {
	lo, hi := sd.settings.GetRandomRange()
	sd.minEntry.SetText(strconv.Itoa(lo))
	sd.maxEntry.SetText(strconv.Itoa(hi))
	sd.fullscreenCheck.SetChecked(sd.settings.GetStartFullscreen())
	sd.themeSelect.SetSelected(string(sd.settings.GetThemeVariant()))
}

// onSave handles saving the settings
func (sd *SettingsDialog) onSave(confirmed bool) {
	if !confirmed {
		return
	}

	if err := sd.apply(); err != nil {
		dialog.ShowError(errors.New(sd.texts.GetText(KeyInvalidRandomSpan)), sd.window)
		return
	}

	if sd.onSaved != nil {
		sd.onSaved()
	}
	dialog.ShowInformation(sd.texts.GetText(KeySettings), sd.texts.GetText(KeySettingsSaved), sd.window)
}

// apply validates the form and writes it to settings
func (sd *SettingsDialog) apply() error {
	lo, err := parseBound(sd.minEntry.Text)
	if err != nil {
		return err
	}
	hi, err := parseBound(sd.maxEntry.Text)
	if err != nil {
		return err
	}

	sd.settings.SetRandomRange(lo, hi)
	sd.settings.SetStartFullscreen(sd.fullscreenCheck.Checked)
	if sd.themeSelect.Selected != "" {
		sd.settings.SetThemeVariant(config.ThemeVariant(sd.themeSelect.Selected))
	}
	return nil
}

func parseBound(text string) (int, error) {
	v, err := strconv.Atoi(strings.TrimSpace(text))
	if err != nil {
		return 0, errInvalidBound
	}
	return v, nil
}

func validateBound(text string) error {
	_, err := parseBound(text)
	return err
}

package ui

// Texts holds the UI strings of the application
type Texts struct {
	texts map[string]string
}

// Text keys
const (
	KeyGenerate          = "generate"
	KeyToggleTheme       = "toggle_theme"
	KeyClear             = "clear"
	KeyExit              = "exit"
	KeySettings          = "settings"
	KeyFile              = "file"
	KeySave              = "save"
	KeyCancel            = "cancel"
	KeyEnterValues       = "enter_values"
	KeyCurrentValue      = "current_value"
	KeyAverage           = "average"
	KeyMaximum           = "maximum"
	KeyMinimum           = "minimum"
	KeyProgression       = "progression"
	KeyNoValue           = "no_value"
	KeyNotAvailable      = "not_available"
	KeyInsufficientData  = "insufficient_data"
	KeyYes               = "yes"
	KeyNo                = "no"
	KeyRandomMin         = "random_min"
	KeyRandomMax         = "random_max"
	KeyStartFullscreen   = "start_fullscreen"
	KeyStartTheme        = "start_theme"
	KeySettingsSaved     = "settings_saved"
	KeyInvalidRandomSpan = "invalid_random_span"
)

// NewTexts creates the string catalog
func NewTexts() *Texts {
	return &Texts{
		texts: map[string]string{
			KeyGenerate:          "Сгенерировать число",
			KeyToggleTheme:       "Сменить тему",
			KeyClear:             "Очистить строку",
			KeyExit:              "Выйти",
			KeySettings:          "Настройки",
			KeyFile:              "Файл",
			KeySave:              "Сохранить",
			KeyCancel:            "Отмена",
			KeyEnterValues:       "Введите числа через запятую, например 1, 2, 3",
			KeyCurrentValue:      "Текущее значение",
			KeyAverage:           "Среднее",
			KeyMaximum:           "Максимум",
			KeyMinimum:           "Минимум",
			KeyProgression:       "Арифметическая прогрессия",
			KeyNoValue:           "нет значения",
			KeyNotAvailable:      "Н/Д",
			KeyInsufficientData:  "недостаточно данных",
			KeyYes:               "да",
			KeyNo:                "нет",
			KeyRandomMin:         "Минимум случайного числа",
			KeyRandomMax:         "Максимум случайного числа",
			KeyStartFullscreen:   "Запускать в полноэкранном режиме",
			KeyStartTheme:        "Тема при запуске",
			KeySettingsSaved:     "Настройки сохранены",
			KeyInvalidRandomSpan: "Границы должны быть целыми числами",
		},
	}
}

// GetText returns the text for key, or the key itself when it is unknown
func (t *Texts) GetText(key string) string {
	if text, found := t.texts[key]; found {
		return text
	}
	return key
}

package ui

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Window
const (
	WindowWidth  float32 = 800
	WindowHeight float32 = 600
)

// Text fragments
const (
	LabelSeparator    = ": "
	StepFormat        = "%s (d=%s)"
	AverageFormatVerb = 'g'
	AveragePrecision  = 6
)

// Stat label styling
const (
	StatLabelPadding     float32 = 8
	StatLabelBorderWidth float32 = 2
	StatLabelRadius      float32 = 5
)

// Settings dialog sizing
const (
	SettingsDialogWidth  float32 = 420
	SettingsDialogHeight float32 = 260
)

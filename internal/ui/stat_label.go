package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// Formatter renders a sequence as the text of one stat label
type Formatter func(values []int) string

// StatLabel shows one statistic on a coloured background.
// It implements observer.Observer.
type StatLabel struct {
	widget.BaseWidget

	kind       StatKind
	format     Formatter
	label      *widget.Label
	background *canvas.Rectangle
}

// NewStatLabel creates a label for kind, initialised for an empty sequence
func NewStatLabel(kind StatKind, format Formatter, style StatStyle) *StatLabel {
	s := &StatLabel{
		kind:       kind,
		format:     format,
		label:      widget.NewLabel(format(nil)),
		background: canvas.NewRectangle(style.Fill),
	}
	s.label.Wrapping = fyne.TextWrapWord
	s.background.StrokeColor = style.Border
	s.background.StrokeWidth = StatLabelBorderWidth
	s.background.CornerRadius = StatLabelRadius
	s.ExtendBaseWidget(s)
	return s
}

// Update recomputes the text from values
func (s *StatLabel) Update(values []int) {
	s.label.SetText(s.format(values))
}

// Kind returns the statistic shown by the label
func (s *StatLabel) Kind() StatKind {
	return s.kind
}

// Text returns the current label text
func (s *StatLabel) Text() string {
	return s.label.Text
}

// ApplyStyle repaints the background
func (s *StatLabel) ApplyStyle(style StatStyle) {
	s.background.FillColor = style.Fill
	s.background.StrokeColor = style.Border
	s.background.Refresh()
}

// Style returns the current background style
func (s *StatLabel) Style() StatStyle {
	return StatStyle{Fill: s.background.FillColor, Border: s.background.StrokeColor}
}

// CreateRenderer creates the widget renderer
func (s *StatLabel) CreateRenderer() fyne.WidgetRenderer {
	inset := canvas.NewRectangle(color.Transparent)
	inset.SetMinSize(fyne.NewSize(StatLabelPadding, StatLabelPadding))
	content := container.NewBorder(nil, nil, inset, nil, s.label)
	return widget.NewSimpleRenderer(container.NewStack(s.background, content))
}

package ui

import (
	"fmt"
	"strconv"

	"github.com/ytget/seqstat/internal/stats"
)

// Formatters builds the text of every stat label from the catalog
type Formatters struct {
	texts *Texts
}

// NewFormatters creates formatters using texts
func NewFormatters(texts *Texts) *Formatters {
	return &Formatters{texts: texts}
}

// For returns the formatter of kind
func (f *Formatters) For(kind StatKind) Formatter {
	switch kind {
	case StatLast:
		return f.Last
	case StatAverage:
		return f.Average
	case StatMaximum:
		return f.Maximum
	case StatMinimum:
		return f.Minimum
	case StatProgression:
		return f.Progression
	default:
		return func([]int) string { return "" }
	}
}

func (f *Formatters) line(key, value string) string {
	return f.texts.GetText(key) + LabelSeparator + value
}

// Last shows the final element
func (f *Formatters) Last(values []int) string {
	v, ok := stats.Last(values)
	if !ok {
		return f.line(KeyCurrentValue, f.texts.GetText(KeyNoValue))
	}
	return f.line(KeyCurrentValue, strconv.Itoa(v))
}

// Average shows the arithmetic mean with six significant digits
func (f *Formatters) Average(values []int) string {
	v, ok := stats.Mean(values)
	if !ok {
		return f.line(KeyAverage, f.texts.GetText(KeyNotAvailable))
	}
	return f.line(KeyAverage, strconv.FormatFloat(v, AverageFormatVerb, AveragePrecision, 64))
}

// Maximum shows the largest element
func (f *Formatters) Maximum(values []int) string {
	v, ok := stats.Max(values)
	if !ok {
		return f.line(KeyMaximum, f.texts.GetText(KeyNotAvailable))
	}
	return f.line(KeyMaximum, strconv.Itoa(v))
}

// Minimum shows the smallest element
func (f *Formatters) Minimum(values []int) string {
	v, ok := stats.Min(values)
	if !ok {
		return f.line(KeyMinimum, f.texts.GetText(KeyNotAvailable))
	}
	return f.line(KeyMinimum, strconv.Itoa(v))
}

// Progression shows whether the sequence is an arithmetic progression
func (f *Formatters) Progression(values []int) string {
	p := stats.CheckProgression(values)
	switch {
	case !p.Known:
		return f.line(KeyProgression, f.texts.GetText(KeyInsufficientData))
	case p.OK:
		return f.line(KeyProgression, fmt.Sprintf(StepFormat, f.texts.GetText(KeyYes), p.StepText))
	default:
		return f.line(KeyProgression, f.texts.GetText(KeyNo))
	}
}

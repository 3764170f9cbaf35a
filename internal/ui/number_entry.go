package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/seqstat/internal/sequence"
)

// NumberEntry is a single-line entry that only holds comma-separated integers.
// Keystrokes outside the allowed set are dropped; any other change producing
// an unacceptable text (a misplaced minus, a paste) is reverted.
type NumberEntry struct {
	widget.Entry

	// OnAccepted is called with every accepted text
	OnAccepted func(text string)
	// OnEscape is called when Escape is pressed while the entry has focus
	OnEscape func()

	accepted string
}

// NewNumberEntry creates an empty number entry
func NewNumberEntry() *NumberEntry {
	e := &NumberEntry{}
	e.ExtendBaseWidget(e)
	e.OnChanged = e.onChanged
	return e
}

// TypedRune filters characters before they reach the entry
func (e *NumberEntry) TypedRune(r rune) {
	if !sequence.AllowedRune(r) {
		return
	}
	e.Entry.TypedRune(r)
}

// TypedKey forwards Escape, which the plain entry would swallow
func (e *NumberEntry) TypedKey(key *fyne.KeyEvent) {
	if key.Name == fyne.KeyEscape && e.OnEscape != nil {
		e.OnEscape()
		return
	}
	e.Entry.TypedKey(key)
}

// SetValue replaces the text without going through the character filter.
// Callers must pass an acceptable text.
func (e *NumberEntry) SetValue(text string) {
	e.accepted = text
	e.SetText(text)
}

// Accepted returns the last accepted text
func (e *NumberEntry) Accepted() string {
	return e.accepted
}

func (e *NumberEntry) onChanged(text string) {
	if !sequence.Acceptable(text) {
		e.SetText(e.accepted)
		return
	}
	e.accepted = text
	if e.OnAccepted != nil {
		e.OnAccepted(text)
	}
}

// Package ui contains the Fyne-based desktop user interface for the application.
// It wires the input field to the observer subject and renders one label per
// statistic. All UI strings come from the Texts catalog.
package ui

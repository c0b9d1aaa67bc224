package editor

import "github.com/miniide/miniide-cli/pkg/models"

// Widget is the opaque editing surface the coordinator binds the current
// model to. The TUI supplies the real implementation; tests use a fake.
type Widget interface {
	// Bind switches the widget to the given model, replacing any previous
	// binding. The widget holds at most one bound model at a time.
	Bind(m *Model)

	// Bound returns the currently bound model, or nil.
	Bound() *Model

	// Value returns the widget's current text, which may be ahead of the
	// bound model between change notifications.
	Value() string

	// SetLanguage retags the widget's syntax handling for the bound model.
	SetLanguage(l models.Language)

	// OnContentChange registers the callback invoked after every edit with
	// the widget's full text.
	OnContentChange(fn func(text string))

	// OnModelSwitch registers the callback invoked after Bind completes.
	OnModelSwitch(fn func(m *Model))
}

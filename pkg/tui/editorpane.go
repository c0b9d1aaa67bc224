package tui

import (
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/miniide/miniide-cli/pkg/editor"
	"github.com/miniide/miniide-cli/pkg/models"
)

// EditorPane wraps the textarea as the session's editor widget: it holds at
// most one bound model and reports every content change back through the
// registered callback.
type EditorPane struct {
	textarea textarea.Model
	bound    *editor.Model
	language models.Language

	onChange func(string)
	onSwitch func(*editor.Model)

	// lastReported suppresses change callbacks for cursor-only updates.
	lastReported string
}

// NewEditorPane creates the pane with an unbound textarea.
func NewEditorPane() *EditorPane {
	ta := textarea.New()
	ta.ShowLineNumbers = true
	ta.Prompt = "  "
	ta.CharLimit = 0
	ta.SetWidth(80)
	ta.SetHeight(20)
	return &EditorPane{textarea: ta}
}

// Bind switches the pane to a model, loading its buffer into the textarea.
func (e *EditorPane) Bind(m *editor.Model) {
	e.bound = m
	if m != nil {
		e.textarea.SetValue(m.Value())
		e.lastReported = m.Value()
		e.language = m.Language()
	}
	if e.onSwitch != nil {
		e.onSwitch(m)
	}
}

// Bound returns the currently bound model.
func (e *EditorPane) Bound() *editor.Model { return e.bound }

// Value returns the textarea's current text.
func (e *EditorPane) Value() string { return e.textarea.Value() }

// SetLanguage updates the language shown in the pane chrome.
func (e *EditorPane) SetLanguage(l models.Language) { e.language = l }

// Language returns the displayed language tag.
func (e *EditorPane) Language() models.Language { return e.language }

// OnContentChange registers the edit callback.
func (e *EditorPane) OnContentChange(fn func(string)) { e.onChange = fn }

// OnModelSwitch registers the bind callback.
func (e *EditorPane) OnModelSwitch(fn func(*editor.Model)) { e.onSwitch = fn }

// Focus gives keyboard focus to the textarea.
func (e *EditorPane) Focus() tea.Cmd { return e.textarea.Focus() }

// Blur removes keyboard focus.
func (e *EditorPane) Blur() { e.textarea.Blur() }

// Focused reports whether the textarea has focus.
func (e *EditorPane) Focused() bool { return e.textarea.Focused() }

// SetSize resizes the textarea.
func (e *EditorPane) SetSize(width, height int) {
	e.textarea.SetWidth(width)
	e.textarea.SetHeight(height)
}

// Update forwards a message to the textarea and fires the change callback
// when the content actually changed.
func (e *EditorPane) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	e.textarea, cmd = e.textarea.Update(msg)

	if value := e.textarea.Value(); value != e.lastReported {
		e.lastReported = value
		if e.onChange != nil {
			e.onChange(value)
		}
	}
	return cmd
}

// View renders the textarea.
func (e *EditorPane) View() string { return e.textarea.View() }

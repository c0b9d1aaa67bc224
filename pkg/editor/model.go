// Package editor holds the per-file editable-text models and the cache that
// keeps them aligned with the file store across renames and deletes.
package editor

import (
	"fmt"

	"github.com/miniide/miniide-cli/pkg/models"
)

// maxHistory bounds the undo/redo stacks per model.
const maxHistory = 200

// Model is the stateful text buffer bound to one file record. It survives
// document switches so undo history and the language tag are preserved.
type Model struct {
	uri      string
	value    string
	language models.Language
	version  int
	undo     []string
	redo     []string
	disposed bool
}

// NewModel creates a model with the given initial content and language.
func NewModel(id, content string, language models.Language) *Model {
	return &Model{
		uri:      fmt.Sprintf("inmemory://%s", id),
		value:    content,
		language: language,
	}
}

// URI returns the model's stable identity string.
func (m *Model) URI() string { return m.uri }

// Value returns the current buffer content.
func (m *Model) Value() string { return m.value }

// Version increases by one on every accepted edit.
func (m *Model) Version() int { return m.version }

// Language returns the model's current language tag.
func (m *Model) Language() models.Language { return m.language }

// SetLanguage retags the model without touching content or history.
func (m *Model) SetLanguage(l models.Language) { m.language = l }

// Disposed reports whether the model has been released.
func (m *Model) Disposed() bool { return m.disposed }

// SetValue replaces the buffer content, recording the previous value for
// undo and clearing the redo stack. Setting an identical value is a no-op.
func (m *Model) SetValue(content string) {
	if m.disposed || content == m.value {
		return
	}
	m.undo = append(m.undo, m.value)
	if len(m.undo) > maxHistory {
		m.undo = m.undo[1:]
	}
	m.redo = nil
	m.value = content
	m.version++
}

// Undo restores the previous buffer state, reporting whether anything
// changed.
func (m *Model) Undo() bool {
	if m.disposed || len(m.undo) == 0 {
		return false
	}
	last := m.undo[len(m.undo)-1]
	m.undo = m.undo[:len(m.undo)-1]
	m.redo = append(m.redo, m.value)
	m.value = last
	m.version++
	return true
}

// Redo reapplies the last undone edit, reporting whether anything changed.
func (m *Model) Redo() bool {
	if m.disposed || len(m.redo) == 0 {
		return false
	}
	last := m.redo[len(m.redo)-1]
	m.redo = m.redo[:len(m.redo)-1]
	m.undo = append(m.undo, m.value)
	m.value = last
	m.version++
	return true
}

// Dispose releases the model. Further edits are ignored.
func (m *Model) Dispose() {
	m.disposed = true
	m.undo = nil
	m.redo = nil
	m.value = ""
}

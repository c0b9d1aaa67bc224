package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// promptKind identifies which action a modal prompt feeds.
type promptKind int

const (
	promptNone promptKind = iota
	promptNewFile
	promptNewFolder
	promptRename
	promptSetLanguage
	promptImportPath
	promptExportPath
	promptConfirmDeleteFolder
)

// Prompt is the single-line modal input used for names, paths, and
// confirmations.
type Prompt struct {
	kind   promptKind
	label  string
	input  textinput.Model
	target string // file id or folder path the prompt applies to
}

func newPrompt() *Prompt {
	ti := textinput.New()
	ti.CharLimit = 256
	ti.Width = 48
	return &Prompt{input: ti}
}

// Open activates the prompt for the given action with an initial value.
func (p *Prompt) Open(kind promptKind, label, target, initial string) tea.Cmd {
	p.kind = kind
	p.label = label
	p.target = target
	p.input.SetValue(initial)
	p.input.CursorEnd()
	return p.input.Focus()
}

// Close deactivates the prompt.
func (p *Prompt) Close() {
	p.kind = promptNone
	p.target = ""
	p.input.Blur()
	p.input.SetValue("")
}

// Active reports whether a prompt is showing.
func (p *Prompt) Active() bool { return p.kind != promptNone }

// Update forwards input events to the text field.
func (p *Prompt) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	p.input, cmd = p.input.Update(msg)
	return cmd
}

// View renders the prompt line.
func (p *Prompt) View(theme Theme) string {
	return theme.PromptLabel.Render(p.label) + " " + p.input.View()
}

// Value returns the entered text.
func (p *Prompt) Value() string { return p.input.Value() }

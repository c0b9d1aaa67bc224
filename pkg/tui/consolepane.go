package tui

import (
	"strings"

	"github.com/muesli/reflow/wordwrap"

	"github.com/miniide/miniide-cli/pkg/console"
)

// ConsolePane renders the console buffer, word-wrapped to the pane width and
// pinned to the newest lines.
type ConsolePane struct {
	buffer *console.Buffer
	width  int
	height int
}

// NewConsolePane creates the pane over a shared console buffer.
func NewConsolePane(buffer *console.Buffer) *ConsolePane {
	return &ConsolePane{buffer: buffer, width: 80, height: 8}
}

// SetSize resizes the pane.
func (c *ConsolePane) SetSize(width, height int) {
	c.width = width
	c.height = height
}

// Buffer exposes the backing console for Clear.
func (c *ConsolePane) Buffer() *console.Buffer { return c.buffer }

// View renders the newest lines that fit the pane.
func (c *ConsolePane) View(theme Theme) string {
	var rows []string
	for _, msg := range c.buffer.Lines() {
		style := theme.ConsoleLog
		if msg.Kind == console.KindError {
			style = theme.ConsoleError
		}
		wrapped := wordwrap.String(msg.Text, c.width)
		for _, row := range strings.Split(wrapped, "\n") {
			rows = append(rows, style.Render(row))
		}
	}

	if c.height > 0 && len(rows) > c.height {
		rows = rows[len(rows)-c.height:]
	}
	return strings.Join(rows, "\n")
}

package tui

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/miniide/miniide-cli/pkg/tree"
)

const (
	iconExpanded  = "▾" // small down triangle
	iconCollapsed = "▸" // small right triangle
)

// FileTreePane renders the derived folder/file tree with a cursor and
// scrolling. Collapse state comes from the session's persisted markers.
type FileTreePane struct {
	flat      []*tree.Node
	collapsed map[string]bool
	cursor    int
	offset    int
	height    int
	width     int
}

// NewFileTreePane creates an empty pane; Reload populates it.
func NewFileTreePane() *FileTreePane {
	return &FileTreePane{height: 20, width: 28, collapsed: map[string]bool{}}
}

// Reload rebuilds the visible node list from a fresh tree and collapse set,
// keeping the cursor in bounds.
func (t *FileTreePane) Reload(root *tree.Node, collapsed map[string]bool) {
	if collapsed == nil {
		collapsed = map[string]bool{}
	}
	t.collapsed = collapsed
	t.flat = root.Flatten(collapsed)
	if t.cursor >= len(t.flat) {
		t.cursor = len(t.flat) - 1
	}
	if t.cursor < 0 {
		t.cursor = 0
	}
	t.ensureVisible()
}

// SetSize resizes the pane.
func (t *FileTreePane) SetSize(width, height int) {
	t.width = width
	t.height = height
	t.ensureVisible()
}

// MoveUp moves the cursor one row up.
func (t *FileTreePane) MoveUp() {
	if t.cursor > 0 {
		t.cursor--
		t.ensureVisible()
	}
}

// MoveDown moves the cursor one row down.
func (t *FileTreePane) MoveDown() {
	if t.cursor < len(t.flat)-1 {
		t.cursor++
		t.ensureVisible()
	}
}

// Selected returns the node under the cursor.
func (t *FileTreePane) Selected() *tree.Node {
	if t.cursor < 0 || t.cursor >= len(t.flat) {
		return nil
	}
	return t.flat[t.cursor]
}

// SelectPath moves the cursor to the node with the given path, if visible.
func (t *FileTreePane) SelectPath(path string) {
	for i, n := range t.flat {
		if n.Path == path {
			t.cursor = i
			t.ensureVisible()
			return
		}
	}
}

func (t *FileTreePane) ensureVisible() {
	if t.cursor < t.offset {
		t.offset = t.cursor
	}
	if t.height > 0 && t.cursor >= t.offset+t.height {
		t.offset = t.cursor - t.height + 1
	}
}

// View renders the visible window of the tree.
func (t *FileTreePane) View(theme Theme, currentID string, focused bool) string {
	var b strings.Builder

	end := len(t.flat)
	if t.height > 0 && t.offset+t.height < end {
		end = t.offset + t.height
	}

	for i := t.offset; i < end; i++ {
		n := t.flat[i]
		indent := strings.Repeat("  ", n.Depth)

		var line string
		if n.IsDir {
			icon := iconExpanded
			if t.collapsed[n.Path] {
				icon = iconCollapsed
			}
			line = fmt.Sprintf("%s%s %s/", indent, icon, n.Name)
			line = theme.TreeFolder.Render(line)
		} else {
			size := humanize.Bytes(uint64(len(n.Record.Content)))
			line = fmt.Sprintf("%s  %s %s", indent, n.Name, theme.TreeLanguage.Render(fmt.Sprintf("%s · %s", n.Record.Language, size)))
			if n.Record.ID == currentID {
				line = theme.TreeFile.Bold(true).Render(line)
			} else {
				line = theme.TreeFile.Render(line)
			}
		}

		if focused && i == t.cursor {
			line = theme.TreeSelected.Render(">") + " " + line
		} else {
			line = "  " + line
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	return strings.TrimRight(b.String(), "\n")
}

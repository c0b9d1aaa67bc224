package tui

import (
	"strings"

	"github.com/miniide/miniide-cli/pkg/models"
)

// renderTabs draws one tab per record, marking the current document. Labels
// use the base name only, so nested files keep tabs short.
func renderTabs(theme Theme, records []models.FileRecord, currentID string, width int) string {
	var b strings.Builder
	used := 0
	for _, r := range records {
		label := r.BaseName()
		var rendered string
		if r.ID == currentID {
			rendered = theme.TabActive.Render(label)
		} else {
			rendered = theme.TabInactive.Render(label)
		}
		// +2 accounts for the tab padding.
		if width > 0 && used+len(label)+2 > width {
			b.WriteString(theme.TabInactive.Render("…"))
			break
		}
		used += len(label) + 2
		b.WriteString(rendered)
	}
	return b.String()
}

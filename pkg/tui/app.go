// Package tui is the interactive workspace: file tree, tabs, editor pane,
// and console, all funneling user actions through the session's command
// dispatcher.
package tui

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/miniide/miniide-cli/pkg/archive"
	"github.com/miniide/miniide-cli/pkg/console"
	"github.com/miniide/miniide-cli/pkg/logging"
	"github.com/miniide/miniide-cli/pkg/runner"
	"github.com/miniide/miniide-cli/pkg/session"
)

type focusArea int

const (
	focusTree focusArea = iota
	focusEditor
)

// tickMsg drives periodic console refresh so output arriving from the
// autosave timer or the preview relay becomes visible without a key press.
type tickMsg time.Time

// runFinishedMsg reports executor dispatch completion.
type runFinishedMsg struct {
	refusal *runner.Refusal
}

// App is the top-level bubbletea model.
type App struct {
	session    *session.Session
	dispatcher *runner.Dispatcher
	preview    *runner.PreviewServer
	consoleBuf *console.Buffer
	logger     *log.Logger

	treePane    *FileTreePane
	editorPane  *EditorPane
	consolePane *ConsolePane
	prompt      *Prompt

	theme       Theme
	focus       focusArea
	width       int
	height      int
	showConsole bool
	lastRefusal *runner.Refusal
	previewAddr string
}

// NewApp wires the application model. The editor pane doubles as the
// session's widget, so it must be the instance the session was built with.
func NewApp(s *session.Session, d *runner.Dispatcher, p *runner.PreviewServer, buf *console.Buffer, editorPane *EditorPane, theme Theme, previewAddr string) *App {
	return &App{
		session:     s,
		dispatcher:  d,
		preview:     p,
		consoleBuf:  buf,
		logger:      logging.Get("tui"),
		treePane:    NewFileTreePane(),
		editorPane:  editorPane,
		consolePane: NewConsolePane(buf),
		prompt:      newPrompt(),
		theme:       theme,
		showConsole: true,
		previewAddr: previewAddr,
	}
}

// Init starts the refresh ticker and loads the tree.
func (a *App) Init() tea.Cmd {
	a.reloadTree()
	return tick()
}

func tick() tea.Cmd {
	return tea.Tick(400*time.Millisecond, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (a *App) reloadTree() {
	a.treePane.Reload(a.session.Tree(), a.session.CollapsedFolders())
}

// Update handles all events.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.layout()
		return a, nil

	case tickMsg:
		return a, tick()

	case runFinishedMsg:
		a.lastRefusal = msg.refusal
		return a, nil

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return a, a.quit()
		}
		if a.prompt.Active() {
			return a, a.updatePrompt(msg)
		}
		if a.focus == focusEditor {
			return a, a.updateEditor(msg)
		}
		return a, a.updateTree(msg)
	}

	return a, nil
}

func (a *App) layout() {
	sidebarWidth := a.width / 4
	if sidebarWidth < 24 {
		sidebarWidth = 24
	}
	consoleHeight := 0
	if a.showConsole {
		consoleHeight = a.height / 4
		if consoleHeight < 5 {
			consoleHeight = 5
		}
	}
	// Title, tabs, status, and borders take six rows.
	mainHeight := a.height - consoleHeight - 6
	if mainHeight < 3 {
		mainHeight = 3
	}

	a.treePane.SetSize(sidebarWidth-2, mainHeight)
	a.editorPane.SetSize(a.width-sidebarWidth-4, mainHeight)
	a.consolePane.SetSize(a.width-2, consoleHeight)
}

func (a *App) quit() tea.Cmd {
	if err := a.session.Flush(); err != nil {
		a.logger.Error("flush on quit failed", "error", err)
	}
	if a.preview != nil && a.preview.Running() {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		a.preview.Stop(ctx)
	}
	return tea.Quit
}

func (a *App) updateTree(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "q":
		return a.quit()
	case "up", "k":
		a.treePane.MoveUp()
	case "down", "j":
		a.treePane.MoveDown()
	case "enter":
		return a.openSelected()
	case "tab":
		a.focus = focusEditor
		return a.editorPane.Focus()
	case "n":
		return a.prompt.Open(promptNewFile, "New file name (include path, e.g., folder/file.js):", "", "untitled.js")
	case "f":
		return a.prompt.Open(promptNewFolder, "New folder name (e.g., src):", "", "newfolder")
	case "r":
		if n := a.treePane.Selected(); n != nil && !n.IsDir {
			return a.prompt.Open(promptRename, fmt.Sprintf("Rename '%s' to:", n.Record.Name), n.Record.ID, n.Record.Name)
		}
	case "d":
		if n := a.treePane.Selected(); n != nil {
			if n.IsDir {
				return a.prompt.Open(promptConfirmDeleteFolder,
					fmt.Sprintf("Delete folder %s and all files inside it? (yes/no):", n.Path), n.Path, "no")
			}
			a.session.Dispatch(session.Command{Action: session.ActionDeleteFile, Path: n.Record.ID})
			a.reloadTree()
		}
	case "l":
		if n := a.treePane.Selected(); n != nil && !n.IsDir {
			return a.prompt.Open(promptSetLanguage, "Language tag:", n.Record.ID, string(n.Record.Language))
		}
	case "s":
		a.session.Dispatch(session.Command{Action: session.ActionSaveAll})
	case "i":
		return a.prompt.Open(promptImportPath, "Upload path (file, folder, or .zip):", "", "")
	case "x":
		return a.prompt.Open(promptExportPath, "Export archive to:", "", "project.zip")
	case "ctrl+r":
		return a.runCurrent()
	case "ctrl+l":
		a.consoleBuf.Clear()
	case "ctrl+x":
		a.clearPreview()
	case "p":
		a.togglePreview()
	case "c":
		a.copyEditorContents()
	case "y":
		a.copyRefusedSource()
	case "o":
		a.showConsole = !a.showConsole
		a.layout()
	case "t":
		if a.theme.Name == "dark" {
			a.theme = LightTheme()
		} else {
			a.theme = DarkTheme()
		}
	}
	return nil
}

func (a *App) openSelected() tea.Cmd {
	n := a.treePane.Selected()
	if n == nil {
		return nil
	}
	if n.IsDir {
		a.session.Dispatch(session.Command{Action: session.ActionToggleFolder, Path: n.Path})
		a.reloadTree()
		a.treePane.SelectPath(n.Path)
		return nil
	}
	a.session.Dispatch(session.Command{Action: session.ActionSelect, Path: n.Record.ID})
	a.focus = focusEditor
	return a.editorPane.Focus()
}

func (a *App) updateEditor(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "esc":
		a.focus = focusTree
		a.editorPane.Blur()
		return nil
	case "ctrl+s":
		a.session.Dispatch(session.Command{Action: session.ActionSaveAll})
		return nil
	case "ctrl+r":
		return a.runCurrent()
	case "ctrl+z":
		a.undoCurrent()
		return nil
	}
	return a.editorPane.Update(msg)
}

func (a *App) undoCurrent() {
	m := a.session.Model(a.session.CurrentID())
	if m == nil || !m.Undo() {
		return
	}
	// Re-bind so the textarea picks up the restored buffer, then push the
	// restored state back through the normal edit path.
	a.editorPane.Bind(m)
	a.session.OnWidgetEdit(m.Value())
}

func (a *App) updatePrompt(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "esc":
		a.prompt.Close()
		return nil
	case "enter":
		a.submitPrompt()
		return nil
	}
	return a.prompt.Update(msg)
}

func (a *App) submitPrompt() {
	value := strings.TrimSpace(a.prompt.Value())
	kind := a.prompt.kind
	target := a.prompt.target
	a.prompt.Close()

	switch kind {
	case promptNewFile:
		a.session.Dispatch(session.Command{Action: session.ActionNewFile, Path: value})
	case promptNewFolder:
		a.session.Dispatch(session.Command{Action: session.ActionNewFolder, Path: value})
	case promptRename:
		a.session.Dispatch(session.Command{Action: session.ActionRename, Path: target, To: value})
	case promptSetLanguage:
		a.session.Dispatch(session.Command{Action: session.ActionSetLanguage, Path: target, Language: value})
	case promptConfirmDeleteFolder:
		if value == "yes" || value == "y" {
			a.session.Dispatch(session.Command{Action: session.ActionDeleteFolder, Path: target})
		}
	case promptImportPath:
		a.importPath(value)
	case promptExportPath:
		a.exportArchive(value)
	}
	a.reloadTree()
}

func (a *App) importPath(path string) {
	if path == "" {
		return
	}
	info, err := os.Stat(path)
	if err != nil {
		a.consoleBuf.Append(console.KindError, fmt.Sprintf("Upload failed: %v", err))
		return
	}

	var items []session.ImportItem
	switch {
	case info.IsDir():
		items, err = archive.ImportDir(path)
	case strings.HasSuffix(path, ".zip"):
		items, err = archive.ImportZip(path)
	default:
		items = []session.ImportItem{archive.ImportFile(path)}
	}
	if err != nil {
		a.consoleBuf.Append(console.KindError, fmt.Sprintf("Upload failed: %v", err))
		return
	}
	a.session.Import(items)
}

func (a *App) exportArchive(path string) {
	if path == "" {
		return
	}
	f, err := os.Create(path)
	if err != nil {
		a.consoleBuf.Append(console.KindError, fmt.Sprintf("Export failed: %v", err))
		return
	}
	defer f.Close()

	if err := archive.ExportZip(f, a.session.Records()); err != nil {
		a.consoleBuf.Append(console.KindError, fmt.Sprintf("Export failed: %v", err))
		return
	}
	a.consoleBuf.Append(console.KindLog, fmt.Sprintf("Downloaded archive: %s", path))
}

func (a *App) runCurrent() tea.Cmd {
	file, ok := a.session.CurrentFile()
	if !ok {
		return nil
	}
	records := a.session.Records()
	a.consoleBuf.Clear()

	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		refusal := a.dispatcher.Run(ctx, file, records)
		return runFinishedMsg{refusal: refusal}
	}
}

func (a *App) togglePreview() {
	if a.preview == nil {
		return
	}
	if a.preview.Running() {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		if err := a.preview.Stop(ctx); err != nil {
			a.consoleBuf.Append(console.KindError, fmt.Sprintf("Preview stop failed: %v", err))
			return
		}
		a.consoleBuf.Append(console.KindLog, "Preview hidden.")
		return
	}
	if err := a.preview.Start(a.previewAddr); err != nil {
		a.consoleBuf.Append(console.KindError, fmt.Sprintf("Preview start failed: %v", err))
		return
	}
	a.consoleBuf.Append(console.KindLog, fmt.Sprintf("Preview at %s", a.preview.URL()))
}

func (a *App) clearPreview() {
	if a.preview == nil {
		return
	}
	a.preview.Clear()
	a.consoleBuf.Append(console.KindLog, "Preview content cleared.")
}

func (a *App) copyEditorContents() {
	if err := clipboard.WriteAll(a.editorPane.Value()); err != nil {
		a.consoleBuf.Append(console.KindError, fmt.Sprintf("Could not copy code: %v", err))
		return
	}
	a.consoleBuf.Append(console.KindLog, "Code copied to clipboard!")
}

func (a *App) copyRefusedSource() {
	if a.lastRefusal == nil {
		return
	}
	if err := clipboard.WriteAll(a.lastRefusal.Source); err != nil {
		a.consoleBuf.Append(console.KindError, fmt.Sprintf("Could not copy code: %v", err))
		return
	}
	a.consoleBuf.Append(console.KindLog, fmt.Sprintf("Code copied to clipboard! Paste it at %s", a.lastRefusal.CompilerURL))
}

// View renders the full screen.
func (a *App) View() string {
	if a.width == 0 {
		return "loading..."
	}

	title := a.theme.Title.Render(" MiniIDE ")
	tabs := renderTabs(a.theme, a.session.Records(), a.session.CurrentID(), a.width)

	sidebarStyle := a.theme.Border
	editorStyle := a.theme.Border
	if a.focus == focusTree {
		sidebarStyle = a.theme.BorderActive
	} else {
		editorStyle = a.theme.BorderActive
	}

	sidebar := sidebarStyle.Render(a.treePane.View(a.theme, a.session.CurrentID(), a.focus == focusTree))
	editorView := editorStyle.Render(a.editorPane.View())
	main := lipgloss.JoinHorizontal(lipgloss.Top, sidebar, editorView)

	sections := []string{title, tabs, main}
	if a.showConsole {
		sections = append(sections, a.theme.Border.Render(a.consolePane.View(a.theme)))
	}
	sections = append(sections, a.statusBar())

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (a *App) statusBar() string {
	if a.prompt.Active() {
		return a.prompt.View(a.theme)
	}

	file, _ := a.session.CurrentFile()
	left := fmt.Sprintf(" %s (%s) ", file.Name, a.editorPane.Language())

	help := "tab:editor n:new f:folder r:rename d:delete ctrl+r:run p:preview c:copy t:theme q:quit"
	if a.focus == focusEditor {
		help = "esc:tree ctrl+s:save ctrl+r:run ctrl+z:undo"
	}
	if a.lastRefusal != nil {
		help = "y:copy refused source  " + help
	}

	return a.theme.StatusBar.Render(left) + " " + a.theme.Help.Render(help)
}

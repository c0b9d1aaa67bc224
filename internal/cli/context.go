// Package cli carries the shared plumbing for the non-interactive commands:
// workspace access, output formatting, validation, and user prompts.
package cli

import (
	"fmt"

	"github.com/miniide/miniide-cli/pkg/config"
	"github.com/miniide/miniide-cli/pkg/console"
	"github.com/miniide/miniide-cli/pkg/editor"
	"github.com/miniide/miniide-cli/pkg/models"
	"github.com/miniide/miniide-cli/pkg/session"
	"github.com/miniide/miniide-cli/pkg/store"
)

// WorkspaceContext opens the workspace database for one command invocation.
type WorkspaceContext struct {
	Config *config.Config
	Store  *store.Store
}

// NewWorkspaceContext loads configuration and opens the workspace store,
// seeding the starter project on first use.
func NewWorkspaceContext() (*WorkspaceContext, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	st, err := store.Open(cfg.DataDir)
	if err != nil {
		return nil, fmt.Errorf("failed to open workspace at %s: %w", cfg.DataDir, err)
	}

	return &WorkspaceContext{Config: cfg, Store: st}, nil
}

// Close releases the store.
func (c *WorkspaceContext) Close() error {
	return c.Store.Close()
}

// Session builds a headless editing session over the open store. Command
// feedback lines go to the given console.
func (c *WorkspaceContext) Session(out console.Console) (*session.Session, error) {
	return session.New(c.Store, &headlessWidget{}, out, session.Options{
		AutosaveInterval: c.Config.AutosaveInterval,
	})
}

// headlessWidget satisfies the session's widget contract for commands that
// never render an editor surface.
type headlessWidget struct {
	bound    *editor.Model
	onSwitch func(*editor.Model)
}

func (w *headlessWidget) Bind(m *editor.Model) {
	w.bound = m
	if w.onSwitch != nil {
		w.onSwitch(m)
	}
}

func (w *headlessWidget) Bound() *editor.Model { return w.bound }

func (w *headlessWidget) Value() string {
	if w.bound == nil {
		return ""
	}
	return w.bound.Value()
}

func (w *headlessWidget) SetLanguage(models.Language) {}

func (w *headlessWidget) OnContentChange(func(string)) {}

func (w *headlessWidget) OnModelSwitch(fn func(*editor.Model)) { w.onSwitch = fn }

package cli

import (
	"testing"

	"github.com/miniide/miniide-cli/pkg/console"
)

func newTestContext(t *testing.T) *WorkspaceContext {
	t.Helper()
	t.Setenv("MINIDE_DATA_DIR", t.TempDir())
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	ctx, err := NewWorkspaceContext()
	if err != nil {
		t.Fatalf("NewWorkspaceContext() error: %v", err)
	}
	t.Cleanup(func() { ctx.Close() })
	return ctx
}

func TestWorkspaceContextSeedsStarterProject(t *testing.T) {
	ctx := newTestContext(t)

	if ctx.Store.Len() == 0 {
		t.Fatal("expected seeded workspace, store is empty")
	}
	if !ctx.Store.Exists("index.html") {
		t.Error("expected starter project to contain index.html")
	}
}

func TestHeadlessSessionMutations(t *testing.T) {
	ctx := newTestContext(t)

	buf := console.NewBuffer(50)
	sess, err := ctx.Session(buf)
	if err != nil {
		t.Fatalf("Session() error: %v", err)
	}

	if err := sess.CreateFile("tool.lua"); err != nil {
		t.Fatalf("CreateFile() error: %v", err)
	}
	if sess.CurrentID() != "tool.lua" {
		t.Errorf("current = %q, want tool.lua", sess.CurrentID())
	}

	// The headless widget tracks the bound model so edits have a target.
	sess.OnWidgetEdit("print('hi')")
	rec, ok := ctx.Store.Get("tool.lua")
	if !ok || rec.Content != "print('hi')" {
		t.Errorf("content = %q, want print('hi')", rec.Content)
	}
}

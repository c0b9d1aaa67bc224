package editor

import (
	"reflect"
	"testing"

	"github.com/miniide/miniide-cli/pkg/models"
)

func TestGetOrCreateReturnsSameInstance(t *testing.T) {
	c := NewCache()

	m1 := c.GetOrCreate("a.js", "one", models.LangJavaScript)
	m2 := c.GetOrCreate("a.js", "ignored", models.LangCSS)

	if m1 != m2 {
		t.Error("second GetOrCreate returned a different instance")
	}
	if m2.Value() != "one" {
		t.Errorf("content = %q, want original %q", m2.Value(), "one")
	}
	if m2.Language() != models.LangJavaScript {
		t.Errorf("language = %q, want original javascript", m2.Language())
	}
}

func TestRenamePreservesModel(t *testing.T) {
	c := NewCache()

	m := c.GetOrCreate("a.js", "body", models.LangJavaScript)
	m.SetValue("edited")

	c.Rename("a.js", "src/a.js")

	if c.Get("a.js") != nil {
		t.Error("old key still resolves after rename")
	}
	got := c.Get("src/a.js")
	if got != m {
		t.Fatal("rename did not carry the model instance to the new key")
	}
	if !got.Undo() || got.Value() != "body" {
		t.Error("undo history lost across rename")
	}
	if got.URI() != "inmemory://src/a.js" {
		t.Errorf("uri = %q after rename", got.URI())
	}
}

func TestRenameMissingModelIsNoop(t *testing.T) {
	c := NewCache()

	c.Rename("ghost.js", "new.js")

	if c.Len() != 0 {
		t.Errorf("Len() = %d after renaming absent model, want 0", c.Len())
	}
}

func TestDispose(t *testing.T) {
	c := NewCache()

	m := c.GetOrCreate("a.js", "body", models.LangJavaScript)
	c.Dispose("a.js")

	if c.Get("a.js") != nil {
		t.Error("disposed model still cached")
	}
	if !m.Disposed() {
		t.Error("model not marked disposed")
	}

	// Disposing again must not panic.
	c.Dispose("a.js")
}

func TestDisposeByPrefix(t *testing.T) {
	c := NewCache()
	c.GetOrCreate("src/a.js", "", models.LangJavaScript)
	c.GetOrCreate("src/deep/b.py", "", models.LangPython)
	c.GetOrCreate("srcfile.js", "", models.LangJavaScript)
	c.GetOrCreate("assets/logo.css", "", models.LangCSS)

	disposed := c.DisposeByPrefix("src")

	if disposed != 2 {
		t.Errorf("disposed %d models, want 2", disposed)
	}
	want := []string{"assets/logo.css", "srcfile.js"}
	if got := c.Keys(); !reflect.DeepEqual(got, want) {
		t.Errorf("remaining keys = %v, want %v", got, want)
	}
}

func TestModelUndoRedo(t *testing.T) {
	m := NewModel("a.js", "v0", models.LangJavaScript)
	m.SetValue("v1")
	m.SetValue("v2")

	if !m.Undo() || m.Value() != "v1" {
		t.Fatalf("after first undo value = %q, want v1", m.Value())
	}
	if !m.Undo() || m.Value() != "v0" {
		t.Fatalf("after second undo value = %q, want v0", m.Value())
	}
	if m.Undo() {
		t.Error("undo succeeded with empty history")
	}
	if !m.Redo() || m.Value() != "v1" {
		t.Fatalf("after redo value = %q, want v1", m.Value())
	}

	// A fresh edit clears the redo stack.
	m.SetValue("v3")
	if m.Redo() {
		t.Error("redo succeeded after a new edit")
	}
}

func TestSetValueIdenticalIsNoop(t *testing.T) {
	m := NewModel("a.js", "same", models.LangJavaScript)
	m.SetValue("same")

	if m.Version() != 0 {
		t.Errorf("version = %d after identical set, want 0", m.Version())
	}
	if m.Undo() {
		t.Error("identical set recorded an undo entry")
	}
}

package archive

import (
	"archive/zip"
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/miniide/miniide-cli/pkg/models"
)

func TestExportZipRoundTrip(t *testing.T) {
	records := []models.FileRecord{
		{ID: "index.html", Name: "index.html", Language: models.LangHTML, Content: "<h1>hi</h1>"},
		{ID: "src/main.py", Name: "src/main.py", Language: models.LangPython, Content: "print(1)"},
	}

	var buf bytes.Buffer
	if err := ExportZip(&buf, records); err != nil {
		t.Fatalf("ExportZip() error: %v", err)
	}

	zipPath := filepath.Join(t.TempDir(), "project.zip")
	if err := os.WriteFile(zipPath, buf.Bytes(), 0o644); err != nil {
		t.Fatalf("write zip: %v", err)
	}

	items, err := ImportZip(zipPath)
	if err != nil {
		t.Fatalf("ImportZip() error: %v", err)
	}

	// Manifest entry is metadata, not a workspace file.
	if len(items) != 2 {
		t.Fatalf("imported %d items, want 2", len(items))
	}
	byPath := make(map[string]string)
	for _, it := range items {
		if it.Err != nil {
			t.Errorf("item %s error: %v", it.Path, it.Err)
		}
		byPath[it.Path] = it.Content
	}
	if byPath["src/main.py"] != "print(1)" {
		t.Errorf("nested path content = %q", byPath["src/main.py"])
	}
	if byPath["index.html"] != "<h1>hi</h1>" {
		t.Errorf("root path content = %q", byPath["index.html"])
	}
}

func TestExportZipContainsManifest(t *testing.T) {
	var buf bytes.Buffer
	if err := ExportZip(&buf, []models.FileRecord{{Name: "a.js", Language: models.LangJavaScript}}); err != nil {
		t.Fatalf("ExportZip() error: %v", err)
	}

	zr, err := zip.NewReader(bytes.NewReader(buf.Bytes()), int64(buf.Len()))
	if err != nil {
		t.Fatalf("reopen zip: %v", err)
	}
	found := false
	for _, f := range zr.File {
		if f.Name == manifestName {
			found = true
		}
	}
	if !found {
		t.Error("manifest entry missing from export")
	}
}

func TestImportDir(t *testing.T) {
	dir := t.TempDir()
	project := filepath.Join(dir, "proj")
	if err := os.MkdirAll(filepath.Join(project, "src"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(project, "app.js"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(project, "src", "deep.py"), []byte("y"), 0o644); err != nil {
		t.Fatal(err)
	}

	items, err := ImportDir(project)
	if err != nil {
		t.Fatalf("ImportDir() error: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("imported %d items, want 2", len(items))
	}
	if items[0].Path != "proj/app.js" || items[1].Path != "proj/src/deep.py" {
		t.Errorf("paths = %s, %s", items[0].Path, items[1].Path)
	}
}

func TestImportFileFailureCaptured(t *testing.T) {
	item := ImportFile(filepath.Join(t.TempDir(), "missing.js"))
	if item.Err == nil {
		t.Error("missing file did not capture an error")
	}
	if item.Path != "missing.js" {
		t.Errorf("path = %q", item.Path)
	}
}

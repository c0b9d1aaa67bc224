// Package archive packages the workspace into a ZIP and imports files back
// in, with per-item failure semantics on the way in.
package archive

import (
	"archive/zip"
	"fmt"
	"io"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/miniide/miniide-cli/pkg/models"
)

// manifestName is the metadata entry written alongside the files.
const manifestName = ".minide.yaml"

// Manifest describes an exported workspace.
type Manifest struct {
	ExportedAt time.Time `yaml:"exported_at"`
	FileCount  int       `yaml:"file_count"`
	Languages  []string  `yaml:"languages"`
}

// ExportZip writes every record's path and content verbatim into a ZIP
// archive, plus a small manifest entry.
func ExportZip(w io.Writer, records []models.FileRecord) error {
	zw := zip.NewWriter(w)

	seen := make(map[models.Language]bool)
	var langs []string
	for _, r := range records {
		if !seen[r.Language] {
			seen[r.Language] = true
			langs = append(langs, string(r.Language))
		}
	}

	manifest, err := yaml.Marshal(Manifest{
		ExportedAt: time.Now().UTC(),
		FileCount:  len(records),
		Languages:  langs,
	})
	if err != nil {
		return fmt.Errorf("marshal manifest: %w", err)
	}
	mw, err := zw.Create(manifestName)
	if err != nil {
		return fmt.Errorf("create manifest entry: %w", err)
	}
	if _, err := mw.Write(manifest); err != nil {
		return fmt.Errorf("write manifest: %w", err)
	}

	for _, r := range records {
		fw, err := zw.Create(r.Name)
		if err != nil {
			return fmt.Errorf("create archive entry %s: %w", r.Name, err)
		}
		if _, err := io.WriteString(fw, r.Content); err != nil {
			return fmt.Errorf("write archive entry %s: %w", r.Name, err)
		}
	}

	return zw.Close()
}

package archive

import (
	"archive/zip"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/charlievieth/fastwalk"

	"github.com/miniide/miniide-cli/pkg/session"
)

// maxImportFileSize skips files too large to be source text.
const maxImportFileSize = 4 << 20

// ImportFile reads a single file from disk into an import item. A read
// failure is captured on the item, not returned, so callers treat every
// item uniformly.
func ImportFile(path string) session.ImportItem {
	data, err := os.ReadFile(path)
	if err != nil {
		return session.ImportItem{Path: filepath.ToSlash(filepath.Base(path)), Err: err}
	}
	return session.ImportItem{Path: filepath.ToSlash(filepath.Base(path)), Content: string(data)}
}

// ImportDir walks a directory tree and reads every regular file into an
// import item keyed by its slash path relative to the directory. Individual
// read failures become per-item errors; only the walk setup itself can fail.
func ImportDir(dir string) ([]session.ImportItem, error) {
	root := filepath.Clean(dir)
	base := filepath.Base(root)

	var mu sync.Mutex
	var items []session.ImportItem

	conf := fastwalk.Config{Follow: false}
	err := fastwalk.Walk(&conf, root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if d.IsDir() {
			return nil
		}
		rel, relErr := filepath.Rel(root, path)
		if relErr != nil {
			return nil
		}
		// Uploaded paths keep the directory name as their top segment,
		// matching browser folder uploads.
		id := filepath.ToSlash(filepath.Join(base, rel))

		item := session.ImportItem{Path: id}
		if info, infoErr := d.Info(); infoErr == nil && info.Size() > maxImportFileSize {
			item.Err = fmt.Errorf("file larger than %d bytes", maxImportFileSize)
		} else if data, readErr := os.ReadFile(path); readErr != nil {
			item.Err = readErr
		} else {
			item.Content = string(data)
		}

		mu.Lock()
		items = append(items, item)
		mu.Unlock()
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk %s: %w", dir, err)
	}

	sort.Slice(items, func(i, j int) bool { return items[i].Path < items[j].Path })
	return items, nil
}

// ImportZip reads every entry of a ZIP archive into import items, skipping
// directories and the export manifest. Per-entry read failures become
// per-item errors.
func ImportZip(path string) ([]session.ImportItem, error) {
	zr, err := zip.OpenReader(path)
	if err != nil {
		return nil, fmt.Errorf("open archive %s: %w", path, err)
	}
	defer zr.Close()

	var items []session.ImportItem
	for _, f := range zr.File {
		name := filepath.ToSlash(f.Name)
		if f.FileInfo().IsDir() || name == manifestName || strings.HasSuffix(name, "/") {
			continue
		}

		item := session.ImportItem{Path: name}
		rc, err := f.Open()
		if err != nil {
			item.Err = err
			items = append(items, item)
			continue
		}
		data, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			item.Err = err
		} else {
			item.Content = string(data)
		}
		items = append(items, item)
	}
	return items, nil
}

package session

import (
	"fmt"
	"strings"

	"github.com/miniide/miniide-cli/pkg/console"
	"github.com/miniide/miniide-cli/pkg/models"
)

// CreateFile adds an empty record under the given path-name, materializes
// its model, and makes it current. A duplicate id is a conflict: reported,
// nothing mutated.
func (s *Session) CreateFile(name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if name == "" {
		return fmt.Errorf("create file: empty name")
	}
	if s.store.Exists(name) {
		s.console.Append(console.KindError, fmt.Sprintf("File creation failed: A file named '%s' already exists.", name))
		return fmt.Errorf("create %s: %w", name, ErrConflict)
	}

	rec := models.FileRecord{
		ID:       name,
		Name:     name,
		Language: models.DetectLanguage(name),
	}
	if err := s.store.Upsert(rec); err != nil {
		s.reportSaveError(err)
	}
	s.cache.GetOrCreate(rec.ID, rec.Content, rec.Language)
	s.current = rec.ID
	s.bindCurrent()
	s.console.Append(console.KindLog, fmt.Sprintf("New file created: %s", name))
	s.logger.Info("file created", "id", name)
	return nil
}

// CreateFolder adds the synthetic placeholder record that represents an
// otherwise empty folder. An existing record under the folder prefix, or an
// exact id match for the placeholder, is a conflict.
func (s *Session) CreateFolder(folder string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if folder == "" {
		return fmt.Errorf("create folder: empty name")
	}
	name := folder + "/" + models.FolderPlaceholderName
	if s.store.HasPrefix(folder) || s.store.Exists(name) {
		s.console.Append(console.KindError, fmt.Sprintf("Folder structure '%s' already exists.", folder))
		return fmt.Errorf("create folder %s: %w", folder, ErrConflict)
	}

	rec := models.FileRecord{
		ID:       name,
		Name:     name,
		Language: models.LangMarkdown,
		Content:  fmt.Sprintf("# %s\n\nThis is a placeholder file for the folder structure.", folder),
	}
	if err := s.store.Upsert(rec); err != nil {
		s.reportSaveError(err)
	}
	s.cache.GetOrCreate(rec.ID, rec.Content, rec.Language)
	s.current = rec.ID
	s.bindCurrent()
	s.console.Append(console.KindLog, fmt.Sprintf("Created folder structure: %s (represented by %s)", folder, name))
	s.logger.Info("folder created", "folder", folder)
	return nil
}

// Rename moves a record to a new path-id. The language tag is re-derived
// from the new name's extension, discarding any explicit override. An
// existing destination id is a conflict; renaming to the same name is a
// no-op.
func (s *Session) Rename(oldID, newID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.store.Get(oldID)
	if !ok {
		s.console.Append(console.KindError, fmt.Sprintf("Rename failed: No file named '%s'.", oldID))
		return fmt.Errorf("rename %s: %w", oldID, ErrNotFound)
	}
	if newID == "" || newID == oldID {
		return nil
	}
	if s.store.Exists(newID) {
		s.console.Append(console.KindError, "Rename failed: File with this name already exists.")
		return fmt.Errorf("rename %s to %s: %w", oldID, newID, ErrConflict)
	}

	rec.ID = newID
	rec.Name = newID
	rec.Language = models.DetectLanguage(newID)
	if err := s.store.Replace(oldID, rec); err != nil {
		s.reportSaveError(err)
	}

	s.cache.Rename(oldID, newID)
	if m := s.cache.Get(newID); m != nil {
		m.SetLanguage(rec.Language)
	}
	if s.current == oldID {
		s.current = newID
		s.bindCurrent()
	}
	s.console.Append(console.KindLog, fmt.Sprintf("File renamed to: %s", newID))
	s.logger.Info("file renamed", "from", oldID, "to", newID)
	return nil
}

// DeleteFile removes a record and disposes its model. When the last record
// goes, the sentinel file is synthesized so the workspace is never empty;
// when the current document goes, the first remaining record becomes
// current.
func (s *Session) DeleteFile(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	removed, err := s.store.Remove(id)
	if err != nil {
		s.reportSaveError(err)
	}
	if !removed {
		s.console.Append(console.KindError, fmt.Sprintf("Delete failed: No file named '%s'.", id))
		return fmt.Errorf("delete %s: %w", id, ErrNotFound)
	}

	s.cache.Dispose(id)
	s.ensureNonEmpty()
	if s.current == id {
		first, _ := s.store.First()
		s.current = first.ID
		s.bindCurrent()
	}
	s.console.Append(console.KindLog, fmt.Sprintf("Deleted file: %s", id))
	s.logger.Info("file deleted", "id", id)
	return nil
}

// DeleteFolder removes every record under folderPath and bulk-disposes their
// models, clearing the folder's collapse marker. Zero matches reports
// NotFound and mutates nothing. Returns the number of records removed.
func (s *Session) DeleteFolder(folderPath string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	removed, err := s.store.RemoveByPrefix(folderPath)
	if err != nil {
		s.reportSaveError(err)
	}
	if removed == 0 {
		s.console.Append(console.KindError, fmt.Sprintf("Folder not found or already empty: %s", folderPath))
		return 0, fmt.Errorf("delete folder %s: %w", folderPath, ErrNotFound)
	}

	s.cache.DisposeByPrefix(folderPath)
	s.ensureNonEmpty()
	if strings.HasPrefix(s.current, folderPath+"/") {
		first, _ := s.store.First()
		s.current = first.ID
		s.bindCurrent()
	}
	if err := s.store.ClearCollapsed(folderPath); err != nil {
		s.logger.Warn("clear folder state failed", "folder", folderPath, "error", err)
	}
	s.console.Append(console.KindLog, fmt.Sprintf("Deleted folder structure and %d files: %s", removed, folderPath))
	s.logger.Info("folder deleted", "folder", folderPath, "removed", removed)
	return removed, nil
}

// ensureNonEmpty synthesizes the sentinel record when the store has been
// emptied. Callers hold the mutex.
func (s *Session) ensureNonEmpty() {
	if s.store.Len() > 0 {
		return
	}
	sentinel := models.Sentinel()
	if err := s.store.Upsert(sentinel); err != nil {
		s.reportSaveError(err)
	}
	s.cache.GetOrCreate(sentinel.ID, sentinel.Content, sentinel.Language)
	s.current = sentinel.ID
	s.bindCurrent()
}

// ImportItem is one uploaded file: either content read successfully or a
// per-item read error.
type ImportItem struct {
	Path    string
	Content string
	Err     error
}

// Import appends uploaded items to the store with partial-failure semantics:
// a failed or conflicting item is reported and skipped without aborting its
// siblings. The last successfully imported file becomes current. Returns the
// number of files added.
func (s *Session) Import(items []ImportItem) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	added := 0
	lastID := ""
	for _, item := range items {
		if item.Err != nil {
			s.console.Append(console.KindError, fmt.Sprintf("Error reading file %s: %v", item.Path, item.Err))
			continue
		}
		if s.store.Exists(item.Path) {
			s.console.Append(console.KindError, fmt.Sprintf("Skipped file (already exists): %s", item.Path))
			continue
		}
		rec := models.FileRecord{
			ID:       item.Path,
			Name:     item.Path,
			Language: models.DetectLanguage(item.Path),
			Content:  item.Content,
		}
		if err := s.store.Upsert(rec); err != nil {
			s.reportSaveError(err)
		}
		s.cache.GetOrCreate(rec.ID, rec.Content, rec.Language)
		lastID = rec.ID
		added++
	}

	if added > 0 {
		s.current = lastID
		s.bindCurrent()
	}
	s.console.Append(console.KindLog, fmt.Sprintf("Uploaded %d new files.", added))
	s.logger.Info("import finished", "attempted", len(items), "added", added)
	return added
}

// Package store persists the workspace file collection to a local Badger DB.
//
// The whole collection lives under a single key and is replaced wholesale on
// every save, mirroring a localStorage-style blob. Folder collapse state is a
// separate keyspace so toggling a folder never rewrites the collection.
package store

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/dgraph-io/badger/v4"

	"github.com/miniide/miniide-cli/pkg/models"
)

const (
	// filesKey holds the serialized record collection.
	filesKey = "files/v1"

	// folderStatePrefix keys one marker per collapsed folder path.
	folderStatePrefix = "folder-state/"

	collapsedMarker = "collapsed"
)

// Store is the durable file store. The in-memory mirror is authoritative for
// the session; Badger write failures are reported to the caller but never
// invalidate the mirror.
type Store struct {
	db      *badger.DB
	records []models.FileRecord
}

// Open opens (or creates) the store at dir and loads the saved collection,
// seeding the starter project when nothing has been saved yet.
func Open(dir string) (*Store, error) {
	opts := badger.DefaultOptions(dir)
	opts.Logger = nil

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open store at %s: %w", dir, err)
	}

	s := &Store{db: db}
	if err := s.load(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

// Close flushes nothing (saves are synchronous) and closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) load() error {
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(filesKey))
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &s.records)
		})
	})
	if err == badger.ErrKeyNotFound {
		s.records = models.SeedRecords()
		return s.Save()
	}
	if err != nil {
		return fmt.Errorf("load file collection: %w", err)
	}
	return nil
}

// Save serializes the full collection and replaces the stored blob in one
// transaction. A failure leaves the in-memory mirror untouched.
func (s *Store) Save() error {
	data, err := json.Marshal(s.records)
	if err != nil {
		return fmt.Errorf("serialize file collection: %w", err)
	}
	err = s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(filesKey), data)
	})
	if err != nil {
		return fmt.Errorf("persist file collection: %w", err)
	}
	return nil
}

// List returns a copy of the current collection in stored order.
func (s *Store) List() []models.FileRecord {
	out := make([]models.FileRecord, len(s.records))
	copy(out, s.records)
	return out
}

// Len reports the number of records.
func (s *Store) Len() int {
	return len(s.records)
}

// Get returns the record with the given id.
func (s *Store) Get(id string) (models.FileRecord, bool) {
	for _, r := range s.records {
		if r.ID == id {
			return r, true
		}
	}
	return models.FileRecord{}, false
}

// Exists reports whether a record with the given id is present.
func (s *Store) Exists(id string) bool {
	_, ok := s.Get(id)
	return ok
}

// HasPrefix reports whether any record's path starts with prefix + "/".
func (s *Store) HasPrefix(prefix string) bool {
	p := prefix + "/"
	for _, r := range s.records {
		if strings.HasPrefix(r.Name, p) {
			return true
		}
	}
	return false
}

// Upsert inserts or replaces the record with a matching id, then saves.
func (s *Store) Upsert(rec models.FileRecord) error {
	for i, r := range s.records {
		if r.ID == rec.ID {
			s.records[i] = rec
			return s.Save()
		}
	}
	s.records = append(s.records, rec)
	return s.Save()
}

// SetContent updates only the content of an existing record without saving;
// the caller schedules persistence (debounced autosave path).
func (s *Store) SetContent(id, content string) bool {
	for i, r := range s.records {
		if r.ID == id {
			s.records[i].Content = content
			return true
		}
	}
	return false
}

// Replace swaps the record stored under oldID for rec, preserving position.
func (s *Store) Replace(oldID string, rec models.FileRecord) error {
	for i, r := range s.records {
		if r.ID == oldID {
			s.records[i] = rec
			return s.Save()
		}
	}
	return fmt.Errorf("record %s not found", oldID)
}

// Remove deletes the record with the given id and saves. It reports whether
// a record was removed.
func (s *Store) Remove(id string) (bool, error) {
	for i, r := range s.records {
		if r.ID == id {
			s.records = append(s.records[:i], s.records[i+1:]...)
			return true, s.Save()
		}
	}
	return false, nil
}

// RemoveByPrefix deletes every record whose path starts with prefix + "/",
// returning how many were removed. Zero removals performs no save.
func (s *Store) RemoveByPrefix(prefix string) (int, error) {
	p := prefix + "/"
	kept := s.records[:0]
	removed := 0
	for _, r := range s.records {
		if strings.HasPrefix(r.Name, p) {
			removed++
			continue
		}
		kept = append(kept, r)
	}
	s.records = kept
	if removed == 0 {
		return 0, nil
	}
	return removed, s.Save()
}

// First returns the first record in path-sorted order.
func (s *Store) First() (models.FileRecord, bool) {
	if len(s.records) == 0 {
		return models.FileRecord{}, false
	}
	sorted := s.List()
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Name < sorted[j].Name
	})
	return sorted[0], true
}

// SetCollapsed marks a folder path as collapsed (or clears the marker).
func (s *Store) SetCollapsed(folderPath string, collapsed bool) error {
	key := []byte(folderStatePrefix + folderPath)
	err := s.db.Update(func(txn *badger.Txn) error {
		if collapsed {
			return txn.Set(key, []byte(collapsedMarker))
		}
		return txn.Delete(key)
	})
	if err != nil {
		return fmt.Errorf("persist folder state %s: %w", folderPath, err)
	}
	return nil
}

// Collapsed reports whether the folder path carries a collapse marker.
func (s *Store) Collapsed(folderPath string) bool {
	var collapsed bool
	s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(folderStatePrefix + folderPath))
		if err != nil {
			return nil
		}
		return item.Value(func(val []byte) error {
			collapsed = string(val) == collapsedMarker
			return nil
		})
	})
	return collapsed
}

// CollapsedSet returns every collapsed folder path.
func (s *Store) CollapsedSet() map[string]bool {
	out := make(map[string]bool)
	s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		it := txn.NewIterator(opts)
		defer it.Close()

		prefix := []byte(folderStatePrefix)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			key := string(it.Item().Key())
			out[strings.TrimPrefix(key, folderStatePrefix)] = true
		}
		return nil
	})
	return out
}

// ClearCollapsed removes the collapse marker for a folder path, used when the
// folder itself is deleted.
func (s *Store) ClearCollapsed(folderPath string) error {
	return s.SetCollapsed(folderPath, false)
}

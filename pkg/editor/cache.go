package editor

import (
	"sort"
	"strings"

	"github.com/miniide/miniide-cli/pkg/models"
)

// Cache maps file ids to live models. It is the only owner of model
// lifecycles: after any rename or delete completes, no entry may remain under
// an id that no longer names a file record.
type Cache struct {
	models map[string]*Model
}

// NewCache returns an empty model cache.
func NewCache() *Cache {
	return &Cache{models: make(map[string]*Model)}
}

// Get returns the model for id, or nil when none has been materialized.
func (c *Cache) Get(id string) *Model {
	return c.models[id]
}

// GetOrCreate returns the model for id, creating it from the given content
// and language on first access.
func (c *Cache) GetOrCreate(id, content string, language models.Language) *Model {
	if m, ok := c.models[id]; ok {
		return m
	}
	m := NewModel(id, content, language)
	c.models[id] = m
	return m
}

// Rename re-keys an existing model from oldID to newID without disposing it,
// preserving edit history. When no model exists under oldID this is a no-op;
// one will be created lazily under the new key.
func (c *Cache) Rename(oldID, newID string) {
	m, ok := c.models[oldID]
	if !ok {
		return
	}
	delete(c.models, oldID)
	m.uri = "inmemory://" + newID
	c.models[newID] = m
}

// Dispose releases the model for id, if present.
func (c *Cache) Dispose(id string) {
	if m, ok := c.models[id]; ok {
		m.Dispose()
		delete(c.models, id)
	}
}

// DisposeByPrefix releases every model whose id starts with prefix + "/".
// Used when a folder subtree is deleted.
func (c *Cache) DisposeByPrefix(prefix string) int {
	p := prefix + "/"
	disposed := 0
	for id, m := range c.models {
		if strings.HasPrefix(id, p) {
			m.Dispose()
			delete(c.models, id)
			disposed++
		}
	}
	return disposed
}

// Len reports the number of live models.
func (c *Cache) Len() int {
	return len(c.models)
}

// Keys returns the cached ids in sorted order.
func (c *Cache) Keys() []string {
	keys := make([]string, 0, len(c.models))
	for id := range c.models {
		keys = append(keys, id)
	}
	sort.Strings(keys)
	return keys
}

// Package logging wires component-scoped structured loggers. TUI sessions
// log to a file under the XDG state directory so log output never corrupts
// the alternate screen.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/adrg/xdg"
	"github.com/charmbracelet/log"
)

var (
	mu     sync.Mutex
	root   = log.NewWithOptions(io.Discard, log.Options{ReportTimestamp: true})
	closer io.Closer
)

// Init directs all loggers at the given log file, creating parent
// directories as needed. An empty path selects the default location.
func Init(path, level string) error {
	mu.Lock()
	defer mu.Unlock()

	if path == "" {
		path = DefaultLogPath()
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open log file %s: %w", path, err)
	}

	lvl, err := log.ParseLevel(level)
	if err != nil {
		lvl = log.InfoLevel
	}

	if closer != nil {
		closer.Close()
	}
	closer = f
	root = log.NewWithOptions(f, log.Options{ReportTimestamp: true, Level: lvl})
	return nil
}

// InitConsole directs loggers at stderr, used by one-shot CLI commands.
func InitConsole(level string) {
	mu.Lock()
	defer mu.Unlock()

	lvl, err := log.ParseLevel(level)
	if err != nil {
		lvl = log.InfoLevel
	}
	root = log.NewWithOptions(os.Stderr, log.Options{Level: lvl})
}

// Get returns a logger scoped to the given component name.
func Get(component string) *log.Logger {
	mu.Lock()
	defer mu.Unlock()
	return root.WithPrefix(component)
}

// Close releases the log file, if one is open.
func Close() error {
	mu.Lock()
	defer mu.Unlock()
	if closer == nil {
		return nil
	}
	err := closer.Close()
	closer = nil
	return err
}

// DefaultLogPath returns the standard log file location.
func DefaultLogPath() string {
	return filepath.Join(xdg.StateHome, "minide", "minide.log")
}

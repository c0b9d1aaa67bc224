// Package console defines the user-visible message sink every component
// reports through. All failures surface here as appended lines; nothing is
// silently swallowed.
package console

import (
	"fmt"
	"io"
	"sync"
)

// Kind classifies a console line.
type Kind int

const (
	KindLog Kind = iota
	KindError
)

// Message is one appended console line.
type Message struct {
	Kind Kind
	Text string
}

// Console receives user-visible output from the session and executors.
type Console interface {
	Append(kind Kind, text string)
}

// Buffer is an in-memory console with a bounded line history, suitable for
// the TUI console pane and for tests.
type Buffer struct {
	mu    sync.Mutex
	max   int
	lines []Message
}

// NewBuffer creates a buffer retaining at most max lines (0 means unbounded).
func NewBuffer(max int) *Buffer {
	return &Buffer{max: max}
}

// Append adds a line, dropping the oldest when over capacity.
func (b *Buffer) Append(kind Kind, text string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.lines = append(b.lines, Message{Kind: kind, Text: text})
	if b.max > 0 && len(b.lines) > b.max {
		b.lines = b.lines[len(b.lines)-b.max:]
	}
}

// Lines returns a snapshot of the buffered messages.
func (b *Buffer) Lines() []Message {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]Message, len(b.lines))
	copy(out, b.lines)
	return out
}

// Clear empties the buffer and appends the acknowledgement line.
func (b *Buffer) Clear() {
	b.mu.Lock()
	b.lines = nil
	b.mu.Unlock()
	b.Append(KindLog, "Console cleared.")
}

// Writer adapts an io.Writer (CLI usage) to the Console interface.
type Writer struct {
	Out io.Writer
}

// Append writes the line, prefixing errors.
func (w Writer) Append(kind Kind, text string) {
	if kind == KindError {
		fmt.Fprintf(w.Out, "error: %s\n", text)
		return
	}
	fmt.Fprintln(w.Out, text)
}

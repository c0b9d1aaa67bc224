package console

import (
	"strings"
	"testing"
)

func TestBufferAppendAndBound(t *testing.T) {
	b := NewBuffer(3)
	for _, s := range []string{"one", "two", "three", "four"} {
		b.Append(KindLog, s)
	}

	lines := b.Lines()
	if len(lines) != 3 {
		t.Fatalf("retained %d lines, want 3", len(lines))
	}
	if lines[0].Text != "two" || lines[2].Text != "four" {
		t.Errorf("lines = %v, want oldest dropped", lines)
	}
}

func TestBufferClear(t *testing.T) {
	b := NewBuffer(0)
	b.Append(KindError, "boom")
	b.Clear()

	lines := b.Lines()
	if len(lines) != 1 {
		t.Fatalf("lines after clear = %d, want 1 acknowledgement", len(lines))
	}
	if lines[0].Text != "Console cleared." || lines[0].Kind != KindLog {
		t.Errorf("acknowledgement line = %+v", lines[0])
	}
}

func TestWriterPrefixesErrors(t *testing.T) {
	var sb strings.Builder
	w := Writer{Out: &sb}
	w.Append(KindLog, "plain")
	w.Append(KindError, "boom")

	got := sb.String()
	if got != "plain\nerror: boom\n" {
		t.Errorf("output = %q", got)
	}
}

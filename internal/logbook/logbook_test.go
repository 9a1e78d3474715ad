package logbook

import (
	"path/filepath"
	"strings"
	"testing"
)

func TestAppendAndTail(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "consolidate.log")
	book, err := New(path)
	if err != nil {
		t.Fatalf("new logbook: %v", err)
	}
	for i := 0; i < 5; i++ {
		book.Info("entry-%d", i)
	}
	lines := book.Tail(3)
	if len(lines) != 3 {
		t.Fatalf("len(lines) = %d, want 3", len(lines))
	}
	for idx, want := range []string{"entry-2", "entry-3", "entry-4"} {
		if !strings.Contains(lines[idx], want) {
			t.Fatalf("line %d = %q, missing %s", idx, lines[idx], want)
		}
	}
}

func TestLevelsAppearInEntries(t *testing.T) {
	book, err := New(filepath.Join(t.TempDir(), "run.log"))
	if err != nil {
		t.Fatalf("new logbook: %v", err)
	}
	book.Warn("skipping %s", "broken.json")
	book.Error("write failed")
	lines := book.Tail(10)
	if len(lines) != 2 {
		t.Fatalf("len(lines) = %d, want 2", len(lines))
	}
	if !strings.Contains(lines[0], "WARN") || !strings.Contains(lines[0], "broken.json") {
		t.Fatalf("warn line = %q", lines[0])
	}
	if !strings.Contains(lines[1], "ERROR") {
		t.Fatalf("error line = %q", lines[1])
	}
}

func TestNilLogbookIsSafe(t *testing.T) {
	var book *Logbook
	book.Info("ignored")
	book.Warn("ignored")
	if lines := book.Tail(5); lines != nil {
		t.Fatalf("nil logbook Tail = %v, want nil", lines)
	}
	if book.Path() != "" {
		t.Fatalf("nil logbook Path = %q", book.Path())
	}
}

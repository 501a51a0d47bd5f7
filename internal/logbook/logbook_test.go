package logbook

import (
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestTailReturnsRecentLinesAndTotal(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "logs", "journey.log")
	book, err := New(path)
	if err != nil {
		t.Fatalf("new logbook: %v", err)
	}
	for i := 0; i < 5; i++ {
		book.Info("entry-%d", i)
	}
	lines, total := book.Tail(3)
	if total != 5 {
		t.Fatalf("total lines = %d, want 5", total)
	}
	if len(lines) != 3 {
		t.Fatalf("len(lines) = %d, want 3", len(lines))
	}
	for idx, want := range []string{"entry-2", "entry-3", "entry-4"} {
		if !strings.Contains(lines[idx], want) {
			t.Fatalf("line %d = %q, missing %s", idx, lines[idx], want)
		}
	}
}

func TestTailOnMissingFile(t *testing.T) {
	book, err := New(filepath.Join(t.TempDir(), "journey.log"))
	if err != nil {
		t.Fatal(err)
	}
	lines, total := book.Tail(8)
	if lines != nil || total != 0 {
		t.Fatalf("expected empty tail, got %v / %d", lines, total)
	}
}

func TestAppendFormatsLevelAndFoldsLines(t *testing.T) {
	book, err := New(filepath.Join(t.TempDir(), "journey.log"))
	if err != nil {
		t.Fatal(err)
	}
	book.now = func() time.Time { return time.Date(2025, 4, 20, 9, 30, 0, 0, time.UTC) }
	book.Error("export failed:\n  disk full")

	lines, _ := book.Tail(1)
	want := "2025-04-20T09:30:00Z ERROR export failed: disk full"
	if len(lines) != 1 || lines[0] != want {
		t.Fatalf("got %q, want %q", lines, want)
	}
}

func TestNilLogbookIsSafe(t *testing.T) {
	var book *Logbook
	book.Info("ignored")
	if lines, total := book.Tail(3); lines != nil || total != 0 {
		t.Fatalf("nil logbook returned %v / %d", lines, total)
	}
	if book.Path() != "" {
		t.Fatalf("nil logbook path should be empty")
	}
}

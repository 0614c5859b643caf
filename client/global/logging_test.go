package global

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func readLog(t *testing.T, path string) string {
	t.Helper()

	contents, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading %s: %s", path, err)
	}

	return string(contents)
}

func TestRollingWriterAppends(t *testing.T) {
	w := NewRollingFileWriter(t.TempDir(), "test")

	for _, line := range []string{"one\n", "two\n"} {
		if _, err := w.Write([]byte(line)); err != nil {
			t.Fatalf("write failed: %s", err)
		}
	}

	if got := readLog(t, w.mainLogPath()); got != "one\ntwo\n" {
		t.Fatalf("unexpected log contents %q", got)
	}
}

func TestRollingWriterRotates(t *testing.T) {
	w := NewRollingFileWriter(t.TempDir(), "test")
	w.MaxSize = 10
	w.MaxLogs = 3

	lines := []string{"first....\n", "second...\n", "third....\n", "fourth...\n"}
	for _, line := range lines {
		if _, err := w.Write([]byte(line)); err != nil {
			t.Fatalf("write failed: %s", err)
		}
	}

	if got := readLog(t, w.mainLogPath()); got != lines[3] {
		t.Fatalf("main log should hold the newest line, got %q", got)
	}
	if got := readLog(t, w.archivePath(1)); got != lines[2] {
		t.Fatalf("first archive should hold the previous line, got %q", got)
	}
	if got := readLog(t, w.archivePath(2)); got != lines[1] {
		t.Fatalf("second archive should hold the line before that, got %q", got)
	}
	if _, err := os.Stat(w.archivePath(3)); !os.IsNotExist(err) {
		t.Fatalf("only %d log files should be kept", w.MaxLogs)
	}
}

func TestRollingWriterIgnoresForeignFiles(t *testing.T) {
	dir := t.TempDir()
	foreign := filepath.Join(dir, "test-notes.log")
	if err := os.WriteFile(foreign, []byte("keep me"), 0644); err != nil {
		t.Fatal(err)
	}

	w := NewRollingFileWriter(dir, "test")
	w.MaxSize = 1

	w.Write([]byte("a"))
	w.Write([]byte("b"))

	if !strings.Contains(readLog(t, foreign), "keep me") {
		t.Fatalf("rotation touched a file it does not own")
	}
}

func TestLogIndex(t *testing.T) {
	cases := map[string]int{"game-1.log": 1, "/tmp/logs/game-12.log": 12}
	for path, want := range cases {
		if got, ok := logIndex("game", path); !ok || got != want {
			t.Fatalf("logIndex(%q): expected %d, got %d (%t)", path, want, got, ok)
		}
	}

	for _, path := range []string{"game.log", "game-x.log", "game-0.log", "other-1.log"} {
		if _, ok := logIndex("game", path); ok {
			t.Fatalf("logIndex(%q) should not parse", path)
		}
	}
}

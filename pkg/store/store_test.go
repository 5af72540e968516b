package store

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestResolvePrefersNamespacedLayout(t *testing.T) {
	root := t.TempDir()
	p := NewProjectPaths(root)

	if err := os.MkdirAll(p.StateDir(), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	namespaced := filepath.Join(p.StateDir(), "manifest.yaml")
	if err := os.WriteFile(namespaced, []byte("project:\n  name: p\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	legacy := filepath.Join(root, "manifest.yaml")
	if err := os.WriteFile(legacy, []byte("project:\n  name: old\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	if got := p.ManifestPath(); got != namespaced {
		t.Fatalf("expected namespaced path, got %s", got)
	}
}

func TestResolveFallsBackToLegacyLayout(t *testing.T) {
	root := t.TempDir()
	p := NewProjectPaths(root)

	legacy := filepath.Join(root, "worklog.yaml")
	if err := os.WriteFile(legacy, []byte("tasks: []\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if got := p.WorklogPath(); got != legacy {
		t.Fatalf("expected legacy path, got %s", got)
	}
}

func TestResolveDefaultsToNamespaced(t *testing.T) {
	root := t.TempDir()
	p := NewProjectPaths(root)
	want := filepath.Join(p.StateDir(), "manifest.yaml")
	if got := p.ManifestPath(); got != want {
		t.Fatalf("fresh project should resolve namespaced, got %s", got)
	}
}

func TestWriteAtomicLeavesNoTempFile(t *testing.T) {
	root := t.TempDir()
	path := filepath.Join(root, "deep", "manifest.yaml")
	if err := WriteAtomic(path, []byte("project:\n  name: p\n")); err != nil {
		t.Fatalf("write: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if !strings.Contains(string(data), "name: p") {
		t.Fatalf("unexpected content: %s", data)
	}
	if _, err := os.Stat(path + ".tmp"); !os.IsNotExist(err) {
		t.Fatalf("temp file left behind")
	}
}

func TestBackupFile(t *testing.T) {
	root := t.TempDir()
	path := filepath.Join(root, "manifest.yaml")
	content := []byte("project:\n  name: original\n")
	if err := os.WriteFile(path, content, 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	now := time.Date(2026, time.March, 2, 9, 30, 15, 0, time.UTC)
	backup, err := BackupFile(path, now)
	if err != nil {
		t.Fatalf("backup: %v", err)
	}
	if !strings.HasSuffix(backup, ".bak.20260302T093015") {
		t.Fatalf("unexpected backup name: %s", backup)
	}
	got, err := os.ReadFile(backup)
	if err != nil {
		t.Fatalf("read backup: %v", err)
	}
	if string(got) != string(content) {
		t.Fatalf("backup content differs")
	}
}

func TestBackupFileMissingSource(t *testing.T) {
	backup, err := BackupFile(filepath.Join(t.TempDir(), "nope.yaml"), time.Now())
	if err != nil {
		t.Fatalf("missing source should not error: %v", err)
	}
	if backup != "" {
		t.Fatalf("expected empty backup path")
	}
}

func TestReadFileMissing(t *testing.T) {
	data, err := ReadFile(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("missing file should map to empty bytes: %v", err)
	}
	if data != nil {
		t.Fatalf("expected nil data")
	}
}

func TestUIStateRoundTrip(t *testing.T) {
	dir := t.TempDir()
	s, err := NewUIStateStore(filepath.Join(dir, "ui"))
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	project := filepath.Join(dir, "project")
	state := UIState{
		ActiveTab:       "datasets",
		Selections:      map[string]int{"datasets": 2},
		ExpandedFigures: []string{"fig1"},
	}
	if err := s.Save(project, state); err != nil {
		t.Fatalf("save: %v", err)
	}
	got := s.Load(project)
	if got.ActiveTab != "datasets" || got.Selections["datasets"] != 2 {
		t.Fatalf("state mangled: %#v", got)
	}
}

func TestUIStateMissingIsZero(t *testing.T) {
	s, err := NewUIStateStore(filepath.Join(t.TempDir(), "ui"))
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	got := s.Load("/no/such/project")
	if got.ActiveTab != "" || got.Selections != nil {
		t.Fatalf("expected zero state, got %#v", got)
	}
}

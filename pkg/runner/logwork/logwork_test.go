package logwork

import (
	"context"
	"testing"
	"time"

	"tableflip.dev/labjo/pkg/store"
	"tableflip.dev/labjo/pkg/worklog"
)

func run(t *testing.T, paths store.ProjectPaths, l Logwork) error {
	t.Helper()
	l.Paths = paths
	return l.Do(context.Background())
}

func loadLog(t *testing.T, paths store.ProjectPaths) *worklog.Log {
	t.Helper()
	data, err := store.ReadFile(paths.WorklogPath())
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	log, err := worklog.Unmarshal(data)
	if err != nil {
		t.Fatalf("unmarshal log: %v", err)
	}
	return log
}

func TestStartPauseResumeDone(t *testing.T) {
	paths := store.NewProjectPaths(t.TempDir())
	base := time.Date(2026, time.March, 2, 9, 0, 0, 0, time.UTC)

	if err := run(t, paths, Logwork{Action: ActionStart, Name: "segmentation pass", Type: "analysis", Now: base}); err != nil {
		t.Fatalf("start: %v", err)
	}
	if err := run(t, paths, Logwork{Action: ActionPause, Now: base.Add(30 * time.Minute)}); err != nil {
		t.Fatalf("pause: %v", err)
	}
	if err := run(t, paths, Logwork{Action: ActionResume, Now: base.Add(time.Hour)}); err != nil {
		t.Fatalf("resume: %v", err)
	}
	if err := run(t, paths, Logwork{Action: ActionNote, Text: "nuclei channel is noisy", Now: base.Add(90 * time.Minute)}); err != nil {
		t.Fatalf("note: %v", err)
	}
	if err := run(t, paths, Logwork{Action: ActionDone, Now: base.Add(90 * time.Minute)}); err != nil {
		t.Fatalf("done: %v", err)
	}

	log := loadLog(t, paths)
	if len(log.Tasks) != 1 {
		t.Fatalf("expected one task, got %d", len(log.Tasks))
	}
	task := log.Tasks[0]
	if task.Status != worklog.StatusCompleted {
		t.Fatalf("task status = %s, want completed", task.Status)
	}
	// 30 minutes before the pause plus 30 after the resume.
	if task.ElapsedSeconds != 3600 {
		t.Fatalf("elapsed = %ds, want 3600", task.ElapsedSeconds)
	}
	if task.Notes != "nuclei channel is noisy" {
		t.Fatalf("notes = %q", task.Notes)
	}
}

func TestStartRejectsWhenTaskOpen(t *testing.T) {
	paths := store.NewProjectPaths(t.TempDir())
	now := time.Date(2026, time.March, 2, 9, 0, 0, 0, time.UTC)

	if err := run(t, paths, Logwork{Action: ActionStart, Name: "imaging", Now: now}); err != nil {
		t.Fatalf("start: %v", err)
	}
	err := run(t, paths, Logwork{Action: ActionStart, Name: "another", Now: now.Add(time.Minute)})
	if err == nil {
		t.Fatalf("second start should be rejected while a task is open")
	}
	if log := loadLog(t, paths); len(log.Tasks) != 1 {
		t.Fatalf("rejected start must not persist a task, got %d", len(log.Tasks))
	}
}

func TestActionsRequireOpenTask(t *testing.T) {
	paths := store.NewProjectPaths(t.TempDir())
	now := time.Date(2026, time.March, 2, 9, 0, 0, 0, time.UTC)

	for _, action := range []Action{ActionPause, ActionResume, ActionDone, ActionNote} {
		l := Logwork{Action: action, Text: "x", Now: now}
		if err := run(t, paths, l); err == nil {
			t.Fatalf("%s with no open task should fail", action)
		}
	}
}

func TestReportRejectsBadWindow(t *testing.T) {
	paths := store.NewProjectPaths(t.TempDir())
	l := Logwork{Action: ActionReport, Window: "soon", Now: time.Now()}
	if err := run(t, paths, l); err == nil {
		t.Fatalf("malformed window should fail")
	}
}

package worklog

import (
	"strings"
	"testing"
	"time"
)

var t0 = time.Date(2026, time.March, 2, 9, 0, 0, 0, time.UTC)

func TestPauseResumeAccounting(t *testing.T) {
	l := &Log{}
	task := l.Start("segmentation QC", "analysis", t0)

	if err := task.Pause(t0.Add(10 * time.Minute)); err != nil {
		t.Fatalf("pause: %v", err)
	}
	if err := task.Resume(t0.Add(30 * time.Minute)); err != nil {
		t.Fatalf("resume: %v", err)
	}
	if err := task.Complete(t0.Add(40 * time.Minute)); err != nil {
		t.Fatalf("complete: %v", err)
	}

	got := task.Duration(t0.Add(40 * time.Minute))
	if got != 20*time.Minute {
		t.Fatalf("expected 20m accumulated, got %v", got)
	}
}

func TestPauseMarksCheckoutAtCheckin(t *testing.T) {
	l := &Log{}
	task := l.Start("tracing", "", t0)
	if err := task.Pause(t0.Add(5 * time.Minute)); err != nil {
		t.Fatalf("pause: %v", err)
	}
	if task.CheckOut == nil || !task.CheckOut.Equal(task.CheckIn.Time) {
		t.Fatalf("pause should set checkout equal to checkin, got %v", task.CheckOut)
	}
	if task.Status != StatusPaused {
		t.Fatalf("unexpected status %s", task.Status)
	}
}

func TestCompletePausedKeepsPausePoint(t *testing.T) {
	l := &Log{}
	task := l.Start("tracing", "", t0)
	_ = task.Pause(t0.Add(10 * time.Minute))
	if err := task.Complete(t0.Add(3 * time.Hour)); err != nil {
		t.Fatalf("complete: %v", err)
	}
	// Completing a paused task must not add the paused gap.
	if task.Duration(t0.Add(4*time.Hour)) != 10*time.Minute {
		t.Fatalf("paused gap leaked into duration: %v", task.Duration(t0))
	}
	if !task.CheckOut.Equal(task.CheckIn.Time) {
		t.Fatalf("checkout should stay at the pause point")
	}
}

func TestCompleteActive(t *testing.T) {
	l := &Log{}
	task := l.Start("tracing", "", t0)
	if err := task.Complete(t0.Add(45 * time.Minute)); err != nil {
		t.Fatalf("complete: %v", err)
	}
	if task.Duration(t0.Add(2*time.Hour)) != 45*time.Minute {
		t.Fatalf("unexpected duration %v", task.Duration(t0))
	}
	if err := task.Complete(t0.Add(time.Hour)); err == nil {
		t.Fatalf("double complete should fail")
	}
}

func TestActiveDurationIsLive(t *testing.T) {
	l := &Log{}
	task := l.Start("tracing", "", t0)
	if got := task.Duration(t0.Add(7 * time.Minute)); got != 7*time.Minute {
		t.Fatalf("active duration should track wall clock, got %v", got)
	}
	if got := task.Duration(t0.Add(9 * time.Minute)); got != 9*time.Minute {
		t.Fatalf("duration must be computed on demand, got %v", got)
	}
}

func TestInvalidTransitions(t *testing.T) {
	l := &Log{}
	task := l.Start("tracing", "", t0)
	if err := task.Resume(t0); err == nil {
		t.Fatalf("resume of active task should fail")
	}
	_ = task.Pause(t0.Add(time.Minute))
	if err := task.Pause(t0.Add(2 * time.Minute)); err == nil {
		t.Fatalf("double pause should fail")
	}
}

func TestProblems(t *testing.T) {
	l := &Log{}

	stale := l.Start("left running", "", t0)
	if got := stale.Problems(t0.Add(25 * time.Hour)); len(got) < 1 {
		t.Fatalf("open >24h session should be flagged")
	}

	marathon := l.Start("marathon", "", t0)
	marathon.ElapsedSeconds = int64((25 * time.Hour).Seconds())
	_ = marathon.Pause(t0.Add(time.Minute))
	found := false
	for _, p := range marathon.Problems(t0.Add(2 * time.Minute)) {
		if strings.Contains(p, "exceeds 24 hours") {
			found = true
		}
	}
	if !found {
		t.Fatalf("total duration >24h should be flagged")
	}

	fine := l.Start("fine", "", t0)
	_ = fine.Complete(t0.Add(time.Hour))
	if got := fine.Problems(t0.Add(2 * time.Hour)); len(got) != 0 {
		t.Fatalf("healthy session flagged: %v", got)
	}
}

func TestCurrentSkipsCompleted(t *testing.T) {
	l := &Log{}
	first := l.Start("one", "", t0)
	_ = first.Complete(t0.Add(time.Minute))
	second := l.Start("two", "", t0.Add(2*time.Minute))
	if got := l.Current(); got != second {
		t.Fatalf("Current should return the open task")
	}
	_ = second.Complete(t0.Add(3 * time.Minute))
	if l.Current() != nil {
		t.Fatalf("Current should be nil when everything is done")
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	l := &Log{}
	task := l.Start("segmentation QC", "analysis", t0)
	_ = task.Pause(t0.Add(10 * time.Minute))
	task.Notes = "blocked on transfer"

	data, err := l.Marshal()
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	back, err := Unmarshal(data)
	if err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(back.Tasks) != 1 {
		t.Fatalf("expected one task")
	}
	got := back.Tasks[0]
	if got.Name != "segmentation QC" || got.Status != StatusPaused {
		t.Fatalf("task mangled: %#v", got)
	}
	if got.ElapsedSeconds != 600 {
		t.Fatalf("elapsed not preserved: %d", got.ElapsedSeconds)
	}
	if !got.CheckIn.Equal(t0) {
		t.Fatalf("checkin not preserved: %v", got.CheckIn)
	}
}

func TestUnmarshalEmpty(t *testing.T) {
	l, err := Unmarshal(nil)
	if err != nil {
		t.Fatalf("empty input should yield an empty log: %v", err)
	}
	if len(l.Tasks) != 0 {
		t.Fatalf("expected no tasks")
	}
}

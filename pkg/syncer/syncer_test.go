package syncer

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestParsePercent(t *testing.T) {
	tests := []struct {
		line string
		pct  int
		ok   bool
	}{
		{"  1,234,567  42%  12.3MB/s  0:01:02", 42, true},
		{"100%", 100, true},
		{"0%", 0, true},
		{"sending incremental file list", 0, false},
		{"999%", 0, false},
		{"", 0, false},
	}
	for _, tt := range tests {
		pct, ok := parsePercent(tt.line)
		if ok != tt.ok || pct != tt.pct {
			t.Fatalf("parsePercent(%q) = %d,%v want %d,%v", tt.line, pct, ok, tt.pct, tt.ok)
		}
	}
}

func TestRunStreamsProgress(t *testing.T) {
	s := New("sh", "-c", `printf ' 10%%\r 55%%\r100%%\n'; exit 0`)
	events, done, err := s.Run(context.Background(), "ignored", "ignored")
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	var last int
	for ev := range events {
		last = ev.Percent
	}
	if last != 100 {
		t.Fatalf("final progress %d, want 100", last)
	}
	if res := <-done; res.Err != nil {
		t.Fatalf("clean exit reported as failure: %v", res.Err)
	}
	if s.InFlight() {
		t.Fatalf("in-flight flag must clear after completion")
	}
}

func TestRunReportsFailure(t *testing.T) {
	s := New("sh", "-c", `echo 'disk on fire' >&2; exit 23`)
	events, done, err := s.Run(context.Background(), "a", "b")
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	for range events {
	}
	res := <-done
	if res.Err == nil {
		t.Fatalf("non-zero exit must surface as a failure")
	}
}

func TestSecondRunIsRejected(t *testing.T) {
	s := New("sh", "-c", `sleep 2`)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	events, done, err := s.Run(ctx, "a", "b")
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if _, _, err := s.Run(ctx, "a", "b"); !errors.Is(err, ErrInFlight) {
		t.Fatalf("second run should be a no-op notice, got %v", err)
	}
	cancel()
	for range events {
	}
	<-done
}

func TestCancelKillsRun(t *testing.T) {
	s := New("sh", "-c", `sleep 10`)
	ctx, cancel := context.WithCancel(context.Background())
	events, done, err := s.Run(ctx, "a", "b")
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	cancel()
	for range events {
	}
	select {
	case res := <-done:
		if !errors.Is(res.Err, context.Canceled) {
			t.Fatalf("cancelled run should report context.Canceled, got %v", res.Err)
		}
	case <-time.After(5 * time.Second):
		t.Fatalf("cancelled run did not terminate")
	}
}

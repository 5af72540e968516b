// Package worklog implements the personal task log: session lifecycle,
// time accounting, and problematic-session detection. It persists
// independently of the project manifest.
package worklog

import (
	"fmt"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Status is a task lifecycle state.
type Status string

const (
	StatusActive    Status = "active"
	StatusPaused    Status = "paused"
	StatusCompleted Status = "completed"
)

// Task is one work session. CheckIn/CheckOut are wall-clock punch
// marks; ElapsedSeconds accumulates active time across pauses.
type Task struct {
	Name           string     `yaml:"name"`
	Type           string     `yaml:"type,omitempty"`
	Status         Status     `yaml:"status"`
	CheckIn        Timestamp  `yaml:"checkin"`
	CheckOut       *Timestamp `yaml:"checkout,omitempty"`
	ElapsedSeconds int64      `yaml:"elapsed_seconds,omitempty"`
	Notes          string     `yaml:"notes,omitempty"`
}

// Pause accumulates active time and marks the pause point by setting
// checkout equal to checkin, keeping the check-in reference intact.
func (t *Task) Pause(now time.Time) error {
	if t.Status != StatusActive {
		return fmt.Errorf("worklog: cannot pause a %s task", t.Status)
	}
	t.ElapsedSeconds += int64(now.Sub(t.CheckIn.Time).Seconds())
	mark := t.CheckIn
	t.CheckOut = &mark
	t.Status = StatusPaused
	return nil
}

// Resume restarts the clock: checkin becomes now, checkout clears.
func (t *Task) Resume(now time.Time) error {
	if t.Status != StatusPaused {
		return fmt.Errorf("worklog: cannot resume a %s task", t.Status)
	}
	t.CheckIn = Timestamp{Time: now}
	t.CheckOut = nil
	t.Status = StatusActive
	return nil
}

// Complete closes the task. A paused task keeps checkout at the pause
// point rather than the completion instant, so completing a paused task
// never silently adds the paused wall-clock gap.
func (t *Task) Complete(now time.Time) error {
	switch t.Status {
	case StatusCompleted:
		return fmt.Errorf("worklog: task already completed")
	case StatusPaused:
		mark := t.CheckIn
		t.CheckOut = &mark
	default:
		t.ElapsedSeconds += int64(now.Sub(t.CheckIn.Time).Seconds())
		out := Timestamp{Time: now}
		t.CheckOut = &out
	}
	t.Status = StatusCompleted
	return nil
}

// Note appends a line to the task notes.
func (t *Task) Note(text string) {
	text = strings.TrimSpace(text)
	if text == "" {
		return
	}
	if t.Notes == "" {
		t.Notes = text
		return
	}
	t.Notes += "\n" + text
}

// Duration reports total accumulated time, computed on demand so an
// active task always reflects real elapsed wall clock.
func (t *Task) Duration(now time.Time) time.Duration {
	total := time.Duration(t.ElapsedSeconds) * time.Second
	if t.Status == StatusActive {
		total += now.Sub(t.CheckIn.Time)
	}
	return total
}

const problematicAge = 24 * time.Hour

// Problems returns advisory flags for logically suspect sessions. They
// never block any operation.
func (t *Task) Problems(now time.Time) []string {
	var out []string
	// A paused task holds checkout == checkin by definition, so the
	// punch-order check only applies outside that state.
	if t.Status != StatusPaused && t.CheckOut != nil && !t.CheckOut.After(t.CheckIn.Time) {
		out = append(out, "punch-out is not after punch-in")
	}
	if t.CheckOut == nil && now.Sub(t.CheckIn.Time) > problematicAge {
		out = append(out, "open for more than 24 hours")
	}
	if t.Duration(now) > problematicAge {
		out = append(out, "total duration exceeds 24 hours")
	}
	return out
}

// Log is the persisted task sequence.
type Log struct {
	Tasks []*Task `yaml:"tasks"`
}

// Start appends a new active task and returns it.
func (l *Log) Start(name, taskType string, now time.Time) *Task {
	t := &Task{
		Name:    strings.TrimSpace(name),
		Type:    strings.TrimSpace(taskType),
		Status:  StatusActive,
		CheckIn: Timestamp{Time: now},
	}
	l.Tasks = append(l.Tasks, t)
	return t
}

// Current returns the most recent task that is not completed, which is
// what punch-style commands operate on.
func (l *Log) Current() *Task {
	for i := len(l.Tasks) - 1; i >= 0; i-- {
		if l.Tasks[i].Status != StatusCompleted {
			return l.Tasks[i]
		}
	}
	return nil
}

// Since returns the tasks checked in at or after cutoff, for report
// windows.
func (l *Log) Since(cutoff time.Time) []*Task {
	var out []*Task
	for _, t := range l.Tasks {
		if !t.CheckIn.Time.Before(cutoff) {
			out = append(out, t)
		}
	}
	return out
}

// Marshal renders the log as YAML.
func (l *Log) Marshal() ([]byte, error) {
	var sb strings.Builder
	enc := yaml.NewEncoder(&sb)
	enc.SetIndent(2)
	if err := enc.Encode(l); err != nil {
		return nil, fmt.Errorf("worklog: encode: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("worklog: encode: %w", err)
	}
	return []byte(sb.String()), nil
}

// Unmarshal parses a log document; empty input yields an empty log.
func Unmarshal(data []byte) (*Log, error) {
	l := &Log{}
	if strings.TrimSpace(string(data)) == "" {
		return l, nil
	}
	if err := yaml.Unmarshal(data, l); err != nil {
		return nil, fmt.Errorf("worklog: malformed document: %w", err)
	}
	return l, nil
}

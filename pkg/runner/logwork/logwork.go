package logwork

import (
	"context"
	"fmt"
	"time"

	"tableflip.dev/labjo/pkg/printers"
	"tableflip.dev/labjo/pkg/store"
	"tableflip.dev/labjo/pkg/timeutil"
	"tableflip.dev/labjo/pkg/worklog"
)

// Action is one work-log verb.
type Action string

const (
	ActionStart    Action = "start"
	ActionPause    Action = "pause"
	ActionResume   Action = "resume"
	ActionDone     Action = "done"
	ActionNote     Action = "note"
	ActionShow     Action = "show"
	ActionReport   Action = "report"
	ActionActivity Action = "activity"
)

// Logwork runs one work-log action against the project's log file.
type Logwork struct {
	Paths  store.ProjectPaths
	Action Action
	// Name names the task for start; Text carries note text.
	Name string
	Type string
	Text string
	// Window is the report window, e.g. "1w" or "3d".
	Window string
	// Year switches the activity grid from one month to twelve.
	Year bool

	// Now is injectable for tests; zero means wall clock.
	Now time.Time
}

func (l *Logwork) now() time.Time {
	if l.Now.IsZero() {
		return time.Now()
	}
	return l.Now
}

func (l *Logwork) Do(ctx context.Context) error {
	data, err := store.ReadFile(l.Paths.WorklogPath())
	if err != nil {
		return err
	}
	log, err := worklog.Unmarshal(data)
	if err != nil {
		return err
	}

	now := l.now()
	pp := printers.New()

	switch l.Action {
	case ActionShow:
		pp.Worklog(log, now)
		return nil
	case ActionReport:
		window, label, err := timeutil.ParseWindow(l.Window)
		if err != nil {
			return err
		}
		pp.Report(log.Since(now.Add(-window)), label, now)
		return nil
	case ActionActivity:
		if l.Year {
			pp.ActivityYear(log, now)
		} else {
			pp.Activity(log, now)
		}
		return nil
	}

	if err := l.mutate(log, now); err != nil {
		return err
	}
	if err := l.persist(log); err != nil {
		return err
	}
	pp.Worklog(log, now)
	return nil
}

func (l *Logwork) mutate(log *worklog.Log, now time.Time) error {
	switch l.Action {
	case ActionStart:
		if l.Name == "" {
			return fmt.Errorf("a task name is required")
		}
		if current := log.Current(); current != nil {
			return fmt.Errorf("task %q is still open; pause or complete it first", current.Name)
		}
		log.Start(l.Name, l.Type, now)
		return nil
	case ActionPause:
		return withCurrent(log, func(t *worklog.Task) error { return t.Pause(now) })
	case ActionResume:
		return withCurrent(log, func(t *worklog.Task) error { return t.Resume(now) })
	case ActionDone:
		return withCurrent(log, func(t *worklog.Task) error { return t.Complete(now) })
	case ActionNote:
		return withCurrent(log, func(t *worklog.Task) error {
			if l.Text == "" {
				return fmt.Errorf("note text is required")
			}
			t.Note(l.Text)
			return nil
		})
	default:
		return fmt.Errorf("unknown work-log action %q", l.Action)
	}
}

func withCurrent(log *worklog.Log, fn func(*worklog.Task) error) error {
	current := log.Current()
	if current == nil {
		return fmt.Errorf("no open task")
	}
	return fn(current)
}

func (l *Logwork) persist(log *worklog.Log) error {
	data, err := log.Marshal()
	if err != nil {
		return err
	}
	return store.WriteAtomic(l.Paths.WorklogPath(), data)
}

package ui

import (
	"context"
	"time"

	"tableflip.dev/labjo/pkg/form"
	"tableflip.dev/labjo/pkg/printers"
	"tableflip.dev/labjo/pkg/store"
	"tableflip.dev/labjo/pkg/tui"
	"tableflip.dev/labjo/pkg/worklog"
)

// UI opens the interactive manifest form.
type UI struct {
	Paths store.ProjectPaths
}

func (u *UI) Do(ctx context.Context) error {
	c := form.NewController(u.Paths)
	errs, err := c.Load(time.Now())
	if err != nil {
		return err
	}
	if len(errs) > 0 {
		// Invalid documents still open for correction.
		pp := printers.New()
		pp.Title("Loaded with problems")
		pp.ValidationErrors(errs)
	}

	logData, err := store.ReadFile(u.Paths.WorklogPath())
	if err != nil {
		return err
	}
	log, err := worklog.Unmarshal(logData)
	if err != nil {
		return err
	}

	// The UI-state cache is best effort; the form works without it.
	uiStore, err := store.NewUIStateStore("")
	if err != nil {
		uiStore = nil
	}

	return tui.Run(ctx, c, uiStore, log)
}

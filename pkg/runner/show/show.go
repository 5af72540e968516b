package show

import (
	"context"
	"fmt"
	"time"

	"tableflip.dev/labjo/pkg/form"
	"tableflip.dev/labjo/pkg/printers"
	"tableflip.dev/labjo/pkg/store"
	"tableflip.dev/labjo/pkg/worklog"
)

// Show renders manifest sections to the terminal.
type Show struct {
	Paths store.ProjectPaths
	// Section narrows the output; empty shows everything.
	Section string
}

func (s *Show) Do(ctx context.Context) error {
	c := form.NewController(s.Paths)
	errs, err := c.Load(time.Now())
	if err != nil {
		return err
	}

	pp := printers.New()
	if len(errs) > 0 {
		pp.Title("Validation problems")
		pp.ValidationErrors(errs)
	}

	m := c.Manifest
	switch s.Section {
	case "":
		pp.Project(m)
		pp.Datasets(m.Datasets)
		pp.Collaborators(m.People)
		pp.Milestones(m.Timeline)
		return s.worklog(pp)
	case "project":
		pp.Project(m)
	case "datasets":
		pp.Datasets(m.Datasets)
	case "people", "collaborators":
		pp.Collaborators(m.People)
	case "timeline", "milestones":
		pp.Milestones(m.Timeline)
	case "worklog", "log":
		return s.worklog(pp)
	default:
		return fmt.Errorf("unknown section %q", s.Section)
	}
	return nil
}

func (s *Show) worklog(pp *printers.PrettyPrint) error {
	data, err := store.ReadFile(s.Paths.WorklogPath())
	if err != nil {
		return err
	}
	log, err := worklog.Unmarshal(data)
	if err != nil {
		return err
	}
	pp.Worklog(log, time.Now())
	return nil
}

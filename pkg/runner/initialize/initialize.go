package initialize

import (
	"context"
	"fmt"
	"time"

	"tableflip.dev/labjo/pkg/form"
	"tableflip.dev/labjo/pkg/printers"
	"tableflip.dev/labjo/pkg/store"
)

// Initialize creates a fresh project manifest in a directory.
type Initialize struct {
	Paths   store.ProjectPaths
	Name    string
	Analyst string
	Status  string
}

func (i *Initialize) Do(ctx context.Context) error {
	c := form.NewController(i.Paths)
	if _, err := c.Load(time.Now()); err != nil {
		return err
	}
	if c.State.Project.Name != "" {
		return fmt.Errorf("project %q already initialized at %s", c.State.Project.Name, i.Paths.Root)
	}

	c.State.Project.Name = i.Name
	c.State.Project.Status = i.Status
	if c.State.Project.Status == "" {
		c.State.Project.Status = "planning"
	}
	c.State.People.Analyst = i.Analyst

	result, err := c.Save(time.Now())
	if err != nil {
		return err
	}
	if !result.OK() {
		return result.Errors
	}

	pp := printers.New()
	pp.Project(c.Manifest)
	return nil
}

package syncdata

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/fatih/color"

	"tableflip.dev/labjo/pkg/form"
	"tableflip.dev/labjo/pkg/store"
	"tableflip.dev/labjo/pkg/syncer"
)

// SyncData pulls a locally mounted dataset down from its primary
// location using the external sync executor. Sync failure is a notice,
// never a manifest problem.
type SyncData struct {
	Paths store.ProjectPaths
	// Dataset selects which dataset to sync; empty means the first one
	// marked local_mount.
	Dataset string
	Syncer  *syncer.Syncer
}

func (s *SyncData) Do(ctx context.Context) error {
	c := form.NewController(s.Paths)
	if _, err := c.Load(time.Now()); err != nil {
		return err
	}

	src, dst, err := s.pick(c)
	if err != nil {
		return err
	}

	sync := s.Syncer
	if sync == nil {
		sync = syncer.New("")
	}

	events, done, err := sync.Run(ctx, src, dst)
	if errors.Is(err, syncer.ErrInFlight) {
		fmt.Fprintln(color.Output, "a sync is already running; not starting another")
		return nil
	}
	if err != nil {
		return err
	}

	faint := color.New(color.Faint)
	for ev := range events {
		_, _ = faint.Fprintf(color.Output, "\r%3d%%", ev.Percent)
	}
	fmt.Fprintln(color.Output, "")

	result := <-done
	if result.Err != nil {
		return result.Err
	}
	_, _ = color.New(color.Bold).Fprintf(color.Output, "synced %s\n", dst)
	return nil
}

func (s *SyncData) pick(c *form.Controller) (string, string, error) {
	for _, ds := range c.Manifest.Datasets {
		if !ds.LocalMount {
			continue
		}
		if s.Dataset != "" && ds.Name != s.Dataset {
			continue
		}
		if ds.Path == "" || ds.LocalPath == "" {
			return "", "", fmt.Errorf("dataset %q needs both path and local_path to sync", ds.Name)
		}
		return ds.Path, ds.LocalPath, nil
	}
	if s.Dataset != "" {
		return "", "", fmt.Errorf("no locally mounted dataset named %q", s.Dataset)
	}
	return "", "", fmt.Errorf("no dataset is marked local_mount")
}

package form

import (
	"errors"
	"fmt"
	"os"
	"time"

	"tableflip.dev/labjo/pkg/manifest"
	"tableflip.dev/labjo/pkg/store"
)

// Controller drives the manifest edit lifecycle for one project: load
// the on-disk document into a State, and persist the State back with
// the backup-then-reject rule. The in-memory State always survives a
// rejected save so nothing the user typed is lost.
type Controller struct {
	Paths    store.ProjectPaths
	State    *State
	Manifest *manifest.Manifest
}

// SaveResult reports what a save did. When Errors is non-empty the
// live manifest was not touched and BackupPath names the timestamped
// copy of the previous content.
type SaveResult struct {
	Path       string
	BackupPath string
	Errors     manifest.ValidationErrors
	Warnings   []string
}

// OK reports whether the document was written.
func (r *SaveResult) OK() bool {
	return len(r.Errors) == 0
}

// NewController binds a controller to a project directory.
func NewController(paths store.ProjectPaths) *Controller {
	return &Controller{Paths: paths}
}

// Load reads the manifest into editable form. A missing file yields an
// empty State for a fresh project. A document that fails validation is
// still loaded best-effort so it can be corrected and re-saved; the
// violations come back alongside the state. Malformed YAML is fatal,
// but the unreadable bytes are preserved in a timestamped backup first.
func (c *Controller) Load(now time.Time) (manifest.ValidationErrors, error) {
	path := c.Paths.ManifestPath()
	data, err := store.ReadFile(path)
	if err != nil {
		return nil, err
	}

	raw, err := manifest.Load(data)
	if err != nil {
		var syntaxErr *manifest.SyntaxError
		if errors.As(err, &syntaxErr) {
			if backup, berr := store.BackupFile(path, now); berr == nil && backup != "" {
				return nil, fmt.Errorf("%w (original preserved at %s)", err, backup)
			}
		}
		return nil, err
	}

	// A missing or empty document is a fresh project, not a broken one.
	// Required-field enforcement waits until Save.
	if raw == nil {
		c.Manifest = &manifest.Manifest{}
		c.State = NewState(nil, nil)
		return nil, nil
	}

	m, errs := manifest.Decode(raw)
	c.Manifest = m
	c.State = NewState(m, raw)
	return errs, nil
}

// Save collects the form, validates it, and replaces the on-disk
// document atomically. An invalid collection is rejected: the previous
// content is backed up, the live file is left untouched, and the
// violations are returned in the result so the user can fix the form
// and try again.
func (c *Controller) Save(now time.Time) (*SaveResult, error) {
	if c.State == nil {
		return nil, fmt.Errorf("form: nothing loaded")
	}

	path := c.Paths.ManifestPath()
	result := &SaveResult{Path: path}

	merged, err := c.State.MergedDocument()
	if err != nil {
		return nil, err
	}

	m, errs := manifest.Validate(merged)
	if len(errs) > 0 {
		backup, berr := store.BackupFile(path, now)
		if berr != nil {
			return nil, berr
		}
		result.BackupPath = backup
		result.Errors = errs
		return result, nil
	}

	data, err := manifest.Dump(m)
	if err != nil {
		return nil, err
	}
	if err := store.WriteAtomic(path, data); err != nil {
		return nil, err
	}

	c.Manifest = m
	c.State.Raw = merged
	result.Warnings = c.linkLocalData(m)
	return result, nil
}

// linkLocalData maintains the project-root data symlink for the first
// dataset marked as locally mounted. Link trouble never fails a save;
// it surfaces as a warning.
func (c *Controller) linkLocalData(m *manifest.Manifest) []string {
	var target string
	for _, ds := range m.Datasets {
		if ds.LocalMount && ds.LocalPath != "" {
			target = ds.LocalPath
			break
		}
	}
	if target == "" {
		return nil
	}

	link := c.Paths.DataLinkPath()
	if existing, err := os.Readlink(link); err == nil {
		if existing == target {
			return nil
		}
		if err := os.Remove(link); err != nil {
			return []string{fmt.Sprintf("data link: replace %s: %v", link, err)}
		}
	} else if _, serr := os.Lstat(link); serr == nil {
		// A real file or directory sits where the link belongs. Leave it.
		return []string{fmt.Sprintf("data link: %s exists and is not a symlink", link)}
	}

	if err := os.Symlink(target, link); err != nil {
		return []string{fmt.Sprintf("data link: %v", err)}
	}
	return nil
}

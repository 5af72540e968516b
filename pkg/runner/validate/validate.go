package validate

import (
	"context"
	"fmt"

	"tableflip.dev/labjo/pkg/manifest"
	"tableflip.dev/labjo/pkg/printers"
	"tableflip.dev/labjo/pkg/store"
)

// Validate checks the on-disk manifest against the schema and reports
// every violation, not just the first.
type Validate struct {
	Paths store.ProjectPaths
}

func (v *Validate) Do(ctx context.Context) error {
	data, err := store.ReadFile(v.Paths.ManifestPath())
	if err != nil {
		return err
	}
	raw, err := manifest.Load(data)
	if err != nil {
		return err
	}

	_, errs := manifest.Validate(raw)
	pp := printers.New()
	if len(errs) > 0 {
		pp.Title(fmt.Sprintf("%d problem(s) in %s", len(errs), v.Paths.ManifestPath()))
		pp.ValidationErrors(errs)
		return errs
	}
	pp.Title("manifest is valid")
	pp.NewLine()
	return nil
}

// Package options defines shared flag helpers for CLI commands.
package options

import (
	"github.com/spf13/cobra"

	"tableflip.dev/labjo/pkg/store"
)

// ProjectOptions selects the project directory a command operates on.
type ProjectOptions struct {
	Dir string
}

// AddProjectArgs wires the project directory flag.
func AddProjectArgs(cmd *cobra.Command, o *ProjectOptions) {
	cmd.Flags().StringVarP(&o.Dir, "project", "p", "",
		"Project directory. Defaults to the configured project, then the current directory.")
}

// Paths resolves the effective project paths, consulting configuration
// when no flag was given.
func (o *ProjectOptions) Paths() (store.ProjectPaths, error) {
	if o.Dir != "" {
		return store.NewProjectPaths(o.Dir), nil
	}
	cfg, err := store.LoadConfig()
	if err != nil {
		return store.ProjectPaths{}, err
	}
	return store.NewProjectPaths(cfg.ProjectDir()), nil
}

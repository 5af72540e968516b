package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/labjo/pkg/commands/options"
	"tableflip.dev/labjo/pkg/runner/ui"
)

func addUI(topLevel *cobra.Command) {
	po := &options.ProjectOptions{}

	cmd := &cobra.Command{
		Use:   "ui",
		Short: "Open the interactive manifest form",
		Example: `
labjo ui
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			paths, err := po.Paths()
			if err != nil {
				return err
			}
			u := ui.UI{Paths: paths}
			return u.Do(cmd.Context())
		},
	}

	options.AddProjectArgs(cmd, po)
	topLevel.AddCommand(cmd)
}

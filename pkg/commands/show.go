package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/labjo/pkg/commands/options"
	"tableflip.dev/labjo/pkg/runner/show"
)

func addShow(topLevel *cobra.Command) {
	po := &options.ProjectOptions{}
	oo := &options.OutputOptions{}

	cmd := &cobra.Command{
		Use:       "show [section]",
		Short:     "Show the project manifest",
		ValidArgs: []string{"project", "datasets", "people", "timeline", "worklog"},
		Args:      cobra.MaximumNArgs(1),
		Example: `
labjo show
labjo show datasets
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			paths, err := po.Paths()
			if err != nil {
				return oo.Handle(err)
			}
			s := show.Show{Paths: paths}
			if len(args) == 1 {
				s.Section = args[0]
			}
			return oo.Handle(s.Do(cmd.Context()))
		},
	}

	options.AddProjectArgs(cmd, po)
	options.AddOutputArg(cmd, oo)
	topLevel.AddCommand(cmd)
}

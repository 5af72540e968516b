package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/labjo/pkg/commands/options"
	"tableflip.dev/labjo/pkg/runner/validate"
)

func addValidate(topLevel *cobra.Command) {
	po := &options.ProjectOptions{}
	oo := &options.OutputOptions{}

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate the project manifest",
		Example: `
labjo validate
labjo validate --json
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			paths, err := po.Paths()
			if err != nil {
				return oo.Handle(err)
			}
			v := validate.Validate{Paths: paths}
			return oo.Handle(v.Do(cmd.Context()))
		},
	}

	options.AddProjectArgs(cmd, po)
	options.AddOutputArg(cmd, oo)
	topLevel.AddCommand(cmd)
}

package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/labjo/pkg/commands/options"
	"tableflip.dev/labjo/pkg/runner/syncdata"
)

func addSync(topLevel *cobra.Command) {
	po := &options.ProjectOptions{}
	oo := &options.OutputOptions{}
	var dataset string

	cmd := &cobra.Command{
		Use:   "sync",
		Short: "Sync a locally mounted dataset from its primary location",
		Example: `
labjo sync
labjo sync --dataset retina-01
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			paths, err := po.Paths()
			if err != nil {
				return oo.Handle(err)
			}
			s := syncdata.SyncData{Paths: paths, Dataset: dataset}
			return oo.Handle(s.Do(cmd.Context()))
		},
	}

	cmd.Flags().StringVarP(&dataset, "dataset", "d", "", "Dataset to sync; defaults to the first local mount.")
	options.AddProjectArgs(cmd, po)
	options.AddOutputArg(cmd, oo)
	topLevel.AddCommand(cmd)
}

package commands

import (
	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"
)

func New() *cobra.Command {

	cmd := &cobra.Command{
		Use:   "labjo",
		Short: base.Wrap80("Project metadata and work logs for bioimage analysis."),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addInit(topLevel)
	addShow(topLevel)
	addValidate(topLevel)
	addLog(topLevel)
	addSync(topLevel)
	addUI(topLevel)
	addMCP(topLevel)
	addVersion(topLevel)
}

package commands

import (
	"errors"
	"strings"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"

	"tableflip.dev/labjo/pkg/commands/options"
	"tableflip.dev/labjo/pkg/runner/initialize"
)

func addInit(topLevel *cobra.Command) {
	po := &options.ProjectOptions{}
	oo := &options.OutputOptions{}
	var name, analyst, status string

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create a project manifest",
		Example: `
labjo init --name retina-map --analyst kim
labjo init
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			paths, err := po.Paths()
			if err != nil {
				return oo.Handle(err)
			}

			if name == "" {
				if name, err = prompt("Project name", true); err != nil {
					return oo.Handle(err)
				}
			}
			if analyst == "" {
				if analyst, err = prompt("Analyst", false); err != nil {
					return oo.Handle(err)
				}
			}

			i := initialize.Initialize{
				Paths:   paths,
				Name:    name,
				Analyst: analyst,
				Status:  status,
			}
			return oo.Handle(i.Do(cmd.Context()))
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Project name.")
	cmd.Flags().StringVar(&analyst, "analyst", "", "Primary analyst.")
	cmd.Flags().StringVar(&status, "status", "", "Initial project status.")
	options.AddProjectArgs(cmd, po)
	options.AddOutputArg(cmd, oo)

	topLevel.AddCommand(cmd)
}

func prompt(label string, required bool) (string, error) {
	p := promptui.Prompt{
		Label: label,
		Validate: func(input string) error {
			if required && strings.TrimSpace(input) == "" {
				return errors.New("required")
			}
			return nil
		},
	}
	result, err := p.Run()
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(result), nil
}

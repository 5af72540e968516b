package commands

import (
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/labjo/pkg/commands/options"
	"tableflip.dev/labjo/pkg/runner/logwork"
)

func addLog(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "log",
		Short: "Track work sessions",
		Example: `
labjo log start "segmentation pass" --type analysis
labjo log pause
labjo log done
labjo log report --window 2w
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	addLogStart(cmd)
	addLogAction(cmd, "pause", "Pause the current task", logwork.ActionPause)
	addLogAction(cmd, "resume", "Resume the paused task", logwork.ActionResume)
	addLogAction(cmd, "done", "Complete the current task", logwork.ActionDone)
	addLogNote(cmd)
	addLogAction(cmd, "show", "Show the work log", logwork.ActionShow)
	addLogReport(cmd)
	addLogActivity(cmd)

	topLevel.AddCommand(cmd)
}

func addLogStart(parent *cobra.Command) {
	po := &options.ProjectOptions{}
	oo := &options.OutputOptions{}
	var taskType string

	cmd := &cobra.Command{
		Use:   "start <name>",
		Short: "Start a new task",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			paths, err := po.Paths()
			if err != nil {
				return oo.Handle(err)
			}
			l := logwork.Logwork{
				Paths:  paths,
				Action: logwork.ActionStart,
				Name:   strings.Join(args, " "),
				Type:   taskType,
			}
			return oo.Handle(l.Do(cmd.Context()))
		},
	}

	cmd.Flags().StringVarP(&taskType, "type", "t", "", "Task type, e.g. analysis, meeting, writing.")
	options.AddProjectArgs(cmd, po)
	options.AddOutputArg(cmd, oo)
	parent.AddCommand(cmd)
}

func addLogAction(parent *cobra.Command, use, short string, action logwork.Action) {
	po := &options.ProjectOptions{}
	oo := &options.OutputOptions{}

	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		RunE: func(cmd *cobra.Command, args []string) error {
			paths, err := po.Paths()
			if err != nil {
				return oo.Handle(err)
			}
			l := logwork.Logwork{Paths: paths, Action: action}
			return oo.Handle(l.Do(cmd.Context()))
		},
	}

	options.AddProjectArgs(cmd, po)
	options.AddOutputArg(cmd, oo)
	parent.AddCommand(cmd)
}

func addLogNote(parent *cobra.Command) {
	po := &options.ProjectOptions{}
	oo := &options.OutputOptions{}

	cmd := &cobra.Command{
		Use:   "note <text>",
		Short: "Attach a note to the current task",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			paths, err := po.Paths()
			if err != nil {
				return oo.Handle(err)
			}
			l := logwork.Logwork{
				Paths:  paths,
				Action: logwork.ActionNote,
				Text:   strings.Join(args, " "),
			}
			return oo.Handle(l.Do(cmd.Context()))
		},
	}

	options.AddProjectArgs(cmd, po)
	options.AddOutputArg(cmd, oo)
	parent.AddCommand(cmd)
}

func addLogReport(parent *cobra.Command) {
	po := &options.ProjectOptions{}
	oo := &options.OutputOptions{}
	var window string

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Sum worked time over a window",
		RunE: func(cmd *cobra.Command, args []string) error {
			paths, err := po.Paths()
			if err != nil {
				return oo.Handle(err)
			}
			l := logwork.Logwork{
				Paths:  paths,
				Action: logwork.ActionReport,
				Window: window,
			}
			return oo.Handle(l.Do(cmd.Context()))
		},
	}

	cmd.Flags().StringVarP(&window, "window", "w", "", "Report window, e.g. 1w or 3d. Defaults to one week.")
	options.AddProjectArgs(cmd, po)
	options.AddOutputArg(cmd, oo)
	parent.AddCommand(cmd)
}

func addLogActivity(parent *cobra.Command) {
	po := &options.ProjectOptions{}
	oo := &options.OutputOptions{}
	var year bool

	cmd := &cobra.Command{
		Use:   "activity",
		Short: "Show a calendar of days with logged work",
		RunE: func(cmd *cobra.Command, args []string) error {
			paths, err := po.Paths()
			if err != nil {
				return oo.Handle(err)
			}
			l := logwork.Logwork{
				Paths:  paths,
				Action: logwork.ActionActivity,
				Year:   year,
			}
			return oo.Handle(l.Do(cmd.Context()))
		},
	}

	cmd.Flags().BoolVar(&year, "year", false, "Show the trailing twelve months instead of one.")
	options.AddProjectArgs(cmd, po)
	options.AddOutputArg(cmd, oo)
	parent.AddCommand(cmd)
}

package options

import (
	"encoding/json"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// OutputOptions
type OutputOptions struct {
	JSON bool
}

func AddOutputArg(cmd *cobra.Command, o *OutputOptions) {
	cmd.Flags().BoolVar(&o.JSON, "json", false,
		"Output a status object as JSON.")
}

// Handle converts a runner result into the CLI contract: with --json a
// {status: ok|error|cancelled} object goes to stdout and the process
// still exits non-zero on failure via the returned error.
func (o *OutputOptions) Handle(err error) error {
	if !o.JSON {
		return err
	}

	out := map[string]string{"status": "ok"}
	switch {
	case err == nil:
	case isCancelled(err):
		out["status"] = "cancelled"
	default:
		out["status"] = "error"
		out["error"] = err.Error()
	}

	b, merr := json.Marshal(out)
	if merr != nil {
		return merr
	}
	_, _ = fmt.Fprintln(color.Output, string(b))
	return err
}

package printers

import (
	"fmt"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"
	"github.com/mattn/go-isatty"

	"tableflip.dev/labjo/pkg/glyph"
	"tableflip.dev/labjo/pkg/manifest"
	"tableflip.dev/labjo/pkg/rows"
	"tableflip.dev/labjo/pkg/timeutil"
	"tableflip.dev/labjo/pkg/worklog"
)

// PrettyPrint renders manifest sections and work-log summaries as
// terminal tables. Color is dropped automatically when stdout is not a
// terminal.
type PrettyPrint struct{}

// New builds a printer, disabling color for non-terminal output.
func New() *PrettyPrint {
	if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		color.NoColor = true
	}
	return &PrettyPrint{}
}

func (pp *PrettyPrint) NewLine() {
	fmt.Fprintln(color.Output, "")
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)
	_, _ = t.Fprintln(color.Output, title)
}

func (pp *PrettyPrint) none() {
	f := color.New(color.Faint, color.Italic)
	_, _ = f.Fprint(color.Output, " none\n\n")
}

func table() *uitable.Table {
	tbl := uitable.New()
	tbl.Separator = "  "
	return tbl
}

func (pp *PrettyPrint) flush(tbl *uitable.Table) {
	_, _ = fmt.Fprintln(color.Output, tbl)
	pp.NewLine()
}

// Project renders the header block: name, status glyph, tags, analyst.
func (pp *PrettyPrint) Project(m *manifest.Manifest) {
	if m == nil || m.Project == nil {
		return
	}
	b := color.New(color.Bold)
	f := color.New(color.Faint)
	g := glyph.ForStatus(m.Project.Status)
	_, _ = b.Fprintf(color.Output, "%s %s", g.Symbol, m.Project.Name)
	if m.Project.Status != "" {
		_, _ = f.Fprintf(color.Output, "  (%s)", m.Project.Status)
	}
	pp.NewLine()
	if len(m.Project.Tags) > 0 {
		_, _ = f.Fprintf(color.Output, "  %s\n", rows.JoinList(m.Project.Tags))
	}
	if m.People != nil && m.People.Analyst != "" {
		_, _ = f.Fprintf(color.Output, "  analyst: %s\n", m.People.Analyst)
	}
	pp.NewLine()
}

// Datasets renders the dataset table.
func (pp *PrettyPrint) Datasets(datasets []manifest.Dataset) {
	pp.Title("Datasets")
	if len(datasets) == 0 {
		pp.none()
		return
	}
	bold := color.New(color.Bold)
	tbl := table()
	tbl.AddRow(bold.Sprint("Name"), bold.Sprint("Modality"), bold.Sprint("Size"), bold.Sprint("Files"), bold.Sprint("Acquired"), bold.Sprint("Local"))
	for _, ds := range datasets {
		local := ""
		if ds.LocalMount {
			local = "mounted"
		}
		tbl.AddRow(ds.Name, ds.Modality, gb(ds.RawSizeGB), count(ds.FileCount), rows.FormatDate(ds.Acquired), local)
	}
	pp.flush(tbl)
}

// Milestones renders the timeline with status glyphs.
func (pp *PrettyPrint) Milestones(milestones []manifest.Milestone) {
	pp.Title("Timeline")
	if len(milestones) == 0 {
		pp.none()
		return
	}
	bold := color.New(color.Bold)
	tbl := table()
	tbl.AddRow("", bold.Sprint("Milestone"), bold.Sprint("Due"), bold.Sprint("Status"))
	for _, ms := range milestones {
		tbl.AddRow(glyph.ForStatus(ms.Status).Symbol, ms.Name, rows.FormatDate(ms.Due), ms.Status)
	}
	pp.flush(tbl)
}

// Collaborators renders the people table.
func (pp *PrettyPrint) Collaborators(people *manifest.People) {
	pp.Title("Collaborators")
	if people == nil || len(people.Collaborators) == 0 {
		pp.none()
		return
	}
	bold := color.New(color.Bold)
	tbl := table()
	tbl.AddRow(bold.Sprint("Name"), bold.Sprint("Role"), bold.Sprint("Email"), bold.Sprint("Affiliation"))
	for _, c := range people.Collaborators {
		tbl.AddRow(c.Name, c.Role, c.Email, c.Affiliation)
	}
	pp.flush(tbl)
}

// ValidationErrors renders field-qualified violations, one per line.
func (pp *PrettyPrint) ValidationErrors(errs manifest.ValidationErrors) {
	r := color.New(color.FgHiRed)
	f := color.New(color.Faint)
	for _, e := range errs {
		_, _ = r.Fprintf(color.Output, "  ✘ %s", e.Path)
		_, _ = f.Fprintf(color.Output, "  %s\n", e.Message)
	}
	pp.NewLine()
}

// Worklog renders the task table with durations and problem flags.
func (pp *PrettyPrint) Worklog(log *worklog.Log, now time.Time) {
	pp.Title("Work log")
	if log == nil || len(log.Tasks) == 0 {
		pp.none()
		return
	}
	bold := color.New(color.Bold)
	warn := color.New(color.FgHiYellow)
	tbl := table()
	tbl.AddRow("", bold.Sprint("Task"), bold.Sprint("Status"), bold.Sprint("Checked in"), bold.Sprint("Worked"), "")
	for _, task := range log.Tasks {
		flag := ""
		if problems := task.Problems(now); len(problems) > 0 {
			flag = warn.Sprint(glyph.Problem.Symbol)
		}
		tbl.AddRow(
			glyph.ForStatus(string(task.Status)).Symbol,
			task.Name,
			string(task.Status),
			task.CheckIn.Time.Local().Format("Jan _2 15:04"),
			timeutil.Humanize(task.Duration(now)),
			flag,
		)
	}
	pp.flush(tbl)
}

// Report renders per-task totals and the window sum.
func (pp *PrettyPrint) Report(tasks []*worklog.Task, window string, now time.Time) {
	pp.Title(fmt.Sprintf("Work in the last %s", window))
	if len(tasks) == 0 {
		pp.none()
		return
	}
	tbl := table()
	var total time.Duration
	for _, task := range tasks {
		d := task.Duration(now)
		total += d
		tbl.AddRow(task.Name, timeutil.Humanize(d))
	}
	bold := color.New(color.Bold)
	tbl.AddRow(bold.Sprint("total"), bold.Sprint(timeutil.Humanize(total)))
	pp.flush(tbl)
}

func gb(v *float64) string {
	if v == nil {
		return ""
	}
	return fmt.Sprintf("%gGB", *v)
}

func count(v *int) string {
	if v == nil {
		return ""
	}
	return fmt.Sprintf("%d", *v)
}

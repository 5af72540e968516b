// Package form owns the single authoritative manifest-under-edit: one
// explicit State struct holding every row collection, and the
// Controller that executes the load/save lifecycle against disk.
package form

import (
	"tableflip.dev/labjo/pkg/manifest"
	"tableflip.dev/labjo/pkg/rows"
)

// ProjectForm holds the scalar project fields as edited strings. Tags
// are one comma-separated input.
type ProjectForm struct {
	Name   string
	Status string
	Tags   string
}

// PeopleForm holds the analyst field; collaborators live in their own
// row list.
type PeopleForm struct {
	Analyst string
}

// ToolsForm holds the environment section; the three list fields are
// comma-separated inputs.
type ToolsForm struct {
	EnvKind         string
	EnvFile         string
	Languages       string
	Software        string
	ClusterPackages string
	GitRemote       string
}

// BillingForm holds funding fields, numbers and dates as strings.
type BillingForm struct {
	FundCode    string
	HourlyRate  string
	BudgetHours string
	SpentHours  string
	Start       string
	End         string
	Notes       string
}

// PublicationForm holds the scalar publication fields; the figure tree
// is held separately on State.
type PublicationForm struct {
	Status         string
	Journal        string
	ManuscriptPath string
	DOIs           string
	RepoURL        string
	Notes          string
}

// ArchiveForm holds the archival tracking fields.
type ArchiveForm struct {
	Status         string
	Date           string
	Location       string
	RetentionYears string
	BackupVerified bool
	Notes          string
}

// MethodForm points at the methods write-up.
type MethodForm struct {
	Path         string
	TemplateUsed bool
}

// State is the in-memory form: scalar sections as string-first records,
// repeatable sections as cursor-carrying row lists, and the previous
// on-disk raw document kept for merging so sections this tool does not
// model survive a save untouched.
type State struct {
	Raw map[string]interface{}

	Project     ProjectForm
	People      PeopleForm
	Tools       ToolsForm
	Billing     BillingForm
	Publication PublicationForm
	Archive     ArchiveForm
	Method      MethodForm

	Datasets      rows.List[rows.DatasetRow]
	Collaborators rows.List[rows.CollaboratorRow]
	Sessions      rows.List[rows.SessionRow]
	Milestones    rows.List[rows.MilestoneRow]
	Artifacts     rows.List[rows.ArtifactRow]
	Hardware      rows.List[rows.HardwareRow]
	Figures       []*rows.FigureRow
}

// NewState expands a decoded manifest (possibly nil for a fresh
// project) into editable form, remembering raw for the merge on save.
func NewState(m *manifest.Manifest, raw map[string]interface{}) *State {
	s := &State{Raw: raw}
	if m == nil {
		return s
	}
	if m.Project != nil {
		s.Project = ProjectForm{
			Name:   m.Project.Name,
			Status: m.Project.Status,
			Tags:   rows.JoinList(m.Project.Tags),
		}
	}
	if m.People != nil {
		s.People = PeopleForm{Analyst: m.People.Analyst}
		s.Collaborators = rows.NewList(rows.ExpandCollaborators(m.People.Collaborators))
	}
	s.Datasets = rows.NewList(rows.ExpandDatasets(m.Datasets))
	s.Sessions = rows.NewList(rows.ExpandSessions(m.Acquisition))
	s.Milestones = rows.NewList(rows.ExpandMilestones(m.Timeline))
	s.Artifacts = rows.NewList(rows.ExpandArtifacts(m.Artifacts))
	s.Hardware = rows.NewList(rows.ExpandHardware(m.HardwareProfiles))
	if m.Tools != nil {
		s.Tools = ToolsForm{
			EnvKind:         m.Tools.EnvKind,
			EnvFile:         m.Tools.EnvFile,
			Languages:       rows.JoinList(m.Tools.Languages),
			Software:        rows.JoinList(m.Tools.Software),
			ClusterPackages: rows.JoinList(m.Tools.ClusterPackages),
			GitRemote:       m.Tools.GitRemote,
		}
	}
	if m.Billing != nil {
		s.Billing = BillingForm{
			FundCode:    m.Billing.FundCode,
			HourlyRate:  rows.FormatFloat(m.Billing.HourlyRate),
			BudgetHours: rows.FormatFloat(m.Billing.BudgetHours),
			SpentHours:  rows.FormatFloat(m.Billing.SpentHours),
			Start:       rows.FormatDate(m.Billing.Start),
			End:         rows.FormatDate(m.Billing.End),
			Notes:       m.Billing.Notes,
		}
	}
	if m.Publication != nil {
		s.Publication = PublicationForm{
			Status:         m.Publication.Status,
			Journal:        m.Publication.Journal,
			ManuscriptPath: m.Publication.ManuscriptPath,
			DOIs:           rows.JoinList(m.Publication.DOIs),
			RepoURL:        m.Publication.RepoURL,
			Notes:          m.Publication.Notes,
		}
		s.Figures = rows.ExpandFigures(m.Publication.Figures)
	}
	if m.Archive != nil {
		s.Archive = ArchiveForm{
			Status:         m.Archive.Status,
			Date:           rows.FormatDate(m.Archive.Date),
			Location:       m.Archive.Location,
			RetentionYears: rows.FormatInt(m.Archive.RetentionYears),
			BackupVerified: m.Archive.BackupVerified,
			Notes:          m.Archive.Notes,
		}
	}
	if m.Method != nil {
		s.Method = MethodForm{Path: m.Method.Path, TemplateUsed: m.Method.TemplateUsed}
	}
	return s
}

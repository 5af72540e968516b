package form

import (
	"strings"

	"tableflip.dev/labjo/pkg/manifest"
	"tableflip.dev/labjo/pkg/rows"
)

// Collect transforms the whole form into a typed manifest fragment.
// Scalar sections are included only when something in them is set;
// repeatable sections go through their row transforms. The result still
// has to pass validation before it can be persisted.
func (s *State) Collect() *manifest.Manifest {
	m := &manifest.Manifest{
		Project: &manifest.Project{
			Name:   strings.TrimSpace(s.Project.Name),
			Status: strings.TrimSpace(s.Project.Status),
			Tags:   rows.SplitList(s.Project.Tags),
		},
		People: &manifest.People{
			Analyst:       strings.TrimSpace(s.People.Analyst),
			Collaborators: rows.CollectCollaborators(s.Collaborators.Items()),
		},
		Datasets:         rows.CollectDatasets(s.Datasets.Items()),
		Acquisition:      rows.CollectSessions(s.Sessions.Items()),
		Timeline:         rows.CollectMilestones(s.Milestones.Items()),
		Artifacts:        rows.CollectArtifacts(s.Artifacts.Items()),
		HardwareProfiles: rows.CollectHardware(s.Hardware.Items()),
	}

	tools := manifest.Tools{
		EnvKind:         strings.TrimSpace(s.Tools.EnvKind),
		EnvFile:         strings.TrimSpace(s.Tools.EnvFile),
		Languages:       rows.SplitList(s.Tools.Languages),
		Software:        rows.SplitList(s.Tools.Software),
		ClusterPackages: rows.SplitList(s.Tools.ClusterPackages),
		GitRemote:       strings.TrimSpace(s.Tools.GitRemote),
	}
	if tools.EnvKind != "" || tools.EnvFile != "" || tools.GitRemote != "" ||
		tools.Languages != nil || tools.Software != nil || tools.ClusterPackages != nil {
		m.Tools = &tools
	}

	billing := manifest.Billing{
		FundCode:    strings.TrimSpace(s.Billing.FundCode),
		HourlyRate:  rows.SoftFloat(s.Billing.HourlyRate),
		BudgetHours: rows.SoftFloat(s.Billing.BudgetHours),
		SpentHours:  rows.SoftFloat(s.Billing.SpentHours),
		Start:       rows.SoftDate(s.Billing.Start),
		End:         rows.SoftDate(s.Billing.End),
		Notes:       strings.TrimSpace(s.Billing.Notes),
	}
	if billing != (manifest.Billing{}) {
		m.Billing = &billing
	}

	pub := manifest.Publication{
		Status:         strings.TrimSpace(s.Publication.Status),
		Journal:        strings.TrimSpace(s.Publication.Journal),
		ManuscriptPath: strings.TrimSpace(s.Publication.ManuscriptPath),
		DOIs:           rows.SplitList(s.Publication.DOIs),
		RepoURL:        strings.TrimSpace(s.Publication.RepoURL),
		Figures:        rows.CollectFigures(s.Figures),
		Notes:          strings.TrimSpace(s.Publication.Notes),
	}
	if pub.Status != "" || pub.Journal != "" || pub.ManuscriptPath != "" ||
		pub.DOIs != nil || pub.RepoURL != "" || pub.Figures != nil || pub.Notes != "" {
		m.Publication = &pub
	}

	archive := manifest.Archive{
		Status:         strings.TrimSpace(s.Archive.Status),
		Date:           rows.SoftDate(s.Archive.Date),
		Location:       strings.TrimSpace(s.Archive.Location),
		RetentionYears: rows.SoftInt(s.Archive.RetentionYears),
		BackupVerified: s.Archive.BackupVerified,
		Notes:          strings.TrimSpace(s.Archive.Notes),
	}
	if archive != (manifest.Archive{}) {
		m.Archive = &archive
	}

	method := manifest.Method{
		Path:         strings.TrimSpace(s.Method.Path),
		TemplateUsed: s.Method.TemplateUsed,
	}
	if method != (manifest.Method{}) {
		m.Method = &method
	}

	return m
}

// MergedDocument overlays the collected sections onto the previous
// on-disk raw document, so top-level sections the form does not model
// are preserved across a save.
func (s *State) MergedDocument() (map[string]interface{}, error) {
	collected := s.Collect()
	fresh, err := manifest.Raw(collected)
	if err != nil {
		return nil, err
	}

	merged := make(map[string]interface{}, len(s.Raw)+len(fresh))
	for key, value := range s.Raw {
		if manifest.KnownSection(key) {
			continue
		}
		merged[key] = value
	}
	for key, value := range fresh {
		merged[key] = value
	}
	return merged, nil
}

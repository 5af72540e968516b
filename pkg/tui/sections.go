package tui

import (
	"tableflip.dev/labjo/pkg/form"
	"tableflip.dev/labjo/pkg/rows"
)

// field is one editable input in the row editor overlay.
type field struct {
	Label string
	Value string
}

// section adapts one repeatable manifest section to the generic table
// and editor surfaces. Rows stay strings end to end; coercion happens
// in the collect transforms at save time.
type section interface {
	Title() string
	Columns() []string
	Rows(s *form.State) [][]string
	Len(s *form.State) int
	SelectedIndex(s *form.State) int
	Select(s *form.State, i int)
	Delete(s *form.State, i int) bool
	// Fields returns editor inputs for row i, or a blank set when i is
	// out of range (a new row).
	Fields(s *form.State, i int) []field
	// Apply writes editor values back: to row i, or as a new row when i
	// is out of range.
	Apply(s *form.State, i int, values []string)
}

type datasetSection struct{}

func (datasetSection) Title() string     { return "Datasets" }
func (datasetSection) Columns() []string { return []string{"Name", "Modality", "Path", "Size GB", "Acquired"} }

func (datasetSection) Rows(s *form.State) [][]string {
	out := make([][]string, 0, s.Datasets.Len())
	for _, r := range s.Datasets.Items() {
		out = append(out, []string{r.Name, r.Modality, r.Path, r.RawSizeGB, r.Acquired})
	}
	return out
}

func (datasetSection) Len(s *form.State) int           { return s.Datasets.Len() }
func (datasetSection) SelectedIndex(s *form.State) int { return s.Datasets.SelectedIndex() }
func (datasetSection) Select(s *form.State, i int)     { s.Datasets.Select(i) }
func (datasetSection) Delete(s *form.State, i int) bool {
	return s.Datasets.Delete(i)
}

func (datasetSection) Fields(s *form.State, i int) []field {
	var r rows.DatasetRow
	if i >= 0 && i < s.Datasets.Len() {
		r = s.Datasets.Items()[i]
	}
	return []field{
		{"Name", r.Name},
		{"Modality", r.Modality},
		{"Path", r.Path},
		{"Raw size (GB)", r.RawSizeGB},
		{"File count", r.FileCount},
		{"Acquired", r.Acquired},
		{"Local path", r.LocalPath},
		{"Notes", r.Notes},
	}
}

func (datasetSection) Apply(s *form.State, i int, values []string) {
	var r rows.DatasetRow
	if i >= 0 && i < s.Datasets.Len() {
		r = s.Datasets.Items()[i]
	}
	r.Name, r.Modality, r.Path = values[0], values[1], values[2]
	r.RawSizeGB, r.FileCount, r.Acquired = values[3], values[4], values[5]
	r.LocalPath, r.Notes = values[6], values[7]
	r.LocalMount = r.LocalPath != ""
	if i >= 0 && i < s.Datasets.Len() {
		s.Datasets.Edit(i, r)
	} else {
		s.Datasets.Add(r)
	}
}

type collaboratorSection struct{}

func (collaboratorSection) Title() string     { return "People" }
func (collaboratorSection) Columns() []string { return []string{"Name", "Role", "Email", "Affiliation"} }

func (collaboratorSection) Rows(s *form.State) [][]string {
	out := make([][]string, 0, s.Collaborators.Len())
	for _, r := range s.Collaborators.Items() {
		out = append(out, []string{r.Name, r.Role, r.Email, r.Affiliation})
	}
	return out
}

func (collaboratorSection) Len(s *form.State) int           { return s.Collaborators.Len() }
func (collaboratorSection) SelectedIndex(s *form.State) int { return s.Collaborators.SelectedIndex() }
func (collaboratorSection) Select(s *form.State, i int)     { s.Collaborators.Select(i) }
func (collaboratorSection) Delete(s *form.State, i int) bool {
	return s.Collaborators.Delete(i)
}

func (collaboratorSection) Fields(s *form.State, i int) []field {
	var r rows.CollaboratorRow
	if i >= 0 && i < s.Collaborators.Len() {
		r = s.Collaborators.Items()[i]
	}
	return []field{
		{"Name", r.Name},
		{"Role", r.Role},
		{"Email", r.Email},
		{"Affiliation", r.Affiliation},
	}
}

func (collaboratorSection) Apply(s *form.State, i int, values []string) {
	var r rows.CollaboratorRow
	if i >= 0 && i < s.Collaborators.Len() {
		r = s.Collaborators.Items()[i]
	}
	r.Name, r.Role, r.Email, r.Affiliation = values[0], values[1], values[2], values[3]
	if i >= 0 && i < s.Collaborators.Len() {
		s.Collaborators.Edit(i, r)
	} else {
		s.Collaborators.Add(r)
	}
}

type milestoneSection struct{}

func (milestoneSection) Title() string     { return "Timeline" }
func (milestoneSection) Columns() []string { return []string{"Milestone", "Due", "Status", "Notes"} }

func (milestoneSection) Rows(s *form.State) [][]string {
	out := make([][]string, 0, s.Milestones.Len())
	for _, r := range s.Milestones.Items() {
		out = append(out, []string{r.Name, r.Due, r.Status, r.Notes})
	}
	return out
}

func (milestoneSection) Len(s *form.State) int           { return s.Milestones.Len() }
func (milestoneSection) SelectedIndex(s *form.State) int { return s.Milestones.SelectedIndex() }
func (milestoneSection) Select(s *form.State, i int)     { s.Milestones.Select(i) }
func (milestoneSection) Delete(s *form.State, i int) bool {
	return s.Milestones.Delete(i)
}

func (milestoneSection) Fields(s *form.State, i int) []field {
	var r rows.MilestoneRow
	if i >= 0 && i < s.Milestones.Len() {
		r = s.Milestones.Items()[i]
	}
	return []field{
		{"Name", r.Name},
		{"Due", r.Due},
		{"Status", r.Status},
		{"Notes", r.Notes},
	}
}

func (milestoneSection) Apply(s *form.State, i int, values []string) {
	var r rows.MilestoneRow
	if i >= 0 && i < s.Milestones.Len() {
		r = s.Milestones.Items()[i]
	}
	r.Name, r.Due, r.Status, r.Notes = values[0], values[1], values[2], values[3]
	if i >= 0 && i < s.Milestones.Len() {
		s.Milestones.Edit(i, r)
	} else {
		s.Milestones.Add(r)
	}
}

type sessionSection struct{}

func (sessionSection) Title() string { return "Acquisition" }
func (sessionSection) Columns() []string {
	return []string{"Session", "Modality", "Voxel x/y/z", "Date"}
}

func (sessionSection) Rows(s *form.State) [][]string {
	out := make([][]string, 0, s.Sessions.Len())
	for _, r := range s.Sessions.Items() {
		voxel := r.VoxelX + "/" + r.VoxelY + "/" + r.VoxelZ
		out = append(out, []string{r.Name, r.Modality, voxel, r.Date})
	}
	return out
}

func (sessionSection) Len(s *form.State) int           { return s.Sessions.Len() }
func (sessionSection) SelectedIndex(s *form.State) int { return s.Sessions.SelectedIndex() }
func (sessionSection) Select(s *form.State, i int)     { s.Sessions.Select(i) }
func (sessionSection) Delete(s *form.State, i int) bool {
	return s.Sessions.Delete(i)
}

func (sessionSection) Fields(s *form.State, i int) []field {
	var r rows.SessionRow
	if i >= 0 && i < s.Sessions.Len() {
		r = s.Sessions.Items()[i]
	}
	return []field{
		{"Name", r.Name},
		{"Modality", r.Modality},
		{"Date", r.Date},
		{"Voxel x (µm)", r.VoxelX},
		{"Voxel y (µm)", r.VoxelY},
		{"Voxel z (µm)", r.VoxelZ},
		{"Objective", r.Objective},
		{"Notes", r.Notes},
	}
}

func (sessionSection) Apply(s *form.State, i int, values []string) {
	var r rows.SessionRow
	if i >= 0 && i < s.Sessions.Len() {
		r = s.Sessions.Items()[i]
	}
	r.Name, r.Modality, r.Date = values[0], values[1], values[2]
	r.VoxelX, r.VoxelY, r.VoxelZ = values[3], values[4], values[5]
	r.Objective, r.Notes = values[6], values[7]
	if i >= 0 && i < s.Sessions.Len() {
		s.Sessions.Edit(i, r)
	} else {
		s.Sessions.Add(r)
	}
}

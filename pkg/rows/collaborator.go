package rows

import "tableflip.dev/labjo/pkg/manifest"

// CollaboratorRow is the editable form of one collaborator.
type CollaboratorRow struct {
	Name        string
	Affiliation string
	Email       string
	Role        string
}

// ExpandCollaborators produces one editable row per collaborator.
func ExpandCollaborators(people []manifest.Collaborator) []CollaboratorRow {
	out := make([]CollaboratorRow, 0, len(people))
	for _, c := range people {
		out = append(out, CollaboratorRow{
			Name:        c.Name,
			Affiliation: c.Affiliation,
			Email:       c.Email,
			Role:        c.Role,
		})
	}
	return out
}

// CollectCollaborators drops rows with an empty Name and trims the rest.
func CollectCollaborators(items []CollaboratorRow) []manifest.Collaborator {
	out := make([]manifest.Collaborator, 0, len(items))
	for _, row := range items {
		name := trimmed(row.Name)
		if name == "" {
			continue
		}
		out = append(out, manifest.Collaborator{
			Name:        name,
			Affiliation: trimmed(row.Affiliation),
			Email:       trimmed(row.Email),
			Role:        trimmed(row.Role),
		})
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

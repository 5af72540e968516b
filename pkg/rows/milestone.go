package rows

import "tableflip.dev/labjo/pkg/manifest"

// MilestoneRow is the editable form of one timeline entry.
type MilestoneRow struct {
	Name   string
	Due    string
	Status string
	Notes  string
}

// ExpandMilestones produces one editable row per milestone.
func ExpandMilestones(milestones []manifest.Milestone) []MilestoneRow {
	out := make([]MilestoneRow, 0, len(milestones))
	for _, m := range milestones {
		out = append(out, MilestoneRow{
			Name:   m.Name,
			Due:    FormatDate(m.Due),
			Status: m.Status,
			Notes:  m.Notes,
		})
	}
	return out
}

// CollectMilestones drops rows with an empty Name; an unparseable due
// date is omitted rather than rejected.
func CollectMilestones(items []MilestoneRow) []manifest.Milestone {
	out := make([]manifest.Milestone, 0, len(items))
	for _, row := range items {
		name := trimmed(row.Name)
		if name == "" {
			continue
		}
		out = append(out, manifest.Milestone{
			Name:   name,
			Due:    SoftDate(row.Due),
			Status: trimmed(row.Status),
			Notes:  trimmed(row.Notes),
		})
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

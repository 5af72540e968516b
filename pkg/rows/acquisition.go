package rows

import "tableflip.dev/labjo/pkg/manifest"

// SessionRow is the editable form of one acquisition session. The voxel
// composite is edited as three independent string inputs; Channels are
// carried as a nested row list keyed to the parent row, never flattened.
type SessionRow struct {
	Name       string
	Date       string
	Microscope string
	Objective  string
	Modality   string
	VoxelX     string
	VoxelY     string
	VoxelZ     string
	Channels   []ChannelRow
	Notes      string
}

// ChannelRow is the editable form of one channel within a session.
type ChannelRow struct {
	Name         string
	Fluorophore  string
	ExcitationNm string
	EmissionNm   string
	Notes        string
}

// ExpandSessions produces one editable row per session, with nested
// channel rows.
func ExpandSessions(sessions []manifest.AcquisitionSession) []SessionRow {
	out := make([]SessionRow, 0, len(sessions))
	for _, s := range sessions {
		row := SessionRow{
			Name:       s.Name,
			Date:       FormatDate(s.Date),
			Microscope: s.Microscope,
			Objective:  s.Objective,
			Modality:   s.Modality,
			Notes:      s.Notes,
		}
		if s.VoxelSize != nil {
			row.VoxelX = FormatFloat(s.VoxelSize.XUm)
			row.VoxelY = FormatFloat(s.VoxelSize.YUm)
			row.VoxelZ = FormatFloat(s.VoxelSize.ZUm)
		}
		row.Channels = expandChannels(s.Channels)
		out = append(out, row)
	}
	return out
}

func expandChannels(channels []manifest.Channel) []ChannelRow {
	if len(channels) == 0 {
		return nil
	}
	out := make([]ChannelRow, 0, len(channels))
	for _, c := range channels {
		out = append(out, ChannelRow{
			Name:         c.Name,
			Fluorophore:  c.Fluorophore,
			ExcitationNm: FormatFloat(c.ExcitationNm),
			EmissionNm:   FormatFloat(c.EmissionNm),
			Notes:        c.Notes,
		})
	}
	return out
}

// CollectSessions drops rows with an empty Name. The voxel composite is
// included when at least one component is present; absent components of
// an included composite become explicit nulls. Channel rows with an
// empty Name are dropped the same way parent rows are.
func CollectSessions(items []SessionRow) []manifest.AcquisitionSession {
	out := make([]manifest.AcquisitionSession, 0, len(items))
	for _, row := range items {
		name := trimmed(row.Name)
		if name == "" {
			continue
		}
		session := manifest.AcquisitionSession{
			Name:       name,
			Date:       SoftDate(row.Date),
			Microscope: trimmed(row.Microscope),
			Objective:  trimmed(row.Objective),
			Modality:   trimmed(row.Modality),
			Notes:      trimmed(row.Notes),
		}
		if trimmed(row.VoxelX) != "" || trimmed(row.VoxelY) != "" || trimmed(row.VoxelZ) != "" {
			session.VoxelSize = &manifest.VoxelSize{
				XUm: SoftFloat(row.VoxelX),
				YUm: SoftFloat(row.VoxelY),
				ZUm: SoftFloat(row.VoxelZ),
			}
		}
		session.Channels = collectChannels(row.Channels)
		out = append(out, session)
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

func collectChannels(items []ChannelRow) []manifest.Channel {
	out := make([]manifest.Channel, 0, len(items))
	for _, row := range items {
		name := trimmed(row.Name)
		if name == "" {
			continue
		}
		out = append(out, manifest.Channel{
			Name:         name,
			Fluorophore:  trimmed(row.Fluorophore),
			ExcitationNm: SoftFloat(row.ExcitationNm),
			EmissionNm:   SoftFloat(row.EmissionNm),
			Notes:        trimmed(row.Notes),
		})
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

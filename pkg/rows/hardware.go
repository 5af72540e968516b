package rows

import "tableflip.dev/labjo/pkg/manifest"

// HardwareRow is the editable form of one hardware profile.
type HardwareRow struct {
	Name      string
	Hostname  string
	CPUs      string
	RAMGB     string
	GPU       string
	Scheduler string
	Notes     string
}

// ExpandHardware produces one editable row per hardware profile.
func ExpandHardware(profiles []manifest.HardwareProfile) []HardwareRow {
	out := make([]HardwareRow, 0, len(profiles))
	for _, p := range profiles {
		out = append(out, HardwareRow{
			Name:      p.Name,
			Hostname:  p.Hostname,
			CPUs:      FormatInt(p.CPUs),
			RAMGB:     FormatFloat(p.RAMGB),
			GPU:       p.GPU,
			Scheduler: p.Scheduler,
			Notes:     p.Notes,
		})
	}
	return out
}

// CollectHardware drops rows with an empty Name and soft-parses the
// numeric fields.
func CollectHardware(items []HardwareRow) []manifest.HardwareProfile {
	out := make([]manifest.HardwareProfile, 0, len(items))
	for _, row := range items {
		name := trimmed(row.Name)
		if name == "" {
			continue
		}
		out = append(out, manifest.HardwareProfile{
			Name:      name,
			Hostname:  trimmed(row.Hostname),
			CPUs:      SoftInt(row.CPUs),
			RAMGB:     SoftFloat(row.RAMGB),
			GPU:       trimmed(row.GPU),
			Scheduler: trimmed(row.Scheduler),
			Notes:     trimmed(row.Notes),
		})
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

package rows

import "tableflip.dev/labjo/pkg/manifest"

// DatasetRow is the editable form of one dataset. Every field the UI
// touches is a string; LocalMount is the one boolean, which has no
// empty state and is always carried through.
type DatasetRow struct {
	Name       string
	Modality   string
	Path       string
	RawSizeGB  string
	FileCount  string
	Acquired   string
	LocalMount bool
	LocalPath  string
	Notes      string
}

// ExpandDatasets produces one editable row per dataset.
func ExpandDatasets(datasets []manifest.Dataset) []DatasetRow {
	out := make([]DatasetRow, 0, len(datasets))
	for _, ds := range datasets {
		out = append(out, DatasetRow{
			Name:       ds.Name,
			Modality:   ds.Modality,
			Path:       ds.Path,
			RawSizeGB:  FormatFloat(ds.RawSizeGB),
			FileCount:  FormatInt(ds.FileCount),
			Acquired:   FormatDate(ds.Acquired),
			LocalMount: ds.LocalMount,
			LocalPath:  ds.LocalPath,
			Notes:      ds.Notes,
		})
	}
	return out
}

// CollectDatasets is the inverse transform. Rows whose Name trims to
// empty are dropped entirely; numeric and date fields that fail to
// parse are omitted, never an error.
func CollectDatasets(items []DatasetRow) []manifest.Dataset {
	out := make([]manifest.Dataset, 0, len(items))
	for _, row := range items {
		name := trimmed(row.Name)
		if name == "" {
			continue
		}
		out = append(out, manifest.Dataset{
			Name:       name,
			Modality:   trimmed(row.Modality),
			Path:       trimmed(row.Path),
			RawSizeGB:  SoftFloat(row.RawSizeGB),
			FileCount:  SoftInt(row.FileCount),
			Acquired:   SoftDate(row.Acquired),
			LocalMount: row.LocalMount,
			LocalPath:  trimmed(row.LocalPath),
			Notes:      trimmed(row.Notes),
		})
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

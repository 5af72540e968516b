package rows

import "tableflip.dev/labjo/pkg/manifest"

// ArtifactRow is the editable form of one artifact. Path is the key
// field for this section.
type ArtifactRow struct {
	Path        string
	Kind        string
	Description string
	Created     string
}

// ExpandArtifacts produces one editable row per artifact.
func ExpandArtifacts(artifacts []manifest.Artifact) []ArtifactRow {
	out := make([]ArtifactRow, 0, len(artifacts))
	for _, a := range artifacts {
		out = append(out, ArtifactRow{
			Path:        a.Path,
			Kind:        a.Kind,
			Description: a.Description,
			Created:     FormatDate(a.Created),
		})
	}
	return out
}

// CollectArtifacts drops rows with an empty Path.
func CollectArtifacts(items []ArtifactRow) []manifest.Artifact {
	out := make([]manifest.Artifact, 0, len(items))
	for _, row := range items {
		path := trimmed(row.Path)
		if path == "" {
			continue
		}
		out = append(out, manifest.Artifact{
			Path:        path,
			Kind:        trimmed(row.Kind),
			Description: trimmed(row.Description),
			Created:     SoftDate(row.Created),
		})
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

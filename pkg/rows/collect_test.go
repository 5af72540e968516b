package rows

import (
	"reflect"
	"testing"

	"tableflip.dev/labjo/pkg/manifest"
)

func TestCollectDropsEmptyKeyRows(t *testing.T) {
	got := CollectDatasets([]DatasetRow{
		{Name: "   ", Modality: "confocal"},
		{Name: "retina-01"},
	})
	if len(got) != 1 {
		t.Fatalf("expected exactly one dataset, got %d", len(got))
	}
	if got[0].Name != "retina-01" {
		t.Fatalf("wrong survivor: %q", got[0].Name)
	}
}

func TestCollectCoercionLenience(t *testing.T) {
	got := CollectDatasets([]DatasetRow{
		{Name: "retina-01", RawSizeGB: "not-a-number", FileCount: "12x", Acquired: "someday"},
	})
	if len(got) != 1 {
		t.Fatalf("row must survive coercion failures")
	}
	ds := got[0]
	if ds.RawSizeGB != nil || ds.FileCount != nil || ds.Acquired != nil {
		t.Fatalf("unparseable fields must be omitted: %#v", ds)
	}
}

func TestCollectTrimsAndOmits(t *testing.T) {
	got := CollectCollaborators([]CollaboratorRow{
		{Name: "  Ada  ", Email: "  ada@example.edu ", Affiliation: "   "},
	})
	if len(got) != 1 {
		t.Fatalf("expected one collaborator")
	}
	c := got[0]
	if c.Name != "Ada" || c.Email != "ada@example.edu" {
		t.Fatalf("fields not trimmed: %#v", c)
	}
	if c.Affiliation != "" {
		t.Fatalf("blank optional should collapse to empty: %q", c.Affiliation)
	}
}

func TestCollectVoxelCompositePartial(t *testing.T) {
	got := CollectSessions([]SessionRow{
		{Name: "session-1", VoxelY: "2.5"},
	})
	if len(got) != 1 {
		t.Fatalf("expected one session")
	}
	v := got[0].VoxelSize
	if v == nil {
		t.Fatalf("composite should be included when one component is present")
	}
	if v.YUm == nil || *v.YUm != 2.5 {
		t.Fatalf("y_um wrong: %v", v.YUm)
	}
	if v.XUm != nil || v.ZUm != nil {
		t.Fatalf("absent components must be explicit nils: %#v", v)
	}
}

func TestCollectVoxelCompositeAbsent(t *testing.T) {
	got := CollectSessions([]SessionRow{{Name: "session-1"}})
	if got[0].VoxelSize != nil {
		t.Fatalf("composite must be omitted when all components are blank")
	}
}

func TestCollectSessionChannelsNested(t *testing.T) {
	got := CollectSessions([]SessionRow{
		{
			Name: "session-1",
			Channels: []ChannelRow{
				{Name: "DAPI", ExcitationNm: "405", EmissionNm: "461"},
				{Name: "  ", Fluorophore: "orphaned"},
			},
		},
	})
	channels := got[0].Channels
	if len(channels) != 1 {
		t.Fatalf("empty-name channel must be dropped, got %d", len(channels))
	}
	if *channels[0].ExcitationNm != 405 || *channels[0].EmissionNm != 461 {
		t.Fatalf("wavelengths not coerced: %#v", channels[0])
	}
}

func TestCollectEmptyListsAreNil(t *testing.T) {
	if CollectMilestones(nil) != nil {
		t.Fatalf("nil in, nil out")
	}
	if CollectArtifacts([]ArtifactRow{{Path: "  "}}) != nil {
		t.Fatalf("all-dropped list should collect to nil")
	}
}

func TestExpandCollectRoundTrip(t *testing.T) {
	acquired, _ := manifest.ParseDate("2026-02-14")
	size := 128.5
	in := []manifest.Dataset{
		{
			Name:       "retina-01",
			Modality:   "confocal",
			Path:       "/data/retina-01",
			RawSizeGB:  &size,
			Acquired:   &acquired,
			LocalMount: true,
			LocalPath:  "/scratch/retina-01",
		},
	}
	back := CollectDatasets(ExpandDatasets(in))
	if !reflect.DeepEqual(in, back) {
		t.Fatalf("expand/collect not a round trip:\n%#v\nvs\n%#v", in, back)
	}
}

func TestExpandCollectSessionsRoundTrip(t *testing.T) {
	ex := 488.0
	in := []manifest.AcquisitionSession{
		{
			Name:      "session-1",
			Modality:  "lightsheet",
			VoxelSize: &manifest.VoxelSize{XUm: &ex, YUm: nil, ZUm: nil},
			Channels:  []manifest.Channel{{Name: "GFP", ExcitationNm: &ex}},
		},
	}
	back := CollectSessions(ExpandSessions(in))
	if !reflect.DeepEqual(in, back) {
		t.Fatalf("expand/collect not a round trip:\n%#v\nvs\n%#v", in, back)
	}
}

func TestCollectHardwareNumbers(t *testing.T) {
	got := CollectHardware([]HardwareRow{
		{Name: "workstation", CPUs: "32", RAMGB: "256", GPU: "A6000"},
		{Name: "cluster", CPUs: "lots"},
	})
	if len(got) != 2 {
		t.Fatalf("expected two profiles")
	}
	if *got[0].CPUs != 32 || *got[0].RAMGB != 256 {
		t.Fatalf("numbers not coerced: %#v", got[0])
	}
	if got[1].CPUs != nil {
		t.Fatalf("unparseable cpu count must be omitted")
	}
}

package manifest

import (
	"errors"
	"reflect"
	"strings"
	"testing"
)

func f64(v float64) *float64 { return &v }

func sample() *Manifest {
	acquired, _ := ParseDate("2026-02-14")
	due, _ := ParseDate("2026-06-30")
	return &Manifest{
		Project: &Project{Name: "retina-atlas", Status: "active", Tags: []string{"confocal", "mouse"}},
		People: &People{
			Analyst: "Sam",
			Collaborators: []Collaborator{
				{Name: "Ada", Email: "ada@example.edu", Role: "PI"},
			},
		},
		Datasets: []Dataset{
			{Name: "retina-01", Modality: "confocal", RawSizeGB: f64(128.5), Acquired: &acquired},
		},
		Acquisition: []AcquisitionSession{
			{
				Name:      "session-1",
				VoxelSize: &VoxelSize{YUm: f64(2.5)},
				Channels:  []Channel{{Name: "DAPI", ExcitationNm: f64(405)}},
			},
		},
		Timeline: []Milestone{{Name: "first draft", Due: &due, Status: "pending"}},
	}
}

func TestLoadEmpty(t *testing.T) {
	for _, input := range []string{"", "   \n\t\n", "{}\n", "---\n"} {
		raw, err := Load([]byte(input))
		if err != nil {
			t.Fatalf("Load(%q) error: %v", input, err)
		}
		if raw != nil {
			t.Fatalf("Load(%q) expected nil, got %#v", input, raw)
		}
	}
}

func TestLoadSyntaxError(t *testing.T) {
	_, err := Load([]byte("project: [unclosed"))
	if err == nil {
		t.Fatalf("expected syntax error")
	}
	var syntaxErr *SyntaxError
	if !errors.As(err, &syntaxErr) {
		t.Fatalf("expected *SyntaxError, got %T: %v", err, err)
	}
}

func TestDumpOmitsUnset(t *testing.T) {
	data, err := Dump(&Manifest{
		Project: &Project{Name: "p"},
		People:  &People{Analyst: "a"},
	})
	if err != nil {
		t.Fatalf("Dump: %v", err)
	}
	text := string(data)
	for _, forbidden := range []string{"null", "datasets", "billing", "status", "tags"} {
		if strings.Contains(text, forbidden) {
			t.Fatalf("dump should omit unset fields, found %q in:\n%s", forbidden, text)
		}
	}
}

func TestDumpFieldOrder(t *testing.T) {
	data, err := Dump(sample())
	if err != nil {
		t.Fatalf("Dump: %v", err)
	}
	text := string(data)
	order := []string{"project:", "people:", "datasets:", "acquisition:", "timeline:"}
	last := -1
	for _, key := range order {
		idx := strings.Index(text, key)
		if idx < 0 {
			t.Fatalf("missing %q in:\n%s", key, text)
		}
		if idx < last {
			t.Fatalf("%q out of order in:\n%s", key, text)
		}
		last = idx
	}
}

func TestDumpVoxelExplicitNulls(t *testing.T) {
	data, err := Dump(sample())
	if err != nil {
		t.Fatalf("Dump: %v", err)
	}
	text := string(data)
	if !strings.Contains(text, "x_um: null") {
		t.Fatalf("absent voxel component should be an explicit null:\n%s", text)
	}
	if !strings.Contains(text, "y_um: 2.5") {
		t.Fatalf("present voxel component missing:\n%s", text)
	}
}

func TestRoundTrip(t *testing.T) {
	m := sample()
	data, err := Dump(m)
	if err != nil {
		t.Fatalf("Dump: %v", err)
	}
	raw, err := Load(data)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	back, errs := Validate(raw)
	if errs != nil {
		t.Fatalf("re-validate: %v", errs)
	}
	data2, err := Dump(back)
	if err != nil {
		t.Fatalf("second Dump: %v", err)
	}
	if string(data) != string(data2) {
		t.Fatalf("round trip not byte stable:\n--- first ---\n%s\n--- second ---\n%s", data, data2)
	}
	if !reflect.DeepEqual(m, back) {
		t.Fatalf("round trip changed the manifest:\n%#v\nvs\n%#v", m, back)
	}
}

func TestRoundTripPreservesExtra(t *testing.T) {
	input := "project:\n  name: p\npeople:\n  analyst: a\ncustom_block:\n  anything: goes\n"
	raw, err := Load([]byte(input))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	m, errs := Validate(raw)
	if errs != nil {
		t.Fatalf("Validate: %v", errs)
	}
	data, err := Dump(m)
	if err != nil {
		t.Fatalf("Dump: %v", err)
	}
	if !strings.Contains(string(data), "custom_block:") {
		t.Fatalf("unknown section dropped:\n%s", data)
	}
}

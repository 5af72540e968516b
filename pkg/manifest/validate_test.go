package manifest

import (
	"strings"
	"testing"
)

func validDoc() map[string]interface{} {
	return map[string]interface{}{
		"project": map[string]interface{}{
			"name":   "retina-atlas",
			"status": "active",
		},
		"people": map[string]interface{}{
			"analyst": "Sam",
		},
	}
}

func TestValidateMinimal(t *testing.T) {
	m, errs := Validate(validDoc())
	if errs != nil {
		t.Fatalf("unexpected validation errors: %v", errs)
	}
	if m.Project.Name != "retina-atlas" {
		t.Fatalf("unexpected project name: %q", m.Project.Name)
	}
	if m.People.Analyst != "Sam" {
		t.Fatalf("unexpected analyst: %q", m.People.Analyst)
	}
}

func TestValidateMissingRequired(t *testing.T) {
	_, errs := Validate(map[string]interface{}{})
	if len(errs) != 2 {
		t.Fatalf("expected 2 errors, got %d: %v", len(errs), errs)
	}
	if errs[0].Path != "project.name" {
		t.Fatalf("unexpected first error path: %s", errs[0].Path)
	}
	if errs[1].Path != "people.analyst" {
		t.Fatalf("unexpected second error path: %s", errs[1].Path)
	}
}

func TestValidateBlankNameRejected(t *testing.T) {
	doc := validDoc()
	doc["project"].(map[string]interface{})["name"] = "   "
	m, errs := Validate(doc)
	if m != nil {
		t.Fatalf("expected nil manifest on error")
	}
	if len(errs) != 1 || errs[0].Path != "project.name" {
		t.Fatalf("unexpected errors: %v", errs)
	}
}

func TestValidateCollectsAllErrors(t *testing.T) {
	doc := validDoc()
	doc["datasets"] = []interface{}{
		map[string]interface{}{"modality": "confocal"},
		map[string]interface{}{"name": "d2", "raw_size_gb": "big"},
	}
	doc["timeline"] = []interface{}{
		map[string]interface{}{"notes": "no name here"},
	}
	_, errs := Validate(doc)
	if len(errs) != 3 {
		t.Fatalf("expected 3 errors, got %d: %v", len(errs), errs)
	}
	paths := []string{errs[0].Path, errs[1].Path, errs[2].Path}
	want := []string{"datasets.0.name", "datasets.1.raw_size_gb", "timeline.0.name"}
	for i := range want {
		if paths[i] != want[i] {
			t.Fatalf("error %d: expected path %s, got %s", i, want[i], paths[i])
		}
	}
}

func TestValidateNestedFieldPath(t *testing.T) {
	doc := validDoc()
	doc["people"].(map[string]interface{})["collaborators"] = []interface{}{
		map[string]interface{}{"name": "Ada", "email": 7},
	}
	_, errs := Validate(doc)
	if len(errs) != 1 {
		t.Fatalf("expected 1 error, got %v", errs)
	}
	if errs[0].Path != "people.collaborators.0.email" {
		t.Fatalf("unexpected path: %s", errs[0].Path)
	}
}

func TestValidateOpenEnums(t *testing.T) {
	doc := validDoc()
	doc["project"].(map[string]interface{})["status"] = "hibernating"
	doc["archive"] = map[string]interface{}{"status": "glacier-deep-freeze"}
	m, errs := Validate(doc)
	if errs != nil {
		t.Fatalf("open enum values must validate: %v", errs)
	}
	if m.Project.Status != "hibernating" {
		t.Fatalf("status not stored verbatim: %q", m.Project.Status)
	}
	if m.Archive.Status != "glacier-deep-freeze" {
		t.Fatalf("archive status not stored verbatim: %q", m.Archive.Status)
	}
}

func TestValidateLenientDates(t *testing.T) {
	doc := validDoc()
	doc["billing"] = map[string]interface{}{
		"start": "2026-03-01T14:22:09Z",
		"end":   "soonish",
	}
	m, errs := Validate(doc)
	if errs != nil {
		t.Fatalf("unexpected errors: %v", errs)
	}
	if m.Billing.Start == nil || m.Billing.Start.String() != "2026-03-01" {
		t.Fatalf("timestamp should collapse to calendar date, got %v", m.Billing.Start)
	}
	if m.Billing.End != nil {
		t.Fatalf("unparseable date should be absent, got %v", m.Billing.End)
	}
}

func TestValidatePreservesUnknownSections(t *testing.T) {
	doc := validDoc()
	doc["grants_office"] = map[string]interface{}{"contact": "gro@example.edu"}
	m, errs := Validate(doc)
	if errs != nil {
		t.Fatalf("unexpected errors: %v", errs)
	}
	section, ok := m.Extra["grants_office"].(map[string]interface{})
	if !ok {
		t.Fatalf("unknown section not preserved: %#v", m.Extra)
	}
	if section["contact"] != "gro@example.edu" {
		t.Fatalf("unknown section content mangled: %#v", section)
	}
}

func TestValidateWrongShapeDoesNotPanic(t *testing.T) {
	doc := map[string]interface{}{
		"project":           "just a string",
		"people":            []interface{}{"nope"},
		"datasets":          map[string]interface{}{"oops": true},
		"hardware_profiles": []interface{}{"flat"},
	}
	m, errs := Validate(doc)
	if m != nil {
		t.Fatalf("expected nil manifest")
	}
	if len(errs) == 0 {
		t.Fatalf("expected errors for malformed shapes")
	}
	for _, e := range errs {
		if strings.TrimSpace(e.Path) == "" {
			t.Fatalf("error without a path: %v", e)
		}
	}
}

func TestValidateVoxelComposite(t *testing.T) {
	doc := validDoc()
	doc["acquisition"] = []interface{}{
		map[string]interface{}{
			"name": "session-1",
			"voxel_size": map[string]interface{}{
				"y_um": 2.5,
			},
			"channels": []interface{}{
				map[string]interface{}{"name": "DAPI", "excitation_nm": 405},
			},
		},
	}
	m, errs := Validate(doc)
	if errs != nil {
		t.Fatalf("unexpected errors: %v", errs)
	}
	session := m.Acquisition[0]
	if session.VoxelSize == nil {
		t.Fatalf("voxel composite missing")
	}
	if session.VoxelSize.YUm == nil || *session.VoxelSize.YUm != 2.5 {
		t.Fatalf("y_um wrong: %v", session.VoxelSize.YUm)
	}
	if session.VoxelSize.XUm != nil || session.VoxelSize.ZUm != nil {
		t.Fatalf("absent components must stay nil")
	}
	if len(session.Channels) != 1 || *session.Channels[0].ExcitationNm != 405 {
		t.Fatalf("channel not decoded: %#v", session.Channels)
	}
}

package manifest

import (
	"fmt"
	"strconv"
	"strings"
)

// ValidationError is one field-level schema violation.
type ValidationError struct {
	Path    string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Path, e.Message)
}

// ValidationErrors is the ordered list of violations found in one pass.
// All errors are collected and reported together, never just the first.
type ValidationErrors []ValidationError

func (ve ValidationErrors) Error() string {
	msgs := make([]string, 0, len(ve))
	for _, e := range ve {
		msgs = append(msgs, e.Error())
	}
	return strings.Join(msgs, "; ")
}

// Validate checks a raw document against the schema and produces the
// typed manifest. Enum-like fields are open: any string value is stored
// verbatim. Unknown top-level sections are preserved in Extra; unknown
// keys inside known sections are accepted and ignored. Returns a nil
// manifest whenever errors are reported.
func Validate(raw map[string]interface{}) (*Manifest, ValidationErrors) {
	m, errs := Decode(raw)
	if len(errs) > 0 {
		return nil, errs
	}
	return m, nil
}

// Decode is the best-effort form of Validate: it always returns the
// manifest built from everything that did decode, alongside the ordered
// violations. Callers that let a user correct an invalid document edit
// the partial result.
func Decode(raw map[string]interface{}) (*Manifest, ValidationErrors) {
	d := &decoder{}
	m := &Manifest{}

	if absent(raw, "project") {
		d.add("project.name", "required")
	} else if project, ok := d.section(raw, "project"); ok {
		m.Project = d.project(project, "project")
	}

	if absent(raw, "people") {
		d.add("people.analyst", "required")
	} else if people, ok := d.section(raw, "people"); ok {
		m.People = d.people(people, "people")
	}

	for i, item := range d.list(raw, "datasets") {
		if entry, ok := d.item(item, path("datasets", i)); ok {
			m.Datasets = append(m.Datasets, d.dataset(entry, path("datasets", i)))
		}
	}
	for i, item := range d.list(raw, "acquisition") {
		if entry, ok := d.item(item, path("acquisition", i)); ok {
			m.Acquisition = append(m.Acquisition, d.session(entry, path("acquisition", i)))
		}
	}

	if tools, ok := d.section(raw, "tools"); ok {
		m.Tools = d.tools(tools, "tools")
	}
	if billing, ok := d.section(raw, "billing"); ok {
		m.Billing = d.billing(billing, "billing")
	}
	if pub, ok := d.section(raw, "publication"); ok {
		m.Publication = d.publication(pub, "publication")
	}
	if archive, ok := d.section(raw, "archive"); ok {
		m.Archive = d.archive(archive, "archive")
	}

	for i, item := range d.list(raw, "timeline") {
		if entry, ok := d.item(item, path("timeline", i)); ok {
			m.Timeline = append(m.Timeline, d.milestone(entry, path("timeline", i)))
		}
	}
	for i, item := range d.list(raw, "artifacts") {
		if entry, ok := d.item(item, path("artifacts", i)); ok {
			m.Artifacts = append(m.Artifacts, d.artifact(entry, path("artifacts", i)))
		}
	}
	for i, item := range d.list(raw, "hardware_profiles") {
		if entry, ok := d.item(item, path("hardware_profiles", i)); ok {
			m.HardwareProfiles = append(m.HardwareProfiles, d.hardware(entry, path("hardware_profiles", i)))
		}
	}

	if method, ok := d.section(raw, "method"); ok {
		m.Method = d.method(method, "method")
	}

	for key, value := range raw {
		if knownSections[key] {
			continue
		}
		if m.Extra == nil {
			m.Extra = make(map[string]interface{})
		}
		m.Extra[key] = value
	}

	return m, d.errs
}

// KnownSection reports whether a top-level document key is one of the
// modeled sections. Everything else is carried through verbatim.
func KnownSection(key string) bool {
	return knownSections[key]
}

var knownSections = map[string]bool{
	"project":           true,
	"people":            true,
	"datasets":          true,
	"acquisition":       true,
	"tools":             true,
	"billing":           true,
	"publication":       true,
	"archive":           true,
	"timeline":          true,
	"artifacts":         true,
	"hardware_profiles": true,
	"method":            true,
}

func absent(raw map[string]interface{}, key string) bool {
	value, ok := raw[key]
	return !ok || value == nil
}

type decoder struct {
	errs ValidationErrors
}

func (d *decoder) add(p, msg string) {
	d.errs = append(d.errs, ValidationError{Path: p, Message: msg})
}

func path(parts ...interface{}) string {
	segs := make([]string, 0, len(parts))
	for _, part := range parts {
		switch v := part.(type) {
		case string:
			if v != "" {
				segs = append(segs, v)
			}
		case int:
			segs = append(segs, strconv.Itoa(v))
		}
	}
	return strings.Join(segs, ".")
}

// section fetches a top-level mapping; a present non-mapping value is a
// wrong-type violation, an absent one simply reports not-ok.
func (d *decoder) section(raw map[string]interface{}, key string) (map[string]interface{}, bool) {
	value, ok := raw[key]
	if !ok || value == nil {
		return nil, false
	}
	entry, ok := value.(map[string]interface{})
	if !ok {
		d.add(key, "expected a mapping")
		return nil, false
	}
	return entry, true
}

func (d *decoder) item(value interface{}, p string) (map[string]interface{}, bool) {
	entry, ok := value.(map[string]interface{})
	if !ok {
		d.add(p, "expected a mapping")
		return nil, false
	}
	return entry, true
}

func (d *decoder) list(raw map[string]interface{}, key string) []interface{} {
	value, ok := raw[key]
	if !ok || value == nil {
		return nil
	}
	items, ok := value.([]interface{})
	if !ok {
		d.add(key, "expected a list")
		return nil
	}
	return items
}

func (d *decoder) str(m map[string]interface{}, p, key string) string {
	value, ok := m[key]
	if !ok || value == nil {
		return ""
	}
	s, ok := value.(string)
	if !ok {
		d.add(path(p, key), "expected a string")
		return ""
	}
	return s
}

func (d *decoder) required(m map[string]interface{}, p, key string) string {
	value, present := m[key]
	if !present || value == nil {
		d.add(path(p, key), "required")
		return ""
	}
	s, ok := value.(string)
	if !ok {
		d.add(path(p, key), "expected a string")
		return ""
	}
	s = strings.TrimSpace(s)
	if s == "" {
		d.add(path(p, key), "required")
	}
	return s
}

func (d *decoder) float(m map[string]interface{}, p, key string) *float64 {
	value, ok := m[key]
	if !ok || value == nil {
		return nil
	}
	switch v := value.(type) {
	case float64:
		return &v
	case int:
		f := float64(v)
		return &f
	case int64:
		f := float64(v)
		return &f
	case string:
		if f, err := strconv.ParseFloat(strings.TrimSpace(v), 64); err == nil {
			return &f
		}
		d.add(path(p, key), "expected a number")
	default:
		d.add(path(p, key), "expected a number")
	}
	return nil
}

func (d *decoder) integer(m map[string]interface{}, p, key string) *int {
	value, ok := m[key]
	if !ok || value == nil {
		return nil
	}
	switch v := value.(type) {
	case int:
		return &v
	case int64:
		n := int(v)
		return &n
	case float64:
		n := int(v)
		return &n
	case string:
		if n, err := strconv.Atoi(strings.TrimSpace(v)); err == nil {
			return &n
		}
		d.add(path(p, key), "expected an integer")
	default:
		d.add(path(p, key), "expected an integer")
	}
	return nil
}

func (d *decoder) boolean(m map[string]interface{}, p, key string) bool {
	value, ok := m[key]
	if !ok || value == nil {
		return false
	}
	b, ok := value.(bool)
	if !ok {
		d.add(path(p, key), "expected a boolean")
		return false
	}
	return b
}

// date reads a calendar date. Anything that fails lenient parsing is
// treated as absent, never reported: hand-edited near-miss dates should
// not block a whole document.
func (d *decoder) date(m map[string]interface{}, p, key string) *Date {
	value, ok := m[key]
	if !ok || value == nil {
		return nil
	}
	s, ok := value.(string)
	if !ok {
		d.add(path(p, key), "expected a date string")
		return nil
	}
	parsed, ok := ParseDate(s)
	if !ok {
		return nil
	}
	return &parsed
}

func (d *decoder) strings(m map[string]interface{}, p, key string) []string {
	value, ok := m[key]
	if !ok || value == nil {
		return nil
	}
	items, ok := value.([]interface{})
	if !ok {
		d.add(path(p, key), "expected a list of strings")
		return nil
	}
	out := make([]string, 0, len(items))
	for i, item := range items {
		s, ok := item.(string)
		if !ok {
			d.add(path(p, key, i), "expected a string")
			continue
		}
		out = append(out, s)
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

func (d *decoder) project(m map[string]interface{}, p string) *Project {
	return &Project{
		Name:   d.required(m, p, "name"),
		Status: d.str(m, p, "status"),
		Tags:   d.strings(m, p, "tags"),
	}
}

func (d *decoder) people(m map[string]interface{}, p string) *People {
	out := &People{Analyst: d.required(m, p, "analyst")}
	for i, item := range d.list(m, "collaborators") {
		entry, ok := d.item(item, path(p, "collaborators", i))
		if !ok {
			continue
		}
		cp := path(p, "collaborators", i)
		out.Collaborators = append(out.Collaborators, Collaborator{
			Name:        d.required(entry, cp, "name"),
			Affiliation: d.str(entry, cp, "affiliation"),
			Email:       d.str(entry, cp, "email"),
			Role:        d.str(entry, cp, "role"),
		})
	}
	return out
}

func (d *decoder) dataset(m map[string]interface{}, p string) Dataset {
	return Dataset{
		Name:       d.required(m, p, "name"),
		Modality:   d.str(m, p, "modality"),
		Path:       d.str(m, p, "path"),
		RawSizeGB:  d.float(m, p, "raw_size_gb"),
		FileCount:  d.integer(m, p, "file_count"),
		Acquired:   d.date(m, p, "acquired"),
		LocalMount: d.boolean(m, p, "local_mount"),
		LocalPath:  d.str(m, p, "local_path"),
		Notes:      d.str(m, p, "notes"),
	}
}

func (d *decoder) session(m map[string]interface{}, p string) AcquisitionSession {
	out := AcquisitionSession{
		Name:       d.required(m, p, "name"),
		Date:       d.date(m, p, "date"),
		Microscope: d.str(m, p, "microscope"),
		Objective:  d.str(m, p, "objective"),
		Modality:   d.str(m, p, "modality"),
		Notes:      d.str(m, p, "notes"),
	}
	if voxel, ok := d.section(m, "voxel_size"); ok {
		vp := path(p, "voxel_size")
		out.VoxelSize = &VoxelSize{
			XUm: d.float(voxel, vp, "x_um"),
			YUm: d.float(voxel, vp, "y_um"),
			ZUm: d.float(voxel, vp, "z_um"),
		}
	}
	for i, item := range d.list(m, "channels") {
		entry, ok := d.item(item, path(p, "channels", i))
		if !ok {
			continue
		}
		cp := path(p, "channels", i)
		out.Channels = append(out.Channels, Channel{
			Name:         d.required(entry, cp, "name"),
			Fluorophore:  d.str(entry, cp, "fluorophore"),
			ExcitationNm: d.float(entry, cp, "excitation_nm"),
			EmissionNm:   d.float(entry, cp, "emission_nm"),
			Notes:        d.str(entry, cp, "notes"),
		})
	}
	return out
}

func (d *decoder) tools(m map[string]interface{}, p string) *Tools {
	return &Tools{
		EnvKind:         d.str(m, p, "env_kind"),
		EnvFile:         d.str(m, p, "env_file"),
		Languages:       d.strings(m, p, "languages"),
		Software:        d.strings(m, p, "software"),
		ClusterPackages: d.strings(m, p, "cluster_packages"),
		GitRemote:       d.str(m, p, "git_remote"),
	}
}

func (d *decoder) billing(m map[string]interface{}, p string) *Billing {
	return &Billing{
		FundCode:    d.str(m, p, "fund_code"),
		HourlyRate:  d.float(m, p, "hourly_rate"),
		BudgetHours: d.float(m, p, "budget_hours"),
		SpentHours:  d.float(m, p, "spent_hours"),
		Start:       d.date(m, p, "start"),
		End:         d.date(m, p, "end"),
		Notes:       d.str(m, p, "notes"),
	}
}

func (d *decoder) publication(m map[string]interface{}, p string) *Publication {
	out := &Publication{
		Status:         d.str(m, p, "status"),
		Journal:        d.str(m, p, "journal"),
		ManuscriptPath: d.str(m, p, "manuscript_path"),
		DOIs:           d.strings(m, p, "dois"),
		RepoURL:        d.str(m, p, "repo_url"),
		Notes:          d.str(m, p, "notes"),
	}
	for i, item := range d.list(m, "figures") {
		entry, ok := d.item(item, path(p, "figures", i))
		if !ok {
			continue
		}
		out.Figures = append(out.Figures, d.figure(entry, path(p, "figures", i)))
	}
	return out
}

func (d *decoder) figure(m map[string]interface{}, p string) FigureNode {
	out := FigureNode{
		ID:          d.required(m, p, "id"),
		Kind:        d.str(m, p, "kind"),
		OutputPath:  d.str(m, p, "output_path"),
		SourceType:  d.str(m, p, "source_type"),
		SourceRef:   d.str(m, p, "source_ref"),
		Inputs:      d.strings(m, p, "inputs"),
		Status:      d.str(m, p, "status"),
		Description: d.str(m, p, "description"),
	}
	if params, ok := d.section(m, "params"); ok {
		out.Params = params
	}
	for i, item := range d.list(m, "children") {
		entry, ok := d.item(item, path(p, "children", i))
		if !ok {
			continue
		}
		out.Children = append(out.Children, d.figure(entry, path(p, "children", i)))
	}
	return out
}

func (d *decoder) archive(m map[string]interface{}, p string) *Archive {
	return &Archive{
		Status:         d.str(m, p, "status"),
		Date:           d.date(m, p, "date"),
		Location:       d.str(m, p, "location"),
		RetentionYears: d.integer(m, p, "retention_years"),
		BackupVerified: d.boolean(m, p, "backup_verified"),
		Notes:          d.str(m, p, "notes"),
	}
}

func (d *decoder) milestone(m map[string]interface{}, p string) Milestone {
	return Milestone{
		Name:   d.required(m, p, "name"),
		Due:    d.date(m, p, "due"),
		Status: d.str(m, p, "status"),
		Notes:  d.str(m, p, "notes"),
	}
}

func (d *decoder) artifact(m map[string]interface{}, p string) Artifact {
	return Artifact{
		Path:        d.required(m, p, "path"),
		Kind:        d.str(m, p, "kind"),
		Description: d.str(m, p, "description"),
		Created:     d.date(m, p, "created"),
	}
}

func (d *decoder) hardware(m map[string]interface{}, p string) HardwareProfile {
	return HardwareProfile{
		Name:      d.required(m, p, "name"),
		Hostname:  d.str(m, p, "hostname"),
		CPUs:      d.integer(m, p, "cpus"),
		RAMGB:     d.float(m, p, "ram_gb"),
		GPU:       d.str(m, p, "gpu"),
		Scheduler: d.str(m, p, "scheduler"),
		Notes:     d.str(m, p, "notes"),
	}
}

func (d *decoder) method(m map[string]interface{}, p string) *Method {
	return &Method{
		Path:         d.str(m, p, "path"),
		TemplateUsed: d.boolean(m, p, "template_used"),
	}
}

// Package manifest defines the persisted project document: its entity
// types, the YAML codec, and schema validation.
package manifest

// Manifest is the root document describing one project's metadata. Every
// section is independently optional except Project; field order here is
// the canonical on-disk order.
type Manifest struct {
	Project          *Project             `yaml:"project,omitempty"`
	People           *People              `yaml:"people,omitempty"`
	Datasets         []Dataset            `yaml:"datasets,omitempty"`
	Acquisition      []AcquisitionSession `yaml:"acquisition,omitempty"`
	Tools            *Tools               `yaml:"tools,omitempty"`
	Billing          *Billing             `yaml:"billing,omitempty"`
	Publication      *Publication         `yaml:"publication,omitempty"`
	Archive          *Archive             `yaml:"archive,omitempty"`
	Timeline         []Milestone          `yaml:"timeline,omitempty"`
	Artifacts        []Artifact           `yaml:"artifacts,omitempty"`
	HardwareProfiles []HardwareProfile    `yaml:"hardware_profiles,omitempty"`
	Method           *Method              `yaml:"method,omitempty"`

	// Extra carries top-level sections this tool does not model so a
	// round trip never drops them.
	Extra map[string]interface{} `yaml:",inline"`
}

// Project identifies the project. Status is an open enum: the UI offers
// active/completed/archived/on-hold but any string is stored verbatim.
type Project struct {
	Name   string   `yaml:"name"`
	Status string   `yaml:"status,omitempty"`
	Tags   []string `yaml:"tags,omitempty"`
}

// People lists the analyst responsible for the project and external
// collaborators.
type People struct {
	Analyst       string         `yaml:"analyst"`
	Collaborators []Collaborator `yaml:"collaborators,omitempty"`
}

// Collaborator exists only as a member of People.Collaborators; Name is
// its key field.
type Collaborator struct {
	Name        string `yaml:"name"`
	Affiliation string `yaml:"affiliation,omitempty"`
	Email       string `yaml:"email,omitempty"`
	Role        string `yaml:"role,omitempty"`
}

// Dataset describes one acquired data collection. Name is the key field.
type Dataset struct {
	Name       string   `yaml:"name"`
	Modality   string   `yaml:"modality,omitempty"`
	Path       string   `yaml:"path,omitempty"`
	RawSizeGB  *float64 `yaml:"raw_size_gb,omitempty"`
	FileCount  *int     `yaml:"file_count,omitempty"`
	Acquired   *Date    `yaml:"acquired,omitempty"`
	LocalMount bool     `yaml:"local_mount,omitempty"`
	LocalPath  string   `yaml:"local_path,omitempty"`
	Notes      string   `yaml:"notes,omitempty"`
}

// AcquisitionSession records one imaging session. Its Channel list is
// owned exclusively by the session; channels have no identity beyond
// their ordinal position.
type AcquisitionSession struct {
	Name       string     `yaml:"name"`
	Date       *Date      `yaml:"date,omitempty"`
	Microscope string     `yaml:"microscope,omitempty"`
	Objective  string     `yaml:"objective,omitempty"`
	Modality   string     `yaml:"modality,omitempty"`
	VoxelSize  *VoxelSize `yaml:"voxel_size,omitempty"`
	Channels   []Channel  `yaml:"channels,omitempty"`
	Notes      string     `yaml:"notes,omitempty"`
}

// VoxelSize is a composite: when present, absent components are explicit
// nulls rather than omitted keys.
type VoxelSize struct {
	XUm *float64 `yaml:"x_um"`
	YUm *float64 `yaml:"y_um"`
	ZUm *float64 `yaml:"z_um"`
}

// Channel is one imaging channel within a session.
type Channel struct {
	Name         string   `yaml:"name"`
	Fluorophore  string   `yaml:"fluorophore,omitempty"`
	ExcitationNm *float64 `yaml:"excitation_nm,omitempty"`
	EmissionNm   *float64 `yaml:"emission_nm,omitempty"`
	Notes        string   `yaml:"notes,omitempty"`
}

// Tools captures the analysis environment.
type Tools struct {
	EnvKind         string   `yaml:"env_kind,omitempty"`
	EnvFile         string   `yaml:"env_file,omitempty"`
	Languages       []string `yaml:"languages,omitempty"`
	Software        []string `yaml:"software,omitempty"`
	ClusterPackages []string `yaml:"cluster_packages,omitempty"`
	GitRemote       string   `yaml:"git_remote,omitempty"`
}

// Billing captures funding and time budgeting.
type Billing struct {
	FundCode    string   `yaml:"fund_code,omitempty"`
	HourlyRate  *float64 `yaml:"hourly_rate,omitempty"`
	BudgetHours *float64 `yaml:"budget_hours,omitempty"`
	SpentHours  *float64 `yaml:"spent_hours,omitempty"`
	Start       *Date    `yaml:"start,omitempty"`
	End         *Date    `yaml:"end,omitempty"`
	Notes       string   `yaml:"notes,omitempty"`
}

// Publication tracks manuscript state and the figure tree.
type Publication struct {
	Status         string       `yaml:"status,omitempty"`
	Journal        string       `yaml:"journal,omitempty"`
	ManuscriptPath string       `yaml:"manuscript_path,omitempty"`
	DOIs           []string     `yaml:"dois,omitempty"`
	RepoURL        string       `yaml:"repo_url,omitempty"`
	Figures        []FigureNode `yaml:"figures,omitempty"`
	Notes          string       `yaml:"notes,omitempty"`
}

// FigureNode is the one hierarchical entity: a tree of figure/panel
// containers with leaf elements. ID is the key field; a node with an
// empty ID is dropped along with its entire subtree.
type FigureNode struct {
	ID          string                 `yaml:"id"`
	Kind        string                 `yaml:"kind,omitempty"`
	OutputPath  string                 `yaml:"output_path,omitempty"`
	SourceType  string                 `yaml:"source_type,omitempty"`
	SourceRef   string                 `yaml:"source_ref,omitempty"`
	Inputs      []string               `yaml:"inputs,omitempty"`
	Params      map[string]interface{} `yaml:"params,omitempty"`
	Status      string                 `yaml:"status,omitempty"`
	Description string                 `yaml:"description,omitempty"`
	Children    []FigureNode           `yaml:"children,omitempty"`
}

// Archive tracks long-term storage of the finished project.
type Archive struct {
	Status         string `yaml:"status,omitempty"`
	Date           *Date  `yaml:"date,omitempty"`
	Location       string `yaml:"location,omitempty"`
	RetentionYears *int   `yaml:"retention_years,omitempty"`
	BackupVerified bool   `yaml:"backup_verified,omitempty"`
	Notes          string `yaml:"notes,omitempty"`
}

// Milestone is one timeline entry. Name is the key field.
type Milestone struct {
	Name   string `yaml:"name"`
	Due    *Date  `yaml:"due,omitempty"`
	Status string `yaml:"status,omitempty"`
	Notes  string `yaml:"notes,omitempty"`
}

// Artifact is a produced output worth tracking. Path is the key field.
type Artifact struct {
	Path        string `yaml:"path"`
	Kind        string `yaml:"kind,omitempty"`
	Description string `yaml:"description,omitempty"`
	Created     *Date  `yaml:"created,omitempty"`
}

// HardwareProfile describes a compute target used for analysis. Name is
// the key field.
type HardwareProfile struct {
	Name      string   `yaml:"name"`
	Hostname  string   `yaml:"hostname,omitempty"`
	CPUs      *int     `yaml:"cpus,omitempty"`
	RAMGB     *float64 `yaml:"ram_gb,omitempty"`
	GPU       string   `yaml:"gpu,omitempty"`
	Scheduler string   `yaml:"scheduler,omitempty"`
	Notes     string   `yaml:"notes,omitempty"`
}

// Method points at the written methods description.
type Method struct {
	Path         string `yaml:"path,omitempty"`
	TemplateUsed bool   `yaml:"template_used,omitempty"`
}

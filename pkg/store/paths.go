package store

import (
	"os"
	"path/filepath"
)

const (
	stateDirName     = ".labjo"
	manifestFileName = "manifest.yaml"
	worklogFileName  = "worklog.yaml"
	dataLinkName     = "data"
)

// ProjectPaths resolves the canonical locations for one project's
// files. Two on-disk layouts exist: the namespaced layout keeps
// documents under .labjo/, the older flat layout keeps them at the
// project root. Reads prefer whichever layout is present; writes always
// land in the namespaced layout.
type ProjectPaths struct {
	Root string
}

// NewProjectPaths builds paths rooted at dir.
func NewProjectPaths(dir string) ProjectPaths {
	return ProjectPaths{Root: dir}
}

// StateDir is the namespaced directory for project documents.
func (p ProjectPaths) StateDir() string {
	return filepath.Join(p.Root, stateDirName)
}

// ManifestPath resolves the manifest document location.
func (p ProjectPaths) ManifestPath() string {
	return p.resolve(manifestFileName)
}

// WorklogPath resolves the work-log document location.
func (p ProjectPaths) WorklogPath() string {
	return p.resolve(worklogFileName)
}

// DataLinkPath is the project-relative symlink target for locally
// mounted dataset caches.
func (p ProjectPaths) DataLinkPath() string {
	return filepath.Join(p.Root, dataLinkName)
}

// resolve prefers the namespaced layout, falls back to a legacy flat
// file when only that exists, and defaults new files to the namespaced
// layout.
func (p ProjectPaths) resolve(name string) string {
	namespaced := filepath.Join(p.StateDir(), name)
	if fileExists(namespaced) {
		return namespaced
	}
	legacy := filepath.Join(p.Root, name)
	if fileExists(legacy) {
		return legacy
	}
	return namespaced
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

package store

import (
	"crypto/md5"
	"encoding/json"
	"fmt"
	"path/filepath"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/peterbourgon/diskv/v3"
)

// UIState is the lossy persistence of navigation state, keyed per
// project path. Losing it costs nothing but navigation convenience, so
// every operation here is best-effort and errors are swallowed by the
// callers that choose to.
type UIState struct {
	ActiveTab       string         `json:"active_tab,omitempty"`
	Selections      map[string]int `json:"selections,omitempty"`
	ExpandedFigures []string       `json:"expanded_figures,omitempty"`
}

// UIStateStore persists UIState records in a small diskv cache under
// the user's home directory.
type UIStateStore struct {
	d *diskv.Diskv
}

// NewUIStateStore opens (or creates) the cache. Pass an empty dir to
// use the default ~/.labjo/ui location.
func NewUIStateStore(dir string) (*UIStateStore, error) {
	if dir == "" {
		home, err := homedir.Dir()
		if err != nil {
			return nil, fmt.Errorf("store: resolve home: %w", err)
		}
		dir = filepath.Join(home, stateDirName, "ui")
	}
	return &UIStateStore{d: diskv.New(diskv.Options{
		BasePath:     dir,
		CacheSizeMax: 1024 * 1024, // 1MB
	})}, nil
}

// Save records the navigation state for a project path.
func (s *UIStateStore) Save(projectDir string, state UIState) error {
	data, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("store: encode ui state: %w", err)
	}
	return s.d.Write(uiStateKey(projectDir), data)
}

// Load fetches the navigation state for a project path; a missing or
// unreadable record yields the zero state.
func (s *UIStateStore) Load(projectDir string) UIState {
	var state UIState
	data, err := s.d.Read(uiStateKey(projectDir))
	if err != nil {
		return state
	}
	if err := json.Unmarshal(data, &state); err != nil {
		return UIState{}
	}
	return state
}

// uiStateKey hashes the project path so arbitrary directories map to
// flat cache keys.
func uiStateKey(projectDir string) string {
	abs, err := filepath.Abs(projectDir)
	if err != nil {
		abs = projectDir
	}
	sum := md5.Sum([]byte(abs))
	return fmt.Sprintf("%x", sum[:8])
}

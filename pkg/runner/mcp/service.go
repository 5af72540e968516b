package mcp

import (
	"context"
	"fmt"
	"sync"
	"time"

	"tableflip.dev/labjo/pkg/form"
	"tableflip.dev/labjo/pkg/manifest"
	"tableflip.dev/labjo/pkg/rows"
	"tableflip.dev/labjo/pkg/store"
	"tableflip.dev/labjo/pkg/timeutil"
	"tableflip.dev/labjo/pkg/worklog"
)

// Service adapts the manifest lifecycle and the work log for MCP
// tools. Each call loads fresh state so external edits are visible; a
// mutex serializes mutations within this process.
type Service struct {
	paths store.ProjectPaths
	mu    sync.Mutex
}

// NewService builds a service over one project directory.
func NewService(paths store.ProjectPaths) *Service {
	return &Service{paths: paths}
}

// DatasetDTO is the wire shape for one dataset.
type DatasetDTO struct {
	Name       string `json:"name"`
	Modality   string `json:"modality,omitempty"`
	Path       string `json:"path,omitempty"`
	LocalMount bool   `json:"local_mount,omitempty"`
	LocalPath  string `json:"local_path,omitempty"`
}

// MilestoneDTO is the wire shape for one timeline entry.
type MilestoneDTO struct {
	Name   string `json:"name"`
	Due    string `json:"due,omitempty"`
	Status string `json:"status,omitempty"`
}

// TaskDTO is the wire shape for one work-log task.
type TaskDTO struct {
	Name     string   `json:"name"`
	Type     string   `json:"type,omitempty"`
	Status   string   `json:"status"`
	Worked   string   `json:"worked"`
	Problems []string `json:"problems,omitempty"`
}

func (s *Service) load() (*form.Controller, manifest.ValidationErrors, error) {
	c := form.NewController(s.paths)
	errs, err := c.Load(time.Now())
	if err != nil {
		return nil, nil, err
	}
	return c, errs, nil
}

// Manifest returns the manifest as a loose document plus any
// validation problems.
func (s *Service) Manifest(ctx context.Context) (map[string]interface{}, []string, error) {
	c, errs, err := s.load()
	if err != nil {
		return nil, nil, err
	}
	problems := make([]string, 0, len(errs))
	for _, e := range errs {
		problems = append(problems, e.Error())
	}
	return c.State.Raw, problems, nil
}

// ListDatasets returns dataset summaries.
func (s *Service) ListDatasets(ctx context.Context) ([]DatasetDTO, error) {
	c, _, err := s.load()
	if err != nil {
		return nil, err
	}
	out := make([]DatasetDTO, 0, len(c.Manifest.Datasets))
	for _, ds := range c.Manifest.Datasets {
		out = append(out, DatasetDTO{
			Name:       ds.Name,
			Modality:   ds.Modality,
			Path:       ds.Path,
			LocalMount: ds.LocalMount,
			LocalPath:  ds.LocalPath,
		})
	}
	return out, nil
}

// AddDataset appends a dataset row and saves the manifest.
func (s *Service) AddDataset(ctx context.Context, row rows.DatasetRow) (*DatasetDTO, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, _, err := s.load()
	if err != nil {
		return nil, err
	}
	c.State.Datasets.Add(row)
	result, err := c.Save(time.Now())
	if err != nil {
		return nil, err
	}
	if !result.OK() {
		return nil, result.Errors
	}
	return &DatasetDTO{
		Name:       row.Name,
		Modality:   row.Modality,
		Path:       row.Path,
		LocalMount: row.LocalMount,
		LocalPath:  row.LocalPath,
	}, nil
}

// ListMilestones returns timeline summaries.
func (s *Service) ListMilestones(ctx context.Context) ([]MilestoneDTO, error) {
	c, _, err := s.load()
	if err != nil {
		return nil, err
	}
	out := make([]MilestoneDTO, 0, len(c.Manifest.Timeline))
	for _, ms := range c.Manifest.Timeline {
		out = append(out, MilestoneDTO{
			Name:   ms.Name,
			Due:    rows.FormatDate(ms.Due),
			Status: ms.Status,
		})
	}
	return out, nil
}

// AddMilestone appends a milestone row and saves the manifest.
func (s *Service) AddMilestone(ctx context.Context, row rows.MilestoneRow) (*MilestoneDTO, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, _, err := s.load()
	if err != nil {
		return nil, err
	}
	c.State.Milestones.Add(row)
	result, err := c.Save(time.Now())
	if err != nil {
		return nil, err
	}
	if !result.OK() {
		return nil, result.Errors
	}
	return &MilestoneDTO{Name: row.Name, Due: row.Due, Status: row.Status}, nil
}

func (s *Service) loadLog() (*worklog.Log, error) {
	data, err := store.ReadFile(s.paths.WorklogPath())
	if err != nil {
		return nil, err
	}
	return worklog.Unmarshal(data)
}

func (s *Service) saveLog(log *worklog.Log) error {
	data, err := log.Marshal()
	if err != nil {
		return err
	}
	return store.WriteAtomic(s.paths.WorklogPath(), data)
}

func taskDTO(t *worklog.Task, now time.Time) *TaskDTO {
	return &TaskDTO{
		Name:     t.Name,
		Type:     t.Type,
		Status:   string(t.Status),
		Worked:   timeutil.Humanize(t.Duration(now)),
		Problems: t.Problems(now),
	}
}

// PunchIn starts a new task. An open task is an error; punch it out
// first.
func (s *Service) PunchIn(ctx context.Context, name, taskType string) (*TaskDTO, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	log, err := s.loadLog()
	if err != nil {
		return nil, err
	}
	if current := log.Current(); current != nil {
		return nil, fmt.Errorf("task %q is still open", current.Name)
	}
	now := time.Now()
	task := log.Start(name, taskType, now)
	if err := s.saveLog(log); err != nil {
		return nil, err
	}
	return taskDTO(task, now), nil
}

// PunchOut closes or pauses the current task.
func (s *Service) PunchOut(ctx context.Context, pause bool) (*TaskDTO, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	log, err := s.loadLog()
	if err != nil {
		return nil, err
	}
	current := log.Current()
	if current == nil {
		return nil, fmt.Errorf("no open task")
	}
	now := time.Now()
	if pause {
		err = current.Pause(now)
	} else {
		err = current.Complete(now)
	}
	if err != nil {
		return nil, err
	}
	if err := s.saveLog(log); err != nil {
		return nil, err
	}
	return taskDTO(current, now), nil
}

// WorklogReport sums worked time over a window.
func (s *Service) WorklogReport(ctx context.Context, window string) (map[string]any, error) {
	dur, label, err := timeutil.ParseWindow(window)
	if err != nil {
		return nil, err
	}
	log, err := s.loadLog()
	if err != nil {
		return nil, err
	}
	now := time.Now()
	tasks := log.Since(now.Add(-dur))
	var total time.Duration
	dtos := make([]*TaskDTO, 0, len(tasks))
	for _, t := range tasks {
		total += t.Duration(now)
		dtos = append(dtos, taskDTO(t, now))
	}
	return map[string]any{
		"window": label,
		"tasks":  dtos,
		"total":  timeutil.Humanize(total),
	}, nil
}

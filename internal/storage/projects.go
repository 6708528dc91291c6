package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"server/internal/domain"
)

// ProjectRecord is one saved brand project in projects.json.
type ProjectRecord struct {
	ID          string          `json:"id"`
	ProjectName string          `json:"project_name"`
	Owner       string          `json:"owner"`
	SavedAt     time.Time       `json:"saved_at"`
	Brand       domain.Snapshot `json:"brand"`
}

// ProjectStore keeps saved projects in a single projects.json file keyed by
// project ID. Reads hand back copies; ownership is enforced on every lookup.
type ProjectStore struct {
	path string
	now  func() time.Time

	mu       sync.Mutex
	projects map[string]ProjectRecord
}

// NewProjectStore loads (or initializes) the project file at path.
func NewProjectStore(path string) (*ProjectStore, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil, errors.New("storage: projects file path is required")
	}
	s := &ProjectStore{
		path:     path,
		now:      time.Now,
		projects: make(map[string]ProjectRecord),
	}
	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
	case err != nil:
		return nil, fmt.Errorf("storage: read projects file: %w", err)
	default:
		if err := json.Unmarshal(data, &s.projects); err != nil {
			return nil, fmt.Errorf("storage: parse projects file: %w", err)
		}
	}
	return s, nil
}

// Save stores a snapshot under a fresh ID and returns the record.
func (s *ProjectStore) Save(owner, projectName string, snap domain.Snapshot) (ProjectRecord, error) {
	owner = NormalizeEmail(owner)
	projectName = strings.TrimSpace(projectName)
	if projectName == "" {
		projectName = snap.SelectedName
	}
	if projectName == "" {
		projectName = "Untitled brand"
	}
	rec := ProjectRecord{
		ID:          uuid.NewString(),
		ProjectName: projectName,
		Owner:       owner,
		SavedAt:     s.now().UTC(),
		Brand:       snap,
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.projects[rec.ID] = rec
	if err := writeJSONFile(s.path, s.projects); err != nil {
		delete(s.projects, rec.ID)
		return ProjectRecord{}, err
	}
	return rec, nil
}

// Get returns the project if it exists and belongs to owner.
func (s *ProjectStore) Get(owner, id string) (ProjectRecord, error) {
	owner = NormalizeEmail(owner)

	s.mu.Lock()
	rec, ok := s.projects[id]
	s.mu.Unlock()
	if !ok {
		return ProjectRecord{}, domain.ErrNotFound
	}
	if rec.Owner != owner {
		return ProjectRecord{}, domain.ErrUnauthorized
	}
	return rec, nil
}

// ListByOwner returns the owner's projects, newest first.
func (s *ProjectStore) ListByOwner(owner string) []ProjectRecord {
	owner = NormalizeEmail(owner)

	s.mu.Lock()
	out := make([]ProjectRecord, 0, len(s.projects))
	for _, rec := range s.projects {
		if rec.Owner == owner {
			out = append(out, rec)
		}
	}
	s.mu.Unlock()

	sort.Slice(out, func(i, j int) bool { return out[i].SavedAt.After(out[j].SavedAt) })
	return out
}

// Delete removes the project after an ownership check.
func (s *ProjectStore) Delete(owner, id string) error {
	owner = NormalizeEmail(owner)

	s.mu.Lock()
	defer s.mu.Unlock()
	rec, ok := s.projects[id]
	if !ok {
		return domain.ErrNotFound
	}
	if rec.Owner != owner {
		return domain.ErrUnauthorized
	}
	delete(s.projects, id)
	if err := writeJSONFile(s.path, s.projects); err != nil {
		s.projects[id] = rec
		return err
	}
	return nil
}

package store

import (
	"encoding/json"
	"log/slog"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/jonaen987-prog/Medusa-YT-Tools/internal/kvstore"
	"github.com/jonaen987-prog/Medusa-YT-Tools/internal/models"
)

// ProjectStore manages the project collection and its assets. The whole
// collection is re-serialized on every write (last write wins across
// concurrent writers, matching the original storage semantics).
type ProjectStore struct {
	kv kvstore.Store
}

// NewProjectStore returns a ProjectStore backed by the given key-value store.
func NewProjectStore(kv kvstore.Store) *ProjectStore {
	return &ProjectStore{kv: kv}
}

// NewAsset carries the caller-supplied fields for an asset append. ID and
// timestamp are assigned by the store.
type NewAsset struct {
	Type    models.AssetType
	Query   string
	Payload any
}

// All returns every project sorted by updatedAt descending (most recently
// touched first). The ordering is recomputed on every read. Absent or
// corrupt storage yields an empty slice.
func (s *ProjectStore) All() []models.Project {
	raw, ok := s.kv.Get(keyProjects)
	if !ok {
		return []models.Project{}
	}

	var projects []models.Project
	if err := json.Unmarshal([]byte(raw), &projects); err != nil {
		slog.Error("projects decode failed", "error", err)
		return []models.Project{}
	}

	sort.SliceStable(projects, func(i, j int) bool {
		return parseTimestamp(projects[i].UpdatedAt).After(parseTimestamp(projects[j].UpdatedAt))
	})
	return projects
}

// Latest returns the first n projects of All.
func (s *ProjectStore) Latest(n int) []models.Project {
	projects := s.All()
	if n < len(projects) {
		projects = projects[:n]
	}
	return projects
}

// ByID returns the project with the given id, or nil if absent.
func (s *ProjectStore) ByID(id string) *models.Project {
	for _, p := range s.All() {
		if p.ID == id {
			return &p
		}
	}
	return nil
}

// Create stores a new project with the given title and topic and returns it.
// The caller validates that title and topic are non-empty. The new project is
// prepended to the stored collection.
func (s *ProjectStore) Create(title, topic string) models.Project {
	now := timestamp(time.Now())
	project := models.Project{
		ID:        newID(),
		Title:     title,
		Topic:     topic,
		CreatedAt: now,
		UpdatedAt: now,
		Assets:    []models.ProjectAsset{},
	}
	s.save(append([]models.Project{project}, s.All()...))
	return project
}

// Update replaces the stored project with the same id, forcing updatedAt to
// now (the caller-supplied value is ignored). No-op when the id is unknown.
func (s *ProjectStore) Update(project models.Project) {
	projects := s.All()
	for i := range projects {
		if projects[i].ID == project.ID {
			project.UpdatedAt = s.touch(projects[i].UpdatedAt)
			projects[i] = project
			s.save(projects)
			return
		}
	}
}

// Delete removes the project with the given id. No-op when absent.
func (s *ProjectStore) Delete(id string) {
	projects := s.All()
	kept := projects[:0]
	for _, p := range projects {
		if p.ID != id {
			kept = append(kept, p)
		}
	}
	s.save(kept)
}

// SaveAsset appends a freshly-stamped asset to the front of the project's
// asset list and refreshes the project's updatedAt via Update. This is the
// only way assets are created. No-op when the project id is unknown.
func (s *ProjectStore) SaveAsset(projectID string, asset NewAsset) {
	project := s.ByID(projectID)
	if project == nil {
		return
	}

	payload, err := json.Marshal(asset.Payload)
	if err != nil {
		slog.Error("asset payload encode failed", "type", asset.Type, "error", err)
		return
	}

	record := models.ProjectAsset{
		ID:        newID(),
		Type:      asset.Type,
		Timestamp: timestamp(time.Now()),
		Query:     asset.Query,
		Payload:   payload,
	}
	project.Assets = append([]models.ProjectAsset{record}, project.Assets...)
	s.Update(*project)
}

func (s *ProjectStore) save(projects []models.Project) {
	raw, err := json.Marshal(projects)
	if err != nil {
		slog.Error("projects encode failed", "error", err)
		return
	}
	s.kv.Set(keyProjects, string(raw))
}

// touch returns a timestamp strictly after the prior one. updatedAt must
// advance on every mutation even when the clock hasn't moved.
func (s *ProjectStore) touch(prior string) string {
	now := time.Now().UTC()
	if t := parseTimestamp(prior); !now.After(t) {
		now = t.Add(time.Nanosecond)
	}
	return now.Format(time.RFC3339Nano)
}

// newID combines the current timestamp with a short random suffix. The
// original scheme used an unguarded random suffix; a UUID fragment keeps the
// shape while making collisions under rapid successive calls a non-issue.
func newID() string {
	return timestamp(time.Now()) + "-" + uuid.NewString()[:8]
}

func timestamp(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}

func parseTimestamp(s string) time.Time {
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}
	}
	return t
}

package store

import (
	"encoding/json"
	"log/slog"

	"github.com/jonaen987-prog/Medusa-YT-Tools/internal/kvstore"
)

// ChecklistItems is the fixed dashboard checklist. Stored completion state
// is a list of these labels.
var ChecklistItems = []string{
	"Brainstorm your next video idea",
	"Generate a full video script",
	"Create a high-CTR thumbnail concept",
	"Generate a complete SEO package for your video",
	"Plan your content repurposing strategy",
	"Engage your audience with a Community Post",
	"Update your Channel Brand Kit",
}

// ChecklistStore manages the dashboard checklist completion state and the
// one-shot welcome flag.
type ChecklistStore struct {
	kv kvstore.Store
}

// NewChecklistStore returns a ChecklistStore backed by the given key-value store.
func NewChecklistStore(kv kvstore.Store) *ChecklistStore {
	return &ChecklistStore{kv: kv}
}

// Completed returns the labels of completed checklist items. Absent or
// corrupt storage yields an empty slice.
func (s *ChecklistStore) Completed() []string {
	raw, ok := s.kv.Get(keyChecklist)
	if !ok {
		return []string{}
	}
	var labels []string
	if err := json.Unmarshal([]byte(raw), &labels); err != nil {
		slog.Error("checklist decode failed", "error", err)
		return []string{}
	}
	return labels
}

// SaveCompleted persists the completed labels, dropping any that are not in
// the fixed checklist.
func (s *ChecklistStore) SaveCompleted(labels []string) {
	known := make(map[string]bool, len(ChecklistItems))
	for _, item := range ChecklistItems {
		known[item] = true
	}

	kept := make([]string, 0, len(labels))
	for _, label := range labels {
		if known[label] {
			kept = append(kept, label)
		}
	}

	raw, err := json.Marshal(kept)
	if err != nil {
		slog.Error("checklist encode failed", "error", err)
		return
	}
	s.kv.Set(keyChecklist, string(raw))
}

// WelcomeShown reports whether the welcome screen has already been shown.
func (s *ChecklistStore) WelcomeShown() bool {
	v, ok := s.kv.Get(keyWelcome)
	return ok && v == "true"
}

// MarkWelcomeShown sets the welcome flag. The application never clears it.
func (s *ChecklistStore) MarkWelcomeShown() {
	s.kv.Set(keyWelcome, "true")
}

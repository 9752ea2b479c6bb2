package store

import (
	"github.com/jonaen987-prog/Medusa-YT-Tools/internal/kvstore"
	"github.com/jonaen987-prog/Medusa-YT-Tools/internal/models"
)

// SettingsStore manages the single global tone-of-voice preference.
type SettingsStore struct {
	kv kvstore.Store
}

// NewSettingsStore returns a SettingsStore backed by the given key-value store.
func NewSettingsStore(kv kvstore.Store) *SettingsStore {
	return &SettingsStore{kv: kv}
}

// Tone returns the stored tone. An absent or invalid stored value falls back
// to the default without error.
func (s *SettingsStore) Tone() models.Tone {
	v, ok := s.kv.Get(keyTone)
	if !ok {
		return models.DefaultTone
	}
	tone := models.Tone(v)
	if !tone.Valid() {
		return models.DefaultTone
	}
	return tone
}

// SaveTone persists the tone. Non-members of the tone set are silently
// ignored so arbitrary text can never reach storage.
func (s *SettingsStore) SaveTone(t models.Tone) {
	if !t.Valid() {
		return
	}
	s.kv.Set(keyTone, string(t))
}

package store

import (
	"encoding/json"
	"log/slog"

	"github.com/jonaen987-prog/Medusa-YT-Tools/internal/kvstore"
	"github.com/jonaen987-prog/Medusa-YT-Tools/internal/models"
)

// BrandKitStore manages the single user-editable channel identity record.
type BrandKitStore struct {
	kv kvstore.Store
}

// NewBrandKitStore returns a BrandKitStore backed by the given key-value store.
func NewBrandKitStore(kv kvstore.Store) *BrandKitStore {
	return &BrandKitStore{kv: kv}
}

// Get returns the stored brand kit. Absent or corrupt storage yields the
// all-empty default; decoded fields are merged over defaults so newly
// introduced fields are always present, and ctaLinks is coerced to an empty
// sequence if the stored value is not an array.
func (s *BrandKitStore) Get() models.BrandKit {
	raw, ok := s.kv.Get(keyBrandKit)
	if !ok {
		return models.DefaultBrandKit()
	}

	// Decode ctaLinks separately: a corrupt non-array value must not reject
	// the rest of the record.
	var partial struct {
		ChannelName        *string         `json:"channelName"`
		ChannelDescription *string         `json:"channelDescription"`
		TargetAudience     *string         `json:"targetAudience"`
		CtaLinks           json.RawMessage `json:"ctaLinks"`
		StandardDisclaimer *string         `json:"standardDisclaimer"`
	}
	if err := json.Unmarshal([]byte(raw), &partial); err != nil {
		slog.Error("brand kit decode failed", "error", err)
		return models.DefaultBrandKit()
	}

	kit := models.DefaultBrandKit()
	if partial.ChannelName != nil {
		kit.ChannelName = *partial.ChannelName
	}
	if partial.ChannelDescription != nil {
		kit.ChannelDescription = *partial.ChannelDescription
	}
	if partial.TargetAudience != nil {
		kit.TargetAudience = *partial.TargetAudience
	}
	if partial.StandardDisclaimer != nil {
		kit.StandardDisclaimer = *partial.StandardDisclaimer
	}
	if len(partial.CtaLinks) > 0 {
		var links []models.CtaLink
		if err := json.Unmarshal(partial.CtaLinks, &links); err == nil && links != nil {
			kit.CtaLinks = links
		}
	}
	return kit
}

// Save serializes and writes the whole record. Errors are logged, never
// returned.
func (s *BrandKitStore) Save(kit models.BrandKit) {
	if kit.CtaLinks == nil {
		kit.CtaLinks = []models.CtaLink{}
	}
	raw, err := json.Marshal(kit)
	if err != nil {
		slog.Error("brand kit encode failed", "error", err)
		return
	}
	s.kv.Set(keyBrandKit, string(raw))
}

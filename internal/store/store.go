// Package store implements the persistence layer on top of the key-value
// store: the tone setting, the brand kit, the project/asset collection, the
// dashboard checklist, and the welcome flag. Each record lives under its own
// key as JSON-encoded text (the tone and welcome flag as plain text), in the
// exact format the original stored data uses. Corrupt or absent records fall
// back to documented defaults; storage failures never propagate.
package store

// Record keys. These are part of the stored-data format and must not change.
const (
	keyTone      = "medusa-yt-tools-tone"
	keyBrandKit  = "medusa-yt-tools-brand-kit"
	keyProjects  = "medusa-yt-tools-projects"
	keyChecklist = "medusa-yt-tools-checklist"
	keyWelcome   = "medusa-yt-tools-welcomed"
)

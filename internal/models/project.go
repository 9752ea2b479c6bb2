package models

import "encoding/json"

// ProjectAsset is one immutable generation result attached to a project.
// Payload is kept as raw JSON so the stored record round-trips byte-for-byte;
// its shape is fully determined by Type and decoded on demand via
// DecodePayload.
type ProjectAsset struct {
	ID        string          `json:"id"`
	Type      AssetType       `json:"type"`
	Timestamp string          `json:"timestamp"`
	Query     string          `json:"query"`
	Payload   json.RawMessage `json:"payload"`
}

// Project groups generated assets under one topic. Assets are ordered
// newest-first; UpdatedAt is refreshed on every mutation.
type Project struct {
	ID        string         `json:"id"`
	Title     string         `json:"title"`
	Topic     string         `json:"topic"`
	CreatedAt string         `json:"createdAt"`
	UpdatedAt string         `json:"updatedAt"`
	Assets    []ProjectAsset `json:"assets"`
}

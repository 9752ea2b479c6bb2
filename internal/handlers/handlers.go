// Package handlers implements the JSON API consumed by the tool screens.
// Every handler reads a JSON body, talks to the stores and the generation
// gateway, and writes a JSON response. Errors use a single envelope shape:
// {"error": "message"}.
package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/jonaen987-prog/Medusa-YT-Tools/internal/gateway"
	"github.com/jonaen987-prog/Medusa-YT-Tools/internal/models"
	"github.com/jonaen987-prog/Medusa-YT-Tools/internal/store"
)

// API bundles the dependencies shared by all endpoint handlers.
type API struct {
	gateway   *gateway.Gateway
	settings  *store.SettingsStore
	brandKit  *store.BrandKitStore
	projects  *store.ProjectStore
	checklist *store.ChecklistStore
}

// New creates the API handler set.
func New(gw *gateway.Gateway, settings *store.SettingsStore, brandKit *store.BrandKitStore, projects *store.ProjectStore, checklist *store.ChecklistStore) *API {
	return &API{
		gateway:   gw,
		settings:  settings,
		brandKit:  brandKit,
		projects:  projects,
		checklist: checklist,
	}
}

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// writeError writes the standard error envelope.
func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// writeGenerationError maps a gateway failure to an HTTP response. Backend
// and decode failures both surface as 502 with the error message intact, so
// the tool screens can show it to the user verbatim.
func writeGenerationError(w http.ResponseWriter, err error) {
	slog.Error("generation failed", "error", err)
	writeError(w, http.StatusBadGateway, err.Error())
}

// decodeBody decodes a JSON request body into dst, rejecting unknown
// garbage with a uniform 400. Returns false if the response was written.
func decodeBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body.")
		return false
	}
	return true
}

// resolveTone picks the tone for a generation request: an explicit valid
// tone from the request wins, an empty value falls back to the persisted
// default, and anything else is rejected.
func (a *API) resolveTone(raw string) (models.Tone, error) {
	if raw == "" {
		return a.settings.Tone(), nil
	}
	t := models.Tone(raw)
	if !t.Valid() {
		return "", errors.New("Invalid tone.")
	}
	return t, nil
}

// saveAsset attaches a generation result to a project when a project id was
// supplied. A blank id means the caller did not ask for persistence.
func (a *API) saveAsset(projectID string, assetType models.AssetType, query string, payload any) {
	if projectID == "" {
		return
	}
	a.projects.SaveAsset(projectID, store.NewAsset{
		Type:    assetType,
		Query:   query,
		Payload: payload,
	})
}

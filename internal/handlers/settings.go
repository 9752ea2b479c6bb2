package handlers

import (
	"net/http"

	"github.com/jonaen987-prog/Medusa-YT-Tools/internal/models"
)

// toneResponse wraps the persisted default tone.
type toneResponse struct {
	Tone models.Tone `json:"tone"`
}

// GetTone returns the persisted default tone of voice.
func (a *API) GetTone(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, toneResponse{Tone: a.settings.Tone()})
}

// PutTone sets the default tone of voice. Values outside the fixed tone set
// are rejected.
func (a *API) PutTone(w http.ResponseWriter, r *http.Request) {
	var req toneResponse
	if !decodeBody(w, r, &req) {
		return
	}
	if !req.Tone.Valid() {
		writeError(w, http.StatusBadRequest, "Invalid tone.")
		return
	}
	a.settings.SaveTone(req.Tone)
	writeJSON(w, http.StatusOK, toneResponse{Tone: a.settings.Tone()})
}

// GetBrandKit returns the persisted brand kit, with defaults filled in for
// any missing fields.
func (a *API) GetBrandKit(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, a.brandKit.Get())
}

// PutBrandKit replaces the persisted brand kit wholesale.
func (a *API) PutBrandKit(w http.ResponseWriter, r *http.Request) {
	var kit models.BrandKit
	if !decodeBody(w, r, &kit) {
		return
	}
	a.brandKit.Save(kit)
	writeJSON(w, http.StatusOK, a.brandKit.Get())
}

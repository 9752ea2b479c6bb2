package handlers

import (
	"net/http"

	"github.com/jonaen987-prog/Medusa-YT-Tools/internal/store"
)

// checklistResponse wraps the completed checklist item labels.
type checklistResponse struct {
	Completed []string `json:"completed"`
}

// GetChecklist returns the labels of completed onboarding checklist items.
func (a *API) GetChecklist(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, checklistResponse{Completed: a.checklist.Completed()})
}

// PutChecklist replaces the completed set. Labels outside the fixed
// checklist are silently dropped.
func (a *API) PutChecklist(w http.ResponseWriter, r *http.Request) {
	var req checklistResponse
	if !decodeBody(w, r, &req) {
		return
	}
	a.checklist.SaveCompleted(req.Completed)
	writeJSON(w, http.StatusOK, checklistResponse{Completed: a.checklist.Completed()})
}

// ChecklistItems returns the fixed list of onboarding checklist labels.
func (a *API) ChecklistItems(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, store.ChecklistItems)
}

// welcomeResponse reports whether the first-run welcome was already shown.
type welcomeResponse struct {
	Shown bool `json:"shown"`
}

// GetWelcome reports whether the welcome screen has been shown.
func (a *API) GetWelcome(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, welcomeResponse{Shown: a.checklist.WelcomeShown()})
}

// PostWelcome records that the welcome screen has been shown.
func (a *API) PostWelcome(w http.ResponseWriter, r *http.Request) {
	a.checklist.MarkWelcomeShown()
	writeJSON(w, http.StatusOK, welcomeResponse{Shown: true})
}

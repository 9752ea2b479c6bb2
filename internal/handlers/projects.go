package handlers

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/jonaen987-prog/Medusa-YT-Tools/internal/markdown"
	"github.com/jonaen987-prog/Medusa-YT-Tools/internal/models"
	"github.com/jonaen987-prog/Medusa-YT-Tools/internal/slug"
)

// projectRequest is the body for project create and update calls.
type projectRequest struct {
	Title string `json:"title"`
	Topic string `json:"topic"`
}

// ListProjects returns all projects, most recently updated first. An
// optional ?limit=n query caps the result to the n most recent projects.
func (a *API) ListProjects(w http.ResponseWriter, r *http.Request) {
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			writeError(w, http.StatusBadRequest, "Invalid limit.")
			return
		}
		writeJSON(w, http.StatusOK, a.projects.Latest(n))
		return
	}
	writeJSON(w, http.StatusOK, a.projects.All())
}

// CreateProject creates a new project from a title and topic.
func (a *API) CreateProject(w http.ResponseWriter, r *http.Request) {
	var req projectRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if strings.TrimSpace(req.Title) == "" {
		writeError(w, http.StatusBadRequest, "Title is required.")
		return
	}
	if strings.TrimSpace(req.Topic) == "" {
		writeError(w, http.StatusBadRequest, "Topic is required.")
		return
	}

	project := a.projects.Create(strings.TrimSpace(req.Title), strings.TrimSpace(req.Topic))
	writeJSON(w, http.StatusCreated, project)
}

// GetProject returns a single project by id.
func (a *API) GetProject(w http.ResponseWriter, r *http.Request) {
	project := a.projects.ByID(chi.URLParam(r, "id"))
	if project == nil {
		writeError(w, http.StatusNotFound, "Project not found.")
		return
	}
	writeJSON(w, http.StatusOK, project)
}

// UpdateProject renames a project or changes its topic. Empty fields keep
// their current value; assets are never touched through this endpoint.
func (a *API) UpdateProject(w http.ResponseWriter, r *http.Request) {
	var req projectRequest
	if !decodeBody(w, r, &req) {
		return
	}

	id := chi.URLParam(r, "id")
	project := a.projects.ByID(id)
	if project == nil {
		writeError(w, http.StatusNotFound, "Project not found.")
		return
	}

	if title := strings.TrimSpace(req.Title); title != "" {
		project.Title = title
	}
	if topic := strings.TrimSpace(req.Topic); topic != "" {
		project.Topic = topic
	}
	a.projects.Update(*project)

	writeJSON(w, http.StatusOK, a.projects.ByID(id))
}

// DeleteProject removes a project and all of its assets.
func (a *API) DeleteProject(w http.ResponseWriter, r *http.Request) {
	a.projects.Delete(chi.URLParam(r, "id"))
	w.WriteHeader(http.StatusNoContent)
}

// ExportAsset renders one project asset as a downloadable document:
// Markdown by default, or HTML with ?format=html.
func (a *API) ExportAsset(w http.ResponseWriter, r *http.Request) {
	project := a.projects.ByID(chi.URLParam(r, "id"))
	if project == nil {
		writeError(w, http.StatusNotFound, "Project not found.")
		return
	}

	format := r.URL.Query().Get("format")
	if format != "" && format != "md" && format != "html" {
		writeError(w, http.StatusBadRequest, "Invalid format.")
		return
	}

	assetID := chi.URLParam(r, "assetID")
	for _, asset := range project.Assets {
		if asset.ID != assetID {
			continue
		}
		text, err := models.FormatAsset(asset)
		if err != nil {
			writeError(w, http.StatusInternalServerError, "Failed to export asset.")
			return
		}

		name := slug.Generate(project.Title)
		if name == "" {
			name = "project"
		}
		filename := name + "-" + string(asset.Type)

		contentType := "text/markdown; charset=utf-8"
		ext := ".md"
		if format == "html" {
			html, err := markdown.ToHTML(text)
			if err != nil {
				writeError(w, http.StatusInternalServerError, "Failed to export asset.")
				return
			}
			text = html
			contentType = "text/html; charset=utf-8"
			ext = ".html"
		}

		w.Header().Set("Content-Type", contentType)
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename+ext))
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(text))
		return
	}

	writeError(w, http.StatusNotFound, "Asset not found.")
}

package handlers_test

import (
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/jonaen987-prog/Medusa-YT-Tools/internal/models"
	"github.com/jonaen987-prog/Medusa-YT-Tools/internal/store"
)

func TestProjectLifecycle(t *testing.T) {
	e := newEnv(&stubProvider{})

	// Create.
	w := e.do(t, "POST", "/api/projects", map[string]any{
		"title": "My Video", "topic": "Go tutorials",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("create status: got %d, want 201 (body %s)", w.Code, w.Body.String())
	}
	var created models.Project
	decode(t, w, &created)
	if created.ID == "" || created.Title != "My Video" {
		t.Fatalf("created project malformed: %+v", created)
	}
	if created.Assets == nil || len(created.Assets) != 0 {
		t.Error("new project should have an empty, non-nil asset list")
	}

	// Read back.
	w = e.do(t, "GET", "/api/projects/"+created.ID, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("get status: got %d, want 200", w.Code)
	}

	// Rename.
	w = e.do(t, "PUT", "/api/projects/"+created.ID, map[string]any{"title": "Renamed"})
	if w.Code != http.StatusOK {
		t.Fatalf("update status: got %d, want 200", w.Code)
	}
	var updated models.Project
	decode(t, w, &updated)
	if updated.Title != "Renamed" {
		t.Errorf("title: got %q, want Renamed", updated.Title)
	}
	if updated.Topic != "Go tutorials" {
		t.Errorf("topic should be untouched, got %q", updated.Topic)
	}
	before, _ := time.Parse(time.RFC3339Nano, created.UpdatedAt)
	after, _ := time.Parse(time.RFC3339Nano, updated.UpdatedAt)
	if !after.After(before) {
		t.Errorf("updatedAt must advance on update: %s -> %s", created.UpdatedAt, updated.UpdatedAt)
	}

	// Delete.
	w = e.do(t, "DELETE", "/api/projects/"+created.ID, nil)
	if w.Code != http.StatusNoContent {
		t.Fatalf("delete status: got %d, want 204", w.Code)
	}
	w = e.do(t, "GET", "/api/projects/"+created.ID, nil)
	if w.Code != http.StatusNotFound {
		t.Errorf("get after delete: got %d, want 404", w.Code)
	}
}

func TestCreateProjectValidation(t *testing.T) {
	e := newEnv(&stubProvider{})

	w := e.do(t, "POST", "/api/projects", map[string]any{"title": "", "topic": "x"})
	if w.Code != http.StatusBadRequest {
		t.Errorf("empty title: got %d, want 400", w.Code)
	}
	w = e.do(t, "POST", "/api/projects", map[string]any{"title": "x", "topic": "  "})
	if w.Code != http.StatusBadRequest {
		t.Errorf("blank topic: got %d, want 400", w.Code)
	}
}

func TestListProjects(t *testing.T) {
	e := newEnv(&stubProvider{})
	e.projects.Create("First", "a")
	e.projects.Create("Second", "b")
	e.projects.Create("Third", "c")

	w := e.do(t, "GET", "/api/projects", nil)
	var all []models.Project
	decode(t, w, &all)
	if len(all) != 3 {
		t.Fatalf("projects: got %d, want 3", len(all))
	}
	if all[0].Title != "Third" {
		t.Errorf("most recent first: got %q, want Third", all[0].Title)
	}

	w = e.do(t, "GET", "/api/projects?limit=2", nil)
	var limited []models.Project
	decode(t, w, &limited)
	if len(limited) != 2 {
		t.Errorf("limit=2: got %d projects", len(limited))
	}

	w = e.do(t, "GET", "/api/projects?limit=zero", nil)
	if w.Code != http.StatusBadRequest {
		t.Errorf("bad limit: got %d, want 400", w.Code)
	}
}

func TestUnknownProject(t *testing.T) {
	e := newEnv(&stubProvider{})

	for _, tc := range []struct{ method, path string }{
		{"GET", "/api/projects/nope"},
		{"PUT", "/api/projects/nope"},
	} {
		var body map[string]any
		if tc.method == "PUT" {
			body = map[string]any{"title": "x"}
		}
		w := e.do(t, tc.method, tc.path, body)
		if w.Code != http.StatusNotFound {
			t.Errorf("%s %s: got %d, want 404", tc.method, tc.path, w.Code)
		}
	}

	// Deleting a nonexistent project is a no-op.
	w := e.do(t, "DELETE", "/api/projects/nope", nil)
	if w.Code != http.StatusNoContent {
		t.Errorf("delete unknown: got %d, want 204", w.Code)
	}
}

func TestExportAsset(t *testing.T) {
	e := newEnv(&stubProvider{})
	project := e.projects.Create("My Video", "Go")
	e.projects.SaveAsset(project.ID, store.NewAsset{
		Type:    models.AssetTitles,
		Query:   "Go",
		Payload: []string{"Learn Go Fast", "Go in 10 Minutes"},
	})
	saved := e.projects.ByID(project.ID)
	assetID := saved.Assets[0].ID

	w := e.do(t, "GET", "/api/projects/"+project.ID+"/assets/"+assetID+"/export", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status: got %d, want 200 (body %s)", w.Code, w.Body.String())
	}
	if ct := w.Header().Get("Content-Type"); !strings.Contains(ct, "text/markdown") {
		t.Errorf("content-type: got %q", ct)
	}
	if !strings.Contains(w.Body.String(), "Learn Go Fast") {
		t.Errorf("export missing payload content:\n%s", w.Body.String())
	}
	if cd := w.Header().Get("Content-Disposition"); !strings.Contains(cd, "my-video-titles.md") {
		t.Errorf("content-disposition: got %q", cd)
	}

	// HTML export.
	w = e.do(t, "GET", "/api/projects/"+project.ID+"/assets/"+assetID+"/export?format=html", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("html export status: got %d", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); !strings.Contains(ct, "text/html") {
		t.Errorf("html content-type: got %q", ct)
	}
	if !strings.Contains(w.Body.String(), "<") {
		t.Errorf("html export should contain markup:\n%s", w.Body.String())
	}

	w = e.do(t, "GET", "/api/projects/"+project.ID+"/assets/"+assetID+"/export?format=pdf", nil)
	if w.Code != http.StatusBadRequest {
		t.Errorf("bad format: got %d, want 400", w.Code)
	}

	w = e.do(t, "GET", "/api/projects/"+project.ID+"/assets/nope/export", nil)
	if w.Code != http.StatusNotFound {
		t.Errorf("unknown asset: got %d, want 404", w.Code)
	}
}

// Package handlers_test exercises the JSON API end to end through the real
// router, backed by an in-memory key-value store and a scripted AI provider.
package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/jonaen987-prog/Medusa-YT-Tools/internal/ai"
	"github.com/jonaen987-prog/Medusa-YT-Tools/internal/gateway"
	"github.com/jonaen987-prog/Medusa-YT-Tools/internal/handlers"
	"github.com/jonaen987-prog/Medusa-YT-Tools/internal/kvstore"
	"github.com/jonaen987-prog/Medusa-YT-Tools/internal/router"
	"github.com/jonaen987-prog/Medusa-YT-Tools/internal/store"
)

// stubProvider returns a canned response (or error) and records the last
// prompt it was asked to generate from.
type stubProvider struct {
	response   string
	err        error
	lastPrompt string
}

func (p *stubProvider) GenerateJSON(ctx context.Context, prompt string, schema *ai.Schema, temperature float64) (string, error) {
	p.lastPrompt = prompt
	if p.err != nil {
		return "", p.err
	}
	return p.response, nil
}

func (p *stubProvider) Name() string { return "stub" }

// env bundles the router under test with the stores behind it, so tests can
// seed and inspect state directly.
type env struct {
	handler   http.Handler
	settings  *store.SettingsStore
	brandKit  *store.BrandKitStore
	projects  *store.ProjectStore
	checklist *store.ChecklistStore
}

func newEnv(provider ai.Provider) *env {
	kv := kvstore.NewMemory()
	settings := store.NewSettingsStore(kv)
	brandKit := store.NewBrandKitStore(kv)
	projects := store.NewProjectStore(kv)
	checklist := store.NewChecklistStore(kv)

	api := handlers.New(gateway.New(provider), settings, brandKit, projects, checklist)
	return &env{
		handler:   router.New(api),
		settings:  settings,
		brandKit:  brandKit,
		projects:  projects,
		checklist: checklist,
	}
}

// do runs one request through the router, JSON-encoding body when non-nil.
func (e *env) do(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode request body: %v", err)
		}
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	e.handler.ServeHTTP(w, req)
	return w
}

// decode unmarshals a response body, failing the test on bad JSON.
func decode(t *testing.T, w *httptest.ResponseRecorder, dst any) {
	t.Helper()
	if err := json.Unmarshal(w.Body.Bytes(), dst); err != nil {
		t.Fatalf("decode response %q: %v", w.Body.String(), err)
	}
}

// errorMessage extracts the message from the standard error envelope.
func errorMessage(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var envlp map[string]string
	decode(t, w, &envlp)
	return envlp["error"]
}

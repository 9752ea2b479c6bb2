package handlers

import (
	"net/http"
	"strings"

	"github.com/jonaen987-prog/Medusa-YT-Tools/internal/gateway"
	"github.com/jonaen987-prog/Medusa-YT-Tools/internal/models"
)

// --- Generation Tool Endpoints ---
//
// Each tool endpoint follows the same pattern: validate the input, resolve
// the tone (explicit per-request tone or the persisted default), call the
// gateway, optionally persist the result as a project asset, and return the
// result as JSON.

// fullSeoRequest is the body for POST /api/tools/full-seo.
type fullSeoRequest struct {
	Script                    string `json:"script"`
	Cta                       string `json:"cta"`
	Tone                      string `json:"tone"`
	ProjectID                 string `json:"projectId"`
	IncludeChannelDescription bool   `json:"includeChannelDescription"`
	IncludeLinks              bool   `json:"includeLinks"`
	IncludeDisclaimer         bool   `json:"includeDisclaimer"`
}

// FullSeo generates the complete SEO package (title, description, chapters,
// tags, hashtags) for a video script, merges the enabled brand kit sections
// into the description, and optionally attaches the result to a project.
func (a *API) FullSeo(w http.ResponseWriter, r *http.Request) {
	var req fullSeoRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if strings.TrimSpace(req.Script) == "" {
		writeError(w, http.StatusBadRequest, "Script is required.")
		return
	}
	tone, err := a.resolveTone(req.Tone)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	result, err := a.gateway.FullSeo(r.Context(), tone, req.Script, req.Cta)
	if err != nil {
		writeGenerationError(w, err)
		return
	}

	kit := a.brandKit.Get()
	result.Description = kit.ApplyToDescription(result.Description, models.DescriptionOpts{
		ChannelDescription: req.IncludeChannelDescription,
		Links:              req.IncludeLinks,
		Disclaimer:         req.IncludeDisclaimer,
	})

	a.saveAsset(req.ProjectID, models.AssetFullSeo, req.Script, result)
	writeJSON(w, http.StatusOK, result)
}

// topicRequest is the shared body for the topic-driven tools.
type topicRequest struct {
	Topic     string `json:"topic"`
	Tone      string `json:"tone"`
	ProjectID string `json:"projectId"`
}

// validTopic extracts and validates the topic, resolving the tone. Returns
// false if an error response was already written.
func (a *API) validTopic(w http.ResponseWriter, req topicRequest) (models.Tone, bool) {
	if strings.TrimSpace(req.Topic) == "" {
		writeError(w, http.StatusBadRequest, "Topic is required.")
		return "", false
	}
	tone, err := a.resolveTone(req.Tone)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return "", false
	}
	return tone, true
}

// SimpleList returns a handler for one of the list-generating tools
// (titles, tags, hashtags, video ideas). The list kind determines the
// prompt wording and the asset type the result is stored under.
func (a *API) SimpleList(kind gateway.ListKind, assetType models.AssetType) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req topicRequest
		if !decodeBody(w, r, &req) {
			return
		}
		tone, ok := a.validTopic(w, req)
		if !ok {
			return
		}

		items, err := a.gateway.SimpleList(r.Context(), tone, req.Topic, kind)
		if err != nil {
			writeGenerationError(w, err)
			return
		}

		a.saveAsset(req.ProjectID, assetType, req.Topic, items)
		writeJSON(w, http.StatusOK, items)
	}
}

// ScriptOutline generates a structured video script outline for a topic.
func (a *API) ScriptOutline(w http.ResponseWriter, r *http.Request) {
	var req topicRequest
	if !decodeBody(w, r, &req) {
		return
	}
	tone, ok := a.validTopic(w, req)
	if !ok {
		return
	}

	result, err := a.gateway.ScriptOutline(r.Context(), tone, req.Topic)
	if err != nil {
		writeGenerationError(w, err)
		return
	}

	a.saveAsset(req.ProjectID, models.AssetScriptOutline, req.Topic, result)
	writeJSON(w, http.StatusOK, result)
}

// videoScriptRequest is the body for POST /api/tools/video-script.
type videoScriptRequest struct {
	Topic     string `json:"topic"`
	Length    string `json:"length"`
	Tone      string `json:"tone"`
	ProjectID string `json:"projectId"`
}

// VideoScript generates a full scene-by-scene video script for a topic and
// a target length description (e.g. "about 5 minutes").
func (a *API) VideoScript(w http.ResponseWriter, r *http.Request) {
	var req videoScriptRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if strings.TrimSpace(req.Topic) == "" {
		writeError(w, http.StatusBadRequest, "Topic is required.")
		return
	}
	if strings.TrimSpace(req.Length) == "" {
		writeError(w, http.StatusBadRequest, "Length is required.")
		return
	}
	tone, err := a.resolveTone(req.Tone)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	result, err := a.gateway.VideoScript(r.Context(), tone, req.Topic, req.Length)
	if err != nil {
		writeGenerationError(w, err)
		return
	}

	a.saveAsset(req.ProjectID, models.AssetVideoScript, req.Topic, result)
	writeJSON(w, http.StatusOK, result)
}

// thumbnailRequest is the body for POST /api/tools/thumbnail-ideas.
type thumbnailRequest struct {
	Title     string `json:"title"`
	Tone      string `json:"tone"`
	ProjectID string `json:"projectId"`
}

// ThumbnailIdeas generates thumbnail concepts for a video title.
func (a *API) ThumbnailIdeas(w http.ResponseWriter, r *http.Request) {
	var req thumbnailRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if strings.TrimSpace(req.Title) == "" {
		writeError(w, http.StatusBadRequest, "Title is required.")
		return
	}
	tone, err := a.resolveTone(req.Tone)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	ideas, err := a.gateway.ThumbnailIdeas(r.Context(), tone, req.Title)
	if err != nil {
		writeGenerationError(w, err)
		return
	}

	a.saveAsset(req.ProjectID, models.AssetThumbnailIdeas, req.Title, ideas)
	writeJSON(w, http.StatusOK, ideas)
}

// HooksIntros generates hook and intro pairs for a video topic.
func (a *API) HooksIntros(w http.ResponseWriter, r *http.Request) {
	var req topicRequest
	if !decodeBody(w, r, &req) {
		return
	}
	tone, ok := a.validTopic(w, req)
	if !ok {
		return
	}

	hooks, err := a.gateway.HooksAndIntros(r.Context(), tone, req.Topic)
	if err != nil {
		writeGenerationError(w, err)
		return
	}

	a.saveAsset(req.ProjectID, models.AssetHooksIntros, req.Topic, hooks)
	writeJSON(w, http.StatusOK, hooks)
}

// CommunityPosts generates community tab post ideas for a video topic.
func (a *API) CommunityPosts(w http.ResponseWriter, r *http.Request) {
	var req topicRequest
	if !decodeBody(w, r, &req) {
		return
	}
	tone, ok := a.validTopic(w, req)
	if !ok {
		return
	}

	result, err := a.gateway.CommunityPosts(r.Context(), tone, req.Topic)
	if err != nil {
		writeGenerationError(w, err)
		return
	}

	a.saveAsset(req.ProjectID, models.AssetCommunityPosts, req.Topic, result)
	writeJSON(w, http.StatusOK, result)
}

// repurposeRequest is the body for POST /api/tools/repurpose.
type repurposeRequest struct {
	Script    string `json:"script"`
	Tone      string `json:"tone"`
	ProjectID string `json:"projectId"`
}

// Repurpose turns a long-form video script into short ideas, a blog outline,
// and a tweet thread.
func (a *API) Repurpose(w http.ResponseWriter, r *http.Request) {
	var req repurposeRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if strings.TrimSpace(req.Script) == "" {
		writeError(w, http.StatusBadRequest, "Script is required.")
		return
	}
	tone, err := a.resolveTone(req.Tone)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	result, err := a.gateway.Repurpose(r.Context(), tone, req.Script)
	if err != nil {
		writeGenerationError(w, err)
		return
	}

	a.saveAsset(req.ProjectID, models.AssetRepurposedContent, req.Script, result)
	writeJSON(w, http.StatusOK, result)
}

// Package gateway implements the uniform contract between the tool surface
// and the generative backend: one tone-annotated prompt template and one
// response schema per result kind. Each operation issues exactly one request,
// parses the schema-conformant JSON response into its typed result, and
// normalizes any malformed response into ErrInvalidResponse. The gateway
// never touches the stores; callers persist results and decorate
// descriptions themselves.
package gateway

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/jonaen987-prog/Medusa-YT-Tools/internal/ai"
	"github.com/jonaen987-prog/Medusa-YT-Tools/internal/models"
)

// ErrInvalidResponse is returned whenever the backend's response cannot be
// parsed into the expected shape. Backend and transport errors pass through
// as-is; only shape violations collapse into this one generic failure.
var ErrInvalidResponse = errors.New("AI failed to generate a valid response. Please check the format and try again.")

// Gateway issues schema-constrained generation requests through a Provider.
type Gateway struct {
	provider ai.Provider
}

// New returns a Gateway using the given provider. The provider is an
// explicit dependency: credential validation happens upstream at
// construction time, not here.
func New(provider ai.Provider) *Gateway {
	return &Gateway{provider: provider}
}

// toneInstruction is appended to every prompt.
func toneInstruction(tone models.Tone) string {
	return fmt.Sprintf("\nIMPORTANT: Your response should have a %s and engaging tone of voice.", tone)
}

// generate runs one request and decodes the response into out. No retries,
// no partial results.
func (g *Gateway) generate(ctx context.Context, tone models.Tone, prompt string, schema *ai.Schema, temperature float64, out any) error {
	text, err := g.provider.GenerateJSON(ctx, prompt+toneInstruction(tone), schema, temperature)
	if err != nil {
		return err
	}
	if err := json.Unmarshal([]byte(strings.TrimSpace(text)), out); err != nil {
		slog.Error("generation response decode failed", "provider", g.provider.Name(), "error", err)
		return ErrInvalidResponse
	}
	return nil
}

// FullSeo generates the complete SEO package for a video script. A non-empty
// cta is integrated verbatim into the description prompt.
func (g *Gateway) FullSeo(ctx context.Context, tone models.Tone, script, cta string) (*models.SeoResult, error) {
	ctaInstruction := "Include a generic call-to-action to subscribe in the description."
	if cta != "" {
		ctaInstruction = fmt.Sprintf("IMPORTANT: Please seamlessly integrate the following custom call-to-action into the end of the video description: %q", cta)
	}

	prompt := fmt.Sprintf(`You are a world-class YouTube SEO strategist and content expert. Your task is to analyze the following video script and generate a complete and optimized SEO package for it.

Video Script:
---
%s
---

Based on this script, generate the following SEO components. Your response MUST be in a valid JSON format that adheres to the provided schema.
- Three unique, compelling titles.
- A detailed video description.
- 20+ relevant keywords.
- A comma-separated string of tags (under 500 characters total).
- A standard YouTube disclaimer.
- 5-10 relevant hashtags.
- A list of timestamped video chapters that logically break down the video's content.

%s`, script, ctaInstruction)

	var result models.SeoResult
	if err := g.generate(ctx, tone, prompt, fullSeoSchema, 0.7, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// ListKind selects the flavour of a simple string-list generation.
type ListKind string

const (
	ListTitles   ListKind = "titles"
	ListTags     ListKind = "tags"
	ListHashtags ListKind = "hashtags"
	ListIdeas    ListKind = "ideas"
)

// listDescriptions wires the per-kind list wording (and implied count) into
// the prompt.
var listDescriptions = map[ListKind]string{
	ListTitles:   "5 unique, catchy, and SEO-optimized YouTube titles",
	ListTags:     "15 relevant YouTube tags (as a list of strings)",
	ListHashtags: "10 relevant and popular YouTube hashtags, each starting with '#'",
	ListIdeas:    "7 creative and engaging YouTube video ideas, each as a concise title-like suggestion",
}

// SimpleList generates a flat list of strings for the given topic and kind.
func (g *Gateway) SimpleList(ctx context.Context, tone models.Tone, topic string, kind ListKind) ([]string, error) {
	desc, ok := listDescriptions[kind]
	if !ok {
		return nil, fmt.Errorf("gateway: unknown list kind %q", kind)
	}

	prompt := fmt.Sprintf(`You are a YouTube content expert and idea generator. For a video about %q, generate a list of %s. Return the response as a JSON array of strings.`, topic, desc)

	var result []string
	if err := g.generate(ctx, tone, prompt, simpleListSchema, 0.8, &result); err != nil {
		return nil, err
	}
	return result, nil
}

// ScriptOutline generates a structured video script outline for a topic.
func (g *Gateway) ScriptOutline(ctx context.Context, tone models.Tone, topic string) (*models.ScriptOutlineResult, error) {
	prompt := fmt.Sprintf(`You are an expert YouTube scriptwriter and content strategist. Your task is to create a well-structured and engaging video script outline based on the following topic. The outline should provide a clear roadmap for a creator to follow.

Video Topic: %q

Please generate a script outline with the following components. Your response MUST be in a valid JSON format that adheres to the provided schema:
- A catchy title.
- A strong hook to grab attention in the first 15-30 seconds.
- An introduction that sets the stage.
- 3 to 5 main points, each with several talking points (bullet points).
- A conclusion that summarizes the key information.
- A clear call-to-action (CTA).`, topic)

	var result models.ScriptOutlineResult
	if err := g.generate(ctx, tone, prompt, scriptOutlineSchema, 0.7, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// VideoScript generates a complete scene-by-scene script for a topic and
// desired length (free text, e.g. "about 8 minutes").
func (g *Gateway) VideoScript(ctx context.Context, tone models.Tone, topic, length string) (*models.VideoScriptResult, error) {
	prompt := fmt.Sprintf(`You are an expert YouTube scriptwriter. Your task is to write a complete, engaging, and well-paced video script based on the provided topic and desired length.

Video Topic: %q
Desired Length: %s

The script should be structured logically with clear scenes (e.g., Intro, Main Point 1, Outro). For each scene, provide the exact dialogue and a description of the suggested visuals (like B-roll, on-screen text, or graphics). The pacing should be appropriate for the specified video length.

Your response MUST be in a valid JSON format that adheres to the provided schema.`, topic, length)

	var result models.VideoScriptResult
	if err := g.generate(ctx, tone, prompt, videoScriptSchema, 0.7, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// ThumbnailIdeas generates 3-4 thumbnail concepts for a video title.
func (g *Gateway) ThumbnailIdeas(ctx context.Context, tone models.Tone, title string) ([]models.ThumbnailIdea, error) {
	prompt := fmt.Sprintf(`You are a professional YouTube thumbnail designer and click-through-rate (CTR) expert. Your task is to brainstorm 3-4 distinct, high-impact thumbnail concepts for a video with the following title. Focus on clarity, emotion, and curiosity.

Video Title: %q

For each concept, provide the following details in a JSON format matching the schema: a concept name, a description of the visuals, the exact text overlay, and a suggested color palette.`, title)

	var result []models.ThumbnailIdea
	if err := g.generate(ctx, tone, prompt, thumbnailIdeasSchema, 0.8, &result); err != nil {
		return nil, err
	}
	return result, nil
}

// HooksAndIntros generates 4 hook/introduction pairings for a topic.
func (g *Gateway) HooksAndIntros(ctx context.Context, tone models.Tone, topic string) ([]models.HookIntro, error) {
	prompt := fmt.Sprintf(`You are an expert YouTube scriptwriter specializing in viewer retention. For a video about %q, generate 4 different and compelling combinations of a hook and a short introduction.

- The hook should be a single, punchy sentence to grab attention immediately.
- The introduction should be 1-2 sentences that build on the hook and clearly state what the video is about.

Return the response as a JSON array of objects, where each object contains a 'hook' and an 'introduction'.`, topic)

	var result []models.HookIntro
	if err := g.generate(ctx, tone, prompt, hookIntroSchema, 0.9, &result); err != nil {
		return nil, err
	}
	return result, nil
}

// CommunityPosts generates text post and poll ideas for a channel topic.
func (g *Gateway) CommunityPosts(ctx context.Context, tone models.Tone, topic string) (*models.CommunityPostIdeas, error) {
	prompt := fmt.Sprintf(`You are a YouTube community manager and engagement expert. Your task is to generate ideas for the YouTube Community Tab to keep an audience engaged, based on a channel's general topic.

Channel Topic: %q

Generate a mix of engaging content. Your response MUST be in a valid JSON format that adheres to the provided schema:
- **Text Posts:** 2-3 ideas for text-based posts. These could be questions, behind-the-scenes updates, or interesting facts related to the channel topic. Each should have main content and a call-to-action.
- **Polls:** 2-3 ideas for polls. Each poll should have an interesting question and 2-4 distinct options for viewers to vote on.`, topic)

	var result models.CommunityPostIdeas
	if err := g.generate(ctx, tone, prompt, communityPostSchema, 0.8, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// Repurpose generates a cross-platform repurposing plan for a video script.
func (g *Gateway) Repurpose(ctx context.Context, tone models.Tone, script string) (*models.RepurposingResult, error) {
	prompt := fmt.Sprintf(`You are a social media and content marketing expert. Your task is to analyze the following YouTube video script and generate a content repurposing plan to maximize its reach across different platforms.

Video Script:
---
%s
---

Based on this script, generate ideas for the following formats. Your response MUST be in a valid JSON format that adheres to the provided schema:
1.  **Short-form Videos:** Create 3 distinct ideas for YouTube Shorts, TikToks, or Reels. For each, provide a concept title, identify the key hook from the script, and suggest a visual approach.
2.  **Blog Post Outline:** Create a structured outline for a blog post based on the video's content, including a title, introduction, main points (headings), and a conclusion.
3.  **Tweet Thread:** Create an engaging hook for a Twitter/X thread and a series of 3-5 tweets that summarize the video's core message.`, script)

	var result models.RepurposingResult
	if err := g.generate(ctx, tone, prompt, repurposingSchema, 0.7, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

package models

import (
	"encoding/json"
	"fmt"
	"strings"
)

// AssetType tags the payload shape of a project asset. The set is closed;
// every consumption site must handle all members exhaustively.
type AssetType string

const (
	AssetFullSeo           AssetType = "full-seo"
	AssetTitles            AssetType = "titles"
	AssetTags              AssetType = "tags"
	AssetHashtags          AssetType = "hashtags"
	AssetVideoIdeas        AssetType = "video-ideas"
	AssetScriptOutline     AssetType = "script-outline"
	AssetVideoScript       AssetType = "video-script"
	AssetHooksIntros       AssetType = "hooks-intros"
	AssetThumbnailIdeas    AssetType = "thumbnail-ideas"
	AssetCommunityPosts    AssetType = "community-posts"
	AssetRepurposedContent AssetType = "repurposed-content"
)

// AssetTypes lists every valid asset type.
var AssetTypes = []AssetType{
	AssetFullSeo,
	AssetTitles,
	AssetTags,
	AssetHashtags,
	AssetVideoIdeas,
	AssetScriptOutline,
	AssetVideoScript,
	AssetHooksIntros,
	AssetThumbnailIdeas,
	AssetCommunityPosts,
	AssetRepurposedContent,
}

// Valid reports whether t is a member of the closed asset type set.
func (t AssetType) Valid() bool {
	for _, v := range AssetTypes {
		if t == v {
			return true
		}
	}
	return false
}

// DecodePayload unmarshals an asset payload into its concrete result type.
// The returned value is a pointer to the result struct, or []string for the
// simple-list types. Unknown types are an error, never a silent fallback.
func DecodePayload(t AssetType, raw json.RawMessage) (any, error) {
	decode := func(v any) (any, error) {
		if err := json.Unmarshal(raw, v); err != nil {
			return nil, fmt.Errorf("decode %s payload: %w", t, err)
		}
		return v, nil
	}

	switch t {
	case AssetFullSeo:
		return decode(new(SeoResult))
	case AssetTitles, AssetTags, AssetHashtags, AssetVideoIdeas:
		var list []string
		if err := json.Unmarshal(raw, &list); err != nil {
			return nil, fmt.Errorf("decode %s payload: %w", t, err)
		}
		return list, nil
	case AssetScriptOutline:
		return decode(new(ScriptOutlineResult))
	case AssetVideoScript:
		return decode(new(VideoScriptResult))
	case AssetHooksIntros:
		var hooks []HookIntro
		if err := json.Unmarshal(raw, &hooks); err != nil {
			return nil, fmt.Errorf("decode %s payload: %w", t, err)
		}
		return hooks, nil
	case AssetThumbnailIdeas:
		var ideas []ThumbnailIdea
		if err := json.Unmarshal(raw, &ideas); err != nil {
			return nil, fmt.Errorf("decode %s payload: %w", t, err)
		}
		return ideas, nil
	case AssetCommunityPosts:
		return decode(new(CommunityPostIdeas))
	case AssetRepurposedContent:
		return decode(new(RepurposingResult))
	default:
		return nil, fmt.Errorf("unknown asset type %q", t)
	}
}

// FormatAsset renders an asset payload as plain markdown text for export.
func FormatAsset(a ProjectAsset) (string, error) {
	payload, err := DecodePayload(a.Type, a.Payload)
	if err != nil {
		return "", err
	}

	var b strings.Builder

	switch v := payload.(type) {
	case *SeoResult:
		b.WriteString("## Titles\n")
		for _, t := range v.Titles {
			fmt.Fprintf(&b, "- %s\n", t)
		}
		fmt.Fprintf(&b, "\n## Description\n%s\n", v.Description)
		fmt.Fprintf(&b, "\n## Keywords\n%s\n", strings.Join(v.Keywords, ", "))
		fmt.Fprintf(&b, "\n## Tags\n%s\n", v.Tags)
		fmt.Fprintf(&b, "\n## Hashtags\n%s\n", strings.Join(v.Hashtags, " "))
		b.WriteString("\n## Chapters\n")
		for _, c := range v.Chapters {
			fmt.Fprintf(&b, "%s %s\n", c.Time, c.Title)
		}
		fmt.Fprintf(&b, "\n## Disclaimer\n%s\n", v.Disclaimer)
	case []string:
		for _, item := range v {
			fmt.Fprintf(&b, "- %s\n", item)
		}
	case *ScriptOutlineResult:
		fmt.Fprintf(&b, "# %s\n\n**Hook:** %s\n\n%s\n", v.Title, v.Hook, v.Introduction)
		for _, p := range v.MainPoints {
			fmt.Fprintf(&b, "\n## %s\n", p.Title)
			for _, tp := range p.TalkingPoints {
				fmt.Fprintf(&b, "- %s\n", tp)
			}
		}
		fmt.Fprintf(&b, "\n## Conclusion\n%s\n\n**CTA:** %s\n", v.Conclusion, v.CTA)
	case *VideoScriptResult:
		fmt.Fprintf(&b, "# %s\n", v.Title)
		for _, s := range v.Script {
			fmt.Fprintf(&b, "\n## %s\n%s\n\n*Visuals:* %s\n", s.Scene, s.Dialogue, s.Visuals)
		}
	case []HookIntro:
		for i, h := range v {
			fmt.Fprintf(&b, "## Option %d\n**Hook:** %s\n\n%s\n\n", i+1, h.Hook, h.Introduction)
		}
	case []ThumbnailIdea:
		for _, idea := range v {
			fmt.Fprintf(&b, "## %s\n- Visuals: %s\n- Text overlay: %s\n- Colors: %s\n\n",
				idea.Concept, idea.Visuals, idea.TextOverlay, idea.Colors)
		}
	case *CommunityPostIdeas:
		b.WriteString("## Text Posts\n")
		for _, p := range v.TextPosts {
			fmt.Fprintf(&b, "- %s (%s)\n", p.Content, p.CTA)
		}
		b.WriteString("\n## Polls\n")
		for _, p := range v.Polls {
			fmt.Fprintf(&b, "- %s: %s\n", p.Question, strings.Join(p.Options, " / "))
		}
	case *RepurposingResult:
		b.WriteString("## Shorts\n")
		for _, s := range v.Shorts {
			fmt.Fprintf(&b, "- %s — hook: %s; visuals: %s\n", s.Idea, s.ScriptHook, s.VisualSuggestion)
		}
		fmt.Fprintf(&b, "\n## Blog Outline\n# %s\n%s\n", v.BlogOutline.Title, v.BlogOutline.Introduction)
		for _, p := range v.BlogOutline.MainPoints {
			fmt.Fprintf(&b, "- %s\n", p)
		}
		fmt.Fprintf(&b, "%s\n", v.BlogOutline.Conclusion)
		fmt.Fprintf(&b, "\n## Tweet Thread\n%s\n", v.TweetThread.Hook)
		for i, tw := range v.TweetThread.Tweets {
			fmt.Fprintf(&b, "%d. %s\n", i+1, tw)
		}
	default:
		return "", fmt.Errorf("unhandled payload type %T for asset type %q", payload, a.Type)
	}

	return strings.TrimSpace(b.String()), nil
}

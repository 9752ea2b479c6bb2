package models

// Result payload types returned by the generation gateway. Field names match
// the backend response schemas and the stored asset format exactly.

// Chapter is one timestamped chapter marker in a video description.
type Chapter struct {
	Time  string `json:"time"`
	Title string `json:"title"`
}

// SeoResult is the full SEO package for a video script.
type SeoResult struct {
	Titles      []string  `json:"titles"`
	Description string    `json:"description"`
	Keywords    []string  `json:"keywords"`
	Tags        string    `json:"tags"`
	Disclaimer  string    `json:"disclaimer"`
	Hashtags    []string  `json:"hashtags"`
	Chapters    []Chapter `json:"chapters"`
}

// OutlinePoint is one main section of a script outline.
type OutlinePoint struct {
	Title         string   `json:"title"`
	TalkingPoints []string `json:"talkingPoints"`
}

// ScriptOutlineResult is a structured video script outline.
type ScriptOutlineResult struct {
	Title        string         `json:"title"`
	Hook         string         `json:"hook"`
	Introduction string         `json:"introduction"`
	MainPoints   []OutlinePoint `json:"mainPoints"`
	Conclusion   string         `json:"conclusion"`
	CTA          string         `json:"cta"`
}

// ScriptScene is one scene of a full video script.
type ScriptScene struct {
	Scene    string `json:"scene"`
	Dialogue string `json:"dialogue"`
	Visuals  string `json:"visuals"`
}

// VideoScriptResult is a complete scene-by-scene video script.
type VideoScriptResult struct {
	Title  string        `json:"title"`
	Script []ScriptScene `json:"script"`
}

// ThumbnailIdea is one thumbnail concept.
type ThumbnailIdea struct {
	Concept     string `json:"concept"`
	Visuals     string `json:"visuals"`
	TextOverlay string `json:"textOverlay"`
	Colors      string `json:"colors"`
}

// HookIntro is one hook/introduction pairing.
type HookIntro struct {
	Hook         string `json:"hook"`
	Introduction string `json:"introduction"`
}

// TextPost is one text-based community post idea.
type TextPost struct {
	Content string `json:"content"`
	CTA     string `json:"cta"`
}

// Poll is one community poll idea.
type Poll struct {
	Question string   `json:"question"`
	Options  []string `json:"options"`
}

// CommunityPostIdeas is a mix of text posts and polls for the community tab.
type CommunityPostIdeas struct {
	TextPosts []TextPost `json:"textPosts"`
	Polls     []Poll     `json:"polls"`
}

// ShortIdea is one short-form video idea derived from a script.
type ShortIdea struct {
	Idea             string `json:"idea"`
	ScriptHook       string `json:"scriptHook"`
	VisualSuggestion string `json:"visualSuggestion"`
}

// BlogOutline is a blog post outline derived from a script.
type BlogOutline struct {
	Title        string   `json:"title"`
	Introduction string   `json:"introduction"`
	MainPoints   []string `json:"mainPoints"`
	Conclusion   string   `json:"conclusion"`
}

// TweetThread is a promotional thread derived from a script.
type TweetThread struct {
	Hook   string   `json:"hook"`
	Tweets []string `json:"tweets"`
}

// RepurposingResult is a cross-platform content repurposing plan.
type RepurposingResult struct {
	Shorts      []ShortIdea `json:"shorts"`
	BlogOutline BlogOutline `json:"blogOutline"`
	TweetThread TweetThread `json:"tweetThread"`
}

package gateway

import "github.com/jonaen987-prog/Medusa-YT-Tools/internal/ai"

// Response schemas, one per result kind. Field sets and required-ness are
// fixed data shared with previously stored assets — do not change them.

var fullSeoSchema = ai.Object(map[string]*ai.Schema{
	"titles":      ai.StringArray("Three different, catchy, and SEO-optimized titles for the video. Each title should be under 70 characters."),
	"description": ai.String("A detailed and engaging video description of about 200-300 words. It should summarize the script, include relevant keywords naturally, and have a clear call-to-action."),
	"keywords":    ai.StringArray("A list of at least 20 relevant keywords and long-tail keywords for the video."),
	"tags":        ai.String("A single string of comma-separated tags. The total length of the string must be under 500 characters."),
	"disclaimer":  ai.String("A standard, generic disclaimer for YouTube videos, mentioning things like fair use or affiliate links if applicable based on common practice."),
	"hashtags":    ai.StringArray("A list of 5 to 10 relevant hashtags, each starting with '#'."),
	"chapters": ai.Array("A list of video chapters based on the script's content flow. The first chapter should always start at '00:00'.",
		ai.Object(map[string]*ai.Schema{
			"time":  ai.String("Timestamp for the chapter start, e.g., '00:00' or '01:23'."),
			"title": ai.String("A concise and descriptive title for the chapter."),
		}, "time", "title")),
}, "titles", "description", "keywords", "tags", "disclaimer", "hashtags", "chapters")

var simpleListSchema = ai.StringArray("")

var scriptOutlineSchema = ai.Object(map[string]*ai.Schema{
	"title":        ai.String("A catchy, SEO-friendly title for the video."),
	"hook":         ai.String("A compelling opening sentence or two (under 30 seconds) to grab the viewer's attention."),
	"introduction": ai.String("A brief introduction (1-2 paragraphs) that sets up the topic and tells viewers what to expect."),
	"mainPoints": ai.Array("A list of 3-5 main sections for the video body. Each section should represent a key part of the content.",
		ai.Object(map[string]*ai.Schema{
			"title":         ai.String("A clear heading for this section of the video."),
			"talkingPoints": ai.StringArray("A list of bullet points or key ideas to discuss within this section."),
		}, "title", "talkingPoints")),
	"conclusion": ai.String("A summary of the key takeaways from the video."),
	"cta":        ai.String("A clear call-to-action, such as asking viewers to like, subscribe, or check out a link."),
}, "title", "hook", "introduction", "mainPoints", "conclusion", "cta")

var videoScriptSchema = ai.Object(map[string]*ai.Schema{
	"title": ai.String("A catchy, SEO-friendly title for the video."),
	"script": ai.Array("The full video script, broken down into scenes or sections.",
		ai.Object(map[string]*ai.Schema{
			"scene":    ai.String("The name of the scene (e.g., 'Intro - Hook', 'Main Point 1: The Problem', 'Outro - CTA')."),
			"dialogue": ai.String("The exact words to be spoken by the narrator or host."),
			"visuals":  ai.String("A description of the on-screen visuals, B-roll, text overlays, or graphics for this scene."),
		}, "scene", "dialogue", "visuals")),
}, "title", "script")

var communityPostSchema = ai.Object(map[string]*ai.Schema{
	"textPosts": ai.Array("A list of 2-3 engaging text-based community posts.",
		ai.Object(map[string]*ai.Schema{
			"content": ai.String("The main body of the text post (e.g., a question, a behind-the-scenes update, or a fun fact)."),
			"cta":     ai.String("A call-to-action for the post (e.g., 'Let me know in the comments!', 'Check out my latest video!')."),
		}, "content", "cta")),
	"polls": ai.Array("A list of 2-3 engaging poll ideas.",
		ai.Object(map[string]*ai.Schema{
			"question": ai.String("The poll question to ask the community."),
			"options":  ai.StringArray("A list of 2-4 options for the poll."),
		}, "question", "options")),
}, "textPosts", "polls")

var thumbnailIdeasSchema = ai.Array("",
	ai.Object(map[string]*ai.Schema{
		"concept":     ai.String("A short, catchy name for the thumbnail concept (e.g., 'The Shocking Reveal' or 'Minimalist Tech')."),
		"visuals":     ai.String("A detailed description of the main visual elements, background, and subject placement. Be specific about imagery."),
		"textOverlay": ai.String("The exact text to be placed on the thumbnail. Should be short, punchy, and intriguing."),
		"colors":      ai.String("Recommended color palette (e.g., 'Vibrant yellow and black for high contrast')."),
	}, "concept", "visuals", "textOverlay", "colors"))

var hookIntroSchema = ai.Array("",
	ai.Object(map[string]*ai.Schema{
		"hook":         ai.String("A compelling opening sentence (under 15 seconds) to grab the viewer's attention."),
		"introduction": ai.String("A brief introduction (1-2 sentences) that expands on the hook and sets up the video's topic."),
	}, "hook", "introduction"))

var repurposingSchema = ai.Object(map[string]*ai.Schema{
	"shorts": ai.Array("A list of 3 distinct ideas for short-form videos (Shorts, TikToks, Reels) based on the script.",
		ai.Object(map[string]*ai.Schema{
			"idea":             ai.String("A catchy title or concept for the short video."),
			"scriptHook":       ai.String("The key sentence or moment from the original script to use as the hook."),
			"visualSuggestion": ai.String("A brief suggestion for visuals or on-screen text."),
		}, "idea", "scriptHook", "visualSuggestion")),
	"blogOutline": &ai.Schema{
		Type:        ai.TypeObject,
		Description: "A structured outline for a blog post or article based on the video script.",
		Properties: map[string]*ai.Schema{
			"title":        ai.String("An SEO-friendly headline for the blog post."),
			"introduction": ai.String("A brief introductory paragraph."),
			"mainPoints":   ai.StringArray("A list of main headings (H2s) for the article body."),
			"conclusion":   ai.String("A concluding paragraph summarizing the key takeaways."),
		},
		Required: []string{"title", "introduction", "mainPoints", "conclusion"},
	},
	"tweetThread": &ai.Schema{
		Type:        ai.TypeObject,
		Description: "An idea for a Twitter/X thread to promote the video.",
		Properties: map[string]*ai.Schema{
			"hook":   ai.String("An engaging opening tweet (the hook) to capture attention."),
			"tweets": ai.StringArray("A list of 3-5 subsequent tweets that summarize the video's key points."),
		},
		Required: []string{"hook", "tweets"},
	},
}, "shorts", "blogOutline", "tweetThread")

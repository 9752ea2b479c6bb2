package models

import "strings"

// CtaLink is a single labelled link in the brand kit.
type CtaLink struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	URL   string `json:"url"`
}

// BrandKit is the single user-authored channel identity record. It is
// replaced wholesale on every save and merged into generated descriptions
// on demand.
type BrandKit struct {
	ChannelName        string    `json:"channelName"`
	ChannelDescription string    `json:"channelDescription"`
	TargetAudience     string    `json:"targetAudience"`
	CtaLinks           []CtaLink `json:"ctaLinks"`
	StandardDisclaimer string    `json:"standardDisclaimer"`
}

// DefaultBrandKit returns the all-empty record used when nothing is stored.
// CtaLinks is a non-nil empty slice so the serialized form is always an array.
func DefaultBrandKit() BrandKit {
	return BrandKit{CtaLinks: []CtaLink{}}
}

// DescriptionOpts selects which brand kit sections get appended to a
// generated description. Each section is independently toggled.
type DescriptionOpts struct {
	ChannelDescription bool
	Links              bool
	Disclaimer         bool
}

// ApplyToDescription appends the enabled brand kit sections to a generated
// description. The section order and markers are fixed: channel description,
// then CTA links, then the disclaimer.
func (k BrandKit) ApplyToDescription(description string, opts DescriptionOpts) string {
	var b strings.Builder
	b.WriteString(description)

	if opts.ChannelDescription && k.ChannelDescription != "" {
		b.WriteString("\n\n--- About My Channel ---\n")
		b.WriteString(k.ChannelDescription)
	}
	if opts.Links && len(k.CtaLinks) > 0 {
		lines := make([]string, len(k.CtaLinks))
		for i, link := range k.CtaLinks {
			lines[i] = link.Label + ": " + link.URL
		}
		b.WriteString("\n\n--- Links & Resources ---\n")
		b.WriteString(strings.Join(lines, "\n"))
	}
	if opts.Disclaimer && k.StandardDisclaimer != "" {
		b.WriteString("\n\n---\n")
		b.WriteString(k.StandardDisclaimer)
	}

	return strings.TrimSpace(b.String())
}

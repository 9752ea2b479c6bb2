// Package models defines the persisted record types shared across the
// application: the tone preference, the brand kit, projects with their
// generated assets, and the typed result payloads returned by the
// generation gateway. JSON field names are part of the stored-data format
// and must not change.
package models

// Tone selects the stylistic instruction appended to every generation prompt.
type Tone string

const (
	ToneProfessional Tone = "Professional"
	ToneCasual       Tone = "Casual"
	ToneWitty        Tone = "Witty"
	ToneEnthusiastic Tone = "Enthusiastic"
	ToneInformative  Tone = "Informative"
)

// DefaultTone is returned whenever the stored value is absent or invalid.
const DefaultTone = ToneProfessional

// Tones lists every valid tone, in display order.
var Tones = []Tone{
	ToneProfessional,
	ToneCasual,
	ToneWitty,
	ToneEnthusiastic,
	ToneInformative,
}

// Valid reports whether t is a member of the closed tone set.
func (t Tone) Valid() bool {
	for _, v := range Tones {
		if t == v {
			return true
		}
	}
	return false
}

package profile

import "time"

// Field names a profile attribute that can be rewritten by an update request.
type Field string

const (
	FieldTikTok    Field = "tiktokHandle"
	FieldInstagram Field = "instagramHandle"
	FieldBrief     Field = "brief"
)

// Profile captures the per-creator state persisted between conversations.
type Profile struct {
	ID              string    `json:"id"`
	TikTokHandle    string    `json:"tiktokHandle"`
	InstagramHandle string    `json:"instagramHandle,omitempty"`
	Brief           string    `json:"brief"`
	LastIntent      string    `json:"lastIntent,omitempty"`
	LastInteraction time.Time `json:"lastInteraction"`
}

// Handle returns the display handle used to personalize replies.
func (p Profile) Handle() string {
	if p.TikTokHandle != "" {
		return p.TikTokHandle
	}
	return "Creator"
}

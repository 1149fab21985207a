package domain

import (
	"strings"
	"time"
)

// Hub is the owner-configured collection of links shown at one public URL (link-in-bio)
type Hub struct {
	ID         int64     `json:"id"`
	Slug       string    `json:"slug"`
	OwnerID    string    `json:"owner_id"`
	Title      string    `json:"title"`
	Theme      Theme     `json:"theme"`
	TotalViews int64     `json:"total_views"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
	Links      []Link    `json:"links,omitempty"` // Populated when fetching full hub details
}

// Theme is the public page styling.
type Theme struct {
	BackgroundColor string `json:"background_color"`
	TextColor       string `json:"text_color"`
	ButtonColor     string `json:"button_color"`
	AvatarURL       string `json:"avatar_url,omitempty"`
}

// DefaultTheme is applied to new hubs that leave colors unset.
var DefaultTheme = Theme{
	BackgroundColor: "#ffffff",
	TextColor:       "#000000",
	ButtonColor:     "#007bff",
}

// Merge returns t with every non-empty field of other written over it.
func (t Theme) Merge(other Theme) Theme {
	if other.BackgroundColor != "" {
		t.BackgroundColor = other.BackgroundColor
	}
	if other.TextColor != "" {
		t.TextColor = other.TextColor
	}
	if other.ButtonColor != "" {
		t.ButtonColor = other.ButtonColor
	}
	if other.AvatarURL != "" {
		t.AvatarURL = other.AvatarURL
	}
	return t
}

// NormalizeSlug trims and lower-cases a slug; slugs are stored and looked up in this form.
func NormalizeSlug(slug string) string {
	return strings.ToLower(strings.TrimSpace(slug))
}

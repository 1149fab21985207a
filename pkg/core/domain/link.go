package domain

import "time"

// Link is one visibility-gated destination inside a hub.
type Link struct {
	ID          int64     `json:"id"`
	HubID       int64     `json:"hub_id"`
	OriginalURL string    `json:"original_url"`
	Title       string    `json:"title"`
	Priority    float64   `json:"priority"`
	Active      bool      `json:"is_active"`
	Rules       []Rule    `json:"rules"` // Handled as JSON text in SQLite
	Clicks      int64     `json:"clicks"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// LinkPatch carries a partial update. Nil fields are left untouched.
type LinkPatch struct {
	OriginalURL *string  `json:"original_url,omitempty"`
	Title       *string  `json:"title,omitempty"`
	Priority    *float64 `json:"priority,omitempty"`
	Active      *bool    `json:"is_active,omitempty"`
	Rules       *[]Rule  `json:"rules,omitempty"`
}

// Apply copies the non-nil fields of p onto l.
func (p LinkPatch) Apply(l *Link) {
	if p.OriginalURL != nil {
		l.OriginalURL = *p.OriginalURL
	}
	if p.Title != nil {
		l.Title = *p.Title
	}
	if p.Priority != nil {
		l.Priority = *p.Priority
	}
	if p.Active != nil {
		l.Active = *p.Active
	}
	if p.Rules != nil {
		l.Rules = *p.Rules
	}
}

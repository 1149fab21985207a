package resolver

import (
	"time"

	"github.com/wadjakorntonsri/go-link-hub/pkg/core/domain"
)

const (
	desktopUA = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"
	mobileUA  = "Mozilla/5.0 (iPhone; CPU iPhone OS 17_0 like Mac OS X) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/17.0 Mobile/15E148 Safari/604.1"
	tabletUA  = "Mozilla/5.0 (iPad; CPU OS 17_0 like Mac OS X) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/17.0 Mobile/15E148 Safari/604.1"
)

// at returns a fixed date with the given wall clock.
func at(hour, minute int) time.Time {
	return time.Date(2024, 1, 25, hour, minute, 0, 0, time.UTC)
}

func ctxAt(hour, minute int) domain.RequestContext {
	return domain.NewRequestContext(desktopUA, nil, at(hour, minute))
}

func link(id int64, rules ...domain.Rule) domain.Link {
	return domain.Link{ID: id, Title: "link", OriginalURL: "https://example.com", Active: true, Rules: rules}
}

func show(kind domain.RuleKind, value string) domain.Rule {
	return domain.Rule{Kind: kind, Value: value, Action: domain.ActionShow}
}

func hide(kind domain.RuleKind, value string) domain.Rule {
	return domain.Rule{Kind: kind, Value: value, Action: domain.ActionHide}
}

func ids(links []domain.Link) []int64 {
	out := make([]int64, 0, len(links))
	for _, l := range links {
		out = append(out, l.ID)
	}
	return out
}

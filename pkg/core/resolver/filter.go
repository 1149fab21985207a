package resolver

import (
	"github.com/wadjakorntonsri/go-link-hub/pkg/core/domain"
)

/*
 * Link filtering.
 *
 * Each rule is an independent gate, folded in stored order:
 *   1. inactive links are dropped before any rule is read
 *   2. show + not matched: drop, stop
 *   3. hide + matched: drop, stop
 *   4. otherwise continue to the next rule
 *
 * A link survives only if every show rule matches and no hide rule
 * matches. There is no OR across rules.
 *
 * Rule order can only change which rule is reported as the reason, never
 * the verdict: a link reaching a matching hide rule is dropped there, and
 * every show rule before it must already have matched.
 */

// Reason names why a link was kept or dropped.
type Reason string

const (
	ReasonVisible       Reason = "visible"
	ReasonInactive      Reason = "inactive"
	ReasonShowUnmatched Reason = "show-unmatched"
	ReasonHideMatched   Reason = "hide-matched"
)

// Verdict is the filter outcome for one link.
type Verdict struct {
	LinkID    int64
	Visible   bool
	Reason    Reason
	RuleIndex int // rule that decided the verdict, -1 when none did
}

// Filter returns the links visible for rc, in input order.
// The input slice is not modified.
func Filter(links []domain.Link, rc domain.RequestContext) []domain.Link {
	e := newEvaluation(rc)
	out := make([]domain.Link, 0, len(links))
	for _, link := range links {
		if e.verdict(link).Visible {
			out = append(out, link)
		}
	}
	return out
}

// Explain reports the verdict for a single link and the rule that decided it.
func Explain(link domain.Link, rc domain.RequestContext) Verdict {
	return newEvaluation(rc).verdict(link)
}

func (e *evaluation) verdict(link domain.Link) Verdict {
	v := Verdict{LinkID: link.ID, RuleIndex: -1}
	if !link.Active {
		v.Reason = ReasonInactive
		return v
	}

	for i, rule := range link.Rules {
		matched := e.matches(rule)
		switch {
		case rule.Action == domain.ActionShow && !matched:
			v.Reason = ReasonShowUnmatched
			v.RuleIndex = i
			return v
		case rule.Action == domain.ActionHide && matched:
			v.Reason = ReasonHideMatched
			v.RuleIndex = i
			return v
		}
	}

	v.Visible = true
	v.Reason = ReasonVisible
	return v
}

package resolver

import (
	"time"

	"github.com/wadjakorntonsri/go-link-hub/pkg/core/domain"
)

// Resolve filters links for rc and ranks the survivors.
// It never fails; the result may be empty but is never nil.
func Resolve(links []domain.Link, rc domain.RequestContext) []domain.Link {
	return Rank(Filter(links, rc))
}

// Observer receives read-only summaries of each resolution.
type Observer interface {
	ObserveVerdict(v Verdict)
	ObserveResolve(total, visible int, d time.Duration)
}

// Resolver runs Resolve and reports what it decided to an Observer.
// A zero Resolver behaves exactly like Resolve.
type Resolver struct {
	observer Observer
}

// New creates a Resolver. obs may be nil.
func New(obs Observer) *Resolver {
	return &Resolver{observer: obs}
}

// Resolve is the observed form of the package-level Resolve.
func (r *Resolver) Resolve(links []domain.Link, rc domain.RequestContext) []domain.Link {
	if r == nil || r.observer == nil {
		return Resolve(links, rc)
	}

	start := time.Now()
	e := newEvaluation(rc)
	visible := make([]domain.Link, 0, len(links))
	for _, link := range links {
		v := e.verdict(link)
		r.observer.ObserveVerdict(v)
		if v.Visible {
			visible = append(visible, link)
		}
	}
	out := Rank(visible)
	r.observer.ObserveResolve(len(links), len(out), time.Since(start))
	return out
}

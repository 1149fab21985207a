// Package resolver decides which hub links a visitor sees and in what order.
package resolver

import (
	"github.com/wadjakorntonsri/go-link-hub/pkg/core/domain"
)

/*
 * Rule evaluation.
 *
 * Matches answers "does this rule's condition hold for this request",
 * ignoring the rule's action. The filter turns that into a gate.
 *
 * Kinds:
 *   - time: HH:MM-HH:MM on the request clock, inclusive, wraps past midnight
 *   - device: comma list of mobile/desktop/tablet against the classified UA
 *   - location: comma list compared to postal code, city, region, country
 *
 * Malformed values never fail the request. A time value that does not
 * parse, or a device/location list with no entries, is a non-match. For a
 * show rule that hides the link; for a hide rule it leaves the link alone.
 *
 * Unknown visitor location is a non-match. There is no "assume visible"
 * fallback for location rules.
 */

// Matches reports whether rule's condition currently holds for rc.
func Matches(rule domain.Rule, rc domain.RequestContext) bool {
	e := newEvaluation(rc)
	return e.matches(rule)
}

// evaluation caches the device class so one request classifies its UA once.
type evaluation struct {
	rc         domain.RequestContext
	device     domain.DeviceClass
	classified bool
}

func newEvaluation(rc domain.RequestContext) *evaluation {
	return &evaluation{rc: rc}
}

func (e *evaluation) deviceClass() domain.DeviceClass {
	if !e.classified {
		e.device = ClassifyDevice(e.rc.UserAgent)
		e.classified = true
	}
	return e.device
}

func (e *evaluation) matches(rule domain.Rule) bool {
	switch rule.Kind {
	case domain.RuleTime:
		return matchTime(rule.Value, e.rc)
	case domain.RuleDevice:
		return matchDevice(rule.Value, e.deviceClass())
	case domain.RuleLocation:
		return matchLocation(rule.Value, e.rc.Location)
	default:
		return false
	}
}

func matchTime(value string, rc domain.RequestContext) bool {
	w, err := domain.ParseTimeWindow(value)
	if err != nil {
		return false
	}
	current := rc.Now.Hour()*60 + rc.Now.Minute()
	return w.Contains(current)
}

func matchDevice(value string, device domain.DeviceClass) bool {
	for _, target := range domain.SplitValues(value) {
		if domain.DeviceClass(target) == device {
			return true
		}
	}
	return false
}

// matchLocation compares each target against the visitor's fields from most
// to least specific. A hit at any level counts.
func matchLocation(value string, loc *domain.UserLocation) bool {
	if loc == nil {
		return false
	}
	fields := [...]string{
		domain.Fold(loc.PostalCode),
		domain.Fold(loc.City),
		domain.Fold(loc.Region),
		domain.Fold(loc.Country),
	}
	for _, target := range domain.SplitValues(value) {
		for _, f := range fields {
			if f != "" && f == target {
				return true
			}
		}
	}
	return false
}

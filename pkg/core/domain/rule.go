package domain

import (
	"errors"
	"strings"

	"golang.org/x/text/cases"
)

// RuleKind selects how a rule's value is interpreted.
type RuleKind string

const (
	RuleTime     RuleKind = "time"
	RuleDevice   RuleKind = "device"
	RuleLocation RuleKind = "location"
)

// RuleAction decides what a matching rule does to its link.
type RuleAction string

const (
	ActionShow RuleAction = "show"
	ActionHide RuleAction = "hide"
)

// Rule is one visibility condition attached to a link.
type Rule struct {
	Kind   RuleKind   `json:"type"`
	Value  string     `json:"value"`
	Action RuleAction `json:"action"`
}

// TimeWindow is a daily clock window in minutes since midnight.
// Start > End means the window wraps past midnight.
type TimeWindow struct {
	Start int
	End   int
}

// Contains reports whether minute-of-day m falls inside the window, both ends inclusive.
func (w TimeWindow) Contains(m int) bool {
	if w.Start <= w.End {
		return m >= w.Start && m <= w.End
	}
	return m >= w.Start || m <= w.End
}

var errBadClock = errors.New("time window must be HH:MM-HH:MM")

// ParseTimeWindow parses "HH:MM-HH:MM" (24-hour clock).
func ParseTimeWindow(value string) (TimeWindow, error) {
	start, end, ok := strings.Cut(value, "-")
	if !ok {
		return TimeWindow{}, errBadClock
	}
	s, err := parseClock(start)
	if err != nil {
		return TimeWindow{}, err
	}
	e, err := parseClock(end)
	if err != nil {
		return TimeWindow{}, err
	}
	return TimeWindow{Start: s, End: e}, nil
}

// parseClock converts "H:MM" or "HH:MM" to minutes since midnight.
func parseClock(s string) (int, error) {
	hh, mm, ok := strings.Cut(strings.TrimSpace(s), ":")
	if !ok || len(hh) < 1 || len(hh) > 2 || len(mm) != 2 {
		return 0, errBadClock
	}
	h, ok := atoi(hh)
	if !ok || h > 23 {
		return 0, errBadClock
	}
	m, ok := atoi(mm)
	if !ok || m > 59 {
		return 0, errBadClock
	}
	return h*60 + m, nil
}

// atoi accepts ASCII digits only, so signs and spaces are rejected.
func atoi(s string) (int, bool) {
	n := 0
	for _, c := range s {
		if c < '0' || c > '9' {
			return 0, false
		}
		n = n*10 + int(c-'0')
	}
	return n, true
}

// SplitValues splits a comma-separated rule value into trimmed, case-folded,
// non-empty entries.
func SplitValues(value string) []string {
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if f := Fold(p); f != "" {
			out = append(out, f)
		}
	}
	return out
}

// Fold trims s and applies Unicode case folding so "ZÜRICH" equals "zürich".
func Fold(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	// A Caser keeps state between calls; a fresh one per call is goroutine safe.
	return cases.Fold().String(s)
}

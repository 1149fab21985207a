package domain

import "time"

// DeviceClass is the coarse device category a rule can target.
type DeviceClass string

const (
	DeviceMobile  DeviceClass = "mobile"
	DeviceDesktop DeviceClass = "desktop"
	DeviceTablet  DeviceClass = "tablet"
)

// Valid reports whether d is one of the known classes.
func (d DeviceClass) Valid() bool {
	switch d {
	case DeviceMobile, DeviceDesktop, DeviceTablet:
		return true
	}
	return false
}

// UserLocation is the visitor's resolved location. Any field may be empty.
type UserLocation struct {
	Country    string `json:"country,omitempty"`
	Region     string `json:"region,omitempty"` // State
	City       string `json:"city,omitempty"`
	PostalCode string `json:"postalCode,omitempty"`
}

// IsZero reports whether no field is set.
func (l UserLocation) IsZero() bool {
	return l.Country == "" && l.Region == "" && l.City == "" && l.PostalCode == ""
}

// RequestContext is the per-request snapshot links are evaluated against.
// Now is supplied by the caller; evaluation never reads the wall clock.
type RequestContext struct {
	UserAgent string
	Location  *UserLocation // nil when the visitor's location is unknown
	Now       time.Time
}

// NewRequestContext builds a context. An all-empty location is stored as unknown.
func NewRequestContext(userAgent string, loc *UserLocation, now time.Time) RequestContext {
	if loc != nil && loc.IsZero() {
		loc = nil
	}
	return RequestContext{UserAgent: userAgent, Location: loc, Now: now}
}

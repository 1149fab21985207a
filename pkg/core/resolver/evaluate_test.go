package resolver

import (
	"testing"
	"time"

	"github.com/wadjakorntonsri/go-link-hub/pkg/core/domain"
)

func TestMatches_TimeSameDay(t *testing.T) {
	rule := show(domain.RuleTime, "09:00-17:00")

	cases := []struct {
		hour, minute int
		want         bool
	}{
		{8, 59, false},
		{9, 0, true},
		{10, 0, true},
		{17, 0, true},
		{17, 1, false},
		{20, 0, false},
	}
	for _, c := range cases {
		if got := Matches(rule, ctxAt(c.hour, c.minute)); got != c.want {
			t.Errorf("Matches(09:00-17:00) at %02d:%02d = %v, want %v", c.hour, c.minute, got, c.want)
		}
	}
}

func TestMatches_TimeCrossesMidnight(t *testing.T) {
	rule := show(domain.RuleTime, "23:00-02:00")

	cases := []struct {
		hour, minute int
		want         bool
	}{
		{23, 30, true},
		{0, 0, true},
		{1, 30, true},
		{2, 0, true},
		{2, 1, false},
		{12, 0, false},
		{22, 59, false},
	}
	for _, c := range cases {
		if got := Matches(rule, ctxAt(c.hour, c.minute)); got != c.want {
			t.Errorf("Matches(23:00-02:00) at %02d:%02d = %v, want %v", c.hour, c.minute, got, c.want)
		}
	}
}

func TestMatches_TimeUsesContextClockOnly(t *testing.T) {
	rule := show(domain.RuleTime, "09:00-10:00")
	loc := time.FixedZone("UTC+5", 5*3600)

	// 04:30 UTC is 09:30 in the context's own zone; no conversion is applied.
	rc := domain.NewRequestContext(desktopUA, nil, time.Date(2024, 1, 25, 9, 30, 0, 0, loc))
	if !Matches(rule, rc) {
		t.Errorf("Matches() = false, want true for local 09:30")
	}
}

func TestMatches_TimeMalformedNeverMatches(t *testing.T) {
	values := []string{
		"",
		"0900-1700",
		"09:00",
		"9-17",
		"24:00-01:00",
		"09:60-10:00",
		"ab:cd-ef:gh",
		"+9:00-10:00",
		"09:00-17:00-18:00",
	}
	for _, v := range values {
		if Matches(show(domain.RuleTime, v), ctxAt(12, 0)) {
			t.Errorf("Matches(%q) = true, want false", v)
		}
	}
}

func TestMatches_TimeToleratesSpacesAndSingleDigitHour(t *testing.T) {
	if !Matches(show(domain.RuleTime, " 9:00 - 17:00 "), ctxAt(12, 0)) {
		t.Errorf("Matches(\" 9:00 - 17:00 \") = false, want true")
	}
}

func TestMatches_Device(t *testing.T) {
	cases := []struct {
		name  string
		value string
		ua    string
		want  bool
	}{
		{"mobile rule, desktop visitor", "mobile", desktopUA, false},
		{"mobile rule, mobile visitor", "mobile", mobileUA, true},
		{"tablet rule, tablet visitor", "tablet", tabletUA, true},
		{"list with spaces and case", " Mobile , TABLET ", tabletUA, true},
		{"empty UA defaults to desktop", "desktop", "", true},
		{"unknown UA defaults to desktop", "desktop", "curl/8.4.0", true},
		{"empty list never matches", " , ", desktopUA, false},
		{"unknown device never matches", "watch", desktopUA, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			rc := domain.NewRequestContext(c.ua, nil, at(12, 0))
			if got := Matches(show(domain.RuleDevice, c.value), rc); got != c.want {
				t.Errorf("Matches(%q) = %v, want %v", c.value, got, c.want)
			}
		})
	}
}

func TestMatches_Location(t *testing.T) {
	mumbai := &domain.UserLocation{Country: "India", Region: "Maharashtra", City: "Mumbai", PostalCode: "400001"}

	cases := []struct {
		name  string
		value string
		loc   *domain.UserLocation
		want  bool
	}{
		{"unknown location is strict", "India,Mumbai", nil, false},
		{"city match", "India,Mumbai", &domain.UserLocation{City: "Mumbai"}, true},
		{"country match", "india", mumbai, true},
		{"region match", "MAHARASHTRA", mumbai, true},
		{"postal match", "400001", mumbai, true},
		{"no field matches", "Delhi,110001", mumbai, false},
		{"empty visitor fields never match empty targets", ",", &domain.UserLocation{City: "Mumbai"}, false},
		{"unicode case folding", "zürich", &domain.UserLocation{City: "ZÜRICH"}, true},
		{"trimmed targets", "  Mumbai  ", mumbai, true},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			rc := domain.NewRequestContext(desktopUA, c.loc, at(12, 0))
			if got := Matches(show(domain.RuleLocation, c.value), rc); got != c.want {
				t.Errorf("Matches(%q) = %v, want %v", c.value, got, c.want)
			}
		})
	}
}

func TestMatches_EmptyLocationObjectIsUnknown(t *testing.T) {
	rc := domain.NewRequestContext(desktopUA, &domain.UserLocation{}, at(12, 0))
	if rc.Location != nil {
		t.Fatalf("Location = %+v, want nil for an all-empty location", rc.Location)
	}
	if Matches(show(domain.RuleLocation, "India"), rc) {
		t.Errorf("Matches() = true, want false")
	}
}

func TestMatches_UnknownKind(t *testing.T) {
	rule := domain.Rule{Kind: "weather", Value: "sunny", Action: domain.ActionShow}
	if Matches(rule, ctxAt(12, 0)) {
		t.Errorf("Matches(unknown kind) = true, want false")
	}
}

func TestClassifyDevice(t *testing.T) {
	cases := map[string]domain.DeviceClass{
		"":        domain.DeviceDesktop,
		desktopUA: domain.DeviceDesktop,
		mobileUA:  domain.DeviceMobile,
		tabletUA:  domain.DeviceTablet,
	}
	for ua, want := range cases {
		if got := ClassifyDevice(ua); got != want {
			t.Errorf("ClassifyDevice(%q) = %v, want %v", ua, got, want)
		}
	}
}

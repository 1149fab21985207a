package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTimeWindow(t *testing.T) {
	tests := []struct {
		value string
		want  TimeWindow
		ok    bool
	}{
		{"09:00-17:00", TimeWindow{540, 1020}, true},
		{"9:00-17:00", TimeWindow{540, 1020}, true},
		{" 23:00 - 02:00 ", TimeWindow{1380, 120}, true},
		{"00:00-23:59", TimeWindow{0, 1439}, true},
		{"24:00-01:00", TimeWindow{}, false},
		{"09:60-10:00", TimeWindow{}, false},
		{"0900-1700", TimeWindow{}, false},
		{"09:00", TimeWindow{}, false},
		{"+9:00-10:00", TimeWindow{}, false},
		{"", TimeWindow{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			got, err := ParseTimeWindow(tt.value)
			if !tt.ok {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTimeWindowContains(t *testing.T) {
	day := TimeWindow{Start: 540, End: 1020}
	assert.True(t, day.Contains(540))
	assert.True(t, day.Contains(1020))
	assert.False(t, day.Contains(1021))

	night := TimeWindow{Start: 1380, End: 120}
	assert.True(t, night.Contains(1439))
	assert.True(t, night.Contains(0))
	assert.True(t, night.Contains(120))
	assert.False(t, night.Contains(121))
	assert.False(t, night.Contains(720))
}

func TestSplitValues(t *testing.T) {
	assert.Equal(t, []string{"mobile", "tablet"}, SplitValues(" Mobile, TABLET ,"))
	assert.Equal(t, []string{"zürich"}, SplitValues("ZÜRICH"))
	assert.Empty(t, SplitValues(" , "))
}

func TestValidateRules(t *testing.T) {
	show := func(k RuleKind, v string) Rule { return Rule{Kind: k, Value: v, Action: ActionShow} }
	hide := func(k RuleKind, v string) Rule { return Rule{Kind: k, Value: v, Action: ActionHide} }

	tests := []struct {
		name  string
		rules []Rule
		want  error
	}{
		{"none", nil, nil},
		{"valid mix", []Rule{show(RuleTime, "09:00-17:00"), hide(RuleDevice, "tablet"), show(RuleLocation, "India,US")}, nil},
		{"bad window", []Rule{show(RuleTime, "morning")}, ErrInvalidRule},
		{"unknown device", []Rule{show(RuleDevice, "watch")}, ErrInvalidRule},
		{"empty device list", []Rule{show(RuleDevice, ",")}, ErrInvalidRule},
		{"empty value", []Rule{show(RuleLocation, "  ")}, ErrInvalidRule},
		{"unknown kind", []Rule{{Kind: "weather", Value: "rain", Action: ActionShow}}, ErrInvalidRule},
		{"unknown action", []Rule{{Kind: RuleDevice, Value: "mobile", Action: "toggle"}}, ErrInvalidRule},
		{"duplicate", []Rule{show(RuleLocation, "India"), show(RuleLocation, "india")}, ErrDuplicateRule},
		{"conflict", []Rule{show(RuleDevice, "mobile"), hide(RuleDevice, "Mobile")}, ErrConflictingRules},
		{"device overlap", []Rule{show(RuleDevice, "mobile,tablet"), hide(RuleDevice, "tablet,desktop")}, ErrOverlappingDevices},
		{"same value different kinds", []Rule{show(RuleLocation, "mobile"), show(RuleDevice, "mobile")}, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateRules(tt.rules)
			if tt.want == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestThemeMerge(t *testing.T) {
	got := DefaultTheme.Merge(Theme{ButtonColor: "#ff0000", AvatarURL: "https://cdn.example/a.png"})
	assert.Equal(t, "#ffffff", got.BackgroundColor)
	assert.Equal(t, "#ff0000", got.ButtonColor)
	assert.Equal(t, "https://cdn.example/a.png", got.AvatarURL)
}

func TestLinkPatchApply(t *testing.T) {
	link := Link{Title: "old", Priority: 1, Active: true}
	title := "new"
	active := false
	rules := []Rule{{Kind: RuleDevice, Value: "mobile", Action: ActionShow}}

	LinkPatch{Title: &title, Active: &active, Rules: &rules}.Apply(&link)

	assert.Equal(t, "new", link.Title)
	assert.Equal(t, 1.0, link.Priority)
	assert.False(t, link.Active)
	assert.Equal(t, rules, link.Rules)
}

func TestNewRequestContext_EmptyLocationIsUnknown(t *testing.T) {
	assert.Nil(t, NewRequestContext("", &UserLocation{}, time.Time{}).Location)
	assert.NotNil(t, NewRequestContext("", &UserLocation{City: "Pune"}, time.Time{}).Location)
}

func TestNormalizeSlug(t *testing.T) {
	assert.Equal(t, "demo", NormalizeSlug(" Demo "))
	assert.Equal(t, "my links", NormalizeSlug("My Links"))
	assert.Equal(t, "", NormalizeSlug("   "))
}

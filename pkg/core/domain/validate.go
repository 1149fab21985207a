package domain

import (
	"fmt"
	"slices"
	"strings"
)

// ValidateRules checks a link's rule set on the authoring and import paths.
//
// It rejects malformed rules, exact duplicates, the same kind and value with
// both show and hide, and device rules that mention the same device twice.
// Resolution never calls this; it tolerates whatever is stored.
func ValidateRules(rules []Rule) error {
	for i, r := range rules {
		if err := validateRule(r); err != nil {
			return fmt.Errorf("rule %d: %w", i, err)
		}
	}

	for i := 0; i < len(rules); i++ {
		r1 := rules[i]
		for j := i + 1; j < len(rules); j++ {
			r2 := rules[j]
			if r1.Kind != r2.Kind {
				continue
			}
			if Fold(r1.Value) == Fold(r2.Value) {
				if r1.Action != r2.Action {
					return fmt.Errorf("%w: you cannot both show and hide %s '%s'", ErrConflictingRules, r1.Kind, r1.Value)
				}
				return fmt.Errorf("%w for %s '%s'", ErrDuplicateRule, r1.Kind, r1.Value)
			}
			if r1.Kind == RuleDevice {
				if overlap := intersect(SplitValues(r1.Value), SplitValues(r2.Value)); len(overlap) > 0 {
					return fmt.Errorf("%w: devices '%s' are mentioned multiple times", ErrOverlappingDevices, strings.Join(overlap, ","))
				}
			}
		}
	}
	return nil
}

func validateRule(r Rule) error {
	switch r.Action {
	case ActionShow, ActionHide:
	default:
		return fmt.Errorf("%w: unknown action %q", ErrInvalidRule, r.Action)
	}

	if strings.TrimSpace(r.Value) == "" {
		return fmt.Errorf("%w: value is required", ErrInvalidRule)
	}

	switch r.Kind {
	case RuleTime:
		if _, err := ParseTimeWindow(r.Value); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidRule, err)
		}
	case RuleDevice:
		devices := SplitValues(r.Value)
		if len(devices) == 0 {
			return fmt.Errorf("%w: device list is empty", ErrInvalidRule)
		}
		for _, d := range devices {
			if !DeviceClass(d).Valid() {
				return fmt.Errorf("%w: unknown device %q", ErrInvalidRule, d)
			}
		}
	case RuleLocation:
		if len(SplitValues(r.Value)) == 0 {
			return fmt.Errorf("%w: location list is empty", ErrInvalidRule)
		}
	default:
		return fmt.Errorf("%w: unknown type %q", ErrInvalidRule, r.Kind)
	}
	return nil
}

func intersect(a, b []string) []string {
	var out []string
	for _, v := range a {
		if slices.Contains(b, v) && !slices.Contains(out, v) {
			out = append(out, v)
		}
	}
	return out
}

package life

import (
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// ErrBadRule reports a rulestring that could not be parsed.
var ErrBadRule = errors.New("invalid rule")

// RuleSet is a set of neighbor counts kept deduplicated in ascending order.
// Any integer is accepted; counts outside [0, 8] never match a Moore
// neighborhood.
type RuleSet struct {
	counts []int
}

// NewRuleSet builds a RuleSet from counts, dropping duplicates.
func NewRuleSet(counts ...int) RuleSet {
	c := slices.Clone(counts)
	slices.Sort(c)
	return RuleSet{counts: slices.Compact(c)}
}

// Has reports whether n is in the set.
func (s RuleSet) Has(n int) bool {
	_, ok := slices.BinarySearch(s.counts, n)
	return ok
}

// Counts returns the members in ascending order. The slice is a copy.
func (s RuleSet) Counts() []int {
	if len(s.counts) == 0 {
		return []int{}
	}
	return slices.Clone(s.counts)
}

// Len returns the number of members.
func (s RuleSet) Len() int { return len(s.counts) }

// Equal reports whether both sets hold the same counts.
func (s RuleSet) Equal(o RuleSet) bool { return slices.Equal(s.counts, o.counts) }

// String writes single-digit sets as a digit run ("23") and anything else as a
// comma separated list ("2,3,10").
func (s RuleSet) String() string {
	digits := true
	for _, c := range s.counts {
		if c < 0 || c > 9 {
			digits = false
			break
		}
	}
	parts := make([]string, len(s.counts))
	for i, c := range s.counts {
		parts[i] = strconv.Itoa(c)
	}
	if digits {
		return strings.Join(parts, "")
	}
	return strings.Join(parts, ",")
}

// Rule pairs the birth and survival sets of a Life-like automaton.
type Rule struct {
	Birth    RuleSet
	Survival RuleSet
}

// Conway is the classic B3/S23 rule.
var Conway = Rule{Birth: NewRuleSet(3), Survival: NewRuleSet(2, 3)}

var rulePresets = map[string]string{
	"conway":           "B3/S23",
	"highlife":         "B36/S23",
	"seeds":            "B2/S",
	"daynight":         "B3678/S34678",
	"lifewithoutdeath": "B3/S012345678",
	"maze":             "B3/S12345",
	"2x2":              "B36/S125",
}

// RulePresets lists the named rules in ascending order.
func RulePresets() []string {
	names := make([]string, 0, len(rulePresets))
	for name := range rulePresets {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// String formats the rule in B/S notation, e.g. "B3/S23".
func (r Rule) String() string {
	return "B" + r.Birth.String() + "/S" + r.Survival.String()
}

// Equal reports whether both rules have identical sets.
func (r Rule) Equal(o Rule) bool {
	return r.Birth.Equal(o.Birth) && r.Survival.Equal(o.Survival)
}

// ParseRule accepts a preset name, B/S notation ("B36/S23", either order, any
// case) or the legacy survival/birth form ("23/36").
func ParseRule(s string) (Rule, error) {
	s = strings.TrimSpace(s)
	if preset, ok := rulePresets[strings.ToLower(s)]; ok {
		s = preset
	}
	parts := strings.Split(s, "/")
	if len(parts) != 2 {
		return Rule{}, fmt.Errorf("%w %q: want B<counts>/S<counts>", ErrBadRule, s)
	}

	var birth, survival *RuleSet
	legacy := 0
	for i, part := range parts {
		part = strings.TrimSpace(part)
		target := &birth
		switch {
		case strings.HasPrefix(part, "B"), strings.HasPrefix(part, "b"):
			part = part[1:]
		case strings.HasPrefix(part, "S"), strings.HasPrefix(part, "s"):
			target = &survival
			part = part[1:]
		default:
			legacy++
			if i == 0 {
				target = &survival
			}
		}
		if *target != nil {
			return Rule{}, fmt.Errorf("%w %q: duplicate section", ErrBadRule, s)
		}
		set, err := parseCounts(part)
		if err != nil {
			return Rule{}, fmt.Errorf("%w %q: %v", ErrBadRule, s, err)
		}
		*target = &set
	}
	if legacy == 1 {
		return Rule{}, fmt.Errorf("%w %q: mixed notation", ErrBadRule, s)
	}
	return Rule{Birth: *birth, Survival: *survival}, nil
}

func parseCounts(s string) (RuleSet, error) {
	if s == "" {
		return NewRuleSet(), nil
	}
	var counts []int
	if strings.Contains(s, ",") {
		for _, field := range strings.Split(s, ",") {
			n, err := strconv.Atoi(strings.TrimSpace(field))
			if err != nil || n < 0 {
				return RuleSet{}, fmt.Errorf("bad count %q", field)
			}
			counts = append(counts, n)
		}
		return NewRuleSet(counts...), nil
	}
	for _, ch := range s {
		if ch < '0' || ch > '9' {
			return RuleSet{}, fmt.Errorf("bad count %q", ch)
		}
		counts = append(counts, int(ch-'0'))
	}
	return NewRuleSet(counts...), nil
}

package models

import (
	"strings"
	"time"
)

// MealType represents the kind of meal a session serves
type MealType string

const (
	// MealLunch indicates a lunch serving session
	MealLunch MealType = "lunch"

	// MealSnack indicates a snack serving session
	MealSnack MealType = "snack"
)

// Valid reports whether the meal type is one of the known values
func (m MealType) Valid() bool {
	return m == MealLunch || m == MealSnack
}

// Layouts for the date/time strings carried by sessions and reserves.
const (
	DateLayout  = "02/01/2006"
	TimeLayout  = "15:04"
	ClockLayout = "15:04:05"
)

// WalkInPrefix marks a group identifier whose students are admitted
// without a reservation
const WalkInPrefix = "#"

// Session represents a single timed meal-serving window
type Session struct {
	// ID is the unique identifier for the session
	ID string

	// Meal is the meal type being served
	Meal MealType

	// ServedItem is the default served-item label, adopted by walk-in
	// consumptions and required for snack sessions
	ServedItem string

	// Period is the school period the session belongs to
	Period string

	// Date is the serving date in DD/MM/YYYY form
	Date string

	// Time is the serving time in HH:MM form
	Time string

	// Groups holds the eligible group identifiers in the order they were
	// given; a "#" prefix admits walk-ins for that group
	Groups []string

	// CreatedAt is when the session was created
	CreatedAt time.Time
}

// GroupRule is a parsed eligible-group identifier
type GroupRule struct {
	// Name is the plain group name, without the walk-in prefix
	Name string

	// AllowWalkIn indicates students of the group may consume without
	// a reservation
	AllowWalkIn bool
}

// ParseGroupRule parses a raw group identifier into a GroupRule
func ParseGroupRule(raw string) GroupRule {
	if strings.HasPrefix(raw, WalkInPrefix) {
		return GroupRule{
			Name:        strings.TrimPrefix(raw, WalkInPrefix),
			AllowWalkIn: true,
		}
	}
	return GroupRule{Name: raw}
}

// String renders the rule back into its raw identifier form
func (r GroupRule) String() string {
	if r.AllowWalkIn {
		return WalkInPrefix + r.Name
	}
	return r.Name
}

// GroupRules parses all of the session's group identifiers
func (s *Session) GroupRules() []GroupRule {
	rules := make([]GroupRule, 0, len(s.Groups))
	for _, raw := range s.Groups {
		rules = append(rules, ParseGroupRule(raw))
	}
	return rules
}

// RuleFor returns the rule covering the given group name, if any
func (s *Session) RuleFor(group string) (GroupRule, bool) {
	for _, raw := range s.Groups {
		rule := ParseGroupRule(raw)
		if rule.Name == group {
			return rule, true
		}
	}
	return GroupRule{}, false
}

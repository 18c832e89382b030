package types

import (
	"net/url"
	"strings"
)

// ActionKind describes what selecting a result does
type ActionKind string

const (
	ActionInternal ActionKind = "internal" // Relative site route
	ActionExternal ActionKind = "external" // Absolute URL, opened in a new context
	ActionBooking  ActionKind = "booking"  // External scheduling site
	ActionPhone    ActionKind = "phone"    // tel: dial intent
)

// bookingHostMarker identifies the external scheduling domain
const bookingHostMarker = "janeapp"

// Navigation is the request dispatched when a result is selected
type Navigation struct {
	URL        string
	Action     ActionKind
	NewContext bool
}

// ClassifyURL derives the action kind from a destination URL
func ClassifyURL(raw string) ActionKind {
	trimmed := strings.TrimSpace(raw)
	lower := strings.ToLower(trimmed)

	if strings.HasPrefix(lower, "tel:") {
		return ActionPhone
	}

	if !strings.HasPrefix(lower, "http://") && !strings.HasPrefix(lower, "https://") {
		return ActionInternal
	}

	u, err := url.Parse(trimmed)
	if err != nil {
		return ActionExternal
	}
	if strings.Contains(strings.ToLower(u.Hostname()), bookingHostMarker) {
		return ActionBooking
	}
	return ActionExternal
}

// NavigationFor builds the navigation request for a destination URL
func NavigationFor(raw string) Navigation {
	action := ClassifyURL(raw)
	return Navigation{
		URL:        raw,
		Action:     action,
		NewContext: action == ActionExternal || action == ActionBooking,
	}
}

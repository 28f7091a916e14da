package views

import (
	"strconv"

	"github.com/networkteam/coursefront/catalog"
)

const (
	BadgeClassNeutral  StyleClass = "badge-neutral"
	BadgeClassCreating StyleClass = "badge-creating"
	BadgeClassReady    StyleClass = "badge-ready"
	BadgeClassHidden   StyleClass = "badge-hidden"
)

var badgeStyleClasses = map[catalog.CourseState]StyleClass{
	catalog.CourseStateCreating:      BadgeClassCreating,
	catalog.CourseStateReadyToAccept: BadgeClassReady,
	catalog.CourseStateHidden:        BadgeClassHidden,
}

// ResolveBadgeClass returns the badge class for a course state, BadgeClassNeutral
// for empty or unknown states.
func ResolveBadgeClass(state catalog.CourseState) StyleClass {
	if class, ok := badgeStyleClasses[state]; ok {
		return class
	}
	return BadgeClassNeutral
}

func statusBadgeClass(statusCode int, err error) string {
	switch {
	case err != nil, statusCode >= 500:
		return "badge-error"
	case statusCode >= 400:
		return "badge-warning"
	}
	return "badge-success"
}

func statusBadgeLabel(statusCode int, err error) string {
	if err != nil {
		return "error"
	}
	return strconv.Itoa(statusCode)
}

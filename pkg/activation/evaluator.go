// Package activation decides whether an offer is live on a given weekday.
package activation

import (
	"time"

	"Digital-Menu-Builder/entities"
)

type Status string

const (
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
	StatusWrongDay Status = "wrong-day"
	StatusEmpty    Status = "empty"
)

// Weekday converts t to the 0=Sunday..6=Saturday numbering offers use.
func Weekday(t time.Time) int {
	return int(t.Weekday())
}

// IsActiveToday reports whether offer is live on weekday. The offer must be
// switched on, scheduled for that day and carry at least one category and
// one item. StartDate and EndDate are not consulted.
func IsActiveToday(offer entities.Offer, weekday int) bool {
	return offer.IsActive && runsOn(offer, weekday) && hasContent(offer)
}

// Partition splits offers into live and not-live buckets, keeping order.
// Every offer lands in exactly one bucket.
func Partition(offers []entities.Offer, weekday int) (active, inactive []entities.Offer) {
	active = []entities.Offer{}
	inactive = []entities.Offer{}
	for _, o := range offers {
		if IsActiveToday(o, weekday) {
			active = append(active, o)
		} else {
			inactive = append(inactive, o)
		}
	}
	return active, inactive
}

// StatusOf returns the first failing condition, checked in the order the
// admin list shows them: flag, day, content.
func StatusOf(offer entities.Offer, weekday int) Status {
	switch {
	case !offer.IsActive:
		return StatusInactive
	case !runsOn(offer, weekday):
		return StatusWrongDay
	case !hasContent(offer):
		return StatusEmpty
	default:
		return StatusActive
	}
}

// Reasons lists every failing condition. It is empty for a live offer.
func Reasons(offer entities.Offer, weekday int) []Status {
	reasons := []Status{}
	if !offer.IsActive {
		reasons = append(reasons, StatusInactive)
	}
	if !runsOn(offer, weekday) {
		reasons = append(reasons, StatusWrongDay)
	}
	if !hasContent(offer) {
		reasons = append(reasons, StatusEmpty)
	}
	return reasons
}

func runsOn(offer entities.Offer, weekday int) bool {
	for _, d := range offer.DaysOfWeek {
		if d == weekday {
			return true
		}
	}
	return false
}

func hasContent(offer entities.Offer) bool {
	return len(offer.Categories) > 0 && len(offer.MenuItems) > 0
}

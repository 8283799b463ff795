package itinerary

import (
	"fmt"
	"slices"
	"time"
)

// AlertKind classifies a trip alert.
type AlertKind string

const (
	AlertPreparation AlertKind = "preparation"
	AlertActivity    AlertKind = "activity"
)

// Priority ranks alerts for display.
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityNormal Priority = "normal"
	PriorityLow    Priority = "low"
)

// DefaultAlertWindow is how far ahead Upcoming looks when given no window.
const DefaultAlertWindow = 7 * 24 * time.Hour

// Alert is a dated reminder for the trip.
type Alert struct {
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	At           time.Time `json:"at"`
	Kind         AlertKind `json:"kind"`
	Priority     Priority  `json:"priority"`
	Acknowledged bool      `json:"acknowledged"`
}

// Timeline is a list of alerts ordered by date.
type Timeline []Alert

var preparationAlerts = []struct {
	daysBefore  int
	title       string
	description string
	priority    Priority
}{
	{30, "Start Trip Planning", "Time to start planning your trip! Check passport validity and travel requirements.", PriorityHigh},
	{14, "Trip Preparation", "Check weather forecast and start packing list.", PriorityNormal},
	{3, "Final Preparation", "Confirm all reservations and prepare travel documents.", PriorityHigh},
}

// Alerts builds the trip timeline: preparation alerts 30, 14 and 3 days
// before start, and a reminder one hour before every scheduled block.
func Alerts(start time.Time, days []Day) Timeline {
	start = dateOf(start)

	var out Timeline
	for _, p := range preparationAlerts {
		out = append(out, Alert{
			Title:       p.title,
			Description: p.description,
			At:          start.AddDate(0, 0, -p.daysBefore),
			Kind:        AlertPreparation,
			Priority:    p.priority,
		})
	}

	for _, day := range days {
		date := dateOf(day.Date)
		for _, block := range DailyBlocks {
			a := day.At(block.Name)
			if a == nil {
				continue
			}
			out = append(out, Alert{
				Title: "Upcoming: " + a.Name,
				Description: fmt.Sprintf("Reminder: %s (%.1f hours)\nCategory: %s\nPrice range: $%.0f-$%.0f",
					a.Name, a.Duration, a.Category, a.PriceMin, a.PriceMax),
				At:       date.Add(time.Duration(block.Start-1) * time.Hour),
				Kind:     AlertActivity,
				Priority: PriorityNormal,
			})
		}
	}

	slices.SortStableFunc(out, func(a, b Alert) int {
		return a.At.Compare(b.At)
	})
	return out
}

// Upcoming returns the unacknowledged alerts due between now and now+window
// inclusive. A non-positive window means DefaultAlertWindow.
func (t Timeline) Upcoming(now time.Time, window time.Duration) Timeline {
	if window <= 0 {
		window = DefaultAlertWindow
	}
	until := now.Add(window)

	var out Timeline
	for _, alert := range t {
		if alert.Acknowledged || alert.At.Before(now) || alert.At.After(until) {
			continue
		}
		out = append(out, alert)
	}
	return out
}

// Acknowledge marks every alert with the given title and time as seen and
// reports whether any matched.
func (t Timeline) Acknowledge(title string, at time.Time) bool {
	var found bool
	for i := range t {
		if t[i].Title == title && t[i].At.Equal(at) {
			t[i].Acknowledged = true
			found = true
		}
	}
	return found
}

package model

import "time"

// DateLayout is the storage and wire format for habit dates. Habits track
// calendar days, not instants, so the date carries no time-of-day or zone.
const DateLayout = "2006-01-02"

// HabitEntry is one tracked habit on one calendar day. Done is the only
// mutable field; everything else is fixed at creation.
type HabitEntry struct {
	ID     string    `json:"id"`
	UserID string    `json:"userId"`
	Name   string    `json:"name"`
	Date   time.Time `json:"date"`
	Done   bool      `json:"done"`
}

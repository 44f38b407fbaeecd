package model

import "time"

// MoodEntry is one row of a user's mood journal. Entries are append-only:
// once written they are never edited or deleted.
type MoodEntry struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	Label     string    `json:"label"`
	Note      string    `json:"note"`
	CreatedAt time.Time `json:"createdAt"`
}

// MoodScale is the fixed set of recordable mood labels, ordered from lowest
// to highest. The position in this slice (1-based) is the label's ordinal
// value on the timeline projection.
var MoodScale = []string{
	"😢 Sad",
	"😠 Angry",
	"😰 Anxious",
	"😐 Okay",
	"😌 Calm",
	"😃 Happy",
}

// MoodUnknownOrdinal is the sentinel ordinal for labels outside MoodScale.
// Rows written by older app drafts may carry free-text labels; aggregation
// maps them here instead of failing.
const MoodUnknownOrdinal = 0

// MoodOrdinal returns the 1-based position of label on MoodScale, or
// MoodUnknownOrdinal if the label is not on the scale.
func MoodOrdinal(label string) int {
	for i, l := range MoodScale {
		if l == label {
			return i + 1
		}
	}
	return MoodUnknownOrdinal
}

// ValidMoodLabel reports whether label is on the fixed scale.
func ValidMoodLabel(label string) bool {
	return MoodOrdinal(label) != MoodUnknownOrdinal
}

package app

import "time"

// ActivityEntry is one logged daily-activity record. ID, Date and
// CreatedAt are set at creation and never mutated afterwards.
type ActivityEntry struct {
	ID        string    `json:"id"`
	Date      string    `json:"date"` // calendar date, YYYY-MM-DD, local time
	Tags      []string  `json:"tags"`
	Note      string    `json:"note,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

type ChatMessage struct {
	Role    string `json:"role"` // user|assistant
	Content string `json:"content"`
}

const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// DaySummary is derived from the activity collection on demand and is
// never stored.
type DaySummary struct {
	Tags      []string       `json:"tags"` // deduplicated, first-seen order
	Note      string         `json:"note"` // most recent non-empty note today
	Count     int            `json:"count"`
	TagCounts map[string]int `json:"tag_counts"`
	Latest    time.Time      `json:"latest"` // CreatedAt of the most recent entry
}

// Tag vocabulary. Entries only ever carry tags from this set.
const (
	TagWorkout    = "Workout"
	TagWalk       = "Walk"
	TagMeditation = "Meditation"
	TagWork       = "Work"
	TagStudy      = "Study"
	TagSocial     = "Social"
	TagChores     = "Chores"
	TagRest       = "Rest"
)

var TagVocabulary = []string{
	TagWorkout,
	TagWalk,
	TagMeditation,
	TagWork,
	TagStudy,
	TagSocial,
	TagChores,
	TagRest,
}

func knownTag(tag string) bool {
	for _, t := range TagVocabulary {
		if t == tag {
			return true
		}
	}
	return false
}

// DateOf formats t as the local calendar date used in ActivityEntry.Date.
func DateOf(t time.Time) string {
	return t.Format("2006-01-02")
}

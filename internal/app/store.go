package app

// Store persists the two companion collections. Loads fail soft: a
// missing collection, malformed content, or an unavailable backend all
// yield an empty slice, never an error. Saves rewrite the whole
// collection; a failed save is non-fatal and the caller keeps working
// from its in-memory copy.
//
// Implementations must preserve message ordering and must not mutate
// entries on the way through.
type Store interface {
	LoadActivities() []ActivityEntry
	SaveActivities(entries []ActivityEntry) error

	LoadMessages() []ChatMessage
	SaveMessages(msgs []ChatMessage) error

	Close() error
}

// Collection names. The two collections are namespaced independently;
// backends must keep them isolated from each other.
const (
	collectionActivities = "activities"
	collectionChat       = "chat"
)

// collectionVersion is written into every stored envelope. Unknown
// future versions load as empty rather than erroring.
const collectionVersion = 1

type envelope[T any] struct {
	Version int `json:"version"`
	Items   []T `json:"items"`
}

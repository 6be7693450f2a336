package app

import (
	"errors"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

// ErrEmptyEntry rejects an activity entry with no tags and no note.
var ErrEmptyEntry = errors.New("entry needs at least one tag or a note")

// ActivityLog records daily activities and notifies subscribers after
// every successful write. Each Add is a read-modify-write against the
// store so another writer (a second window over the same storage) is
// never silently dropped mid-session.
type ActivityLog struct {
	store  Store
	logger *Logger
	now    func() time.Time
	newID  func() string

	mu   sync.Mutex
	subs []func()
}

func NewActivityLog(store Store, logger *Logger) *ActivityLog {
	if logger == nil {
		logger = NewLogger(nil)
	}
	return &ActivityLog{
		store:  store,
		logger: logger,
		now:    time.Now,
		newID:  uuid.NewString,
	}
}

// Subscribe registers a callback invoked after every successful Add.
// The hosting UI uses this in place of a global change event.
func (l *ActivityLog) Subscribe(fn func()) {
	if fn == nil {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	l.subs = append(l.subs, fn)
}

// Add persists a new entry for today. Unknown tags are dropped and
// duplicates collapsed; an entry with no remaining tags and an empty
// trimmed note is rejected.
func (l *ActivityLog) Add(tags []string, note string) (*ActivityEntry, error) {
	note = strings.TrimSpace(note)
	clean := normalizeTags(tags)
	if len(clean) == 0 && note == "" {
		return nil, ErrEmptyEntry
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	entry := ActivityEntry{
		ID:        l.newID(),
		Date:      DateOf(now),
		Tags:      clean,
		Note:      note,
		CreatedAt: now,
	}

	entries := append([]ActivityEntry{entry}, l.store.LoadActivities()...)
	if err := l.store.SaveActivities(entries); err != nil {
		l.logger.Error("persist activities failed", map[string]interface{}{"error": err.Error()})
		return nil, err
	}
	l.logger.Info("activity logged", map[string]interface{}{
		"id":   entry.ID,
		"tags": entry.Tags,
	})

	for _, fn := range l.subs {
		fn()
	}
	return &entry, nil
}

// Today returns today's entries, newest first.
func (l *ActivityLog) Today() []ActivityEntry {
	date := DateOf(l.now())
	var out []ActivityEntry
	for _, e := range l.store.LoadActivities() {
		if e.Date == date {
			out = append(out, e)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out
}

// Summary recomputes the day summary from a fresh store read.
func (l *ActivityLog) Summary() *DaySummary {
	return Summarize(l.store.LoadActivities(), l.now())
}

func normalizeTags(tags []string) []string {
	var out []string
	seen := map[string]bool{}
	for _, tag := range tags {
		tag = strings.TrimSpace(tag)
		if !knownTag(tag) || seen[tag] {
			continue
		}
		seen[tag] = true
		out = append(out, tag)
	}
	return out
}

// NormalizeTag maps loose user input ("workout", " WALK ") onto the
// fixed vocabulary; ok is false for anything outside it.
func NormalizeTag(input string) (string, bool) {
	in := strings.ToLower(strings.TrimSpace(input))
	for _, t := range TagVocabulary {
		if strings.ToLower(t) == in {
			return t, true
		}
	}
	return "", false
}

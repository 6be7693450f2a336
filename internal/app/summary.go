package app

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

// Summarize derives the same-day aggregate from the activity collection.
// It returns nil when no entry falls on asOf's calendar date; callers
// branch on nil to produce a distinct "no activity yet" reply.
//
// Tags come out deduplicated in first-seen order. The note is the one
// with the greatest CreatedAt among today's entries with a non-empty
// note, so the result does not depend on how the slice happens to be
// ordered.
func Summarize(entries []ActivityEntry, asOf time.Time) *DaySummary {
	date := DateOf(asOf)

	sum := &DaySummary{TagCounts: map[string]int{}}
	var noteAt time.Time
	for _, e := range entries {
		if e.Date != date {
			continue
		}
		sum.Count++
		for _, tag := range e.Tags {
			if sum.TagCounts[tag] == 0 {
				sum.Tags = append(sum.Tags, tag)
			}
			sum.TagCounts[tag]++
		}
		if strings.TrimSpace(e.Note) != "" && (noteAt.IsZero() || e.CreatedAt.After(noteAt)) {
			sum.Note = e.Note
			noteAt = e.CreatedAt
		}
		if e.CreatedAt.After(sum.Latest) {
			sum.Latest = e.CreatedAt
		}
	}
	if sum.Count == 0 {
		return nil
	}
	return sum
}

// Banner renders the compact "Workout x2, Walk x1" line shown by the
// summary command and the TUI status bar.
func (s *DaySummary) Banner() string {
	if s == nil || s.Count == 0 {
		return "No activities logged yet today."
	}
	if len(s.Tags) == 0 {
		return fmt.Sprintf("Today: %d untagged %s.", s.Count, plural(s.Count, "entry", "entries"))
	}
	parts := make([]string, 0, len(s.Tags))
	for _, tag := range s.Tags {
		parts = append(parts, fmt.Sprintf("%s x%d", tag, s.TagCounts[tag]))
	}
	suffix := "."
	if strings.TrimSpace(s.Note) != "" {
		suffix = " + notes."
	}
	return "Today: " + strings.Join(parts, ", ") + suffix
}

// SortedTags returns the summary's tags in vocabulary order, for output
// that should be stable regardless of logging order.
func (s *DaySummary) SortedTags() []string {
	out := append([]string(nil), s.Tags...)
	sort.Slice(out, func(i, j int) bool {
		return tagRank(out[i]) < tagRank(out[j])
	})
	return out
}

func tagRank(tag string) int {
	for i, t := range TagVocabulary {
		if t == tag {
			return i
		}
	}
	return len(TagVocabulary)
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}

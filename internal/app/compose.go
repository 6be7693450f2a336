package app

import (
	"fmt"
	"math/rand"
	"strings"
	"time"
)

// RandomSource picks the base chat template. Tests substitute a fixed
// source; everything else in a composed reply is deterministic given
// the input text and the day summary.
type RandomSource interface {
	Intn(n int) int
}

type seededSource struct {
	r *rand.Rand
}

func NewRandomSource() RandomSource {
	return &seededSource{r: rand.New(rand.NewSource(time.Now().UnixNano()))}
}

func (s *seededSource) Intn(n int) int { return s.r.Intn(n) }

// NoActivityReply is the fixed Details reply when nothing has been
// logged today.
const NoActivityReply = "No activities logged yet today. Log a tag or a quick note, then ask me again."

// LookupFallbackReply is returned when the instant-answer lookup fails
// or comes back empty.
const LookupFallbackReply = "I couldn't find a concise answer right now. Try rephrasing or ask for a summary. 🔎"

// chatTemplates is the base pool of supportive phrasings; one is chosen
// per conversational reply.
var chatTemplates = []string{
	"I hear you. Let's take a slow breath together. I'm with you.",
	"That sounds like a lot. One small step at a time — you've got this.",
	"Thanks for sharing that. I'm here, no pressure, just company.",
	"You're not alone in this. Let's keep it gentle today.",
	"Proud of you for opening up. Let's do what feels doable right now.",
	"I'm staying with you. A sip of water and a breath can help.",
}

// tagClauses append to a chat reply when matching tags were logged
// today. Table order is the concatenation order.
var tagClauses = []struct {
	tags   []string
	clause string
	emoji  string
}{
	{[]string{TagWorkout, TagWalk}, "Nice work getting some movement in today.", "🚶"},
	{[]string{TagMeditation}, "That bit of stillness counts for a lot.", "🧘"},
	{[]string{TagRest}, "Glad you gave yourself some rest.", "🛌"},
	{[]string{TagSocial}, "Good to hear you made time for people.", "🗣️"},
	{[]string{TagWork, TagStudy}, "You put in real effort today.", "📚"},
	{[]string{TagChores}, "Keeping things in order takes energy too.", ""},
}

// affectClauses fire on case-insensitive keyword hits in the user's
// text, one clause per category, in table order.
var affectClauses = []struct {
	keywords []string
	clause   string
	emoji    string
}{
	{[]string{"tired", "exhaust", "sleepy", "drained"}, "Rest counts as progress.", "😴"},
	{[]string{"anx", "worry", "nervous"}, "You're safe here.", "🫶"},
	{[]string{"sad", "down", "lonely"}, "I'm right here with you.", "🤗"},
	{[]string{"angry", "mad", "frustrat"}, "Your feelings make sense.", ""},
}

const (
	noteQuoteLimit = 120
	maxEmoji       = 2
)

// Compose renders the assistant reply for one turn. Details replies are
// deterministic given the summary; chat replies draw only their base
// template from rng. The result is never empty.
func Compose(intent Intent, text string, summary *DaySummary, rng RandomSource) string {
	if intent == IntentDetails {
		return composeDetails(summary)
	}
	return composeChat(text, summary, rng)
}

func composeDetails(s *DaySummary) string {
	if s == nil {
		return NoActivityReply
	}
	var b strings.Builder
	fmt.Fprintf(&b, "Here's your day so far: %d %s today", s.Count, plural(s.Count, "entry", "entries"))
	if len(s.Tags) == 0 {
		b.WriteString(", no tags logged")
	} else {
		b.WriteString(" — " + strings.Join(s.SortedTags(), ", "))
	}
	b.WriteString(".")
	if strings.TrimSpace(s.Note) != "" {
		fmt.Fprintf(&b, "\nYour note: %q", s.Note)
	}
	if !s.Latest.IsZero() {
		b.WriteString("\nMost recent entry at " + s.Latest.Format("3:04 PM") + ".")
	}
	return b.String()
}

func composeChat(text string, summary *DaySummary, rng RandomSource) string {
	if rng == nil {
		rng = NewRandomSource()
	}
	var b strings.Builder
	b.WriteString(chatTemplates[rng.Intn(len(chatTemplates))])

	var emoji []string
	if summary != nil {
		for _, tc := range tagClauses {
			if !anyTagPresent(summary, tc.tags) {
				continue
			}
			b.WriteString(" " + tc.clause)
			if tc.emoji != "" {
				emoji = append(emoji, tc.emoji)
			}
		}
		if strings.TrimSpace(summary.Note) != "" {
			fmt.Fprintf(&b, " You wrote: %q.", truncateNote(summary.Note, noteQuoteLimit))
		}
	}

	lowered := strings.ToLower(text)
	for _, ac := range affectClauses {
		if !anyKeywordPresent(lowered, ac.keywords) {
			continue
		}
		b.WriteString(" " + ac.clause)
		if ac.emoji != "" {
			emoji = append(emoji, ac.emoji)
		}
	}

	if len(emoji) > maxEmoji {
		emoji = emoji[:maxEmoji]
	}
	if len(emoji) > 0 {
		b.WriteString(" " + strings.Join(emoji, " "))
	}
	return b.String()
}

func anyTagPresent(s *DaySummary, tags []string) bool {
	for _, t := range tags {
		if s.TagCounts[t] > 0 {
			return true
		}
	}
	return false
}

func anyKeywordPresent(lowered string, keywords []string) bool {
	for _, k := range keywords {
		if strings.Contains(lowered, k) {
			return true
		}
	}
	return false
}

func truncateNote(note string, limit int) string {
	runes := []rune(note)
	if len(runes) <= limit {
		return note
	}
	return string(runes[:limit]) + "…"
}

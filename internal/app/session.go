package app

import (
	"context"
	"strings"
	"sync"
	"time"
)

// Greeting seeds an otherwise empty transcript so the panel never opens
// cold.
const Greeting = "Hey, I'm here with you. No rush — we can just take a breath together."

// ConversationSession runs the send pipeline: fresh activity read,
// classify, compose, append user and assistant messages, persist the
// whole transcript. Sends serialize on an internal mutex so a
// voice-triggered send and a typed send firing together cannot lose an
// update. Cross-process writers stay last-write-wins.
type ConversationSession struct {
	store  Store
	lookup AnswerClient // optional; nil keeps the session fully offline
	rng    RandomSource
	logger *Logger
	now    func() time.Time

	mu         sync.Mutex
	transcript []ChatMessage
}

func NewConversationSession(store Store, lookup AnswerClient, rng RandomSource, logger *Logger) *ConversationSession {
	if rng == nil {
		rng = NewRandomSource()
	}
	if logger == nil {
		logger = NewLogger(nil)
	}
	s := &ConversationSession{
		store:  store,
		lookup: lookup,
		rng:    rng,
		logger: logger,
		now:    time.Now,
	}
	s.transcript = store.LoadMessages()
	if len(s.transcript) == 0 {
		s.transcript = []ChatMessage{{Role: RoleAssistant, Content: Greeting}}
	}
	return s
}

// Transcript returns a copy of the current in-memory transcript.
func (s *ConversationSession) Transcript() []ChatMessage {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]ChatMessage(nil), s.transcript...)
}

// Send runs one chat turn. Whitespace-only input is a no-op: the
// transcript is returned unchanged and the store is not rewritten.
// A failed persist does not roll anything back; the in-memory
// transcript stays authoritative and the next Send rewrites it whole.
func (s *ConversationSession) Send(ctx context.Context, rawText string) ([]ChatMessage, string, error) {
	text := strings.TrimSpace(rawText)
	if text == "" {
		return s.Transcript(), "", nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	summary := Summarize(s.store.LoadActivities(), s.now())
	s.transcript = append(s.transcript, ChatMessage{Role: RoleUser, Content: text})

	intent := ClassifyIntent(text)
	reply, err := s.replyFor(ctx, intent, text, summary)
	if err != nil {
		// Cancelled lookup: keep the user message but never write a
		// reply on its behalf.
		s.persistLocked()
		return append([]ChatMessage(nil), s.transcript...), "", err
	}

	s.transcript = append(s.transcript, ChatMessage{Role: RoleAssistant, Content: reply})
	s.persistLocked()
	return append([]ChatMessage(nil), s.transcript...), reply, nil
}

func (s *ConversationSession) replyFor(ctx context.Context, intent Intent, text string, summary *DaySummary) (string, error) {
	if intent == IntentChat && s.lookup != nil {
		ans, err := s.lookup.Lookup(ctx, text)
		if ctx.Err() != nil {
			return "", ctx.Err()
		}
		if err != nil || ans == nil || strings.TrimSpace(ans.Answer) == "" {
			if err != nil {
				s.logger.Error("instant answer lookup failed", map[string]interface{}{"error": err.Error()})
			}
			return LookupFallbackReply, nil
		}
		reply := ans.Answer
		if ans.SourceURL != "" {
			reply += "\nSource: " + ans.SourceURL
		}
		return reply, nil
	}
	return Compose(intent, text, summary, s.rng), nil
}

func (s *ConversationSession) persistLocked() {
	if err := s.store.SaveMessages(s.transcript); err != nil {
		s.logger.Error("persist transcript failed", map[string]interface{}{
			"error":    err.Error(),
			"messages": len(s.transcript),
		})
	}
}

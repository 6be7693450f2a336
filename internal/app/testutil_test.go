package app

import (
	"errors"
	"sync"
)

// memStore is an in-memory Store with save counters and injectable
// save failures, for exercising the session's fail-soft persistence.
type memStore struct {
	mu         sync.Mutex
	activities []ActivityEntry
	messages   []ChatMessage

	saveMsgCalls int
	saveActCalls int
	failSaves    bool
}

func (m *memStore) LoadActivities() []ActivityEntry {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]ActivityEntry(nil), m.activities...)
}

func (m *memStore) SaveActivities(entries []ActivityEntry) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.saveActCalls++
	if m.failSaves {
		return errors.New("store unavailable")
	}
	m.activities = append([]ActivityEntry(nil), entries...)
	return nil
}

func (m *memStore) LoadMessages() []ChatMessage {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]ChatMessage(nil), m.messages...)
}

func (m *memStore) SaveMessages(msgs []ChatMessage) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.saveMsgCalls++
	if m.failSaves {
		return errors.New("store unavailable")
	}
	m.messages = append([]ChatMessage(nil), msgs...)
	return nil
}

func (m *memStore) Close() error { return nil }

// fixedSource always picks the same template index.
type fixedSource struct {
	index int
}

func (f fixedSource) Intn(n int) int {
	if f.index >= n {
		return n - 1
	}
	return f.index
}

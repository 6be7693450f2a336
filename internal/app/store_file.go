package app

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
)

// FileStore is the JSON-on-disk backend. One document per collection:
//
//	<root>/activities.json
//	<root>/chat.json
//
// Each document is an envelope {version, items}. A bare JSON array is
// accepted on load for compatibility with exports from the browser app.
type FileStore struct {
	Root string
}

func DefaultStorageRoot() string {
	// Prefer XDG data dir (Linux/macOS). If unavailable, fall back to ~/.local/share.
	if base := strings.TrimSpace(os.Getenv("XDG_DATA_HOME")); base != "" {
		return filepath.Join(base, "mindmate", "storage")
	}
	if base, err := os.UserHomeDir(); err == nil && base != "" {
		return filepath.Join(base, ".local", "share", "mindmate", "storage")
	}
	return filepath.Join(os.TempDir(), "mindmate", "storage")
}

func NewFileStore(root string) *FileStore {
	if strings.TrimSpace(root) == "" {
		root = DefaultStorageRoot()
	}
	return &FileStore{Root: filepath.Clean(root)}
}

func (s *FileStore) collectionPath(name string) string {
	return filepath.Join(s.Root, name+".json")
}

func (s *FileStore) LoadActivities() []ActivityEntry {
	return loadCollection[ActivityEntry](s.collectionPath(collectionActivities))
}

func (s *FileStore) SaveActivities(entries []ActivityEntry) error {
	return s.saveCollection(collectionActivities, envelope[ActivityEntry]{
		Version: collectionVersion,
		Items:   entries,
	})
}

func (s *FileStore) LoadMessages() []ChatMessage {
	return loadCollection[ChatMessage](s.collectionPath(collectionChat))
}

func (s *FileStore) SaveMessages(msgs []ChatMessage) error {
	return s.saveCollection(collectionChat, envelope[ChatMessage]{
		Version: collectionVersion,
		Items:   msgs,
	})
}

func (s *FileStore) Close() error { return nil }

func (s *FileStore) saveCollection(name string, payload any) error {
	if err := os.MkdirAll(s.Root, 0o755); err != nil {
		return err
	}
	b, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return err
	}
	// Write-then-rename so a crash mid-write never corrupts the collection.
	tmp := s.collectionPath(name) + ".tmp"
	if err := os.WriteFile(tmp, b, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, s.collectionPath(name))
}

func loadCollection[T any](path string) []T {
	b, err := os.ReadFile(path)
	if err != nil {
		return []T{}
	}
	return decodeCollection[T](b)
}

// decodeCollection tolerates both the envelope format and a bare array.
// Anything unreadable (or a version this build does not know) decodes
// as an empty collection.
func decodeCollection[T any](b []byte) []T {
	var env envelope[T]
	if err := json.Unmarshal(b, &env); err == nil && env.Version != 0 {
		if env.Version != collectionVersion {
			return []T{}
		}
		if env.Items == nil {
			return []T{}
		}
		return env.Items
	}
	var raw []T
	if err := json.Unmarshal(b, &raw); err != nil || raw == nil {
		return []T{}
	}
	return raw
}

package app

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"
)

func TestFileStoreRoundTrip(t *testing.T) {
	store := NewFileStore(t.TempDir())

	now := time.Now().Truncate(time.Second)
	entries := []ActivityEntry{
		{ID: "1", Date: DateOf(now), Tags: []string{TagWorkout, TagWalk}, Note: "long run", CreatedAt: now},
		{ID: "2", Date: DateOf(now), Tags: []string{TagRest}, CreatedAt: now.Add(time.Minute)},
	}
	if err := store.SaveActivities(entries); err != nil {
		t.Fatalf("save activities: %v", err)
	}

	msgs := []ChatMessage{
		{Role: RoleAssistant, Content: Greeting},
		{Role: RoleUser, Content: "hello"},
		{Role: RoleAssistant, Content: "hi"},
	}
	if err := store.SaveMessages(msgs); err != nil {
		t.Fatalf("save messages: %v", err)
	}

	gotEntries := store.LoadActivities()
	if len(gotEntries) != len(entries) {
		t.Fatalf("entries mismatch: got %d want %d", len(gotEntries), len(entries))
	}
	for i := range entries {
		if gotEntries[i].ID != entries[i].ID ||
			!reflect.DeepEqual(gotEntries[i].Tags, entries[i].Tags) ||
			gotEntries[i].Note != entries[i].Note {
			t.Fatalf("entry %d mismatch:\n got: %+v\nwant: %+v", i, gotEntries[i], entries[i])
		}
	}

	if got := store.LoadMessages(); !reflect.DeepEqual(got, msgs) {
		t.Fatalf("messages mismatch:\n got: %+v\nwant: %+v", got, msgs)
	}
}

func TestFileStoreCollectionsAreIndependent(t *testing.T) {
	store := NewFileStore(t.TempDir())

	if err := store.SaveMessages([]ChatMessage{{Role: RoleUser, Content: "only chat"}}); err != nil {
		t.Fatalf("save messages: %v", err)
	}
	if got := store.LoadActivities(); len(got) != 0 {
		t.Fatalf("activities leaked from chat collection: %+v", got)
	}
}

func TestFileStoreLoadsFailSoft(t *testing.T) {
	root := t.TempDir()
	store := NewFileStore(root)

	// Missing files.
	if got := store.LoadActivities(); len(got) != 0 {
		t.Fatalf("expected empty collection for missing file, got %+v", got)
	}

	// Malformed content.
	if err := os.WriteFile(filepath.Join(root, "chat.json"), []byte("{nope"), 0o644); err != nil {
		t.Fatalf("write malformed file: %v", err)
	}
	if got := store.LoadMessages(); len(got) != 0 {
		t.Fatalf("expected empty collection for malformed file, got %+v", got)
	}

	// Unknown future schema version.
	future := `{"version": 99, "items": [{"role":"user","content":"hi"}]}`
	if err := os.WriteFile(filepath.Join(root, "chat.json"), []byte(future), 0o644); err != nil {
		t.Fatalf("write future version: %v", err)
	}
	if got := store.LoadMessages(); len(got) != 0 {
		t.Fatalf("expected empty collection for unknown version, got %+v", got)
	}
}

func TestFileStoreAcceptsBareArrayExports(t *testing.T) {
	root := t.TempDir()
	store := NewFileStore(root)

	raw := `[{"role":"assistant","content":"hey"},{"role":"user","content":"hi"}]`
	if err := os.WriteFile(filepath.Join(root, "chat.json"), []byte(raw), 0o644); err != nil {
		t.Fatalf("write bare array: %v", err)
	}

	got := store.LoadMessages()
	if len(got) != 2 || got[0].Content != "hey" || got[1].Content != "hi" {
		t.Fatalf("bare array not accepted: %+v", got)
	}
}

package app

import (
	"encoding/json"
	"path/filepath"
	"strings"

	"github.com/dgraph-io/badger/v4"
)

// BadgerStore keeps both collections in a single badger database under
// <root>/db, one key per collection, JSON-encoded envelope values. It
// honors the same fail-soft load contract as FileStore.
type BadgerStore struct {
	db *badger.DB
}

func NewBadgerStore(root string) (*BadgerStore, error) {
	if strings.TrimSpace(root) == "" {
		root = DefaultStorageRoot()
	}
	opts := badger.DefaultOptions(filepath.Join(filepath.Clean(root), "db")).
		WithLoggingLevel(badger.ERROR)
	db, err := badger.Open(opts)
	if err != nil {
		return nil, err
	}
	return &BadgerStore{db: db}, nil
}

func (s *BadgerStore) LoadActivities() []ActivityEntry {
	return badgerLoad[ActivityEntry](s.db, collectionActivities)
}

func (s *BadgerStore) SaveActivities(entries []ActivityEntry) error {
	return badgerSave(s.db, collectionActivities, envelope[ActivityEntry]{
		Version: collectionVersion,
		Items:   entries,
	})
}

func (s *BadgerStore) LoadMessages() []ChatMessage {
	return badgerLoad[ChatMessage](s.db, collectionChat)
}

func (s *BadgerStore) SaveMessages(msgs []ChatMessage) error {
	return badgerSave(s.db, collectionChat, envelope[ChatMessage]{
		Version: collectionVersion,
		Items:   msgs,
	})
}

func (s *BadgerStore) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

func badgerSave(db *badger.DB, key string, payload any) error {
	b, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	return db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key), b)
	})
}

func badgerLoad[T any](db *badger.DB, key string) []T {
	var raw []byte
	err := db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(key))
		if err != nil {
			return err
		}
		raw, err = item.ValueCopy(nil)
		return err
	})
	if err != nil {
		// ErrKeyNotFound and any read failure both mean "empty collection".
		return []T{}
	}
	return decodeCollection[T](raw)
}

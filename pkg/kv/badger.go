package kv

import (
	"fmt"
	"log"
	"os"
	"sort"

	"github.com/dgraph-io/badger/v4"
	"github.com/dgraph-io/badger/v4/options"

	"github.com/localstore/docdb/pkg/domain"
)

// BadgerStore persists keys in a BadgerDB directory.
type BadgerStore struct {
	db *badger.DB
}

// badgerLoggerAdapter routes badger's log output through the standard logger.
type badgerLoggerAdapter struct{}

var _ badger.Logger = badgerLoggerAdapter{}

func (badgerLoggerAdapter) Errorf(msg string, items ...interface{}) {
	log.Printf("ERROR: badger: "+msg, items...)
}

func (badgerLoggerAdapter) Warningf(msg string, items ...interface{}) {
	log.Printf("WARN: badger: "+msg, items...)
}

func (badgerLoggerAdapter) Infof(msg string, items ...interface{}) {
	log.Printf("INFO: badger: "+msg, items...)
}

func (badgerLoggerAdapter) Debugf(msg string, items ...interface{}) {}

// NewBadgerStore opens a BadgerDB database rooted at dir, creating the
// directory if it doesn't exist.
func NewBadgerStore(dir string) (*BadgerStore, error) {
	info, err := os.Stat(dir)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, err
		}
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, err
		}
	} else if !info.IsDir() {
		return nil, fmt.Errorf("%s is not a directory", dir)
	}

	opts := badger.DefaultOptions(dir)
	opts.Logger = badgerLoggerAdapter{}
	opts.Compression = options.None

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to open badger database: %w", err)
	}
	return &BadgerStore{db: db}, nil
}

func (b *BadgerStore) Get(key string) ([]byte, error) {
	var value []byte
	err := b.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(key))
		if err != nil {
			return err
		}
		value, err = item.ValueCopy(nil)
		return err
	})
	if err == badger.ErrKeyNotFound {
		return nil, nil
	}
	if err != nil {
		if b.db.IsClosed() {
			return nil, domain.ErrClosed
		}
		return nil, err
	}
	return value, nil
}

func (b *BadgerStore) Set(key string, value []byte) error {
	return b.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key), value)
	})
}

func (b *BadgerStore) Delete(key string) error {
	return b.db.Update(func(txn *badger.Txn) error {
		return txn.Delete([]byte(key))
	})
}

func (b *BadgerStore) Keys() ([]string, error) {
	var keys []string
	err := b.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		iter := txn.NewIterator(opts)
		defer iter.Close()
		for iter.Rewind(); iter.Valid(); iter.Next() {
			keys = append(keys, string(iter.Item().KeyCopy(nil)))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(keys)
	return keys, nil
}

func (b *BadgerStore) String() string {
	return "badger"
}

func (b *BadgerStore) Close() error {
	return b.db.Close()
}

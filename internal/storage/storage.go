package storage

import (
	"encoding/json"
	"time"

	"github.com/dgraph-io/badger/v4"

	"github.com/hailam/tetrion/internal/bench"
)

const keyRunPrefix = "run:"
const keyLatest = "latest_run"

// BenchRun is one persisted benchmark run: the bench.Snapshot counters plus
// enough context to compare runs over time.
type BenchRun struct {
	Timestamp  time.Time     `json:"timestamp"`
	Depth      int           `json:"depth"`
	QueueLen   int           `json:"queue_len"`
	Counters   bench.Snapshot `json:"counters"`
	DurationMs int64         `json:"duration_ms"`
}

// BenchStore wraps BadgerDB for persisting benchmark history across
// process runs, storing each run as JSON under a key through
// db.Update/db.View transactions. Never opened by
// engine.Solve — wired only from cmd/tetrion-bench.
type BenchStore struct {
	db *badger.DB
}

// NewBenchStore opens (creating if needed) the on-disk BadgerDB database
// under the platform data directory.
func NewBenchStore() (*BenchStore, error) {
	dbDir, err := GetDatabaseDir()
	if err != nil {
		return nil, err
	}

	opts := badger.DefaultOptions(dbDir)
	opts.Logger = nil

	db, err := badger.Open(opts)
	if err != nil {
		return nil, err
	}
	return &BenchStore{db: db}, nil
}

// Close closes the underlying database.
func (s *BenchStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveRun appends run keyed by its timestamp and updates the "latest run"
// pointer.
func (s *BenchStore) SaveRun(run BenchRun) error {
	data, err := json.Marshal(run)
	if err != nil {
		return err
	}
	key := keyRunPrefix + run.Timestamp.UTC().Format(time.RFC3339Nano)

	return s.db.Update(func(txn *badger.Txn) error {
		if err := txn.Set([]byte(key), data); err != nil {
			return err
		}
		return txn.Set([]byte(keyLatest), []byte(key))
	})
}

// LoadLatest returns the most recently saved run, or ok=false if the store
// is empty.
func (s *BenchStore) LoadLatest() (run BenchRun, ok bool, err error) {
	err = s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(keyLatest))
		if err == badger.ErrKeyNotFound {
			return nil
		}
		if err != nil {
			return err
		}

		var key []byte
		if err := item.Value(func(val []byte) error {
			key = append([]byte(nil), val...)
			return nil
		}); err != nil {
			return err
		}

		runItem, err := txn.Get(key)
		if err != nil {
			return err
		}
		return runItem.Value(func(val []byte) error {
			ok = true
			return json.Unmarshal(val, &run)
		})
	})
	return run, ok, err
}

// ListRuns returns every persisted run, oldest first.
func (s *BenchStore) ListRuns() ([]BenchRun, error) {
	var runs []BenchRun
	err := s.db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		prefix := []byte(keyRunPrefix)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			item := it.Item()
			var run BenchRun
			if err := item.Value(func(val []byte) error {
				return json.Unmarshal(val, &run)
			}); err != nil {
				return err
			}
			runs = append(runs, run)
		}
		return nil
	})
	return runs, err
}

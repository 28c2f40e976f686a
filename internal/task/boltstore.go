package task

import (
	"encoding/binary"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	bolt "go.etcd.io/bbolt"
)

const defaultBucket = "tasks"

// BoltStore persists tasks in a BoltDB bucket. Keys are the bucket sequence
// encoded big-endian, so cursor order is insertion order.
type BoltStore struct {
	db     *bolt.DB
	bucket []byte
}

// OpenBoltStore opens (or creates) the database at path and ensures the bucket exists.
func OpenBoltStore(path string) (*BoltStore, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("%w: failed to create %s: %w", ErrStorage, filepath.Dir(path), err)
	}
	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("%w: failed to open %s: %w", ErrStorage, path, err)
	}

	bucket := []byte(defaultBucket)
	if err := db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucket)
		return err
	}); err != nil {
		db.Close()
		return nil, fmt.Errorf("%w: failed to create bucket: %w", ErrStorage, err)
	}

	return &BoltStore{db: db, bucket: bucket}, nil
}

// Append implements Store.
func (s *BoltStore) Append(t Task) error {
	if s == nil || s.db == nil {
		return fmt.Errorf("%w: %w", ErrStorage, bolt.ErrDatabaseNotOpen)
	}
	t.Status = StatusPending

	payload, err := json.Marshal(t)
	if err != nil {
		return fmt.Errorf("%w: failed to marshal task: %w", ErrStorage, err)
	}

	err = s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(s.bucket)
		seq, err := b.NextSequence()
		if err != nil {
			return err
		}
		return b.Put(sequenceKey(seq), payload)
	})
	if err != nil {
		return fmt.Errorf("%w: failed to append task: %w", ErrStorage, err)
	}
	return nil
}

// ReadAll implements Store.
func (s *BoltStore) ReadAll() ([]Task, error) {
	if s == nil || s.db == nil {
		return nil, fmt.Errorf("%w: %w", ErrStorage, bolt.ErrDatabaseNotOpen)
	}

	tasks := []Task{}
	err := s.db.View(func(tx *bolt.Tx) error {
		c := tx.Bucket(s.bucket).Cursor()
		for k, v := c.First(); k != nil; k, v = c.Next() {
			var t Task
			if err := json.Unmarshal(v, &t); err != nil {
				return fmt.Errorf("failed to parse task %x: %w", k, err)
			}
			tasks = append(tasks, t)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrStorage, err)
	}
	return tasks, nil
}

// Update implements Store.
func (s *BoltStore) Update(index int, t Task) error {
	if s == nil || s.db == nil {
		return fmt.Errorf("%w: %w", ErrStorage, bolt.ErrDatabaseNotOpen)
	}
	if index < 0 {
		return fmt.Errorf("%w: %d", ErrIndexOutOfRange, index)
	}

	payload, err := json.Marshal(t)
	if err != nil {
		return fmt.Errorf("%w: failed to marshal task: %w", ErrStorage, err)
	}

	var found bool
	var count int
	err = s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(s.bucket)
		c := b.Cursor()
		for k, _ := c.First(); k != nil; k, _ = c.Next() {
			if count == index {
				found = true
				return b.Put(append([]byte(nil), k...), payload)
			}
			count++
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("%w: failed to update task: %w", ErrStorage, err)
	}
	if !found {
		return fmt.Errorf("%w: %d (have %d tasks)", ErrIndexOutOfRange, index, count)
	}
	return nil
}

// Close closes the Bolt database.
func (s *BoltStore) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

func sequenceKey(seq uint64) []byte {
	key := make([]byte, 8)
	binary.BigEndian.PutUint64(key, seq)
	return key
}

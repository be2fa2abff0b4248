// Package cache wraps an in-memory Badger instance used by persistent
// solver variants to reuse a pruning table they've already built across
// multiple StartSearch calls, instead of rebuilding it from scratch every
// time. It is the in-process analogue of the teacher's internal/storage:
// same "open once, transact, close on exit" shape, applied to pruning
// tables instead of user preferences.
package cache

import (
	"bytes"
	"encoding/gob"
	"fmt"
	"log"

	"github.com/dgraph-io/badger/v4"

	"github.com/hailam/cubesolve/internal/prune"
)

// Store is a process-local, in-memory key/value cache of built dense
// pruning tables. It never touches disk: Badger is opened with
// WithInMemory(true), so Close simply releases memory.
type Store struct {
	db *badger.DB
}

// Open starts a fresh in-memory Badger instance. Callers should Close it
// when the process (or the solver owning it) is done.
func Open() (*Store, error) {
	opts := badger.DefaultOptions("").WithInMemory(true).WithLogger(nil)
	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("cache: open in-memory store: %w", err)
	}
	log.Printf("[cache] opened in-memory store")
	return &Store{db: db}, nil
}

// Close releases the store. Safe to call once.
func (s *Store) Close() error {
	return s.db.Close()
}

// Signature identifies one solver variant's pruning table: the coordinate
// family it was built over, the enabled-move restriction it was built
// under, and the depth it was flood-filled to. Two solves with the same
// Signature can share the same table.
type Signature struct {
	Family         string
	MoveRestrictID string
	PruneDepth     int
}

func (sig Signature) key() []byte {
	return []byte(fmt.Sprintf("dense|%s|%s|%d", sig.Family, sig.MoveRestrictID, sig.PruneDepth))
}

// LoadDense returns the cached dense table for sig, if present.
func (s *Store) LoadDense(sig Signature) (prune.Dense, bool, error) {
	var out prune.Dense
	found := false
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(sig.key())
		if err == badger.ErrKeyNotFound {
			return nil
		}
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			if decErr := gob.NewDecoder(bytes.NewReader(val)).Decode(&out); decErr != nil {
				return decErr
			}
			found = true
			return nil
		})
	})
	if err != nil {
		return prune.Dense{}, false, fmt.Errorf("cache: load %+v: %w", sig, err)
	}
	if found {
		log.Printf("[cache] hit for %+v", sig)
	}
	return out, found, nil
}

// StoreDense saves d under sig, overwriting any previous entry.
func (s *Store) StoreDense(sig Signature, d prune.Dense) error {
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(d); err != nil {
		return fmt.Errorf("cache: encode %+v: %w", sig, err)
	}
	if err := s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(sig.key(), buf.Bytes())
	}); err != nil {
		return fmt.Errorf("cache: store %+v: %w", sig, err)
	}
	log.Printf("[cache] stored %+v (%d bytes)", sig, buf.Len())
	return nil
}

// Package memory holds registry snapshots in process memory for tests and
// ephemeral runs. Snapshots pass through the same bucket encoding the
// durable drivers use, so loads observe identical JSON normalization.
package memory

import (
	"context"
	"sync"

	"cordcore/pkg/state"
)

// Compile-time contract assertion ensuring the store satisfies the state interface.
var _ state.Store = (*Store)(nil)

// Store keeps the encoded bucket rows of the last saved snapshot.
type Store struct {
	mu      sync.RWMutex
	buckets map[string][]byte
}

// NewStore returns an empty in-memory snapshot store.
func NewStore() *Store { return &Store{} }

// Save encodes and retains the snapshot, replacing any previous one.
func (s *Store) Save(_ context.Context, snapshot state.Snapshot) error {
	buckets, err := state.EncodeBuckets(snapshot)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.buckets = buckets
	return nil
}

// Load decodes the retained snapshot, if any.
func (s *Store) Load(_ context.Context) (state.Snapshot, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.buckets == nil {
		return state.Snapshot{}, false, nil
	}
	snap, err := state.DecodeBuckets(s.buckets)
	if err != nil {
		return state.Snapshot{}, false, err
	}
	return snap, true, nil
}

// Close is a no-op for the memory driver.
func (s *Store) Close() error { return nil }

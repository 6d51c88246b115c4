package leads

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
)

// Store is the local lead log: one JSON array per key.
type Store interface {
	// Read returns the entries under key, or an empty slice when absent.
	Read(ctx context.Context, key string) ([]json.RawMessage, error)
	// Write replaces the entries under key.
	Write(ctx context.Context, key string, entries []json.RawMessage) error
	Close() error
}

// appendEntry marshals v and appends it to the array under key. Callers
// serialize concurrent appends.
func appendEntry(ctx context.Context, store Store, key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshal %s entry: %w", key, err)
	}
	entries, err := store.Read(ctx, key)
	if err != nil {
		return err
	}
	return store.Write(ctx, key, append(entries, data))
}

// MemoryStore keeps the lead log in process memory.
type MemoryStore struct {
	mu   sync.RWMutex
	data map[string][]byte
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{data: make(map[string][]byte)}
}

func (s *MemoryStore) Read(_ context.Context, key string) ([]json.RawMessage, error) {
	s.mu.RLock()
	raw, ok := s.data[key]
	s.mu.RUnlock()
	if !ok {
		return []json.RawMessage{}, nil
	}
	return decodeEntries(key, raw)
}

func (s *MemoryStore) Write(_ context.Context, key string, entries []json.RawMessage) error {
	raw, err := encodeEntries(key, entries)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.data[key] = raw
	s.mu.Unlock()
	return nil
}

func (s *MemoryStore) Close() error { return nil }

func decodeEntries(key string, raw []byte) ([]json.RawMessage, error) {
	var entries []json.RawMessage
	if err := json.Unmarshal(raw, &entries); err != nil {
		return nil, fmt.Errorf("decode %s: %w", key, err)
	}
	if entries == nil {
		entries = []json.RawMessage{}
	}
	return entries, nil
}

func encodeEntries(key string, entries []json.RawMessage) ([]byte, error) {
	if entries == nil {
		entries = []json.RawMessage{}
	}
	raw, err := json.Marshal(entries)
	if err != nil {
		return nil, fmt.Errorf("encode %s: %w", key, err)
	}
	return raw, nil
}

package repositories

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"vizigoBack/internal/models"
)

// MemoryStore keeps documents in process memory. Used for local runs and tests.
type MemoryStore struct {
	mu          sync.RWMutex
	collections map[string]map[string]json.RawMessage
	keys        *PushKeyGenerator
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		collections: make(map[string]map[string]json.RawMessage),
		keys:        NewPushKeyGenerator(nil),
	}
}

func (s *MemoryStore) Push(ctx context.Context, collection string, record interface{}) (string, error) {
	data, err := json.Marshal(record)
	if err != nil {
		return "", fmt.Errorf("encode record: %w", err)
	}
	key := s.keys.Next()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.collection(collection)[key] = data
	return key, nil
}

func (s *MemoryStore) Create(ctx context.Context, collection, key string, record interface{}) error {
	data, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("encode record: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	docs := s.collection(collection)
	if _, ok := docs[key]; ok {
		return models.ErrKeyExists
	}
	docs[key] = data
	return nil
}

func (s *MemoryStore) GetAll(ctx context.Context, collection string) (map[string]json.RawMessage, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make(map[string]json.RawMessage, len(s.collections[collection]))
	for k, v := range s.collections[collection] {
		out[k] = append(json.RawMessage(nil), v...)
	}
	return out, nil
}

// Put stores raw JSON under key, replacing any existing document.
func (s *MemoryStore) Put(collection, key string, raw json.RawMessage) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.collection(collection)[key] = raw
}

func (s *MemoryStore) collection(name string) map[string]json.RawMessage {
	docs, ok := s.collections[name]
	if !ok {
		docs = make(map[string]json.RawMessage)
		s.collections[name] = docs
	}
	return docs
}

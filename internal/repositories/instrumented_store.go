package repositories

import (
	"context"
	"encoding/json"
	"time"

	"vizigoBack/internal/metrics"
)

type instrumentedStore struct {
	next Store
}

// Instrument wraps s so every call is timed into the store latency histogram.
func Instrument(s Store) Store {
	return &instrumentedStore{next: s}
}

func (s *instrumentedStore) Push(ctx context.Context, collection string, record interface{}) (string, error) {
	start := time.Now()
	key, err := s.next.Push(ctx, collection, record)
	metrics.ObserveStoreOp(collection, "push", err, time.Since(start))
	return key, err
}

func (s *instrumentedStore) Create(ctx context.Context, collection, key string, record interface{}) error {
	start := time.Now()
	err := s.next.Create(ctx, collection, key, record)
	metrics.ObserveStoreOp(collection, "create", err, time.Since(start))
	return err
}

func (s *instrumentedStore) GetAll(ctx context.Context, collection string) (map[string]json.RawMessage, error) {
	start := time.Now()
	docs, err := s.next.GetAll(ctx, collection)
	metrics.ObserveStoreOp(collection, "get_all", err, time.Since(start))
	return docs, err
}

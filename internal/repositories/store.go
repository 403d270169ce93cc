package repositories

import (
	"context"
	"encoding/json"
)

const (
	VehiclesCollection       = "vehicles"
	RentalRequestsCollection = "rental_requests"
)

// Store is a schemaless document store addressed by collection and key.
type Store interface {
	// Push appends record under a newly generated key and returns that key.
	Push(ctx context.Context, collection string, record interface{}) (string, error)
	// Create writes record under key unless the key is taken, in which case
	// it returns models.ErrKeyExists.
	Create(ctx context.Context, collection, key string, record interface{}) error
	// GetAll returns every record of collection keyed by store key. A
	// collection that was never written yields an empty map.
	GetAll(ctx context.Context, collection string) (map[string]json.RawMessage, error)
}

package repositories

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"

	"vizigoBack/internal/models"
)

type BikeRepository struct {
	Store Store
}

// CreateBike stores bike under its own BikeID. A taken id yields models.ErrKeyExists.
func (r *BikeRepository) CreateBike(ctx context.Context, bike models.BikeRecord) error {
	return r.Store.Create(ctx, VehiclesCollection, bike.BikeID, bike)
}

// GetBikes returns every stored bike ordered by key. BikeID is always the
// store key, even for records that embed a different bikeId field.
func (r *BikeRepository) GetBikes(ctx context.Context) ([]models.BikeRecord, error) {
	docs, err := r.Store.GetAll(ctx, VehiclesCollection)
	if err != nil {
		return nil, err
	}

	keys := make([]string, 0, len(docs))
	for k := range docs {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	bikes := make([]models.BikeRecord, 0, len(keys))
	for _, k := range keys {
		var bike models.BikeRecord
		if err := json.Unmarshal(docs[k], &bike); err != nil {
			return nil, fmt.Errorf("decode bike %s: %w", k, err)
		}
		bike.BikeID = k
		bikes = append(bikes, bike)
	}
	return bikes, nil
}

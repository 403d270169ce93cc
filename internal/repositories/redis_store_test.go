package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"

	"vizigoBack/internal/models"
)

func newTestRedisStore(t *testing.T) (*RedisStore, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewRedisStore(client), mr
}

func TestRedisStoreGetAllEmpty(t *testing.T) {
	store, _ := newTestRedisStore(t)

	docs, err := store.GetAll(context.Background(), VehiclesCollection)
	if err != nil {
		t.Fatalf("GetAll: %v", err)
	}
	if docs == nil || len(docs) != 0 {
		t.Fatalf("expected empty non-nil map, got %#v", docs)
	}
}

func TestRedisStoreCreateUsesOneHashPerCollection(t *testing.T) {
	store, mr := newTestRedisStore(t)
	ctx := context.Background()

	bike := models.BikeRecord{BikeID: "Ab3dE6gH", Name: "Splendor", PurchaseDate: "2020-01-01"}
	if err := store.Create(ctx, VehiclesCollection, bike.BikeID, bike); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := store.Create(ctx, VehiclesCollection, bike.BikeID, models.BikeRecord{Name: "Pulsar"}); !errors.Is(err, models.ErrKeyExists) {
		t.Fatalf("expected ErrKeyExists, got %v", err)
	}

	raw := mr.HGet("vizigo:vehicles", "Ab3dE6gH")
	var stored models.BikeRecord
	if err := json.Unmarshal([]byte(raw), &stored); err != nil {
		t.Fatalf("decode hash field %q: %v", raw, err)
	}
	if stored != bike {
		t.Fatalf("stored %+v, want %+v", stored, bike)
	}

	docs, err := store.GetAll(ctx, VehiclesCollection)
	if err != nil {
		t.Fatalf("GetAll: %v", err)
	}
	if len(docs) != 1 || string(docs["Ab3dE6gH"]) != raw {
		t.Fatalf("unexpected docs %v", docs)
	}
}

func TestRedisStorePushKeysAreOrdered(t *testing.T) {
	store, _ := newTestRedisStore(t)
	ctx := context.Background()

	var keys []string
	for i := 0; i < 3; i++ {
		key, err := store.Push(ctx, RentalRequestsCollection, models.RentalRecord{Name: "Asha"})
		if err != nil {
			t.Fatalf("Push: %v", err)
		}
		keys = append(keys, key)
	}
	for i := 1; i < len(keys); i++ {
		if keys[i-1] >= keys[i] {
			t.Fatalf("keys out of order: %v", keys)
		}
	}

	rentals, err := store.GetAll(ctx, RentalRequestsCollection)
	if err != nil {
		t.Fatalf("GetAll: %v", err)
	}
	if len(rentals) != 3 {
		t.Fatalf("expected 3 rentals, got %d", len(rentals))
	}
}

func TestRedisStoreUnavailable(t *testing.T) {
	store, mr := newTestRedisStore(t)
	mr.SetError("ERR server unavailable")
	ctx := context.Background()

	if _, err := store.GetAll(ctx, VehiclesCollection); err == nil {
		t.Fatalf("expected GetAll error")
	}
	if err := store.Create(ctx, VehiclesCollection, "k", models.BikeRecord{}); err == nil || errors.Is(err, models.ErrKeyExists) {
		t.Fatalf("Create error = %v", err)
	}
}

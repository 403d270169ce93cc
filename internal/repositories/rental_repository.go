package repositories

import (
	"context"

	"vizigoBack/internal/models"
)

type RentalRepository struct {
	Store Store
}

// CreateRental appends rental to rental_requests and returns the store key.
func (r *RentalRepository) CreateRental(ctx context.Context, rental models.RentalRecord) (string, error) {
	return r.Store.Push(ctx, RentalRequestsCollection, rental)
}

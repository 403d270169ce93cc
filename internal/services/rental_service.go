package services

import (
	"context"
	"fmt"
	"log"
	"time"

	"vizigoBack/internal/metrics"
	"vizigoBack/internal/models"
	"vizigoBack/internal/repositories"
)

const notifyTimeout = 5 * time.Second

type RentalService struct {
	RentalRepo *repositories.RentalRepository
	Notifier   RentalNotifier
	ErrorLog   *log.Logger
}

// CreateRental stores the request and returns the store key. The date order
// and the bike name are not checked.
func (s *RentalService) CreateRental(ctx context.Context, req models.RentalRequestInput) (string, error) {
	from, err := models.ParseDate(value(req.FromDate))
	if err != nil {
		return "", fmt.Errorf("from_date: %w", err)
	}
	to, err := models.ParseDate(value(req.ToDate))
	if err != nil {
		return "", fmt.Errorf("to_date: %w", err)
	}

	rental := models.RentalRecord{
		Name:     value(req.Name),
		Number:   value(req.Number),
		BikeName: value(req.BikeName),
		FromDate: from.String(),
		ToDate:   to.String(),
	}
	id, err := s.RentalRepo.CreateRental(ctx, rental)
	if err != nil {
		return "", err
	}
	metrics.IncRentalCreated()

	s.notify(ctx, id, rental)
	return id, nil
}

func (s *RentalService) notify(ctx context.Context, id string, rental models.RentalRecord) {
	if s.Notifier == nil {
		return
	}
	ctx, cancel := context.WithTimeout(ctx, notifyTimeout)
	defer cancel()

	if err := s.Notifier.NotifyRental(ctx, id, rental); err != nil {
		metrics.IncNotification("error")
		if s.ErrorLog != nil {
			s.ErrorLog.Printf("rental %s: notification failed: %v", id, err)
		}
		return
	}
	metrics.IncNotification("sent")
}

package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"vizigoBack/internal/metrics"
	"vizigoBack/internal/models"
	"vizigoBack/internal/repositories"
	"vizigoBack/utils"
)

const maxBikeIDAttempts = 5

type BikeService struct {
	BikeRepo *repositories.BikeRepository
	Now      func() time.Time
	NewID    func() string
}

func (s *BikeService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// value reads an optional request field, nil reading as empty.
func value(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

func (s *BikeService) newID() string {
	if s.NewID != nil {
		return s.NewID()
	}
	return utils.GenerateBikeID()
}

// CreateBike stores a new listing and returns its bike id. An absent or null
// created_at defaults to today's date.
func (s *BikeService) CreateBike(ctx context.Context, req models.BikeUpdateRequest) (string, error) {
	createdAt := models.NewDate(s.now())
	if req.CreatedAt != nil {
		d, err := models.ParseDate(*req.CreatedAt)
		if err != nil {
			return "", fmt.Errorf("created_at: %w", err)
		}
		createdAt = d
	}
	purchaseDate, err := models.ParseDate(value(req.PurchaseDate))
	if err != nil {
		return "", fmt.Errorf("purchase_date: %w", err)
	}

	bike := models.BikeRecord{
		BrandName:          value(req.BrandName),
		Name:               value(req.Name),
		ModelName:          value(req.ModelName),
		RegistrationNumber: value(req.RegistrationNumber),
		KilometersDriven:   value(req.KilometersDriven),
		Color:              value(req.Color),
		ModelYear:          value(req.ModelYear),
		Description:        value(req.Description),
		City:               value(req.City),
		Location:           value(req.Location),
		CreatedAt:          createdAt.String(),
		PurchaseDate:       purchaseDate.String(),
		Availability:       value(req.Availability),
		PricePerDay:        value(req.PricePerDay),
		PricePerMonth:      value(req.PricePerMonth),
		Category:           value(req.Category),
	}

	for attempt := 0; attempt < maxBikeIDAttempts; attempt++ {
		bike.BikeID = s.newID()
		err := s.BikeRepo.CreateBike(ctx, bike)
		if err == nil {
			metrics.IncBikeCreated()
			return bike.BikeID, nil
		}
		if !errors.Is(err, models.ErrKeyExists) {
			return "", err
		}
		metrics.IncBikeIDCollision()
	}
	return "", models.ErrIDExhausted
}

// GetBikes returns all listings with their dates parsed. One bad record fails the whole call.
func (s *BikeService) GetBikes(ctx context.Context) ([]models.Bike, error) {
	records, err := s.BikeRepo.GetBikes(ctx)
	if err != nil {
		return nil, err
	}

	bikes := make([]models.Bike, 0, len(records))
	for _, rec := range records {
		bike, err := bikeFromRecord(rec)
		if err != nil {
			return nil, err
		}
		bikes = append(bikes, bike)
	}
	return bikes, nil
}

func bikeFromRecord(rec models.BikeRecord) (models.Bike, error) {
	var createdAt *models.Date
	if rec.CreatedAt != "" {
		d, err := models.ParseDate(rec.CreatedAt)
		if err != nil {
			return models.Bike{}, fmt.Errorf("bike %s: created_at: %w", rec.BikeID, err)
		}
		createdAt = &d
	}
	purchaseDate, err := models.ParseDate(rec.PurchaseDate)
	if err != nil {
		return models.Bike{}, fmt.Errorf("bike %s: purchase_date: %w", rec.BikeID, err)
	}

	return models.Bike{
		BikeID:             rec.BikeID,
		BrandName:          rec.BrandName,
		Name:               rec.Name,
		ModelName:          rec.ModelName,
		RegistrationNumber: rec.RegistrationNumber,
		KilometersDriven:   rec.KilometersDriven,
		Color:              rec.Color,
		ModelYear:          rec.ModelYear,
		Description:        rec.Description,
		City:               rec.City,
		Location:           rec.Location,
		CreatedAt:          createdAt,
		PurchaseDate:       purchaseDate,
		Availability:       rec.Availability,
		PricePerDay:        rec.PricePerDay,
		PricePerMonth:      rec.PricePerMonth,
		Category:           rec.Category,
	}, nil
}

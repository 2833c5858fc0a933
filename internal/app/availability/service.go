package availability

import (
	"context"

	"fyyur/internal/models"
)

// Store defines persistence operations for availability slots.
type Store interface {
	GetArtist(ctx context.Context, id int64) (models.Artist, error)
	GetAvailability(ctx context.Context, id int64) (models.Availability, error)
	AvailabilityByArtist(ctx context.Context, artistID int64) ([]models.Availability, error)
	CreateAvailability(ctx context.Context, slot models.Availability) (models.Availability, error)
	DeleteAvailability(ctx context.Context, id int64) error
}

// Service manages the daily slots artists declare themselves bookable at.
type Service interface {
	Get(ctx context.Context, id int64) (models.Availability, error)
	ListByArtist(ctx context.Context, artistID int64) ([]models.Availability, error)
	Create(ctx context.Context, slot models.Availability) (models.Availability, error)
	Delete(ctx context.Context, id int64) error
}

type service struct {
	store Store
}

// New constructs an availability Service.
func New(store Store) Service {
	return &service{store: store}
}

func (s *service) Get(ctx context.Context, id int64) (models.Availability, error) {
	if err := ctx.Err(); err != nil {
		return models.Availability{}, err
	}
	return s.store.GetAvailability(ctx, id)
}

func (s *service) ListByArtist(ctx context.Context, artistID int64) ([]models.Availability, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if _, err := s.store.GetArtist(ctx, artistID); err != nil {
		return nil, err
	}
	return s.store.AvailabilityByArtist(ctx, artistID)
}

// Create records a new slot for an existing artist.
func (s *service) Create(ctx context.Context, slot models.Availability) (models.Availability, error) {
	if err := ctx.Err(); err != nil {
		return models.Availability{}, err
	}
	if _, err := s.store.GetArtist(ctx, slot.ArtistID); err != nil {
		return models.Availability{}, err
	}
	return s.store.CreateAvailability(ctx, slot)
}

func (s *service) Delete(ctx context.Context, id int64) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return s.store.DeleteAvailability(ctx, id)
}

package shows

import (
	"context"

	"fyyur/internal/models"
)

// Store defines persistence operations for shows.
type Store interface {
	GetShow(ctx context.Context, id int64) (models.ShowListing, error)
	ListShows(ctx context.Context) ([]models.ShowListing, error)
	CreateShow(ctx context.Context, show models.Show) (models.Show, error)
	DeleteShow(ctx context.Context, id int64) error
	GetVenue(ctx context.Context, id int64) (models.Venue, error)
	GetArtist(ctx context.Context, id int64) (models.Artist, error)
	AvailabilityByArtist(ctx context.Context, artistID int64) ([]models.Availability, error)
}

// Service coordinates show-related operations.
type Service interface {
	List(ctx context.Context) ([]models.ShowListing, error)
	Get(ctx context.Context, id int64) (models.ShowListing, error)
	Create(ctx context.Context, show models.Show) (models.Show, error)
	Delete(ctx context.Context, id int64) error
}

type service struct {
	store Store
}

// New constructs a shows Service.
func New(store Store) Service {
	return &service{store: store}
}

func (s *service) List(ctx context.Context) ([]models.ShowListing, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.store.ListShows(ctx)
}

func (s *service) Get(ctx context.Context, id int64) (models.ShowListing, error) {
	if err := ctx.Err(); err != nil {
		return models.ShowListing{}, err
	}
	return s.store.GetShow(ctx, id)
}

// Create books a show once both ends exist and the artist is free at the
// requested time. Nothing is written when either check fails.
func (s *service) Create(ctx context.Context, show models.Show) (models.Show, error) {
	if err := ctx.Err(); err != nil {
		return models.Show{}, err
	}

	if _, err := s.store.GetVenue(ctx, show.VenueID); err != nil {
		return models.Show{}, err
	}
	if _, err := s.store.GetArtist(ctx, show.ArtistID); err != nil {
		return models.Show{}, err
	}

	slots, err := s.store.AvailabilityByArtist(ctx, show.ArtistID)
	if err != nil {
		return models.Show{}, err
	}
	if err := CheckAvailability(slots, show.StartTime); err != nil {
		return models.Show{}, err
	}

	return s.store.CreateShow(ctx, show)
}

func (s *service) Delete(ctx context.Context, id int64) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return s.store.DeleteShow(ctx, id)
}

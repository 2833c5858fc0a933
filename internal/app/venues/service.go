package venues

import (
	"context"
	"time"

	"fyyur/internal/app/shows"
	"fyyur/internal/models"
)

// Store defines persistence operations for venues.
type Store interface {
	GetVenue(ctx context.Context, id int64) (models.Venue, error)
	ListVenues(ctx context.Context) ([]models.Venue, error)
	RecentVenues(ctx context.Context, limit int) ([]models.Venue, error)
	SearchVenues(ctx context.Context, term string) (models.SearchResult[models.Venue], error)
	CreateVenue(ctx context.Context, venue models.Venue) (models.Venue, error)
	UpdateVenue(ctx context.Context, id int64, venue models.Venue) (models.Venue, error)
	DeleteVenue(ctx context.Context, id int64) error
	ShowsByVenue(ctx context.Context, venueID int64) ([]models.ShowListing, error)
}

// Detail is a venue together with its shows split around the time of the read.
type Detail struct {
	models.Venue
	models.Schedule
}

// Service coordinates venue-related operations.
type Service interface {
	Areas(ctx context.Context) ([]models.Area, error)
	Recent(ctx context.Context, limit int) ([]models.Venue, error)
	Get(ctx context.Context, id int64) (models.Venue, error)
	Detail(ctx context.Context, id int64) (Detail, error)
	Search(ctx context.Context, term string) (models.SearchResult[models.Venue], error)
	Create(ctx context.Context, venue models.Venue) (models.Venue, error)
	Update(ctx context.Context, id int64, venue models.Venue) (models.Venue, error)
	Delete(ctx context.Context, id int64) error
}

type service struct {
	store Store
	now   func() time.Time
}

// New constructs a venues Service. A nil clock falls back to time.Now.
func New(store Store, now func() time.Time) Service {
	if now == nil {
		now = time.Now
	}
	return &service{store: store, now: now}
}

func (s *service) Areas(ctx context.Context) ([]models.Area, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	venues, err := s.store.ListVenues(ctx)
	if err != nil {
		return nil, err
	}
	return models.GroupByArea(venues), nil
}

func (s *service) Recent(ctx context.Context, limit int) ([]models.Venue, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.store.RecentVenues(ctx, limit)
}

func (s *service) Get(ctx context.Context, id int64) (models.Venue, error) {
	if err := ctx.Err(); err != nil {
		return models.Venue{}, err
	}
	return s.store.GetVenue(ctx, id)
}

func (s *service) Detail(ctx context.Context, id int64) (Detail, error) {
	if err := ctx.Err(); err != nil {
		return Detail{}, err
	}

	venue, err := s.store.GetVenue(ctx, id)
	if err != nil {
		return Detail{}, err
	}
	listings, err := s.store.ShowsByVenue(ctx, id)
	if err != nil {
		return Detail{}, err
	}

	return Detail{Venue: venue, Schedule: shows.Classify(listings, s.now())}, nil
}

func (s *service) Search(ctx context.Context, term string) (models.SearchResult[models.Venue], error) {
	if err := ctx.Err(); err != nil {
		return models.SearchResult[models.Venue]{}, err
	}
	return s.store.SearchVenues(ctx, term)
}

func (s *service) Create(ctx context.Context, venue models.Venue) (models.Venue, error) {
	if err := ctx.Err(); err != nil {
		return models.Venue{}, err
	}
	return s.store.CreateVenue(ctx, venue)
}

func (s *service) Update(ctx context.Context, id int64, venue models.Venue) (models.Venue, error) {
	if err := ctx.Err(); err != nil {
		return models.Venue{}, err
	}
	return s.store.UpdateVenue(ctx, id, venue)
}

func (s *service) Delete(ctx context.Context, id int64) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return s.store.DeleteVenue(ctx, id)
}

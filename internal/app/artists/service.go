package artists

import (
	"context"
	"time"

	"fyyur/internal/app/shows"
	"fyyur/internal/models"
)

// Store defines persistence operations for artists.
type Store interface {
	GetArtist(ctx context.Context, id int64) (models.Artist, error)
	ListArtists(ctx context.Context) ([]models.Artist, error)
	RecentArtists(ctx context.Context, limit int) ([]models.Artist, error)
	SearchArtists(ctx context.Context, term string) (models.SearchResult[models.Artist], error)
	CreateArtist(ctx context.Context, artist models.Artist) (models.Artist, error)
	UpdateArtist(ctx context.Context, id int64, artist models.Artist) (models.Artist, error)
	DeleteArtist(ctx context.Context, id int64) error
	ShowsByArtist(ctx context.Context, artistID int64) ([]models.ShowListing, error)
	AvailabilityByArtist(ctx context.Context, artistID int64) ([]models.Availability, error)
}

// Detail is an artist with its shows split around the time of the read and
// its declared availability.
type Detail struct {
	models.Artist
	models.Schedule
	Availability []models.Availability `json:"availability"`
}

// Service provides artist-centric operations.
type Service interface {
	List(ctx context.Context) ([]models.Artist, error)
	Recent(ctx context.Context, limit int) ([]models.Artist, error)
	Get(ctx context.Context, id int64) (models.Artist, error)
	Detail(ctx context.Context, id int64) (Detail, error)
	Search(ctx context.Context, term string) (models.SearchResult[models.Artist], error)
	Create(ctx context.Context, artist models.Artist) (models.Artist, error)
	Update(ctx context.Context, id int64, artist models.Artist) (models.Artist, error)
	Delete(ctx context.Context, id int64) error
}

type service struct {
	store Store
	now   func() time.Time
}

// New constructs an artist Service. A nil clock falls back to time.Now.
func New(store Store, now func() time.Time) Service {
	if now == nil {
		now = time.Now
	}
	return &service{store: store, now: now}
}

func (s *service) List(ctx context.Context) ([]models.Artist, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.store.ListArtists(ctx)
}

func (s *service) Recent(ctx context.Context, limit int) ([]models.Artist, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.store.RecentArtists(ctx, limit)
}

func (s *service) Get(ctx context.Context, id int64) (models.Artist, error) {
	if err := ctx.Err(); err != nil {
		return models.Artist{}, err
	}
	return s.store.GetArtist(ctx, id)
}

func (s *service) Detail(ctx context.Context, id int64) (Detail, error) {
	if err := ctx.Err(); err != nil {
		return Detail{}, err
	}

	artist, err := s.store.GetArtist(ctx, id)
	if err != nil {
		return Detail{}, err
	}
	listings, err := s.store.ShowsByArtist(ctx, id)
	if err != nil {
		return Detail{}, err
	}
	slots, err := s.store.AvailabilityByArtist(ctx, id)
	if err != nil {
		return Detail{}, err
	}

	return Detail{
		Artist:       artist,
		Schedule:     shows.Classify(listings, s.now()),
		Availability: slots,
	}, nil
}

func (s *service) Search(ctx context.Context, term string) (models.SearchResult[models.Artist], error) {
	if err := ctx.Err(); err != nil {
		return models.SearchResult[models.Artist]{}, err
	}
	return s.store.SearchArtists(ctx, term)
}

func (s *service) Create(ctx context.Context, artist models.Artist) (models.Artist, error) {
	if err := ctx.Err(); err != nil {
		return models.Artist{}, err
	}
	return s.store.CreateArtist(ctx, artist)
}

func (s *service) Update(ctx context.Context, id int64, artist models.Artist) (models.Artist, error) {
	if err := ctx.Err(); err != nil {
		return models.Artist{}, err
	}
	return s.store.UpdateArtist(ctx, id, artist)
}

func (s *service) Delete(ctx context.Context, id int64) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return s.store.DeleteArtist(ctx, id)
}

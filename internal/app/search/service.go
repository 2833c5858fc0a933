package search

import (
	"context"
	"errors"
	"strings"

	"fyyur/internal/models"
)

// ErrInvalidQuery is returned for a city query that is not of the form "City, ST".
var ErrInvalidQuery = errors.New(`query must look like "City, State"`)

// Store defines the exact-match lookups behind the city search.
type Store interface {
	VenuesByCityState(ctx context.Context, city, state string) ([]models.Venue, error)
	ArtistsByCityState(ctx context.Context, city, state string) ([]models.Artist, error)
}

// Service finds everything located in one city.
type Service interface {
	ByCity(ctx context.Context, query string) (models.CityResults, error)
}

type service struct {
	store Store
}

// New constructs a search Service.
func New(store Store) Service {
	return &service{store: store}
}

// ParseCityState splits "City, ST" on its first comma. The city is kept as
// typed; surrounding whitespace is trimmed from the state only.
func ParseCityState(query string) (city, state string, err error) {
	city, state, ok := strings.Cut(query, ",")
	if !ok {
		return "", "", ErrInvalidQuery
	}
	state = strings.TrimSpace(state)
	if city == "" || state == "" {
		return "", "", ErrInvalidQuery
	}
	return city, state, nil
}

func (s *service) ByCity(ctx context.Context, query string) (models.CityResults, error) {
	if err := ctx.Err(); err != nil {
		return models.CityResults{}, err
	}

	city, state, err := ParseCityState(query)
	if err != nil {
		return models.CityResults{}, err
	}

	venues, err := s.store.VenuesByCityState(ctx, city, state)
	if err != nil {
		return models.CityResults{}, err
	}
	artists, err := s.store.ArtistsByCityState(ctx, city, state)
	if err != nil {
		return models.CityResults{}, err
	}

	return models.CityResults{
		City:        city,
		State:       state,
		Count:       len(venues) + len(artists),
		VenueCount:  len(venues),
		ArtistCount: len(artists),
		Venues:      venues,
		Artists:     artists,
	}, nil
}

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"fyyur/internal/models"
)

// ErrVenueNotFound signals a missing venue record.
var ErrVenueNotFound = errors.New("venue not found")

const venueColumns = `id, name, address, city, state, phone, website, facebook_link,
		       image_link, genres, seeking_talent, seeking_description`

// GetVenue retrieves a single venue by ID.
func (s *Store) GetVenue(ctx context.Context, id int64) (models.Venue, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT `+venueColumns+`
		FROM venues
		WHERE id = $1
	`, id)

	v, err := scanVenue(row)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Venue{}, ErrVenueNotFound
	}
	if err != nil {
		return models.Venue{}, fmt.Errorf("select venue: %w", err)
	}
	return v, nil
}

// ListVenues returns every venue in insertion order.
func (s *Store) ListVenues(ctx context.Context) ([]models.Venue, error) {
	return s.queryVenues(ctx, `
		SELECT `+venueColumns+`
		FROM venues
		ORDER BY id ASC
	`)
}

// RecentVenues returns the most recently listed venues, newest first.
func (s *Store) RecentVenues(ctx context.Context, limit int) ([]models.Venue, error) {
	return s.queryVenues(ctx, `
		SELECT `+venueColumns+`
		FROM venues
		ORDER BY id DESC
		LIMIT $1
	`, limit)
}

// SearchVenues matches venue names containing term, ignoring case.
func (s *Store) SearchVenues(ctx context.Context, term string) (models.SearchResult[models.Venue], error) {
	venues, err := s.queryVenues(ctx, `
		SELECT `+venueColumns+`
		FROM venues
		WHERE name ILIKE $1
		ORDER BY id ASC
	`, containsPattern(term))
	if err != nil {
		return models.SearchResult[models.Venue]{}, err
	}
	return models.NewSearchResult(venues), nil
}

// VenuesByCityState returns venues whose city and state match exactly.
func (s *Store) VenuesByCityState(ctx context.Context, city, state string) ([]models.Venue, error) {
	return s.queryVenues(ctx, `
		SELECT `+venueColumns+`
		FROM venues
		WHERE city = $1 AND state = $2
		ORDER BY id ASC
	`, city, state)
}

// CreateVenue inserts a new venue and returns it with its assigned ID.
func (s *Store) CreateVenue(ctx context.Context, venue models.Venue) (models.Venue, error) {
	err := s.withTx(ctx, func(tx *sql.Tx) error {
		return tx.QueryRowContext(ctx, `
			INSERT INTO venues (name, address, city, state, phone, website, facebook_link,
			                    image_link, genres, seeking_talent, seeking_description)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
			RETURNING id
		`, venue.Name, venue.Address, venue.City, venue.State, venue.Phone, venue.Website,
			venue.FacebookLink, venue.ImageLink, genresValue(venue.Genres),
			venue.SeekingTalent, venue.SeekingDescription,
		).Scan(&venue.ID)
	})
	if err != nil {
		return models.Venue{}, fmt.Errorf("insert venue: %w", err)
	}
	return venue, nil
}

// UpdateVenue overwrites every mutable field of the venue with the given values.
func (s *Store) UpdateVenue(ctx context.Context, id int64, venue models.Venue) (models.Venue, error) {
	var updated models.Venue
	err := s.withTx(ctx, func(tx *sql.Tx) error {
		row := tx.QueryRowContext(ctx, `
			UPDATE venues
			SET name = $1, address = $2, city = $3, state = $4, phone = $5, website = $6,
			    facebook_link = $7, image_link = $8, genres = $9, seeking_talent = $10,
			    seeking_description = $11
			WHERE id = $12
			RETURNING `+venueColumns+`
		`, venue.Name, venue.Address, venue.City, venue.State, venue.Phone, venue.Website,
			venue.FacebookLink, venue.ImageLink, genresValue(venue.Genres),
			venue.SeekingTalent, venue.SeekingDescription, id)

		var err error
		updated, err = scanVenue(row)
		if errors.Is(err, sql.ErrNoRows) {
			return ErrVenueNotFound
		}
		return err
	})
	if errors.Is(err, ErrVenueNotFound) {
		return models.Venue{}, err
	}
	if err != nil {
		return models.Venue{}, fmt.Errorf("update venue: %w", err)
	}
	return updated, nil
}

// DeleteVenue removes a venue. Venues that still host shows are not deleted.
func (s *Store) DeleteVenue(ctx context.Context, id int64) error {
	return s.deleteByID(ctx, "venues", id, ErrVenueNotFound)
}

func (s *Store) queryVenues(ctx context.Context, query string, args ...any) ([]models.Venue, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("select venues: %w", err)
	}
	defer rows.Close()

	var venues []models.Venue
	for rows.Next() {
		v, err := scanVenue(rows)
		if err != nil {
			return nil, fmt.Errorf("scan venue: %w", err)
		}
		venues = append(venues, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate venues: %w", err)
	}
	return venues, nil
}

func scanVenue(row rowScanner) (models.Venue, error) {
	var v models.Venue
	err := row.Scan(&v.ID, &v.Name, &v.Address, &v.City, &v.State, &v.Phone, &v.Website,
		&v.FacebookLink, &v.ImageLink, (*pq.StringArray)(&v.Genres), &v.SeekingTalent,
		&v.SeekingDescription)
	return v, err
}

// genresValue never yields NULL so the NOT NULL genres columns accept it.
func genresValue(genres []string) pq.StringArray {
	if genres == nil {
		return pq.StringArray{}
	}
	return pq.StringArray(genres)
}

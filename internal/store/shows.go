package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"fyyur/internal/models"
)

var (
	// ErrShowNotFound signals a missing show record.
	ErrShowNotFound = errors.New("show not found")
	// ErrUnknownReference signals a write that points at a venue or artist that does not exist.
	ErrUnknownReference = errors.New("referenced venue or artist does not exist")
)

const showListingSelect = `
		SELECT
			s.id, s.venue_id, s.artist_id, s.start_time,
			v.name AS venue_name, v.image_link AS venue_image_link,
			a.name AS artist_name, a.image_link AS artist_image_link
		FROM shows s
		INNER JOIN venues v ON s.venue_id = v.id
		INNER JOIN artists a ON s.artist_id = a.id
`

// GetShow retrieves a single show with its venue and artist details.
func (s *Store) GetShow(ctx context.Context, id int64) (models.ShowListing, error) {
	row := s.db.QueryRowContext(ctx, showListingSelect+`
		WHERE s.id = $1
	`, id)

	show, err := scanShowListing(row)
	if errors.Is(err, sql.ErrNoRows) {
		return models.ShowListing{}, ErrShowNotFound
	}
	if err != nil {
		return models.ShowListing{}, fmt.Errorf("select show: %w", err)
	}
	return show, nil
}

// ListShows returns every show in insertion order.
func (s *Store) ListShows(ctx context.Context) ([]models.ShowListing, error) {
	return s.queryShowListings(ctx, showListingSelect+`
		ORDER BY s.id ASC
	`)
}

// ShowsByVenue returns the shows hosted by a venue, earliest first.
func (s *Store) ShowsByVenue(ctx context.Context, venueID int64) ([]models.ShowListing, error) {
	return s.queryShowListings(ctx, showListingSelect+`
		WHERE s.venue_id = $1
		ORDER BY s.start_time ASC, s.id ASC
	`, venueID)
}

// ShowsByArtist returns the shows played by an artist, earliest first.
func (s *Store) ShowsByArtist(ctx context.Context, artistID int64) ([]models.ShowListing, error) {
	return s.queryShowListings(ctx, showListingSelect+`
		WHERE s.artist_id = $1
		ORDER BY s.start_time ASC, s.id ASC
	`, artistID)
}

// CreateShow inserts a new show and returns it with its assigned ID.
func (s *Store) CreateShow(ctx context.Context, show models.Show) (models.Show, error) {
	err := s.withTx(ctx, func(tx *sql.Tx) error {
		err := tx.QueryRowContext(ctx, `
			INSERT INTO shows (venue_id, artist_id, start_time)
			VALUES ($1, $2, $3)
			RETURNING id
		`, show.VenueID, show.ArtistID, show.StartTime).Scan(&show.ID)
		if isForeignKeyViolation(err) {
			return ErrUnknownReference
		}
		return err
	})
	if errors.Is(err, ErrUnknownReference) {
		return models.Show{}, err
	}
	if err != nil {
		return models.Show{}, fmt.Errorf("insert show: %w", err)
	}
	return show, nil
}

// DeleteShow removes a show.
func (s *Store) DeleteShow(ctx context.Context, id int64) error {
	return s.deleteByID(ctx, "shows", id, ErrShowNotFound)
}

func (s *Store) queryShowListings(ctx context.Context, query string, args ...any) ([]models.ShowListing, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("select shows: %w", err)
	}
	defer rows.Close()

	var shows []models.ShowListing
	for rows.Next() {
		show, err := scanShowListing(rows)
		if err != nil {
			return nil, fmt.Errorf("scan show: %w", err)
		}
		shows = append(shows, show)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate shows: %w", err)
	}
	return shows, nil
}

func scanShowListing(row rowScanner) (models.ShowListing, error) {
	var s models.ShowListing
	err := row.Scan(&s.ID, &s.VenueID, &s.ArtistID, &s.StartTime,
		&s.VenueName, &s.VenueImageLink, &s.ArtistName, &s.ArtistImageLink)
	return s, err
}

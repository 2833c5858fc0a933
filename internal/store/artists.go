package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"fyyur/internal/models"
)

// ErrArtistNotFound signals a missing artist record.
var ErrArtistNotFound = errors.New("artist not found")

const artistColumns = `id, name, city, state, phone, website, facebook_link, image_link,
		       genres, seeking_venue, seeking_description`

// GetArtist retrieves a single artist by ID.
func (s *Store) GetArtist(ctx context.Context, id int64) (models.Artist, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT `+artistColumns+`
		FROM artists
		WHERE id = $1
	`, id)

	a, err := scanArtist(row)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Artist{}, ErrArtistNotFound
	}
	if err != nil {
		return models.Artist{}, fmt.Errorf("select artist: %w", err)
	}
	return a, nil
}

// ListArtists returns every artist in insertion order.
func (s *Store) ListArtists(ctx context.Context) ([]models.Artist, error) {
	return s.queryArtists(ctx, `
		SELECT `+artistColumns+`
		FROM artists
		ORDER BY id ASC
	`)
}

// RecentArtists returns the most recently listed artists, newest first.
func (s *Store) RecentArtists(ctx context.Context, limit int) ([]models.Artist, error) {
	return s.queryArtists(ctx, `
		SELECT `+artistColumns+`
		FROM artists
		ORDER BY id DESC
		LIMIT $1
	`, limit)
}

// SearchArtists matches artist names containing term, ignoring case.
func (s *Store) SearchArtists(ctx context.Context, term string) (models.SearchResult[models.Artist], error) {
	artists, err := s.queryArtists(ctx, `
		SELECT `+artistColumns+`
		FROM artists
		WHERE name ILIKE $1
		ORDER BY id ASC
	`, containsPattern(term))
	if err != nil {
		return models.SearchResult[models.Artist]{}, err
	}
	return models.NewSearchResult(artists), nil
}

// ArtistsByCityState returns artists whose city and state match exactly.
func (s *Store) ArtistsByCityState(ctx context.Context, city, state string) ([]models.Artist, error) {
	return s.queryArtists(ctx, `
		SELECT `+artistColumns+`
		FROM artists
		WHERE city = $1 AND state = $2
		ORDER BY id ASC
	`, city, state)
}

// CreateArtist inserts a new artist and returns it with its assigned ID.
func (s *Store) CreateArtist(ctx context.Context, artist models.Artist) (models.Artist, error) {
	err := s.withTx(ctx, func(tx *sql.Tx) error {
		return tx.QueryRowContext(ctx, `
			INSERT INTO artists (name, city, state, phone, website, facebook_link, image_link,
			                     genres, seeking_venue, seeking_description)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
			RETURNING id
		`, artist.Name, artist.City, artist.State, artist.Phone, artist.Website,
			artist.FacebookLink, artist.ImageLink, genresValue(artist.Genres),
			artist.SeekingVenue, artist.SeekingDescription,
		).Scan(&artist.ID)
	})
	if err != nil {
		return models.Artist{}, fmt.Errorf("insert artist: %w", err)
	}
	return artist, nil
}

// UpdateArtist overwrites every mutable field of the artist with the given values.
func (s *Store) UpdateArtist(ctx context.Context, id int64, artist models.Artist) (models.Artist, error) {
	var updated models.Artist
	err := s.withTx(ctx, func(tx *sql.Tx) error {
		row := tx.QueryRowContext(ctx, `
			UPDATE artists
			SET name = $1, city = $2, state = $3, phone = $4, website = $5,
			    facebook_link = $6, image_link = $7, genres = $8, seeking_venue = $9,
			    seeking_description = $10
			WHERE id = $11
			RETURNING `+artistColumns+`
		`, artist.Name, artist.City, artist.State, artist.Phone, artist.Website,
			artist.FacebookLink, artist.ImageLink, genresValue(artist.Genres),
			artist.SeekingVenue, artist.SeekingDescription, id)

		var err error
		updated, err = scanArtist(row)
		if errors.Is(err, sql.ErrNoRows) {
			return ErrArtistNotFound
		}
		return err
	})
	if errors.Is(err, ErrArtistNotFound) {
		return models.Artist{}, err
	}
	if err != nil {
		return models.Artist{}, fmt.Errorf("update artist: %w", err)
	}
	return updated, nil
}

// DeleteArtist removes an artist together with its availability slots.
// Artists that still have shows are not deleted.
func (s *Store) DeleteArtist(ctx context.Context, id int64) error {
	return s.deleteByID(ctx, "artists", id, ErrArtistNotFound)
}

func (s *Store) queryArtists(ctx context.Context, query string, args ...any) ([]models.Artist, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("select artists: %w", err)
	}
	defer rows.Close()

	var artists []models.Artist
	for rows.Next() {
		a, err := scanArtist(rows)
		if err != nil {
			return nil, fmt.Errorf("scan artist: %w", err)
		}
		artists = append(artists, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate artists: %w", err)
	}
	return artists, nil
}

func scanArtist(row rowScanner) (models.Artist, error) {
	var a models.Artist
	err := row.Scan(&a.ID, &a.Name, &a.City, &a.State, &a.Phone, &a.Website,
		&a.FacebookLink, &a.ImageLink, (*pq.StringArray)(&a.Genres), &a.SeekingVenue,
		&a.SeekingDescription)
	return a, err
}

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"fyyur/internal/models"
)

// ErrAvailabilityNotFound signals a missing availability slot.
var ErrAvailabilityNotFound = errors.New("availability not found")

// GetAvailability retrieves a single availability slot by ID.
func (s *Store) GetAvailability(ctx context.Context, id int64) (models.Availability, error) {
	var a models.Availability
	err := s.db.QueryRowContext(ctx, `
		SELECT id, artist_id, time
		FROM availabilities
		WHERE id = $1
	`, id).Scan(&a.ID, &a.ArtistID, &a.Time)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Availability{}, ErrAvailabilityNotFound
	}
	if err != nil {
		return models.Availability{}, fmt.Errorf("select availability: %w", err)
	}
	return a, nil
}

// AvailabilityByArtist returns the slots declared by an artist, earliest in the day first.
func (s *Store) AvailabilityByArtist(ctx context.Context, artistID int64) ([]models.Availability, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, artist_id, time
		FROM availabilities
		WHERE artist_id = $1
		ORDER BY time ASC, id ASC
	`, artistID)
	if err != nil {
		return nil, fmt.Errorf("select availability: %w", err)
	}
	defer rows.Close()

	var slots []models.Availability
	for rows.Next() {
		var a models.Availability
		if err := rows.Scan(&a.ID, &a.ArtistID, &a.Time); err != nil {
			return nil, fmt.Errorf("scan availability: %w", err)
		}
		slots = append(slots, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate availability: %w", err)
	}
	return slots, nil
}

// CreateAvailability inserts a new slot for an artist.
func (s *Store) CreateAvailability(ctx context.Context, slot models.Availability) (models.Availability, error) {
	err := s.withTx(ctx, func(tx *sql.Tx) error {
		err := tx.QueryRowContext(ctx, `
			INSERT INTO availabilities (artist_id, time)
			VALUES ($1, $2)
			RETURNING id
		`, slot.ArtistID, slot.Time).Scan(&slot.ID)
		if isForeignKeyViolation(err) {
			return ErrArtistNotFound
		}
		return err
	})
	if errors.Is(err, ErrArtistNotFound) {
		return models.Availability{}, err
	}
	if err != nil {
		return models.Availability{}, fmt.Errorf("insert availability: %w", err)
	}
	return slot, nil
}

// DeleteAvailability removes a slot.
func (s *Store) DeleteAvailability(ctx context.Context, id int64) error {
	return s.deleteByID(ctx, "availabilities", id, ErrAvailabilityNotFound)
}

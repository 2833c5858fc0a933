package main

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"fyyur/internal/models"
)

// demoStore is the slice of the store the demo seed writes through.
type demoStore interface {
	ListVenues(ctx context.Context) ([]models.Venue, error)
	CreateVenue(ctx context.Context, venue models.Venue) (models.Venue, error)
	CreateArtist(ctx context.Context, artist models.Artist) (models.Artist, error)
	CreateShow(ctx context.Context, show models.Show) (models.Show, error)
	CreateAvailability(ctx context.Context, slot models.Availability) (models.Availability, error)
}

// seedDemoData fills an empty directory with the sample venues, artists and
// shows. A directory that already lists venues is left untouched.
func seedDemoData(ctx context.Context, ds demoStore) error {
	existing, err := ds.ListVenues(ctx)
	if err != nil {
		return fmt.Errorf("check existing venues: %w", err)
	}
	if len(existing) > 0 {
		return nil
	}

	venueIDs := make([]int64, 0, len(demoVenues))
	for _, v := range demoVenues {
		created, err := ds.CreateVenue(ctx, v)
		if err != nil {
			return fmt.Errorf("seed venue %q: %w", v.Name, err)
		}
		venueIDs = append(venueIDs, created.ID)
	}

	artistIDs := make([]int64, 0, len(demoArtists))
	for _, a := range demoArtists {
		created, err := ds.CreateArtist(ctx, a)
		if err != nil {
			return fmt.Errorf("seed artist %q: %w", a.Name, err)
		}
		artistIDs = append(artistIDs, created.ID)
	}

	// The Wild Sax Band only plays at eight in the evening.
	if _, err := ds.CreateAvailability(ctx, models.Availability{ArtistID: artistIDs[2], Time: models.TimeOfDay{Hour: 20}}); err != nil {
		return fmt.Errorf("seed availability: %w", err)
	}

	for _, s := range demoShows {
		show := models.Show{VenueID: venueIDs[s.venue], ArtistID: artistIDs[s.artist], StartTime: s.start}
		if _, err := ds.CreateShow(ctx, show); err != nil {
			return fmt.Errorf("seed show: %w", err)
		}
	}

	log.Info().Int("venues", len(venueIDs)).Int("artists", len(artistIDs)).Int("shows", len(demoShows)).Msg("demo data loaded")
	return nil
}

var demoVenues = []models.Venue{
	{
		Name:               "The Musical Hop",
		Genres:             []string{"Jazz", "Reggae", "Classical", "Folk"},
		Address:            "1015 Folsom Street",
		City:               "San Francisco",
		State:              "CA",
		Phone:              "123-123-1234",
		Website:            "https://www.themusicalhop.com",
		FacebookLink:       "https://www.facebook.com/TheMusicalHop",
		SeekingTalent:      true,
		SeekingDescription: "We are on the lookout for a local artist to play every two weeks. Please call us.",
		ImageLink:          "https://images.unsplash.com/photo-1543900694-133f37abaaa5?w=400",
	},
	{
		Name:         "The Dueling Pianos Bar",
		Genres:       []string{"Classical", "R&B", "Hip-Hop"},
		Address:      "335 Delancey Street",
		City:         "New York",
		State:        "NY",
		Phone:        "914-003-1132",
		Website:      "https://www.theduelingpianos.com",
		FacebookLink: "https://www.facebook.com/theduelingpianos",
		ImageLink:    "https://images.unsplash.com/photo-1497032205916-ac775f0649ae?w=750",
	},
	{
		Name:         "Park Square Live Music & Coffee",
		Genres:       []string{"Rock n Roll", "Jazz", "Classical", "Folk"},
		Address:      "34 Whiskey Moore Ave",
		City:         "San Francisco",
		State:        "CA",
		Phone:        "415-000-1234",
		Website:      "https://www.parksquarelivemusicandcoffee.com",
		FacebookLink: "https://www.facebook.com/ParkSquareLiveMusicAndCoffee",
		ImageLink:    "https://images.unsplash.com/photo-1485686531765-ba63b07845a7?w=747",
	},
}

var demoArtists = []models.Artist{
	{
		Name:               "Guns N Petals",
		Genres:             []string{"Rock n Roll"},
		City:               "San Francisco",
		State:              "CA",
		Phone:              "326-123-5000",
		Website:            "https://www.gunsnpetalsband.com",
		FacebookLink:       "https://www.facebook.com/GunsNPetals",
		SeekingVenue:       true,
		SeekingDescription: "Looking for shows to perform at in the San Francisco Bay Area!",
		ImageLink:          "https://images.unsplash.com/photo-1549213783-8284d0336c4f?w=300",
	},
	{
		Name:         "Matt Quevedo",
		Genres:       []string{"Jazz"},
		City:         "New York",
		State:        "NY",
		Phone:        "300-400-5000",
		FacebookLink: "https://www.facebook.com/mattquevedo923251523",
		ImageLink:    "https://images.unsplash.com/photo-1495223153807-b916f75de8c5?w=334",
	},
	{
		Name:      "The Wild Sax Band",
		Genres:    []string{"Jazz", "Classical"},
		City:      "San Francisco",
		State:     "CA",
		Phone:     "432-325-5432",
		ImageLink: "https://images.unsplash.com/photo-1558369981-f9ca78462e61?w=794",
	},
}

type demoShow struct {
	venue, artist int
	start         time.Time
}

var demoShows = []demoShow{
	{venue: 0, artist: 0, start: time.Date(2019, 5, 21, 21, 30, 0, 0, time.UTC)},
	{venue: 2, artist: 1, start: time.Date(2019, 6, 15, 23, 0, 0, 0, time.UTC)},
	{venue: 2, artist: 2, start: time.Date(2035, 4, 1, 20, 0, 0, 0, time.Local)},
	{venue: 2, artist: 2, start: time.Date(2035, 4, 8, 20, 0, 0, 0, time.Local)},
	{venue: 2, artist: 2, start: time.Date(2035, 4, 15, 20, 0, 0, 0, time.Local)},
}

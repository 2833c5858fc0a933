package models

import "time"

// Show is a booking of one artist at one venue.
type Show struct {
	ID        int64     `json:"id"`
	VenueID   int64     `json:"venue_id"`
	ArtistID  int64     `json:"artist_id"`
	StartTime time.Time `json:"start_time"`
}

// ShowListing is a show joined with the display fields of its venue and artist.
type ShowListing struct {
	Show
	VenueName       string `json:"venue_name"`
	VenueImageLink  string `json:"venue_image_link,omitempty"`
	ArtistName      string `json:"artist_name"`
	ArtistImageLink string `json:"artist_image_link,omitempty"`
}

// Schedule splits a set of shows around a reference time.
type Schedule struct {
	Past          []ShowListing `json:"past_shows"`
	Upcoming      []ShowListing `json:"upcoming_shows"`
	PastCount     int           `json:"past_shows_count"`
	UpcomingCount int           `json:"upcoming_shows_count"`
}

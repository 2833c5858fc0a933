package models

// SearchResult carries a match count alongside the matching records.
type SearchResult[T any] struct {
	Count int `json:"count"`
	Items []T `json:"data"`
}

// NewSearchResult wraps items with their count.
func NewSearchResult[T any](items []T) SearchResult[T] {
	return SearchResult[T]{Count: len(items), Items: items}
}

// CityResults holds the venues and artists located in one city/state.
type CityResults struct {
	City        string   `json:"city"`
	State       string   `json:"state"`
	Count       int      `json:"count"`
	VenueCount  int      `json:"venue_count"`
	ArtistCount int      `json:"artist_count"`
	Venues      []Venue  `json:"venues"`
	Artists     []Artist `json:"artists"`
}

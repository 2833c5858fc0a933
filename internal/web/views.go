package web

import "fyyur/internal/models"

// Home is the landing page content.
type Home struct {
	Venues  []models.Venue
	Artists []models.Artist
}

// FormView carries a form being filled in, its inline errors and where it
// posts to.
type FormView struct {
	Action  string
	Editing bool
	Form    any
	Errors  map[string]string
}

// SearchView is the result of a name search over one kind of record.
type SearchView struct {
	Kind  string
	Term  string
	Count int
	Items []SearchHit
}

// SearchHit is one matching record.
type SearchHit struct {
	ID   int64
	Name string
}

// CityView is the city/state search page, with Results nil until a query ran.
type CityView struct {
	Query   string
	Errors  map[string]string
	Results *models.CityResults
}

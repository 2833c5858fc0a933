package web

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fyyur/internal/app/artists"
	"fyyur/internal/app/venues"
	"fyyur/internal/forms"
	"fyyur/internal/models"
)

func sampleListing() models.ShowListing {
	return models.ShowListing{
		Show:       models.Show{ID: 1, VenueID: 1, ArtistID: 4, StartTime: time.Date(2035, 4, 1, 20, 0, 0, 0, time.Local)},
		VenueName:  "The Musical Hop",
		ArtistName: "Guns N Petals",
	}
}

func TestRenderEveryPage(t *testing.T) {
	r, err := New()
	require.NoError(t, err)

	venue := models.Venue{ID: 1, Name: "The Musical Hop", City: "San Francisco", State: "CA", Genres: []string{"Jazz"}, SeekingTalent: true}
	artist := models.Artist{ID: 4, Name: "Guns N Petals", City: "San Francisco", State: "CA", Genres: []string{"Rock n Roll"}}
	schedule := models.Schedule{Upcoming: []models.ShowListing{sampleListing()}, UpcomingCount: 1}

	pages := map[string]any{
		"home":              Home{Venues: []models.Venue{venue}, Artists: []models.Artist{artist}},
		"venues":            models.GroupByArea([]models.Venue{venue}),
		"venue":             venues.Detail{Venue: venue, Schedule: schedule},
		"venue_form":        FormView{Action: "/venues/1/edit", Editing: true, Form: forms.NewVenueForm(venue), Errors: map[string]string{"name": "cannot be blank"}},
		"artists":           []models.Artist{artist},
		"artist":            artists.Detail{Artist: artist, Schedule: schedule, Availability: []models.Availability{{ID: 1, ArtistID: 4, Time: models.TimeOfDay{Hour: 18}}}},
		"artist_form":       FormView{Action: "/artists/create", Form: forms.ArtistForm{}},
		"shows":             []models.ShowListing{sampleListing()},
		"show_form":         FormView{Action: "/shows/create", Form: forms.ShowForm{}},
		"availability_form": FormView{Action: "/availability/create", Form: forms.AvailabilityForm{ArtistID: 4}},
		"search":            SearchView{Kind: "venues", Term: "Hop", Count: 1, Items: []SearchHit{{ID: 1, Name: "The Musical Hop"}}},
		"search_by_city":    CityView{Query: "San Francisco, CA", Results: &models.CityResults{City: "San Francisco", State: "CA", Count: 1, VenueCount: 1, Venues: []models.Venue{venue}}},
		"not_found":         nil,
		"server_error":      nil,
	}

	assert.ElementsMatch(t, keys(pages), r.Pages(), "every page template needs a render case")

	for name, data := range pages {
		t.Run(name, func(t *testing.T) {
			var buf bytes.Buffer
			err := r.Render(&buf, name, Page{Title: name, Flashes: []string{"Venue The Musical Hop was successfully listed!"}, Data: data})
			require.NoError(t, err)
			assert.Contains(t, buf.String(), "successfully listed")
		})
	}
}

func TestRenderShowsFieldErrorsAndSelections(t *testing.T) {
	r, err := New()
	require.NoError(t, err)

	var buf bytes.Buffer
	form := forms.VenueForm{State: "NY", Genres: []string{"Jazz", "Folk"}}
	err = r.Render(&buf, "venue_form", Page{Data: FormView{Action: "/venues/create", Form: form, Errors: map[string]string{"name": "cannot be blank"}}})
	require.NoError(t, err)

	html := buf.String()
	assert.Contains(t, html, "cannot be blank")
	assert.Contains(t, html, `<option value="NY" selected>`)
	assert.Contains(t, html, `<option value="Folk" selected>`)
	assert.NotContains(t, html, `<option value="Blues" selected>`)
}

func TestRenderUnknownPage(t *testing.T) {
	r, err := New()
	require.NoError(t, err)

	assert.Error(t, r.Render(&bytes.Buffer{}, "missing", Page{}))
}

func TestFormatDatetime(t *testing.T) {
	ts := time.Date(2019, 5, 21, 21, 30, 0, 0, time.Local)

	assert.Equal(t, "Tuesday May, 21, 2019 at 9:30PM", FormatDatetime(ts, "full"))
	assert.Equal(t, "Tue 05, 21, 2019 9:30PM", FormatDatetime(ts, "medium"))
	assert.Equal(t, "Tue 05, 21, 2019 9:30PM", FormatDatetime(ts, ""))
}

func keys(m map[string]any) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	return out
}

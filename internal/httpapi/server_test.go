package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/sessions"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fyyur/internal/app/artists"
	"fyyur/internal/app/search"
	"fyyur/internal/app/shows"
	"fyyur/internal/app/venues"
	"fyyur/internal/forms"
	"fyyur/internal/models"
	"fyyur/internal/store"
	"fyyur/internal/web"
)

type stubRenderer struct {
	name  string
	page  web.Page
	calls int
}

func (r *stubRenderer) Render(w io.Writer, name string, page web.Page) error {
	r.name = name
	r.page = page
	r.calls++
	_, err := io.WriteString(w, "page:"+name)
	return err
}

type stubVenueService struct {
	recent      []models.Venue
	recentLimit int
	detail      venues.Detail
	detailErr   error
	venue       models.Venue
	getErr      error
	search      models.SearchResult[models.Venue]
	created     *models.Venue
	createErr   error
	updated     *models.Venue
	updateErr   error
	deleteErr   error
	panicOnList bool
}

func (s *stubVenueService) Areas(context.Context) ([]models.Area, error) {
	if s.panicOnList {
		panic("venues exploded")
	}
	return nil, nil
}

func (s *stubVenueService) Recent(_ context.Context, limit int) ([]models.Venue, error) {
	s.recentLimit = limit
	return s.recent, nil
}

func (s *stubVenueService) Get(context.Context, int64) (models.Venue, error) {
	return s.venue, s.getErr
}

func (s *stubVenueService) Detail(context.Context, int64) (venues.Detail, error) {
	return s.detail, s.detailErr
}

func (s *stubVenueService) Search(context.Context, string) (models.SearchResult[models.Venue], error) {
	return s.search, nil
}

func (s *stubVenueService) Create(_ context.Context, venue models.Venue) (models.Venue, error) {
	s.created = &venue
	if s.createErr != nil {
		return models.Venue{}, s.createErr
	}
	venue.ID = 1
	return venue, nil
}

func (s *stubVenueService) Update(_ context.Context, id int64, venue models.Venue) (models.Venue, error) {
	s.updated = &venue
	if s.updateErr != nil {
		return models.Venue{}, s.updateErr
	}
	venue.ID = id
	return venue, nil
}

func (s *stubVenueService) Delete(context.Context, int64) error {
	return s.deleteErr
}

type stubArtistService struct {
	recent    []models.Artist
	detail    artists.Detail
	detailErr error
	created   *models.Artist
}

func (s *stubArtistService) List(context.Context) ([]models.Artist, error) { return nil, nil }

func (s *stubArtistService) Recent(context.Context, int) ([]models.Artist, error) {
	return s.recent, nil
}

func (s *stubArtistService) Get(context.Context, int64) (models.Artist, error) {
	return models.Artist{}, store.ErrArtistNotFound
}

func (s *stubArtistService) Detail(context.Context, int64) (artists.Detail, error) {
	return s.detail, s.detailErr
}

func (s *stubArtistService) Search(context.Context, string) (models.SearchResult[models.Artist], error) {
	return models.SearchResult[models.Artist]{}, nil
}

func (s *stubArtistService) Create(_ context.Context, artist models.Artist) (models.Artist, error) {
	s.created = &artist
	artist.ID = 1
	return artist, nil
}

func (s *stubArtistService) Update(context.Context, int64, models.Artist) (models.Artist, error) {
	return models.Artist{}, store.ErrArtistNotFound
}

func (s *stubArtistService) Delete(context.Context, int64) error { return nil }

type stubShowService struct {
	created   *models.Show
	createErr error
}

func (s *stubShowService) List(context.Context) ([]models.ShowListing, error) { return nil, nil }

func (s *stubShowService) Create(_ context.Context, show models.Show) (models.Show, error) {
	s.created = &show
	if s.createErr != nil {
		return models.Show{}, s.createErr
	}
	show.ID = 1
	return show, nil
}

func (s *stubShowService) Delete(context.Context, int64) error { return nil }

type stubAvailabilityService struct {
	slot      models.Availability
	getErr    error
	createErr error
	deleted   int64
}

func (s *stubAvailabilityService) Get(context.Context, int64) (models.Availability, error) {
	return s.slot, s.getErr
}

func (s *stubAvailabilityService) Create(_ context.Context, slot models.Availability) (models.Availability, error) {
	if s.createErr != nil {
		return models.Availability{}, s.createErr
	}
	slot.ID = 1
	return slot, nil
}

func (s *stubAvailabilityService) Delete(_ context.Context, id int64) error {
	s.deleted = id
	return nil
}

type stubSearchService struct {
	query string
}

func (s *stubSearchService) ByCity(_ context.Context, query string) (models.CityResults, error) {
	s.query = query
	city, state, err := search.ParseCityState(query)
	if err != nil {
		return models.CityResults{}, err
	}
	return models.CityResults{City: city, State: state, Count: 1, VenueCount: 1, Venues: []models.Venue{{ID: 1}}}, nil
}

type testServer struct {
	handler      http.Handler
	renderer     *stubRenderer
	venues       *stubVenueService
	artists      *stubArtistService
	shows        *stubShowService
	availability *stubAvailabilityService
	search       *stubSearchService
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	ts := &testServer{
		renderer:     &stubRenderer{},
		venues:       &stubVenueService{},
		artists:      &stubArtistService{},
		shows:        &stubShowService{},
		availability: &stubAvailabilityService{},
		search:       &stubSearchService{},
	}
	server := New(
		ts.venues,
		ts.artists,
		ts.shows,
		ts.availability,
		ts.search,
		ts.renderer,
		sessions.NewCookieStore([]byte("test-session-secret-0123456789abcdef")),
		prometheus.NewRegistry(),
	)
	ts.handler = server.Routes()
	return ts
}

func (ts *testServer) do(req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	ts.handler.ServeHTTP(rec, req)
	return rec
}

func postForm(path string, values url.Values) *http.Request {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

func validVenueForm() url.Values {
	return url.Values{
		"name":    {"The Musical Hop"},
		"address": {"1015 Folsom Street"},
		"city":    {"San Francisco"},
		"state":   {"CA"},
		"genres":  {"Jazz", "Reggae"},
	}
}

func TestHomeShowsRecentListings(t *testing.T) {
	ts := newTestServer(t)
	ts.venues.recent = []models.Venue{{ID: 2, Name: "Newest"}, {ID: 1, Name: "Oldest"}}

	rec := ts.do(httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "home", ts.renderer.name)
	assert.Equal(t, recentLimit, ts.venues.recentLimit)
	home, ok := ts.renderer.page.Data.(web.Home)
	require.True(t, ok)
	assert.Equal(t, "Newest", home.Venues[0].Name)
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
}

func TestVenueDetail(t *testing.T) {
	ts := newTestServer(t)
	ts.venues.detail = venues.Detail{
		Venue:    models.Venue{ID: 1, Name: "The Musical Hop"},
		Schedule: models.Schedule{UpcomingCount: 1, Upcoming: []models.ShowListing{{Show: models.Show{ID: 9, StartTime: time.Now().Add(time.Hour)}}}},
	}

	rec := ts.do(httptest.NewRequest(http.MethodGet, "/venues/1", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "venue", ts.renderer.name)
	assert.Equal(t, "The Musical Hop", ts.renderer.page.Title)
}

func TestNotFoundPages(t *testing.T) {
	ts := newTestServer(t)
	ts.venues.detailErr = store.ErrVenueNotFound
	ts.artists.detailErr = store.ErrArtistNotFound

	for _, path := range []string{"/venues/404", "/artists/404", "/nowhere", "/venues/abc", "/venues/99999999999999999999"} {
		t.Run(path, func(t *testing.T) {
			rec := ts.do(httptest.NewRequest(http.MethodGet, path, nil))
			assert.Equal(t, http.StatusNotFound, rec.Code)
			assert.Equal(t, "not_found", ts.renderer.name)
		})
	}
}

func TestStoreFailureRendersErrorPage(t *testing.T) {
	ts := newTestServer(t)
	ts.artists.detailErr = errors.New("connection refused")

	rec := ts.do(httptest.NewRequest(http.MethodGet, "/artists/4", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "server_error", ts.renderer.name)
	assert.NotContains(t, rec.Body.String(), "connection refused")
}

func TestPanicRendersErrorPage(t *testing.T) {
	ts := newTestServer(t)
	ts.venues.panicOnList = true

	rec := ts.do(httptest.NewRequest(http.MethodGet, "/venues", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "server_error", ts.renderer.name)
}

func TestCreateVenueFlashesAfterRedirect(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(postForm("/venues/create", validVenueForm()))

	require.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/", rec.Header().Get("Location"))
	require.NotNil(t, ts.venues.created)
	assert.Equal(t, []string{"Jazz", "Reggae"}, ts.venues.created.Genres)

	follow := httptest.NewRequest(http.MethodGet, "/", nil)
	for _, c := range rec.Result().Cookies() {
		follow.AddCookie(c)
	}
	ts.do(follow)

	assert.Equal(t, []string{"Venue The Musical Hop was successfully listed!"}, ts.renderer.page.Flashes)
}

func TestCreateVenueInvalidRerendersForm(t *testing.T) {
	ts := newTestServer(t)
	values := validVenueForm()
	values.Del("name")
	values.Set("state", "XX")

	rec := ts.do(postForm("/venues/create", values))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "venue_form", ts.renderer.name)
	assert.Nil(t, ts.venues.created, "invalid input must not reach the service")

	view, ok := ts.renderer.page.Data.(web.FormView)
	require.True(t, ok)
	assert.Contains(t, view.Errors, "name")
	assert.Contains(t, view.Errors, "state")
}

func TestCreateVenueStoreFailureFlashes(t *testing.T) {
	ts := newTestServer(t)
	ts.venues.createErr = errors.New("insert venue: boom")

	rec := ts.do(postForm("/venues/create", validVenueForm()))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "venue_form", ts.renderer.name)
	assert.Equal(t, []string{"An error occurred. Venue The Musical Hop could not be listed."}, ts.renderer.page.Flashes)
}

func TestUpdateVenueRedirectsToDetail(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(postForm("/venues/7/edit", validVenueForm()))

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/venues/7", rec.Header().Get("Location"))
	require.NotNil(t, ts.venues.updated)
	assert.Equal(t, "The Musical Hop", ts.venues.updated.Name)
}

func TestEditVenuePrefillsForm(t *testing.T) {
	ts := newTestServer(t)
	ts.venues.venue = models.Venue{ID: 3, Name: "Park Square", State: "CA", SeekingDescription: "Open mic"}

	rec := ts.do(httptest.NewRequest(http.MethodGet, "/venues/3/edit", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	view := ts.renderer.page.Data.(web.FormView)
	assert.True(t, view.Editing)
	assert.Equal(t, "/venues/3/edit", view.Action)
}

func TestDeleteVenueReportsOutcome(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantBody   string
	}{
		{name: "deleted", wantStatus: http.StatusOK, wantBody: deleteOK},
		{name: "missing", err: store.ErrVenueNotFound, wantStatus: http.StatusNotFound, wantBody: deleteFailed},
		{name: "has shows", err: store.ErrInUse, wantStatus: http.StatusConflict, wantBody: deleteFailed},
		{name: "store failure", err: errors.New("commit tx: boom"), wantStatus: http.StatusInternalServerError, wantBody: deleteFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts := newTestServer(t)
			ts.venues.deleteErr = tt.err

			rec := ts.do(httptest.NewRequest(http.MethodDelete, "/venues/1", nil))

			assert.Equal(t, tt.wantStatus, rec.Code)
			var body deleteResponse
			require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
			assert.Equal(t, tt.wantBody, body.Status)
			assert.Equal(t, "/", body.RedirectURL)
		})
	}
}

func TestCreateArtistRedirectsToArtists(t *testing.T) {
	ts := newTestServer(t)
	values := validVenueForm()
	values.Del("address")
	values.Set("seeking_venue", "y")

	rec := ts.do(postForm("/artists/create", values))

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/artists", rec.Header().Get("Location"))
	require.NotNil(t, ts.artists.created)
	assert.True(t, ts.artists.created.SeekingVenue)
}

func TestCreateShowOutcomes(t *testing.T) {
	tests := []struct {
		name      string
		err       error
		wantFlash string
	}{
		{name: "unknown venue", err: store.ErrVenueNotFound, wantFlash: "Invalid Artist id or Venue id"},
		{name: "dangling reference", err: store.ErrUnknownReference, wantFlash: "Invalid Artist id or Venue id"},
		{name: "unavailable", err: shows.ErrArtistUnavailable, wantFlash: "Artist is not available at 7:00PM."},
		{name: "store failure", err: errors.New("boom"), wantFlash: "An error occurred. Show could not be listed."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts := newTestServer(t)
			ts.shows.createErr = tt.err

			rec := ts.do(postForm("/shows/create", url.Values{
				"artist_id":  {"4"},
				"venue_id":   {"1"},
				"start_time": {"2035-04-01 19:00:00"},
			}))

			assert.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, "show_form", ts.renderer.name)
			assert.Equal(t, []string{tt.wantFlash}, ts.renderer.page.Flashes)
		})
	}
}

func TestCreateShowSuccess(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(postForm("/shows/create", url.Values{
		"artist_id":  {"4"},
		"venue_id":   {"1"},
		"start_time": {"2035-04-01T18:00"},
	}))

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	require.NotNil(t, ts.shows.created)
	assert.Equal(t, 18, ts.shows.created.StartTime.Hour())
}

func TestCreateAvailabilityUnknownArtist(t *testing.T) {
	ts := newTestServer(t)
	ts.availability.createErr = store.ErrArtistNotFound

	rec := ts.do(postForm("/availability/create", url.Values{"artist_id": {"99"}, "time": {"18:00"}}))

	assert.Equal(t, http.StatusOK, rec.Code)
	view := ts.renderer.page.Data.(web.FormView)
	assert.Contains(t, view.Errors, "artist_id")
}

func TestCreateAvailabilityRedirectsToArtist(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(postForm("/availability/create", url.Values{"artist_id": {"4"}, "time": {"18:00"}}))

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/artists/4", rec.Header().Get("Location"))
}

func TestNewAvailabilityPrefillsArtist(t *testing.T) {
	ts := newTestServer(t)

	ts.do(httptest.NewRequest(http.MethodGet, "/availability/create?artist_id=4", nil))

	view := ts.renderer.page.Data.(web.FormView)
	form, ok := view.Form.(forms.AvailabilityForm)
	require.True(t, ok)
	assert.Equal(t, int64(4), form.ArtistID)
}

func TestDeleteAvailabilityRedirectsToArtist(t *testing.T) {
	ts := newTestServer(t)
	ts.availability.slot = models.Availability{ID: 3, ArtistID: 4}

	rec := ts.do(httptest.NewRequest(http.MethodDelete, "/availability/3", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	var body deleteResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.Equal(t, deleteOK, body.Status)
	assert.Equal(t, "/artists/4", body.RedirectURL)
	assert.Equal(t, int64(3), ts.availability.deleted)
}

func TestSearchVenues(t *testing.T) {
	ts := newTestServer(t)
	ts.venues.search = models.NewSearchResult([]models.Venue{{ID: 1, Name: "The Musical Hop"}, {ID: 3, Name: "Park Square Live Music & Coffee"}})

	rec := ts.do(postForm("/venues/search", url.Values{"search_term": {"Music"}}))

	assert.Equal(t, http.StatusOK, rec.Code)
	view := ts.renderer.page.Data.(web.SearchView)
	assert.Equal(t, "venues", view.Kind)
	assert.Equal(t, 2, view.Count)
	assert.Len(t, view.Items, 2)
}

func TestCitySearch(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(postForm("/search_by_city", url.Values{"search_term": {"Boston, MA"}}))

	assert.Equal(t, http.StatusOK, rec.Code)
	view := ts.renderer.page.Data.(web.CityView)
	require.NotNil(t, view.Results)
	assert.Equal(t, "Boston", view.Results.City)
	assert.Equal(t, "MA", view.Results.State)

	ts.do(postForm("/search_by_city", url.Values{"search_term": {"Boston"}}))
	view = ts.renderer.page.Data.(web.CityView)
	assert.Nil(t, view.Results)
	assert.Contains(t, view.Errors, "search_term")
}

func TestHealthAndMetrics(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "OK", rec.Body.String())

	rec = ts.do(httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `http_requests_total{method="GET",route="/health",status="200"} 1`)
}

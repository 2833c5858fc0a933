package httpapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/gorilla/sessions"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"fyyur/internal/app/artists"
	"fyyur/internal/app/venues"
	"fyyur/internal/http/middleware"
	"fyyur/internal/logging"
	"fyyur/internal/models"
	"fyyur/internal/store"
	"fyyur/internal/web"
)

const (
	sessionName  = "fyyur"
	recentLimit  = 10
	deleteFailed = "failed"
	deleteOK     = "success"
)

// VenueService describes venue workflows.
type VenueService interface {
	Areas(ctx context.Context) ([]models.Area, error)
	Recent(ctx context.Context, limit int) ([]models.Venue, error)
	Get(ctx context.Context, id int64) (models.Venue, error)
	Detail(ctx context.Context, id int64) (venues.Detail, error)
	Search(ctx context.Context, term string) (models.SearchResult[models.Venue], error)
	Create(ctx context.Context, venue models.Venue) (models.Venue, error)
	Update(ctx context.Context, id int64, venue models.Venue) (models.Venue, error)
	Delete(ctx context.Context, id int64) error
}

// ArtistService describes artist workflows.
type ArtistService interface {
	List(ctx context.Context) ([]models.Artist, error)
	Recent(ctx context.Context, limit int) ([]models.Artist, error)
	Get(ctx context.Context, id int64) (models.Artist, error)
	Detail(ctx context.Context, id int64) (artists.Detail, error)
	Search(ctx context.Context, term string) (models.SearchResult[models.Artist], error)
	Create(ctx context.Context, artist models.Artist) (models.Artist, error)
	Update(ctx context.Context, id int64, artist models.Artist) (models.Artist, error)
	Delete(ctx context.Context, id int64) error
}

// ShowService coordinates show bookings.
type ShowService interface {
	List(ctx context.Context) ([]models.ShowListing, error)
	Create(ctx context.Context, show models.Show) (models.Show, error)
	Delete(ctx context.Context, id int64) error
}

// AvailabilityService manages artist availability slots.
type AvailabilityService interface {
	Get(ctx context.Context, id int64) (models.Availability, error)
	Create(ctx context.Context, slot models.Availability) (models.Availability, error)
	Delete(ctx context.Context, id int64) error
}

// CitySearchService finds venues and artists by location.
type CitySearchService interface {
	ByCity(ctx context.Context, query string) (models.CityResults, error)
}

// Renderer executes a named page template.
type Renderer interface {
	Render(w io.Writer, name string, page web.Page) error
}

// Server wires HTTP handlers to the underlying services.
type Server struct {
	venues       VenueService
	artists      ArtistService
	shows        ShowService
	availability AvailabilityService
	search       CitySearchService

	renderer Renderer
	sessions sessions.Store
	registry *prometheus.Registry
}

// New configures a Server. Request metrics are registered with registry and
// served on /metrics.
func New(
	venues VenueService,
	artists ArtistService,
	shows ShowService,
	availability AvailabilityService,
	search CitySearchService,
	renderer Renderer,
	sessions sessions.Store,
	registry *prometheus.Registry,
) *Server {
	return &Server{
		venues:       venues,
		artists:      artists,
		shows:        shows,
		availability: availability,
		search:       search,
		renderer:     renderer,
		sessions:     sessions,
		registry:     registry,
	}
}

// Routes exposes the directory pages wrapped in logging and panic recovery.
func (s *Server) Routes() http.Handler {
	router := mux.NewRouter()
	router.Use(middleware.NewMetrics(s.registry).Middleware)

	router.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	}).Methods(http.MethodGet)
	router.Handle("/metrics", promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{})).Methods(http.MethodGet)

	router.HandleFunc("/", s.handleHome).Methods(http.MethodGet)

	router.HandleFunc("/venues", s.handleVenues).Methods(http.MethodGet)
	router.HandleFunc("/venues/search", s.handleSearchVenues).Methods(http.MethodPost)
	router.HandleFunc("/venues/create", s.handleNewVenue).Methods(http.MethodGet)
	router.HandleFunc("/venues/create", s.handleCreateVenue).Methods(http.MethodPost)
	router.HandleFunc("/venues/{id:[0-9]+}", s.handleVenue).Methods(http.MethodGet)
	router.HandleFunc("/venues/{id:[0-9]+}", s.handleDeleteVenue).Methods(http.MethodDelete)
	router.HandleFunc("/venues/{id:[0-9]+}/edit", s.handleEditVenue).Methods(http.MethodGet)
	router.HandleFunc("/venues/{id:[0-9]+}/edit", s.handleUpdateVenue).Methods(http.MethodPost)

	router.HandleFunc("/artists", s.handleArtists).Methods(http.MethodGet)
	router.HandleFunc("/artists/search", s.handleSearchArtists).Methods(http.MethodPost)
	router.HandleFunc("/artists/create", s.handleNewArtist).Methods(http.MethodGet)
	router.HandleFunc("/artists/create", s.handleCreateArtist).Methods(http.MethodPost)
	router.HandleFunc("/artists/{id:[0-9]+}", s.handleArtist).Methods(http.MethodGet)
	router.HandleFunc("/artists/{id:[0-9]+}", s.handleDeleteArtist).Methods(http.MethodDelete)
	router.HandleFunc("/artists/{id:[0-9]+}/edit", s.handleEditArtist).Methods(http.MethodGet)
	router.HandleFunc("/artists/{id:[0-9]+}/edit", s.handleUpdateArtist).Methods(http.MethodPost)

	router.HandleFunc("/shows", s.handleShows).Methods(http.MethodGet)
	router.HandleFunc("/shows/create", s.handleNewShow).Methods(http.MethodGet)
	router.HandleFunc("/shows/create", s.handleCreateShow).Methods(http.MethodPost)
	router.HandleFunc("/shows/{id:[0-9]+}", s.handleDeleteShow).Methods(http.MethodDelete)

	router.HandleFunc("/availability/create", s.handleNewAvailability).Methods(http.MethodGet)
	router.HandleFunc("/availability/create", s.handleCreateAvailability).Methods(http.MethodPost)
	router.HandleFunc("/availability/{id:[0-9]+}", s.handleDeleteAvailability).Methods(http.MethodDelete)

	router.HandleFunc("/search_by_city", s.handleCitySearchForm).Methods(http.MethodGet)
	router.HandleFunc("/search_by_city", s.handleCitySearch).Methods(http.MethodPost)

	router.NotFoundHandler = http.HandlerFunc(s.notFound)

	var handler http.Handler = router
	handler = middleware.Recovery(http.HandlerFunc(s.internalError))(handler)
	handler = middleware.RequestLogging()(handler)
	return handler
}

func (s *Server) handleHome(w http.ResponseWriter, r *http.Request) {
	recentVenues, err := s.venues.Recent(r.Context(), recentLimit)
	if err != nil {
		s.serverError(w, r, err)
		return
	}
	recentArtists, err := s.artists.Recent(r.Context(), recentLimit)
	if err != nil {
		s.serverError(w, r, err)
		return
	}
	s.render(w, r, http.StatusOK, "home", "", web.Home{Venues: recentVenues, Artists: recentArtists})
}

// render executes a page into a buffer, so a template failure still yields a
// clean 500, and hands over any pending flash messages.
func (s *Server) render(w http.ResponseWriter, r *http.Request, status int, name, title string, data any) {
	page := web.Page{Title: title, Data: data, Flashes: s.takeFlashes(w, r)}

	var buf bytes.Buffer
	if err := s.renderer.Render(&buf, name, page); err != nil {
		logging.WithContext(r.Context()).Error().Err(err).Str("template", name).Msg("render page")
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}

func (s *Server) notFound(w http.ResponseWriter, r *http.Request) {
	s.render(w, r, http.StatusNotFound, "not_found", "Not found", nil)
}

func (s *Server) internalError(w http.ResponseWriter, r *http.Request) {
	s.render(w, r, http.StatusInternalServerError, "server_error", "Server error", nil)
}

// serverError logs the failure with its detail and shows the generic error page.
func (s *Server) serverError(w http.ResponseWriter, r *http.Request, err error) {
	logging.WithContext(r.Context()).Error().Err(err).
		Str("method", r.Method).
		Str("path", r.URL.Path).
		Msg("request failed")
	s.internalError(w, r)
}

func (s *Server) flash(w http.ResponseWriter, r *http.Request, message string) {
	session, err := s.sessions.Get(r, sessionName)
	if session == nil {
		logging.WithContext(r.Context()).Warn().Err(err).Msg("open session")
		return
	}
	session.AddFlash(message)
	if err := session.Save(r, w); err != nil {
		logging.WithContext(r.Context()).Warn().Err(err).Msg("save session")
	}
}

func (s *Server) takeFlashes(w http.ResponseWriter, r *http.Request) []string {
	session, _ := s.sessions.Get(r, sessionName)
	if session == nil {
		return nil
	}
	raw := session.Flashes()
	if len(raw) == 0 {
		return nil
	}
	if err := session.Save(r, w); err != nil {
		logging.WithContext(r.Context()).Warn().Err(err).Msg("save session")
	}

	messages := make([]string, 0, len(raw))
	for _, f := range raw {
		if msg, ok := f.(string); ok {
			messages = append(messages, msg)
		}
	}
	return messages
}

// logFailure records a failed write whose user-facing message stays generic.
func logFailure(r *http.Request, err error, msg string) {
	logging.WithContext(r.Context()).Error().Err(err).Str("path", r.URL.Path).Msg(msg)
}

func redirect(w http.ResponseWriter, r *http.Request, url string) {
	http.Redirect(w, r, url, http.StatusSeeOther)
}

type deleteResponse struct {
	Status      string `json:"status"`
	RedirectURL string `json:"redirect_url"`
}

// writeDeleteResult reports the outcome of a DELETE to the page script.
func (s *Server) writeDeleteResult(w http.ResponseWriter, r *http.Request, err error, redirectURL string) {
	switch {
	case err == nil:
		writeJSON(w, http.StatusOK, deleteResponse{Status: deleteOK, RedirectURL: redirectURL})
	case isNotFound(err):
		writeJSON(w, http.StatusNotFound, deleteResponse{Status: deleteFailed, RedirectURL: redirectURL})
	case errors.Is(err, store.ErrInUse):
		writeJSON(w, http.StatusConflict, deleteResponse{Status: deleteFailed, RedirectURL: redirectURL})
	default:
		logging.WithContext(r.Context()).Error().Err(err).Str("path", r.URL.Path).Msg("delete failed")
		writeJSON(w, http.StatusInternalServerError, deleteResponse{Status: deleteFailed, RedirectURL: redirectURL})
	}
}

func isNotFound(err error) bool {
	return errors.Is(err, store.ErrVenueNotFound) ||
		errors.Is(err, store.ErrArtistNotFound) ||
		errors.Is(err, store.ErrShowNotFound) ||
		errors.Is(err, store.ErrAvailabilityNotFound)
}

// pathID reads the numeric {id} route variable. The route pattern guarantees
// digits, so only overflow can fail here.
func pathID(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	return id, err == nil
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload != nil {
		_ = json.NewEncoder(w).Encode(payload)
	}
}

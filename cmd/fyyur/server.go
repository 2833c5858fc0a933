package main

import (
	"fmt"
	"net/http"

	"github.com/gorilla/sessions"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"fyyur/internal/app/artists"
	"fyyur/internal/app/availability"
	"fyyur/internal/app/search"
	"fyyur/internal/app/shows"
	"fyyur/internal/app/venues"
	"fyyur/internal/config"
	"fyyur/internal/httpapi"
	"fyyur/internal/store"
	"fyyur/internal/web"
)

func newHTTPHandler(cfg *config.Config, dataStore *store.Store) (http.Handler, error) {
	renderer, err := web.New()
	if err != nil {
		return nil, fmt.Errorf("load templates: %w", err)
	}

	sessionStore := sessions.NewCookieStore([]byte(cfg.Session.Secret))
	sessionStore.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   3600,
		HttpOnly: true,
		Secure:   cfg.IsProduction(),
		SameSite: http.SameSiteLaxMode,
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	venueSvc := venues.New(dataStore, nil)
	artistSvc := artists.New(dataStore, nil)
	showSvc := shows.New(dataStore)
	availabilitySvc := availability.New(dataStore)
	searchSvc := search.New(dataStore)

	return httpapi.New(venueSvc, artistSvc, showSvc, availabilitySvc, searchSvc, renderer, sessionStore, registry).Routes(), nil
}

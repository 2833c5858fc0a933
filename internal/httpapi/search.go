package httpapi

import (
	"errors"
	"net/http"

	"fyyur/internal/app/search"
	"fyyur/internal/web"
)

func (s *Server) handleCitySearchForm(w http.ResponseWriter, r *http.Request) {
	s.render(w, r, http.StatusOK, "search_by_city", "Search by city", web.CityView{})
}

func (s *Server) handleCitySearch(w http.ResponseWriter, r *http.Request) {
	view := web.CityView{Query: r.PostFormValue("search_term")}

	results, err := s.search.ByCity(r.Context(), view.Query)
	switch {
	case err == nil:
		view.Results = &results
	case errors.Is(err, search.ErrInvalidQuery):
		view.Errors = map[string]string{"search_term": err.Error()}
	default:
		s.serverError(w, r, err)
		return
	}
	s.render(w, r, http.StatusOK, "search_by_city", "Search by city", view)
}

package httpapi

import (
	"errors"
	"fmt"
	"net/http"

	"fyyur/internal/app/shows"
	"fyyur/internal/forms"
	"fyyur/internal/store"
	"fyyur/internal/web"
)

func (s *Server) handleShows(w http.ResponseWriter, r *http.Request) {
	listings, err := s.shows.List(r.Context())
	if err != nil {
		s.serverError(w, r, err)
		return
	}
	s.render(w, r, http.StatusOK, "shows", "Shows", listings)
}

func (s *Server) handleNewShow(w http.ResponseWriter, r *http.Request) {
	s.render(w, r, http.StatusOK, "show_form", "New show", web.FormView{Action: "/shows/create", Form: forms.ShowForm{}})
}

func (s *Server) handleCreateShow(w http.ResponseWriter, r *http.Request) {
	view := web.FormView{Action: "/shows/create"}

	var form forms.ShowForm
	err := forms.Decode(r, &form)
	if err == nil {
		err = form.Validate()
	}
	view.Form = form
	if err != nil {
		view.Errors = forms.FieldErrors(err)
		s.render(w, r, http.StatusOK, "show_form", "New show", view)
		return
	}

	show, err := form.Show()
	if err == nil {
		_, err = s.shows.Create(r.Context(), show)
	}
	switch {
	case err == nil:
		s.flash(w, r, "Show was successfully listed!")
		redirect(w, r, "/")
		return
	case isNotFound(err), errors.Is(err, store.ErrUnknownReference):
		s.flash(w, r, "Invalid Artist id or Venue id")
	case errors.Is(err, shows.ErrArtistUnavailable):
		s.flash(w, r, fmt.Sprintf("Artist is not available at %s.", show.StartTime.Format("3:04PM")))
	default:
		logFailure(r, err, "create show")
		s.flash(w, r, "An error occurred. Show could not be listed.")
	}
	s.render(w, r, http.StatusOK, "show_form", "New show", view)
}

func (s *Server) handleDeleteShow(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		s.writeDeleteResult(w, r, store.ErrShowNotFound, "/shows")
		return
	}
	s.writeDeleteResult(w, r, s.shows.Delete(r.Context(), id), "/shows")
}

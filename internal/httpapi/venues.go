package httpapi

import (
	"fmt"
	"net/http"

	"fyyur/internal/forms"
	"fyyur/internal/store"
	"fyyur/internal/web"
)

func (s *Server) handleVenues(w http.ResponseWriter, r *http.Request) {
	areas, err := s.venues.Areas(r.Context())
	if err != nil {
		s.serverError(w, r, err)
		return
	}
	s.render(w, r, http.StatusOK, "venues", "Venues", areas)
}

func (s *Server) handleSearchVenues(w http.ResponseWriter, r *http.Request) {
	term := r.PostFormValue("search_term")
	result, err := s.venues.Search(r.Context(), term)
	if err != nil {
		s.serverError(w, r, err)
		return
	}

	hits := make([]web.SearchHit, 0, len(result.Items))
	for _, v := range result.Items {
		hits = append(hits, web.SearchHit{ID: v.ID, Name: v.Name})
	}
	s.render(w, r, http.StatusOK, "search", "Venue search", web.SearchView{
		Kind:  "venues",
		Term:  term,
		Count: result.Count,
		Items: hits,
	})
}

func (s *Server) handleVenue(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		s.notFound(w, r)
		return
	}

	detail, err := s.venues.Detail(r.Context(), id)
	if err != nil {
		if isNotFound(err) {
			s.notFound(w, r)
			return
		}
		s.serverError(w, r, err)
		return
	}
	s.render(w, r, http.StatusOK, "venue", detail.Name, detail)
}

func (s *Server) handleNewVenue(w http.ResponseWriter, r *http.Request) {
	s.renderVenueForm(w, r, web.FormView{Action: "/venues/create", Form: forms.VenueForm{}})
}

func (s *Server) handleCreateVenue(w http.ResponseWriter, r *http.Request) {
	view := web.FormView{Action: "/venues/create"}

	var form forms.VenueForm
	err := forms.Decode(r, &form)
	if err == nil {
		err = form.Validate()
	}
	view.Form = form
	if err != nil {
		view.Errors = forms.FieldErrors(err)
		s.renderVenueForm(w, r, view)
		return
	}

	created, err := s.venues.Create(r.Context(), form.Venue())
	if err != nil {
		logFailure(r, err, "create venue")
		s.flash(w, r, fmt.Sprintf("An error occurred. Venue %s could not be listed.", form.Name))
		s.renderVenueForm(w, r, view)
		return
	}

	s.flash(w, r, fmt.Sprintf("Venue %s was successfully listed!", created.Name))
	redirect(w, r, "/")
}

func (s *Server) handleEditVenue(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		s.notFound(w, r)
		return
	}

	venue, err := s.venues.Get(r.Context(), id)
	if err != nil {
		if isNotFound(err) {
			s.notFound(w, r)
			return
		}
		s.serverError(w, r, err)
		return
	}

	s.renderVenueForm(w, r, web.FormView{
		Action:  fmt.Sprintf("/venues/%d/edit", id),
		Editing: true,
		Form:    forms.NewVenueForm(venue),
	})
}

func (s *Server) handleUpdateVenue(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		s.notFound(w, r)
		return
	}
	view := web.FormView{Action: fmt.Sprintf("/venues/%d/edit", id), Editing: true}

	var form forms.VenueForm
	err := forms.Decode(r, &form)
	if err == nil {
		err = form.Validate()
	}
	view.Form = form
	if err != nil {
		view.Errors = forms.FieldErrors(err)
		s.renderVenueForm(w, r, view)
		return
	}

	updated, err := s.venues.Update(r.Context(), id, form.Venue())
	if err != nil {
		if isNotFound(err) {
			s.notFound(w, r)
			return
		}
		logFailure(r, err, "update venue")
		s.flash(w, r, fmt.Sprintf("An error occurred. Venue %s could not be updated.", form.Name))
		s.renderVenueForm(w, r, view)
		return
	}

	s.flash(w, r, fmt.Sprintf("Venue %s was successfully updated!", updated.Name))
	redirect(w, r, fmt.Sprintf("/venues/%d", id))
}

func (s *Server) handleDeleteVenue(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		s.writeDeleteResult(w, r, store.ErrVenueNotFound, "/")
		return
	}
	s.writeDeleteResult(w, r, s.venues.Delete(r.Context(), id), "/")
}

func (s *Server) renderVenueForm(w http.ResponseWriter, r *http.Request, view web.FormView) {
	title := "New venue"
	if view.Editing {
		title = "Edit venue"
	}
	s.render(w, r, http.StatusOK, "venue_form", title, view)
}

package httpapi

import (
	"fmt"
	"net/http"

	"fyyur/internal/forms"
	"fyyur/internal/store"
	"fyyur/internal/web"
)

func (s *Server) handleArtists(w http.ResponseWriter, r *http.Request) {
	list, err := s.artists.List(r.Context())
	if err != nil {
		s.serverError(w, r, err)
		return
	}
	s.render(w, r, http.StatusOK, "artists", "Artists", list)
}

func (s *Server) handleSearchArtists(w http.ResponseWriter, r *http.Request) {
	term := r.PostFormValue("search_term")
	result, err := s.artists.Search(r.Context(), term)
	if err != nil {
		s.serverError(w, r, err)
		return
	}

	hits := make([]web.SearchHit, 0, len(result.Items))
	for _, a := range result.Items {
		hits = append(hits, web.SearchHit{ID: a.ID, Name: a.Name})
	}
	s.render(w, r, http.StatusOK, "search", "Artist search", web.SearchView{
		Kind:  "artists",
		Term:  term,
		Count: result.Count,
		Items: hits,
	})
}

func (s *Server) handleArtist(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		s.notFound(w, r)
		return
	}

	detail, err := s.artists.Detail(r.Context(), id)
	if err != nil {
		if isNotFound(err) {
			s.notFound(w, r)
			return
		}
		s.serverError(w, r, err)
		return
	}
	s.render(w, r, http.StatusOK, "artist", detail.Name, detail)
}

func (s *Server) handleNewArtist(w http.ResponseWriter, r *http.Request) {
	s.renderArtistForm(w, r, web.FormView{Action: "/artists/create", Form: forms.ArtistForm{}})
}

func (s *Server) handleCreateArtist(w http.ResponseWriter, r *http.Request) {
	view := web.FormView{Action: "/artists/create"}

	var form forms.ArtistForm
	err := forms.Decode(r, &form)
	if err == nil {
		err = form.Validate()
	}
	view.Form = form
	if err != nil {
		view.Errors = forms.FieldErrors(err)
		s.renderArtistForm(w, r, view)
		return
	}

	created, err := s.artists.Create(r.Context(), form.Artist())
	if err != nil {
		logFailure(r, err, "create artist")
		s.flash(w, r, fmt.Sprintf("An error occurred. Artist %s could not be listed.", form.Name))
		s.renderArtistForm(w, r, view)
		return
	}

	s.flash(w, r, fmt.Sprintf("Artist %s was successfully listed!", created.Name))
	redirect(w, r, "/artists")
}

func (s *Server) handleEditArtist(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		s.notFound(w, r)
		return
	}

	artist, err := s.artists.Get(r.Context(), id)
	if err != nil {
		if isNotFound(err) {
			s.notFound(w, r)
			return
		}
		s.serverError(w, r, err)
		return
	}

	s.renderArtistForm(w, r, web.FormView{
		Action:  fmt.Sprintf("/artists/%d/edit", id),
		Editing: true,
		Form:    forms.NewArtistForm(artist),
	})
}

func (s *Server) handleUpdateArtist(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		s.notFound(w, r)
		return
	}
	view := web.FormView{Action: fmt.Sprintf("/artists/%d/edit", id), Editing: true}

	var form forms.ArtistForm
	err := forms.Decode(r, &form)
	if err == nil {
		err = form.Validate()
	}
	view.Form = form
	if err != nil {
		view.Errors = forms.FieldErrors(err)
		s.renderArtistForm(w, r, view)
		return
	}

	updated, err := s.artists.Update(r.Context(), id, form.Artist())
	if err != nil {
		if isNotFound(err) {
			s.notFound(w, r)
			return
		}
		logFailure(r, err, "update artist")
		s.flash(w, r, fmt.Sprintf("An error occurred. Artist %s could not be updated.", form.Name))
		s.renderArtistForm(w, r, view)
		return
	}

	s.flash(w, r, fmt.Sprintf("Artist %s was successfully updated!", updated.Name))
	redirect(w, r, fmt.Sprintf("/artists/%d", id))
}

func (s *Server) handleDeleteArtist(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		s.writeDeleteResult(w, r, store.ErrArtistNotFound, "/")
		return
	}
	s.writeDeleteResult(w, r, s.artists.Delete(r.Context(), id), "/")
}

func (s *Server) renderArtistForm(w http.ResponseWriter, r *http.Request, view web.FormView) {
	title := "New artist"
	if view.Editing {
		title = "Edit artist"
	}
	s.render(w, r, http.StatusOK, "artist_form", title, view)
}

package httpapi

import (
	"fmt"
	"net/http"
	"strconv"

	"fyyur/internal/forms"
	"fyyur/internal/store"
	"fyyur/internal/web"
)

func (s *Server) handleNewAvailability(w http.ResponseWriter, r *http.Request) {
	var form forms.AvailabilityForm
	if id, err := strconv.ParseInt(r.URL.Query().Get("artist_id"), 10, 64); err == nil {
		form.ArtistID = id
	}
	s.render(w, r, http.StatusOK, "availability_form", "New availability", web.FormView{Action: "/availability/create", Form: form})
}

func (s *Server) handleCreateAvailability(w http.ResponseWriter, r *http.Request) {
	view := web.FormView{Action: "/availability/create"}

	var form forms.AvailabilityForm
	err := forms.Decode(r, &form)
	if err == nil {
		err = form.Validate()
	}
	view.Form = form
	if err != nil {
		view.Errors = forms.FieldErrors(err)
		s.render(w, r, http.StatusOK, "availability_form", "New availability", view)
		return
	}

	slot, err := form.Availability()
	if err == nil {
		slot, err = s.availability.Create(r.Context(), slot)
	}
	if err != nil {
		if isNotFound(err) {
			view.Errors = map[string]string{"artist_id": "no artist has this id"}
		} else {
			logFailure(r, err, "create availability")
			s.flash(w, r, "An error occurred. Availability could not be added.")
		}
		s.render(w, r, http.StatusOK, "availability_form", "New availability", view)
		return
	}

	s.flash(w, r, fmt.Sprintf("Availability at %s was successfully added!", slot.Time.Kitchen()))
	redirect(w, r, fmt.Sprintf("/artists/%d", slot.ArtistID))
}

func (s *Server) handleDeleteAvailability(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		s.writeDeleteResult(w, r, store.ErrAvailabilityNotFound, "/artists")
		return
	}

	slot, err := s.availability.Get(r.Context(), id)
	if err != nil {
		s.writeDeleteResult(w, r, err, "/artists")
		return
	}
	s.writeDeleteResult(w, r, s.availability.Delete(r.Context(), id), fmt.Sprintf("/artists/%d", slot.ArtistID))
}

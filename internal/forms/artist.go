package forms

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"

	"fyyur/internal/models"
)

// ArtistForm is the create/edit artist submission.
type ArtistForm struct {
	Name               string   `json:"name"`
	City               string   `json:"city"`
	State              string   `json:"state"`
	Phone              string   `json:"phone"`
	ImageLink          string   `json:"image_link"`
	Genres             []string `json:"genres"`
	FacebookLink       string   `json:"facebook_link"`
	Website            string   `json:"website_link"`
	SeekingVenue       bool     `json:"seeking_venue"`
	SeekingDescription string   `json:"seeking_description"`
}

// NewArtistForm prefills the form from an existing artist.
func NewArtistForm(a models.Artist) ArtistForm {
	return ArtistForm{
		Name:               a.Name,
		City:               a.City,
		State:              a.State,
		Phone:              a.Phone,
		ImageLink:          a.ImageLink,
		Genres:             a.Genres,
		FacebookLink:       a.FacebookLink,
		Website:            a.Website,
		SeekingVenue:       a.SeekingVenue,
		SeekingDescription: a.SeekingDescription,
	}
}

func (f ArtistForm) Validate() error {
	return validation.ValidateStruct(&f,
		validation.Field(&f.Name, validation.Required, validation.Length(1, 120)),
		validation.Field(&f.City, validation.Required, validation.Length(1, 120)),
		validation.Field(&f.State, validation.Required, validation.In(anyOf(States)...)),
		validation.Field(&f.Phone, validation.Match(phonePattern).Error("must be a phone number")),
		validation.Field(&f.ImageLink, is.URL, validation.Length(0, 500)),
		validation.Field(&f.Genres, validation.Required, validation.Each(validation.In(anyOf(Genres)...))),
		validation.Field(&f.FacebookLink, is.URL, validation.Length(0, 120)),
		validation.Field(&f.Website, is.URL, validation.Length(0, 120)),
		validation.Field(&f.SeekingDescription, validation.Length(0, 500)),
	)
}

func (f ArtistForm) Artist() models.Artist {
	return models.Artist{
		Name:               f.Name,
		City:               f.City,
		State:              f.State,
		Phone:              f.Phone,
		Website:            f.Website,
		FacebookLink:       f.FacebookLink,
		ImageLink:          f.ImageLink,
		Genres:             f.Genres,
		SeekingVenue:       f.SeekingVenue,
		SeekingDescription: f.SeekingDescription,
	}
}

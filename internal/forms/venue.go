package forms

import (
	"regexp"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"

	"fyyur/internal/models"
)

var phonePattern = regexp.MustCompile(`^\+?[0-9()\-. ]{7,20}$`)

// VenueForm is the create/edit venue submission.
type VenueForm struct {
	Name               string   `json:"name"`
	Address            string   `json:"address"`
	City               string   `json:"city"`
	State              string   `json:"state"`
	Phone              string   `json:"phone"`
	ImageLink          string   `json:"image_link"`
	Genres             []string `json:"genres"`
	FacebookLink       string   `json:"facebook_link"`
	Website            string   `json:"website_link"`
	SeekingTalent      bool     `json:"seeking_talent"`
	SeekingDescription string   `json:"seeking_description"`
}

// NewVenueForm prefills the form from an existing venue.
func NewVenueForm(v models.Venue) VenueForm {
	return VenueForm{
		Name:               v.Name,
		Address:            v.Address,
		City:               v.City,
		State:              v.State,
		Phone:              v.Phone,
		ImageLink:          v.ImageLink,
		Genres:             v.Genres,
		FacebookLink:       v.FacebookLink,
		Website:            v.Website,
		SeekingTalent:      v.SeekingTalent,
		SeekingDescription: v.SeekingDescription,
	}
}

func (f VenueForm) Validate() error {
	return validation.ValidateStruct(&f,
		validation.Field(&f.Name, validation.Required, validation.Length(1, 120)),
		validation.Field(&f.Address, validation.Required, validation.Length(1, 120)),
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

// Venue converts the submission into a venue record. Genres keep their
// submitted order.
func (f VenueForm) Venue() models.Venue {
	return models.Venue{
		Name:               f.Name,
		Address:            f.Address,
		City:               f.City,
		State:              f.State,
		Phone:              f.Phone,
		Website:            f.Website,
		FacebookLink:       f.FacebookLink,
		ImageLink:          f.ImageLink,
		Genres:             f.Genres,
		SeekingTalent:      f.SeekingTalent,
		SeekingDescription: f.SeekingDescription,
	}
}

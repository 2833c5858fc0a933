package forms

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"fyyur/internal/models"
)

// AvailabilityForm declares a daily slot at which an artist can play.
type AvailabilityForm struct {
	ArtistID int64  `json:"artist_id"`
	Time     string `json:"time"`
}

func (f AvailabilityForm) Validate() error {
	return validation.ValidateStruct(&f,
		validation.Field(&f.ArtistID, validation.Required, validation.Min(int64(1))),
		validation.Field(&f.Time, validation.Required, validation.By(func(value any) error {
			if _, err := models.ParseTimeOfDay(value.(string)); err != nil {
				return validation.NewError("validation_time_of_day", "must look like 18:00")
			}
			return nil
		})),
	)
}

// Availability converts a validated submission into a slot record.
func (f AvailabilityForm) Availability() (models.Availability, error) {
	slot, err := models.ParseTimeOfDay(f.Time)
	if err != nil {
		return models.Availability{}, err
	}
	return models.Availability{ArtistID: f.ArtistID, Time: slot}, nil
}

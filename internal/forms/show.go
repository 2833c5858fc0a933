package forms

import (
	"fmt"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"fyyur/internal/models"
)

// StartTimeLayouts are the accepted spellings of a show start, the last one
// being what a datetime-local input posts.
var StartTimeLayouts = []string{
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02T15:04",
}

// ShowForm is the create-show submission.
type ShowForm struct {
	ArtistID  int64  `json:"artist_id"`
	VenueID   int64  `json:"venue_id"`
	StartTime string `json:"start_time"`
}

func (f ShowForm) Validate() error {
	return validation.ValidateStruct(&f,
		validation.Field(&f.ArtistID, validation.Required, validation.Min(int64(1))),
		validation.Field(&f.VenueID, validation.Required, validation.Min(int64(1))),
		validation.Field(&f.StartTime, validation.Required, validation.By(func(value any) error {
			_, err := ParseStartTime(value.(string))
			return err
		})),
	)
}

// Show converts a validated submission into a show record.
func (f ShowForm) Show() (models.Show, error) {
	start, err := ParseStartTime(f.StartTime)
	if err != nil {
		return models.Show{}, err
	}
	return models.Show{ArtistID: f.ArtistID, VenueID: f.VenueID, StartTime: start}, nil
}

// ParseStartTime reads a wall-clock start time in the server's local zone.
func ParseStartTime(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range StartTimeLayouts {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("must look like %s", StartTimeLayouts[0])
}

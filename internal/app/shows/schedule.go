package shows

import (
	"errors"
	"time"

	"fyyur/internal/models"
)

// ErrArtistUnavailable is returned when a show starts outside the artist's declared slots.
var ErrArtistUnavailable = errors.New("artist is not available at that time")

// Classify splits shows into past and upcoming relative to now. A show that
// starts exactly at now counts as past.
func Classify(listings []models.ShowListing, now time.Time) models.Schedule {
	schedule := models.Schedule{
		Past:     []models.ShowListing{},
		Upcoming: []models.ShowListing{},
	}
	for _, l := range listings {
		if l.StartTime.After(now) {
			schedule.Upcoming = append(schedule.Upcoming, l)
		} else {
			schedule.Past = append(schedule.Past, l)
		}
	}
	schedule.PastCount = len(schedule.Past)
	schedule.UpcomingCount = len(schedule.Upcoming)
	return schedule
}

// CheckAvailability accepts any start time when the artist declared no slots,
// otherwise the start's time of day must match one of them.
func CheckAvailability(slots []models.Availability, start time.Time) error {
	if len(slots) == 0 {
		return nil
	}
	want := models.TimeOfDayOf(start)
	for _, slot := range slots {
		if slot.Time == want {
			return nil
		}
	}
	return ErrArtistUnavailable
}

package shows

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fyyur/internal/models"
)

func listingAt(id int64, start time.Time) models.ShowListing {
	return models.ShowListing{Show: models.Show{ID: id, StartTime: start}}
}

func TestClassifyPartitionsAroundNow(t *testing.T) {
	now := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
	listings := []models.ShowListing{
		listingAt(1, now.Add(-48*time.Hour)),
		listingAt(2, now.Add(72*time.Hour)),
		listingAt(3, now),
		listingAt(4, now.Add(time.Second)),
	}

	schedule := Classify(listings, now)

	require.Len(t, schedule.Past, 2)
	require.Len(t, schedule.Upcoming, 2)
	assert.Equal(t, int64(1), schedule.Past[0].ID)
	assert.Equal(t, int64(3), schedule.Past[1].ID, "a show starting exactly now is past")
	assert.Equal(t, int64(2), schedule.Upcoming[0].ID)
	assert.Equal(t, int64(4), schedule.Upcoming[1].ID)
	assert.Equal(t, 2, schedule.PastCount)
	assert.Equal(t, 2, schedule.UpcomingCount)
	assert.Equal(t, len(listings), schedule.PastCount+schedule.UpcomingCount)
}

func TestClassifyEmpty(t *testing.T) {
	schedule := Classify(nil, time.Now())

	assert.NotNil(t, schedule.Past)
	assert.NotNil(t, schedule.Upcoming)
	assert.Zero(t, schedule.PastCount)
	assert.Zero(t, schedule.UpcomingCount)
}

func TestCheckAvailability(t *testing.T) {
	eighteen := models.TimeOfDay{Hour: 18}
	slots := []models.Availability{{ID: 1, ArtistID: 7, Time: eighteen}}
	day := func(h, m, s int) time.Time { return time.Date(2026, 6, 10, h, m, s, 0, time.UTC) }

	tests := []struct {
		name    string
		slots   []models.Availability
		start   time.Time
		wantErr error
	}{
		{name: "matching slot", slots: slots, start: day(18, 0, 0)},
		{name: "other hour", slots: slots, start: day(19, 0, 0), wantErr: ErrArtistUnavailable},
		{name: "seconds differ", slots: slots, start: day(18, 0, 30), wantErr: ErrArtistUnavailable},
		{name: "no slots accepts anything", slots: nil, start: day(3, 17, 0)},
		{
			name:  "any of several slots",
			slots: append([]models.Availability{{ID: 2, ArtistID: 7, Time: models.TimeOfDay{Hour: 21, Minute: 30}}}, slots...),
			start: day(21, 30, 0),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CheckAvailability(tt.slots, tt.start)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

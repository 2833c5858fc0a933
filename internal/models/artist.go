package models

// Artist represents a performer who plays shows.
type Artist struct {
	ID                 int64    `json:"id"`
	Name               string   `json:"name"`
	City               string   `json:"city"`
	State              string   `json:"state"`
	Phone              string   `json:"phone,omitempty"`
	Website            string   `json:"website,omitempty"`
	FacebookLink       string   `json:"facebook_link,omitempty"`
	ImageLink          string   `json:"image_link,omitempty"`
	Genres             []string `json:"genres"`
	SeekingVenue       bool     `json:"seeking_venue"`
	SeekingDescription string   `json:"seeking_description,omitempty"`
}

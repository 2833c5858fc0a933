package models

// Venue represents a place that hosts shows.
type Venue struct {
	ID                 int64    `json:"id"`
	Name               string   `json:"name"`
	Address            string   `json:"address"`
	City               string   `json:"city"`
	State              string   `json:"state"`
	Phone              string   `json:"phone,omitempty"`
	Website            string   `json:"website,omitempty"`
	FacebookLink       string   `json:"facebook_link,omitempty"`
	ImageLink          string   `json:"image_link,omitempty"`
	Genres             []string `json:"genres"`
	SeekingTalent      bool     `json:"seeking_talent"`
	SeekingDescription string   `json:"seeking_description,omitempty"`
}

// Area groups the venues that share a city and state.
type Area struct {
	City   string  `json:"city"`
	State  string  `json:"state"`
	Venues []Venue `json:"venues"`
}

// GroupByArea buckets venues by (city, state), keeping areas and the venues
// inside them in the order they were first seen.
func GroupByArea(venues []Venue) []Area {
	type key struct{ city, state string }

	index := make(map[key]int)
	var areas []Area
	for _, v := range venues {
		k := key{v.City, v.State}
		i, ok := index[k]
		if !ok {
			i = len(areas)
			index[k] = i
			areas = append(areas, Area{City: v.City, State: v.State})
		}
		areas[i].Venues = append(areas[i].Venues, v)
	}
	return areas
}

package models

import "testing"

func TestGroupByArea(t *testing.T) {
	venues := []Venue{
		{ID: 1, City: "San Francisco", State: "CA"},
		{ID: 2, City: "New York", State: "NY"},
		{ID: 3, City: "San Francisco", State: "CA"},
		{ID: 4, City: "San Francisco", State: "NM"},
	}

	areas := GroupByArea(venues)

	if len(areas) != 3 {
		t.Fatalf("expected 3 areas, got %d", len(areas))
	}
	if areas[0].City != "San Francisco" || areas[0].State != "CA" {
		t.Fatalf("unexpected first area %+v", areas[0])
	}
	if len(areas[0].Venues) != 2 || areas[0].Venues[0].ID != 1 || areas[0].Venues[1].ID != 3 {
		t.Fatalf("unexpected venues in first area: %+v", areas[0].Venues)
	}
	if areas[2].State != "NM" {
		t.Fatalf("state must be part of the grouping key, got %+v", areas[2])
	}
}

func TestGroupByAreaEmpty(t *testing.T) {
	if areas := GroupByArea(nil); len(areas) != 0 {
		t.Fatalf("expected no areas, got %d", len(areas))
	}
}

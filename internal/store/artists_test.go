package store

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"

	"fyyur/internal/models"
)

var artistRowColumns = []string{
	"id", "name", "city", "state", "phone", "website", "facebook_link", "image_link",
	"genres", "seeking_venue", "seeking_description",
}

func TestSearchArtistsIsCaseInsensitiveSubstring(t *testing.T) {
	s, mock := newMockStore(t)

	mock.ExpectQuery(regexp.QuoteMeta(`WHERE name ILIKE $1`)).
		WithArgs("%band%").
		WillReturnRows(sqlmock.NewRows(artistRowColumns).AddRow(
			int64(6), "The Wild Sax Band", "San Francisco", "CA", "", "", "", "", "{Jazz,Classical}", false, "",
		))

	got, err := s.SearchArtists(context.Background(), "band")
	if err != nil {
		t.Fatalf("SearchArtists error: %v", err)
	}
	if got.Count != 1 || got.Items[0].Name != "The Wild Sax Band" {
		t.Fatalf("unexpected result: %#v", got)
	}
}

func TestSearchArtistsEmptyTermMatchesEverything(t *testing.T) {
	s, mock := newMockStore(t)

	mock.ExpectQuery(regexp.QuoteMeta(`WHERE name ILIKE $1`)).
		WithArgs("%%").
		WillReturnRows(sqlmock.NewRows(artistRowColumns).
			AddRow(int64(4), "Guns N Petals", "San Francisco", "CA", "", "", "", "", "{}", true, "").
			AddRow(int64(5), "Matt Quevedo", "New York", "NY", "", "", "", "", "{}", false, ""))

	got, err := s.SearchArtists(context.Background(), "")
	if err != nil {
		t.Fatalf("SearchArtists error: %v", err)
	}
	if got.Count != 2 {
		t.Fatalf("expected 2 matches, got %d", got.Count)
	}
}

func TestCreateArtistReturnsID(t *testing.T) {
	s, mock := newMockStore(t)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO artists`)).
		WithArgs("Guns N Petals", "San Francisco", "CA", "326-123-5000", "", "", "", sqlmock.AnyArg(), true, "Looking for shows").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(4)))
	mock.ExpectCommit()

	got, err := s.CreateArtist(context.Background(), models.Artist{
		Name:               "Guns N Petals",
		City:               "San Francisco",
		State:              "CA",
		Phone:              "326-123-5000",
		Genres:             []string{"Rock n Roll"},
		SeekingVenue:       true,
		SeekingDescription: "Looking for shows",
	})
	if err != nil {
		t.Fatalf("CreateArtist error: %v", err)
	}
	if got.ID != 4 {
		t.Fatalf("expected ID 4, got %d", got.ID)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestUpdateArtistNotFound(t *testing.T) {
	s, mock := newMockStore(t)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`UPDATE artists`)).
		WillReturnRows(sqlmock.NewRows(artistRowColumns))
	mock.ExpectRollback()

	_, err := s.UpdateArtist(context.Background(), 42, models.Artist{Name: "Nobody"})
	if !errors.Is(err, ErrArtistNotFound) {
		t.Fatalf("expected ErrArtistNotFound, got %v", err)
	}
}

func TestDeleteArtistNotFound(t *testing.T) {
	s, mock := newMockStore(t)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM artists WHERE id = $1`)).
		WithArgs(int64(8)).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	if err := s.DeleteArtist(context.Background(), 8); !errors.Is(err, ErrArtistNotFound) {
		t.Fatalf("expected ErrArtistNotFound, got %v", err)
	}
}

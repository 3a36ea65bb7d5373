package pawlog

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteErrorStatus(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{ValidationFailed("name", "bad"), http.StatusBadRequest},
		{fmt.Errorf("%w: missing user", ErrInvalidBackup), http.StatusBadRequest},
		{ErrUnauthenticated, http.StatusUnauthorized},
		{NotFound("dog", "x"), http.StatusNotFound},
		{&StorageError{Op: "write", Key: "pawlog_dogs", Err: ErrQuotaExceeded}, http.StatusInsufficientStorage},
		{assert.AnError, http.StatusInternalServerError},
	}
	for _, c := range cases {
		rec := httptest.NewRecorder()
		writeError(rec, c.err)
		assert.Equal(t, c.want, rec.Code, "%v", c.err)
	}
}

func TestParseTimeAcceptsDateOnlyInStoreZone(t *testing.T) {
	f := newFixture(t, day(2024, 12, 20, 9, 0))

	got, err := parseTime(f.s, "date", "2024-12-25")
	require.NoError(t, err)
	assert.True(t, got.Equal(day(2024, 12, 25, 0, 0)))

	got, err = parseTime(f.s, "date", "2024-12-25T10:00:00Z")
	require.NoError(t, err)
	assert.Equal(t, 10, got.Hour())

	_, err = parseTime(f.s, "date", "25/12/2024")
	assert.ErrorIs(t, err, ErrValidation)
}

func TestHealthRecordHandlerCreatesReminder(t *testing.T) {
	f := newFixture(t, day(2024, 12, 20, 9, 0))
	f.login(t)
	dog := f.addDog(t, "Mochi")

	r := chi.NewRouter()
	RegisterRoutes(r, f.s)

	body, _ := json.Marshal(map[string]any{
		"dogId":    dog.ID,
		"type":     "vaccination",
		"title":    "종합백신",
		"date":     "2024-12-20",
		"nextDate": "2024-12-28",
	})
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/health-records", bytes.NewReader(body)))
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/reminders?view=upcoming&days=7", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var rems []reminderResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &rems))
	require.Len(t, rems, 1)
	assert.Equal(t, "D-5", rems[0].DDay)
	assert.True(t, rems[0].DueDate.Equal(day(2024, 12, 25, 0, 0)))
}

func TestDogHandlersReturnNotFoundOutsideScope(t *testing.T) {
	f := newFixture(t, time.Date(2024, 12, 20, 9, 0, 0, 0, kst))
	r := chi.NewRouter()
	RegisterRoutes(r, f.s)

	for _, path := range []string{"/dogs/missing", "/dogs/missing/stats", "/dogs/missing/reminders"} {
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, http.StatusNotFound, rec.Code, path)
	}
}

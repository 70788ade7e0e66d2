package aggregator

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"companyscrapper/country"
	"companyscrapper/growjo"
	"companyscrapper/model"
	"companyscrapper/wiki"
)

type fakeStore struct {
	existing *model.Company
	inserted []model.Company
	findErr  error
}

func (f *fakeStore) FindByName(context.Context, string) (*model.Company, error) {
	return f.existing, f.findErr
}

func (f *fakeStore) Insert(_ context.Context, c model.Company) error {
	f.inserted = append(f.inserted, c)
	return nil
}

func newTestServer(t *testing.T, svc *Service, st *fakeStore) *mux.Router {
	t.Helper()
	server := NewServer(svc, st, nil, time.Hour, zap.NewNop())
	router := mux.NewRouter()
	router.HandleFunc("/information/{company}", server.Information).Methods(http.MethodGet)
	return router
}

func successfulService() *Service {
	return NewService(
		&fakeProfiles{profile: wiki.Profile{
			Name:        "Andela",
			Description: "A talent network.",
			Fields:      map[string]string{"headquarters": "Lagos, Nigeria"},
		}},
		&fakeStats{stats: growjo.Stats{Industry: "HRTech"}},
		&fakeCountries{country: "Nigeria"},
		3, zap.NewNop(),
	)
}

func TestInformationAggregatesAndPersists(t *testing.T) {
	st := &fakeStore{}
	router := newTestServer(t, successfulService(), st)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/information/andela", nil))

	require.Equal(t, http.StatusOK, rec.Code)

	var got model.Company
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "Andela", got.Company)
	assert.Equal(t, "Nigeria", got.Country)
	assert.False(t, got.CreatedAt.IsZero(), "timestamps are stamped before persisting")

	require.Len(t, st.inserted, 1)
	assert.Equal(t, "Andela", st.inserted[0].Company)
}

func TestInformationServesStoredRecordWithoutScraping(t *testing.T) {
	stored := model.Company{Company: "Andela", Country: "Nigeria"}
	st := &fakeStore{existing: &stored}

	// Retrievers that would fail if reached.
	svc := NewService(
		&fakeProfiles{err: assert.AnError},
		&fakeStats{err: assert.AnError},
		&fakeCountries{err: country.ErrUnresolved},
		3, zap.NewNop(),
	)
	router := newTestServer(t, svc, st)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/information/andela", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var got model.Company
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "Nigeria", got.Country)
	assert.Empty(t, st.inserted)
}

func TestInformationFatalFailureReturnsErrorPayload(t *testing.T) {
	st := &fakeStore{}
	svc := NewService(
		&fakeProfiles{profile: wiki.Profile{Name: "SomeCo"}},
		&fakeStats{stats: growjo.Stats{}},
		&fakeCountries{err: country.ErrUnresolved},
		3, zap.NewNop(),
	)
	router := newTestServer(t, svc, st)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/information/someco", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	var payload errorPayload
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))
	assert.Equal(t, "someco", payload.Company)
	assert.NotEmpty(t, payload.Error)

	assert.Empty(t, st.inserted, "failed aggregations are never persisted")
}

func TestInformationRejectsBlankCompany(t *testing.T) {
	st := &fakeStore{}
	router := newTestServer(t, successfulService(), st)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/information/%20%20", nil))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

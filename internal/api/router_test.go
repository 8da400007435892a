package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/jward/catalog"
	"github.com/jward/catalog/internal/loader"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestRouter(t *testing.T) (*gin.Engine, *test.Hook) {
	t.Helper()
	log, hook := test.NewNullLogger()
	c, err := catalog.New(filepath.Join(t.TempDir(), "api.db"), catalog.WithLogger(log))
	require.NoError(t, err)
	t.Cleanup(func() { c.Close() })

	seed, err := loader.DefaultSeed()
	require.NoError(t, err)
	_, err = loader.Load(c.Store(), seed, log)
	require.NoError(t, err)
	hook.Reset()

	return NewRouter(c.Query(), log, RouterOptions{}), hook
}

func get(t *testing.T, r http.Handler, target string) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, target, nil))
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v), w.Body.String())
	return v
}

func TestSearch(t *testing.T) {
	t.Parallel()
	r, _ := newTestRouter(t)

	w := get(t, r, "/api/search.json")
	require.Equal(t, http.StatusOK, w.Code)
	entries := decode[[]catalog.SearchEntry](t, w)
	require.Len(t, entries, 16)
	assert.Equal(t, catalog.SearchEntry{Title: "Home", Type: "Page", URL: "/"}, entries[0])
	assert.Contains(t, w.Body.String(), `"url":"/reviews/bitstarz"`)
}

func TestCasino(t *testing.T) {
	t.Parallel()
	r, _ := newTestRouter(t)

	w := get(t, r, "/api/casinos/bitstarz")
	require.Equal(t, http.StatusOK, w.Code)
	c := decode[catalog.CasinoWithRelations](t, w)
	assert.Equal(t, "BitStarz", c.Name)
	assert.Len(t, c.Payments, 3)
	assert.Len(t, c.Software, 2)

	w = get(t, r, "/api/casinos/missing")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCasino_EmptyRelationIsArray(t *testing.T) {
	t.Parallel()
	r, _ := newTestRouter(t)

	w := get(t, r, "/api/casinos/fastpay")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"payments":[]`)
}

func TestCasinos_Batch(t *testing.T) {
	t.Parallel()
	r, _ := newTestRouter(t)

	w := get(t, r, "/api/casinos?ids=woo,%20bitstarz,,missing")
	require.Equal(t, http.StatusOK, w.Code)
	got := decode[[]catalog.CasinoWithRelations](t, w)
	require.Len(t, got, 2)
	assert.Equal(t, "bitstarz", got[0].ID)
	assert.Equal(t, "woo", got[1].ID)

	w = get(t, r, "/api/casinos")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestTopCasinos(t *testing.T) {
	t.Parallel()
	r, _ := newTestRouter(t)

	w := get(t, r, "/api/casinos/top?limit=2")
	require.Equal(t, http.StatusOK, w.Code)
	got := decode[[]catalog.Casino](t, w)
	require.Len(t, got, 2)
	assert.Equal(t, "bitstarz", got[0].ID)
	assert.Equal(t, "woo", got[1].ID)

	w = get(t, r, "/api/casinos/top?limit=abc")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSlot(t *testing.T) {
	t.Parallel()
	r, _ := newTestRouter(t)

	w := get(t, r, "/api/slots/starburst")
	require.Equal(t, http.StatusOK, w.Code)
	sl := decode[catalog.SlotWithProvider](t, w)
	require.NotNil(t, sl.Provider)
	assert.Equal(t, "NetEnt", sl.Provider.Name)

	assert.Equal(t, http.StatusNotFound, get(t, r, "/api/slots/missing").Code)
}

func TestBanking(t *testing.T) {
	t.Parallel()
	r, _ := newTestRouter(t)

	w := get(t, r, "/api/banking/interac")
	require.Equal(t, http.StatusOK, w.Code)
	got := decode[BankingDetail](t, w)
	assert.Equal(t, "Interac", got.Name)
	require.Len(t, got.Casinos, 2)
	assert.Equal(t, "BitStarz", got.Casinos[0].Name)

	assert.Equal(t, http.StatusNotFound, get(t, r, "/api/banking/missing").Code)
}

func TestProviders(t *testing.T) {
	t.Parallel()
	r, _ := newTestRouter(t)

	w := get(t, r, "/api/providers")
	require.Equal(t, http.StatusOK, w.Code)
	got := decode[[]catalog.ProviderGameCount](t, w)
	require.Len(t, got, 5)
	assert.Equal(t, "netent", got[0].ID)
	assert.Equal(t, 2, got[0].GameCount)
}

func TestRequestID(t *testing.T) {
	t.Parallel()
	r, hook := newTestRouter(t)

	w := get(t, r, "/api/providers")
	generated := w.Header().Get(RequestIDHeader)
	assert.Len(t, generated, 36)

	req := httptest.NewRequest(http.MethodGet, "/api/providers", nil)
	req.Header.Set(RequestIDHeader, "abc-123")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, "abc-123", w.Header().Get(RequestIDHeader))

	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, logrus.InfoLevel, entry.Level)
	assert.Equal(t, "abc-123", entry.Data["request_id"])
	assert.Equal(t, http.StatusOK, entry.Data["status"])
}

func TestPprofOptional(t *testing.T) {
	t.Parallel()
	log, _ := test.NewNullLogger()
	c, err := catalog.New(filepath.Join(t.TempDir(), "pprof.db"), catalog.WithLogger(log))
	require.NoError(t, err)
	t.Cleanup(func() { c.Close() })

	off := NewRouter(c.Query(), log, RouterOptions{})
	assert.Equal(t, http.StatusNotFound, get(t, off, "/debug/pprof/cmdline").Code)

	on := NewRouter(c.Query(), log, RouterOptions{Pprof: true})
	assert.Equal(t, http.StatusOK, get(t, on, "/debug/pprof/cmdline").Code)
}

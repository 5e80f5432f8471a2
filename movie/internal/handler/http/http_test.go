package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/mkvy/videoclub/movie/internal/controller/movie"
	"github.com/mkvy/videoclub/movie/internal/repository/memory"
	"github.com/mkvy/videoclub/movie/internal/validation"
	"github.com/mkvy/videoclub/movie/pkg/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T, seed ...model.Movie) (http.Handler, *memory.Repository) {
	t.Helper()
	repo := memory.New(seed...)
	h := New(movie.New(repo, nil, nil), nil)
	mux := http.NewServeMux()
	h.Register(mux)
	return mux, repo
}

func do(t *testing.T, h http.Handler, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.NewDecoder(w.Body).Decode(&v), w.Body.String())
	return v
}

func TestEndToEndScenario(t *testing.T) {
	h, _ := newTestServer(t, model.Movie{ID: 1, Title: "The Matrix"})

	w := do(t, h, http.MethodGet, "/movies/1", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"Id":1,"Title":"The Matrix"}`, w.Body.String())

	w = do(t, h, http.MethodPost, "/movies", `{"Id":1,"Title":"X"}`)
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "Movie with ID 1 already exists.", decode[string](t, w))

	w = do(t, h, http.MethodPost, "/movies", `{"Id":0,"Title":"X"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, []string{validation.MsgIDNotPositive}, decode[[]string](t, w))

	w = do(t, h, http.MethodPut, "/movies/1", `{"Id":1,"Title":"Reloaded"}`)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"Id":1,"Title":"Reloaded"}`, w.Body.String())

	w = do(t, h, http.MethodGet, "/movies/1", "")
	assert.Equal(t, "Reloaded", decode[model.Movie](t, w).Title)

	w = do(t, h, http.MethodDelete, "/movies/1", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Movie with ID 1 deleted.", decode[string](t, w))

	w = do(t, h, http.MethodGet, "/movies/1", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Movie with ID 1 not found.", decode[string](t, w))
}

func TestList(t *testing.T) {
	h, _ := newTestServer(t,
		model.Movie{ID: 2, Title: "Inception"},
		model.Movie{ID: 1, Title: "The Matrix"},
	)
	w := do(t, h, http.MethodGet, "/movies", "")
	require.Equal(t, http.StatusOK, w.Code)
	want := []model.Movie{{ID: 1, Title: "The Matrix"}, {ID: 2, Title: "Inception"}}
	if diff := cmp.Diff(want, decode[[]model.Movie](t, w)); diff != "" {
		t.Errorf("list mismatch (-want +got):\n%s", diff)
	}

	empty, _ := newTestServer(t)
	w = do(t, empty, http.MethodGet, "/movies", "")
	assert.JSONEq(t, `[]`, w.Body.String())
}

func TestCreate(t *testing.T) {
	h, repo := newTestServer(t)

	w := do(t, h, http.MethodPost, "/movies", `{"id":4,"TITLE":"Alien"}`)
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "/movies/4", w.Header().Get("Location"))
	assert.JSONEq(t, `{"Id":4,"Title":"Alien"}`, w.Body.String())
	assert.Equal(t, 1, repo.Len())
}

func TestCreateReportsAllViolations(t *testing.T) {
	h, repo := newTestServer(t)

	w := do(t, h, http.MethodPost, "/movies", `{"Id":-3}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, []string{validation.MsgIDNotPositive, validation.MsgTitleRequired}, decode[[]string](t, w))

	w = do(t, h, http.MethodPost, "/movies", `{"Id":5,"Title":"`+strings.Repeat("x", 101)+`"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, []string{validation.MsgTitleTooLong}, decode[[]string](t, w))
	assert.Zero(t, repo.Len())
}

func TestCreateMalformedBody(t *testing.T) {
	h, repo := newTestServer(t)

	w := do(t, h, http.MethodPost, "/movies", `{"Id":"one"`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, []string{MsgInvalidJSON}, decode[[]string](t, w))
	assert.Zero(t, repo.Len())
}

func TestUpdate(t *testing.T) {
	h, _ := newTestServer(t, model.Movie{ID: 1, Title: "The Matrix"})

	w := do(t, h, http.MethodPut, "/movies/9", `{"Id":9,"Title":"Nope"}`)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Movie with ID 9 not found.", decode[string](t, w))

	w = do(t, h, http.MethodPut, "/movies/9", `{"Id":9,"Title":""}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, []string{validation.MsgTitleRequired}, decode[[]string](t, w))

	w = do(t, h, http.MethodPut, "/movies/2", `{"Id":1,"Title":"Reloaded"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, []string{movie.MsgIDMismatch}, decode[[]string](t, w))

	w = do(t, h, http.MethodGet, "/movies/1", "")
	assert.Equal(t, "The Matrix", decode[model.Movie](t, w).Title)
}

func TestDeleteMissing(t *testing.T) {
	h, repo := newTestServer(t, model.Movie{ID: 1, Title: "The Matrix"})

	w := do(t, h, http.MethodDelete, "/movies/2", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Movie with ID 2 not found.", decode[string](t, w))
	assert.Equal(t, 1, repo.Len())
}

func TestNonIntegerIDDoesNotMatch(t *testing.T) {
	h, _ := newTestServer(t, model.Movie{ID: 1, Title: "The Matrix"})

	for _, method := range []string{http.MethodGet, http.MethodPut, http.MethodDelete} {
		w := do(t, h, method, "/movies/abc", `{"Id":1,"Title":"X"}`)
		assert.Equal(t, http.StatusNotFound, w.Code, method)
	}
}

func TestHealth(t *testing.T) {
	repo := memory.New()
	h := New(movie.New(repo, nil, nil), nil)
	mux := http.NewServeMux()
	h.Register(mux)

	assert.Equal(t, http.StatusOK, do(t, mux, http.MethodGet, "/healthz", "").Code)
	assert.Equal(t, http.StatusOK, do(t, mux, http.MethodGet, "/readyz", "").Code)
	h.SetReady(false)
	assert.Equal(t, http.StatusServiceUnavailable, do(t, mux, http.MethodGet, "/readyz", "").Code)
}

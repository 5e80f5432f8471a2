package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"sync/atomic"

	"github.com/mkvy/videoclub/movie/internal/controller/movie"
	"github.com/mkvy/videoclub/movie/pkg/model"
	"go.uber.org/zap"
)

const maxBodyBytes = 1 << 20

// MsgInternalError is the only body ever sent for unexpected failures.
const MsgInternalError = "An unexpected error occurred."

// MsgInvalidJSON is reported when a request body cannot be decoded.
const MsgInvalidJSON = "Request body is not valid JSON."

// Handler defines a movie HTTP handler.
type Handler struct {
	ctrl   *movie.Controller
	logger *zap.Logger
	ready  atomic.Bool
}

// New creates a new movie HTTP handler.
func New(ctrl *movie.Controller, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	h := &Handler{ctrl: ctrl, logger: logger}
	h.ready.Store(true)
	return h
}

// Register adds movie and health routes to mux.
func (h *Handler) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /movies", h.list)
	mux.HandleFunc("POST /movies", h.create)
	mux.HandleFunc("GET /movies/{id}", h.get)
	mux.HandleFunc("PUT /movies/{id}", h.update)
	mux.HandleFunc("DELETE /movies/{id}", h.delete)
	mux.HandleFunc("GET /healthz", h.health)
	mux.HandleFunc("GET /readyz", h.readiness)
}

// SetReady toggles the readiness endpoint, e.g. while shutting down.
func (h *Handler) SetReady(ready bool) {
	h.ready.Store(ready)
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	movies, err := h.ctrl.List(r.Context())
	if err != nil {
		h.internalError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, movies)
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		http.NotFound(w, r)
		return
	}
	m, err := h.ctrl.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, movie.ErrNotFound) {
			writeJSON(w, http.StatusNotFound, notFoundMessage(id))
			return
		}
		h.internalError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, m)
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	m, ok := decodeMovie(w, r)
	if !ok {
		return
	}
	res, err := h.ctrl.Create(r.Context(), m)
	if err != nil {
		var verr *movie.ValidationError
		switch {
		case errors.As(err, &verr):
			writeJSON(w, http.StatusBadRequest, verr.Violations)
		case errors.Is(err, movie.ErrAlreadyExists):
			writeJSON(w, http.StatusConflict, fmt.Sprintf("Movie with ID %d already exists.", m.ID))
		default:
			h.internalError(w, r, err)
		}
		return
	}
	w.Header().Set("Location", fmt.Sprintf("/movies/%d", res.ID))
	writeJSON(w, http.StatusCreated, res)
}

func (h *Handler) update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		http.NotFound(w, r)
		return
	}
	m, ok := decodeMovie(w, r)
	if !ok {
		return
	}
	res, err := h.ctrl.Update(r.Context(), id, m)
	if err != nil {
		var verr *movie.ValidationError
		switch {
		case errors.As(err, &verr):
			writeJSON(w, http.StatusBadRequest, verr.Violations)
		case errors.Is(err, movie.ErrNotFound):
			writeJSON(w, http.StatusNotFound, notFoundMessage(m.ID))
		default:
			h.internalError(w, r, err)
		}
		return
	}
	writeJSON(w, http.StatusOK, res)
}

func (h *Handler) delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		http.NotFound(w, r)
		return
	}
	if err := h.ctrl.Delete(r.Context(), id); err != nil {
		if errors.Is(err, movie.ErrNotFound) {
			writeJSON(w, http.StatusNotFound, notFoundMessage(id))
			return
		}
		h.internalError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, fmt.Sprintf("Movie with ID %d deleted.", id))
}

func (h *Handler) health(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = fmt.Fprintln(w, "ok")
}

func (h *Handler) readiness(w http.ResponseWriter, _ *http.Request) {
	if !h.ready.Load() {
		w.WriteHeader(http.StatusServiceUnavailable)
		_, _ = fmt.Fprintln(w, "not ready")
		return
	}
	w.WriteHeader(http.StatusOK)
	_, _ = fmt.Fprintln(w, "ready")
}

func (h *Handler) internalError(w http.ResponseWriter, r *http.Request, err error) {
	h.logger.Error("Request failed",
		zap.String("method", r.Method), zap.String("path", r.URL.Path), zap.Error(err))
	writeInternalError(w)
}

// pathID parses the {id} path value. Non-integer ids do not match any movie route.
func pathID(r *http.Request) (int, bool) {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		return 0, false
	}
	return id, true
}

func decodeMovie(w http.ResponseWriter, r *http.Request) (*model.Movie, bool) {
	var m model.Movie
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&m); err != nil {
		writeJSON(w, http.StatusBadRequest, []string{MsgInvalidJSON})
		return nil, false
	}
	return &m, true
}

func notFoundMessage(id int) string {
	return fmt.Sprintf("Movie with ID %d not found.", id)
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func writeInternalError(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusInternalServerError)
	_, _ = w.Write([]byte(MsgInternalError))
}

package testutil

import (
	"net/http"

	"github.com/mkvy/videoclub/movie/internal/controller/movie"
	httphandler "github.com/mkvy/videoclub/movie/internal/handler/http"
	"github.com/mkvy/videoclub/movie/internal/repository/memory"
	"github.com/mkvy/videoclub/movie/pkg/model"
	"go.uber.org/zap"
)

// NewTestMovieHTTPServer creates a movie HTTP handler backed by an in-memory repository,
// wrapped in the same recovery middleware the service uses.
func NewTestMovieHTTPServer(seed ...model.Movie) http.Handler {
	logger := zap.NewNop()
	ctrl := movie.New(memory.New(seed...), nil, logger)
	h := httphandler.New(ctrl, logger)
	mux := http.NewServeMux()
	h.Register(mux)
	return httphandler.Chain(mux, httphandler.Recover(logger))
}

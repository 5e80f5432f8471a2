package movie

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/mkvy/videoclub/movie/internal/repository"
	"github.com/mkvy/videoclub/movie/internal/validation"
	"github.com/mkvy/videoclub/movie/pkg/model"
	"go.uber.org/zap"
)

var (
	// ErrNotFound is returned when a requested movie is not found.
	ErrNotFound = errors.New("movie not found")

	// ErrAlreadyExists is returned when a movie with the same id already exists.
	ErrAlreadyExists = errors.New("movie already exists")
)

// MsgIDMismatch is reported when the id in the update path differs from the id in the body.
const MsgIDMismatch = "Id in path does not match Id in body."

// ValidationError is returned when a movie fails one or more validation rules.
type ValidationError struct {
	Violations []string
}

func (e *ValidationError) Error() string {
	return "invalid movie: " + strings.Join(e.Violations, " ")
}

type movieRepository interface {
	List(ctx context.Context) ([]*model.Movie, error)
	Get(ctx context.Context, id int) (*model.Movie, error)
	Create(ctx context.Context, movie *model.Movie) error
	Replace(ctx context.Context, movie *model.Movie) error
	Delete(ctx context.Context, id int) error
}

type eventPublisher interface {
	Publish(ctx context.Context, event model.MovieEvent) error
}

type movieIngester interface {
	Ingest(ctx context.Context) (chan model.MovieEvent, error)
}

// Controller defines a movie service controller.
type Controller struct {
	repo      movieRepository
	publisher eventPublisher
	logger    *zap.Logger
}

// New creates a movie service controller. publisher may be nil.
func New(repo movieRepository, publisher eventPublisher, logger *zap.Logger) *Controller {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Controller{repo: repo, publisher: publisher, logger: logger}
}

// List returns all movies.
func (c *Controller) List(ctx context.Context) ([]*model.Movie, error) {
	return c.repo.List(ctx)
}

// Get returns a movie by id.
func (c *Controller) Get(ctx context.Context, id int) (*model.Movie, error) {
	res, err := c.repo.Get(ctx, id)
	if err != nil && errors.Is(err, repository.ErrNotFound) {
		return nil, ErrNotFound
	}
	return res, err
}

// Create validates and stores a new movie.
func (c *Controller) Create(ctx context.Context, movie *model.Movie) (*model.Movie, error) {
	if v := validation.Validate(movie); len(v) > 0 {
		return nil, &ValidationError{Violations: v}
	}
	if err := c.repo.Create(ctx, movie); err != nil {
		if errors.Is(err, repository.ErrAlreadyExists) {
			return nil, ErrAlreadyExists
		}
		return nil, err
	}
	c.publish(ctx, model.EventTypeCreated, *movie)
	return movie, nil
}

// Update validates a movie and replaces the stored movie with the same id.
// The body id must match the id taken from the request path.
func (c *Controller) Update(ctx context.Context, id int, movie *model.Movie) (*model.Movie, error) {
	if v := validation.Validate(movie); len(v) > 0 {
		return nil, &ValidationError{Violations: v}
	}
	if movie.ID != id {
		return nil, &ValidationError{Violations: []string{MsgIDMismatch}}
	}
	if err := c.repo.Replace(ctx, movie); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	c.publish(ctx, model.EventTypeUpdated, *movie)
	return movie, nil
}

// Delete removes a movie by id.
func (c *Controller) Delete(ctx context.Context, id int) error {
	if err := c.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrNotFound
		}
		return err
	}
	c.publish(ctx, model.EventTypeDeleted, model.Movie{ID: id})
	return nil
}

// StartIngestion applies movie events from the ingester until its channel is closed.
// Events go through the same validation as API requests; rejected events are logged and skipped.
func (c *Controller) StartIngestion(ctx context.Context, ingester movieIngester) error {
	ch, err := ingester.Ingest(ctx)
	if err != nil {
		return err
	}
	for e := range ch {
		if err := c.apply(ctx, e); err != nil {
			c.logger.Warn("Failed to apply movie event",
				zap.String("type", string(e.Type)), zap.Int("id", e.Movie.ID), zap.Error(err))
		}
	}
	return nil
}

func (c *Controller) apply(ctx context.Context, e model.MovieEvent) error {
	m := e.Movie
	switch e.Type {
	case model.EventTypeCreated:
		_, err := c.Create(ctx, &m)
		return err
	case model.EventTypeUpdated:
		_, err := c.Update(ctx, m.ID, &m)
		return err
	case model.EventTypeDeleted:
		return c.Delete(ctx, m.ID)
	default:
		return fmt.Errorf("unknown event type %q", e.Type)
	}
}

func (c *Controller) publish(ctx context.Context, t model.EventType, m model.Movie) {
	if c.publisher == nil {
		return
	}
	event := model.MovieEvent{Type: t, Movie: m, Timestamp: time.Now().Unix()}
	if err := c.publisher.Publish(ctx, event); err != nil {
		c.logger.Warn("Failed to publish movie event",
			zap.String("type", string(t)), zap.Int("id", m.ID), zap.Error(err))
	}
}

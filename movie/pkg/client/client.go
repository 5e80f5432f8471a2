package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"net/http"
	"strings"

	"github.com/mkvy/videoclub/movie/pkg/model"
	"github.com/mkvy/videoclub/pkg/discovery"
)

var (
	// ErrNotFound is returned when the movie does not exist.
	ErrNotFound = errors.New("movie not found")

	// ErrAlreadyExists is returned when creating a movie whose id is taken.
	ErrAlreadyExists = errors.New("movie already exists")
)

// ValidationError is returned when the service rejects a movie.
type ValidationError struct {
	Violations []string
}

func (e *ValidationError) Error() string {
	return "invalid movie: " + strings.Join(e.Violations, " ")
}

// Client defines an HTTP client for the movie service.
type Client struct {
	registry    discovery.Registry
	serviceName string
	httpClient  *http.Client
}

// New creates a new HTTP client resolving the movie service through the registry.
func New(registry discovery.Registry, serviceName string) *Client {
	return &Client{registry: registry, serviceName: serviceName, httpClient: http.DefaultClient}
}

// List returns all movies.
func (c *Client) List(ctx context.Context) ([]model.Movie, error) {
	var res []model.Movie
	if err := c.do(ctx, http.MethodGet, "/movies", nil, http.StatusOK, &res); err != nil {
		return nil, err
	}
	return res, nil
}

// Get returns a movie by id.
func (c *Client) Get(ctx context.Context, id int) (*model.Movie, error) {
	var res model.Movie
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/movies/%d", id), nil, http.StatusOK, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// Create creates a movie.
func (c *Client) Create(ctx context.Context, m *model.Movie) (*model.Movie, error) {
	var res model.Movie
	if err := c.do(ctx, http.MethodPost, "/movies", m, http.StatusCreated, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// Update replaces the movie with the same id.
func (c *Client) Update(ctx context.Context, m *model.Movie) (*model.Movie, error) {
	var res model.Movie
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/movies/%d", m.ID), m, http.StatusOK, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// Delete deletes a movie by id.
func (c *Client) Delete(ctx context.Context, id int) error {
	var msg string
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/movies/%d", id), nil, http.StatusOK, &msg)
}

func (c *Client) do(ctx context.Context, method string, path string, body any, want int, out any) error {
	url, err := c.getURL(ctx)
	if err != nil {
		return err
	}
	var r io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return err
		}
		r = bytes.NewReader(b)
	}
	req, err := http.NewRequestWithContext(ctx, method, url+path, r)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	switch resp.StatusCode {
	case want:
		return json.NewDecoder(resp.Body).Decode(out)
	case http.StatusNotFound:
		return ErrNotFound
	case http.StatusConflict:
		return ErrAlreadyExists
	case http.StatusBadRequest:
		var violations []string
		if err := json.NewDecoder(resp.Body).Decode(&violations); err != nil {
			return fmt.Errorf("bad request: %w", err)
		}
		return &ValidationError{Violations: violations}
	default:
		return fmt.Errorf("unexpected response: %s", resp.Status)
	}
}

// getURL returns random instance url from service registry.
func (c *Client) getURL(ctx context.Context) (string, error) {
	addrs, err := c.registry.ServiceAddresses(ctx, c.serviceName)
	if err != nil {
		return "", err
	}
	return "http://" + addrs[rand.Intn(len(addrs))], nil
}

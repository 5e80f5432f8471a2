package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/mkvy/videoclub/movie/internal/repository"
	"github.com/mkvy/videoclub/movie/pkg/model"
)

// Repository defines a memory movie repository.
type Repository struct {
	sync.RWMutex
	data map[int]model.Movie
}

// New is factory method for repository. Seed movies are stored as is, without validation.
func New(seed ...model.Movie) *Repository {
	data := make(map[int]model.Movie, len(seed))
	for _, m := range seed {
		data[m.ID] = m
	}
	return &Repository{data: data}
}

// List returns all movies ordered by id.
func (r *Repository) List(_ context.Context) ([]*model.Movie, error) {
	r.RLock()
	defer r.RUnlock()
	res := make([]*model.Movie, 0, len(r.data))
	for _, m := range r.data {
		m := m
		res = append(res, &m)
	}
	sort.Slice(res, func(i, j int) bool { return res[i].ID < res[j].ID })
	return res, nil
}

// Get retrieves a movie by id.
func (r *Repository) Get(_ context.Context, id int) (*model.Movie, error) {
	r.RLock()
	defer r.RUnlock()
	m, ok := r.data[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &m, nil
}

// Create stores a new movie unless one with the same id exists.
func (r *Repository) Create(_ context.Context, movie *model.Movie) error {
	r.Lock()
	defer r.Unlock()
	if _, ok := r.data[movie.ID]; ok {
		return repository.ErrAlreadyExists
	}
	r.data[movie.ID] = *movie
	return nil
}

// Replace overwrites an existing movie with the same id.
func (r *Repository) Replace(_ context.Context, movie *model.Movie) error {
	r.Lock()
	defer r.Unlock()
	if _, ok := r.data[movie.ID]; !ok {
		return repository.ErrNotFound
	}
	r.data[movie.ID] = *movie
	return nil
}

// Delete removes a movie by id.
func (r *Repository) Delete(_ context.Context, id int) error {
	r.Lock()
	defer r.Unlock()
	if _, ok := r.data[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.data, id)
	return nil
}

// Len returns the number of stored movies.
func (r *Repository) Len() int {
	r.RLock()
	defer r.RUnlock()
	return len(r.data)
}

package services

import (
	"context"
	"fmt"
	"io"
	"sort"
	"strings"
	"sync"
	"time"

	"film-recommendations/internal/models"
	"film-recommendations/internal/repository"

	"github.com/sirupsen/logrus"
)

func newTestLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// fakeFilmRepository filters an in-memory catalog the way the SQL query does.
type fakeFilmRepository struct {
	mu         sync.Mutex
	films      map[uint]models.Film
	findErr    error
	queryErr   error
	upserted   []models.Film
	upsertErr  error
	importLogs []*models.ImportLog
}

func newFakeFilmRepository(films ...models.Film) *fakeFilmRepository {
	repo := &fakeFilmRepository{films: make(map[uint]models.Film)}
	for _, f := range films {
		repo.films[f.ID] = f
	}
	return repo
}

func (r *fakeFilmRepository) FindByID(_ context.Context, id uint) (*models.Film, error) {
	if r.findErr != nil {
		return nil, r.findErr
	}
	f, ok := r.films[id]
	if !ok {
		return nil, repository.ErrRecordNotFound
	}
	return &f, nil
}

func (r *fakeFilmRepository) FindCandidates(_ context.Context, genreID, excludeID uint, window models.DateRange) ([]models.Film, error) {
	if r.queryErr != nil {
		return nil, r.queryErr
	}
	var out []models.Film
	for _, f := range r.films {
		if f.GenreID != genreID || f.ID == excludeID {
			continue
		}
		if f.ReleaseDate.Before(window.From) || f.ReleaseDate.After(window.To) {
			continue
		}
		out = append(out, f)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *fakeFilmRepository) Upsert(_ context.Context, films []models.Film) error {
	if r.upsertErr != nil {
		return r.upsertErr
	}
	r.upserted = append(r.upserted, films...)
	return nil
}

func (r *fakeFilmRepository) CreateImportLog(_ context.Context, log *models.ImportLog) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.importLogs = append(r.importLogs, log)
	return nil
}

func (r *fakeFilmRepository) GetLastImportLog(_ context.Context) (*models.ImportLog, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.importLogs) == 0 {
		return nil, nil
	}
	return r.importLogs[len(r.importLogs)-1], nil
}

type fakeGenreRepository struct {
	genres    map[uint]models.Genre
	findErr   error
	upserted  []models.Genre
	upsertErr error
}

func newFakeGenreRepository(genres ...models.Genre) *fakeGenreRepository {
	repo := &fakeGenreRepository{genres: make(map[uint]models.Genre)}
	for _, g := range genres {
		repo.genres[g.ID] = g
	}
	return repo
}

func (r *fakeGenreRepository) FindByID(_ context.Context, id uint) (*models.Genre, error) {
	if r.findErr != nil {
		return nil, r.findErr
	}
	g, ok := r.genres[id]
	if !ok {
		return nil, repository.ErrRecordNotFound
	}
	return &g, nil
}

func (r *fakeGenreRepository) FindAll(_ context.Context) ([]models.Genre, error) {
	if r.findErr != nil {
		return nil, r.findErr
	}
	out := make([]models.Genre, 0, len(r.genres))
	for _, g := range r.genres {
		out = append(out, g)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *fakeGenreRepository) Upsert(_ context.Context, genres []models.Genre) error {
	if r.upsertErr != nil {
		return r.upsertErr
	}
	r.upserted = append(r.upserted, genres...)
	return nil
}

type fakeReviewClient struct {
	mu      sync.Mutex
	ratings map[uint][]float64
	err     error
	calls   [][]uint
}

func (c *fakeReviewClient) GetReviews(_ context.Context, filmIDs []uint) (map[uint][]float64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.calls = append(c.calls, append([]uint(nil), filmIDs...))
	if c.err != nil {
		return nil, c.err
	}
	out := make(map[uint][]float64)
	for _, id := range filmIDs {
		if r, ok := c.ratings[id]; ok {
			out[id] = r
		}
	}
	return out, nil
}

type fakeObjectStore struct {
	objects map[string]string
	err     error
}

func (s *fakeObjectStore) GetObject(_ context.Context, name string) (io.ReadCloser, error) {
	if s.err != nil {
		return nil, s.err
	}
	body, ok := s.objects[name]
	if !ok {
		return nil, fmt.Errorf("object %s not found", name)
	}
	return io.NopCloser(strings.NewReader(body)), nil
}

func (s *fakeObjectStore) Location(name string) string {
	return "catalog/" + name
}

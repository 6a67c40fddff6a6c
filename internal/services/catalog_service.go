package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"film-recommendations/internal/models"
	"film-recommendations/internal/repository"

	"github.com/goccy/go-json"
	"github.com/sirupsen/logrus"
)

type CatalogService interface {
	GetFilm(ctx context.Context, id uint) (*models.Film, error)
	ListGenres(ctx context.Context) ([]models.Genre, error)

	// Import operations
	ImportCatalog(ctx context.Context) (*models.ImportLog, error)
	GetLastImportLog(ctx context.Context) (*models.ImportLog, error)
}

type catalogService struct {
	filmRepo      repository.FilmRepository
	genreRepo     repository.GenreRepository
	store         ObjectStore
	catalogObject string
	logger        *logrus.Logger
}

// NewCatalogService builds the catalog service. store may be nil when object
// storage is not configured; imports then fail with ErrUpstreamUnavailable.
func NewCatalogService(filmRepo repository.FilmRepository, genreRepo repository.GenreRepository, store ObjectStore, catalogObject string, logger *logrus.Logger) CatalogService {
	return &catalogService{
		filmRepo:      filmRepo,
		genreRepo:     genreRepo,
		store:         store,
		catalogObject: catalogObject,
		logger:        logger,
	}
}

func (s *catalogService) GetFilm(ctx context.Context, id uint) (*models.Film, error) {
	film, err := s.filmRepo.FindByID(ctx, id)
	if err != nil {
		return nil, catalogError(err, fmt.Sprintf("film %d", id))
	}

	genre, err := s.genreRepo.FindByID(ctx, film.GenreID)
	switch {
	case err == nil:
		film.Genre = genre
	case errors.Is(err, repository.ErrRecordNotFound):
		s.logger.WithFields(logrus.Fields{
			"film_id":  id,
			"genre_id": film.GenreID,
		}).Warn("Film references a missing genre")
	default:
		return nil, catalogError(err, fmt.Sprintf("genre %d", film.GenreID))
	}

	return film, nil
}

func (s *catalogService) ListGenres(ctx context.Context) ([]models.Genre, error) {
	genres, err := s.genreRepo.FindAll(ctx)
	if err != nil {
		return nil, catalogError(err, "genres")
	}
	return genres, nil
}

func (s *catalogService) GetLastImportLog(ctx context.Context) (*models.ImportLog, error) {
	return s.filmRepo.GetLastImportLog(ctx)
}

func (s *catalogService) ImportCatalog(ctx context.Context) (*models.ImportLog, error) {
	importLog := &models.ImportLog{
		Status:     "failed",
		ImportedAt: time.Now().UTC(),
	}

	if s.store == nil {
		importLog.Source = s.catalogObject
		importLog.ErrorMessage = "object storage is not configured"
		_ = s.filmRepo.CreateImportLog(ctx, importLog)
		return importLog, fmt.Errorf("%w: object storage is not configured", ErrUpstreamUnavailable)
	}
	importLog.Source = s.store.Location(s.catalogObject)

	fail := func(err error) (*models.ImportLog, error) {
		importLog.ErrorMessage = err.Error()
		if logErr := s.filmRepo.CreateImportLog(ctx, importLog); logErr != nil {
			s.logger.WithError(logErr).Error("Failed to record import log")
		}
		return importLog, err
	}

	s.logger.WithField("source", importLog.Source).Info("Starting catalog import")

	obj, err := s.store.GetObject(ctx, s.catalogObject)
	if err != nil {
		return fail(fmt.Errorf("%w: %w", ErrUpstreamUnavailable, err))
	}
	defer obj.Close()

	snapshot, err := decodeSnapshot(obj)
	if err != nil {
		return fail(err)
	}

	genres, films, skipped := s.convertSnapshot(snapshot)

	if err := s.genreRepo.Upsert(ctx, genres); err != nil {
		return fail(fmt.Errorf("%w: failed to upsert genres: %w", ErrUpstreamUnavailable, err))
	}
	if err := s.filmRepo.Upsert(ctx, films); err != nil {
		return fail(fmt.Errorf("%w: failed to upsert films: %w", ErrUpstreamUnavailable, err))
	}

	importLog.Status = "success"
	importLog.GenresUpserted = len(genres)
	importLog.FilmsUpserted = len(films)
	importLog.FilmsSkipped = skipped
	if err := s.filmRepo.CreateImportLog(ctx, importLog); err != nil {
		s.logger.WithError(err).Error("Failed to record import log")
	}

	s.logger.WithFields(logrus.Fields{
		"genres_upserted": importLog.GenresUpserted,
		"films_upserted":  importLog.FilmsUpserted,
		"films_skipped":   importLog.FilmsSkipped,
	}).Info("Catalog import completed")

	return importLog, nil
}

func decodeSnapshot(r io.Reader) (*models.CatalogSnapshot, error) {
	var snapshot models.CatalogSnapshot
	if err := json.NewDecoder(r).Decode(&snapshot); err != nil {
		return nil, fmt.Errorf("%w: failed to decode catalog snapshot: %w", ErrUpstreamProtocol, err)
	}
	return &snapshot, nil
}

// convertSnapshot maps snapshot rows to models. Films without an id, a title or
// a parseable release date are skipped and counted.
func (s *catalogService) convertSnapshot(snapshot *models.CatalogSnapshot) ([]models.Genre, []models.Film, int) {
	genres := make([]models.Genre, 0, len(snapshot.Genres))
	for _, g := range snapshot.Genres {
		if g.ID == 0 || strings.TrimSpace(g.Name) == "" {
			s.logger.WithField("genre_id", g.ID).Warn("Skipping invalid genre")
			continue
		}
		genres = append(genres, models.Genre{ID: g.ID, Name: g.Name})
	}

	films := make([]models.Film, 0, len(snapshot.Films))
	skipped := 0
	for _, f := range snapshot.Films {
		releaseDate, err := parseReleaseDate(f.ReleaseDate)
		if err != nil || f.ID == 0 || f.Title == "" {
			s.logger.WithError(err).WithField("film_id", f.ID).Warn("Skipping invalid film")
			skipped++
			continue
		}
		films = append(films, models.Film{
			ID:               f.ID,
			Title:            f.Title,
			ReleaseDate:      releaseDate,
			Tagline:          f.Tagline,
			Revenue:          f.Revenue,
			Budget:           f.Budget,
			Runtime:          f.Runtime,
			OriginalLanguage: f.OriginalLanguage,
			Status:           f.Status,
			GenreID:          f.GenreID,
		})
	}

	return genres, films, skipped
}

// parseReleaseDate accepts a bare date or a full timestamp and keeps only the
// calendar date.
func parseReleaseDate(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if t, err := time.Parse(models.DateLayout, value); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid release date %q", value)
	}
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC), nil
}

package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"film-recommendations/internal/database"
	"film-recommendations/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type FilmRepository interface {
	FindByID(ctx context.Context, id uint) (*models.Film, error)
	FindCandidates(ctx context.Context, genreID, excludeID uint, window models.DateRange) ([]models.Film, error)
	Upsert(ctx context.Context, films []models.Film) error

	// Import log operations
	CreateImportLog(ctx context.Context, log *models.ImportLog) error
	GetLastImportLog(ctx context.Context) (*models.ImportLog, error)
}

type filmRepository struct {
	db      *database.Database
	timeout time.Duration
}

func NewFilmRepository(db *database.Database) FilmRepository {
	return &filmRepository{
		db:      db,
		timeout: db.GetQueryTimeout(),
	}
}

func (r *filmRepository) FindByID(ctx context.Context, id uint) (*models.Film, error) {
	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	var film models.Film
	err := r.db.WithContext(ctx).First(&film, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("film %d: %w", id, ErrRecordNotFound)
		}
		return nil, err
	}
	return &film, nil
}

// FindCandidates returns the films sharing genreID whose release date falls
// inside window (both ends inclusive), excluding excludeID. Only the columns the
// recommendation payload needs are loaded. Rows come back ordered by id so that
// pagination over the result is stable.
func (r *filmRepository) FindCandidates(ctx context.Context, genreID, excludeID uint, window models.DateRange) ([]models.Film, error) {
	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	var films []models.Film
	err := r.db.WithContext(ctx).
		Model(&models.Film{}).
		Select("id", "title", "release_date", "genre_id").
		Where("genre_id = ?", genreID).
		Where("id <> ?", excludeID).
		Where("release_date BETWEEN ? AND ?", window.From, window.To).
		Order("id ASC").
		Find(&films).Error
	if err != nil {
		return nil, err
	}
	return films, nil
}

func (r *filmRepository) Upsert(ctx context.Context, films []models.Film) error {
	if len(films) == 0 {
		return nil
	}

	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			UpdateAll: true,
		}).
		CreateInBatches(films, 500).Error
}

func (r *filmRepository) CreateImportLog(ctx context.Context, log *models.ImportLog) error {
	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	return r.db.WithContext(ctx).Create(log).Error
}

func (r *filmRepository) GetLastImportLog(ctx context.Context) (*models.ImportLog, error) {
	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	var log models.ImportLog
	err := r.db.WithContext(ctx).Order("imported_at DESC").First(&log).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &log, nil
}

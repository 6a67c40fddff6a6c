package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"film-recommendations/internal/database"
	"film-recommendations/internal/models"

	"github.com/goccy/go-json"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type GenreRepository interface {
	FindByID(ctx context.Context, id uint) (*models.Genre, error)
	FindAll(ctx context.Context) ([]models.Genre, error)
	Upsert(ctx context.Context, genres []models.Genre) error
}

type genreRepository struct {
	db       *database.Database
	rdb      *redis.Client
	cacheTTL time.Duration
	timeout  time.Duration
	logger   *logrus.Logger
}

// NewGenreRepository builds the genre repository. rdb may be nil, in which case
// every lookup goes straight to the database.
func NewGenreRepository(db *database.Database, rdb *redis.Client, cacheTTL time.Duration, logger *logrus.Logger) GenreRepository {
	return &genreRepository{
		db:       db,
		rdb:      rdb,
		cacheTTL: cacheTTL,
		timeout:  db.GetQueryTimeout(),
		logger:   logger,
	}
}

func genreCacheKey(id uint) string {
	return fmt.Sprintf("genre:%d", id)
}

func (r *genreRepository) FindByID(ctx context.Context, id uint) (*models.Genre, error) {
	if r.rdb != nil {
		cached, err := r.rdb.Get(ctx, genreCacheKey(id)).Bytes()
		if err == nil {
			var genre models.Genre
			if err := json.Unmarshal(cached, &genre); err == nil {
				r.logger.WithField("genre_id", id).Debug("Genre cache hit")
				return &genre, nil
			}
		} else if !errors.Is(err, redis.Nil) {
			r.logger.WithError(err).WithField("genre_id", id).Warn("Genre cache read failed")
		}
	}

	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	var genre models.Genre
	err := r.db.WithContext(ctx).First(&genre, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("genre %d: %w", id, ErrRecordNotFound)
		}
		return nil, err
	}

	if r.rdb != nil {
		if data, err := json.Marshal(genre); err == nil {
			if err := r.rdb.Set(ctx, genreCacheKey(id), data, r.cacheTTL).Err(); err != nil {
				r.logger.WithError(err).WithField("genre_id", id).Warn("Genre cache write failed")
			}
		}
	}

	return &genre, nil
}

func (r *genreRepository) FindAll(ctx context.Context) ([]models.Genre, error) {
	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	var genres []models.Genre
	err := r.db.WithContext(ctx).Order("id ASC").Find(&genres).Error
	return genres, err
}

func (r *genreRepository) Upsert(ctx context.Context, genres []models.Genre) error {
	if len(genres) == 0 {
		return nil
	}

	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			DoUpdates: clause.AssignmentColumns([]string{"name"}),
		}).
		Create(&genres).Error
	if err != nil {
		return err
	}

	if r.rdb != nil {
		keys := make([]string, 0, len(genres))
		for _, g := range genres {
			keys = append(keys, genreCacheKey(g.ID))
		}
		if err := r.rdb.Del(ctx, keys...).Err(); err != nil {
			r.logger.WithError(err).Warn("Failed to invalidate genre cache")
		}
	}

	return nil
}

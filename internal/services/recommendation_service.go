package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"film-recommendations/internal/config"
	"film-recommendations/internal/metrics"
	"film-recommendations/internal/models"
	"film-recommendations/internal/repository"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// RecommendationRequest carries the caller's raw pagination values. A nil
// Limit or Offset means the caller did not supply it.
type RecommendationRequest struct {
	FilmID uint
	Limit  *int
	Offset *int
}

type RecommendationService interface {
	GetRecommendations(ctx context.Context, req RecommendationRequest) (*models.RecommendationResponse, error)
}

type recommendationService struct {
	filmRepo  repository.FilmRepository
	genreRepo repository.GenreRepository
	reviews   ReviewClient
	config    config.RecommendationConfig
	logger    *logrus.Logger
}

func NewRecommendationService(filmRepo repository.FilmRepository, genreRepo repository.GenreRepository, reviews ReviewClient, cfg config.RecommendationConfig, logger *logrus.Logger) RecommendationService {
	return &recommendationService{
		filmRepo:  filmRepo,
		genreRepo: genreRepo,
		reviews:   reviews,
		config:    cfg,
		logger:    logger,
	}
}

func (s *recommendationService) GetRecommendations(ctx context.Context, req RecommendationRequest) (*models.RecommendationResponse, error) {
	start := time.Now()

	resp, candidates, err := s.recommend(ctx, req)
	metrics.RecordRecommendation(outcome(err), time.Since(start), candidates)
	if err != nil {
		return nil, err
	}

	s.logger.WithFields(logrus.Fields{
		"film_id":         req.FilmID,
		"candidates":      candidates,
		"recommendations": len(resp.Recommendations),
		"elapsed":         time.Since(start),
	}).Debug("Recommendations computed")

	return resp, nil
}

// recommend also reports the number of candidates considered, or -1 when the
// request failed before candidates were known.
func (s *recommendationService) recommend(ctx context.Context, req RecommendationRequest) (*models.RecommendationResponse, int, error) {
	if req.Limit != nil && *req.Limit < 0 {
		return nil, -1, fmt.Errorf("%w: limit must not be negative", ErrInvalidArgument)
	}
	if req.Offset != nil && *req.Offset < 0 {
		return nil, -1, fmt.Errorf("%w: offset must not be negative", ErrInvalidArgument)
	}

	source, err := s.filmRepo.FindByID(ctx, req.FilmID)
	if err != nil {
		return nil, -1, catalogError(err, fmt.Sprintf("film %d", req.FilmID))
	}

	window := EraWindow(source.ReleaseDate, s.config.YearWindow)

	var (
		genre      *models.Genre
		candidates []models.Film
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		found, err := s.genreRepo.FindByID(gctx, source.GenreID)
		if err != nil {
			return catalogError(err, fmt.Sprintf("genre %d", source.GenreID))
		}
		genre = found
		return nil
	})
	g.Go(func() error {
		found, err := s.filmRepo.FindCandidates(gctx, source.GenreID, source.ID, window)
		if err != nil {
			return catalogError(err, fmt.Sprintf("candidates of film %d", source.ID))
		}
		candidates = found
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, -1, err
	}

	ratings := map[uint][]float64{}
	if len(candidates) > 0 {
		ratings, err = s.reviews.GetReviews(ctx, filmIDs(candidates))
		if err != nil {
			return nil, len(candidates), err
		}
	}

	opts, meta := s.pagination(req)
	entries := Rank(candidates, SummarizeAll(candidates, ratings), genre.Name, opts)

	return &models.RecommendationResponse{
		Recommendations: entries,
		Meta:            meta,
	}, len(candidates), nil
}

// pagination resolves the effective ranking options and the meta block. The
// meta echoes what the caller sent, falling back to the configured reporting
// defaults, and never the effective cutoff.
func (s *recommendationService) pagination(req RecommendationRequest) (RankOptions, models.RecommendationMeta) {
	opts := RankOptions{
		MinRating: s.config.MinRating,
		Cutoff:    s.config.Cutoff,
		Offset:    s.config.DefaultOffset,
	}
	meta := models.RecommendationMeta{
		Limit:  s.config.DefaultLimit,
		Offset: s.config.DefaultOffset,
	}

	if req.Limit != nil {
		opts.Cutoff = *req.Limit
		meta.Limit = *req.Limit
	}
	if req.Offset != nil {
		opts.Offset = *req.Offset
		meta.Offset = *req.Offset
	}
	return opts, meta
}

func outcome(err error) string {
	switch {
	case err == nil:
		return "success"
	case errors.Is(err, ErrNotFound):
		return "not_found"
	case errors.Is(err, ErrInvalidArgument):
		return "invalid_argument"
	case errors.Is(err, ErrUpstreamProtocol):
		return "upstream_protocol_error"
	default:
		return "upstream_unavailable"
	}
}

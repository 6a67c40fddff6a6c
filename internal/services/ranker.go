package services

import (
	"film-recommendations/internal/models"
)

type RankOptions struct {
	MinRating float64
	Cutoff    int
	Offset    int
}

// Rank walks candidates in order, keeps the rated ones at or above MinRating
// until Cutoff entries are collected, then drops the first Offset entries of
// that cut. Offset never pulls in entries past the cutoff.
func Rank(candidates []models.Film, summaries map[uint]models.ReviewSummary, genreName string, opts RankOptions) []models.Recommendation {
	capacity := opts.Cutoff
	if capacity > len(candidates) {
		capacity = len(candidates)
	}
	if capacity < 0 {
		capacity = 0
	}
	entries := make([]models.Recommendation, 0, capacity)

	for _, film := range candidates {
		if len(entries) >= opts.Cutoff {
			break
		}
		summary, ok := summaries[film.ID]
		if !ok || !summary.Rated() || summary.Average < opts.MinRating {
			continue
		}
		entries = append(entries, models.Recommendation{
			ID:            film.ID,
			Title:         film.Title,
			ReleaseDate:   film.ReleaseDate.Format(models.DateLayout),
			Genre:         genreName,
			AverageRating: summary.Average,
			Reviews:       summary.Count,
		})
	}

	if opts.Offset > 0 {
		if opts.Offset >= len(entries) {
			return []models.Recommendation{}
		}
		entries = entries[opts.Offset:]
	}
	return entries
}

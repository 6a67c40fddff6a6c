package services

import (
	"math"

	"film-recommendations/internal/models"
)

// Summarize reduces one film's ratings to a ReviewSummary. A film without
// ratings keeps a zero Average and reports Rated() == false.
func Summarize(filmID uint, ratings []float64) models.ReviewSummary {
	summary := models.ReviewSummary{
		FilmID: filmID,
		Count:  len(ratings),
	}
	if summary.Count == 0 {
		return summary
	}

	var sum float64
	for _, r := range ratings {
		sum += r
	}
	summary.Average = roundToTenth(sum / float64(summary.Count))
	return summary
}

// SummarizeAll builds a summary for every candidate. Candidates absent from
// ratings get an unrated summary.
func SummarizeAll(candidates []models.Film, ratings map[uint][]float64) map[uint]models.ReviewSummary {
	summaries := make(map[uint]models.ReviewSummary, len(candidates))
	for _, film := range candidates {
		summaries[film.ID] = Summarize(film.ID, ratings[film.ID])
	}
	return summaries
}

func roundToTenth(v float64) float64 {
	return math.Round(v*10) / 10
}

package models

// ReviewSummary is the per-request aggregate of one film's reviews.
// Average is meaningless when Count is zero; use Rated.
type ReviewSummary struct {
	FilmID  uint
	Count   int
	Average float64
}

func (s ReviewSummary) Rated() bool {
	return s.Count > 0
}

type Recommendation struct {
	ID            uint    `json:"id" example:"6"`
	Title         string  `json:"title" example:"Insomnia"`
	ReleaseDate   string  `json:"releaseDate" example:"1995-05-24"`
	Genre         string  `json:"genre" example:"Thriller"`
	AverageRating float64 `json:"averageRating" example:"4.5"`
	Reviews       int     `json:"reviews" example:"4"`
}

type RecommendationMeta struct {
	Limit  int `json:"limit" example:"10"`
	Offset int `json:"offset" example:"0"`
}

type RecommendationResponse struct {
	Recommendations []Recommendation   `json:"recommendations"`
	Meta            RecommendationMeta `json:"meta"`
}

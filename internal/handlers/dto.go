package handlers

import (
	"errors"
	"strconv"
	"strings"

	"film-recommendations/internal/models"
	"film-recommendations/internal/services"

	"github.com/gofiber/fiber/v2"
)

// RecommendationQuery holds the optional pagination parameters. Nil means the
// parameter was absent or empty.
type RecommendationQuery struct {
	Limit  *int `query:"limit" validate:"omitempty,min=0"`
	Offset *int `query:"offset" validate:"omitempty,min=0"`
}

type GenreResponse struct {
	ID   uint   `json:"id" example:"2"`
	Name string `json:"name" example:"Thriller"`
}

type FilmResponse struct {
	ID               uint           `json:"id" example:"5"`
	Title            string         `json:"title" example:"Memento"`
	ReleaseDate      string         `json:"release_date" example:"2000-09-05"`
	Tagline          string         `json:"tagline" example:"Some memories are best forgotten."`
	Revenue          int64          `json:"revenue" example:"39723096"`
	Budget           int64          `json:"budget" example:"9000000"`
	Runtime          int            `json:"runtime" example:"113"`
	OriginalLanguage string         `json:"original_language" example:"en"`
	Status           string         `json:"status" example:"Released"`
	GenreID          uint           `json:"genre_id" example:"2"`
	Genre            *GenreResponse `json:"genre,omitempty"`
}

func toFilmResponse(film *models.Film) FilmResponse {
	resp := FilmResponse{
		ID:               film.ID,
		Title:            film.Title,
		ReleaseDate:      film.ReleaseDate.Format(models.DateLayout),
		Tagline:          film.Tagline,
		Revenue:          film.Revenue,
		Budget:           film.Budget,
		Runtime:          film.Runtime,
		OriginalLanguage: film.OriginalLanguage,
		Status:           film.Status,
		GenreID:          film.GenreID,
	}
	if film.Genre != nil {
		resp.Genre = &GenreResponse{ID: film.Genre.ID, Name: film.Genre.Name}
	}
	return resp
}

func toGenreResponses(genres []models.Genre) []GenreResponse {
	out := make([]GenreResponse, len(genres))
	for i, g := range genres {
		out[i] = GenreResponse{ID: g.ID, Name: g.Name}
	}
	return out
}

// parseOptionalInt reads a query parameter, treating an empty value as absent.
func parseOptionalInt(c *fiber.Ctx, key string) (*int, error) {
	raw := strings.TrimSpace(c.Query(key))
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, key+" must be an integer")
	}
	return &v, nil
}

func parseFilmID(c *fiber.Ctx) (uint, error) {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return 0, fiber.NewError(fiber.StatusBadRequest, "Invalid film ID")
	}
	return uint(id), nil
}

// statusFor maps a service error to its HTTP status.
func statusFor(err error) int {
	var fe *fiber.Error
	switch {
	case errors.As(err, &fe):
		return fe.Code
	case errors.Is(err, services.ErrInvalidArgument):
		return fiber.StatusBadRequest
	case errors.Is(err, services.ErrNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, services.ErrUpstreamUnavailable), errors.Is(err, services.ErrUpstreamProtocol):
		return fiber.StatusBadGateway
	default:
		return fiber.StatusInternalServerError
	}
}

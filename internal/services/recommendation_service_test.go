package services

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"testing"

	"film-recommendations/internal/config"
	"film-recommendations/internal/models"
)

func testRecommendationConfig() config.RecommendationConfig {
	return config.RecommendationConfig{
		MinRating:     4.0,
		Cutoff:        3,
		DefaultLimit:  10,
		DefaultOffset: 0,
		YearWindow:    15,
	}
}

func intPtr(v int) *int { return &v }

// thrillerCatalog is film 5 (Thriller, 2000) and its neighbours.
func thrillerCatalog() (*fakeFilmRepository, *fakeGenreRepository, *fakeReviewClient) {
	films := newFakeFilmRepository(
		models.Film{ID: 5, Title: "Memento", ReleaseDate: date(2000, 9, 5), GenreID: 2},
		models.Film{ID: 6, Title: "Insomnia", ReleaseDate: date(1995, 5, 24), GenreID: 2},
		models.Film{ID: 7, Title: "Shutter Island", ReleaseDate: date(2010, 2, 19), GenreID: 2},
		models.Film{ID: 8, Title: "Amelie", ReleaseDate: date(2001, 4, 25), GenreID: 3},
	)
	genres := newFakeGenreRepository(
		models.Genre{ID: 2, Name: "Thriller"},
		models.Genre{ID: 3, Name: "Comedy"},
	)
	reviews := &fakeReviewClient{ratings: map[uint][]float64{
		5: {5, 5},
		6: {4, 5},
		7: {3, 3},
		8: {5},
	}}
	return films, genres, reviews
}

// bulkCatalog is source film 1 plus films 10..(10+n-1) in the same genre and
// era, all rated 5.
func bulkCatalog(n int) (*fakeFilmRepository, *fakeGenreRepository, *fakeReviewClient) {
	films := newFakeFilmRepository(models.Film{ID: 1, Title: "Source", ReleaseDate: date(2000, 1, 1), GenreID: 1})
	reviews := &fakeReviewClient{ratings: map[uint][]float64{}}
	for i := 0; i < n; i++ {
		id := uint(10 + i)
		films.films[id] = models.Film{ID: id, Title: fmt.Sprintf("Film %d", id), ReleaseDate: date(2001+i, 1, 1), GenreID: 1}
		reviews.ratings[id] = []float64{5}
	}
	return films, newFakeGenreRepository(models.Genre{ID: 1, Name: "Drama"}), reviews
}

func recommendationIDs(resp *models.RecommendationResponse) []uint {
	ids := make([]uint, len(resp.Recommendations))
	for i, r := range resp.Recommendations {
		ids[i] = r.ID
	}
	return ids
}

func TestGetRecommendationsSameGenreAndEra(t *testing.T) {
	films, genres, reviews := thrillerCatalog()
	svc := NewRecommendationService(films, genres, reviews, testRecommendationConfig(), newTestLogger())

	resp, err := svc.GetRecommendations(context.Background(), RecommendationRequest{FilmID: 5})
	if err != nil {
		t.Fatalf("GetRecommendations() error = %v", err)
	}

	want := []models.Recommendation{{
		ID:            6,
		Title:         "Insomnia",
		ReleaseDate:   "1995-05-24",
		Genre:         "Thriller",
		AverageRating: 4.5,
		Reviews:       2,
	}}
	if !reflect.DeepEqual(resp.Recommendations, want) {
		t.Errorf("Recommendations = %+v, want %+v", resp.Recommendations, want)
	}
	if resp.Meta != (models.RecommendationMeta{Limit: 10, Offset: 0}) {
		t.Errorf("Meta = %+v, want {Limit:10 Offset:0}", resp.Meta)
	}

	if len(reviews.calls) != 1 {
		t.Fatalf("review client called %d times, want 1", len(reviews.calls))
	}
	if got := reviews.calls[0]; !reflect.DeepEqual(got, []uint{6, 7}) {
		t.Errorf("review lookup ids = %v, want [6 7]", got)
	}
}

func TestGetRecommendationsExcludesUnratedCandidates(t *testing.T) {
	films, genres, reviews := thrillerCatalog()
	films.films[9] = models.Film{ID: 9, Title: "No Reviews", ReleaseDate: date(2003, 1, 1), GenreID: 2}
	films.films[11] = models.Film{ID: 11, Title: "Empty Reviews", ReleaseDate: date(2004, 1, 1), GenreID: 2}
	reviews.ratings[11] = []float64{}

	svc := NewRecommendationService(films, genres, reviews, testRecommendationConfig(), newTestLogger())

	resp, err := svc.GetRecommendations(context.Background(), RecommendationRequest{FilmID: 5})
	if err != nil {
		t.Fatalf("GetRecommendations() error = %v", err)
	}
	if got := recommendationIDs(resp); !reflect.DeepEqual(got, []uint{6}) {
		t.Errorf("ids = %v, want [6]", got)
	}
}

func TestGetRecommendationsThresholdIsInclusive(t *testing.T) {
	films, genres, reviews := thrillerCatalog()
	reviews.ratings[7] = []float64{4, 4}

	svc := NewRecommendationService(films, genres, reviews, testRecommendationConfig(), newTestLogger())

	resp, err := svc.GetRecommendations(context.Background(), RecommendationRequest{FilmID: 5})
	if err != nil {
		t.Fatalf("GetRecommendations() error = %v", err)
	}
	if got := recommendationIDs(resp); !reflect.DeepEqual(got, []uint{6, 7}) {
		t.Errorf("ids = %v, want [6 7]", got)
	}
	for _, r := range resp.Recommendations {
		if r.AverageRating < 4.0 {
			t.Errorf("film %d has average %v below threshold", r.ID, r.AverageRating)
		}
		if r.ID == 5 {
			t.Error("source film recommended to itself")
		}
	}
}

func TestGetRecommendationsPagination(t *testing.T) {
	tests := []struct {
		name          string
		defaultOffset int
		req           RecommendationRequest
		wantIDs       []uint
		wantMeta      models.RecommendationMeta
	}{
		{
			name:     "defaults cut at three",
			req:      RecommendationRequest{FilmID: 1},
			wantIDs:  []uint{10, 11, 12},
			wantMeta: models.RecommendationMeta{Limit: 10, Offset: 0},
		},
		{
			name:     "limit overrides cutoff",
			req:      RecommendationRequest{FilmID: 1, Limit: intPtr(5)},
			wantIDs:  []uint{10, 11, 12, 13, 14},
			wantMeta: models.RecommendationMeta{Limit: 5, Offset: 0},
		},
		{
			name:     "offset trims the cut window",
			req:      RecommendationRequest{FilmID: 1, Limit: intPtr(4), Offset: intPtr(2)},
			wantIDs:  []uint{12, 13},
			wantMeta: models.RecommendationMeta{Limit: 4, Offset: 2},
		},
		{
			name:     "offset without limit uses default cutoff",
			req:      RecommendationRequest{FilmID: 1, Offset: intPtr(1)},
			wantIDs:  []uint{11, 12},
			wantMeta: models.RecommendationMeta{Limit: 10, Offset: 1},
		},
		{
			name:     "offset past cutoff is empty",
			req:      RecommendationRequest{FilmID: 1, Limit: intPtr(2), Offset: intPtr(2)},
			wantIDs:  []uint{},
			wantMeta: models.RecommendationMeta{Limit: 2, Offset: 2},
		},
		{
			name:     "zero limit",
			req:      RecommendationRequest{FilmID: 1, Limit: intPtr(0)},
			wantIDs:  []uint{},
			wantMeta: models.RecommendationMeta{Limit: 0, Offset: 0},
		},
		{
			name:          "configured default offset of one",
			defaultOffset: 1,
			req:           RecommendationRequest{FilmID: 1},
			wantIDs:       []uint{11, 12},
			wantMeta:      models.RecommendationMeta{Limit: 10, Offset: 1},
		},
		{
			name:          "explicit offset beats configured default",
			defaultOffset: 1,
			req:           RecommendationRequest{FilmID: 1, Offset: intPtr(0)},
			wantIDs:       []uint{10, 11, 12},
			wantMeta:      models.RecommendationMeta{Limit: 10, Offset: 0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			films, genres, reviews := bulkCatalog(6)
			cfg := testRecommendationConfig()
			cfg.DefaultOffset = tt.defaultOffset
			svc := NewRecommendationService(films, genres, reviews, cfg, newTestLogger())

			resp, err := svc.GetRecommendations(context.Background(), tt.req)
			if err != nil {
				t.Fatalf("GetRecommendations() error = %v", err)
			}
			if resp.Recommendations == nil {
				t.Fatal("Recommendations is nil, want a slice")
			}
			if got := recommendationIDs(resp); !reflect.DeepEqual(got, tt.wantIDs) {
				t.Errorf("ids = %v, want %v", got, tt.wantIDs)
			}
			if resp.Meta != tt.wantMeta {
				t.Errorf("Meta = %+v, want %+v", resp.Meta, tt.wantMeta)
			}
		})
	}
}

func TestGetRecommendationsNoCandidatesSkipsReviewLookup(t *testing.T) {
	films := newFakeFilmRepository(models.Film{ID: 1, Title: "Alone", ReleaseDate: date(1950, 1, 1), GenreID: 4})
	genres := newFakeGenreRepository(models.Genre{ID: 4, Name: "Western"})
	reviews := &fakeReviewClient{}

	svc := NewRecommendationService(films, genres, reviews, testRecommendationConfig(), newTestLogger())

	resp, err := svc.GetRecommendations(context.Background(), RecommendationRequest{FilmID: 1})
	if err != nil {
		t.Fatalf("GetRecommendations() error = %v", err)
	}
	if len(resp.Recommendations) != 0 || resp.Recommendations == nil {
		t.Errorf("Recommendations = %#v, want empty slice", resp.Recommendations)
	}
	if len(reviews.calls) != 0 {
		t.Errorf("review client called %d times, want 0", len(reviews.calls))
	}
}

func TestGetRecommendationsErrors(t *testing.T) {
	tests := []struct {
		name    string
		setup   func(*fakeFilmRepository, *fakeGenreRepository, *fakeReviewClient)
		req     RecommendationRequest
		wantErr error
	}{
		{
			name:    "unknown film",
			req:     RecommendationRequest{FilmID: 404},
			wantErr: ErrNotFound,
		},
		{
			name: "unknown genre",
			setup: func(_ *fakeFilmRepository, g *fakeGenreRepository, _ *fakeReviewClient) {
				delete(g.genres, 2)
			},
			req:     RecommendationRequest{FilmID: 5},
			wantErr: ErrNotFound,
		},
		{
			name: "catalog down",
			setup: func(f *fakeFilmRepository, _ *fakeGenreRepository, _ *fakeReviewClient) {
				f.findErr = errors.New("connection refused")
			},
			req:     RecommendationRequest{FilmID: 5},
			wantErr: ErrUpstreamUnavailable,
		},
		{
			name: "candidate query fails",
			setup: func(f *fakeFilmRepository, _ *fakeGenreRepository, _ *fakeReviewClient) {
				f.queryErr = errors.New("statement timeout")
			},
			req:     RecommendationRequest{FilmID: 5},
			wantErr: ErrUpstreamUnavailable,
		},
		{
			name: "review service unavailable",
			setup: func(_ *fakeFilmRepository, _ *fakeGenreRepository, r *fakeReviewClient) {
				r.err = fmt.Errorf("%w: dial tcp: timeout", ErrUpstreamUnavailable)
			},
			req:     RecommendationRequest{FilmID: 5},
			wantErr: ErrUpstreamUnavailable,
		},
		{
			name: "review service malformed",
			setup: func(_ *fakeFilmRepository, _ *fakeGenreRepository, r *fakeReviewClient) {
				r.err = fmt.Errorf("%w: unexpected token", ErrUpstreamProtocol)
			},
			req:     RecommendationRequest{FilmID: 5},
			wantErr: ErrUpstreamProtocol,
		},
		{
			name:    "negative limit",
			req:     RecommendationRequest{FilmID: 5, Limit: intPtr(-1)},
			wantErr: ErrInvalidArgument,
		},
		{
			name:    "negative offset",
			req:     RecommendationRequest{FilmID: 5, Offset: intPtr(-3)},
			wantErr: ErrInvalidArgument,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			films, genres, reviews := thrillerCatalog()
			if tt.setup != nil {
				tt.setup(films, genres, reviews)
			}
			svc := NewRecommendationService(films, genres, reviews, testRecommendationConfig(), newTestLogger())

			resp, err := svc.GetRecommendations(context.Background(), tt.req)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("error = %v, want %v", err, tt.wantErr)
			}
			if resp != nil {
				t.Errorf("response = %+v, want nil on failure", resp)
			}
		})
	}
}

func TestGetRecommendationsNotFoundSkipsReviewLookup(t *testing.T) {
	films, genres, reviews := thrillerCatalog()
	svc := NewRecommendationService(films, genres, reviews, testRecommendationConfig(), newTestLogger())

	if _, err := svc.GetRecommendations(context.Background(), RecommendationRequest{FilmID: 404}); !errors.Is(err, ErrNotFound) {
		t.Fatalf("error = %v, want ErrNotFound", err)
	}
	if len(reviews.calls) != 0 {
		t.Errorf("review client called %d times, want 0", len(reviews.calls))
	}
}

func TestGetRecommendationsIsIdempotent(t *testing.T) {
	films, genres, reviews := bulkCatalog(5)
	svc := NewRecommendationService(films, genres, reviews, testRecommendationConfig(), newTestLogger())
	req := RecommendationRequest{FilmID: 1, Limit: intPtr(4), Offset: intPtr(1)}

	first, err := svc.GetRecommendations(context.Background(), req)
	if err != nil {
		t.Fatalf("first call error = %v", err)
	}
	second, err := svc.GetRecommendations(context.Background(), req)
	if err != nil {
		t.Fatalf("second call error = %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Errorf("responses differ:\n%+v\n%+v", first, second)
	}
}

func TestOutcome(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{nil, "success"},
		{fmt.Errorf("film 1: %w", ErrNotFound), "not_found"},
		{fmt.Errorf("%w: limit", ErrInvalidArgument), "invalid_argument"},
		{fmt.Errorf("%w: bad json", ErrUpstreamProtocol), "upstream_protocol_error"},
		{fmt.Errorf("%w: refused", ErrUpstreamUnavailable), "upstream_unavailable"},
	}
	for _, tt := range tests {
		if got := outcome(tt.err); got != tt.want {
			t.Errorf("outcome(%v) = %q, want %q", tt.err, got, tt.want)
		}
	}
}

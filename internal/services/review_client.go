package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"film-recommendations/internal/config"
	"film-recommendations/internal/metrics"

	"github.com/goccy/go-json"
	"github.com/sirupsen/logrus"
)

// ReviewClient looks up reviews for a batch of films in a single call.
// Films missing from the returned map have no reviews.
type ReviewClient interface {
	GetReviews(ctx context.Context, filmIDs []uint) (map[uint][]float64, error)
}

type reviewClient struct {
	baseURL    string
	httpClient *http.Client
	logger     *logrus.Logger
}

func NewReviewClient(cfg config.ReviewServiceConfig, logger *logrus.Logger) ReviewClient {
	return &reviewClient{
		baseURL: cfg.BaseURL,
		httpClient: &http.Client{
			Timeout: cfg.HTTPTimeout,
		},
		logger: logger,
	}
}

type reviewBatchEntry struct {
	FilmID  uint           `json:"film_id"`
	Reviews []reviewRecord `json:"reviews"`
}

type reviewRecord struct {
	ID       int      `json:"id"`
	AuthorID int      `json:"author_id"`
	Content  string   `json:"content"`
	Rating   *float64 `json:"rating"`
	FilmID   uint     `json:"film_id"`
}

func (c *reviewClient) GetReviews(ctx context.Context, filmIDs []uint) (map[uint][]float64, error) {
	ids := uniqueIDs(filmIDs)
	if len(ids) == 0 {
		return map[uint][]float64{}, nil
	}

	requestURL, err := c.batchURL(ids)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid review service url: %w", ErrUpstreamUnavailable, err)
	}

	start := time.Now()
	entries, err := c.fetch(ctx, requestURL)
	elapsed := time.Since(start)
	if err != nil {
		metrics.RecordReviewLookup(lookupResult(err), elapsed)
		c.logger.WithError(err).WithFields(logrus.Fields{
			"films":   len(ids),
			"elapsed": elapsed,
		}).Error("Review service lookup failed")
		return nil, err
	}
	metrics.RecordReviewLookup("ok", elapsed)

	requested := make(map[uint]struct{}, len(ids))
	for _, id := range ids {
		requested[id] = struct{}{}
	}

	ratings := make(map[uint][]float64, len(entries))
	for _, entry := range entries {
		if _, ok := requested[entry.FilmID]; !ok {
			continue
		}
		values := ratings[entry.FilmID]
		for _, review := range entry.Reviews {
			values = append(values, *review.Rating)
		}
		ratings[entry.FilmID] = values
	}

	c.logger.WithFields(logrus.Fields{
		"films":       len(ids),
		"films_found": len(ratings),
		"elapsed":     elapsed,
	}).Debug("Review service lookup completed")

	return ratings, nil
}

func (c *reviewClient) fetch(ctx context.Context, requestURL string) ([]reviewBatchEntry, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %w", ErrUpstreamUnavailable, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: review service request failed: %w", ErrUpstreamUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("%w: review service returned status %d: %s", ErrUpstreamUnavailable, resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var entries []reviewBatchEntry
	if err := json.NewDecoder(resp.Body).Decode(&entries); err != nil {
		return nil, fmt.Errorf("%w: failed to decode review service response: %w", ErrUpstreamProtocol, err)
	}
	for _, entry := range entries {
		for _, review := range entry.Reviews {
			if review.Rating == nil {
				return nil, fmt.Errorf("%w: review %d for film %d has no rating", ErrUpstreamProtocol, review.ID, entry.FilmID)
			}
		}
	}
	return entries, nil
}

// batchURL appends films=<id,id,...> to the configured base URL, keeping any
// query parameters already present on it.
func (c *reviewClient) batchURL(ids []uint) (string, error) {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("review service url %q must be absolute", c.baseURL)
	}

	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = strconv.FormatUint(uint64(id), 10)
	}

	q := u.Query()
	q.Del("films")
	raw := q.Encode()
	if raw != "" {
		raw += "&"
	}
	u.RawQuery = raw + "films=" + strings.Join(parts, ",")
	return u.String(), nil
}

func uniqueIDs(ids []uint) []uint {
	seen := make(map[uint]struct{}, len(ids))
	out := make([]uint, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

func lookupResult(err error) string {
	if err == nil {
		return "ok"
	}
	if errors.Is(err, ErrUpstreamProtocol) {
		return "protocol_error"
	}
	return "unavailable"
}

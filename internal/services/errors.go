package services

import (
	"errors"
	"fmt"

	"film-recommendations/internal/repository"
)

// Failure categories surfaced to handlers. Concrete errors wrap one of these
// and are matched with errors.Is.
var (
	ErrNotFound            = errors.New("not found")
	ErrInvalidArgument     = errors.New("invalid argument")
	ErrUpstreamUnavailable = errors.New("upstream unavailable")
	ErrUpstreamProtocol    = errors.New("upstream protocol error")
)

// catalogError classifies an error coming back from the catalog repositories.
func catalogError(err error, what string) error {
	if errors.Is(err, repository.ErrRecordNotFound) {
		return fmt.Errorf("%s: %w", what, ErrNotFound)
	}
	return fmt.Errorf("%w: catalog lookup for %s: %w", ErrUpstreamUnavailable, what, err)
}

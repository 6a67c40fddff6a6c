package services

import (
	"time"

	"film-recommendations/internal/models"
)

// EraWindow returns the inclusive window running years before and after the
// release date, keeping its month and day. Days that do not exist in the
// target year roll over the way time.Date normalises them (Feb 29 -> Mar 1).
func EraWindow(release time.Time, years int) models.DateRange {
	y, m, d := release.Date()
	return models.DateRange{
		From: time.Date(y-years, m, d, 0, 0, 0, 0, time.UTC),
		To:   time.Date(y+years, m, d, 0, 0, 0, 0, time.UTC),
	}
}

func filmIDs(films []models.Film) []uint {
	ids := make([]uint, len(films))
	for i, f := range films {
		ids[i] = f.ID
	}
	return ids
}

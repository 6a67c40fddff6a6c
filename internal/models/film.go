package models

import (
	"time"
)

// DateLayout is the calendar-date format used on the wire and in catalog snapshots.
const DateLayout = "2006-01-02"

type Film struct {
	ID               uint      `gorm:"primaryKey;autoIncrement:false" json:"id" example:"5"`
	Title            string    `gorm:"not null;index" json:"title" example:"Memento"`
	ReleaseDate      time.Time `gorm:"type:date;not null;index" json:"release_date" example:"2000-09-05T00:00:00Z"`
	Tagline          string    `json:"tagline" example:"Some memories are best forgotten."`
	Revenue          int64     `json:"revenue" example:"39723096"`
	Budget           int64     `json:"budget" example:"9000000"`
	Runtime          int       `json:"runtime" example:"113"`
	OriginalLanguage string    `gorm:"size:10" json:"original_language" example:"en"`
	Status           string    `gorm:"size:32" json:"status" example:"Released"`
	GenreID          uint      `gorm:"index;not null" json:"genre_id" example:"2"`
	Genre            *Genre    `gorm:"foreignKey:GenreID" json:"genre,omitempty"`
}

func (Film) TableName() string {
	return "films"
}

// DateRange is an inclusive calendar window.
type DateRange struct {
	From time.Time
	To   time.Time
}

type ImportLog struct {
	ID             uint      `gorm:"primaryKey" json:"id" example:"1"`
	Source         string    `gorm:"index" json:"source" example:"catalog/catalog.json"`
	Status         string    `gorm:"index" json:"status" example:"success"`
	GenresUpserted int       `json:"genres_upserted" example:"19"`
	FilmsUpserted  int       `json:"films_upserted" example:"2500"`
	FilmsSkipped   int       `json:"films_skipped" example:"0"`
	ErrorMessage   string    `gorm:"type:text" json:"error_message,omitempty"`
	ImportedAt     time.Time `gorm:"index" json:"imported_at"`
	CreatedAt      time.Time `json:"created_at"`
}

func (ImportLog) TableName() string {
	return "import_logs"
}

// CatalogSnapshot is the document the importer reads from object storage.
type CatalogSnapshot struct {
	Genres []SnapshotGenre `json:"genres"`
	Films  []SnapshotFilm  `json:"films"`
}

type SnapshotGenre struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

type SnapshotFilm struct {
	ID               uint   `json:"id"`
	Title            string `json:"title"`
	ReleaseDate      string `json:"release_date"`
	Tagline          string `json:"tagline"`
	Revenue          int64  `json:"revenue"`
	Budget           int64  `json:"budget"`
	Runtime          int    `json:"runtime"`
	OriginalLanguage string `json:"original_language"`
	Status           string `json:"status"`
	GenreID          uint   `json:"genre_id"`
}

package domain

import (
	"fmt"
	"time"
)

// DateLayouts are the accepted layouts for dates in import files
var DateLayouts = []string{
	time.DateOnly,
	time.RFC3339,
	"2006-01-02T15:04:05",
}

// ImportRecord is a series as it appears in an import file, before dates are parsed
type ImportRecord struct {
	Title       string   `json:"title" yaml:"title" validate:"required,notblank"`
	LastTitle   string   `json:"lastTitle" yaml:"lastTitle"`
	Country     string   `json:"country" yaml:"country" validate:"required,notblank"`
	Genre       string   `json:"genre" yaml:"genre" validate:"required,notblank"`
	AgeLimits   *int32   `json:"ageLimits" yaml:"ageLimits" validate:"required,gte=0"`
	StartDate   string   `json:"startDate" yaml:"startDate" validate:"omitempty,isodate"`
	ReleaseDate string   `json:"releaseDate" yaml:"releaseDate" validate:"required,isodate"`
	Rating      *float64 `json:"rating" yaml:"rating" validate:"required,gte=0,lte=10"`
	Trailer     string   `json:"trailer" yaml:"trailer" validate:"omitempty,url"`
	Cover       string   `json:"cover" yaml:"cover"`
	Studio      *int32   `json:"studio" yaml:"studio" validate:"required"`
}

// ParseDate parses s using the first matching layout in DateLayouts
func ParseDate(s string) (time.Time, error) {
	for _, layout := range DateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), nil
		}
	}

	return time.Time{}, fmt.Errorf("unrecognised date %q", s)
}

// ToSeries converts a validated record into a Series without an ID
func (r ImportRecord) ToSeries() (Series, error) {
	s := Series{
		Title:     r.Title,
		LastTitle: r.LastTitle,
		Country:   r.Country,
		Genre:     r.Genre,
		Trailer:   r.Trailer,
		Cover:     r.Cover,
	}

	if r.AgeLimits != nil {
		s.AgeLimits = *r.AgeLimits
	}
	if r.Rating != nil {
		s.Rating = *r.Rating
	}
	if r.Studio != nil {
		s.Studio = *r.Studio
	}

	releaseDate, err := ParseDate(r.ReleaseDate)
	if err != nil {
		return Series{}, fmt.Errorf("releaseDate: %w", err)
	}
	s.ReleaseDate = releaseDate

	if r.StartDate != "" {
		startDate, err := ParseDate(r.StartDate)
		if err != nil {
			return Series{}, fmt.Errorf("startDate: %w", err)
		}
		s.StartDate = &startDate
	}

	return s, nil
}

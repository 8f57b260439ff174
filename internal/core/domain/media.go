package domain

import (
	"fmt"
	"strings"
	"time"
)

var (
	ErrMediaNotFound   = fmt.Errorf("media item %w", ErrNotFound)
	ErrDuplicateName   = fmt.Errorf("%w: a media item with this name already exists", ErrDuplicate)
	ErrMediaNameEmpty  = fmt.Errorf("%w: media name cannot be empty", ErrValidation)
	ErrMediaNameLong   = fmt.Errorf("%w: media name is too long (max 100 chars)", ErrValidation)
	ErrInvalidCountry  = fmt.Errorf("%w: unknown media country", ErrValidation)
	ErrInvalidType     = fmt.Errorf("%w: unknown media type", ErrValidation)
	ErrInvalidStatus   = fmt.Errorf("%w: unknown media status", ErrValidation)
	ErrMediaRatingLong = fmt.Errorf("%w: rating is too long (max 20 chars)", ErrValidation)
)

type MediaCountry string

const (
	CountryUndefined MediaCountry = "undefined"
	CountryKorea     MediaCountry = "korea"
	CountryJapan     MediaCountry = "japan"
	CountryAmerica   MediaCountry = "america"
)

type MediaType string

const (
	TypeUndefined MediaType = "undefined"
	TypeVariety   MediaType = "variety"
	TypeDrama     MediaType = "drama"
	TypeMovie     MediaType = "movie"
	TypeSeries    MediaType = "series"
)

type MediaStatus string

const (
	StatusQueued   MediaStatus = "queued"
	StatusWatching MediaStatus = "watching"
	StatusWatched  MediaStatus = "watched"
)

var (
	mediaCountries = []MediaCountry{CountryUndefined, CountryKorea, CountryJapan, CountryAmerica}
	mediaTypes     = []MediaType{TypeUndefined, TypeVariety, TypeDrama, TypeMovie, TypeSeries}
	mediaStatuses  = []MediaStatus{StatusQueued, StatusWatching, StatusWatched}
)

const maxRatingLen = 20

// MediaEnums lists the selectable values. "undefined" is a storage default
// and is never offered.
type MediaEnums struct {
	Countries []MediaCountry `json:"countries"`
	Types     []MediaType    `json:"types"`
	Statuses  []MediaStatus  `json:"statuses"`
}

func Enums() MediaEnums {
	return MediaEnums{
		Countries: append([]MediaCountry(nil), mediaCountries[1:]...),
		Types:     append([]MediaType(nil), mediaTypes[1:]...),
		Statuses:  append([]MediaStatus(nil), mediaStatuses...),
	}
}

func ParseMediaCountry(s string) (MediaCountry, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return CountryUndefined, nil
	}
	for _, c := range mediaCountries {
		if string(c) == s {
			return c, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidCountry, s)
}

func ParseMediaType(s string) (MediaType, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return TypeUndefined, nil
	}
	for _, t := range mediaTypes {
		if string(t) == s {
			return t, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidType, s)
}

func ParseMediaStatus(s string) (MediaStatus, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return StatusQueued, nil
	}
	for _, st := range mediaStatuses {
		if string(st) == s {
			return st, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidStatus, s)
}

// Media is a watchlist entry. The id is the slug of the name, which is
// therefore unique across the list.
type Media struct {
	ID        string       `json:"id" db:"id"`
	Name      string       `json:"name" db:"name"`
	Country   MediaCountry `json:"country" db:"country"`
	Type      MediaType    `json:"type" db:"type"`
	Status    MediaStatus  `json:"status" db:"status"`
	Rating    string       `json:"rating" db:"rating"`
	Review    string       `json:"review" db:"review"`
	CreatedAt time.Time    `json:"created_at" db:"created_at"`
	UpdatedAt time.Time    `json:"updated_at" db:"updated_at"`
}

type MediaInput struct {
	Name    string
	Country string
	Type    string
	Status  string
	Rating  string
	Review  string
}

func NewMedia(in MediaInput) (*Media, error) {
	m := &Media{CreatedAt: time.Now().UTC()}
	if err := m.Apply(in); err != nil {
		return nil, err
	}
	return m, nil
}

// Apply validates in and overwrites every field. The id follows the name.
func (m *Media) Apply(in MediaInput) error {
	name, err := validateName(in.Name, ErrMediaNameEmpty, ErrMediaNameLong)
	if err != nil {
		return err
	}
	country, err := ParseMediaCountry(in.Country)
	if err != nil {
		return err
	}
	mType, err := ParseMediaType(in.Type)
	if err != nil {
		return err
	}
	status, err := ParseMediaStatus(in.Status)
	if err != nil {
		return err
	}
	rating := strings.TrimSpace(in.Rating)
	if len(rating) > maxRatingLen {
		return ErrMediaRatingLong
	}

	m.ID = Slugify(name)
	m.Name = name
	m.Country = country
	m.Type = mType
	m.Status = status
	m.Rating = rating
	m.Review = strings.TrimSpace(in.Review)
	m.UpdatedAt = time.Now().UTC()
	return nil
}

// IsDuplicateName reports whether name collides with an item other than
// excludeID in items.
func IsDuplicateName(items []Media, name, excludeID string) bool {
	id := Slugify(name)
	if id == "" {
		return false
	}
	for _, it := range items {
		if it.ID == id && it.ID != excludeID {
			return true
		}
	}
	return false
}

package domain_test

import (
	"testing"

	"github.com/comitanigiacomo/shelf/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMedia(t *testing.T) {
	t.Run("Success: Applies defaults", func(t *testing.T) {
		m, err := domain.NewMedia(domain.MediaInput{Name: "Running Man"})
		require.NoError(t, err)

		assert.Equal(t, "running-man", m.ID)
		assert.Equal(t, domain.CountryUndefined, m.Country)
		assert.Equal(t, domain.TypeUndefined, m.Type)
		assert.Equal(t, domain.StatusQueued, m.Status)
	})

	t.Run("Success: Enum values are case insensitive", func(t *testing.T) {
		m, err := domain.NewMedia(domain.MediaInput{
			Name: "Spirited Away", Country: "Japan", Type: "MOVIE", Status: "watched", Rating: " 10/10 ",
		})
		require.NoError(t, err)

		assert.Equal(t, domain.CountryJapan, m.Country)
		assert.Equal(t, domain.TypeMovie, m.Type)
		assert.Equal(t, domain.StatusWatched, m.Status)
		assert.Equal(t, "10/10", m.Rating)
	})

	tests := []struct {
		name    string
		in      domain.MediaInput
		wantErr error
	}{
		{"Error: Empty name", domain.MediaInput{}, domain.ErrMediaNameEmpty},
		{"Error: Unknown country", domain.MediaInput{Name: "x", Country: "france"}, domain.ErrInvalidCountry},
		{"Error: Unknown type", domain.MediaInput{Name: "x", Type: "podcast"}, domain.ErrInvalidType},
		{"Error: Unknown status", domain.MediaInput{Name: "x", Status: "dropped"}, domain.ErrInvalidStatus},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := domain.NewMedia(tt.in)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.ErrorIs(t, err, domain.ErrValidation)
		})
	}
}

func TestEnums(t *testing.T) {
	e := domain.Enums()

	assert.Equal(t, []domain.MediaCountry{domain.CountryKorea, domain.CountryJapan, domain.CountryAmerica}, e.Countries)
	assert.Equal(t, []domain.MediaType{domain.TypeVariety, domain.TypeDrama, domain.TypeMovie, domain.TypeSeries}, e.Types)
	assert.Equal(t, []domain.MediaStatus{domain.StatusQueued, domain.StatusWatching, domain.StatusWatched}, e.Statuses)
	assert.NotContains(t, e.Countries, domain.CountryUndefined)
}

func TestIsDuplicateName(t *testing.T) {
	items := []domain.Media{{ID: "running-man", Name: "Running Man"}}

	assert.True(t, domain.IsDuplicateName(items, "running  MAN", ""))
	assert.False(t, domain.IsDuplicateName(items, "Running Man", "running-man"), "editing the item itself is not a duplicate")
	assert.False(t, domain.IsDuplicateName(items, "Other", ""))
	assert.False(t, domain.IsDuplicateName(items, "", ""))
}

func TestActivityAndPresets(t *testing.T) {
	day := domain.MustDateKey(2024, 3, 5)

	t.Run("Success: Activity id joins date and slug", func(t *testing.T) {
		a, err := domain.NewActivity("Cinema Night", day)
		require.NoError(t, err)
		assert.Equal(t, "2024-03-05-cinema-night", a.ID)
	})

	t.Run("Error: Activity needs a date", func(t *testing.T) {
		_, err := domain.NewActivity("Cinema", domain.DateKey{})
		assert.ErrorIs(t, err, domain.ErrActivityNoDate)
	})

	t.Run("Success: Suggestions are a sorted union", func(t *testing.T) {
		presets := []domain.Preset{{ID: "walk", Name: "Walk"}, {ID: "cinema", Name: "Cinema"}}
		activities := []domain.Activity{{Name: "Walk", Date: day}, {Name: "Bowling", Date: day}}

		assert.Equal(t, []string{"Bowling", "Cinema", "Walk"}, domain.SuggestionNames(presets, activities))
		assert.Empty(t, domain.SuggestionNames(nil, nil))
	})

	t.Run("Success: Preset rename moves the id", func(t *testing.T) {
		p, err := domain.NewPreset("Walk")
		require.NoError(t, err)
		require.NoError(t, p.Rename("Long Walk"))
		assert.Equal(t, "long-walk", p.ID)
	})
}

package domain

import (
	"fmt"
	"slices"
	"strings"
)

var (
	ErrPresetNotFound  = fmt.Errorf("preset %w", ErrNotFound)
	ErrPresetExists    = fmt.Errorf("preset %w", ErrDuplicate)
	ErrPresetNameEmpty = fmt.Errorf("%w: preset name cannot be empty", ErrValidation)
	ErrPresetNameLong  = fmt.Errorf("%w: preset name is too long (max 100 chars)", ErrValidation)
)

// Preset is a named suggestion for quick activity entry.
type Preset struct {
	ID   string `json:"id" db:"id"`
	Name string `json:"name" db:"name"`
}

func NewPreset(name string) (*Preset, error) {
	cleanName, err := validateName(name, ErrPresetNameEmpty, ErrPresetNameLong)
	if err != nil {
		return nil, err
	}
	return &Preset{ID: Slugify(cleanName), Name: cleanName}, nil
}

// Rename keeps the id in step with the name.
func (p *Preset) Rename(name string) error {
	cleanName, err := validateName(name, ErrPresetNameEmpty, ErrPresetNameLong)
	if err != nil {
		return err
	}
	p.ID = Slugify(cleanName)
	p.Name = cleanName
	return nil
}

// SuggestionNames returns the sorted, de-duplicated union of preset and
// activity names, the list offered when logging a new activity.
func SuggestionNames(presets []Preset, activities []Activity) []string {
	seen := make(map[string]struct{}, len(presets)+len(activities))
	names := make([]string, 0, len(presets)+len(activities))

	add := func(name string) {
		name = strings.TrimSpace(name)
		if name == "" {
			return
		}
		if _, ok := seen[name]; ok {
			return
		}
		seen[name] = struct{}{}
		names = append(names, name)
	}

	for _, p := range presets {
		add(p.Name)
	}
	for _, a := range activities {
		add(a.Name)
	}

	slices.Sort(names)
	return names
}

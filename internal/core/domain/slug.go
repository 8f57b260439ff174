package domain

import "github.com/gosimple/slug"

// Slugify derives a stable lowercase id from a display name.
func Slugify(name string) string {
	return slug.Make(name)
}

package slugger

import (
	"fmt"

	"agenda_backend/internal/repositories"

	"github.com/gosimple/slug"
	"gorm.io/gorm"
)

const maxSlugLength = 100

// Derive builds a URL-safe slug from the title, unique among the
// owner's events. On collision it probes "-1", "-2", ... sequentially
// until a free slug is found, then truncates to 100 characters.
// excludeEventID keeps an updated event from colliding with its own
// current slug.
func Derive(db *gorm.DB, events repositories.EventRepository, userID, title, excludeEventID string) (string, error) {
	base := slug.Make(title)

	candidate := base
	for suffix := 1; ; suffix++ {
		taken, err := events.SlugExists(db, userID, candidate, excludeEventID)
		if err != nil {
			return "", err
		}
		if !taken {
			break
		}
		candidate = fmt.Sprintf("%s-%d", base, suffix)
	}

	if len(candidate) > maxSlugLength {
		candidate = candidate[:maxSlugLength]
	}
	return candidate, nil
}

package publishers

import (
	"time"

	"github.com/khaled-dev-loper/SteamStorefrontAPI/pkg/storefront"
)

// Event is the payload published downstream when the watcher spots a featured
// item it has not announced before.
type Event struct {
	CategoryID   string                 `json:"category_id"`
	CategoryName string                 `json:"category_name"`
	Country      string                 `json:"country,omitempty"`
	App          storefront.FeaturedApp `json:"app"`
	ObservedAt   time.Time              `json:"observed_at"`
}

// NewEvent constructs an Event for the given category + capsule entry.
func NewEvent(categoryID, categoryName, country string, app storefront.FeaturedApp) Event {
	return Event{
		CategoryID:   categoryID,
		CategoryName: categoryName,
		Country:      country,
		App:          app,
		ObservedAt:   time.Now().UTC(),
	}
}

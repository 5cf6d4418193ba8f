package govnotice

import (
	"context"
	"time"
)

// Notification represents a single published notice after extraction and
// enrichment. Notifications are immutable once created by the scrape
// pipeline; deactivation is a store-side concern.
type Notification struct {
	ID           string   `json:"id"`
	Title        string   `json:"title"`
	Content      string   `json:"content"`
	Summary      string   `json:"summary"`
	SourceURL    string   `json:"sourceUrl"`
	SourceDomain string   `json:"sourceDomain"`
	Category     Category `json:"category"`
	ContentHash  string   `json:"contentHash"`
	Metadata     Metadata `json:"metadata"`
	IsActive     bool     `json:"isActive"`

	// PublishedDate defaults to ScrapedAt unless the source page carries a
	// more precise publication date.
	PublishedDate time.Time `json:"publishedDate"`
	ScrapedAt     time.Time `json:"scrapedAt"`
}

// Validate returns an error if the notification contains invalid fields.
func (n *Notification) Validate() error {
	if n.Title == "" {
		return Errorf(EINVALID, "notification title required")
	}
	if n.Content == "" {
		return Errorf(EINVALID, "notification content required")
	}
	if n.SourceURL == "" {
		return Errorf(EINVALID, "notification source URL required")
	}
	if !ValidCategory(n.Category) {
		return Errorf(EINVALID, "invalid category %q", n.Category)
	}
	return nil
}

// NotificationService represents a service for managing stored notifications.
//
// The (title, source URL) pair is the identity key used for deduplication.
// Matching is byte-exact: titles differing only by surrounding whitespace
// count as distinct notifications.
type NotificationService interface {
	// CreateNotification creates a new notification, assigning its ID and
	// content hash. Returns ECONFLICT if a notification with the same
	// identity key already exists.
	CreateNotification(ctx context.Context, n *Notification) error

	// FindNotificationByID retrieves a notification by ID.
	// Returns ENOTFOUND if the notification does not exist.
	FindNotificationByID(ctx context.Context, id string) (*Notification, error)

	// FindNotifications retrieves notifications matching the filter, newest
	// published first, along with the total count of matching rows.
	FindNotifications(ctx context.Context, filter NotificationFilter) ([]*Notification, int, error)

	// NotificationExists reports whether a notification with the given
	// identity key is already stored.
	NotificationExists(ctx context.Context, title, sourceURL string) (bool, error)

	// CategoryCounts returns the number of active notifications per category.
	CategoryCounts(ctx context.Context) (map[Category]int, error)
}

// NotificationFilter represents a filter for FindNotifications.
type NotificationFilter struct {
	ID           *string   `json:"id"`
	Category     *Category `json:"category"`
	SourceDomain *string   `json:"sourceDomain"`
	IsActive     *bool     `json:"isActive"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

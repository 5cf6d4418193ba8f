package sqlite

import (
	"context"
	"database/sql"
	"encoding/hex"
	"net/url"
	"strings"
	"time"

	"github.com/awalczak/govnotice"
	"github.com/cespare/xxhash/v2"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ govnotice.NotificationService = (*NotificationService)(nil)

// NotificationService implements govnotice.NotificationService using SQLite.
type NotificationService struct {
	db *DB
}

// NewNotificationService creates a new NotificationService.
func NewNotificationService(db *DB) *NotificationService {
	return &NotificationService{db: db}
}

// hashContent computes xxHash of content and returns hex string.
func hashContent(content string) string {
	h := xxhash.Sum64String(content)
	b := make([]byte, 8)
	b[0] = byte(h >> 56)
	b[1] = byte(h >> 48)
	b[2] = byte(h >> 40)
	b[3] = byte(h >> 32)
	b[4] = byte(h >> 24)
	b[5] = byte(h >> 16)
	b[6] = byte(h >> 8)
	b[7] = byte(h)
	return hex.EncodeToString(b)
}

// CreateNotification creates a new notification, filling in its ID, content
// hash, derived source domain, and timestamps.
func (s *NotificationService) CreateNotification(ctx context.Context, n *govnotice.Notification) error {
	if n.Category == "" {
		n.Category = govnotice.CategoryGeneral
	}
	if err := n.Validate(); err != nil {
		return err
	}

	n.ID = uuid.New().String()
	n.ContentHash = hashContent(n.Content)
	if n.ScrapedAt.IsZero() {
		n.ScrapedAt = time.Now().UTC()
	}
	if n.PublishedDate.IsZero() {
		n.PublishedDate = n.ScrapedAt
	}
	if n.SourceDomain == "" {
		u, err := url.Parse(n.SourceURL)
		if err != nil {
			return govnotice.Errorf(govnotice.EINVALID, "invalid source URL %q", n.SourceURL)
		}
		n.SourceDomain = u.Hostname()
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO notifications (
			id, title, content, summary, source_url, source_domain, category,
			content_hash, word_count, reading_time, importance, is_active,
			published_date, scraped_at
		)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, n.ID, n.Title, n.Content, n.Summary, n.SourceURL, n.SourceDomain, string(n.Category),
		n.ContentHash, n.Metadata.WordCount, n.Metadata.ReadingTime, string(n.Metadata.Importance),
		boolToInt(n.IsActive), n.PublishedDate.Format(time.RFC3339), n.ScrapedAt.Format(time.RFC3339))

	if err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed") {
		return govnotice.Errorf(govnotice.ECONFLICT, "notification already exists for %q from %s", n.Title, n.SourceURL)
	}
	return err
}

// NotificationExists reports whether a notification with the given identity
// key is stored. Matching is byte-exact.
func (s *NotificationService) NotificationExists(ctx context.Context, title, sourceURL string) (bool, error) {
	var one int
	err := s.db.QueryRowContext(ctx, `
		SELECT 1 FROM notifications WHERE title = ? AND source_url = ? LIMIT 1
	`, title, sourceURL).Scan(&one)

	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// FindNotificationByID retrieves a notification by ID.
func (s *NotificationService) FindNotificationByID(ctx context.Context, id string) (*govnotice.Notification, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT `+notificationColumns+`
		FROM notifications
		WHERE id = ?
	`, id)

	n, err := scanNotification(row)
	if err == sql.ErrNoRows {
		return nil, govnotice.Errorf(govnotice.ENOTFOUND, "notification not found")
	}
	if err != nil {
		return nil, err
	}
	return n, nil
}

// FindNotifications retrieves notifications matching the filter, newest
// published first, along with the total count of matching rows.
func (s *NotificationService) FindNotifications(ctx context.Context, filter govnotice.NotificationFilter) ([]*govnotice.Notification, int, error) {
	var query strings.Builder
	var args []any

	query.WriteString(`SELECT ` + notificationColumns + `, COUNT(*) OVER() FROM notifications WHERE 1=1`)

	if filter.ID != nil {
		query.WriteString(" AND id = ?")
		args = append(args, *filter.ID)
	}
	if filter.Category != nil {
		query.WriteString(" AND category = ?")
		args = append(args, string(*filter.Category))
	}
	if filter.SourceDomain != nil {
		query.WriteString(" AND source_domain = ?")
		args = append(args, *filter.SourceDomain)
	}
	if filter.IsActive != nil {
		query.WriteString(" AND is_active = ?")
		args = append(args, boolToInt(*filter.IsActive))
	}

	query.WriteString(" ORDER BY published_date DESC, id")
	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var notifications []*govnotice.Notification
	var total int
	for rows.Next() {
		var n govnotice.Notification
		var publishedDate, scrapedAt string
		var isActive int

		if err := rows.Scan(
			&n.ID, &n.Title, &n.Content, &n.Summary, &n.SourceURL, &n.SourceDomain,
			&n.Category, &n.ContentHash, &n.Metadata.WordCount, &n.Metadata.ReadingTime,
			&n.Metadata.Importance, &isActive, &publishedDate, &scrapedAt, &total,
		); err != nil {
			return nil, 0, err
		}

		n.IsActive = isActive == 1
		if n.PublishedDate, err = parseRFC3339(publishedDate, "published_date"); err != nil {
			return nil, 0, err
		}
		if n.ScrapedAt, err = parseRFC3339(scrapedAt, "scraped_at"); err != nil {
			return nil, 0, err
		}

		notifications = append(notifications, &n)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	return notifications, total, nil
}

// CategoryCounts returns the number of active notifications per category.
func (s *NotificationService) CategoryCounts(ctx context.Context) (map[govnotice.Category]int, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT category, COUNT(*)
		FROM notifications
		WHERE is_active = 1
		GROUP BY category
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make(map[govnotice.Category]int)
	for rows.Next() {
		var category string
		var count int
		if err := rows.Scan(&category, &count); err != nil {
			return nil, err
		}
		counts[govnotice.Category(category)] = count
	}
	return counts, rows.Err()
}

// notificationColumns is the canonical column list shared by the scan paths.
const notificationColumns = `id, title, content, summary, source_url, source_domain, category,
	content_hash, word_count, reading_time, importance, is_active, published_date, scraped_at`

// scanNotification scans a single notification row.
func scanNotification(row *sql.Row) (*govnotice.Notification, error) {
	var n govnotice.Notification
	var publishedDate, scrapedAt string
	var isActive int

	if err := row.Scan(
		&n.ID, &n.Title, &n.Content, &n.Summary, &n.SourceURL, &n.SourceDomain,
		&n.Category, &n.ContentHash, &n.Metadata.WordCount, &n.Metadata.ReadingTime,
		&n.Metadata.Importance, &isActive, &publishedDate, &scrapedAt,
	); err != nil {
		return nil, err
	}

	n.IsActive = isActive == 1

	var err error
	if n.PublishedDate, err = parseRFC3339(publishedDate, "published_date"); err != nil {
		return nil, err
	}
	if n.ScrapedAt, err = parseRFC3339(scrapedAt, "scraped_at"); err != nil {
		return nil, err
	}
	return &n, nil
}

// boolToInt converts a bool to the 0/1 representation stored in SQLite.
func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

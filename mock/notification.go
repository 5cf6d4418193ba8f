package mock

import (
	"context"

	"github.com/awalczak/govnotice"
)

var _ govnotice.NotificationService = (*NotificationService)(nil)

// NotificationService is a mock implementation of
// govnotice.NotificationService.
type NotificationService struct {
	CreateNotificationFn   func(ctx context.Context, n *govnotice.Notification) error
	FindNotificationByIDFn func(ctx context.Context, id string) (*govnotice.Notification, error)
	FindNotificationsFn    func(ctx context.Context, filter govnotice.NotificationFilter) ([]*govnotice.Notification, int, error)
	NotificationExistsFn   func(ctx context.Context, title, sourceURL string) (bool, error)
	CategoryCountsFn       func(ctx context.Context) (map[govnotice.Category]int, error)
}

func (s *NotificationService) CreateNotification(ctx context.Context, n *govnotice.Notification) error {
	return s.CreateNotificationFn(ctx, n)
}

func (s *NotificationService) FindNotificationByID(ctx context.Context, id string) (*govnotice.Notification, error) {
	return s.FindNotificationByIDFn(ctx, id)
}

func (s *NotificationService) FindNotifications(ctx context.Context, filter govnotice.NotificationFilter) ([]*govnotice.Notification, int, error) {
	return s.FindNotificationsFn(ctx, filter)
}

func (s *NotificationService) NotificationExists(ctx context.Context, title, sourceURL string) (bool, error) {
	return s.NotificationExistsFn(ctx, title, sourceURL)
}

func (s *NotificationService) CategoryCounts(ctx context.Context) (map[govnotice.Category]int, error) {
	return s.CategoryCountsFn(ctx)
}

package services

import (
	"context"

	"campusmatch_server/models"

	"github.com/google/uuid"
)

// NotificationService appends event notifications and tracks their read
// state. Ordering is by insertion, newest first, regardless of the
// notification's own timestamp.
type NotificationService struct {
	Store *StoreService
}

// AddNotification inserts the notification at the front of the list. A blank
// ID gets a fresh uuid and a zero timestamp gets the current time.
func (ns *NotificationService) AddNotification(ctx context.Context, n models.Notification) (models.Notification, error) {
	if n.ID == "" {
		n.ID = uuid.NewString()
	}
	if n.Timestamp == 0 {
		n.Timestamp = ns.Store.Now()
	}
	err := ns.Store.update(ctx, "add notification", func(b *models.Bundle) error {
		b.Notifications = append([]models.Notification{n}, b.Notifications...)
		return nil
	})
	return n, err
}

// MarkAllRead flags every stored notification as read. Idempotent: a second
// call finds nothing unread and skips the save.
func (ns *NotificationService) MarkAllRead(ctx context.Context) error {
	return ns.Store.update(ctx, "mark notifications read", func(b *models.Bundle) error {
		changed := false
		for i := range b.Notifications {
			if !b.Notifications[i].Read {
				b.Notifications[i].Read = true
				changed = true
			}
		}
		if !changed {
			return errNoChange
		}
		return nil
	})
}

// GetNotifications returns the notifications in insertion order, newest
// first.
func (ns *NotificationService) GetNotifications() []models.Notification {
	var out []models.Notification
	ns.Store.view(func(b models.Bundle) {
		out = append([]models.Notification{}, b.Notifications...)
	})
	return out
}

package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	"ITINERARY_BACK-END/internal/itinerary"
	"ITINERARY_BACK-END/internal/models"
)

// Notification validation limits
const (
	maxNotificationTitle   = 255
	maxNotificationMessage = 10000
	maxNotificationData    = 1024 * 1024
)

// ValidateNotification checks a notification before it is stored
func ValidateNotification(n *models.Notification) error {
	if n.UserID == uuid.Nil {
		return errors.New("user_id cannot be nil")
	}
	if strings.TrimSpace(n.Type) == "" {
		return errors.New("notification type is required")
	}
	if strings.TrimSpace(n.Title) == "" {
		return errors.New("notification title is required")
	}
	if len(n.Title) > maxNotificationTitle {
		return fmt.Errorf("notification title exceeds maximum length of %d characters", maxNotificationTitle)
	}
	if n.Message != nil && len(*n.Message) > maxNotificationMessage {
		return fmt.Errorf("notification message exceeds maximum length of %d characters", maxNotificationMessage)
	}
	if !models.ValidNotificationType(n.Type) {
		log.Printf("Warning: Unknown notification type: %s (user_id=%s)", n.Type, n.UserID)
	}
	return nil
}

// CreateNotification stores a notification for a user
func (s *Store) CreateNotification(ctx context.Context, n models.Notification) error {
	if err := ValidateNotification(&n); err != nil {
		return err
	}

	var data any
	if len(n.Data) > 0 {
		b, err := json.Marshal(n.Data)
		if err != nil {
			return fmt.Errorf("failed to marshal notification data: %w", err)
		}
		if len(b) > maxNotificationData {
			return errors.New("notification data exceeds maximum size of 1MB")
		}
		data = string(b)
	}

	insertCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	tag, err := s.db.Exec(insertCtx, `
		INSERT INTO notifications (user_id, type, title, message, data, action_url)
		VALUES ($1, $2, $3, $4, $5::jsonb, $6)
	`, n.UserID, n.Type, n.Title, n.Message, data, n.ActionURL)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return fmt.Errorf("notification creation timeout: %w", err)
		}
		return fmt.Errorf("failed to insert notification: %w", err)
	}
	if tag.RowsAffected() != 1 {
		log.Printf("Warning: Notification insert affected %d rows instead of 1 (user_id=%s, type=%s)",
			tag.RowsAffected(), n.UserID, n.Type)
		return errors.New("unexpected number of rows affected")
	}
	return nil
}

// NotificationFilter narrows a notification listing
type NotificationFilter struct {
	UnreadOnly bool
	Type       string
	Limit      int
	Offset     int
}

// NotificationPage is one page of a user's notifications
type NotificationPage struct {
	Notifications []models.Notification
	Total         int
	UnreadCount   int
}

// ListNotifications pages through a user's notifications, newest first
func (s *Store) ListNotifications(ctx context.Context, userID uuid.UUID, f NotificationFilter) (*NotificationPage, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	page := &NotificationPage{Notifications: make([]models.Notification, 0, f.Limit)}
	if err := s.db.QueryRow(ctx,
		`SELECT COUNT(1) FROM notifications WHERE user_id = $1 AND read = false`, userID,
	).Scan(&page.UnreadCount); err != nil {
		return nil, fmt.Errorf("count unread notifications: %w", err)
	}

	args := []any{userID}
	where := `WHERE user_id = $1`
	if f.UnreadOnly {
		where += ` AND read = false`
	}
	if f.Type != "" {
		args = append(args, f.Type)
		where += fmt.Sprintf(` AND type = $%d`, len(args))
	}

	if err := s.db.QueryRow(ctx, `SELECT COUNT(1) FROM notifications `+where, args...).Scan(&page.Total); err != nil {
		return nil, fmt.Errorf("count notifications: %w", err)
	}

	args = append(args, f.Limit, f.Offset)
	rows, err := s.db.Query(ctx, fmt.Sprintf(`
		SELECT id, user_id, type, title, message, data, action_url, read, created_at
		FROM notifications %s
		ORDER BY created_at DESC
		LIMIT $%d OFFSET $%d
	`, where, len(args)-1, len(args)), args...)
	if err != nil {
		return nil, fmt.Errorf("query notifications: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			n   models.Notification
			raw []byte
		)
		if err := rows.Scan(&n.ID, &n.UserID, &n.Type, &n.Title, &n.Message, &raw, &n.ActionURL, &n.Read, &n.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan notification: %w", err)
		}
		if len(raw) > 0 && string(raw) != "null" {
			if err := json.Unmarshal(raw, &n.Data); err != nil {
				log.Printf("Warning: Failed to unmarshal notification data: %v (notification_id=%s)", err, n.ID)
				n.Data = nil
			}
		}
		page.Notifications = append(page.Notifications, n)
	}
	return page, rows.Err()
}

// MarkNotificationRead marks one of the user's notifications as read
func (s *Store) MarkNotificationRead(ctx context.Context, userID, id uuid.UUID) error {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	tag, err := s.db.Exec(ctx, `UPDATE notifications SET read = true WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return fmt.Errorf("mark notification read: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("notification %s: %w", id, itinerary.ErrNotFound)
	}
	return nil
}

// MarkAllNotificationsRead marks every unread notification of the user
func (s *Store) MarkAllNotificationsRead(ctx context.Context, userID uuid.UUID) (int64, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	tag, err := s.db.Exec(ctx, `UPDATE notifications SET read = true WHERE user_id = $1 AND read = false`, userID)
	if err != nil {
		return 0, fmt.Errorf("mark all notifications read: %w", err)
	}
	return tag.RowsAffected(), nil
}

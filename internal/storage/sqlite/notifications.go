package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/mmynk/pennywise/internal/models"
	"github.com/mmynk/pennywise/internal/storage"
)

const notificationColumns = `id, group_id, split_transaction_id, to_member_id, to_user_id, title, body, is_read, created_at`

// visibleTo restricts notifications to those addressed to a user directly or
// to any member linked to the user. It binds the user ID twice.
const visibleTo = `(to_user_id = ? OR to_member_id IN (SELECT id FROM group_members WHERE linked_user_id = ?))`

func scanNotification(row rowScanner) (*models.Notification, error) {
	n := &models.Notification{}
	var toMemberID, toUserID sql.NullString
	if err := row.Scan(&n.ID, &n.GroupID, &n.SplitTransactionID, &toMemberID, &toUserID,
		&n.Title, &n.Body, &n.IsRead, &n.CreatedAt); err != nil {
		return nil, err
	}
	n.ToMemberID = toMemberID.String
	n.ToUserID = toUserID.String
	return n, nil
}

// ListNotificationsForUser retrieves a user's notifications, newest first.
func (s *SQLiteStore) ListNotificationsForUser(ctx context.Context, userID string) ([]*models.Notification, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+notificationColumns+` FROM notifications WHERE `+visibleTo+` ORDER BY created_at DESC, rowid DESC`,
		userID, userID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list notifications: %w", err)
	}
	defer rows.Close()

	var notifications []*models.Notification
	for rows.Next() {
		n, err := scanNotification(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan notification: %w", err)
		}
		notifications = append(notifications, n)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate notifications: %w", err)
	}
	return notifications, nil
}

// MarkNotificationRead flags a notification visible to the user as read.
func (s *SQLiteStore) MarkNotificationRead(ctx context.Context, notificationID, userID string) (*models.Notification, error) {
	var n *models.Notification
	err := s.withTx(ctx, func(tx *sql.Tx) error {
		result, err := tx.ExecContext(ctx,
			`UPDATE notifications SET is_read = 1 WHERE id = ? AND `+visibleTo,
			notificationID, userID, userID,
		)
		if err != nil {
			return fmt.Errorf("failed to update notification: %w", err)
		}
		if err := requireAffected(result, "notification", notificationID); err != nil {
			return err
		}

		n, err = scanNotification(tx.QueryRowContext(ctx,
			`SELECT `+notificationColumns+` FROM notifications WHERE id = ?`, notificationID))
		if errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("notification %s: %w", notificationID, storage.ErrNotFound)
		}
		if err != nil {
			return fmt.Errorf("failed to get notification: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return n, nil
}

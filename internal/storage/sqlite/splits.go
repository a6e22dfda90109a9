package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/mmynk/pennywise/internal/models"
	"github.com/mmynk/pennywise/internal/storage"
)

const splitColumns = `id, group_id, created_by_user_id, title, type, currency, total_amount_minor, occurred_at, note, created_at`

const itemColumns = `id, split_transaction_id, group_id, member_id, amount_minor, direction, position, created_at`

// CreateSplit persists a split transaction, its items and its notifications
// in a single transaction.
func (s *SQLiteStore) CreateSplit(ctx context.Context, split *models.SplitTransaction, items []*models.SplitTransactionItem, notifications []*models.Notification) error {
	now := time.Now().Unix()

	// Generate IDs if not set
	if split.ID == "" {
		split.ID = uuid.New().String()
	}
	if split.CreatedAt == 0 {
		split.CreatedAt = now
	}
	for _, item := range items {
		if item.ID == "" {
			item.ID = uuid.New().String()
		}
		if item.CreatedAt == 0 {
			item.CreatedAt = now
		}
		item.SplitTransactionID = split.ID
		item.GroupID = split.GroupID
	}
	for _, n := range notifications {
		if n.ID == "" {
			n.ID = uuid.New().String()
		}
		if n.CreatedAt == 0 {
			n.CreatedAt = now
		}
		n.SplitTransactionID = split.ID
		n.GroupID = split.GroupID
	}

	return s.withTx(ctx, func(tx *sql.Tx) error {
		// Insert split header
		_, err := tx.ExecContext(ctx,
			`INSERT INTO split_transactions (`+splitColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			split.ID, split.GroupID, split.CreatedByUserID, split.Title, string(split.Type),
			split.Currency, split.TotalAmountMinor, split.OccurredAt.UnixMilli(), split.Note, split.CreatedAt,
		)
		if err != nil {
			return fmt.Errorf("failed to insert split: %w", err)
		}

		// Insert one item per member
		for _, item := range items {
			_, err = tx.ExecContext(ctx,
				`INSERT INTO split_transaction_items (`+itemColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
				item.ID, item.SplitTransactionID, item.GroupID, item.MemberID,
				item.AmountMinor, string(item.Direction), item.Position, item.CreatedAt,
			)
			if err != nil {
				return fmt.Errorf("failed to insert split item: %w", err)
			}
		}

		if s.beforeNotifications != nil {
			if err := s.beforeNotifications(ctx, tx); err != nil {
				return err
			}
		}

		// Insert notifications
		for _, n := range notifications {
			_, err = tx.ExecContext(ctx,
				`INSERT INTO notifications (id, group_id, split_transaction_id, to_member_id, to_user_id, title, body, is_read, created_at)
				 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
				n.ID, n.GroupID, n.SplitTransactionID, nullString(n.ToMemberID), nullString(n.ToUserID),
				n.Title, n.Body, n.IsRead, n.CreatedAt,
			)
			if err != nil {
				return fmt.Errorf("failed to insert notification: %w", err)
			}
		}

		return nil
	})
}

func scanSplit(row rowScanner) (*models.SplitTransaction, error) {
	split := &models.SplitTransaction{}
	var splitType string
	var occurredAt int64
	if err := row.Scan(&split.ID, &split.GroupID, &split.CreatedByUserID, &split.Title, &splitType,
		&split.Currency, &split.TotalAmountMinor, &occurredAt, &split.Note, &split.CreatedAt); err != nil {
		return nil, err
	}
	split.Type = models.SplitType(splitType)
	split.OccurredAt = time.UnixMilli(occurredAt).UTC()
	return split, nil
}

func scanItem(row rowScanner, extra ...any) (*models.SplitTransactionItem, error) {
	item := &models.SplitTransactionItem{}
	var direction string
	dest := append([]any{&item.ID, &item.SplitTransactionID, &item.GroupID, &item.MemberID,
		&item.AmountMinor, &direction, &item.Position, &item.CreatedAt}, extra...)
	if err := row.Scan(dest...); err != nil {
		return nil, err
	}
	item.Direction = models.Direction(direction)
	return item, nil
}

// ListSplits retrieves all splits of a group, most recent occurrence first.
func (s *SQLiteStore) ListSplits(ctx context.Context, groupID string) ([]*models.SplitTransaction, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+splitColumns+` FROM split_transactions WHERE group_id = ? ORDER BY occurred_at DESC, rowid DESC`,
		groupID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list splits: %w", err)
	}
	defer rows.Close()

	var splits []*models.SplitTransaction
	for rows.Next() {
		split, err := scanSplit(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan split: %w", err)
		}
		splits = append(splits, split)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate splits: %w", err)
	}
	return splits, nil
}

// GetSplit retrieves a split of a group by ID.
func (s *SQLiteStore) GetSplit(ctx context.Context, groupID, splitID string) (*models.SplitTransaction, error) {
	split, err := scanSplit(s.db.QueryRowContext(ctx,
		`SELECT `+splitColumns+` FROM split_transactions WHERE id = ? AND group_id = ?`,
		splitID, groupID,
	))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("split %s: %w", splitID, storage.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get split: %w", err)
	}
	return split, nil
}

func (s *SQLiteStore) queryItems(ctx context.Context, query string, args ...any) ([]*models.SplitTransactionItem, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to get split items: %w", err)
	}
	defer rows.Close()

	var items []*models.SplitTransactionItem
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan split item: %w", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate split items: %w", err)
	}
	return items, nil
}

// ListSplitItems retrieves the items of a split in allocation order.
func (s *SQLiteStore) ListSplitItems(ctx context.Context, splitID string) ([]*models.SplitTransactionItem, error) {
	return s.queryItems(ctx,
		`SELECT `+itemColumns+` FROM split_transaction_items WHERE split_transaction_id = ? ORDER BY position`,
		splitID,
	)
}

// ListGroupItems retrieves every split item recorded in a group.
func (s *SQLiteStore) ListGroupItems(ctx context.Context, groupID string) ([]*models.SplitTransactionItem, error) {
	return s.queryItems(ctx,
		`SELECT `+itemColumns+` FROM split_transaction_items WHERE group_id = ? ORDER BY created_at, rowid`,
		groupID,
	)
}

// ListMemberItems retrieves a member's items with their split metadata.
func (s *SQLiteStore) ListMemberItems(ctx context.Context, groupID, memberID string) ([]*models.MemberSplitItem, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT i.id, i.split_transaction_id, i.group_id, i.member_id, i.amount_minor, i.direction, i.position, i.created_at,
		       t.title, t.type, t.currency, t.total_amount_minor, t.occurred_at
		FROM split_transaction_items i
		JOIN split_transactions t ON t.id = i.split_transaction_id
		WHERE i.group_id = ? AND i.member_id = ?
		ORDER BY i.created_at DESC, i.rowid DESC`,
		groupID, memberID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list member items: %w", err)
	}
	defer rows.Close()

	var items []*models.MemberSplitItem
	for rows.Next() {
		var (
			title, splitType, currency string
			total, occurredAt          int64
		)
		item, err := scanItem(rows, &title, &splitType, &currency, &total, &occurredAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan member item: %w", err)
		}
		items = append(items, &models.MemberSplitItem{
			SplitTransactionItem: *item,
			Title:                title,
			Type:                 models.SplitType(splitType),
			Currency:             currency,
			TotalAmountMinor:     total,
			OccurredAt:           time.UnixMilli(occurredAt).UTC(),
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate member items: %w", err)
	}
	return items, nil
}

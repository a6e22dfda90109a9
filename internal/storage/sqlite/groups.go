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

// CreateGroup persists a new group and its owner member atomically.
func (s *SQLiteStore) CreateGroup(ctx context.Context, group *models.Group, owner *models.GroupMember) error {
	// Generate IDs if not set
	if group.ID == "" {
		group.ID = uuid.New().String()
	}
	if group.CreatedAt == 0 {
		group.CreatedAt = time.Now().Unix()
	}

	owner.GroupID = group.ID
	owner.Role = models.RoleOwner
	owner.LinkedUserID = group.OwnerUserID

	return s.withTx(ctx, func(tx *sql.Tx) error {
		_, err := tx.ExecContext(ctx,
			"INSERT INTO groups (id, name, owner_user_id, created_at) VALUES (?, ?, ?, ?)",
			group.ID, group.Name, group.OwnerUserID, group.CreatedAt,
		)
		if err != nil {
			return fmt.Errorf("failed to insert group: %w", err)
		}

		if err := insertMember(ctx, tx, owner); err != nil {
			return fmt.Errorf("failed to insert owner member: %w", err)
		}
		return nil
	})
}

// GetGroup retrieves a group by ID.
func (s *SQLiteStore) GetGroup(ctx context.Context, groupID string) (*models.Group, error) {
	group := &models.Group{}
	err := s.db.QueryRowContext(ctx,
		"SELECT id, name, owner_user_id, created_at FROM groups WHERE id = ?",
		groupID,
	).Scan(&group.ID, &group.Name, &group.OwnerUserID, &group.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("group %s: %w", groupID, storage.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get group: %w", err)
	}
	return group, nil
}

// ListGroupsForUser retrieves the groups a user owns or belongs to, with
// member counts.
func (s *SQLiteStore) ListGroupsForUser(ctx context.Context, userID string) ([]*models.GroupSummary, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT g.id, g.name, g.owner_user_id, g.created_at,
		       (SELECT COUNT(*) FROM group_members m WHERE m.group_id = g.id)
		FROM groups g
		WHERE g.owner_user_id = ?
		   OR g.id IN (SELECT group_id FROM group_members WHERE linked_user_id = ?)
		ORDER BY g.created_at DESC, g.rowid DESC`,
		userID, userID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list groups: %w", err)
	}
	defer rows.Close()

	var groups []*models.GroupSummary
	for rows.Next() {
		g := &models.GroupSummary{}
		if err := rows.Scan(&g.ID, &g.Name, &g.OwnerUserID, &g.CreatedAt, &g.MemberCount); err != nil {
			return nil, fmt.Errorf("failed to scan group: %w", err)
		}
		groups = append(groups, g)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate groups: %w", err)
	}

	return groups, nil
}

// UpdateGroupName renames a group.
func (s *SQLiteStore) UpdateGroupName(ctx context.Context, groupID, name string) error {
	result, err := s.db.ExecContext(ctx, "UPDATE groups SET name = ? WHERE id = ?", name, groupID)
	if err != nil {
		return fmt.Errorf("failed to update group: %w", err)
	}
	return requireAffected(result, "group", groupID)
}

// DeleteGroup removes a group and everything recorded in it.
func (s *SQLiteStore) DeleteGroup(ctx context.Context, groupID string) error {
	return s.withTx(ctx, func(tx *sql.Tx) error {
		// Children first: items hold a RESTRICT reference to members.
		for _, stmt := range []string{
			"DELETE FROM notifications WHERE group_id = ?",
			"DELETE FROM split_transaction_items WHERE group_id = ?",
			"DELETE FROM split_transactions WHERE group_id = ?",
			"DELETE FROM group_members WHERE group_id = ?",
		} {
			if _, err := tx.ExecContext(ctx, stmt, groupID); err != nil {
				return fmt.Errorf("failed to delete group data: %w", err)
			}
		}

		result, err := tx.ExecContext(ctx, "DELETE FROM groups WHERE id = ?", groupID)
		if err != nil {
			return fmt.Errorf("failed to delete group: %w", err)
		}
		return requireAffected(result, "group", groupID)
	})
}

// requireAffected returns storage.ErrNotFound when the statement touched no
// row.
func requireAffected(result sql.Result, kind, id string) error {
	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("%s %s: %w", kind, id, storage.ErrNotFound)
	}
	return nil
}

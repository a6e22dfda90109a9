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

const memberColumns = `id, group_id, display_name, phone, linked_user_id, role, created_at`

// execer is satisfied by both *sql.DB and *sql.Tx.
type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func insertMember(ctx context.Context, db execer, member *models.GroupMember) error {
	if member.ID == "" {
		member.ID = uuid.New().String()
	}
	if member.CreatedAt == 0 {
		member.CreatedAt = time.Now().Unix()
	}

	_, err := db.ExecContext(ctx,
		`INSERT INTO group_members (`+memberColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?)`,
		member.ID, member.GroupID, member.DisplayName,
		nullString(member.Phone), nullString(member.LinkedUserID),
		string(member.Role), member.CreatedAt,
	)
	if isUniqueViolation(err) {
		return fmt.Errorf("member of group %s: %w", member.GroupID, storage.ErrDuplicate)
	}
	return err
}

func scanMember(row rowScanner) (*models.GroupMember, error) {
	member := &models.GroupMember{}
	var phone, linkedUserID sql.NullString
	var role string
	if err := row.Scan(&member.ID, &member.GroupID, &member.DisplayName,
		&phone, &linkedUserID, &role, &member.CreatedAt); err != nil {
		return nil, err
	}
	member.Phone = phone.String
	member.LinkedUserID = linkedUserID.String
	member.Role = models.Role(role)
	return member, nil
}

func collectMembers(rows *sql.Rows) ([]*models.GroupMember, error) {
	defer rows.Close()

	var members []*models.GroupMember
	for rows.Next() {
		member, err := scanMember(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan member: %w", err)
		}
		members = append(members, member)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate members: %w", err)
	}
	return members, nil
}

// ListMembers retrieves all members of a group in creation order.
func (s *SQLiteStore) ListMembers(ctx context.Context, groupID string) ([]*models.GroupMember, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+memberColumns+` FROM group_members WHERE group_id = ? ORDER BY created_at, rowid`,
		groupID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list members: %w", err)
	}
	return collectMembers(rows)
}

// GetMember retrieves one member of a group.
func (s *SQLiteStore) GetMember(ctx context.Context, groupID, memberID string) (*models.GroupMember, error) {
	member, err := scanMember(s.db.QueryRowContext(ctx,
		`SELECT `+memberColumns+` FROM group_members WHERE id = ? AND group_id = ?`,
		memberID, groupID,
	))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("member %s: %w", memberID, storage.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get member: %w", err)
	}
	return member, nil
}

// GetMembersByIDs retrieves the members of a group matching ids.
func (s *SQLiteStore) GetMembersByIDs(ctx context.Context, groupID string, ids []string) ([]*models.GroupMember, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	placeholders, args := inClause(ids)
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+memberColumns+` FROM group_members WHERE group_id = ? AND id IN (`+placeholders+`)`,
		append([]any{groupID}, args...)...,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get members by IDs: %w", err)
	}
	return collectMembers(rows)
}

// FindMembership retrieves the member of a group linked to a user.
func (s *SQLiteStore) FindMembership(ctx context.Context, groupID, userID string) (*models.GroupMember, error) {
	member, err := scanMember(s.db.QueryRowContext(ctx,
		`SELECT `+memberColumns+` FROM group_members WHERE group_id = ? AND linked_user_id = ?`,
		groupID, userID,
	))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find membership: %w", err)
	}
	return member, nil
}

// CreateMember adds a member to a group.
func (s *SQLiteStore) CreateMember(ctx context.Context, member *models.GroupMember) error {
	if err := insertMember(ctx, s.db, member); err != nil {
		return fmt.Errorf("failed to insert member: %w", err)
	}
	return nil
}

// UpdateMember saves the mutable fields of a member.
func (s *SQLiteStore) UpdateMember(ctx context.Context, member *models.GroupMember) error {
	result, err := s.db.ExecContext(ctx,
		`UPDATE group_members SET display_name = ?, phone = ?, linked_user_id = ?, role = ?
		 WHERE id = ? AND group_id = ?`,
		member.DisplayName, nullString(member.Phone), nullString(member.LinkedUserID),
		string(member.Role), member.ID, member.GroupID,
	)
	if isUniqueViolation(err) {
		return fmt.Errorf("member of group %s: %w", member.GroupID, storage.ErrDuplicate)
	}
	if err != nil {
		return fmt.Errorf("failed to update member: %w", err)
	}
	return requireAffected(result, "member", member.ID)
}

// DeleteMember removes a member that has no split items.
func (s *SQLiteStore) DeleteMember(ctx context.Context, groupID, memberID string) error {
	return s.withTx(ctx, func(tx *sql.Tx) error {
		var itemCount int
		err := tx.QueryRowContext(ctx,
			"SELECT COUNT(*) FROM split_transaction_items WHERE member_id = ?",
			memberID,
		).Scan(&itemCount)
		if err != nil {
			return fmt.Errorf("failed to count member items: %w", err)
		}
		if itemCount > 0 {
			return fmt.Errorf("member %s has %d items: %w", memberID, itemCount, storage.ErrMemberReferenced)
		}

		result, err := tx.ExecContext(ctx,
			"DELETE FROM group_members WHERE id = ? AND group_id = ?",
			memberID, groupID,
		)
		if isForeignKeyViolation(err) {
			return fmt.Errorf("member %s: %w", memberID, storage.ErrMemberReferenced)
		}
		if err != nil {
			return fmt.Errorf("failed to delete member: %w", err)
		}
		return requireAffected(result, "member", memberID)
	})
}

// Package storage provides abstractions for persistent data storage.
package storage

import (
	"context"
	"errors"

	"github.com/mmynk/pennywise/internal/models"
)

var (
	// ErrNotFound is wrapped by lookups that find no row.
	ErrNotFound = errors.New("not found")

	// ErrMemberReferenced is returned when deleting a member that still has
	// split items.
	ErrMemberReferenced = errors.New("member is referenced by split items")

	// ErrDuplicate is wrapped when a uniqueness constraint rejects a write.
	ErrDuplicate = errors.New("duplicate record")
)

// UserStore persists user accounts.
type UserStore interface {
	CreateUser(ctx context.Context, user *models.User) error

	// GetUserByEmail and GetUserByID return nil, nil when the user does not
	// exist.
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	GetUserByID(ctx context.Context, id string) (*models.User, error)
}

// GroupStore persists groups and their members.
type GroupStore interface {
	// CreateGroup persists a group together with its owner member in one
	// transaction. IDs and timestamps are filled in when empty.
	CreateGroup(ctx context.Context, group *models.Group, owner *models.GroupMember) error

	// GetGroup returns ErrNotFound (wrapped) when the group does not exist.
	GetGroup(ctx context.Context, groupID string) (*models.Group, error)

	// ListGroupsForUser returns groups the user owns or is a linked member of,
	// newest first.
	ListGroupsForUser(ctx context.Context, userID string) ([]*models.GroupSummary, error)

	UpdateGroupName(ctx context.Context, groupID, name string) error

	// DeleteGroup removes the group with all its members, splits, items and
	// notifications in one transaction.
	DeleteGroup(ctx context.Context, groupID string) error

	// ListMembers returns the group's members in creation order.
	ListMembers(ctx context.Context, groupID string) ([]*models.GroupMember, error)

	// GetMember returns ErrNotFound (wrapped) when the member does not exist
	// in the given group.
	GetMember(ctx context.Context, groupID, memberID string) (*models.GroupMember, error)

	// GetMembersByIDs returns the members of groupID whose IDs are in ids.
	// IDs that belong to another group or do not exist are omitted.
	GetMembersByIDs(ctx context.Context, groupID string, ids []string) ([]*models.GroupMember, error)

	// FindMembership returns the member of groupID linked to userID, or
	// nil, nil when there is none.
	FindMembership(ctx context.Context, groupID, userID string) (*models.GroupMember, error)

	// CreateMember returns ErrDuplicate (wrapped) when the linked user is
	// already a member of the group.
	CreateMember(ctx context.Context, member *models.GroupMember) error
	UpdateMember(ctx context.Context, member *models.GroupMember) error

	// DeleteMember removes a member that no split item references. The
	// reference check and the delete run in the same transaction; a
	// referenced member yields ErrMemberReferenced.
	DeleteMember(ctx context.Context, groupID, memberID string) error
}

// SplitStore persists split transactions, their items and notifications.
type SplitStore interface {
	// CreateSplit writes the header, its items and notifications in one
	// transaction. Either all rows are committed or none are.
	CreateSplit(ctx context.Context, split *models.SplitTransaction, items []*models.SplitTransactionItem, notifications []*models.Notification) error

	// ListSplits returns a group's splits, most recent occurrence first.
	ListSplits(ctx context.Context, groupID string) ([]*models.SplitTransaction, error)

	// GetSplit returns ErrNotFound (wrapped) when the split does not exist in
	// the given group.
	GetSplit(ctx context.Context, groupID, splitID string) (*models.SplitTransaction, error)

	// ListSplitItems returns the items of a split in allocation order.
	ListSplitItems(ctx context.Context, splitID string) ([]*models.SplitTransactionItem, error)

	// ListGroupItems returns every split item of a group.
	ListGroupItems(ctx context.Context, groupID string) ([]*models.SplitTransactionItem, error)

	// ListMemberItems returns a member's items joined with split metadata,
	// newest first.
	ListMemberItems(ctx context.Context, groupID, memberID string) ([]*models.MemberSplitItem, error)
}

// NotificationStore persists the notification inbox.
type NotificationStore interface {
	// ListNotificationsForUser returns notifications addressed to the user or
	// to any member linked to the user, newest first.
	ListNotificationsForUser(ctx context.Context, userID string) ([]*models.Notification, error)

	// MarkNotificationRead sets IsRead on a notification visible to the user
	// and returns it. Returns ErrNotFound (wrapped) otherwise.
	MarkNotificationRead(ctx context.Context, notificationID, userID string) (*models.Notification, error)
}

// Store defines the interface for all storage operations.
// This abstraction allows swapping storage backends (SQLite, PostgreSQL, etc.)
// without changing the service layer.
type Store interface {
	UserStore
	GroupStore
	SplitStore
	NotificationStore

	// Close releases any resources held by the store.
	Close() error
}
